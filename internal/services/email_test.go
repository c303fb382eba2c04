package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResendMailer_Send(t *testing.T) {
	var got map[string]interface{}
	var auth, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
	}))
	defer srv.Close()

	mailer, err := NewResendMailer("re_test", srv.URL)
	require.NoError(t, err)

	id, err := mailer.Send(context.Background(), OutgoingEmail{
		From:    DefaultContactFrom,
		To:      "owner@example.com",
		ReplyTo: "visitor@example.com",
		Subject: "Portfolio Inquiry from Visitor",
		HTML:    "<p>hi</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "49a3999c-0ce1-4ea6-ab68-afcd6dc2e794", id)
	assert.Equal(t, "Bearer re_test", auth)
	assert.Equal(t, "/emails", path)
	assert.Equal(t, "visitor@example.com", got["reply_to"])
	assert.Equal(t, []interface{}{"owner@example.com"}, got["to"])
	assert.Equal(t, "<p>hi</p>", got["html"])
}

func TestResendMailer_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`))
	}))
	defer srv.Close()

	mailer, err := NewResendMailer("re_test", srv.URL)
	require.NoError(t, err)

	_, err = mailer.Send(context.Background(), OutgoingEmail{From: "x", To: "owner@example.com"})
	assert.Error(t, err)
}
