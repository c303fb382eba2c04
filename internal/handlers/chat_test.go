package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/fallback"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

func newLocalChatHandler() *ChatHandler {
	logger, _ := logtest.NewNullLogger()
	gateway := services.NewChatGateway(nil, nil, fallback.Default(), logger, services.ChatGatewayOptions{})
	return NewChatHandler(gateway, logger)
}

func postChat(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Reply(rr, req)
	return rr
}

func TestChatHandler_LocalReply(t *testing.T) {
	rr := postChat(t, newLocalChatHandler(), `{"messages":[{"role":"user","content":"What are your skills?"}]}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp models.ChatResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "local", resp.Source)
	assert.Equal(t, fallback.Entries[1].Response, resp.Reply)
}

func TestChatHandler_MissingMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no field", `{}`},
		{"null", `{"messages":null}`},
		{"string", `{"messages":"hello"}`},
		{"object", `{"messages":{"role":"user"}}`},
		{"top-level array", `[]`},
		{"top-level string", `"hello"`},
		{"top-level number", `42`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := postChat(t, newLocalChatHandler(), tc.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			var resp models.ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "Messages array is required", resp.Error)
		})
	}
}

func TestChatHandler_MalformedBodyStillReplies(t *testing.T) {
	for _, body := range []string{`{"messages": [`, `not json`, `{"messages":[1,2]}`, `null`, ` null `, ``} {
		rr := postChat(t, newLocalChatHandler(), body)

		require.Equal(t, http.StatusOK, rr.Code, body)
		var resp models.ChatResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "error-fallback", resp.Source)
		assert.Equal(t, fallback.DefaultResponse, resp.Reply)
	}
}

func TestChatHandler_EmptyConversation(t *testing.T) {
	rr := postChat(t, newLocalChatHandler(), `{"messages":[]}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.ChatResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "local", resp.Source)
	assert.Equal(t, fallback.DefaultResponse, resp.Reply)
}

func TestDecodeMessages(t *testing.T) {
	msgs, err := decodeMessages([]byte(` [{"role":"assistant","content":"hey"}]`))
	require.NoError(t, err)
	assert.Equal(t, []models.ChatMessage{{Role: "assistant", Content: "hey"}}, msgs)

	msgs, err = decodeMessages(nil)
	require.NoError(t, err)
	assert.Nil(t, msgs)
}
