package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

type ChatHandler struct {
	gateway *services.ChatGateway
	logger  logrus.FieldLogger
}

func NewChatHandler(gateway *services.ChatGateway, logger logrus.FieldLogger) *ChatHandler {
	return &ChatHandler{gateway: gateway, logger: logger}
}

// Reply never fails the visitor: anything but a missing messages array ends
// in a 200 with some reply.
func (h *ChatHandler) Reply(w http.ResponseWriter, r *http.Request) {
	log := middleware.Logger(r.Context(), h.logger)

	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || isNull(body) {
		if err == nil {
			err = errNullBody
		}
		log.WithError(err).Error("chat: invalid request body")
		writeJSON(w, http.StatusOK, h.gateway.ErrorFallback())
		return
	}

	messages, err := decodeMessages(messagesField(body))
	if err != nil {
		log.WithError(err).Error("chat: invalid messages")
		writeJSON(w, http.StatusOK, h.gateway.ErrorFallback())
		return
	}

	resp, err := h.gateway.Reply(r.Context(), messages)
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

var errNullBody = errors.New("request body is null")

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// messagesField returns the raw messages value of an object body. Any other
// top-level value has no messages.
func messagesField(body json.RawMessage) json.RawMessage {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return nil
	}
	var req struct {
		Messages json.RawMessage `json:"messages"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return nil
	}
	return req.Messages
}

// decodeMessages returns nil when the field is absent or not an array.
func decodeMessages(raw json.RawMessage) ([]models.ChatMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, nil
	}
	messages := []models.ChatMessage{}
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
