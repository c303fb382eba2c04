package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

type ContactHandler struct {
	contact *services.ContactService
	logger  logrus.FieldLogger
}

func NewContactHandler(contact *services.ContactService, logger logrus.FieldLogger) *ContactHandler {
	return &ContactHandler{contact: contact, logger: logger}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			middleware.Logger(r.Context(), h.logger).WithField("panic", rec).Error("contact: unexpected failure")
			writeJSON(w, http.StatusInternalServerError, errorResp(msgUnexpected))
		}
	}()

	if err := h.contact.Ready(); err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	var req models.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	id, err := h.contact.Submit(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ContactResponse{Success: true, MessageID: id})
}
