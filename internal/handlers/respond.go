package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

const msgUnexpected = "An unexpected error occurred."

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}

// handleServiceError maps typed service errors to a status and a message that
// is safe for the client. Details only reach the log.
func handleServiceError(w http.ResponseWriter, r *http.Request, logger logrus.FieldLogger, err error) {
	log := middleware.Logger(r.Context(), logger)

	var (
		invalidErr    *services.InvalidInputError
		validationErr *services.ValidationError
		configErr     *services.ConfigError
		deliveryErr   *services.DeliveryError
	)
	switch {
	case errors.As(err, &invalidErr):
		writeJSON(w, http.StatusBadRequest, errorResp(invalidErr.Message))
	case errors.As(err, &validationErr):
		log.WithField("fields", validationErr.Fields).Info("rejected invalid input")
		writeJSON(w, http.StatusBadRequest, errorResp(validationErr.Message))
	case errors.As(err, &configErr):
		log.WithField("missing", configErr.Missing).Error("service is not configured")
		writeJSON(w, http.StatusInternalServerError, errorResp(configErr.Message))
	case errors.As(err, &deliveryErr):
		writeJSON(w, http.StatusInternalServerError, errorResp(deliveryErr.Message))
	default:
		log.WithError(err).Error("unexpected error")
		writeJSON(w, http.StatusInternalServerError, errorResp(msgUnexpected))
	}
}
