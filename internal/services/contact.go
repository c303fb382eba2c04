package services

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
)

const (
	msgNotConfigured   = "Email service is not configured. Please contact the site owner."
	msgFieldsRequired  = "Name, email, and message are required."
	msgDeliveryFailed  = "Failed to send email. Please try again later."
	DefaultContactFrom = "Portfolio Contact <onboarding@resend.dev>"
)

type ContactService struct {
	mailer   Mailer
	to       string
	from     string
	validate *validator.Validate
	logger   logrus.FieldLogger
}

// NewContactService forwards submissions to the mailbox at to. A nil mailer
// means no provider credential was configured.
func NewContactService(mailer Mailer, to, from string, logger logrus.FieldLogger) *ContactService {
	if from == "" {
		from = DefaultContactFrom
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &ContactService{
		mailer:   mailer,
		to:       to,
		from:     from,
		validate: validate,
		logger:   logger,
	}
}

// Ready reports a ConfigError when the provider key or the destination
// mailbox is missing.
func (s *ContactService) Ready() error {
	if s.mailer == nil {
		return &ConfigError{Message: msgNotConfigured, Missing: "RESEND_API_KEY"}
	}
	if s.to == "" {
		return &ConfigError{Message: msgNotConfigured, Missing: "MY_EMAIL_ADDRESS"}
	}
	return nil
}

// Submit validates the trimmed submission and sends it to the site owner,
// returning the provider message id.
func (s *ContactService) Submit(ctx context.Context, sub models.ContactSubmission) (string, error) {
	log := middleware.Logger(ctx, s.logger)

	if err := s.Ready(); err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			log.WithField("missing", cfgErr.Missing).Error("contact: email service is not configured")
		}
		contactSubmissions.WithLabelValues("config_error").Inc()
		return "", err
	}

	sub = sub.Trimmed()
	if err := s.validate.Struct(sub); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return "", err
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		contactSubmissions.WithLabelValues("invalid").Inc()
		return "", &ValidationError{Message: msgFieldsRequired, Fields: fields}
	}

	id, err := s.mailer.Send(ctx, OutgoingEmail{
		From:    s.from,
		To:      s.to,
		ReplyTo: sub.Email,
		Subject: contactSubject(sub.Name),
		HTML:    contactHTML(sub.Name, sub.Email, sub.Message),
	})
	if err != nil {
		log.WithError(err).Error("contact: provider rejected email")
		contactSubmissions.WithLabelValues("delivery_error").Inc()
		return "", &DeliveryError{Message: msgDeliveryFailed, Cause: err}
	}

	log.WithField("message_id", id).Info("contact: email sent")
	contactSubmissions.WithLabelValues("sent").Inc()
	return id, nil
}
