package models

import "strings"

// ContactSubmission is the payload sent to the contact endpoint.
type ContactSubmission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (c ContactSubmission) Trimmed() ContactSubmission {
	return ContactSubmission{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Message: strings.TrimSpace(c.Message),
	}
}

type ContactResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
}
