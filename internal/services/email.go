package services

import (
	"context"
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"
)

// OutgoingEmail is a single HTML message handed to a Mailer.
type OutgoingEmail struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Mailer delivers an email and returns the provider's message id.
type Mailer interface {
	Send(ctx context.Context, email OutgoingEmail) (string, error)
}

type ResendMailer struct {
	client *resend.Client
}

// NewResendMailer creates a Resend client. baseURL is optional and only
// overridden for tests or proxies.
func NewResendMailer(apiKey, baseURL string) (*ResendMailer, error) {
	client := resend.NewClient(apiKey)
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid Resend base URL: %w", err)
		}
		client.BaseURL = u
	}
	return &ResendMailer{client: client}, nil
}

func (m *ResendMailer) Send(ctx context.Context, email OutgoingEmail) (string, error) {
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    email.From,
		To:      []string{email.To},
		ReplyTo: email.ReplyTo,
		Subject: email.Subject,
		Html:    email.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send email to %s: %w", email.To, err)
	}
	return sent.Id, nil
}

func contactSubject(name string) string {
	return fmt.Sprintf("Portfolio Inquiry from %s", name)
}

// contactHTML renders the notification sent to the site owner. All values
// are escaped.
func contactHTML(name, email, message string) string {
	name = html.EscapeString(name)
	email = html.EscapeString(email)
	message = html.EscapeString(message)

	return fmt.Sprintf(`<div style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; max-width: 600px; margin: 0 auto; padding: 24px;">
  <h2 style="color: #1a1a1a; border-bottom: 2px solid #6c63ff; padding-bottom: 12px; margin-bottom: 20px;">📩 New Portfolio Message</h2>
  <table style="width: 100%%; border-collapse: collapse; margin-bottom: 20px;">
    <tr>
      <td style="padding: 8px 12px; font-weight: 600; color: #555; width: 80px; vertical-align: top;">From</td>
      <td style="padding: 8px 12px; color: #1a1a1a;">%s</td>
    </tr>
    <tr>
      <td style="padding: 8px 12px; font-weight: 600; color: #555; vertical-align: top;">Email</td>
      <td style="padding: 8px 12px;"><a href="mailto:%s" style="color: #6c63ff; text-decoration: none;">%s</a></td>
    </tr>
  </table>
  <div style="background: #f8f9fa; border-left: 4px solid #6c63ff; padding: 16px 20px; border-radius: 0 8px 8px 0; margin-bottom: 20px;">
    <p style="margin: 0 0 8px 0; font-weight: 600; color: #555; font-size: 13px; text-transform: uppercase; letter-spacing: 0.5px;">Message</p>
    <p style="margin: 0; color: #1a1a1a; line-height: 1.6; white-space: pre-wrap;">%s</p>
  </div>
  <p style="font-size: 12px; color: #999; margin-top: 24px; border-top: 1px solid #eee; padding-top: 12px;">
    Sent via your portfolio contact form. You can reply directly to this email to respond to %s.
  </p>
</div>`, name, email, email, message, name)
}
