// Package openrouter talks to the OpenRouter chat-completion API through the
// OpenAI-compatible SDK.
package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/pkg/errors"

	"portfolio-backend/internal/models"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultSiteURL = "https://localhost:3000"
	DefaultTitle   = "Developer Portfolio AI Assistant"

	maxErrorBody = 200
)

// ErrEmptyReply is returned when the upstream answered without any text.
var ErrEmptyReply = errors.New("empty response")

// StatusError is a non-success HTTP status from the upstream.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d – %s", e.Code, e.Body)
}

// ProviderError is an error object carried inside a successful response.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string { return e.Message }

type Config struct {
	APIKey     string
	BaseURL    string
	SiteURL    string
	Title      string
	HTTPClient *http.Client
}

// Request is a single chat-completion attempt against one model.
type Request struct {
	Model       string
	Messages    []models.ChatMessage
	MaxTokens   int64
	Temperature float64
}

type Client struct {
	api        openai.Client
	configured bool
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.SiteURL == "" {
		cfg.SiteURL = DefaultSiteURL
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithHeader("HTTP-Referer", cfg.SiteURL),
		option.WithHeader("X-Title", cfg.Title),
		// One attempt is one request; the caller owns the fallback order.
		option.WithMaxRetries(0),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	return &Client{
		api:        openai.NewClient(opts...),
		configured: cfg.APIKey != "",
	}
}

// Configured reports whether an API key was supplied.
func (c *Client) Configured() bool {
	return c.configured
}

// Complete sends one chat-completion request and returns the trimmed reply.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    req.Model,
		Messages: toParams(req.Messages),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.MaxTokens)
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &StatusError{Code: apiErr.StatusCode, Body: Truncate(errorBody(apiErr), maxErrorBody)}
		}
		return "", errors.Wrap(err, "request failed")
	}

	if msg := providerErrorMessage(completion.RawJSON()); msg != "" {
		return "", &ProviderError{Message: msg}
	}

	if len(completion.Choices) == 0 {
		return "", ErrEmptyReply
	}
	reply := strings.TrimSpace(completion.Choices[0].Message.Content)
	if reply == "" {
		return "", ErrEmptyReply
	}
	return reply, nil
}

// errorBody prefers the full response text, which the SDK keeps readable on
// failed responses, over the decoded error object.
func errorBody(apiErr *openai.Error) string {
	if apiErr.Response != nil && apiErr.Response.Body != nil {
		if b, err := io.ReadAll(apiErr.Response.Body); err == nil && len(b) > 0 {
			return strings.TrimSpace(string(b))
		}
	}
	return apiErr.RawJSON()
}

// providerErrorMessage extracts error.message from a 2xx body, which
// OpenRouter uses for upstream model failures.
func providerErrorMessage(raw string) string {
	if raw == "" {
		return ""
	}
	var body struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(raw), &body); err != nil || body.Error == nil {
		return ""
	}
	return body.Error.Message
}

func toParams(messages []models.ChatMessage) []openai.ChatCompletionMessageParamUnion {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case models.RoleSystem:
			params = append(params, openai.SystemMessage(m.Content))
		case models.RoleAssistant:
			params = append(params, openai.AssistantMessage(m.Content))
		default:
			params = append(params, openai.UserMessage(m.Content))
		}
	}
	return params
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
