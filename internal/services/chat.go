package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"portfolio-backend/internal/fallback"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/openrouter"
)

const (
	DefaultChatTimeout = 15 * time.Second
	chatMaxTokens      = 500
	chatTemperature    = 0.7
	logSnippetLength   = 100
)

// DefaultModels are free hosted models, most preferred first.
var DefaultModels = []string{
	"mistralai/mistral-small-3.1-24b-instruct:free",
	"meta-llama/llama-3.3-70b-instruct:free",
	"google/gemma-3-4b-it:free",
	"google/gemma-3-12b-it:free",
	"nvidia/llama-3.1-nemotron-nano-12b-v1:free",
	"meta-llama/llama-4-scout:free",
	"qwen/qwen-2.5-72b-instruct:free",
}

// RefusalPatterns mark replies where the model did not really answer.
var RefusalPatterns = []string{
	"unable to access",
	"technical issues",
	"currently unavailable",
	"i cannot assist",
	"please try again in a few minutes",
	"system is restored",
}

// ErrRefusal is recorded when a reply matches a refusal pattern.
var ErrRefusal = errors.New("model returned a refusal response")

// AttemptError records why one model candidate failed.
type AttemptError struct {
	Model string
	Err   error
}

func (e *AttemptError) Error() string { return fmt.Sprintf("%s: %v", e.Model, e.Err) }

func (e *AttemptError) Unwrap() error { return e.Err }

// Completer sends one chat-completion request upstream.
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, req openrouter.Request) (string, error)
}

type ChatGatewayOptions struct {
	Models          []string
	RefusalPatterns []string
	Timeout         time.Duration
}

type ChatGateway struct {
	upstream  Completer
	cache     ReplyCache
	responder *fallback.Responder
	logger    logrus.FieldLogger
	models    []string
	refusals  []string
	timeout   time.Duration
}

// NewChatGateway wires the gateway. upstream and cache may be nil; a nil or
// unconfigured upstream answers every request locally.
func NewChatGateway(upstream Completer, cache ReplyCache, responder *fallback.Responder, logger logrus.FieldLogger, opts ChatGatewayOptions) *ChatGateway {
	if responder == nil {
		responder = fallback.Default()
	}
	if len(opts.Models) == 0 {
		opts.Models = DefaultModels
	}
	if opts.RefusalPatterns == nil {
		opts.RefusalPatterns = RefusalPatterns
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultChatTimeout
	}

	return &ChatGateway{
		upstream:  upstream,
		cache:     cache,
		responder: responder,
		logger:    logger,
		models:    opts.Models,
		refusals:  opts.RefusalPatterns,
		timeout:   opts.Timeout,
	}
}

// Reply answers a conversation. A nil slice is invalid input; every other
// failure degrades to a local answer.
func (g *ChatGateway) Reply(ctx context.Context, messages []models.ChatMessage) (resp *models.ChatResponse, err error) {
	if messages == nil {
		return nil, &InvalidInputError{Message: "Messages array is required"}
	}

	log := middleware.Logger(ctx, g.logger)
	defer func() {
		if rec := recover(); rec != nil {
			log.WithField("panic", rec).Error("chat gateway failed")
			resp, err = g.ErrorFallback(), nil
			return
		}
		if resp != nil {
			chatReplies.WithLabelValues(resp.Source).Inc()
		}
	}()

	lastUser := fallback.LastUserMessage(messages)

	if g.upstream == nil || !g.upstream.Configured() {
		return &models.ChatResponse{Reply: g.responder.Respond(lastUser), Source: models.SourceLocal}, nil
	}

	if reply, ok := g.cachedReply(ctx, log, messages); ok {
		return &models.ChatResponse{Reply: reply, Source: models.SourceAI}, nil
	}

	conversation := make([]models.ChatMessage, 0, len(messages)+1)
	conversation = append(conversation, models.ChatMessage{Role: models.RoleSystem, Content: SystemPrompt})
	conversation = append(conversation, messages...)

	var lastErr error
	for _, model := range g.models {
		reply, attemptErr := g.attempt(ctx, log, model, conversation)
		if attemptErr != nil {
			lastErr = attemptErr
			continue
		}

		g.storeReply(ctx, log, messages, reply)
		return &models.ChatResponse{Reply: reply, Source: models.SourceAI}, nil
	}

	log.WithError(lastErr).Warn("all AI models failed, using local fallback")
	return &models.ChatResponse{Reply: g.responder.Respond(lastUser), Source: models.SourceLocalFallback}, nil
}

// ErrorFallback is the reply used when the request could not be processed.
// Each call counts as one served reply.
func (g *ChatGateway) ErrorFallback() *models.ChatResponse {
	chatReplies.WithLabelValues(models.SourceErrorFallback).Inc()
	return &models.ChatResponse{Reply: g.responder.DefaultResponse(), Source: models.SourceErrorFallback}
}

// attempt runs a single candidate under its own deadline.
func (g *ChatGateway) attempt(ctx context.Context, log logrus.FieldLogger, model string, conversation []models.ChatMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	reply, err := g.upstream.Complete(ctx, openrouter.Request{
		Model:       model,
		Messages:    conversation,
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
	})
	if err != nil {
		recordAttempt(model, attemptResult(err), time.Since(start))
		log.WithFields(logrus.Fields{
			"model": model,
			"error": openrouter.Truncate(err.Error(), 2*logSnippetLength),
		}).Warn("model failed, trying next")
		return "", &AttemptError{Model: model, Err: err}
	}

	if g.isRefusal(reply) {
		recordAttempt(model, "refusal", time.Since(start))
		log.WithFields(logrus.Fields{
			"model": model,
			"reply": openrouter.Truncate(reply, logSnippetLength),
		}).Warn("model refused")
		return "", &AttemptError{Model: model, Err: ErrRefusal}
	}

	recordAttempt(model, "ok", time.Since(start))
	return reply, nil
}

func (g *ChatGateway) isRefusal(reply string) bool {
	lower := strings.ToLower(reply)
	for _, p := range g.refusals {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func (g *ChatGateway) cachedReply(ctx context.Context, log logrus.FieldLogger, messages []models.ChatMessage) (string, bool) {
	if g.cache == nil {
		return "", false
	}
	reply, ok, err := g.cache.Get(ctx, messages)
	if err != nil {
		log.WithError(err).Warn("reply cache lookup failed")
		return "", false
	}
	return reply, ok
}

func (g *ChatGateway) storeReply(ctx context.Context, log logrus.FieldLogger, messages []models.ChatMessage, reply string) {
	if g.cache == nil {
		return
	}
	if err := g.cache.Set(ctx, messages, reply); err != nil {
		log.WithError(err).Warn("failed to cache reply")
	}
}

func attemptResult(err error) string {
	var statusErr *openrouter.StatusError
	var providerErr *openrouter.ProviderError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &statusErr):
		return "status"
	case errors.As(err, &providerErr):
		return "provider"
	case errors.Is(err, openrouter.ErrEmptyReply):
		return "empty"
	default:
		return "error"
	}
}
