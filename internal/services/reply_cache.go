package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"portfolio-backend/internal/models"
)

const replyCachePrefix = "chat_reply:"

// ReplyCache stores upstream replies keyed by the full conversation.
type ReplyCache interface {
	Get(ctx context.Context, messages []models.ChatMessage) (string, bool, error)
	Set(ctx context.Context, messages []models.ChatMessage, reply string) error
}

type RedisReplyCache struct {
	redis  *redis.Client
	ttl    time.Duration
	prompt string
}

// NewRedisReplyCache keys entries by the system prompt and the conversation,
// so a prompt change never serves replies written under the old one.
func NewRedisReplyCache(client *redis.Client, ttl time.Duration) *RedisReplyCache {
	return &RedisReplyCache{redis: client, ttl: ttl, prompt: SystemPrompt}
}

func (c *RedisReplyCache) Get(ctx context.Context, messages []models.ChatMessage) (string, bool, error) {
	key, err := conversationKey(c.prompt, messages)
	if err != nil {
		return "", false, err
	}

	reply, err := c.redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read cached reply: %w", err)
	}
	return reply, true, nil
}

func (c *RedisReplyCache) Set(ctx context.Context, messages []models.ChatMessage, reply string) error {
	key, err := conversationKey(c.prompt, messages)
	if err != nil {
		return err
	}
	if err := c.redis.Set(ctx, key, reply, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache reply: %w", err)
	}
	return nil
}

func conversationKey(prompt string, messages []models.ChatMessage) (string, error) {
	data, err := json.Marshal(messages)
	if err != nil {
		return "", fmt.Errorf("failed to encode conversation: %w", err)
	}
	h := sha256.New()
	h.Write([]byte(prompt))
	h.Write([]byte{0})
	h.Write(data)
	return replyCachePrefix + hex.EncodeToString(h.Sum(nil)), nil
}
