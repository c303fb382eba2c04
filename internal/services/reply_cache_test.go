package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/models"
)

func TestConversationKey(t *testing.T) {
	messages := []models.ChatMessage{{Role: models.RoleUser, Content: "What are your skills?"}}

	key, err := conversationKey(SystemPrompt, messages)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, replyCachePrefix))

	again, err := conversationKey(SystemPrompt, messages)
	require.NoError(t, err)
	assert.Equal(t, key, again)

	edited, err := conversationKey(SystemPrompt+" Answer in French.", messages)
	require.NoError(t, err)
	assert.NotEqual(t, key, edited, "prompt change must not reuse cached replies")

	other, err := conversationKey(SystemPrompt, []models.ChatMessage{{Role: models.RoleUser, Content: "hi"}})
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestNewRedisReplyCache_UsesSystemPrompt(t *testing.T) {
	cache := NewRedisReplyCache(nil, 0)
	assert.Equal(t, SystemPrompt, cache.prompt)
}
