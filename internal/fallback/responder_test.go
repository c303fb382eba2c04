package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-backend/internal/models"
)

func TestRespond_SkillsQuestion(t *testing.T) {
	r := Default()
	assert.Equal(t, Entries[1].Response, r.Respond("What are your skills?"))
}

func TestRespond_EmptyAndUnmatchedUseDefault(t *testing.T) {
	r := Default()
	assert.Equal(t, DefaultResponse, r.Respond(""))
	assert.Equal(t, DefaultResponse, r.Respond("zzz qqq"))
}

func TestRespond_IsCaseInsensitive(t *testing.T) {
	r := Default()
	assert.Equal(t, r.Respond("shopify polaris"), r.Respond("SHOPIFY Polaris"))
}

func TestRespond_HighestScoreWins(t *testing.T) {
	r := NewResponder([]Entry{
		{Keywords: []string{"go"}, Response: "one"},
		{Keywords: []string{"go", "chi", "redis"}, Response: "three"},
	}, "default")

	assert.Equal(t, "three", r.Respond("go with chi and redis"))
	assert.Equal(t, "one", r.Respond("go"))
}

func TestRespond_TieKeepsEarlierEntry(t *testing.T) {
	r := NewResponder([]Entry{
		{Keywords: []string{"alpha", "beta"}, Response: "first"},
		{Keywords: []string{"gamma", "delta"}, Response: "second"},
	}, "default")

	assert.Equal(t, "first", r.Respond("alpha gamma"))
	assert.Equal(t, "first", r.Respond("gamma delta alpha beta"))
}

func TestRespond_DropsEntriesWithoutKeywords(t *testing.T) {
	r := NewResponder([]Entry{
		{Keywords: nil, Response: "never"},
	}, "default")

	assert.Equal(t, "default", r.Respond("anything"))
}

func TestRespond_AlwaysReturnsDeclaredText(t *testing.T) {
	declared := map[string]bool{DefaultResponse: true}
	for _, e := range Entries {
		declared[e.Response] = true
	}

	r := Default()
	inputs := []string{
		"hi there", "tell me about yourself", "resume please", "do you know Malayalam?",
		"react or next.js?", "1234", "🙂", "Can I hire him for freelance work?",
	}
	for _, in := range inputs {
		assert.True(t, declared[r.Respond(in)], "unexpected response for %q", in)
	}
}

func TestEntries_HaveKeywords(t *testing.T) {
	for i, e := range Entries {
		assert.NotEmpty(t, e.Keywords, "entry %d", i)
		assert.NotEmpty(t, e.Response, "entry %d", i)
	}
}

func TestLastUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		messages []models.ChatMessage
		expected string
	}{
		{"nil conversation", nil, ""},
		{"no user message", []models.ChatMessage{{Role: "assistant", Content: "hello"}}, ""},
		{"picks most recent user", []models.ChatMessage{
			{Role: "user", Content: "first"},
			{Role: "assistant", Content: "reply"},
			{Role: "user", Content: "second"},
			{Role: "assistant", Content: "another reply"},
		}, "second"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, LastUserMessage(tc.messages))
		})
	}
}
