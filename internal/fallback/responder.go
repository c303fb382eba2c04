// Package fallback answers chat messages without any network access by
// scoring a static keyword table against the visitor's message.
package fallback

import (
	"strings"

	"portfolio-backend/internal/models"
)

// Entry pairs a set of lowercase keywords with a canned response.
type Entry struct {
	Keywords []string
	Response string
}

// Score counts the keywords that occur as substrings of lower.
func (e Entry) Score(lower string) int {
	score := 0
	for _, kw := range e.Keywords {
		if strings.Contains(lower, kw) {
			score++
		}
	}
	return score
}

// Responder picks the best matching entry from a fixed table.
type Responder struct {
	entries         []Entry
	defaultResponse string
}

// NewResponder builds a responder over entries. Entries with no keywords are
// dropped since they can never match.
func NewResponder(entries []Entry, defaultResponse string) *Responder {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if len(e.Keywords) > 0 {
			kept = append(kept, e)
		}
	}
	return &Responder{entries: kept, defaultResponse: defaultResponse}
}

// Default returns the responder backed by the built-in portfolio table.
func Default() *Responder {
	return NewResponder(Entries, DefaultResponse)
}

// Respond returns the response of the highest scoring entry. Ties keep the
// entry declared first; a zero score yields the default response.
func (r *Responder) Respond(input string) string {
	lower := strings.ToLower(input)

	var best *Entry
	bestScore := 0
	for i := range r.entries {
		if score := r.entries[i].Score(lower); score > bestScore {
			bestScore = score
			best = &r.entries[i]
		}
	}

	if best == nil {
		return r.defaultResponse
	}
	return best.Response
}

// DefaultResponse returns the text used when nothing matches.
func (r *Responder) DefaultResponse() string {
	return r.defaultResponse
}

// LastUserMessage returns the content of the most recent user message, or ""
// when the conversation has none.
func LastUserMessage(messages []models.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == models.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}
