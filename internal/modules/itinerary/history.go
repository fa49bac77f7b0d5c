// README: Conversation history as an explicit value, no ambient session state.
package itinerary

import "strings"

// Role tags a conversation turn's author.
type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

// Turn is a single message in the refinement conversation.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// History is the ordered refinement conversation. It is passed into and
// returned from each refinement call; the append helpers copy so callers can
// keep old snapshots.
type History []Turn

// WithUser returns a new history with a user turn appended.
func (h History) WithUser(content string) History {
	return h.with(Turn{Role: RoleUser, Content: content})
}

// WithAI returns a new history with an assistant turn appended.
func (h History) WithAI(content string) History {
	return h.with(Turn{Role: RoleAI, Content: content})
}

func (h History) with(t Turn) History {
	out := make(History, len(h), len(h)+1)
	copy(out, h)
	return append(out, t)
}

// Transcript flattens the history into one line per turn, prefixed "User:" or
// "AI:", in chronological order. An empty history yields an empty string.
// Deterministic and idempotent.
func (h History) Transcript() string {
	if len(h) == 0 {
		return ""
	}

	lines := make([]string, 0, len(h))
	for _, t := range h {
		prefix := "AI"
		if t.Role == RoleUser {
			prefix = "User"
		}
		lines = append(lines, prefix+": "+t.Content)
	}
	return strings.Join(lines, "\n")
}
