// Package conversation defines the conversational input the analysis engine
// consumes.  The chat front end owns message identity, timestamps, and
// ordering; this package only models the fields the engine reads.
package conversation

import "strings"

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message is a single chat turn.  Text may be empty; the engine treats empty
// user turns as contributing no keywords while still counting as a turn.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// History is an ordered conversation snapshot, oldest first.
type History []Message

// UserText concatenates the text of all user-authored messages with a single
// space, in chronological order.  This is the exact input contract of the
// classifier.
func (h History) UserText() string {
	var parts []string
	for _, m := range h {
		if m.Role == RoleUser {
			parts = append(parts, m.Text)
		}
	}
	return strings.Join(parts, " ")
}

// UserTurns counts user-authored messages, empty ones included.
func (h History) UserTurns() int {
	n := 0
	for _, m := range h {
		if m.Role == RoleUser {
			n++
		}
	}
	return n
}
