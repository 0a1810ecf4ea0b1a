package transcript

// Role identifies the author of a turn.
type Role uint8

const (
	// User marks a turn written by the human editing the document.
	User Role = iota
	// Assistant marks a turn produced by the remote model.
	Assistant
)

// String returns the lowercase name of the role.
func (r Role) String() string {
	switch r {
	case User:
		return "user"
	case Assistant:
		return "assistant"
	default:
		return "unknown"
	}
}

// Turn is one logical message in a conversation. Text keeps the trailing
// newlines the document carried; it is never empty for turns produced by
// Decode, except for a final assistant turn that was cut off before any
// content arrived.
type Turn struct {
	Role Role
	Text string
}

// UserTurn returns a user-role turn with the given text.
func UserTurn(text string) Turn {
	return Turn{Role: User, Text: text}
}

// AssistantTurn returns an assistant-role turn with the given text.
func AssistantTurn(text string) Turn {
	return Turn{Role: Assistant, Text: text}
}
