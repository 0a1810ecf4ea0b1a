package provider

import (
	"context"

	"github.com/chatbuf/chatbuf/transcript"
	"github.com/google/uuid"
)

// Provider is the capability the conversation core uses to issue streaming
// chat completions. Implementations own the wire protocol; the core only
// consumes the event channel.
type Provider interface {
	ChatCompletion(context.Context, CompletionParams) (<-chan StreamEvent, error)
}

// CompletionParams encapsulates one multi-turn chat completion request.
type CompletionParams struct {
	// RunID uniquely identifies this completion request for tracking and
	// debugging; it is stamped onto every event of the stream.
	RunID uuid.UUID

	// Instructions is the optional system prompt.
	Instructions string

	// Prompt is the new user input, sent after History.
	Prompt string

	// History holds the prior conversation turns, oldest first.
	History []transcript.Turn

	// Prevents unkeyed literals
	_ struct{}
}
