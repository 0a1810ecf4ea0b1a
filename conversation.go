package chatbuf

import (
	"context"
	"log/slog"

	"github.com/chatbuf/chatbuf/document"
	"github.com/chatbuf/chatbuf/pkg/slogx"
	"github.com/chatbuf/chatbuf/pkg/uuidx"
	"github.com/chatbuf/chatbuf/provider"
	"github.com/chatbuf/chatbuf/transcript"
)

// CreatePromptBuffer seeds doc as a fresh transcript: a user marker opening
// the first segment, with the cursor placed after it ready for typing.
func CreatePromptBuffer(doc document.Document) error {
	if err := doc.SetContent(transcript.Seed); err != nil {
		return &DocumentError{Op: "set content", Err: err}
	}

	row, col, err := doc.MaxPos()
	if err != nil {
		return &DocumentError{Op: "max pos", Err: err}
	}
	if err := doc.SetCursor(row, col); err != nil {
		return &DocumentError{Op: "set cursor", Err: err}
	}
	return nil
}

// PerformPrompt runs one prompt/response cycle against doc: decode the
// transcript, stream a completion for the pending prompt, and append the
// assistant's reply fragment by fragment under an assistant header, then
// reopen the document with a user header.
//
// Each append is its own scoped document acquisition, never held across the
// wait for the next fragment, so the document stays live while the response
// streams in. On a mid-stream failure whatever was appended stays put and the
// trailing user marker is omitted; the next cycle reads the partial reply
// back as history.
func (a *App) PerformPrompt(ctx context.Context, doc document.Document, model Model) error {
	if a == nil {
		return ErrUninitialized
	}
	if !model.valid() {
		return ErrInvalidModel
	}

	lines, err := doc.Lines()
	if err != nil {
		return &DocumentError{Op: "lines", Err: err}
	}
	prompt, history := transcript.Decode(lines)

	runID := uuidx.New()
	slog.Debug("performing prompt",
		slogx.Stringer("run_id", runID),
		slogx.Stringer("model", model),
		slog.Int("history_turns", len(history)),
	)

	events, err := a.client(model).ChatCompletion(ctx, provider.CompletionParams{
		RunID:   runID,
		Prompt:  prompt,
		History: history,
	})
	if err != nil {
		return &ProviderError{Err: err}
	}

	if err := doc.Append(transcript.AssistantHeader); err != nil {
		go drain(events)
		return &DocumentError{Op: "append", Err: err}
	}

	for event := range events {
		switch e := event.(type) {
		case provider.Chunk:
			if err := doc.Append(e.Text); err != nil {
				go drain(events)
				return &DocumentError{Op: "append", Err: err}
			}
		case provider.Error:
			go drain(events)
			return &ProviderError{Err: e.Err}
		}
	}

	if err := doc.Append(transcript.UserHeader); err != nil {
		return &DocumentError{Op: "append", Err: err}
	}
	return nil
}

// drain unblocks the producer goroutine after an aborted consume.
func drain(events <-chan provider.StreamEvent) {
	for range events {
	}
}
