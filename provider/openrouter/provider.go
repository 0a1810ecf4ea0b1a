package openrouter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/chatbuf/chatbuf/pkg/slogx"
	"github.com/chatbuf/chatbuf/provider"
	"github.com/chatbuf/chatbuf/transcript"
	"github.com/go-openapi/strfmt"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the OpenRouter endpoint; the API is OpenAI-compatible.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

var _ provider.Provider = (*Provider)(nil)

// Provider issues streaming chat completions for one OpenRouter model.
// It is safe for concurrent use and meant to be constructed once per model
// and shared; connection setup is the expensive part.
type Provider struct {
	client *openai.Client
	model  string
}

// New builds a provider for the given OpenRouter model name. Extra request
// options are appended after the defaults, so tests can override the base
// URL the same way they would with the upstream client.
func New(apiKey, model string, options ...option.RequestOption) *Provider {
	options = append([]option.RequestOption{
		option.WithBaseURL(DefaultBaseURL),
		option.WithAPIKey(apiKey),
	}, options...)

	return &Provider{
		client: openai.NewClient(options...),
		model:  model,
	}
}

// Model returns the remote model name this provider targets.
func (p *Provider) Model() string {
	return p.model
}

func (p *Provider) buildRequest(params *provider.CompletionParams) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(params.History)+2)

	if strings.TrimSpace(params.Instructions) != "" {
		messages = append(messages, openai.SystemMessage(params.Instructions))
	}
	for _, turn := range params.History {
		switch turn.Role {
		case transcript.Assistant:
			messages = append(messages, openai.AssistantMessage(turn.Text))
		default:
			messages = append(messages, openai.UserMessage(turn.Text))
		}
	}
	messages = append(messages, openai.UserMessage(params.Prompt))

	return openai.ChatCompletionNewParams{
		Messages: openai.F(messages),
		Model:    openai.F(p.model),
		N:        openai.Int(1),
	}
}

func (p *Provider) ChatCompletion(ctx context.Context, params provider.CompletionParams) (<-chan provider.StreamEvent, error) {
	chatParams := p.buildRequest(&params)

	events := make(chan provider.StreamEvent, 10)
	go func() {
		defer close(events)
		p.runStream(ctx, chatParams, &params, events)
	}()
	return events, nil
}

func (p *Provider) runStream(ctx context.Context, chatParams openai.ChatCompletionNewParams, command *provider.CompletionParams, events chan<- provider.StreamEvent) {
	strm := p.client.Chat.Completions.NewStreaming(ctx, chatParams)

	if strm.Err() != nil {
		events <- provider.Error{
			RunID:     command.RunID,
			Err:       strm.Err(),
			Timestamp: strfmt.DateTime(time.Now()),
		}
		strm.Close()
		return
	}

	// Ensure cleanup on all exit paths
	defer func() {
		strm.Close()
		// Send error if context was cancelled
		if err := ctx.Err(); err != nil {
			events <- provider.Error{
				RunID:     command.RunID,
				Err:       err,
				Timestamp: strfmt.DateTime(time.Now()),
			}
		}
	}()

	var notFirst bool
	for strm.Next() {
		// Check context before processing each chunk
		if err := ctx.Err(); err != nil {
			return
		}

		if !notFirst {
			notFirst = true
			events <- provider.Delim{RunID: command.RunID, Delim: "start"}
		}

		chunk := strm.Current()
		event, ok := chunkToStreamEvent(&chunk, command)
		if !ok {
			continue
		}
		events <- event
	}

	if err := strm.Err(); err != nil {
		events <- provider.Error{
			RunID:     command.RunID,
			Err:       err,
			Timestamp: strfmt.DateTime(time.Now()),
		}
		return
	}

	if notFirst && ctx.Err() == nil {
		events <- provider.Delim{RunID: command.RunID, Delim: "end"}
	}
}

// chunkToStreamEvent classifies one streamed delta. Only assistant text makes
// it out; everything else is dropped here, on purpose.
func chunkToStreamEvent(chunk *openai.ChatCompletionChunk, command *provider.CompletionParams) (provider.StreamEvent, bool) {
	if len(chunk.Choices) == 0 {
		return nil, false
	}

	delta := chunk.Choices[0].Delta
	if len(delta.ToolCalls) > 0 {
		return nil, false
	}

	if delta.Content == "" {
		// OpenRouter delivers reasoning tokens in an extension field the
		// upstream client does not model; they are not surfaced to the
		// document yet.
		if gjson.Get(delta.JSON.RawJSON(), "reasoning").Exists() {
			slog.Debug("dropping reasoning delta", slogx.Stringer("run_id", command.RunID))
		}
		return nil, false
	}

	return provider.Chunk{
		RunID:     command.RunID,
		Text:      delta.Content,
		Timestamp: strfmt.DateTime(time.Now()),
	}, true
}
