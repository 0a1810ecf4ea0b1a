// Package provider defines the abstraction between the conversation core and
// remote completion providers. It specifies the completion request shape and
// the stream of typed events a provider emits while a response is generated.
//
// The streaming architecture uses three event types:
//  1. Delim: delimiter events marking stream boundaries
//  2. Chunk: one incremental fragment of assistant text
//  3. Error: a transport or provider failure, carried in-band
//
// An Error event does not terminate the stream by itself; the consumer
// decides whether to keep reading. The event channel is finite and closes
// when the provider signals end-of-turn. It is not restartable: replaying a
// conversation requires a new ChatCompletion call, which may generate
// different content.
//
// Example usage:
//
//	events, err := prov.ChatCompletion(ctx, provider.CompletionParams{
//	    RunID:   uuidx.New(),
//	    Prompt:  "and in Go?",
//	    History: history,
//	})
//	if err != nil {
//	    return err
//	}
//
//	for event := range events {
//	    switch e := event.(type) {
//	    case provider.Chunk:
//	        // append e.Text to the document
//	    case provider.Error:
//	        // abort, keeping what was already appended
//	    }
//	}
package provider
