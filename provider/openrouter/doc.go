// Package openrouter implements the provider abstraction on top of the
// OpenRouter chat completion API, which speaks the OpenAI wire protocol.
//
// The streaming response is pumped into the event channel one delta at a
// time. Only assistant text deltas become Chunk events; reasoning deltas
// (an OpenRouter extension field) and tool-call deltas are dropped by
// policy, and transport failures surface as in-band Error events.
package openrouter
