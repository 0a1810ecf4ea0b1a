// Package transcript converts between flat, human-edited document text and
// structured multi-turn conversation history.
//
// A transcript document is an ordered sequence of lines divided into segments
// by two sentinel marker lines, one per role. Decoding recovers the completed
// turns plus the trailing pending prompt; encoding is incremental by design,
// because assistant text arrives as a live stream and is appended to the
// document fragment by fragment rather than re-serialized wholesale.
package transcript
