// Package chatbuf turns a plain-text document into a chat transcript with a
// remote completion provider. A user writes a prompt in the document, invokes
// a prompt cycle, and the assistant's reply streams back into the same
// document turn by turn, delimited by marker lines.
//
// The core pieces:
//
//   - transcript: parses the flat, human-edited document back into structured
//     turns, and defines the marker headers new turns are appended under
//   - provider / provider/openrouter: the streaming completion client and the
//     typed event stream it produces
//   - document: the host-buffer capability the core is written against
//   - App: the process-wide object holding the per-model client cache
//
// Typical use:
//
//	app, err := chatbuf.Setup(ctx, chatbuf.WithSecretPath("api/openrouter"))
//	if err != nil {
//	    return err
//	}
//
//	doc := document.NewFile("chat.md")
//	if err := chatbuf.CreatePromptBuffer(doc); err != nil {
//	    return err
//	}
//	// ... user writes a prompt into the document ...
//	if err := app.PerformPrompt(ctx, doc, chatbuf.ModelSmart); err != nil {
//	    return err
//	}
//
// A failed stream leaves whatever was already appended in the document and no
// trailing user marker; the next PerformPrompt tolerates that state and the
// partial assistant text reads back as history. Nothing is retried and
// nothing is rolled back.
package chatbuf
