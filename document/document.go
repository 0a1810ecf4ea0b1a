package document

// Document is the capability set the conversation core needs from a host
// buffer. Each method is one independently scoped acquisition: the core never
// holds the document across a network wait, so the host stays responsive to
// other edits between appends.
type Document interface {
	// Lines returns the document content as ordered lines, split on newlines.
	Lines() ([]string, error)

	// Append adds text, which may span multiple lines, at the end of the
	// document.
	Append(text string) error

	// SetContent replaces the entire document.
	SetContent(text string) error

	// SetCursor moves the host cursor to the given position, if the host has
	// one. Rows and columns are zero-based.
	SetCursor(row, col int) error

	// MaxPos reports the position just past the last character, where the
	// cursor goes when a fresh prompt buffer is opened.
	MaxPos() (row, col int, err error)
}
