package document

import (
	"os"
	"strings"
)

var _ Document = (*File)(nil)

// File maps a transcript onto a file on disk. Every operation opens the file
// for its own duration, so the transcript stays readable and editable by
// other tools between appends. A file host has no cursor; the cursor methods
// report positions but moving it is a no-op.
type File struct {
	path string
}

// NewFile returns a document backed by the file at path. The file does not
// need to exist yet; a missing file reads as empty.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

func (f *File) read() (string, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (f *File) Lines() ([]string, error) {
	content, err := f.read()
	if err != nil {
		return nil, err
	}
	return strings.Split(content, "\n"), nil
}

func (f *File) Append(text string) error {
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.WriteString(text); err != nil {
		return err
	}
	return nil
}

func (f *File) SetContent(text string) error {
	return os.WriteFile(f.path, []byte(text), 0o644)
}

func (f *File) SetCursor(row, col int) error {
	return nil
}

func (f *File) MaxPos() (row, col int, err error) {
	content, err := f.read()
	if err != nil {
		return 0, 0, err
	}
	lines := strings.Split(content, "\n")
	return len(lines) - 1, len(lines[len(lines)-1]), nil
}
