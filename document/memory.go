package document

import (
	"strings"
	"sync"
)

var _ Document = (*Memory)(nil)

// Memory is an in-process document. All operations take the buffer lock for
// their own duration only, mirroring how an editor host scopes buffer access
// per call rather than per conversation.
type Memory struct {
	mu      sync.Mutex
	content string
	row     int
	col     int
}

// NewMemory returns an empty in-memory document.
func NewMemory() *Memory {
	return &Memory{}
}

// Content returns the full document text.
func (m *Memory) Content() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.content
}

// Cursor returns the current cursor position.
func (m *Memory) Cursor() (row, col int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.row, m.col
}

func (m *Memory) Lines() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return strings.Split(m.content, "\n"), nil
}

func (m *Memory) Append(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content += text
	return nil
}

func (m *Memory) SetContent(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content = text
	return nil
}

func (m *Memory) SetCursor(row, col int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.row, m.col = row, col
	return nil
}

func (m *Memory) MaxPos() (row, col int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	lines := strings.Split(m.content, "\n")
	last := lines[len(lines)-1]
	return len(lines) - 1, len(last), nil
}
