package channel

import (
	"github.com/FocuswithJustin/fileencoder/core/errors"
)

// MemoryFiles is an in-memory FileIO keyed by path.
type MemoryFiles map[string][]byte

func (m MemoryFiles) Read(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, errors.NewFileNotFound(path)
	}
	return append([]byte(nil), data...), nil
}

func (m MemoryFiles) Write(path string, data []byte) error {
	m[path] = append([]byte(nil), data...)
	return nil
}

func (m MemoryFiles) Exists(path string) bool {
	_, ok := m[path]
	return ok
}

// MemoryClipboard is an in-memory ClipboardIO.
type MemoryClipboard struct {
	Text string
}

func (c *MemoryClipboard) Read() (string, error) {
	return c.Text, nil
}

func (c *MemoryClipboard) Write(text string) error {
	c.Text = text
	return nil
}

var (
	_ FileIO      = MemoryFiles{}
	_ ClipboardIO = (*MemoryClipboard)(nil)
)
