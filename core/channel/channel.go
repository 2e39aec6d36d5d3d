// Package channel moves text payloads between the conversion pipeline and the medium
// that carries them: a text file on disk or the system clipboard.
package channel

import (
	"github.com/FocuswithJustin/fileencoder/core/errors"
)

// Channel identifies where a text payload is read from or written to.
type Channel int

const (
	// Buffer routes the payload through the clipboard.
	Buffer Channel = iota
	// File stores the payload in a text file next to the binary.
	File
)

// String returns the command-line name of the channel.
func (c Channel) String() string {
	switch c {
	case Buffer:
		return "buffer"
	case File:
		return "file"
	}
	return "unknown"
}

// Parse maps a --source value onto a Channel.
func Parse(s string) (Channel, error) {
	switch s {
	case "buffer":
		return Buffer, nil
	case "file":
		return File, nil
	}
	return Buffer, &errors.ValidationError{Field: "source", Value: s, Message: "expected file or buffer", Err: errors.ErrUnknownSource}
}
