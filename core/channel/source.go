package channel

import (
	"strings"

	"github.com/FocuswithJustin/fileencoder/core/errors"
)

// TagSeparator splits the original file name from the payload in tagged clipboard text.
const TagSeparator = ";"

// TagPayload prefixes text with the original file name: "<filename>;<text>".
func TagPayload(filename, text string) string {
	return filename + TagSeparator + text
}

// SplitTaggedPayload splits "<filename>;<text>" on the first separator.
// A file name containing ';' is therefore not recoverable.
func SplitTaggedPayload(s string) (filename, text string, err error) {
	filename, text, ok := strings.Cut(s, TagSeparator)
	if !ok {
		return "", "", errors.NewParse("tagged payload", "clipboard", "missing \""+TagSeparator+"\" separator after file name")
	}
	return filename, text, nil
}

// Source reads and writes text payloads over one Channel.
type Source struct {
	Channel   Channel
	Files     FileIO
	Clipboard ClipboardIO
	// TagFilename prefixes clipboard payloads with the original file name.
	TagFilename bool
}

// Location describes where the payload lives, for reports and logs.
func (s *Source) Location(textPath string) string {
	if s.Channel == Buffer {
		return "clipboard"
	}
	return textPath
}

// Read returns the text payload and, for tagged clipboard text, the original file name.
// textPath is ignored on the Buffer channel. An empty clipboard is returned as is so
// the caller reports it as an empty payload rather than a missing tag.
func (s *Source) Read(textPath string) (text, filename string, err error) {
	switch s.Channel {
	case File:
		data, err := s.Files.Read(textPath)
		if err != nil {
			return "", "", err
		}
		return string(data), "", nil
	case Buffer:
		raw, err := s.Clipboard.Read()
		if err != nil {
			return "", "", err
		}
		if !s.TagFilename || strings.TrimSpace(raw) == "" {
			return raw, "", nil
		}
		filename, text, err := SplitTaggedPayload(raw)
		if err != nil {
			return "", "", err
		}
		return text, filename, nil
	}
	return "", "", errors.NewUnsupported("channel", s.Channel.String())
}

// Write stores text. On the Buffer channel with TagFilename set, filename is
// prepended; an empty filename is never tagged.
func (s *Source) Write(textPath, text, filename string) error {
	switch s.Channel {
	case File:
		return s.Files.Write(textPath, []byte(text))
	case Buffer:
		if s.TagFilename && filename != "" {
			text = TagPayload(filename, text)
		}
		return s.Clipboard.Write(text)
	}
	return errors.NewUnsupported("channel", s.Channel.String())
}
