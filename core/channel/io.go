package channel

import (
	"os"
	"path/filepath"

	"github.com/FocuswithJustin/fileencoder/core/errors"
	"github.com/atotto/clipboard"
)

// FileIO is the filesystem capability the pipeline needs.
type FileIO interface {
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
	Exists(path string) bool
}

// ClipboardIO is the clipboard capability the pipeline needs.
type ClipboardIO interface {
	Read() (string, error)
	Write(text string) error
}

// Injectable functions for testing
var (
	osReadFile     = os.ReadFile
	osStat         = os.Stat
	osCreateTemp   = os.CreateTemp
	osRename       = os.Rename
	clipboardRead  = clipboard.ReadAll
	clipboardWrite = clipboard.WriteAll
)

// OSFiles implements FileIO on the local filesystem.
type OSFiles struct{}

// Read loads the whole file at path.
func (OSFiles) Read(path string) ([]byte, error) {
	data, err := osReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errors.NotFoundError{Resource: "file", ID: path, Err: errors.ErrFileNotFound}
		}
		return nil, errors.NewIO("read", path, err)
	}
	return data, nil
}

// Exists reports whether path names an existing regular file or other non-directory.
func (OSFiles) Exists(path string) bool {
	info, err := osStat(path)
	return err == nil && !info.IsDir()
}

// Write creates or overwrites path. Data goes to a uniquely named temp file in the
// destination directory first and is renamed into place, so a failed write never
// leaves a truncated file behind.
func (OSFiles) Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	tempFile, err := osCreateTemp(dir, ".fileencoder-*")
	if err != nil {
		return errors.NewIO("create temp file in", dir, err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return errors.NewIO("write", path, err)
	}
	if err := tempFile.Chmod(0644); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return errors.NewIO("chmod", path, err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return errors.NewIO("close", path, err)
	}
	if err := osRename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.NewIO("rename", path, err)
	}
	return nil
}

// SystemClipboard implements ClipboardIO on the OS clipboard.
type SystemClipboard struct{}

// Read returns the clipboard text.
func (SystemClipboard) Read() (string, error) {
	if clipboard.Unsupported {
		return "", errors.NewUnsupported("clipboard", "no clipboard utility available")
	}
	text, err := clipboardRead()
	if err != nil {
		return "", errors.NewIO("read", "clipboard", err)
	}
	return text, nil
}

// Write replaces the clipboard text.
func (SystemClipboard) Write(text string) error {
	if clipboard.Unsupported {
		return errors.NewUnsupported("clipboard", "no clipboard utility available")
	}
	if err := clipboardWrite(text); err != nil {
		return errors.NewIO("write", "clipboard", err)
	}
	return nil
}

var (
	_ FileIO      = OSFiles{}
	_ ClipboardIO = SystemClipboard{}
)
