// Package cli resolves loosely ordered command-line arguments into an Intent and
// dispatches it to the conversion pipeline.
package cli

import (
	"fmt"

	"github.com/FocuswithJustin/fileencoder/core/channel"
)

// Intent is the resolved outcome of argument parsing. The set of implementations
// is closed: EncodeIntent, DecodeIntent, HelpIntent, VersionIntent, EmptyIntent
// and ErrorIntent.
type Intent interface {
	fmt.Stringer
	intent()
}

// EncodeIntent converts the binary file at Path to text on Source.
type EncodeIntent struct {
	Source channel.Channel
	Path   string
}

// DecodeIntent restores a binary file from the text on Source.
type DecodeIntent struct {
	Source channel.Channel
	Path   string
}

// HelpIntent prints usage.
type HelpIntent struct{}

// VersionIntent prints the version string.
type VersionIntent struct{}

// EmptyIntent means there was nothing to do.
type EmptyIntent struct{}

// ErrorIntent carries a parse failure.
type ErrorIntent struct {
	Message string
	Err     error
}

func (EncodeIntent) intent()  {}
func (DecodeIntent) intent()  {}
func (HelpIntent) intent()    {}
func (VersionIntent) intent() {}
func (EmptyIntent) intent()   {}
func (ErrorIntent) intent()   {}

func (i EncodeIntent) String() string {
	return fmt.Sprintf("encode source=%s path=%q", i.Source, i.Path)
}

func (i DecodeIntent) String() string {
	return fmt.Sprintf("decode source=%s path=%q", i.Source, i.Path)
}

func (HelpIntent) String() string    { return "help" }
func (VersionIntent) String() string { return "version" }
func (EmptyIntent) String() string   { return "empty" }

func (i ErrorIntent) String() string {
	return fmt.Sprintf("error %q", i.Message)
}
