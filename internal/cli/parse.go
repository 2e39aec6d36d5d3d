package cli

import (
	"slices"

	"github.com/FocuswithJustin/fileencoder/core/channel"
	"github.com/FocuswithJustin/fileencoder/core/errors"
)

// Messages carried by ErrorIntent.
const (
	MsgUnknownSource = "Unknown source"
	MsgNoFilePath    = "File path needed"
)

var (
	helpFlags    = []string{"-h", "--help"}
	versionFlags = []string{"-v", "--version"}
	sourceFlags  = []string{"-s", "--source"}
	// "-file" is the spelling used in the original usage examples.
	fileFlags    = []string{"-f", "--file", "-file"}
	commandFlags = []string{"-c", "--command"}
)

const (
	wordEncode = "encode"
	wordDecode = "decode"
)

// Parse resolves args into exactly one Intent. It never panics and reports
// problems as ErrorIntent or EmptyIntent. exists reports whether a path names an
// existing file; it is consulted only for a single bare argument.
func Parse(args []string, exists func(string) bool) Intent {
	switch len(args) {
	case 0:
		return EmptyIntent{}
	case 1:
		return parseSingle(args[0], exists)
	}
	return parseMulti(args)
}

func parseSingle(arg string, exists func(string) bool) Intent {
	switch {
	case slices.Contains(helpFlags, arg):
		return HelpIntent{}
	case slices.Contains(versionFlags, arg):
		return VersionIntent{}
	case exists != nil && exists(arg):
		return EncodeIntent{Source: channel.Buffer, Path: arg}
	}
	return EmptyIntent{}
}

func parseMulti(args []string) Intent {
	source := channel.Buffer
	if value, found, ok := flagValue(args, sourceFlags); found {
		if !ok {
			return errorIntent(MsgUnknownSource, errors.ErrUnknownSource)
		}
		ch, err := channel.Parse(value)
		if err != nil {
			return errorIntent(MsgUnknownSource, err)
		}
		source = ch
	}

	path, ok := resolvePath(args)
	if !ok {
		return errorIntent(MsgNoFilePath, errors.ErrNoFilePath)
	}

	if direction(args) == wordDecode {
		return DecodeIntent{Source: source, Path: path}
	}
	return EncodeIntent{Source: source, Path: path}
}

// resolvePath returns the value of -f/--file, or the last token when the flag is
// absent. The last-token fallback accepts anything but a known flag name, so
// "-s file -c encode" resolves to the path "encode".
func resolvePath(args []string) (string, bool) {
	if value, found, ok := flagValue(args, fileFlags); found {
		return value, ok && value != ""
	}
	last := args[len(args)-1]
	if isFlagName(last) || last == "" {
		return "", false
	}
	return last, true
}

// direction returns the first literal "encode" or "decode" token, defaulting to encode.
func direction(args []string) string {
	for _, a := range args {
		if a == wordEncode || a == wordDecode {
			return a
		}
	}
	return wordEncode
}

// flagValue finds the first token matching one of names. found reports whether the
// flag is present, ok whether a value follows it. A known flag name is never a value.
func flagValue(args []string, names []string) (value string, found, ok bool) {
	for i, a := range args {
		if !slices.Contains(names, a) {
			continue
		}
		if i+1 < len(args) && !isFlagName(args[i+1]) {
			return args[i+1], true, true
		}
		return "", true, false
	}
	return "", false, false
}

func isFlagName(s string) bool {
	for _, names := range [][]string{helpFlags, versionFlags, sourceFlags, fileFlags, commandFlags} {
		if slices.Contains(names, s) {
			return true
		}
	}
	return false
}

func errorIntent(msg string, err error) ErrorIntent {
	return ErrorIntent{Message: msg, Err: err}
}
