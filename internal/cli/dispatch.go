package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/FocuswithJustin/fileencoder/core/channel"
	"github.com/FocuswithJustin/fileencoder/core/digest"
	"github.com/FocuswithJustin/fileencoder/core/errors"
	"github.com/FocuswithJustin/fileencoder/core/pipeline"
	"github.com/FocuswithJustin/fileencoder/internal/logging"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Runner performs conversions. *pipeline.Pipeline implements it.
type Runner interface {
	Encode(ctx context.Context, ch channel.Channel, path string) (*pipeline.Result, error)
	Decode(ctx context.Context, ch channel.Channel, path string) (*pipeline.Result, error)
}

var (
	errorColor  = color.New(color.FgRed, color.Bold)
	noticeColor = color.New(color.FgYellow)
)

// Dispatch executes intent and returns the process exit code.
func Dispatch(ctx context.Context, intent Intent, r Runner, stdout, stderr io.Writer) int {
	switch in := intent.(type) {
	case HelpIntent:
		fmt.Fprint(stdout, usage)
		return ExitOK
	case VersionIntent:
		fmt.Fprintf(stdout, "fileencoder version %s\n", Version)
		return ExitOK
	case EmptyIntent:
		noticeColor.Fprintln(stderr, noticeEmpty)
		return ExitUsage
	case ErrorIntent:
		errorColor.Fprintf(stderr, "Error: %s\n", in.Message)
		fmt.Fprintln(stderr, hintHelp)
		return ExitError
	case EncodeIntent:
		res, err := r.Encode(ctx, in.Source, in.Path)
		return report(ctx, res, err, stdout, stderr)
	case DecodeIntent:
		res, err := r.Decode(ctx, in.Source, in.Path)
		if err != nil && in.Source == channel.File && errors.Is(err, errors.ErrFileNotFound) {
			noticeColor.Fprintln(stderr, hintNoTextFile)
		}
		return report(ctx, res, err, stdout, stderr)
	}
	panic(fmt.Sprintf("cli: unhandled intent %T", intent))
}

func report(ctx context.Context, res *pipeline.Result, err error, stdout, stderr io.Writer) int {
	if err != nil {
		logging.ErrorContext(ctx, "conversion failed", "error", err)
		errorColor.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}

	switch res.Direction {
	case pipeline.DirectionEncode:
		fmt.Fprintf(stdout, "Encoded: %s\n", res.Input)
	default:
		fmt.Fprintf(stdout, "Decoded: %s\n", res.Input)
	}
	fmt.Fprintf(stdout, "  Output: %s\n", res.Output)
	fmt.Fprintf(stdout, "  Size: %d bytes\n", res.Bytes)
	if res.Compressed {
		fmt.Fprintf(stdout, "  Text: %d characters (compressed)\n", res.TextLength)
	} else {
		fmt.Fprintf(stdout, "  Text: %d characters\n", res.TextLength)
	}
	fmt.Fprintf(stdout, "  BLAKE3: %s\n", digest.Short(res.Digest))
	return ExitOK
}
