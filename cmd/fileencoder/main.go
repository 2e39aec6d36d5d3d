// Command fileencoder converts a binary file to base64 text and back, through a
// text file or the system clipboard.
//
// Usage:
//
//	fileencoder <file>
//	fileencoder -s file -c encode -f filename.ext
//	fileencoder --source file --command decode --file filename_ext.txt
//	fileencoder --source buffer decode restored.ext
//
// Compression, clipboard file name tagging and logging are configured through
// FILEENCODER_* environment variables; see fileencoder --help.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/FocuswithJustin/fileencoder/core/channel"
	"github.com/FocuswithJustin/fileencoder/core/pipeline"
	"github.com/FocuswithJustin/fileencoder/internal/cli"
	"github.com/FocuswithJustin/fileencoder/internal/config"
	"github.com/FocuswithJustin/fileencoder/internal/logging"
)

// Injectable for testing
var clipboardIO channel.ClipboardIO = channel.SystemClipboard{}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitError
	}

	level, format := cfg.Logging()
	logging.InitLogger(stderr, level, format)

	ctx := logging.WithRunID(context.Background(), logging.NewRunID())

	opts := cfg.PipelineOptions()
	logging.InfoContext(ctx, "fileencoder starting", "version", cli.Version,
		"compress", opts.Compress, "algorithm", string(opts.Algorithm), "tag_filename", opts.TagFilename)

	files := channel.OSFiles{}
	p := pipeline.New(files, clipboardIO, opts)

	intent := cli.Parse(args, files.Exists)
	logging.DebugContext(ctx, "resolved intent", "intent", intent.String(), "args", len(args))

	return cli.Dispatch(ctx, intent, p, stdout, stderr)
}
