// Package pipeline converts binary files to base64 text payloads and back.
//
// One Pipeline covers every variant of the conversion: the payload may be plain
// base64 or base64 of a compressed base64 text, and clipboard payloads may carry
// the original file name as a "name;" prefix. Both choices are fixed per Pipeline,
// so the decoding side must be configured the same way as the encoding side.
package pipeline

import (
	"context"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/fileencoder/core/channel"
	"github.com/FocuswithJustin/fileencoder/core/codec"
	"github.com/FocuswithJustin/fileencoder/core/compress"
	"github.com/FocuswithJustin/fileencoder/core/digest"
	"github.com/FocuswithJustin/fileencoder/core/errors"
	"github.com/FocuswithJustin/fileencoder/core/paths"
	"github.com/FocuswithJustin/fileencoder/internal/logging"
	"github.com/FocuswithJustin/fileencoder/internal/validation"
)

// Direction names the two conversions.
type Direction string

const (
	DirectionEncode Direction = "encode"
	DirectionDecode Direction = "decode"
)

// Options selects the payload layering.
type Options struct {
	// Compress wraps the base64 text in a compression layer and a second base64 pass.
	Compress bool
	// Algorithm is the compression algorithm used when Compress is set.
	Algorithm compress.Algorithm
	// TagFilename prefixes clipboard payloads with the original file name.
	TagFilename bool
}

// ConversionContext holds the paths resolved for one Encode or Decode call.
type ConversionContext struct {
	Channel channel.Channel
	// Path is the path the user supplied.
	Path string
	// BinaryPath is the original, non-text file.
	BinaryPath string
	// TextPath is the base64 file; empty on the Buffer channel.
	TextPath string
}

// Result describes what one conversion produced.
type Result struct {
	Direction  Direction
	Channel    channel.Channel
	Input      string
	Output     string
	Bytes      int    // size of the binary file
	TextLength int    // length of the text payload, without any file name tag
	Compressed bool
	Digest     string // BLAKE3 of the binary file
}

// Pipeline runs conversions against a filesystem and a clipboard.
type Pipeline struct {
	Files     channel.FileIO
	Clipboard channel.ClipboardIO
	Options   Options
}

// New creates a Pipeline.
func New(files channel.FileIO, clipboard channel.ClipboardIO, opts Options) *Pipeline {
	return &Pipeline{
		Files:     files,
		Clipboard: clipboard,
		Options:   opts,
	}
}

func (p *Pipeline) source(ch channel.Channel) *channel.Source {
	return &channel.Source{
		Channel:     ch,
		Files:       p.Files,
		Clipboard:   p.Clipboard,
		TagFilename: p.Options.TagFilename,
	}
}

// Encode converts the binary file at path into a text payload written to ch.
// On the File channel the payload goes to the derived "name_ext.txt" path.
func (p *Pipeline) Encode(ctx context.Context, ch channel.Channel, path string) (*Result, error) {
	if err := validation.ValidatePath(path); err != nil {
		return nil, invalidPath(path, err)
	}
	if !p.Files.Exists(path) {
		return nil, errors.NewFileNotFound(path)
	}

	cc := ConversionContext{Channel: ch, Path: path, BinaryPath: path}
	if ch == channel.File {
		cc.TextPath = paths.DeriveTextPath(path)
		if cc.TextPath == cc.BinaryPath {
			return nil, samePath(path)
		}
	}

	raw, err := p.Files.Read(cc.BinaryPath)
	if err != nil {
		return nil, err
	}

	text, err := p.wrap(raw)
	if err != nil {
		return nil, err
	}

	src := p.source(ch)
	if err := src.Write(cc.TextPath, text, paths.Base(cc.BinaryPath)); err != nil {
		return nil, err
	}

	res := &Result{
		Direction:  DirectionEncode,
		Channel:    ch,
		Input:      cc.BinaryPath,
		Output:     src.Location(cc.TextPath),
		Bytes:      len(raw),
		TextLength: len(text),
		Compressed: p.Options.Compress,
		Digest:     digest.Blake3Hash(raw),
	}
	logging.Conversion(ctx, string(res.Direction), ch.String(), res.Input, res.Output, res.Bytes,
		"compressed", res.Compressed, "blake3", res.Digest)
	return res, nil
}

// Decode restores a binary file from the text payload on ch.
//
// On the File channel path is the text file and the binary name is derived from it.
// On the Buffer channel path is the destination; a file name recovered from a tagged
// payload replaces the final element of path.
func (p *Pipeline) Decode(ctx context.Context, ch channel.Channel, path string) (*Result, error) {
	if err := validation.ValidatePath(path); err != nil {
		return nil, invalidPath(path, err)
	}

	cc := ConversionContext{Channel: ch, Path: path}
	if ch == channel.File {
		cc.TextPath = path
		cc.BinaryPath = paths.DeriveBinaryPath(path)
		if cc.BinaryPath == cc.TextPath {
			return nil, samePath(path)
		}
		if !p.Files.Exists(cc.TextPath) {
			return nil, errors.NewFileNotFound(cc.TextPath)
		}
	} else {
		cc.BinaryPath = path
	}

	src := p.source(ch)
	text, tag, err := src.Read(cc.TextPath)
	if err != nil {
		return nil, err
	}
	if tag != "" {
		name, err := validation.SanitizeFilename(tag)
		if err != nil {
			return nil, &errors.ParseError{Format: "tagged payload", Path: "clipboard", Message: "unusable file name " + strconv.Quote(tag), Err: err}
		}
		if name != tag {
			logging.WarnContext(ctx, "file name from clipboard was sanitized", "tag", tag, "name", name)
		} else {
			logging.DebugContext(ctx, "file name recovered from clipboard", "name", name)
		}
		cc.BinaryPath = paths.Sibling(path, name)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.Wrapf(errors.ErrEmptyPayload, "nothing to decode in %s", src.Location(cc.TextPath))
	}

	raw, err := p.unwrap(text)
	if err != nil {
		return nil, err
	}

	if err := p.Files.Write(cc.BinaryPath, raw); err != nil {
		return nil, err
	}

	res := &Result{
		Direction:  DirectionDecode,
		Channel:    ch,
		Input:      src.Location(cc.TextPath),
		Output:     cc.BinaryPath,
		Bytes:      len(raw),
		TextLength: len(text),
		Compressed: p.Options.Compress,
		Digest:     digest.Blake3Hash(raw),
	}
	logging.Conversion(ctx, string(res.Direction), ch.String(), res.Input, res.Output, res.Bytes,
		"compressed", res.Compressed, "blake3", res.Digest)
	return res, nil
}

func invalidPath(path string, err error) *errors.ValidationError {
	verr := errors.NewValidation("path", err.Error())
	verr.Value = path
	verr.Err = err
	return verr
}

// samePath rejects a path whose derived counterpart is the path itself, so the
// output would overwrite the input.
func samePath(path string) *errors.ValidationError {
	verr := errors.NewValidation("path", "derived output path is the input file "+strconv.Quote(path))
	verr.Value = path
	return verr
}

// wrap produces the text payload for raw: base64, or base64(compress(base64)).
func (p *Pipeline) wrap(raw []byte) (string, error) {
	text := codec.Encode(raw)
	if !p.Options.Compress {
		return text, nil
	}
	packed, err := compress.New(p.Options.Algorithm).Compress([]byte(text))
	if err != nil {
		return "", err
	}
	return codec.Encode(packed), nil
}

// unwrap mirrors wrap.
func (p *Pipeline) unwrap(text string) ([]byte, error) {
	if !p.Options.Compress {
		return codec.Decode(text)
	}
	packed, err := codec.Decode(text)
	if err != nil {
		return nil, errors.Wrap(err, "outer layer")
	}
	inner, err := compress.New(p.Options.Algorithm).Decompress(packed)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decode(string(inner))
	if err != nil {
		return nil, errors.Wrap(err, "inner layer")
	}
	return raw, nil
}
