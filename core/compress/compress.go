// Package compress provides the optional compression stage of the conversion pipeline.
//
// All staging happens in memory buffers owned by a single call, so concurrent
// conversions in one process or on one machine never share state.
package compress

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/FocuswithJustin/fileencoder/core/errors"
	"github.com/ulikunitz/xz"
)

// Algorithm identifies a compression algorithm.
type Algorithm string

const (
	// AlgorithmGzip uses gzip compression (stdlib, default).
	AlgorithmGzip Algorithm = "gzip"
	// AlgorithmXZ uses XZ compression (better ratio, slower).
	AlgorithmXZ Algorithm = "xz"
)

// Injectable functions for testing
var (
	gzipNewWriterLevel = gzip.NewWriterLevel
	gzipNewReader      = gzip.NewReader
	xzNewWriter        = xz.NewWriter
	xzNewReader        = xz.NewReader
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
)

// ParseAlgorithm maps a configuration value onto an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AlgorithmGzip, "":
		return AlgorithmGzip, nil
	case AlgorithmXZ:
		return AlgorithmXZ, nil
	}
	return "", errors.NewUnsupported("compression algorithm", s)
}

// Compressor compresses and decompresses whole buffers.
// The zero value uses gzip.
type Compressor struct {
	Algorithm Algorithm
}

// New returns a Compressor for the given algorithm.
func New(algorithm Algorithm) *Compressor {
	return &Compressor{Algorithm: algorithm}
}

func (c *Compressor) algorithm() Algorithm {
	if c == nil || c.Algorithm == "" {
		return AlgorithmGzip
	}
	return c.Algorithm
}

// Compress returns the compressed form of data. Empty input yields a valid,
// non-empty stream that decompresses back to empty.
func (c *Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	var w io.WriteCloser
	var err error

	switch alg := c.algorithm(); alg {
	case AlgorithmGzip:
		w, err = gzipNewWriterLevel(&buf, gzip.BestCompression)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip writer: %w", err)
		}
	case AlgorithmXZ:
		w, err = xzNewWriter(&buf)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
	default:
		return nil, errors.NewUnsupported("compression algorithm", string(alg))
	}

	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish %s stream: %w", c.algorithm(), err)
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress. Data that does not start with the algorithm's
// magic bytes, or that is truncated or corrupt, fails with ErrMalformedInput.
func (c *Compressor) Decompress(data []byte) ([]byte, error) {
	alg := c.algorithm()
	var r io.Reader

	switch alg {
	case AlgorithmGzip:
		if !bytes.HasPrefix(data, gzipMagic) {
			return nil, errors.NewParse("gzip", "", "missing gzip header")
		}
		gz, err := gzipNewReader(bytes.NewReader(data))
		if err != nil {
			return nil, &errors.ParseError{Format: "gzip", Message: "invalid header", Err: err}
		}
		defer gz.Close()
		r = gz
	case AlgorithmXZ:
		if !bytes.HasPrefix(data, xzMagic) {
			return nil, errors.NewParse("xz", "", "missing xz header")
		}
		xr, err := xzNewReader(bytes.NewReader(data))
		if err != nil {
			return nil, &errors.ParseError{Format: "xz", Message: "invalid header", Err: err}
		}
		r = xr
	default:
		return nil, errors.NewUnsupported("compression algorithm", string(alg))
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, &errors.ParseError{Format: string(alg), Message: "corrupt stream", Err: err}
	}
	return out, nil
}
