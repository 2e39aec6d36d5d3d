package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/FocuswithJustin/fileencoder/core/channel"
	"github.com/FocuswithJustin/fileencoder/core/codec"
	"github.com/FocuswithJustin/fileencoder/core/compress"
	"github.com/FocuswithJustin/fileencoder/core/digest"
	ferrors "github.com/FocuswithJustin/fileencoder/core/errors"
	"github.com/FocuswithJustin/fileencoder/internal/logging"
	"github.com/FocuswithJustin/fileencoder/internal/validation"
)

func sampleBytes() []byte {
	data := make([]byte, 0, 1024)
	for i := 0; i < 1024; i++ {
		data = append(data, byte(i*7))
	}
	return data
}

func modes() map[string]Options {
	return map[string]Options{
		"plain":        {},
		"plain tagged": {TagFilename: true},
		"gzip":         {Compress: true, Algorithm: compress.AlgorithmGzip},
		"xz tagged":    {Compress: true, Algorithm: compress.AlgorithmXZ, TagFilename: true},
		"default algo": {Compress: true},
	}
}

func TestRoundTripFileChannel(t *testing.T) {
	ctx := context.Background()
	data := sampleBytes()

	for name, opts := range modes() {
		t.Run(name, func(t *testing.T) {
			files := channel.MemoryFiles{"dir/photo.jpg": data}
			p := New(files, &channel.MemoryClipboard{}, opts)

			enc, err := p.Encode(ctx, channel.File, "dir/photo.jpg")
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if enc.Output != "dir/photo_jpg.txt" {
				t.Errorf("Encode() output = %q, want dir/photo_jpg.txt", enc.Output)
			}
			if !files.Exists("dir/photo_jpg.txt") {
				t.Fatal("text file was not written")
			}

			delete(files, "dir/photo.jpg")
			dec, err := p.Decode(ctx, channel.File, "dir/photo_jpg.txt")
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if dec.Output != "dir/photo.jpg" {
				t.Errorf("Decode() output = %q, want dir/photo.jpg", dec.Output)
			}
			if !bytes.Equal(files["dir/photo.jpg"], data) {
				t.Error("decoded bytes differ from the original")
			}
			if enc.Digest != dec.Digest || enc.Digest != digest.Blake3Hash(data) {
				t.Errorf("digests differ: encode %s, decode %s", enc.Digest, dec.Digest)
			}
		})
	}
}

func TestRoundTripBufferChannel(t *testing.T) {
	ctx := context.Background()
	data := sampleBytes()

	for name, opts := range modes() {
		t.Run(name, func(t *testing.T) {
			files := channel.MemoryFiles{"in/report.pdf": data}
			clip := &channel.MemoryClipboard{}
			p := New(files, clip, opts)

			enc, err := p.Encode(ctx, channel.Buffer, "in/report.pdf")
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if enc.Output != "clipboard" {
				t.Errorf("Encode() output = %q, want clipboard", enc.Output)
			}
			if got := strings.HasPrefix(clip.Text, "report.pdf;"); got != opts.TagFilename {
				t.Errorf("clipboard tagged = %v, want %v", got, opts.TagFilename)
			}
			if len(files) != 1 {
				t.Errorf("buffer encode wrote files: %v", files)
			}

			dec, err := p.Decode(ctx, channel.Buffer, "out/restored.bin")
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			want := "out/restored.bin"
			if opts.TagFilename {
				want = "out/report.pdf"
			}
			if dec.Output != want {
				t.Errorf("Decode() output = %q, want %q", dec.Output, want)
			}
			if !bytes.Equal(files[want], data) {
				t.Error("decoded bytes differ from the original")
			}
		})
	}
}

func TestEncodePlainPayloadIsBase64(t *testing.T) {
	files := channel.MemoryFiles{"a.bin": []byte("hello")}
	p := New(files, &channel.MemoryClipboard{}, Options{})

	if _, err := p.Encode(context.Background(), channel.File, "a.bin"); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if got := string(files["a_bin.txt"]); got != "aGVsbG8=" {
		t.Errorf("payload = %q, want aGVsbG8=", got)
	}
}

func TestEncodeCompressedPayloadLayering(t *testing.T) {
	files := channel.MemoryFiles{"a.bin": []byte("hello")}
	p := New(files, &channel.MemoryClipboard{}, Options{Compress: true})

	if _, err := p.Encode(context.Background(), channel.File, "a.bin"); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	outer, err := codec.Decode(string(files["a_bin.txt"]))
	if err != nil {
		t.Fatalf("outer layer is not base64: %v", err)
	}
	inner, err := compress.New(compress.AlgorithmGzip).Decompress(outer)
	if err != nil {
		t.Fatalf("middle layer is not gzip: %v", err)
	}
	if string(inner) != "aGVsbG8=" {
		t.Errorf("inner layer = %q, want aGVsbG8=", inner)
	}
}

func TestEncodeMissingFile(t *testing.T) {
	p := New(channel.MemoryFiles{}, &channel.MemoryClipboard{}, Options{})
	_, err := p.Encode(context.Background(), channel.Buffer, `C:\proga\text.txg`)
	if !errors.Is(err, ferrors.ErrFileNotFound) {
		t.Errorf("Encode() error = %v, want ErrFileNotFound", err)
	}
}

func TestEncodeInvalidPath(t *testing.T) {
	p := New(channel.MemoryFiles{}, &channel.MemoryClipboard{}, Options{})
	_, err := p.Encode(context.Background(), channel.File, "")
	if !errors.Is(err, validation.ErrEmptyPath) {
		t.Errorf("Encode() error = %v, want ErrEmptyPath", err)
	}
}

func TestDecodeMissingTextFile(t *testing.T) {
	files := channel.MemoryFiles{}
	p := New(files, &channel.MemoryClipboard{}, Options{})
	_, err := p.Decode(context.Background(), channel.File, "filename_ext.txt")
	if !errors.Is(err, ferrors.ErrFileNotFound) {
		t.Errorf("Decode() error = %v, want ErrFileNotFound", err)
	}
	if len(files) != 0 {
		t.Errorf("failed decode wrote files: %v", files)
	}
}

func TestDecodeEmptyPayload(t *testing.T) {
	tests := []struct {
		name  string
		ch    channel.Channel
		files channel.MemoryFiles
		clip  string
		opts  Options
	}{
		{"empty text file", channel.File, channel.MemoryFiles{"a_bin.txt": nil}, "", Options{}},
		{"whitespace text file", channel.File, channel.MemoryFiles{"a_bin.txt": []byte(" \r\n")}, "", Options{}},
		{"empty clipboard", channel.Buffer, channel.MemoryFiles{}, "", Options{}},
		{"empty tagged clipboard", channel.Buffer, channel.MemoryFiles{}, "", Options{TagFilename: true}},
		{"tag without payload", channel.Buffer, channel.MemoryFiles{}, "a.bin;", Options{TagFilename: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.files, &channel.MemoryClipboard{Text: tt.clip}, tt.opts)
			_, err := p.Decode(context.Background(), tt.ch, "a_bin.txt")
			if !errors.Is(err, ferrors.ErrEmptyPayload) {
				t.Errorf("Decode() error = %v, want ErrEmptyPayload", err)
			}
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		clip string
		opts Options
	}{
		{"not base64", "@@@", Options{}},
		{"bad padding", "Zg=", Options{}},
		{"untagged with tagging on", "aGVsbG8=", Options{TagFilename: true}},
		{"bad tag name", "..;aGVsbG8=", Options{TagFilename: true}},
		{"plain payload in compressed mode", "aGVsbG8=", Options{Compress: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := channel.MemoryFiles{}
			p := New(files, &channel.MemoryClipboard{Text: tt.clip}, tt.opts)
			_, err := p.Decode(context.Background(), channel.Buffer, "out.bin")
			if !errors.Is(err, ferrors.ErrMalformedInput) {
				t.Errorf("Decode() error = %v, want ErrMalformedInput", err)
			}
			if len(files) != 0 {
				t.Errorf("failed decode wrote files: %v", files)
			}
		})
	}
}

func TestDecodeTagCannotEscapeDirectory(t *testing.T) {
	var logs bytes.Buffer
	logging.InitLogger(&logs, logging.LevelWarn, logging.FormatText)
	defer logging.InitLogger(io.Discard, logging.LevelWarn, logging.FormatText)

	files := channel.MemoryFiles{}
	clip := &channel.MemoryClipboard{Text: "../../etc/passwd;aGVsbG8="}
	p := New(files, clip, Options{TagFilename: true})

	res, err := p.Decode(context.Background(), channel.Buffer, "out/x.bin")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if res.Output != "out/passwd" {
		t.Errorf("Decode() output = %q, want out/passwd", res.Output)
	}
	if !strings.Contains(logs.String(), "sanitized") {
		t.Errorf("expected a warning about the rewritten name, got %q", logs.String())
	}
}

func TestDecodeRefusesToOverwriteInput(t *testing.T) {
	for _, textPath := range []string{"dir/notes", "README", "dir/.txt"} {
		t.Run(textPath, func(t *testing.T) {
			files := channel.MemoryFiles{textPath: []byte("aGVsbG8=")}
			p := New(files, &channel.MemoryClipboard{}, Options{})

			_, err := p.Decode(context.Background(), channel.File, textPath)
			if !errors.Is(err, ferrors.ErrInvalidInput) {
				t.Errorf("Decode() error = %v, want ErrInvalidInput", err)
			}
			if got := string(files[textPath]); got != "aGVsbG8=" {
				t.Errorf("input file was modified: %q", got)
			}
			if len(files) != 1 {
				t.Errorf("failed decode wrote files: %v", files)
			}
		})
	}
}

func TestDecodeRefusesToOverwriteInputOnDisk(t *testing.T) {
	textPath := filepath.Join(t.TempDir(), "notes")
	if err := os.WriteFile(textPath, []byte("aGVsbG8="), 0644); err != nil {
		t.Fatal(err)
	}

	p := New(channel.OSFiles{}, &channel.MemoryClipboard{}, Options{})
	if _, err := p.Decode(context.Background(), channel.File, textPath); !errors.Is(err, ferrors.ErrInvalidInput) {
		t.Errorf("Decode() error = %v, want ErrInvalidInput", err)
	}
	got, err := os.ReadFile(textPath)
	if err != nil || string(got) != "aGVsbG8=" {
		t.Errorf("input file = %q, %v; want it untouched", got, err)
	}
}

func TestEmptyFileRoundTrip(t *testing.T) {
	ctx := context.Background()

	t.Run("plain mode cannot decode an empty payload", func(t *testing.T) {
		files := channel.MemoryFiles{"empty.dat": {}}
		p := New(files, &channel.MemoryClipboard{}, Options{})
		if _, err := p.Encode(ctx, channel.File, "empty.dat"); err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		if _, err := p.Decode(ctx, channel.File, "empty_dat.txt"); !errors.Is(err, ferrors.ErrEmptyPayload) {
			t.Errorf("Decode() error = %v, want ErrEmptyPayload", err)
		}
	})

	t.Run("compressed mode round trips", func(t *testing.T) {
		files := channel.MemoryFiles{"empty.dat": {}}
		p := New(files, &channel.MemoryClipboard{}, Options{Compress: true})
		if _, err := p.Encode(ctx, channel.File, "empty.dat"); err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		delete(files, "empty.dat")
		res, err := p.Decode(ctx, channel.File, "empty_dat.txt")
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if res.Bytes != 0 || len(files["empty.dat"]) != 0 || !files.Exists("empty.dat") {
			t.Errorf("empty file not restored: %+v", res)
		}
	})
}

type failingClipboard struct{ err error }

func (f failingClipboard) Read() (string, error) { return "", f.err }
func (f failingClipboard) Write(string) error    { return f.err }

func TestClipboardErrorsPropagate(t *testing.T) {
	boom := errors.New("clipboard unavailable")
	files := channel.MemoryFiles{"a.bin": []byte("x")}
	p := New(files, failingClipboard{err: boom}, Options{})

	if _, err := p.Encode(context.Background(), channel.Buffer, "a.bin"); !errors.Is(err, boom) {
		t.Errorf("Encode() error = %v, want %v", err, boom)
	}
	if _, err := p.Decode(context.Background(), channel.Buffer, "b.bin"); !errors.Is(err, boom) {
		t.Errorf("Decode() error = %v, want %v", err, boom)
	}
}

func TestRoundTripOnDisk(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "archive.tar.gz")
	data := sampleBytes()
	if err := os.WriteFile(src, data, 0644); err != nil {
		t.Fatal(err)
	}

	p := New(channel.OSFiles{}, &channel.MemoryClipboard{}, Options{Compress: true, Algorithm: compress.AlgorithmXZ})
	ctx := context.Background()

	enc, err := p.Encode(ctx, channel.File, src)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if want := filepath.Join(dir, "archive_tar_gz.txt"); enc.Output != want {
		t.Errorf("Encode() output = %q, want %q", enc.Output, want)
	}
	if err := os.Remove(src); err != nil {
		t.Fatal(err)
	}

	if _, err := p.Decode(ctx, channel.File, enc.Output); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("restored file missing: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("restored file differs from the original")
	}
}
