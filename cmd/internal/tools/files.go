package tools

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compressions lists the file extensions Create and Open compress with.
var Compressions = []string{".gz", ".zst", ".lz4"}

type writeCloser struct {
	io.Writer
	close func() error
}

func (w writeCloser) Close() error {
	return w.close()
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error {
	return r.close()
}

// closeBoth closes the compression layer first so it can flush into f.
func closeBoth(layer func() error, f *os.File) func() error {
	return func() error {
		err := layer()
		if ferr := f.Close(); err == nil {
			err = ferr
		}
		return err
	}
}

// Create creates filename, compressing what is written based on its
// extension: .gz, .zst or .lz4. Any other extension is written as is.
func Create(filename string) (io.WriteCloser, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		w := gzip.NewWriter(f)
		return writeCloser{w, closeBoth(w.Close, f)}, nil
	case ".zst":
		w, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			f.Close()
			return nil, err
		}
		return writeCloser{w, closeBoth(w.Close, f)}, nil
	case ".lz4":
		w := lz4.NewWriter(f)
		return writeCloser{w, closeBoth(w.Close, f)}, nil
	}
	return f, nil
}

// Open opens filename, decompressing based on its extension like Create.
func Open(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		r, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return readCloser{r, closeBoth(r.Close, f)}, nil
	case ".zst":
		r, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return readCloser{r, closeBoth(func() error { r.Close(); return nil }, f)}, nil
	case ".lz4":
		return readCloser{lz4.NewReader(f), f.Close}, nil
	}
	return f, nil
}

// ReadFile reads the whole of filename through Open.
func ReadFile(filename string) ([]byte, error) {
	r, err := Open(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// WriteFile writes data to filename through Create.
func WriteFile(filename string, data []byte) error {
	w, err := Create(filename)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
