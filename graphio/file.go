package graphio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/parmst/edgelist"
)

// Compression identifies a stream codec chosen from a file extension.
type Compression int

const (
	// CompressionNone reads and writes plain text.
	CompressionNone Compression = iota
	// CompressionGzip handles .gz files.
	CompressionGzip
	// CompressionZstd handles .zst files.
	CompressionZstd
	// CompressionLZ4 handles .lz4 frame files.
	CompressionLZ4
)

// CompressionOf maps a path's extension to a codec.
func CompressionOf(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// stack closes its parts in reverse order, codec before file.
type stack struct {
	io.Reader
	io.Writer
	closers []func() error
}

func (s *stack) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// OpenFile opens path for reading, decompressing by extension.
func OpenFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s := &stack{Reader: f, closers: []func() error{f.Close}}

	switch CompressionOf(path) {
	case CompressionGzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		s.Reader = zr
		s.closers = append(s.closers, zr.Close)
	case CompressionZstd:
		dec, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		s.Reader = dec
		s.closers = append(s.closers, func() error { dec.Close(); return nil })
	case CompressionLZ4:
		s.Reader = lz4.NewReader(f)
	}

	return s, nil
}

// CreateFile creates (or truncates) path for writing, compressing by extension.
// Close must be called to flush the codec.
func CreateFile(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	s := &stack{Writer: f, closers: []func() error{f.Close}}

	switch CompressionOf(path) {
	case CompressionGzip:
		zw := gzip.NewWriter(f)
		s.Writer = zw
		s.closers = append(s.closers, zw.Close)
	case CompressionZstd:
		enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		s.Writer = enc
		s.closers = append(s.closers, enc.Close)
	case CompressionLZ4:
		zw := lz4.NewWriter(f)
		s.Writer = zw
		s.closers = append(s.closers, zw.Close)
	}

	return s, nil
}

// ReadFile loads an input file. Plain files are parsed from a read-only memory
// mapping; compressed files are streamed through OpenFile. The returned store
// owns its edges, so the mapping is released before returning.
func ReadFile(path string) (Header, *edgelist.Store, error) {
	if CompressionOf(path) != CompressionNone {
		rc, err := OpenFile(path)
		if err != nil {
			return Header{}, nil, err
		}
		defer rc.Close()

		return wrapPath(path)(Read(rc))
	}

	f, err := os.Open(path)
	if err != nil {
		return Header{}, nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return Header{}, nil, err
	}
	if fi.Size() == 0 {
		// mmap of an empty file fails on most platforms.
		return wrapPath(path)(Read(bytes.NewReader(nil)))
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return Header{}, nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	defer m.Unmap()

	return wrapPath(path)(Read(bytes.NewReader(m)))
}

// ReadResultFile loads a result file written by WriteResult.
func ReadResultFile(path string) (ResultHeader, []edgelist.Edge, error) {
	rc, err := OpenFile(path)
	if err != nil {
		return ResultHeader{}, nil, err
	}
	defer rc.Close()

	hdr, edges, err := ReadResult(rc)
	if err != nil {
		return ResultHeader{}, nil, fmt.Errorf("%s: %w", path, err)
	}

	return hdr, edges, nil
}

// WriteFile writes store to path using Write, compressing by extension.
func WriteFile(path string, hdr Header, store *edgelist.Store) error {
	wc, err := CreateFile(path)
	if err != nil {
		return err
	}
	if err := Write(wc, hdr, store); err != nil {
		_ = wc.Close()
		return err
	}

	return wc.Close()
}

// WriteResultFile writes a solver result to path using WriteResult.
func WriteResultFile(path string, n, m int, edges []edgelist.Edge, total int64) error {
	wc, err := CreateFile(path)
	if err != nil {
		return err
	}
	if err := WriteResult(wc, n, m, edges, total); err != nil {
		_ = wc.Close()
		return err
	}

	return wc.Close()
}

// wrapPath prefixes a Read error with the file path.
func wrapPath(path string) func(Header, *edgelist.Store, error) (Header, *edgelist.Store, error) {
	return func(h Header, s *edgelist.Store, err error) (Header, *edgelist.Store, error) {
		if err != nil {
			return Header{}, nil, fmt.Errorf("%s: %w", path, err)
		}
		return h, s, nil
	}
}
