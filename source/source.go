// Package source provides the byte buffers that scans run over.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

var ErrOpen = errors.New("cannot load input")

// Stdin is the name that selects standard input.
const Stdin = "-"

// Buffer is an immutable input. Mapped buffers must be closed to release
// the mapping; Bytes must not be used after Close.
type Buffer struct {
	name   string
	data   []byte
	mapped mmap.MMap
}

// FromBytes wraps b, which the caller must not modify while the Buffer is
// in use.
func FromBytes(name string, b []byte) *Buffer {
	return &Buffer{name: name, data: b}
}

// Open loads path. Regular files are memory mapped read-only; if mapping
// fails or the file is empty the file is read into memory instead. The
// name "-" reads standard input to the end.
func Open(path string) (*Buffer, error) {
	if path == Stdin {
		return Read("stdin", os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrOpen, path, err)
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrOpen, path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w %q: is a directory", ErrOpen, path)
	}
	if fi.Mode().IsRegular() && fi.Size() > 0 {
		m, err := mmap.Map(f, mmap.RDONLY, 0)
		if err == nil {
			return &Buffer{name: path, data: m, mapped: m}, nil
		}
	}
	return Read(path, f)
}

// Read loads all of r.
func Read(name string, r io.Reader) (*Buffer, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrOpen, name, err)
	}
	return &Buffer{name: name, data: d}, nil
}

func (b *Buffer) Name() string { return b.name }
func (b *Buffer) Bytes() []byte { return b.data }
func (b *Buffer) Len() int { return len(b.data) }

// Mapped reports whether b is backed by a memory mapping.
func (b *Buffer) Mapped() bool { return b.mapped != nil }

// Close releases the mapping, if any. It is safe to call more than once.
func (b *Buffer) Close() error {
	if b.mapped == nil {
		return nil
	}
	err := b.mapped.Unmap()
	b.mapped = nil
	b.data = nil
	return err
}
