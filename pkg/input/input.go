// Package input abstracts the byte sources a translation unit can be
// read from. A source is a pull interface: Read delivers the next chunk
// of bytes and Pos reports the source position of the next unread byte.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ccheck-dev/ccheck/pkg/srcpos"
)

// Source is a pull interface over a stream of source bytes.
type Source interface {
	// Read fills buf with up to len(buf) bytes and returns the number of
	// bytes read. It returns 0 at end of input.
	Read(buf []byte) (int, error)

	// Pos returns the position of the next byte Read will deliver.
	Pos() srcpos.Pos
}

// StringSource reads from an in-memory string. Used heavily by tests.
type StringSource struct {
	str string
	off int
	pos srcpos.Pos
}

// NewString creates a source reading the given string. The position file
// name is used in diagnostics.
func NewString(fname, s string) *StringSource {
	return &StringSource{
		str: s,
		pos: srcpos.New(fname, 1, 1),
	}
}

// Read copies the next chunk of the string into buf.
func (s *StringSource) Read(buf []byte) (int, error) {
	n := copy(buf, s.str[s.off:])
	for i := 0; i < n; i++ {
		s.pos.Fwd(s.str[s.off+i])
	}
	s.off += n
	return n, nil
}

// Pos returns the position of the next unread byte.
func (s *StringSource) Pos() srcpos.Pos {
	return s.pos
}

// FileSource reads from a file on disk.
type FileSource struct {
	f    *os.File
	pos  srcpos.Pos
	name string
}

// OpenFile opens path for reading. Positions are reported relative to
// the path as given.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return &FileSource{
		f:    f,
		pos:  srcpos.New(path, 1, 1),
		name: path,
	}, nil
}

// Read fills buf with the next chunk of the file.
func (s *FileSource) Read(buf []byte) (int, error) {
	n, err := s.f.Read(buf)
	if n > 0 {
		for i := 0; i < n; i++ {
			s.pos.Fwd(buf[i])
		}
		return n, nil
	}
	if errors.Is(err, io.EOF) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", s.name, err)
	}
	return 0, nil
}

// Pos returns the position of the next unread byte.
func (s *FileSource) Pos() srcpos.Pos {
	return s.pos
}

// Close releases the underlying file.
func (s *FileSource) Close() error {
	return s.f.Close()
}
