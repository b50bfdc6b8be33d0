package dynstr

import (
	"errors"
	"io"

	"github.com/rawbytedev/dynstr/pkg/lineio"
)

// SetFromInput reads one line from src into an instance that holds no
// content. It refuses to overwrite: ErrStateConflict when content exists,
// even zero-length content. The instance lock is held across the blocking
// read, so other operations on the same instance stall until the line
// arrives; use separate instances when that matters.
func (s *Str) SetFromInput(src *lineio.Reader) error {
	if s == nil || src == nil {
		return ErrInvalidArgument
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.freed {
		return ErrInvalidArgument
	}
	if s.buf != nil {
		return ErrStateConflict
	}
	line, err := src.ReadLine(MaxStringSize)
	if err != nil {
		return mapReadErr(err)
	}
	s.buf = append(make([]byte, 0, len(line)), line...)
	return nil
}

// AppendFromInput reads one line from src and appends it to the current
// content, initializing the buffer when none exists. The ceiling is shared:
// the read is limited to what the existing content leaves free.
func (s *Str) AppendFromInput(src *lineio.Reader) error {
	if s == nil || src == nil {
		return ErrInvalidArgument
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.freed {
		return ErrInvalidArgument
	}
	line, err := src.ReadLine(MaxStringSize - len(s.buf))
	if err != nil {
		return mapReadErr(err)
	}
	return s.appendLocked(line)
}

// mapReadErr translates collaborator errors into the container's taxonomy.
// Size-ceiling violations surface as allocation failures; an exhausted
// input source passes through as io.EOF for the caller to detect.
func mapReadErr(err error) error {
	if errors.Is(err, lineio.ErrTooLong) {
		return ErrAllocation
	}
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	return err
}
