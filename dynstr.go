// Package dynstr implements a thread-safe, dynamically resizable string
// container. Every instance owns a single growable byte buffer guarded by
// its own mutex; operations on distinct instances never contend. Content is
// treated as a raw byte sequence and all transforms are ASCII-oriented.
//
// The container distinguishes absent content (never set, or cleared) from
// present-but-empty content. Operations that require pre-existing content
// fail with ErrInvalidArgument on an absent buffer.
package dynstr

import (
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/rawbytedev/dynstr/internal/common"
)

// MaxStringSize is the content ceiling: the largest total byte length a
// single instance may hold.
const MaxStringSize = common.MaxStringSize

// Str is a mutable string container. The zero value is not usable; create
// instances with New. All methods are safe for concurrent use on the same
// instance, serialized by the per-instance lock.
type Str struct {
	mu    sync.Mutex
	buf   []byte // nil means absent; logical length is len, capacity may exceed it
	freed bool
	id    uuid.UUID
}

// New returns a fresh instance with no content.
func New() *Str {
	return &Str{id: uuid.New()}
}

// Handle returns the instance's stable opaque identity, assigned at
// creation. Registries key on this rather than on buffer addresses.
func (s *Str) Handle() uuid.UUID {
	return s.id
}

// Append concatenates text onto the current content, materializing an empty
// buffer first if the instance holds none. A failed append leaves prior
// content untouched.
func (s *Str) Append(text string) error {
	if s == nil {
		return ErrInvalidArgument
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.freed {
		return ErrInvalidArgument
	}
	return s.appendLocked(text)
}

func (s *Str) appendLocked(text string) error {
	if len(s.buf)+len(text) > MaxStringSize {
		return ErrAllocation
	}
	if s.buf == nil {
		s.buf = make([]byte, 0, len(text))
	}
	s.buf = append(s.buf, text...)
	return nil
}

// Len returns the byte length of the content, 0 when absent. Never fails.
func (s *Str) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buf)
}

// IsEmpty reports whether the content is absent or zero-length.
func (s *Str) IsEmpty() bool {
	if s == nil {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buf) == 0
}

// String returns a copy of the current content, "" when absent. The copy is
// immutable by construction, so it stays valid after the lock is released.
func (s *Str) String() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.buf)
}

// Bytes returns a copy of the current content, nil when absent. The nil
// return is the absent indicator; present-but-empty content yields an empty
// non-nil slice.
func (s *Str) Bytes() []byte {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf == nil {
		return nil
	}
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

// WriteTo writes the raw content to w with no added newline and flushes the
// sink immediately when it supports flushing. Absent content writes nothing.
func (s *Str) WriteTo(w io.Writer) (int64, error) {
	if s == nil || w == nil {
		return 0, ErrInvalidArgument
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.freed {
		return 0, ErrInvalidArgument
	}
	if s.buf == nil {
		return 0, nil
	}
	n, err := w.Write(s.buf)
	if err != nil {
		return int64(n), err
	}
	if f, ok := w.(interface{ Flush() error }); ok {
		err = f.Flush()
	}
	return int64(n), err
}

// Clear releases the buffer and resets the instance to the contentless
// state. Idempotent; a cleared instance accepts new content as if freshly
// created.
func (s *Str) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf = nil
}

// Free releases the buffer and marks the instance terminal. Every operation
// issued after Free fails with ErrInvalidArgument. Callers tracking the
// instance in a registry must deregister it first.
func (s *Str) Free() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf = nil
	s.freed = true
}

// ShrinkToFit reallocates the buffer down to the exact content length.
// Shrinking edits (truncate, word removal) only adjust the logical length;
// this is the explicit step that returns the spare capacity.
func (s *Str) ShrinkToFit() error {
	if s == nil {
		return ErrInvalidArgument
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.freed {
		return ErrInvalidArgument
	}
	if s.buf == nil || cap(s.buf) == len(s.buf) {
		return nil
	}
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	s.buf = out
	return nil
}

// lockPresent acquires the lock and validates that content is present. On
// success the caller owns the lock; on error the lock is already released.
// The transforms share this precondition.
func (s *Str) lockPresent() error {
	if s == nil {
		return ErrInvalidArgument
	}
	s.mu.Lock()
	if s.freed || s.buf == nil {
		s.mu.Unlock()
		return ErrInvalidArgument
	}
	return nil
}
