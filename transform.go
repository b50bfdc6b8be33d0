package dynstr

import (
	"bytes"

	"github.com/rawbytedev/dynstr/internal/common"
)

// Upper folds every ASCII lowercase letter to uppercase in place by
// clearing the case bit. Other bytes are untouched. Fails only when content
// is absent; present-but-empty content is a successful no-op.
func (s *Str) Upper() error {
	if err := s.lockPresent(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	for i, c := range s.buf {
		if common.IsLower(c) {
			s.buf[i] = c &^ common.CaseBit
		}
	}
	return nil
}

// Lower folds every ASCII uppercase letter to lowercase in place by setting
// the case bit.
func (s *Str) Lower() error {
	if err := s.lockPresent(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	for i, c := range s.buf {
		if common.IsUpper(c) {
			s.buf[i] = c | common.CaseBit
		}
	}
	return nil
}

// TitleCase uppercases the first lowercase ASCII letter of each
// space-separated word. Only the triggering letter is forced; letters that
// are already uppercase neither change nor consume the word boundary, and
// nothing is ever lowercased. Fails on absent or empty content.
func (s *Str) TitleCase() error {
	if err := s.lockPresent(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if len(s.buf) == 0 {
		return ErrInvalidArgument
	}
	boundary := true
	for i, c := range s.buf {
		if boundary && common.IsLower(c) {
			s.buf[i] = c &^ common.CaseBit
			boundary = false
		} else if c == ' ' {
			boundary = true
		}
	}
	return nil
}

// Reverse reverses the content in place with two cursors. Fails on absent
// or empty content.
func (s *Str) Reverse() error {
	if err := s.lockPresent(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if len(s.buf) == 0 {
		return ErrInvalidArgument
	}
	for head, tail := 0, len(s.buf)-1; head < tail; head, tail = head+1, tail-1 {
		s.buf[head], s.buf[tail] = s.buf[tail], s.buf[head]
	}
	return nil
}

// TruncateAfterLast cuts the content immediately after the last occurrence
// of sep: the separator stays, everything after it goes. The spare capacity
// is retained; call ShrinkToFit to return it. Fails on absent or empty
// content, ErrNotFound when sep does not occur.
func (s *Str) TruncateAfterLast(sep byte) error {
	if err := s.lockPresent(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if len(s.buf) == 0 {
		return ErrInvalidArgument
	}
	i := bytes.LastIndexByte(s.buf, sep)
	if i < 0 {
		return ErrNotFound
	}
	s.buf = s.buf[:i+1]
	return nil
}

// RemoveWord deletes the first occurrence of word by shifting the remainder
// left. Only the leftmost occurrence is removed. Fails with
// ErrInvalidArgument when content is absent or word is longer than the
// content, ErrNotFound when word does not occur.
func (s *Str) RemoveWord(word string) error {
	if err := s.lockPresent(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if len(word) > len(s.buf) {
		return ErrInvalidArgument
	}
	i := bytes.Index(s.buf, []byte(word))
	if i < 0 {
		return ErrNotFound
	}
	s.buf = append(s.buf[:i], s.buf[i+len(word):]...)
	return nil
}

// ReplaceWord substitutes the first occurrence of old with new. A buffer of
// the exact result size is fully built before the previous one is dropped,
// so a match is either replaced completely or the content is unchanged.
func (s *Str) ReplaceWord(old, new string) error {
	if err := s.lockPresent(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	i := bytes.Index(s.buf, []byte(old))
	if i < 0 {
		return ErrNotFound
	}
	size := len(s.buf) - len(old) + len(new)
	if size > MaxStringSize {
		return ErrAllocation
	}
	out := make([]byte, 0, size)
	out = append(out, s.buf[:i]...)
	out = append(out, new...)
	out = append(out, s.buf[i+len(old):]...)
	s.buf = out
	return nil
}
