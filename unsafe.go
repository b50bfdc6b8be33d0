package dynstr

import "unsafe"

// UnsafeString returns the current content as a string aliasing the
// internal buffer, without copying. Opt-in fast path for read-heavy
// callers: the result is only valid until the next mutating operation on
// the instance, and the caller must guarantee no mutation happens while the
// value is live. Prefer String unless the copy shows up in a profile.
func (s *Str) UnsafeString() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.buf) == 0 {
		return ""
	}
	return unsafe.String(&s.buf[0], len(s.buf))
}
