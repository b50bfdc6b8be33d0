package common

import "math"

// CaseBit is the single bit separating upper from lower case in ASCII.
const CaseBit = 0x20

// MaxStringSize caps total content length at 95% of the platform's
// maximum representable size, leaving headroom for growth arithmetic.
const MaxStringSize = (math.MaxInt / 100) * 95

// ChunkSize is the initial scratch quantum for line reads.
const ChunkSize = 10

// IsLower reports whether c is an ASCII lowercase letter.
func IsLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// IsUpper reports whether c is an ASCII uppercase letter.
func IsUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
