package lfq

import (
	"unsafe"

	"github.com/coren-io/lfq/internal/cacheline"
)

// sizeOf reports the size in bytes of a value's type. Queue uses it on a
// zero element to compute shuffleBits (spec §3) from the element type's
// size rather than a guess.
func sizeOf[E any](v E) uintptr {
	return unsafe.Sizeof(v)
}

// pad is inserted between independently-written atomic fields (the two
// cursors in cursorPair) to prevent false sharing: two unrelated hot
// variables landing on the same cache line and being bounced between
// cores writing to each. Sized from [cacheline.LineSize], which is
// architecture-specific — arm64's 128-byte coherence granularity gets 128
// bytes of padding here, not amd64's 64, so the cursors this guards stay
// on separate lines on both. Slots use padAfter8 instead.
type pad [cacheline.LineSize]byte

// padAfter8 pads out the remainder of a cache line following an 8-byte
// field (a uint64-sized cursor or slot tag).
type padAfter8 [cacheline.LineSize - 8]byte
