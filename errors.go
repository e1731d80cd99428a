package lfq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately: the
// queue is full (TryPush) or empty (TryPop). It is a control-flow signal,
// not a failure — callers should back off and retry rather than
// propagate it as an error up the stack.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency with
// the rest of the hybscloud stack.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrNilSentinel is returned by QueueIndirect.Push and QueuePtr.Push when
// the caller attempts to enqueue the reserved sentinel value (0 or nil).
// The atomic-nil slot protocol has no other way to represent "empty", so
// accepting the sentinel as a payload would corrupt the queue's state
// machine.
var ErrNilSentinel = errors.New("lfq: sentinel value is reserved for empty slots")

// IsWouldBlock reports whether err indicates the operation would have
// blocked. Delegates to [iox.IsWouldBlock] for wrapped-error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
