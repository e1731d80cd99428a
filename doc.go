// Package lfq provides fixed-capacity, lock-free, multi-producer/
// multi-consumer in-process queues for passing values between goroutines
// on cache-coherent shared-memory hardware.
//
// There is no broker, no persistence, and no cross-process transport: the
// queue itself is the only coordination primitive. Producers push values
// into slots claimed by a monotonic cursor; consumers pop them in the
// order the cursors committed, never in the order goroutines happened to
// be scheduled.
//
// # Quick start
//
//	q := lfq.NewQueue[int](1024)
//
//	if err := q.TryPush(42); err != nil {
//	    // queue full, back off and retry
//	}
//
//	v, err := q.TryPop()
//	if err == nil {
//	    fmt.Println(v)
//	}
//
// Push and Pop block (spinning with a back-off) until the operation can
// proceed; TryPush and TryPop fail fast with ErrWouldBlock instead.
//
// # Configuration
//
// Queue behavior is controlled by a small set of flags, set once at
// construction via the [Builder]:
//
//	q := lfq.Build[int](lfq.New(1024).SPSC())
//	q := lfq.Build[int](lfq.New(1024).TotalOrder().MaxThroughput())
//
//   - SPSC declares that exactly one producer and one consumer will ever
//     touch the queue; cursor increments become plain relaxed
//     load-then-store instead of a fetch-add, and the slot protocol takes
//     a cheap poll-only fast path. Using a SPSC queue from more than one
//     producer or consumer goroutine is undefined behavior.
//   - TotalOrder makes cursor advances sequentially consistent, giving a
//     single global order across every push and every pop. The default
//     (acquire) is sufficient for the slot handshake and costs less on
//     most architectures, but admits reorderings between unrelated
//     push/pop pairs.
//   - MaxThroughput makes a contended spinner re-read slot state with a
//     relaxed load before retrying its compare-and-swap, so it stops
//     broadcasting read-for-ownership traffic while a slot is occupied.
//
// # Atomic-nil slots
//
// [Queue] uses the state-tagged slot protocol (a slot carries its value
// plus an explicit EMPTY/STORING/FULL/LOADING tag) and works for any
// element type. [QueueIndirect] and [QueuePtr] use the atomic-nil
// protocol instead: the slot is a single atomic cell, and a designated
// sentinel value (0 for QueueIndirect, nil for QueuePtr) means "empty".
// This halves the per-slot metadata at the cost of forbidding the
// sentinel as a legitimate payload — Go has no generic lock-free
// atomic<T> for arbitrary T, so the atomic-nil variant is only offered
// for the two shapes (uintptr, unsafe.Pointer) the runtime can actually
// swap atomically.
//
// # What this package does not do
//
// No dynamic resizing, no iteration over queue contents, no ordering
// guarantee on how a popped element's memory is reused, no cross-process
// or NUMA-aware placement, no priority ordering. Capacity is fixed at
// construction and rounded up to the next power of two.
package lfq
