package lfq

import "unsafe"

// atomicNilCore is the shared cursor/slot-array machinery behind
// [QueueIndirect] and [QueuePtr]. It operates on uintptr payloads;
// QueuePtr reinterprets pointers as their bit pattern at the boundary.
type atomicNilCore struct {
	cursors       cursorPair
	slots         []nilSlot
	mask          uint64
	capacity      uint64
	shuffleBits   uint
	spsc          bool
	totalOrder    bool
	maxThroughput bool
}

func newAtomicNilCore(capacity int, spsc, totalOrder, maxThroughput bool) *atomicNilCore {
	if capacity < 1 {
		panic("lfq: capacity must be >= 1")
	}
	n := nextPow2(uint64(capacity))
	return &atomicNilCore{
		slots:         make([]nilSlot, n),
		mask:          n - 1,
		capacity:      n,
		shuffleBits:   shuffleBits(n, 8),
		spsc:          spsc,
		totalOrder:    totalOrder,
		maxThroughput: maxThroughput,
	}
}

func (c *atomicNilCore) slotIndex(cursor uint64) uint64 {
	return remap(cursor&c.mask, c.shuffleBits)
}

func (c *atomicNilCore) push(value uintptr) {
	idx := c.cursors.incrementProducer(c.spsc, c.totalOrder)
	c.slots[c.slotIndex(idx)].store(value, c.spsc, c.maxThroughput)
}

func (c *atomicNilCore) pop() uintptr {
	idx := c.cursors.incrementConsumer(c.spsc, c.totalOrder)
	return c.slots[c.slotIndex(idx)].load(c.spsc, c.maxThroughput)
}

func (c *atomicNilCore) tryPush(value uintptr) error {
	if c.cursors.isFull(c.capacity) {
		return ErrWouldBlock
	}
	c.push(value)
	return nil
}

func (c *atomicNilCore) tryPop() (uintptr, error) {
	if c.cursors.isEmpty() {
		return 0, ErrWouldBlock
	}
	return c.pop(), nil
}

func (c *atomicNilCore) len() int      { return int(c.cursors.len()) }
func (c *atomicNilCore) isEmpty() bool { return c.cursors.isEmpty() }
func (c *atomicNilCore) isFull() bool  { return c.cursors.isFull(c.capacity) }
func (c *atomicNilCore) cap() int      { return int(c.capacity) }

// QueueIndirect is the atomic-nil variant of the queue for uintptr
// payloads — indices or handles into an application-owned table, the
// pattern spec §4.3.2's discussion calls out as the natural fit (smaller
// footprint, no lock-free<E> requirement beyond what uintptr already
// gets for free).
//
// 0 is reserved to mean "slot empty"; pushing 0 is rejected with
// [ErrNilSentinel].
type QueueIndirect struct {
	core *atomicNilCore
}

// NewQueueIndirect creates a general-purpose atomic-nil queue for
// uintptr payloads.
func NewQueueIndirect(capacity int) *QueueIndirect {
	return &QueueIndirect{core: newAtomicNilCore(capacity, false, false, false)}
}

// NewSPSCQueueIndirect creates a single-producer single-consumer
// atomic-nil queue for uintptr payloads.
func NewSPSCQueueIndirect(capacity int) *QueueIndirect {
	return &QueueIndirect{core: newAtomicNilCore(capacity, true, false, false)}
}

// Push adds elem, spinning until a slot is available. Returns
// [ErrNilSentinel] without touching the queue if elem is 0.
func (q *QueueIndirect) Push(elem uintptr) error {
	if elem == nilSentinel {
		return ErrNilSentinel
	}
	q.core.push(elem)
	return nil
}

// TryPush adds elem without blocking. Returns [ErrNilSentinel] if elem is
// 0, or [ErrWouldBlock] if the queue is full.
func (q *QueueIndirect) TryPush(elem uintptr) error {
	if elem == nilSentinel {
		return ErrNilSentinel
	}
	return q.core.tryPush(elem)
}

// Pop removes and returns an element, spinning until one is available.
func (q *QueueIndirect) Pop() uintptr { return q.core.pop() }

// TryPop removes and returns an element without blocking. Returns
// (0, [ErrWouldBlock]) if the queue is empty.
func (q *QueueIndirect) TryPop() (uintptr, error) { return q.core.tryPop() }

// Len, IsEmpty, IsFull, Cap mirror [Queue].
func (q *QueueIndirect) Len() int      { return q.core.len() }
func (q *QueueIndirect) IsEmpty() bool { return q.core.isEmpty() }
func (q *QueueIndirect) IsFull() bool  { return q.core.isFull() }
func (q *QueueIndirect) Cap() int      { return q.core.cap() }

// QueuePtr is the atomic-nil variant of the queue for unsafe.Pointer
// payloads, enabling zero-copy handoff of objects between goroutines.
// The producer transfers ownership on Push — the pointed-to object
// should not be touched by the producer afterward.
//
// nil is reserved to mean "slot empty"; pushing nil is rejected with
// [ErrNilSentinel].
type QueuePtr struct {
	core *atomicNilCore
}

// NewQueuePtr creates a general-purpose atomic-nil queue for
// unsafe.Pointer payloads.
func NewQueuePtr(capacity int) *QueuePtr {
	return &QueuePtr{core: newAtomicNilCore(capacity, false, false, false)}
}

// NewSPSCQueuePtr creates a single-producer single-consumer atomic-nil
// queue for unsafe.Pointer payloads.
func NewSPSCQueuePtr(capacity int) *QueuePtr {
	return &QueuePtr{core: newAtomicNilCore(capacity, true, false, false)}
}

// Push adds elem, spinning until a slot is available. Returns
// [ErrNilSentinel] without touching the queue if elem is nil.
func (q *QueuePtr) Push(elem unsafe.Pointer) error {
	if elem == nil {
		return ErrNilSentinel
	}
	q.core.push(uintptr(elem))
	return nil
}

// TryPush adds elem without blocking. Returns [ErrNilSentinel] if elem is
// nil, or [ErrWouldBlock] if the queue is full.
func (q *QueuePtr) TryPush(elem unsafe.Pointer) error {
	if elem == nil {
		return ErrNilSentinel
	}
	return q.core.tryPush(uintptr(elem))
}

// Pop removes and returns an element, spinning until one is available.
func (q *QueuePtr) Pop() unsafe.Pointer {
	return unsafe.Pointer(q.core.pop()) //nolint:govet // round-trips a pointer this package previously stored
}

// TryPop removes and returns an element without blocking. Returns
// (nil, [ErrWouldBlock]) if the queue is empty.
func (q *QueuePtr) TryPop() (unsafe.Pointer, error) {
	v, err := q.core.tryPop()
	if err != nil {
		return nil, err
	}
	return unsafe.Pointer(v), nil
}

// Len, IsEmpty, IsFull, Cap mirror [Queue].
func (q *QueuePtr) Len() int      { return q.core.len() }
func (q *QueuePtr) IsEmpty() bool { return q.core.isEmpty() }
func (q *QueuePtr) IsFull() bool  { return q.core.isFull() }
func (q *QueuePtr) Cap() int      { return q.core.cap() }
