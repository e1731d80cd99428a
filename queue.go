package lfq

// Queue is a fixed-capacity, lock-free, multi-producer/multi-consumer
// FIFO queue using the state-tagged slot protocol (spec §4.3.1).
//
// Capacity rounds up to the next power of two so that
// index = cursor & (capacity-1) replaces a division. The slot array is
// indexed through remap, which scatters sequentially-claimed cursors
// across distinct cache lines (spec §4.1) whenever the slot count is
// large enough relative to the cache line for that to matter.
//
// Construct with [NewQueue] or [NewSPSCQueue], or via [Builder] /
// [Build] for flag-driven selection.
type Queue[E any] struct {
	cursors       cursorPair
	slots         []taggedSlot[E]
	mask          uint64
	capacity      uint64
	shuffleBits   uint
	spsc          bool
	totalOrder    bool
	maxThroughput bool
}

// NewQueue creates a general-purpose (MPMC) queue with acquire-ordered
// cursors and no speculative back-off. Capacity rounds up to the next
// power of two; panics if capacity < 1.
func NewQueue[E any](capacity int) *Queue[E] {
	return newQueue[E](capacity, false, false, false)
}

// NewSPSCQueue creates a queue for exactly one producer goroutine and
// exactly one consumer goroutine. Using it from more than one producer
// or consumer is undefined behavior (spec §7, Misuse).
func NewSPSCQueue[E any](capacity int) *Queue[E] {
	return newQueue[E](capacity, true, false, false)
}

func newQueue[E any](capacity int, spsc, totalOrder, maxThroughput bool) *Queue[E] {
	if capacity < 1 {
		panic("lfq: capacity must be >= 1")
	}
	n := nextPow2(uint64(capacity))

	var zero E
	slotSize := uint64(sizeOf(zero))
	if slotSize == 0 {
		slotSize = 1
	}

	q := &Queue[E]{
		slots:         make([]taggedSlot[E], n),
		mask:          n - 1,
		capacity:      n,
		shuffleBits:   shuffleBits(n, slotSize),
		spsc:          spsc,
		totalOrder:    totalOrder,
		maxThroughput: maxThroughput,
	}
	return q
}

func (q *Queue[E]) slotIndex(cursor uint64) uint64 {
	return remap(cursor&q.mask, q.shuffleBits)
}

// Push adds an element, spinning (with back-off) until a slot is
// available. Push never fails: if the queue is saturated, some
// producer's claimed slot is still FULL because the matching consumer
// hasn't drained it yet, and Push blocks inside the slot protocol until
// it does (spec §4.4).
func (q *Queue[E]) Push(elem E) {
	idx := q.cursors.incrementProducer(q.spsc, q.totalOrder)
	slot := &q.slots[q.slotIndex(idx)]
	slot.store(elem, q.spsc, q.maxThroughput)
}

// Pop removes and returns an element, spinning (with back-off) until one
// becomes available.
func (q *Queue[E]) Pop() E {
	idx := q.cursors.incrementConsumer(q.spsc, q.totalOrder)
	slot := &q.slots[q.slotIndex(idx)]
	return slot.load(q.spsc, q.maxThroughput)
}

// TryPush adds an element without blocking. Returns [ErrWouldBlock] if
// the queue is full.
//
// The fullness check and the subsequent cursor claim are not a single
// atomic step (spec §4.4, Open Question O-2): a consumer can advance
// between them, in which case TryPush occasionally degrades to a short
// blocking Push rather than failing. This is the spec's documented
// accepted trade-off — a strictly non-blocking variant would need to
// gate the fetch-add itself behind a CAS on occupancy.
func (q *Queue[E]) TryPush(elem E) error {
	if q.cursors.isFull(q.capacity) {
		return ErrWouldBlock
	}
	q.Push(elem)
	return nil
}

// TryPop removes and returns an element without blocking. Returns
// [ErrWouldBlock] (and the zero value) if the queue is empty. Subject to
// the same check-then-act race as TryPush.
func (q *Queue[E]) TryPop() (E, error) {
	if q.cursors.isEmpty() {
		var zero E
		return zero, ErrWouldBlock
	}
	return q.Pop(), nil
}

// Len returns an approximate occupancy: producer cursor minus consumer
// cursor, clamped to zero. Advisory only — see spec §4.2.
func (q *Queue[E]) Len() int {
	return int(q.cursors.len())
}

// IsEmpty reports whether the queue currently holds no elements, under
// relaxed ordering.
func (q *Queue[E]) IsEmpty() bool {
	return q.cursors.isEmpty()
}

// IsFull reports whether the queue is currently at capacity, under
// relaxed ordering.
func (q *Queue[E]) IsFull() bool {
	return q.cursors.isFull(q.capacity)
}

// Cap returns the queue's usable capacity (the next power of two at or
// above the capacity requested at construction).
func (q *Queue[E]) Cap() int {
	return int(q.capacity)
}
