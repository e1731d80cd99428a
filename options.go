package lfq

// Builder configures queue construction with a fluent API, mirroring the
// constraint-driven builder the teacher library (hayabusa-cloud-lfq)
// uses for its own producer/consumer constraints — generalized here to
// the spec's four compile-time flags (§2), applied at construction time
// since Go generics don't give us the C++ draft's template-bool
// dispatch for free (see DESIGN.md).
type Builder struct {
	capacity      int
	spsc          bool
	totalOrder    bool
	maxThroughput bool
}

// New creates a queue builder for the given capacity. Capacity rounds up
// to the next power of two. Panics if capacity < 1.
func New(capacity int) *Builder {
	if capacity < 1 {
		panic("lfq: capacity must be >= 1")
	}
	return &Builder{capacity: capacity}
}

// SPSC declares that exactly one producer and one consumer goroutine
// will ever use the queue, enabling the relaxed non-atomic cursor
// increment and the poll-only slot fast path.
func (b *Builder) SPSC() *Builder {
	b.spsc = true
	return b
}

// TotalOrder makes cursor advances sequentially consistent instead of
// acquire-ordered, giving a single global order across every push and
// pop at the cost of a stronger fence on some architectures.
func (b *Builder) TotalOrder() *Builder {
	b.totalOrder = true
	return b
}

// MaxThroughput makes a contended spinner re-read slot state with a
// relaxed load before retrying its CAS, trading a little latency for
// less cache-line ping-pong under contention.
func (b *Builder) MaxThroughput() *Builder {
	b.maxThroughput = true
	return b
}

// Build creates a state-tagged [Queue] with the builder's configuration.
func Build[E any](b *Builder) *Queue[E] {
	return newQueue[E](b.capacity, b.spsc, b.totalOrder, b.maxThroughput)
}

// BuildIndirect creates a [QueueIndirect] (atomic-nil, uintptr payload)
// with the builder's configuration.
func (b *Builder) BuildIndirect() *QueueIndirect {
	return &QueueIndirect{core: newAtomicNilCore(b.capacity, b.spsc, b.totalOrder, b.maxThroughput)}
}

// BuildPtr creates a [QueuePtr] (atomic-nil, unsafe.Pointer payload)
// with the builder's configuration.
func (b *Builder) BuildPtr() *QueuePtr {
	return &QueuePtr{core: newAtomicNilCore(b.capacity, b.spsc, b.totalOrder, b.maxThroughput)}
}
