package lfq

import "code.hybscloud.com/atomix"

// cursorPair holds the producer and consumer monotonic counters described
// in spec §3/§4.2. Each cursor lives on its own cache line; the array
// this pair indexes into lives on a line of its own again (see Queue).
//
// Grounded on the teacher's head/tail atomix.Uint64 pair (mpmc.go,
// spsc.go in hayabusa-cloud-lfq), generalized with explicit TotalOrder
// and SPSC handling instead of being baked into a dedicated type per
// algorithm.
type cursorPair struct {
	_             pad
	producer      atomix.Uint64
	producerGuard spscGuard
	_             pad
	consumer      atomix.Uint64
	consumerGuard spscGuard
	_             pad
}

// incrementProducer claims the next producer position and returns it
// (the value prior to the increment, matching fetch-add semantics).
//
//   - spsc: relaxed load then relaxed store of prior+1, guarded by a
//     debug-only single-owner assertion (spscguard.go) — only valid when
//     exactly one producer goroutine ever calls this.
//   - totalOrder: sequentially consistent fetch-add, giving a single
//     global order across every cursor advance.
//   - otherwise: acquire-release fetch-add, which includes the acquire
//     ordering the slot handshake needs.
func (c *cursorPair) incrementProducer(spsc, totalOrder bool) uint64 {
	if spsc {
		c.producerGuard.enter()
		prior := c.producer.LoadRelaxed()
		c.producer.StoreRelaxed(prior + 1)
		c.producerGuard.leave()
		return prior
	}
	if totalOrder {
		return c.producer.AddSeqCst(1) - 1
	}
	return c.producer.AddAcqRel(1) - 1
}

// incrementConsumer is the symmetric counterpart of incrementProducer.
func (c *cursorPair) incrementConsumer(spsc, totalOrder bool) uint64 {
	if spsc {
		c.consumerGuard.enter()
		prior := c.consumer.LoadRelaxed()
		c.consumer.StoreRelaxed(prior + 1)
		c.consumerGuard.leave()
		return prior
	}
	if totalOrder {
		return c.consumer.AddSeqCst(1) - 1
	}
	return c.consumer.AddAcqRel(1) - 1
}

// snapshot reads both cursors with relaxed ordering. The pair may
// briefly observe producer < consumer in pathological interleavings;
// callers that care (len) clamp accordingly.
func (c *cursorPair) snapshot() (producer, consumer uint64) {
	return c.producer.LoadRelaxed(), c.consumer.LoadRelaxed()
}

// len returns max(0, producer-consumer). Advisory only: see spec §4.2.
func (c *cursorPair) len() uint64 {
	p, cons := c.snapshot()
	if p < cons {
		return 0
	}
	return p - cons
}

// isEmpty reports producer == consumer under relaxed ordering.
func (c *cursorPair) isEmpty() bool {
	p, cons := c.snapshot()
	return p == cons
}

// isFull reports producer-consumer == capacity on the unmasked cursors.
//
// This resolves spec §9 Open Question O-1: earlier drafts compared masked
// indices (wrong when a consumer lags by exactly one full lap) or used
// "producer+1==consumer" (wraparound on the unbounded counter, which
// cannot happen with 64-bit cursors within any realistic run). The
// correct predicate compares the unmasked difference against capacity.
func (c *cursorPair) isFull(capacity uint64) bool {
	p, cons := c.snapshot()
	return p-cons == capacity
}
