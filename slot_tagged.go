package lfq

import "code.hybscloud.com/atomix"

// slotState is a slot's position in the EMPTY -> STORING -> FULL ->
// LOADING -> EMPTY cycle from spec §3/§4.3.1.
type slotState int64

const (
	slotEmpty slotState = iota
	slotStoring
	slotFull
	slotLoading
)

// taggedSlot is the state-tagged slot variant: a plain value plus an
// atomic state tag. Works for any element type, unlike the atomic-nil
// variant which needs a sentinel and a lock-free atomic<E>.
//
// Grounded on the teacher's cycle-tagged slot (mpmcSlot in mpmc_seq.go),
// generalized from a monotonic cycle counter to the spec's explicit
// four-state tag, since this design's ownership handshake is per-slot
// CAS rather than SCQ's per-slot cycle comparison.
type taggedSlot[E any] struct {
	state atomix.Int64
	value E
	_     padAfter8
}

// store is the producer side of the protocol: claim the slot by CASing
// its state from EMPTY to STORING, write the value, then publish by
// setting the state to FULL. Spins (with back-off) until the slot
// becomes claimable.
func (s *taggedSlot[E]) store(value E, spsc, maxThroughput bool) {
	if spsc {
		var r relax
		for s.state.LoadAcquire() != int64(slotEmpty) {
			r.once()
		}
		s.value = value
		s.state.StoreRelease(int64(slotFull))
		return
	}

	var r relax
	for {
		if s.state.CompareAndSwapAcqRel(int64(slotEmpty), int64(slotStoring)) {
			s.value = value
			s.state.StoreRelease(int64(slotFull))
			return
		}
		if maxThroughput {
			for s.state.LoadRelaxed() != int64(slotEmpty) {
				r.once()
			}
			continue
		}
		r.once()
	}
}

// load is the consumer side: claim the slot by CASing FULL to LOADING,
// read the value, then release it by setting the state back to EMPTY.
// Spins (with back-off) until the slot becomes claimable.
func (s *taggedSlot[E]) load(spsc, maxThroughput bool) E {
	if spsc {
		var r relax
		for s.state.LoadAcquire() != int64(slotFull) {
			r.once()
		}
		value := s.value
		var zero E
		s.value = zero
		s.state.StoreRelease(int64(slotEmpty))
		return value
	}

	var r relax
	for {
		if s.state.CompareAndSwapAcqRel(int64(slotFull), int64(slotLoading)) {
			value := s.value
			var zero E
			s.value = zero
			s.state.StoreRelease(int64(slotEmpty))
			return value
		}
		if maxThroughput {
			for s.state.LoadRelaxed() != int64(slotFull) {
				r.once()
			}
			continue
		}
		r.once()
	}
}
