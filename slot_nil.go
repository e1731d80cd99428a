package lfq

import "code.hybscloud.com/atomix"

// nilSlot is the atomic-nil slot variant from spec §4.3.2: a single
// atomic cell, with the sentinel value 0 meaning EMPTY and any other
// value meaning FULL. There is no separate transitional state — the
// producer/consumer handshake collapses into the atomic CAS/exchange
// itself.
//
// Go has no generic lock-free atomic<E> for an arbitrary element type,
// so this variant is restricted to the two shapes that do have one:
// uintptr ([QueueIndirect]) and unsafe.Pointer, stored as its bit
// pattern in a uintptr cell ([QueuePtr]). [atomix.Uintptr] is the
// lock-free primitive the assertion in spec §7 (Misconfiguration:
// "atomic<E> not lock-free") would otherwise have to make at
// construction time for a type parameter; restricting the shape sidesteps
// needing that assertion at all.
type nilSlot struct {
	cell atomix.Uintptr
	_    padAfter8
}

const nilSentinel uintptr = 0

// store is the producer side: CAS the cell from NIL to value.
func (s *nilSlot) store(value uintptr, spsc, maxThroughput bool) {
	if spsc {
		var r relax
		for s.cell.LoadAcquire() != nilSentinel {
			r.once()
		}
		s.cell.StoreRelease(value)
		return
	}

	var r relax
	for {
		if s.cell.CompareAndSwapAcqRel(nilSentinel, value) {
			return
		}
		if maxThroughput {
			for s.cell.LoadRelaxed() != nilSentinel {
				r.once()
			}
			continue
		}
		r.once()
	}
}

// load is the consumer side: atomically swap the cell back to NIL and
// return whatever was there, implemented as a CAS loop since the
// observed atomix surface exposes CompareAndSwap rather than a bare
// exchange primitive.
func (s *nilSlot) load(spsc, maxThroughput bool) uintptr {
	if spsc {
		var r relax
		for {
			v := s.cell.LoadAcquire()
			if v != nilSentinel {
				s.cell.StoreRelease(nilSentinel)
				return v
			}
			r.once()
		}
	}

	var r relax
	for {
		v := s.cell.LoadAcquire()
		if v != nilSentinel && s.cell.CompareAndSwapAcqRel(v, nilSentinel) {
			return v
		}
		if maxThroughput {
			for s.cell.LoadRelaxed() == nilSentinel {
				r.once()
			}
			continue
		}
		r.once()
	}
}
