//go:build !race

package lfq_test

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/coren-io/lfq"
)

// TestQueueHighContentionMPMC exercises spec.md's scenario 4: several
// producers and consumers pushing/popping a shared queue concurrently.
// The multiset of values popped must equal the multiset pushed — nothing
// lost, nothing duplicated. Excluded under -race: the race detector
// cannot observe the acquire/release handshake the slot protocol uses
// (it tracks synchronization primitives, not cross-variable memory
// ordering), and reports false positives here.
func TestQueueHighContentionMPMC(t *testing.T) {
	const (
		producers  = 8
		consumers  = 8
		perProduce = 5000
		capacity   = 1 << 10
	)

	q := lfq.NewQueue[uint64](capacity)

	var produced, consumed sync.WaitGroup
	produced.Add(producers)
	consumed.Add(consumers)

	for p := 0; p < producers; p++ {
		go func(p int) {
			defer produced.Done()
			base := uint64(p) * perProduce
			for i := uint64(0); i < perProduce; i++ {
				q.Push(base + i)
			}
		}(p)
	}

	total := uint64(producers * perProduce)
	var seenCount atomic.Uint64
	seen := make([]atomic.Bool, total)

	var dupes atomic.Uint64
	for c := 0; c < consumers; c++ {
		go func() {
			defer consumed.Done()
			for seenCount.Load() < total {
				v, err := q.TryPop()
				if err != nil {
					if !errors.Is(err, lfq.ErrWouldBlock) {
						t.Errorf("unexpected TryPop error: %v", err)
						return
					}
					runtime.Gosched()
					continue
				}
				if v >= total {
					t.Errorf("popped out-of-range value %d", v)
					continue
				}
				if seen[v].Swap(true) {
					dupes.Add(1)
				}
				seenCount.Add(1)
			}
		}()
	}

	produced.Wait()
	consumed.Wait()

	if dupes.Load() != 0 {
		t.Fatalf("observed %d duplicate pops", dupes.Load())
	}
	for v := uint64(0); v < total; v++ {
		if !seen[v].Load() {
			t.Fatalf("value %d was pushed but never popped", v)
		}
	}
}

// TestQueueIndirectHighContention is the QueueIndirect analogue of
// TestQueueHighContentionMPMC, exercising the atomic-nil slot protocol
// under contention instead of the state-tagged one.
func TestQueueIndirectHighContention(t *testing.T) {
	const (
		producers  = 4
		consumers  = 4
		perProduce = 2000
		capacity   = 1 << 9
	)

	q := lfq.NewQueueIndirect(capacity)

	var produced, consumed sync.WaitGroup
	produced.Add(producers)
	consumed.Add(consumers)

	total := uintptr(producers * perProduce)
	for p := 0; p < producers; p++ {
		go func(p int) {
			defer produced.Done()
			base := uintptr(p*perProduce) + 1 // keep values >=1, 0 is the sentinel
			for i := uintptr(0); i < perProduce; i++ {
				q.Push(base + i)
			}
		}(p)
	}

	var seenCount atomic.Uint64
	seen := make([]atomic.Bool, total+1)

	var dupes atomic.Uint64
	for c := 0; c < consumers; c++ {
		go func() {
			defer consumed.Done()
			for seenCount.Load() < uint64(total) {
				v, err := q.TryPop()
				if err != nil {
					if !errors.Is(err, lfq.ErrWouldBlock) {
						t.Errorf("unexpected TryPop error: %v", err)
						return
					}
					runtime.Gosched()
					continue
				}
				if v == 0 || v > total {
					t.Errorf("popped out-of-range value %d", v)
					continue
				}
				if seen[v].Swap(true) {
					dupes.Add(1)
				}
				seenCount.Add(1)
			}
		}()
	}

	produced.Wait()
	consumed.Wait()

	if dupes.Load() != 0 {
		t.Fatalf("observed %d duplicate pops", dupes.Load())
	}
	for v := uintptr(1); v <= total; v++ {
		if !seen[v].Load() {
			t.Fatalf("value %d was pushed but never popped", v)
		}
	}
}
