package lfq_test

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/coren-io/lfq"
)

func TestQueueIndirectBasic(t *testing.T) {
	q := lfq.NewQueueIndirect(64)

	if q.Cap() != 64 {
		t.Fatalf("Cap: got %d, want 64", q.Cap())
	}

	for i := uintptr(1); i <= uintptr(q.Cap()); i++ {
		if err := q.TryPush(i); err != nil {
			t.Fatalf("TryPush(%d): %v", i, err)
		}
	}
	if err := q.TryPush(999); !errors.Is(err, lfq.ErrWouldBlock) {
		t.Fatalf("TryPush on full: got %v, want ErrWouldBlock", err)
	}

	seen := map[uintptr]bool{}
	for i := 0; i < q.Cap(); i++ {
		v, err := q.TryPop()
		if err != nil {
			t.Fatalf("TryPop(%d): %v", i, err)
		}
		if seen[v] {
			t.Fatalf("TryPop returned duplicate value %d", v)
		}
		seen[v] = true
	}
	if len(seen) != q.Cap() {
		t.Fatalf("popped %d distinct values, want %d", len(seen), q.Cap())
	}
}

func TestQueueIndirectRejectsSentinel(t *testing.T) {
	q := lfq.NewQueueIndirect(4)
	if err := q.Push(0); !errors.Is(err, lfq.ErrNilSentinel) {
		t.Fatalf("Push(0): got %v, want ErrNilSentinel", err)
	}
	if err := q.TryPush(0); !errors.Is(err, lfq.ErrNilSentinel) {
		t.Fatalf("TryPush(0): got %v, want ErrNilSentinel", err)
	}
	if !q.IsEmpty() {
		t.Fatalf("IsEmpty after rejected pushes: got false, want true")
	}
}

func TestQueuePtrRoundTrip(t *testing.T) {
	type payload struct{ n int }

	q := lfq.NewQueuePtr(8)
	values := make([]*payload, 4)
	for i := range values {
		values[i] = &payload{n: i}
		if err := q.Push(unsafe.Pointer(values[i])); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}

	for i := range values {
		got := (*payload)(q.Pop())
		if got.n != i {
			t.Fatalf("Pop(%d): got n=%d, want %d", i, got.n, i)
		}
	}
}

func TestQueuePtrRejectsNil(t *testing.T) {
	q := lfq.NewQueuePtr(4)
	if err := q.Push(nil); !errors.Is(err, lfq.ErrNilSentinel) {
		t.Fatalf("Push(nil): got %v, want ErrNilSentinel", err)
	}
}

func TestSPSCQueueIndirectFillAndDrain(t *testing.T) {
	q := lfq.NewSPSCQueueIndirect(4)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := uintptr(1); i <= 16; i++ {
			q.Push(i)
		}
	}()

	for i := uintptr(1); i <= 16; i++ {
		got := q.Pop()
		if got != i {
			t.Fatalf("Pop(%d): got %d, want %d", i, got, i)
		}
	}
	<-done
}
