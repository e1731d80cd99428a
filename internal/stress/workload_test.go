package stress

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/coren-io/lfq"
)

// queueAdapter narrows Queue[uint64]'s wider API down to the Target
// surface Run expects.
type queueAdapter struct{ q *lfq.Queue[uint64] }

func (a queueAdapter) Push(v uint64)          { a.q.Push(v) }
func (a queueAdapter) TryPop() (uint64, error) { return a.q.TryPop() }

func TestRunProducesAndConsumes(t *testing.T) {
	q := lfq.NewQueue[uint64](256)
	result := Run(queueAdapter{q}, Config{
		Producers: 4,
		Consumers: 4,
		Duration:  50 * time.Millisecond,
	})

	require.Greater(t, result.Produced, int64(0), "expected at least one item produced")
	require.LessOrEqual(t, result.Consumed, result.Produced, "cannot consume more than was produced")
	require.Positive(t, result.Elapsed)
}

// queueIndirectAdapter adapts QueueIndirect's uintptr payloads to Target's
// uint64 ones; fastrand payloads are always nonzero in practice, but Push
// rejects zero explicitly rather than silently dropping it.
type queueIndirectAdapter struct{ q *lfq.QueueIndirect }

func (a queueIndirectAdapter) Push(v uint64) {
	if v == 0 {
		v = 1
	}
	a.q.Push(uintptr(v))
}

func (a queueIndirectAdapter) TryPop() (uint64, error) {
	v, err := a.q.TryPop()
	return uint64(v), err
}

func TestRunAgainstQueueIndirect(t *testing.T) {
	q := lfq.NewQueueIndirect(256)
	result := Run(queueIndirectAdapter{q}, Config{
		Producers: 2,
		Consumers: 2,
		Duration:  30 * time.Millisecond,
	})

	require.Greater(t, result.Produced, int64(0))
	require.LessOrEqual(t, result.Consumed, result.Produced)
}

func TestRunDrainsRemainingItemsAfterDeadline(t *testing.T) {
	q := lfq.NewQueue[uint64](1024)
	result := Run(queueAdapter{q}, Config{
		Producers: 8,
		Consumers: 1,
		Duration:  20 * time.Millisecond,
	})

	require.Greater(t, result.Produced, int64(0))

	remaining := 0
	for {
		if _, err := q.TryPop(); err != nil {
			require.True(t, errors.Is(err, lfq.ErrWouldBlock))
			break
		}
		remaining++
	}
	require.Equal(t, result.Produced, result.Consumed+int64(remaining))
}
