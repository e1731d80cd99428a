// Package stress generates randomized producer/consumer workloads for
// exercising Queue, QueueIndirect and QueuePtr under contention, and runs
// them for a fixed wall-clock budget the way a benchmark driver would.
package stress

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/valyala/fastrand"
)

// Config describes a timed producer/consumer run against a queue-like
// target. It mirrors the shape of the spec's scenario matrix: a producer
// count, a consumer count, and a duration to run for rather than a fixed
// item count, so runs are comparable across machines.
type Config struct {
	Producers int
	Consumers int
	Duration  time.Duration
}

// Target is the minimal surface stress needs from a queue: a blocking
// Push and a non-blocking TryPop over uint64 payloads. TryPop lets
// consumers notice the run has ended without blocking forever on an
// empty queue. Queue[uint64] satisfies it directly; QueueIndirect and
// QueuePtr are adapted by the caller through a small wrapper.
type Target interface {
	Push(v uint64)
	TryPop() (uint64, error)
}

// Result reports what a timed run actually achieved.
type Result struct {
	Produced int64
	Consumed int64
	Elapsed  time.Duration
}

// Run spawns cfg.Producers producer goroutines and cfg.Consumers consumer
// goroutines against target for cfg.Duration. Producers push pseudo-random
// payloads generated with a per-goroutine fastrand RNG, seeded from the
// wall clock and the goroutine index so concurrent producers don't share
// mutable random state. Once the duration elapses, producers stop and
// consumers drain whatever remains before returning.
func Run(target Target, cfg Config) Result {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	var produced, consumed atomic.Int64
	var productionDone, producersExited atomic.Bool

	start := time.Now()

	var producerWg sync.WaitGroup
	producerWg.Add(cfg.Producers)
	for p := 0; p < cfg.Producers; p++ {
		seed := uint32(time.Now().UnixNano()) + uint32(p)*2654435761
		go func(seed uint32) {
			defer producerWg.Done()
			var rng fastrand.RNG
			rng.Seed(seed)
			for !productionDone.Load() {
				target.Push(uint64(rng.Uint32()))
				produced.Add(1)
			}
		}(seed)
	}

	go func() {
		<-ctx.Done()
		productionDone.Store(true)
	}()

	var consumerWg sync.WaitGroup
	consumerWg.Add(cfg.Consumers)
	for c := 0; c < cfg.Consumers; c++ {
		go func() {
			defer consumerWg.Done()
			for {
				exited := producersExited.Load()
				if _, err := target.TryPop(); err == nil {
					consumed.Add(1)
					continue
				}
				if exited {
					return
				}
				runtime.Gosched()
			}
		}()
	}

	<-ctx.Done()
	producerWg.Wait()
	producersExited.Store(true)
	consumerWg.Wait()

	return Result{
		Produced: produced.Load(),
		Consumed: consumed.Load(),
		Elapsed:  time.Since(start),
	}
}
