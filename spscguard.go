//go:build !release

package lfq

import "sync/atomic"

// spscGuard is the debug assertion spec §4.4 requires: SPSC mode is
// undefined behavior under more than one producer or consumer goroutine,
// and entry to the hot path MUST trip an assertion rather than silently
// corrupt the cursor. Built into every binary except ones built with
// -tags release; see spscguard_release.go for the production no-op.
type spscGuard struct {
	owner atomic.Bool
}

// enter claims sole ownership for the duration of one cursor increment.
// Panics if another goroutine is already inside, which can only happen
// if the caller violated the single-producer or single-consumer contract
// it asked for via SPSC().
func (g *spscGuard) enter() {
	if !g.owner.CompareAndSwap(false, true) {
		panic("lfq: SPSC queue entered concurrently by more than one producer/consumer goroutine")
	}
}

// leave releases ownership claimed by enter.
func (g *spscGuard) leave() {
	g.owner.Store(false)
}
