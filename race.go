//go:build race

package lfq

// RaceEnabled is true when the race detector is active. Concurrent tests
// of the state-tagged and atomic-nil slot protocols can consult it to
// skip runs that would otherwise report false positives: the race
// detector tracks explicit synchronization primitives, not the
// happens-before edges this package establishes purely through
// acquire/release atomics on the slot state and cursor fields. This
// package's own stress tests (stress_test.go) are excluded under -race
// by a //go:build !race constraint rather than by this constant.
const RaceEnabled = true
