//go:build !race

package lfq

// RaceEnabled is false when the race detector is not active.
const RaceEnabled = false
