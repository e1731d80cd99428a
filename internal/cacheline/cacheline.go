// Package cacheline exposes the platform coherence-granularity constant
// that drives spec §3's ShuffleBits derivation and, separately, how much
// padding a slot needs to avoid false sharing.
//
// The teacher library (hayabusa-cloud-lfq) has an internal/asm package
// with the same per-architecture build-tag shape, but it declares
// assembly entry points with no .s files backing them anywhere in the
// retrieved sources — dead code even there. This package keeps the
// build-tag convention (it is genuinely architecture-dependent
// information) but backs it with a plain Go constant per architecture
// instead of an unreachable extern function, since none of the pack's
// examples ship the actual assembly.
package cacheline

// Size is the assumed cache line size in bytes for the current GOARCH,
// as an int for callers (e.g. shuffleBits) that need a runtime value.
// [LineSize] is the same figure as a true constant, for callers (e.g.
// pad, padAfter8) that need it as an array length.
func Size() int {
	return lineSize
}
