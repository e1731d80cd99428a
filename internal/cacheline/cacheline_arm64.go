//go:build arm64

package cacheline

// LineSize: Apple Silicon and most server ARM64 parts use a 128-byte
// line; this errs toward the larger figure since under-padding is the
// costlier mistake (false sharing) while over-padding only wastes memory.
const LineSize = 128

const lineSize = LineSize
