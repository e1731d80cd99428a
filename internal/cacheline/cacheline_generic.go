//go:build !amd64 && !arm64

package cacheline

// LineSize is the conservative default for architectures without a
// specific entry.
const LineSize = 64

const lineSize = LineSize
