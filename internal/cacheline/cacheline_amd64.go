//go:build amd64

package cacheline

// LineSize is the x86-64 coherence granularity. Some Intel parts prefetch
// adjacent lines (an effective 128-byte granularity), but 64 is the
// conservative, universally-correct value.
const LineSize = 64

const lineSize = LineSize
