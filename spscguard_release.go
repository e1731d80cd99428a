//go:build release

package lfq

// spscGuard is a no-op in release builds: the debug assertion in
// spscguard.go costs an extra CAS per SPSC cursor increment, and
// production builds that have already validated single-ownership opt out
// of paying for it with -tags release.
type spscGuard struct{}

func (g *spscGuard) enter() {}
func (g *spscGuard) leave() {}
