package lfq

import "code.hybscloud.com/spin"

// relax is the cpu_relax() primitive from spec §4.5: a hardware pause or
// yield hint, called on every spin iteration of the slot protocol and
// nowhere else. It is a thin wrapper over [spin.Wait] rather than a
// hand-rolled PAUSE/YIELD stub — the teacher already ships the
// architecture-specific intrinsics this package would otherwise need to
// duplicate.
type relax struct {
	w spin.Wait
}

// once emits one back-off step.
func (r *relax) once() {
	r.w.Once()
}
