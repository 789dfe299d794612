package verlet

import (
	"fmt"
	"io"
	"time"
)

// debugStats holds per-step timing and pair metrics.
// Only populated when Space.debug is true.
type debugStats struct {
	integrateTime time.Duration
	collideTime   time.Duration
	pairs         int
	resolutions   int
}

// debugMaxKinetics is the body count above which a one-time warning is
// printed: the collision pass checks every pair.
const debugMaxKinetics = 1000

// SetDebug enables per-step timing and pair statistics on the debug output
// (stderr by default).
func (s *Space) SetDebug(enabled bool) {
	s.debug = enabled
}

// SetDebugOutput redirects debug output. A nil writer is ignored.
func (s *Space) SetDebugOutput(w io.Writer) {
	if w != nil {
		s.debugOut = w
	}
}

// debugLog prints timing and pair stats for one step.
func (s *Space) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(s.debugOut,
		"[verlet] step %d | integrate: %v | collide: %v | total: %v\n",
		s.steps, stats.integrateTime, stats.collideTime, stats.integrateTime+stats.collideTime)
	_, _ = fmt.Fprintf(s.debugOut,
		"[verlet] bodies: %d | borders: %d | pairs: %d | resolved: %d\n",
		len(s.kinetics), len(s.statics), stats.pairs, stats.resolutions)
	s.debugCheckKinetics()
}

// debugCheckKinetics warns once when the body count makes the pair pass
// expensive.
func (s *Space) debugCheckKinetics() {
	if s.debugWarned || len(s.kinetics) <= debugMaxKinetics {
		return
	}
	s.debugWarned = true
	n := len(s.kinetics)
	_, _ = fmt.Fprintf(s.debugOut, "[verlet] warning: %d bodies exceeds %d (%d pairs per step)\n",
		n, debugMaxKinetics, n*(n-1)/2)
}
