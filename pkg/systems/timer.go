package systems

import (
	"github.com/decker502/confetti/pkg/components"
)

// timerEpsilon absorbs float accumulation of frame deltas (e.g. 60 × 1/60 s
// summing to 0.9999999999999999).
const timerEpsilon = 1e-9

// TickTimer advances t by dt and updates its completion flags.
//
// It returns the overflow: how far past the (last) completion instant the
// timer ran during this tick, or 0 when it did not complete. A once-timer
// that is already finished stays finished and reports JustFinished=false.
func TickTimer(t *components.TimerComponent, dt float64) float64 {
	t.JustFinished = false
	t.TimesFinishedThisTick = 0

	switch t.Mode {
	case components.TimerRepeating:
		t.Finished = false
		if t.Duration <= 0 {
			return 0
		}
		t.Elapsed += dt
		for t.Elapsed >= t.Duration-timerEpsilon {
			t.Elapsed -= t.Duration
			t.TimesFinishedThisTick++
		}
		if t.Elapsed < 0 {
			t.Elapsed = 0
		}
		if t.TimesFinishedThisTick > 0 {
			t.Finished = true
			t.JustFinished = true
			return t.Elapsed
		}
		return 0

	default:
		if t.Finished {
			return 0
		}
		t.Elapsed += dt
		if t.Elapsed < t.Duration-timerEpsilon {
			return 0
		}
		overflow := t.Elapsed - t.Duration
		if overflow < 0 {
			overflow = 0
		}
		t.Elapsed = t.Duration
		t.Finished = true
		t.JustFinished = true
		t.TimesFinishedThisTick = 1
		return overflow
	}
}

// ResetTimer rewinds t to zero and clears completion flags.
func ResetTimer(t *components.TimerComponent) {
	t.Elapsed = 0
	t.Finished = false
	t.JustFinished = false
	t.TimesFinishedThisTick = 0
}

// TimerFraction returns elapsed/duration clamped to [0, 1]; a finished
// once-timer (or a zero-length one) reports 1.
func TimerFraction(t components.TimerComponent) float64 {
	if t.Mode == components.TimerOnce && t.Finished {
		return 1
	}
	if t.Duration <= 0 {
		return 1
	}
	f := t.Elapsed / t.Duration
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}
