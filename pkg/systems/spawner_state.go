package systems

import (
	"github.com/decker502/confetti/pkg/components"
)

// advanceSpawner runs one frame of the spawner timing state machine
// (Bursting → Draining → Finished) and returns how many bursts are due.
//
// Burst completions are only counted up to the lifetime end; a completion
// landing exactly on the boundary still fires. Time left in the frame after
// the lifetime ends is credited to the grace timer immediately, so the
// spawner finishes at lifetime + particle_lifetime, never earlier.
func advanceSpawner(s *components.SpawnerComponent, dt float64) int {
	s.Age += dt

	switch s.State {
	case components.SpawnerBursting:
		lifetimeBefore := s.LifetimeTimer.Elapsed
		burstBefore := s.BurstTimer.Elapsed

		TickTimer(&s.BurstTimer, dt)
		overflow := TickTimer(&s.LifetimeTimer, dt)
		bursts := s.BurstTimer.TimesFinishedThisTick

		if !s.LifetimeTimer.Finished {
			return bursts
		}

		// Lifetime ended inside this frame: drop bursts scheduled after it.
		untilEnd := s.LifetimeTimer.Duration - lifetimeBefore
		firstBurst := s.BurstTimer.Duration - burstBefore
		bursts = burstsWithin(firstBurst, s.BurstTimer.Duration, bursts, untilEnd)

		s.State = components.SpawnerDraining
		TickTimer(&s.GraceTimer, overflow)
		if s.GraceTimer.Finished {
			s.State = components.SpawnerFinished
		}
		return bursts

	case components.SpawnerDraining:
		TickTimer(&s.GraceTimer, dt)
		if s.GraceTimer.Finished {
			s.State = components.SpawnerFinished
		}
	}
	return 0
}

// burstsWithin counts how many of n completions, the first at offset first
// and then every period, fall at or before limit (offsets from frame start).
func burstsWithin(first, period float64, n int, limit float64) int {
	count := 0
	for k := 0; k < n; k++ {
		if first+float64(k)*period > limit+timerEpsilon {
			break
		}
		count++
	}
	return count
}
