package systems

import (
	"math/rand/v2"

	"github.com/decker502/confetti/pkg/components"
)

// emitBurst activates up to ParticlesPerBurst pooled slots, scanning in slot
// index order. Iterations that find no inactive slot are dropped silently:
// the pool never grows, so under-provisioning only thins the effect.
//
// Returns the number of slots activated.
func emitBurst(s *components.SpawnerComponent, rng *rand.Rand) int {
	config := s.Config
	activated := 0
	cursor := 0

	for i := 0; i < config.ParticlesPerBurst; i++ {
		idx := nextInactive(s.Pool, cursor)
		if idx < 0 {
			s.ParticlesDropped += config.ParticlesPerBurst - i
			break
		}
		activateSlot(&s.Pool[idx], s, rng)
		// slots before idx are all active now, resume the scan after it
		cursor = idx + 1
		activated++
	}

	s.BurstsEmitted++
	s.ParticlesEmitted += activated
	return activated
}

// activateSlot resets a slot for a new particle: zero age, fresh jittered
// spawn position around the spawner base, re-rolled spray velocity and the
// curve start values.
func activateSlot(slot *components.ParticleSlot, s *components.SpawnerComponent, rng *rand.Rand) {
	config := s.Config

	ResetTimer(&slot.Age)
	slot.Active = true

	slot.Position.X = s.Base.X + config.PositionVariance*(2*rng.Float64()-1)
	slot.Position.Y = s.Base.Y + config.PositionVariance*(2*rng.Float64()-1)

	// Y components come from the config, X is sampled independently for
	// start and end so each burst fans out.
	slot.Velocity = *config.Velocity
	slot.Velocity.Start.X = config.SpraySpeed * (rng.Float64() + config.SprayOffset)
	slot.Velocity.End.X = config.SpraySpeed * (rng.Float64() + config.SprayOffset)

	slot.Size = slot.SizeCurve.Start
	slot.Color = slot.ColorCurve.Start
}
