package systems

import (
	"github.com/decker502/confetti/internal/particle"
	"github.com/decker502/confetti/pkg/components"
)

// newParticlePool pre-allocates config.PoolCapacity() inactive slots.
// Every slot shares the config's size and color curves and starts with a
// copy of its velocity curve.
func newParticlePool(config *particle.SpawnerConfig, base components.ParticleSlot) []components.ParticleSlot {
	pool := make([]components.ParticleSlot, config.PoolCapacity())
	for i := range pool {
		pool[i] = base
	}
	return pool
}

// slotTemplate is the inactive starting state of every slot.
func slotTemplate(config *particle.SpawnerConfig, s *components.SpawnerComponent) components.ParticleSlot {
	return components.ParticleSlot{
		Active:     false,
		Age:        components.NewTimer(config.ParticleLifetime, components.TimerOnce),
		Position:   s.Base,
		Size:       config.Size.Start,
		Color:      config.Color.Start,
		Velocity:   *config.Velocity,
		SizeCurve:  config.Size,
		ColorCurve: config.Color,
	}
}

// nextInactive returns the index of the first inactive slot at or after from,
// or -1 when the pool is exhausted.
func nextInactive(pool []components.ParticleSlot, from int) int {
	for i := from; i < len(pool); i++ {
		if !pool[i].Active {
			return i
		}
	}
	return -1
}

// countActive returns the number of active slots.
func countActive(pool []components.ParticleSlot) int {
	n := 0
	for i := range pool {
		if pool[i].Active {
			n++
		}
	}
	return n
}
