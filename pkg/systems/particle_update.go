package systems

import (
	"github.com/decker502/confetti/internal/particle"
	"github.com/decker502/confetti/pkg/components"
	"github.com/decker502/confetti/pkg/utils"
)

// updatePool runs the per-frame pass over every active slot and returns how
// many are still active afterwards.
func updatePool(pool []components.ParticleSlot, dt float64) int {
	active := 0
	for i := range pool {
		slot := &pool[i]
		if !slot.Active {
			continue
		}
		updateSlot(slot, dt)
		if slot.Active {
			active++
		}
	}
	return active
}

// updateSlot advances one particle's age and republishes its attributes.
//
// A particle whose age completes this frame is hidden, but still gets this
// final update at t=1. Gravity is added to the interpolated velocity, not
// integrated, and position uses one explicit Euler step per frame.
func updateSlot(slot *components.ParticleSlot, dt float64) {
	TickTimer(&slot.Age, dt)
	if slot.Age.Finished {
		slot.Active = false
	}

	t := TimerFraction(slot.Age)

	velocity := utils.LerpVec2(slot.Velocity.Start, slot.Velocity.End, t)
	velocity.Y += particle.Gravity
	slot.Position = slot.Position.Add(velocity.Scale(dt))

	slot.Size = utils.Lerp(slot.SizeCurve.Start, slot.SizeCurve.End, t)
	slot.Color = utils.LerpColor(slot.ColorCurve.Start, slot.ColorCurve.End, t)
}
