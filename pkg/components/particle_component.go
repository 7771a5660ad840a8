package components

import (
	"github.com/decker502/confetti/internal/particle"
	"github.com/decker502/confetti/pkg/types"
)

// ParticleSlot is one reusable particle record in a spawner's pool.
//
// Slots are toggled active/inactive many times during a spawner's life and
// are never freed individually. While inactive the attribute fields keep
// their last values; they are not rendered and get overwritten on the next
// activation.
//
// This is a pure data component following ECS principles - it contains no methods.
type ParticleSlot struct {
	Active bool

	// Age 粒子年龄计时器（单次，时长 = ParticleLifetime）
	Age TimerComponent

	// Published attributes (渲染层读取)
	Position types.Vec2
	Size     float64
	Color    types.Color

	// Velocity is a per-slot copy: X components are re-rolled on activation.
	Velocity particle.VelocityCurve

	// Curves shared with the parent spawner's config (not duplicated)
	SizeCurve  *particle.SizeCurve
	ColorCurve *particle.ColorCurve
}

// ParticleSnapshot is the read-only view of one slot handed to renderers.
type ParticleSnapshot struct {
	Position types.Vec2
	Size     float64
	Color    types.Color
	Visible  bool
}
