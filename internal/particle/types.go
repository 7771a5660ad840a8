// Package particle provides the data model and parsing for burst-spawner
// particle effect configurations.
//
// A spawner configuration is a small YAML document describing burst cadence,
// burst size, particle lifetime, spatial jitter, spray direction, and the
// start→end curves that animate each particle's size, velocity and color.
package particle

import (
	"errors"
	"fmt"
	"math"

	"github.com/decker502/confetti/pkg/types"
)

// Gravity is the constant downward bias (units/second) added to the
// interpolated velocity Y component each frame.
const Gravity = 30.0

// poolHeadroom over-provisions the pool by 10% so steady bursting never
// starves on rounding.
const poolHeadroom = 1.1

// MinBurstInterval 爆发间隔下限（秒）。更短的间隔会让重复计时器在单帧内
// 循环过多次，并让池容量失去意义。
const MinBurstInterval = 1e-3

// MaxPoolCapacity 单个发射器的粒子池槽位上限
const MaxPoolCapacity = 1 << 20

var (
	// ErrInvalidConfig marks a config whose scalar fields are out of range.
	ErrInvalidConfig = errors.New("invalid spawner config")
	// ErrMissingCurve marks a config without a curve the emitter needs.
	ErrMissingCurve = errors.New("spawner config missing curve")
)

// SizeCurve animates the particle edge length over its lifetime.
type SizeCurve struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// VelocityCurve animates particle velocity. Start.X and End.X are re-rolled
// per particle activation from the spawner's spray settings; only the Y
// components are taken from the config as-is.
type VelocityCurve struct {
	Start types.Vec2 `yaml:"start"`
	End   types.Vec2 `yaml:"end"`
}

// ColorCurve animates the particle color, interpolated channel by channel.
type ColorCurve struct {
	Start types.Color `yaml:"start"`
	End   types.Color `yaml:"end"`
}

// SpawnerConfig is the declarative description of one burst effect.
// It is immutable once loaded and shared by every spawner created from it.
type SpawnerConfig struct {
	// Name identifies the effect in a catalog (filled from the file name when empty)
	Name string `yaml:"name,omitempty"`

	// BurstInterval 两次爆发之间的间隔（秒）
	BurstInterval float64 `yaml:"burst_interval"`
	// ParticlesPerBurst 每次爆发尝试激活的粒子数
	ParticlesPerBurst int `yaml:"particles_per_burst"`
	// PositionVariance 发射位置在每个轴上的随机偏移半径
	PositionVariance float64 `yaml:"position_variance"`
	// SpraySpeed 水平喷射速度系数
	SpraySpeed float64 `yaml:"spray"`
	// SprayOffset 水平喷射偏移，x = spray * (rand + offset)
	SprayOffset float64 `yaml:"offset"`
	// SpawnerLifetime 发射器持续爆发的时间（秒）
	SpawnerLifetime float64 `yaml:"lifetime"`
	// ParticleLifetime 单个粒子的生命周期（秒），同时也是发射器的收尾宽限期
	ParticleLifetime float64 `yaml:"particle_lifetime"`

	Size     *SizeCurve     `yaml:"particle_size,omitempty"`
	Velocity *VelocityCurve `yaml:"particle_velocity,omitempty"`
	Color    *ColorCurve    `yaml:"particle_color,omitempty"`
}

// Validate checks scalar ranges and that every curve the emitter reads is
// present. All failures wrap ErrInvalidConfig or ErrMissingCurve.
func (c *SpawnerConfig) Validate() error {
	if !(c.BurstInterval >= MinBurstInterval) || math.IsInf(c.BurstInterval, 0) {
		return fmt.Errorf("%w: burst_interval must be >= %v, got %v", ErrInvalidConfig, MinBurstInterval, c.BurstInterval)
	}
	if c.ParticlesPerBurst < 1 {
		return fmt.Errorf("%w: particles_per_burst must be >= 1, got %d", ErrInvalidConfig, c.ParticlesPerBurst)
	}
	if c.PositionVariance < 0 {
		return fmt.Errorf("%w: position_variance must be >= 0, got %v", ErrInvalidConfig, c.PositionVariance)
	}
	if !(c.SpawnerLifetime >= 0) || math.IsInf(c.SpawnerLifetime, 0) {
		return fmt.Errorf("%w: lifetime must be >= 0, got %v", ErrInvalidConfig, c.SpawnerLifetime)
	}
	if !(c.ParticleLifetime > 0) || math.IsInf(c.ParticleLifetime, 0) {
		return fmt.Errorf("%w: particle_lifetime must be > 0, got %v", ErrInvalidConfig, c.ParticleLifetime)
	}
	if math.IsNaN(c.SpraySpeed) || math.IsNaN(c.SprayOffset) {
		return fmt.Errorf("%w: spray and offset must be numbers", ErrInvalidConfig)
	}
	if slots := c.poolSlots(); slots > MaxPoolCapacity {
		return fmt.Errorf("%w: pool capacity %.0f exceeds %d (lower particle_lifetime or particles_per_burst, or raise burst_interval)",
			ErrInvalidConfig, slots, MaxPoolCapacity)
	}

	if c.Size == nil {
		return fmt.Errorf("%w: particle_size", ErrMissingCurve)
	}
	if c.Velocity == nil {
		return fmt.Errorf("%w: particle_velocity", ErrMissingCurve)
	}
	if c.Color == nil {
		return fmt.Errorf("%w: particle_color", ErrMissingCurve)
	}
	if c.Size.Start < 0 || c.Size.End < 0 {
		return fmt.Errorf("%w: particle_size must be >= 0", ErrInvalidConfig)
	}
	return nil
}

// PoolCapacity returns the fixed slot count for a spawner built from c:
// ceil(1.1 * particle_lifetime / burst_interval) * particles_per_burst,
// capped at MaxPoolCapacity. Validate rejects configs that would hit the cap.
func (c *SpawnerConfig) PoolCapacity() int {
	slots := c.poolSlots()
	if !(slots <= MaxPoolCapacity) {
		return MaxPoolCapacity
	}
	return int(slots)
}

// poolSlots 以 float64 计算容量，避免转换 int 时溢出
func (c *SpawnerConfig) poolSlots() float64 {
	return math.Ceil(poolHeadroom*c.ParticleLifetime/c.BurstInterval) * float64(c.ParticlesPerBurst)
}

// TotalDuration is the time from spawn until the spawner is torn down:
// its own lifetime plus the grace period that lets the last particles finish.
func (c *SpawnerConfig) TotalDuration() float64 {
	return c.SpawnerLifetime + c.ParticleLifetime
}
