package components

import (
	"github.com/decker502/confetti/internal/particle"
	"github.com/decker502/confetti/pkg/types"
)

// SpawnerID 发射器实例的唯一标识（从 1 开始，0 保留为无效 ID）
type SpawnerID uint64

// SpawnerState 发射器状态机
type SpawnerState int

const (
	// SpawnerBursting 正在按节奏爆发
	SpawnerBursting SpawnerState = iota
	// SpawnerDraining 寿命已到，不再爆发，等待已发射粒子播放完毕
	SpawnerDraining
	// SpawnerFinished 终止状态，发射器与粒子池一起销毁
	SpawnerFinished
)

func (s SpawnerState) String() string {
	switch s {
	case SpawnerBursting:
		return "Bursting"
	case SpawnerDraining:
		return "Draining"
	case SpawnerFinished:
		return "Finished"
	}
	return "Unknown"
}

// SpawnerComponent is one active burst effect instance.
//
// It exclusively owns a fixed-capacity particle pool sized from its config;
// the pool is allocated once in ParticleSystem.Spawn and never resized.
//
// This is a pure data component - the state machine lives in pkg/systems.
type SpawnerComponent struct {
	ID     SpawnerID
	Config *particle.SpawnerConfig

	// Base 发射基准点（视口水平居中，顶部）
	Base types.Vec2

	State SpawnerState

	// Timers (发射器计时器)
	BurstTimer    TimerComponent // 循环，周期 = BurstInterval
	LifetimeTimer TimerComponent // 单次，时长 = SpawnerLifetime
	GraceTimer    TimerComponent // 单次，时长 = ParticleLifetime

	// Age 发射器总年龄（秒），用于统计与状态转换日志
	Age float64

	// Pool 粒子槽位（固定容量）
	Pool []ParticleSlot

	// Statistics (统计)
	BurstsEmitted    int
	ParticlesEmitted int
	ParticlesDropped int // 粒子池耗尽时被静默丢弃的次数
	PeakActive       int
}
