package systems

import (
	"github.com/decker502/confetti/internal/particle"
	"github.com/decker502/confetti/pkg/components"
	"github.com/decker502/confetti/pkg/types"
)

// testViewport 测试用视口（发射基准点 = (400, 0)）
var testViewport = types.Viewport{Width: 800, Height: 600}

// newTestConfig 创建测试用发射器配置
// 参数与文档示例一致：0.5s 爆发一次，每次 3 个，粒子寿命 2s，发射器寿命 1s
func newTestConfig() *particle.SpawnerConfig {
	return &particle.SpawnerConfig{
		Name:              "test",
		BurstInterval:     0.5,
		ParticlesPerBurst: 3,
		PositionVariance:  20,
		SpraySpeed:        400,
		SprayOffset:       -0.5,
		SpawnerLifetime:   1.0,
		ParticleLifetime:  2.0,
		Size:              &particle.SizeCurve{Start: 10, End: 2},
		Velocity: &particle.VelocityCurve{
			Start: types.Vec2{X: 0, Y: 300},
			End:   types.Vec2{X: 0, Y: 50},
		},
		Color: &particle.ColorCurve{
			Start: types.RGBA(1, 0.8, 0.2, 1),
			End:   types.RGBA(0.2, 0.1, 1, 0),
		},
	}
}

// newTestSystem 创建使用固定随机种子的粒子系统
func newTestSystem() *ParticleSystem {
	return NewParticleSystem(nil, NewRand(42))
}

// stepFrames 以固定 dt 推进 n 帧
func stepFrames(ps *ParticleSystem, dt float64, n int) {
	for i := 0; i < n; i++ {
		ps.Update(dt)
	}
}

// newTestSpawner 直接构造一个发射器（不经过 ParticleSystem）
func newTestSpawner(config *particle.SpawnerConfig) *components.SpawnerComponent {
	s := &components.SpawnerComponent{
		ID:            1,
		Config:        config,
		Base:          testViewport.SpawnBase(),
		State:         components.SpawnerBursting,
		BurstTimer:    components.NewTimer(config.BurstInterval, components.TimerRepeating),
		LifetimeTimer: components.NewTimer(config.SpawnerLifetime, components.TimerOnce),
		GraceTimer:    components.NewTimer(config.ParticleLifetime, components.TimerOnce),
	}
	s.Pool = newParticlePool(config, slotTemplate(config, s))
	return s
}
