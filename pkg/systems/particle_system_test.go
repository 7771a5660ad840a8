package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/confetti/internal/particle"
	"github.com/decker502/confetti/pkg/components"
	"github.com/decker502/confetti/pkg/types"
)

// TestParticleSystem_DocumentedScenario 文档示例场景
// 配置：burst 0.5s × 3 个，粒子寿命 2s，发射器寿命 1s
// 预期：粒子池 15 个槽位；t=0.5 与 t=1.0 各爆发一次（共 6 个粒子）；
// t=1.0 进入 Draining；t=3.0 进入 Finished 并销毁
func TestParticleSystem_DocumentedScenario(t *testing.T) {
	ps := newTestSystem()
	s, err := ps.Spawn(newTestConfig(), testViewport)
	require.NoError(t, err)
	require.Len(t, s.Pool, 15)

	const dt = 0.25

	stepFrames(ps, dt, 1) // t=0.25
	assert.Equal(t, components.SpawnerBursting, s.State)
	assert.Equal(t, 0, s.BurstsEmitted)

	stepFrames(ps, dt, 1) // t=0.5
	assert.Equal(t, 1, s.BurstsEmitted)
	assert.Equal(t, 3, countActive(s.Pool))

	stepFrames(ps, dt, 1) // t=0.75
	assert.Equal(t, components.SpawnerBursting, s.State)

	stepFrames(ps, dt, 1) // t=1.0
	assert.Equal(t, components.SpawnerDraining, s.State)
	assert.Equal(t, 2, s.BurstsEmitted, "burst landing on the lifetime boundary still fires")
	assert.Equal(t, 6, s.ParticlesEmitted)
	assert.Equal(t, 6, countActive(s.Pool))

	// Draining：不再爆发，粒子继续播放
	stepFrames(ps, dt, 7) // t=2.75
	assert.Equal(t, components.SpawnerDraining, s.State)
	assert.Equal(t, 2, s.BurstsEmitted)
	require.Len(t, ps.Spawners(), 1)

	stepFrames(ps, dt, 1) // t=3.0
	assert.Equal(t, components.SpawnerFinished, s.State)
	assert.Empty(t, ps.Spawners(), "finished spawner is torn down with its pool")

	stats := ps.Stats()
	assert.Equal(t, 1, stats.SpawnersCreated)
	assert.Equal(t, 1, stats.SpawnersFinished)
	assert.Equal(t, 2, stats.Bursts)
	assert.Equal(t, 6, stats.ParticlesEmitted)
	assert.Zero(t, stats.ParticlesDropped)
	assert.Zero(t, stats.ActiveSpawners)
}

// TestParticleSystem_FinishesAtLifetimePlusGrace 在 L+P 时刻结束（误差一帧以内），绝不提前
func TestParticleSystem_FinishesAtLifetimePlusGrace(t *testing.T) {
	tests := []struct {
		name             string
		spawnerLifetime  float64
		particleLifetime float64
		dt               float64
	}{
		{"60fps", 1.0, 2.0, 1.0 / 60.0},
		{"144fps", 0.7, 1.3, 1.0 / 144.0},
		{"不整除帧长", 1.0, 0.5, 0.3},
		{"零寿命发射器", 0, 0.4, 0.1},
		{"大帧长", 0.2, 0.3, 0.45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := newTestConfig()
			config.SpawnerLifetime = tt.spawnerLifetime
			config.ParticleLifetime = tt.particleLifetime

			ps := newTestSystem()
			s, err := ps.Spawn(config, testViewport)
			require.NoError(t, err)

			want := tt.spawnerLifetime + tt.particleLifetime
			elapsed := 0.0
			for frame := 0; len(ps.Spawners()) > 0; frame++ {
				require.Less(t, frame, 100000, "spawner never finished")
				ps.Update(tt.dt)
				elapsed += tt.dt
			}

			assert.Equal(t, components.SpawnerFinished, s.State)
			assert.GreaterOrEqual(t, elapsed, want-1e-6, "finished early")
			assert.Less(t, elapsed, want+tt.dt+1e-6, "finished more than one frame late")
		})
	}
}

// TestParticleSystem_PoolCapacityFixed 粒子池容量在整个生命周期内不变
func TestParticleSystem_PoolCapacityFixed(t *testing.T) {
	config := newTestConfig()
	config.BurstInterval = 0.1
	config.ParticlesPerBurst = 7
	config.SpawnerLifetime = 5

	ps := newTestSystem()
	s, err := ps.Spawn(config, testViewport)
	require.NoError(t, err)

	capacity := config.PoolCapacity()
	require.Len(t, s.Pool, capacity)
	first := &s.Pool[0]

	for i := 0; i < 300 && len(ps.Spawners()) > 0; i++ {
		ps.Update(1.0 / 60.0)
		require.Len(t, s.Pool, capacity)
		require.LessOrEqual(t, countActive(s.Pool), capacity)
	}
	assert.Same(t, first, &s.Pool[0], "pool backing array is never reallocated")
	assert.Greater(t, s.BurstsEmitted, 40)
}

// TestParticleSystem_MultipleBurstsPerFrame 单帧跨越多个爆发周期时每次周期都发射
func TestParticleSystem_MultipleBurstsPerFrame(t *testing.T) {
	config := newTestConfig()
	config.BurstInterval = 0.1
	config.ParticlesPerBurst = 1
	config.SpawnerLifetime = 10

	ps := newTestSystem()
	s, err := ps.Spawn(config, testViewport)
	require.NoError(t, err)

	ps.Update(0.35)
	assert.Equal(t, 3, s.BurstsEmitted)
	assert.Equal(t, 3, countActive(s.Pool))
}

// TestParticleSystem_BurstsClippedAtLifetime 同一帧内寿命结束后的爆发被丢弃
func TestParticleSystem_BurstsClippedAtLifetime(t *testing.T) {
	tests := []struct {
		name       string
		dt         float64
		wantBursts int
		wantGrace  float64
	}{
		{"寿命边界上的爆发保留", 1.2, 2, 0.2},
		{"寿命之后的爆发丢弃", 1.6, 2, 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := newTestSystem()
			s, err := ps.Spawn(newTestConfig(), testViewport)
			require.NoError(t, err)

			ps.Update(tt.dt)
			assert.Equal(t, tt.wantBursts, s.BurstsEmitted)
			assert.Equal(t, components.SpawnerDraining, s.State)
			assert.InDelta(t, tt.wantGrace, s.GraceTimer.Elapsed, 1e-9, "overflow past lifetime counts toward grace")
		})
	}
}

func TestParticleSystem_SpawnErrors(t *testing.T) {
	ps := newTestSystem()

	t.Run("nil config", func(t *testing.T) {
		_, err := ps.Spawn(nil, testViewport)
		assert.ErrorIs(t, err, particle.ErrInvalidConfig)
	})

	t.Run("missing curve", func(t *testing.T) {
		config := newTestConfig()
		config.Color = nil
		s, err := ps.Spawn(config, testViewport)
		assert.ErrorIs(t, err, particle.ErrMissingCurve)
		assert.Nil(t, s)
	})

	t.Run("burst interval too small", func(t *testing.T) {
		config := newTestConfig()
		config.BurstInterval = 1e-300
		var s *components.SpawnerComponent
		var err error
		require.NotPanics(t, func() { s, err = ps.Spawn(config, testViewport) })
		assert.ErrorIs(t, err, particle.ErrInvalidConfig)
		assert.Nil(t, s)
	})

	assert.Empty(t, ps.Spawners(), "failed spawns never partially construct a spawner")
	assert.Zero(t, ps.Stats().SpawnersCreated)
}

// TestParticleSystem_InvalidViewportPanics 无视口属于编程错误
func TestParticleSystem_InvalidViewportPanics(t *testing.T) {
	ps := newTestSystem()
	for _, vp := range []types.Viewport{{}, {Width: 800}, {Width: -1, Height: 600}} {
		assert.Panics(t, func() {
			_, _ = ps.Spawn(newTestConfig(), vp)
		}, "viewport %+v", vp)
	}
}

func TestParticleSystem_SpawnBaseAndListener(t *testing.T) {
	ps := newTestSystem()

	var notified []*components.SpawnerComponent
	ps.AddSpawnListener(SpawnListenerFunc(func(s *components.SpawnerComponent) {
		notified = append(notified, s)
	}))

	s, err := ps.Spawn(newTestConfig(), types.Viewport{Width: 1920, Height: 1080})
	require.NoError(t, err)

	assert.Equal(t, types.Vec2{X: 960, Y: 0}, s.Base)
	require.Len(t, notified, 1)
	assert.Same(t, s, notified[0])

	_, err = ps.Spawn(newTestConfig(), testViewport)
	require.NoError(t, err)
	assert.Len(t, notified, 2)
	assert.Equal(t, components.SpawnerID(2), notified[1].ID)
}

// TestParticleSystem_IndependentSpawners 多个发射器互不影响
func TestParticleSystem_IndependentSpawners(t *testing.T) {
	ps := newTestSystem()

	short := newTestConfig()
	short.SpawnerLifetime = 0.5
	short.ParticleLifetime = 0.5

	a, err := ps.Spawn(short, testViewport)
	require.NoError(t, err)
	b, err := ps.Spawn(newTestConfig(), testViewport)
	require.NoError(t, err)

	stepFrames(ps, 0.25, 4) // t=1.0：a 已结束
	assert.Equal(t, components.SpawnerFinished, a.State)
	require.Len(t, ps.Spawners(), 1)
	assert.Same(t, b, ps.Spawners()[0])
	assert.Equal(t, 2, b.BurstsEmitted)
}

func TestParticleSystem_Snapshots(t *testing.T) {
	ps := newTestSystem()
	s, err := ps.Spawn(newTestConfig(), testViewport)
	require.NoError(t, err)

	stepFrames(ps, 0.25, 2) // one burst

	snapshots := ps.Snapshots(nil)
	require.Len(t, snapshots, len(s.Pool))

	visible := 0
	for i, snap := range snapshots {
		if snap.Visible {
			visible++
			assert.Equal(t, s.Pool[i].Position, snap.Position)
			assert.Equal(t, s.Pool[i].Size, snap.Size)
			assert.Equal(t, s.Pool[i].Color, snap.Color)
		}
	}
	assert.Equal(t, 3, visible)

	// 复用缓冲区
	buf := snapshots[:0]
	buf = ps.Snapshots(buf)
	assert.Len(t, buf, len(s.Pool))
}

// TestParticleSystem_Deterministic 相同种子产生相同结果
func TestParticleSystem_Deterministic(t *testing.T) {
	run := func() []components.ParticleSnapshot {
		ps := NewParticleSystem(nil, NewRand(7))
		_, err := ps.Spawn(newTestConfig(), testViewport)
		require.NoError(t, err)
		stepFrames(ps, 1.0/60.0, 90)
		return ps.Snapshots(nil)
	}
	assert.Equal(t, run(), run())
}

func TestParticleSystem_ZeroDtIsNoop(t *testing.T) {
	ps := newTestSystem()
	s, err := ps.Spawn(newTestConfig(), testViewport)
	require.NoError(t, err)

	ps.Update(0)
	ps.Update(-1)
	assert.Zero(t, s.Age)
	assert.Equal(t, components.SpawnerBursting, s.State)
}
