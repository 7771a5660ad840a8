package systems

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/decker502/confetti/internal/particle"
	"github.com/decker502/confetti/pkg/components"
	"github.com/decker502/confetti/pkg/types"
)

// SpawnListener is notified synchronously after every successful Spawn.
// Audio collaborators use it to fire one-shot sounds; the particle system
// does not manage their lifetime.
type SpawnListener interface {
	OnSpawnerCreated(s *components.SpawnerComponent)
}

// SpawnListenerFunc adapts a plain function to SpawnListener.
type SpawnListenerFunc func(s *components.SpawnerComponent)

// OnSpawnerCreated calls f(s).
func (f SpawnListenerFunc) OnSpawnerCreated(s *components.SpawnerComponent) {
	f(s)
}

// Stats aggregates counters across every spawner the system has run.
type Stats struct {
	SpawnersCreated  int
	SpawnersFinished int
	ActiveSpawners   int
	ActiveParticles  int
	Bursts           int
	ParticlesEmitted int
	ParticlesDropped int
}

// ParticleSystem owns every live burst spawner and drives them frame by frame.
//
// Each Update processes spawners in two phases per spawner:
//  1. Timing state machine + burst emission (activates pooled slots)
//  2. Per-frame update of that spawner's active particles
//
// so particles born this frame get their first update with this frame's dt.
// Spawners share no state; each owns its pool exclusively.
//
// ParticleSystem is not safe for concurrent use.
type ParticleSystem struct {
	spawners  []*components.SpawnerComponent
	listeners []SpawnListener
	rng       *rand.Rand
	log       *zap.SugaredLogger

	nextID components.SpawnerID
	stats  Stats
}

// NewParticleSystem creates a new ParticleSystem instance.
//
// A nil logger disables logging; a nil rng seeds a PCG source from the clock.
func NewParticleSystem(logger *zap.SugaredLogger, rng *rand.Rand) *ParticleSystem {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}
	return &ParticleSystem{
		rng:    rng,
		log:    logger.Named("ParticleSystem"),
		nextID: 1,
	}
}

// NewRand returns a deterministic PCG-backed generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// AddSpawnListener registers l for spawn notifications.
func (ps *ParticleSystem) AddSpawnListener(l SpawnListener) {
	ps.listeners = append(ps.listeners, l)
}

// Spawn instantiates one spawner from config at the viewport's spawn base
// (horizontal center, top edge) together with its whole particle pool.
//
// An invalid config is returned as an error and nothing is created.
// A non-positive viewport is a programmer error and panics.
func (ps *ParticleSystem) Spawn(config *particle.SpawnerConfig, vp types.Viewport) (*components.SpawnerComponent, error) {
	if !vp.Valid() {
		panic(fmt.Sprintf("systems: Spawn requires a positive viewport, got %+v", vp))
	}
	if config == nil {
		return nil, fmt.Errorf("%w: nil config", particle.ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("cannot spawn %q: %w", config.Name, err)
	}

	s := &components.SpawnerComponent{
		ID:            ps.nextID,
		Config:        config,
		Base:          vp.SpawnBase(),
		State:         components.SpawnerBursting,
		BurstTimer:    components.NewTimer(config.BurstInterval, components.TimerRepeating),
		LifetimeTimer: components.NewTimer(config.SpawnerLifetime, components.TimerOnce),
		GraceTimer:    components.NewTimer(config.ParticleLifetime, components.TimerOnce),
	}
	s.Pool = newParticlePool(config, slotTemplate(config, s))
	ps.nextID++

	ps.spawners = append(ps.spawners, s)
	ps.stats.SpawnersCreated++

	ps.log.Infow("spawner created",
		"id", s.ID,
		"effect", config.Name,
		"base", s.Base,
		"pool", len(s.Pool),
		"duration", config.TotalDuration())

	for _, l := range ps.listeners {
		l.OnSpawnerCreated(s)
	}
	return s, nil
}

// Update advances every spawner and its particles by dt seconds.
// Spawners that reach Finished are removed together with their pool.
func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}

	alive := ps.spawners[:0]
	activeParticles := 0

	for _, s := range ps.spawners {
		prevState := s.State
		bursts := advanceSpawner(s, dt)
		if s.State != prevState {
			ps.log.Debugw("spawner state changed",
				"id", s.ID, "from", prevState, "to", s.State, "age", s.Age)
		}

		if s.State == components.SpawnerFinished {
			ps.finish(s)
			continue
		}

		for i := 0; i < bursts; i++ {
			dropped := s.ParticlesDropped
			activated := emitBurst(s, ps.rng)
			ps.stats.Bursts++
			ps.stats.ParticlesEmitted += activated
			if s.ParticlesDropped > dropped {
				ps.stats.ParticlesDropped += s.ParticlesDropped - dropped
				ps.log.Debugw("particle pool exhausted",
					"id", s.ID, "activated", activated, "dropped", s.ParticlesDropped-dropped)
			}
		}

		active := updatePool(s.Pool, dt)
		if active > s.PeakActive {
			s.PeakActive = active
		}
		activeParticles += active
		alive = append(alive, s)
	}

	// clear the tail so finished spawners and their pools can be collected
	for i := len(alive); i < len(ps.spawners); i++ {
		ps.spawners[i] = nil
	}
	ps.spawners = alive
	ps.stats.ActiveSpawners = len(alive)
	ps.stats.ActiveParticles = activeParticles
}

func (ps *ParticleSystem) finish(s *components.SpawnerComponent) {
	ps.stats.SpawnersFinished++
	ps.log.Infow("spawner finished",
		"id", s.ID,
		"effect", s.Config.Name,
		"age", s.Age,
		"bursts", s.BurstsEmitted,
		"emitted", s.ParticlesEmitted,
		"dropped", s.ParticlesDropped,
		"peak", s.PeakActive)
}

// Snapshots appends a read-only view of every slot of every live spawner to
// dst and returns the extended slice. Inactive slots are included with
// Visible=false so renderers can reuse their buffers.
func (ps *ParticleSystem) Snapshots(dst []components.ParticleSnapshot) []components.ParticleSnapshot {
	for _, s := range ps.spawners {
		for i := range s.Pool {
			slot := &s.Pool[i]
			dst = append(dst, components.ParticleSnapshot{
				Position: slot.Position,
				Size:     slot.Size,
				Color:    slot.Color,
				Visible:  slot.Active,
			})
		}
	}
	return dst
}

// Spawners returns the live spawners. The slice and its elements are owned by
// the system and must be treated as read-only.
func (ps *ParticleSystem) Spawners() []*components.SpawnerComponent {
	return ps.spawners
}

// Stats returns the aggregate counters as of the last Update.
func (ps *ParticleSystem) Stats() Stats {
	s := ps.stats
	s.ActiveSpawners = len(ps.spawners)
	return s
}
