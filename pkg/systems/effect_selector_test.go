package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/confetti/internal/particle"
)

func newTestCatalog(t *testing.T, names ...string) *particle.Catalog {
	t.Helper()
	configs := make([]*particle.SpawnerConfig, 0, len(names))
	for _, name := range names {
		config := newTestConfig()
		config.Name = name
		configs = append(configs, config)
	}
	catalog, err := particle.NewCatalog(configs...)
	require.NoError(t, err)
	return catalog
}

func TestEffectSelector_Navigation(t *testing.T) {
	catalog := newTestCatalog(t, "sparks", "basic_spawner", "fountain")
	e := NewEffectSelector(catalog, newTestSystem(), "fountain")

	// 目录按名称排序：basic_spawner, fountain, sparks
	assert.Equal(t, 1, e.Index())
	assert.Equal(t, "fountain", e.Current().Name)
	assert.Equal(t, 3, e.Len())

	assert.Equal(t, "sparks", e.Next().Name)
	assert.Equal(t, "basic_spawner", e.Next().Name, "wraps to the first effect")
	assert.Equal(t, "sparks", e.Previous().Name, "wraps to the last effect")

	assert.True(t, e.Select("basic_spawner"))
	assert.False(t, e.Select("missing"))
	assert.Equal(t, "basic_spawner", e.Current().Name, "failed select keeps the current effect")
}

func TestEffectSelector_UnknownStart(t *testing.T) {
	e := NewEffectSelector(newTestCatalog(t, "b", "a"), newTestSystem(), "zzz")
	assert.Equal(t, "a", e.Current().Name)
}

func TestEffectSelector_SpawnCurrent(t *testing.T) {
	ps := newTestSystem()
	e := NewEffectSelector(newTestCatalog(t, "basic_spawner"), ps, "")

	s, err := e.SpawnCurrent(testViewport)
	require.NoError(t, err)
	assert.Equal(t, "basic_spawner", s.Config.Name)
	assert.Len(t, ps.Spawners(), 1)
}

func TestEffectSelector_EmptyCatalog(t *testing.T) {
	catalog, err := particle.NewCatalog()
	require.NoError(t, err)

	e := NewEffectSelector(catalog, newTestSystem(), "")
	assert.Nil(t, e.Current())
	assert.Nil(t, e.Next())

	_, err = e.SpawnCurrent(testViewport)
	assert.ErrorIs(t, err, particle.ErrInvalidConfig)
}
