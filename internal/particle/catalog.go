package particle

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/decker502/confetti/pkg/embedded"
)

// Catalog is a name-indexed, alphabetically ordered set of spawner configs.
type Catalog struct {
	names   []string
	configs map[string]*SpawnerConfig
}

// LoadCatalog loads every *.yaml file in dir. A single broken file fails the
// whole load; an empty directory is an error as well.
func LoadCatalog(dir string) (*Catalog, error) {
	pattern := filepath.ToSlash(filepath.Join(dir, "*.yaml"))

	var files []string
	var err error
	if embedded.IsInitialized() && strings.HasPrefix(strings.TrimPrefix(pattern, "./"), "assets/") {
		files, err = embedded.Glob(pattern)
	} else {
		files, err = filepath.Glob(pattern)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan spawner directory %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no spawner configs found in %s", dir)
	}

	c := &Catalog{configs: make(map[string]*SpawnerConfig, len(files))}
	for _, file := range files {
		config, err := LoadSpawnerConfig(file)
		if err != nil {
			return nil, err
		}
		if err := c.Add(config); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
	}
	return c, nil
}

// NewCatalog builds a catalog from already-parsed configs.
func NewCatalog(configs ...*SpawnerConfig) (*Catalog, error) {
	c := &Catalog{configs: make(map[string]*SpawnerConfig, len(configs))}
	for _, config := range configs {
		if err := c.Add(config); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add registers a named config. Names must be unique.
func (c *Catalog) Add(config *SpawnerConfig) error {
	if config.Name == "" {
		return fmt.Errorf("spawner config has no name")
	}
	if _, dup := c.configs[config.Name]; dup {
		return fmt.Errorf("duplicate spawner config %q", config.Name)
	}
	c.configs[config.Name] = config
	c.names = append(c.names, config.Name)
	sort.Strings(c.names)
	return nil
}

// Get returns the config registered under name.
func (c *Catalog) Get(name string) (*SpawnerConfig, bool) {
	config, ok := c.configs[name]
	return config, ok
}

// Names returns effect names in alphabetical order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Len returns the number of configs.
func (c *Catalog) Len() int {
	return len(c.names)
}

// At returns the config at index i (wrapping in both directions), used by
// viewers cycling through effects.
func (c *Catalog) At(i int) *SpawnerConfig {
	n := len(c.names)
	if n == 0 {
		return nil
	}
	i %= n
	if i < 0 {
		i += n
	}
	return c.configs[c.names[i]]
}

// IndexOf returns the position of name, or -1.
func (c *Catalog) IndexOf(name string) int {
	i := sort.SearchStrings(c.names, name)
	if i < len(c.names) && c.names[i] == name {
		return i
	}
	return -1
}

// effectName derives an effect name from a file path: "a/b/basic.yaml" → "basic".
func effectName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
