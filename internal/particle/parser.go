package particle

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/confetti/pkg/embedded"
)

// ParseSpawnerConfig decodes and validates a spawner configuration.
//
// Decoding is strict: unknown keys, type mismatches and empty documents are
// errors, and the result must pass Validate. Nothing is defaulted silently.
func ParseSpawnerConfig(data []byte) (*SpawnerConfig, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var config SpawnerConfig
	if err := dec.Decode(&config); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidConfig)
		}
		return nil, fmt.Errorf("failed to parse spawner config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadSpawnerConfig reads a spawner configuration file and parses it.
//
// Paths under "assets/" are served from the embedded resources when the
// embedded package is initialized; anything else is read from disk.
//
// Example usage:
//
//	config, err := LoadSpawnerConfig("assets/config/spawners/basic_spawner.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("pool capacity: %d\n", config.PoolCapacity())
func LoadSpawnerConfig(path string) (*SpawnerConfig, error) {
	data, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spawner config %s: %w", path, err)
	}

	config, err := ParseSpawnerConfig(data)
	if err != nil {
		return nil, fmt.Errorf("spawner config %s: %w", path, err)
	}
	if config.Name == "" {
		config.Name = effectName(path)
	}
	return config, nil
}

func readResource(path string) ([]byte, error) {
	if embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}
