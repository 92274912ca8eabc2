package keys

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

type fileConfig struct {
	Keys map[string][]string `toml:"keys"`
}

// LoadFile returns the default bindings overridden by the [keys] table of a
// TOML file. An empty path returns the defaults.
func LoadFile(path string) (*Map, error) {
	m := Default()
	if path == "" {
		return m, nil
	}
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("read key bindings %s: %w", path, err)
	}
	if err := m.apply(cfg); err != nil {
		return nil, fmt.Errorf("key bindings %s: %w", path, err)
	}
	return m, nil
}

// Parse is LoadFile for in-memory TOML.
func Parse(data string) (*Map, error) {
	m := Default()
	var cfg fileConfig
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse key bindings: %w", err)
	}
	if err := m.apply(cfg); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Map) apply(cfg fileConfig) error {
	names := make([]string, 0, len(cfg.Keys))
	for name := range cfg.Keys {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a, err := ParseAction(name)
		if err != nil {
			return err
		}
		if err := m.Rebind(a, cfg.Keys[name]...); err != nil {
			return err
		}
	}
	return m.Validate()
}
