package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// LoadSim reads simulation tunables from path. An empty path yields the
// defaults; keys absent from the file keep their default value.
func LoadSim(path string) (*SimConfig, error) {
	cfg := DefaultSimConfig()
	if path == "" {
		return &cfg, nil
	}
	if err := loadYAML(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func LoadTroop(path string) (*TroopConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tc, err := ParseTroop(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tc, nil
}

// ParseTroop decodes a YAML troop document already held in memory.
func ParseTroop(b []byte) (*TroopConfig, error) {
	var tc TroopConfig
	if err := yaml.Unmarshal(b, &tc); err != nil {
		return nil, fmt.Errorf("decode troop: %w", err)
	}
	return &tc, nil
}
