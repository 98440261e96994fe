package config

import "fmt"

const (
	DefaultRounds  = 20
	DefaultDamping = 3
	DefaultTopK    = 2
)

type SimConfig struct {
	Rounds       int   `yaml:"rounds"`
	Damping      int64 `yaml:"damping"`
	TopK         int   `yaml:"top_k"`
	RecordEvents bool  `yaml:"record_events"`
}

func DefaultSimConfig() SimConfig {
	return SimConfig{
		Rounds:  DefaultRounds,
		Damping: DefaultDamping,
		TopK:    DefaultTopK,
	}
}

// Validate checks the tunables that do not depend on the troop size.
// The upper bound of TopK is checked once the troop is known.
func (c SimConfig) Validate() error {
	if c.Rounds < 0 {
		return fmt.Errorf("rounds must be >= 0, got %d", c.Rounds)
	}
	if c.Damping < 1 {
		return fmt.Errorf("damping must be >= 1, got %d", c.Damping)
	}
	if c.TopK < 1 {
		return fmt.Errorf("top_k must be >= 1, got %d", c.TopK)
	}
	return nil
}
