package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"keepaway/internal/config"
	"keepaway/internal/sim"
)

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// loadActors reads a notes file, or a YAML troop when path ends in .yaml/.yml.
func loadActors(path string) ([]sim.Actor, error) {
	if isYAML(path) {
		tc, err := config.LoadTroop(path)
		if err != nil {
			return nil, err
		}
		actors, err := sim.FromTroopConfig(tc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return actors, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	actors, err := sim.Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return actors, nil
}

// loadSimConfig layers explicitly set flags over the config file.
func loadSimConfig(cmd *cobra.Command) (config.SimConfig, error) {
	cfg, err := config.LoadSim(configPath)
	if err != nil {
		return config.SimConfig{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("rounds") {
		cfg.Rounds = rounds
	}
	if flags.Changed("damping") {
		cfg.Damping = damping
	}
	if flags.Changed("top") {
		cfg.TopK = topK
	}
	if flags.Changed("record") {
		cfg.RecordEvents = record
	}
	if err := cfg.Validate(); err != nil {
		return config.SimConfig{}, err
	}
	return *cfg, nil
}

func currentLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
