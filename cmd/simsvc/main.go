package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	rounds     int
	damping    int64
	topK       int
	record     bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "simsvc",
	Short: "Keep-away routing simulation",
	Long: `simsvc plays the keep-away game described by a notes file: every actor
inspects its items, updates their worry level, damps it and throws each item
to the actor picked by its divisibility test. After the configured number of
rounds the two busiest actors give the activity score.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&configPath, "config", "", "YAML file with rounds/damping/top_k/record_events")
	pf.IntVar(&rounds, "rounds", 20, "number of rounds (overrides config)")
	pf.Int64Var(&damping, "damping", 3, "worry damping divisor (overrides config)")
	pf.IntVar(&topK, "top", 2, "number of busiest actors multiplied into the score (overrides config)")
	pf.BoolVar(&record, "record", false, "record every throw in the JSON result (overrides config)")

	rootCmd.AddCommand(runCmd, batchCmd, genCmd, fmtCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("simsvc failed", zap.Error(err))
			_ = logger.Sync()
		}
		os.Exit(1)
	}
}
