package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"keepaway/internal/sim"
)

var (
	inputPath string
	outPath   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one notes file and print activity and score",
	Long: `Parses the notes (or a YAML troop), plays the configured rounds and
prints the per-actor activity followed by the activity score.

Example:
  simsvc run --input input.txt
  simsvc run --input troop.yaml --rounds 10 --out result.json`,
	Args: cobra.NoArgs,
	RunE: runSimulation,
}

func init() {
	runCmd.Flags().StringVarP(&inputPath, "input", "i", "input.txt", "notes file or YAML troop")
	runCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the JSON result to this file")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	log := currentLogger()
	cfg, err := loadSimConfig(cmd)
	if err != nil {
		return err
	}
	actors, err := loadActors(inputPath)
	if err != nil {
		return err
	}
	log.Debug("troop loaded", zap.String("input", inputPath), zap.Int("actors", len(actors)))

	res, err := sim.RunSingle(sim.NewEnv(cfg, log), actors, cfg.RecordEvents)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "activity: %s\n", joinInts(res.Activity))
	fmt.Fprintf(w, "score: %d\n", res.Score)
	if outPath != "" {
		if err := os.WriteFile(outPath, sim.MarshalPretty(res), 0644); err != nil {
			return err
		}
		log.Info("result written", zap.String("out", outPath))
	}
	return nil
}

func joinInts(xs []int64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, " ")
}
