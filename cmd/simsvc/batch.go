package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"keepaway/internal/sim"
)

var (
	workers    int
	summaryOut string
)

var batchCmd = &cobra.Command{
	Use:   "batch [input...]",
	Short: "Simulate many notes files concurrently",
	Long: `Runs one independent simulation per input file, using a bounded pool of
workers, and prints a summary. Each simulation stays single-threaded.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&workers, "workers", "w", 8, "number of concurrent simulations")
	batchCmd.Flags().StringVarP(&summaryOut, "out", "o", "", "write the JSON summary to this file")
}

type batchSummary struct {
	Runs      int               `json:"runs"`
	BestScore int64             `json:"best_score"`
	BestInput string            `json:"best_input"`
	AvgScore  float64           `json:"avg_score"`
	Results   []sim.BatchResult `json:"results"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	log := currentLogger()
	cfg, err := loadSimConfig(cmd)
	if err != nil {
		return err
	}
	jobs := make([]sim.Job, 0, len(args))
	for _, path := range args {
		actors, err := loadActors(path)
		if err != nil {
			return err
		}
		jobs = append(jobs, sim.Job{Name: path, Actors: actors})
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := sim.RunBatch(ctx, sim.NewEnv(cfg, log), jobs, workers)
	if err != nil {
		return err
	}
	st := summarize(results)

	w := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintf(w, "%s: score %d\n", r.Name, r.Result.Score)
	}
	if summaryOut != "" {
		if err := os.WriteFile(summaryOut, sim.MarshalPretty(st), 0644); err != nil {
			return err
		}
		fmt.Fprintf(w, "Batch %d done -> %s\n", st.Runs, filepath.Base(summaryOut))
		log.Info("summary written", zap.String("out", summaryOut), zap.Int("runs", st.Runs))
	}
	return nil
}

func summarize(results []sim.BatchResult) batchSummary {
	st := batchSummary{Runs: len(results), Results: results}
	total := 0.0
	for i, r := range results {
		total += float64(r.Result.Score)
		if i == 0 || r.Result.Score > st.BestScore {
			st.BestScore = r.Result.Score
			st.BestInput = r.Name
		}
	}
	if st.Runs > 0 {
		st.AvgScore = total / float64(st.Runs)
	}
	return st
}
