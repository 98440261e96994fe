package sim

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"keepaway/internal/config"
)

// Job is one independent troop to simulate.
type Job struct {
	Name   string
	Actors []Actor
}

type BatchResult struct {
	Name   string    `json:"name"`
	Result SimResult `json:"result"`
}

// RunBatch simulates every job with its own engine, at most workers at a
// time (workers <= 0 means GOMAXPROCS). Results keep the order of jobs.
// The first failing job cancels the jobs that have not started yet.
func RunBatch(ctx context.Context, env *Env, jobs []Job, workers int) ([]BatchResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if env == nil {
		env = NewEnv(config.DefaultSimConfig(), nil)
	}
	base := *env
	if base.Log == nil {
		base.Log = zap.NewNop()
	}
	out := make([]BatchResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range jobs {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			jobEnv := base
			jobEnv.Log = base.Log.With(zap.String("job", jobs[i].Name))
			res, err := RunSingle(&jobEnv, jobs[i].Actors, false)
			if err != nil {
				return fmt.Errorf("job %s: %w", jobs[i].Name, err)
			}
			out[i] = BatchResult{Name: jobs[i].Name, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
