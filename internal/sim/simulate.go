package sim

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"keepaway/internal/config"
)

// Env carries the tunables of one run.
type Env struct {
	Rounds  int
	Damping Worry
	TopK    int
	Log     *zap.Logger
}

// NewEnv builds an Env from a loaded SimConfig.
func NewEnv(cfg config.SimConfig, log *zap.Logger) *Env {
	if log == nil {
		log = zap.NewNop()
	}
	return &Env{Rounds: cfg.Rounds, Damping: cfg.Damping, TopK: cfg.TopK, Log: log}
}

type SimResult struct {
	Rounds    int       `json:"rounds"`
	Damping   int64     `json:"damping"`
	Activity  []int64   `json:"activity"`
	Top       []int64   `json:"top"`
	Score     int64     `json:"score"`
	Inspected int64     `json:"inspected"`
	Queues    [][]int64 `json:"queues"`
	Events    []Event   `json:"events,omitempty"`
	Meta      SimMeta   `json:"meta"`
}

type SimMeta struct {
	Actors []SimActorMeta `json:"actors"`
}

type SimActorMeta struct {
	ID        int    `json:"id"`
	Operation string `json:"operation"`
	Divisor   int64  `json:"divisor"`
	IfTrue    int    `json:"if_true"`
	IfFalse   int    `json:"if_false"`
	Items     int    `json:"items"`
}

// RunSingle plays env.Rounds rounds over actors and ranks the result.
// With record set, every throw and a readable log line per round end up in
// SimResult.Events.
func RunSingle(env *Env, actors []Actor, record bool) (SimResult, error) {
	if env == nil {
		env = NewEnv(config.DefaultSimConfig(), nil)
	}
	log := env.Log
	if log == nil {
		log = zap.NewNop()
	}
	if env.Rounds < 0 {
		return SimResult{}, &ConfigValidationError{Actor: -1, Field: "rounds", Reason: fmt.Sprintf("must be >= 0, got %d", env.Rounds)}
	}

	var events []Event
	emit := func(ev Event) {
		if record {
			events = append(events, ev)
		}
	}
	logLine := func(round int, format string, args ...any) {
		if !record {
			return
		}
		emit(Event{Round: round, Type: EventLogLine, Payload: map[string]any{"text": fmt.Sprintf(format, args...)}})
	}

	opts := []EngineOption{WithLogger(log)}
	if record {
		opts = append(opts, WithEmit(func(ev Event) {
			emit(ev)
			if ev.Type == EventRoundEnd {
				logLine(ev.Round, "round %d done: activity %v", ev.Round, ev.Payload["activity"])
			}
		}))
	}
	eng, err := NewEngine(actors, env.Damping, opts...)
	if err != nil {
		return SimResult{}, err
	}
	if env.TopK < 1 || env.TopK > len(actors) {
		return SimResult{}, &ConfigValidationError{Actor: -1, Field: "top_k",
			Reason: fmt.Sprintf("must be in [1,%d], got %d", len(actors), env.TopK)}
	}

	meta := SimMeta{}
	for _, a := range actors {
		meta.Actors = append(meta.Actors, SimActorMeta{
			ID:        a.ID,
			Operation: a.Op.String(),
			Divisor:   a.Divisor,
			IfTrue:    a.IfTrue,
			IfFalse:   a.IfFalse,
			Items:     len(a.Items),
		})
		logLine(0, "actor %d holds %d items, new = %s, divisible by %d ? %d : %d",
			a.ID, len(a.Items), a.Op, a.Divisor, a.IfTrue, a.IfFalse)
	}

	log.Debug("simulation start",
		zap.Int("actors", len(actors)),
		zap.Int("rounds", env.Rounds),
		zap.Int64("damping", env.Damping))
	eng.Play(env.Rounds)

	activity := eng.Activity()
	top, err := TopK(activity, env.TopK)
	if err != nil {
		return SimResult{}, err
	}
	score, err := Score(activity, env.TopK)
	if err != nil {
		return SimResult{}, err
	}
	log.Info("simulation done", zap.Int64s("activity", activity), zap.Int64("score", score))

	res := SimResult{
		Rounds:    eng.Round(),
		Damping:   env.Damping,
		Activity:  activity,
		Top:       top,
		Score:     score,
		Inspected: eng.Inspected(),
		Queues:    eng.Queues(),
		Meta:      meta,
	}
	if record {
		res.Events = events
	}
	return res, nil
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
