package sim

import (
	"fmt"

	"go.uber.org/zap"
)

// Engine owns the live queues and activity counters of one troop and plays
// rounds over them. It is not safe for concurrent use.
type Engine struct {
	actors   []Actor
	queues   [][]Worry
	activity []int64
	damping  Worry
	round    int
	// dequeued counts items taken off queues, independent of activity.
	dequeued int64

	emit func(Event)
	log  *zap.Logger
}

type EngineOption func(*Engine)

// WithEmit installs an event sink that receives one Throw event per
// processed item and one RoundEnd event per round.
func WithEmit(emit func(Event)) EngineOption {
	return func(e *Engine) { e.emit = emit }
}

func WithLogger(l *zap.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEngine validates actors and damping and loads the starting queues.
// The definitions are copied; later changes to actors do not affect the engine.
func NewEngine(actors []Actor, damping Worry, opts ...EngineOption) (*Engine, error) {
	if err := Validate(actors); err != nil {
		return nil, err
	}
	if damping < 1 {
		return nil, &ConfigValidationError{Actor: -1, Field: "damping", Reason: fmt.Sprintf("must be >= 1, got %d", damping)}
	}
	e := &Engine{
		actors:   make([]Actor, len(actors)),
		queues:   make([][]Worry, len(actors)),
		activity: make([]int64, len(actors)),
		damping:  damping,
		log:      zap.NewNop(),
	}
	for i, a := range actors {
		a.Items = append([]Worry(nil), a.Items...)
		e.actors[i] = a
		e.queues[i] = append([]Worry(nil), a.Items...)
	}
	for _, o := range opts {
		o(e)
	}
	return e, nil
}

// PlayRound runs one round: every actor, in ascending id order, empties a
// snapshot of its queue. Items thrown to a higher id are handled later in
// the same round, items thrown to a lower or the same id wait for the next.
func (e *Engine) PlayRound() {
	e.round++
	for id := range e.actors {
		a := &e.actors[id]
		items := e.queues[id]
		e.queues[id] = nil
		e.dequeued += int64(len(items))
		for _, v := range items {
			damped := floorDiv(Evaluate(a.Op, v), e.damping)
			to := a.Target(damped)
			e.queues[to] = append(e.queues[to], damped)
			e.activity[id]++
			if e.emit != nil {
				e.emit(Event{Round: e.round, Type: EventThrow, Payload: map[string]any{
					"from": id, "to": to, "worry": v, "new": damped,
				}})
			}
		}
	}
	if e.emit != nil {
		e.emit(Event{Round: e.round, Type: EventRoundEnd, Payload: map[string]any{
			"activity": e.Activity(),
		}})
	}
	if ce := e.log.Check(zap.DebugLevel, "round complete"); ce != nil {
		ce.Write(zap.Int("round", e.round), zap.Int64s("activity", e.activity))
	}
}

// Play runs n rounds.
func (e *Engine) Play(n int) {
	for i := 0; i < n; i++ {
		e.PlayRound()
	}
}

// Round returns the number of completed rounds.
func (e *Engine) Round() int { return e.round }

// Activity returns a copy of the per-actor activity counters in id order.
func (e *Engine) Activity() []int64 {
	out := make([]int64, len(e.activity))
	copy(out, e.activity)
	return out
}

// Queues returns a copy of every actor's current queue in id order.
func (e *Engine) Queues() [][]Worry {
	out := make([][]Worry, len(e.queues))
	for i, q := range e.queues {
		out[i] = append([]Worry{}, q...)
	}
	return out
}

// Inspected is the total number of items dequeued since the start.
func (e *Engine) Inspected() int64 { return e.dequeued }
