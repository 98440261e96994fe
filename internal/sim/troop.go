package sim

import (
	"fmt"

	"keepaway/internal/config"
)

// FromTroopConfig converts a YAML troop into validated actors. Actor ids are
// the positions in the list.
func FromTroopConfig(tc *config.TroopConfig) ([]Actor, error) {
	if tc == nil || len(tc.Actors) == 0 {
		return nil, &ParseError{Record: -1, Err: ErrNoActors}
	}
	p := NewParser()
	actors := make([]Actor, 0, len(tc.Actors))
	for i, def := range tc.Actors {
		if def.Operation == "" {
			return nil, &ParseError{Record: i, Field: FieldOperation, Err: ErrMissingField}
		}
		op, err := p.ParseOperation(def.Operation)
		if err != nil {
			return nil, &ParseError{Record: i, Field: FieldOperation, Err: err}
		}
		items := make([]Worry, len(def.Items))
		copy(items, def.Items)
		actors = append(actors, Actor{
			ID:      i,
			Op:      op,
			Divisor: def.Divisor,
			IfTrue:  def.IfTrue,
			IfFalse: def.IfFalse,
			Items:   items,
		})
	}
	if err := Validate(actors); err != nil {
		return nil, fmt.Errorf("troop: %w", err)
	}
	return actors, nil
}

// ToTroopConfig is the inverse of FromTroopConfig.
func ToTroopConfig(actors []Actor) *config.TroopConfig {
	tc := &config.TroopConfig{Actors: make([]config.ActorDef, 0, len(actors))}
	for _, a := range actors {
		items := make([]int64, len(a.Items))
		copy(items, a.Items)
		tc.Actors = append(tc.Actors, config.ActorDef{
			Items:     items,
			Operation: a.Op.String(),
			Divisor:   a.Divisor,
			IfTrue:    a.IfTrue,
			IfFalse:   a.IfFalse,
		})
	}
	return tc
}
