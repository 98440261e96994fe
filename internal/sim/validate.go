package sim

import "fmt"

// MaxMagnitude bounds starting items and operands. Squaring a value of this
// size still fits in a Worry, and damping keeps realistic troops below it.
const MaxMagnitude Worry = 1<<31 - 1

func withinMagnitude(v Worry) bool { return v >= -MaxMagnitude && v <= MaxMagnitude }

// Validate checks ids, divisors and routing targets of a complete troop.
func Validate(actors []Actor) error {
	if len(actors) == 0 {
		return &ConfigValidationError{Actor: -1, Field: "actors", Reason: "troop is empty"}
	}
	n := len(actors)
	for i := range actors {
		a := &actors[i]
		if a.ID != i {
			return &ConfigValidationError{Actor: i, Field: "id", Reason: fmt.Sprintf("id %d at position %d", a.ID, i)}
		}
		if a.Divisor <= 0 {
			return &ConfigValidationError{Actor: i, Field: "divisor", Reason: fmt.Sprintf("must be > 0, got %d", a.Divisor)}
		}
		if a.IfTrue < 0 || a.IfTrue >= n {
			return &ConfigValidationError{Actor: i, Field: "if true", Reason: fmt.Sprintf("target %d outside [0,%d)", a.IfTrue, n)}
		}
		if a.IfFalse < 0 || a.IfFalse >= n {
			return &ConfigValidationError{Actor: i, Field: "if false", Reason: fmt.Sprintf("target %d outside [0,%d)", a.IfFalse, n)}
		}
		if a.Op.Kind != OpAdd && a.Op.Kind != OpMultiply && a.Op.Kind != OpSquare {
			return &ConfigValidationError{Actor: i, Field: "operation", Reason: "unknown kind"}
		}
		if a.Op.Kind != OpSquare && !withinMagnitude(a.Op.Operand) {
			return &ConfigValidationError{Actor: i, Field: "operation",
				Reason: fmt.Sprintf("operand %d exceeds magnitude %d", a.Op.Operand, MaxMagnitude)}
		}
		for _, v := range a.Items {
			if !withinMagnitude(v) {
				return &ConfigValidationError{Actor: i, Field: "starting items",
					Reason: fmt.Sprintf("item %d exceeds magnitude %d", v, MaxMagnitude)}
			}
		}
	}
	return nil
}
