package sim

// Evaluate applies op to v.
func Evaluate(op Operation, v Worry) Worry {
	switch op.Kind {
	case OpAdd:
		return v + op.Operand
	case OpMultiply:
		return v * op.Operand
	case OpSquare:
		return v * v
	}
	panic("sim: unknown operation kind " + op.Kind.String())
}

// floorDiv divides rounding toward negative infinity. d must be positive.
func floorDiv(n, d Worry) Worry {
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}
