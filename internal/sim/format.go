package sim

import (
	"strconv"
	"strings"
)

func (op Operation) String() string {
	switch op.Kind {
	case OpAdd:
		return "old + " + strconv.FormatInt(op.Operand, 10)
	case OpMultiply:
		return "old * " + strconv.FormatInt(op.Operand, 10)
	case OpSquare:
		return "old * old"
	}
	return "old ? " + strconv.FormatInt(op.Operand, 10)
}

// String renders the actor as a canonical notes record, without a trailing newline.
func (a Actor) String() string {
	var sb strings.Builder
	a.writeTo(&sb)
	return sb.String()
}

func (a Actor) writeTo(sb *strings.Builder) {
	sb.WriteString("Monkey ")
	sb.WriteString(strconv.Itoa(a.ID))
	sb.WriteString(":\n  Starting items:")
	for i, v := range a.Items {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatInt(v, 10))
	}
	sb.WriteString("\n  Operation: new = ")
	sb.WriteString(a.Op.String())
	sb.WriteString("\n  Test: divisible by ")
	sb.WriteString(strconv.FormatInt(a.Divisor, 10))
	sb.WriteString("\n    If true: throw to monkey ")
	sb.WriteString(strconv.Itoa(a.IfTrue))
	sb.WriteString("\n    If false: throw to monkey ")
	sb.WriteString(strconv.Itoa(a.IfFalse))
}

// Format renders actors as notes text that Parse accepts.
func Format(actors []Actor) string {
	var sb strings.Builder
	for i, a := range actors {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		a.writeTo(&sb)
	}
	sb.WriteByte('\n')
	return sb.String()
}
