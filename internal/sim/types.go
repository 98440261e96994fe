package sim

// Worry is the integer value an item carries between actors.
type Worry = int64

type OpKind int

const (
	OpAdd OpKind = iota
	OpMultiply
	OpSquare
)

func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpMultiply:
		return "multiply"
	case OpSquare:
		return "square"
	}
	return "unknown"
}

// Operation is the update rule of an actor. Operand is ignored for OpSquare.
type Operation struct {
	Kind    OpKind
	Operand Worry
}

func Add(k Worry) Operation      { return Operation{Kind: OpAdd, Operand: k} }
func Multiply(k Worry) Operation { return Operation{Kind: OpMultiply, Operand: k} }
func Square() Operation          { return Operation{Kind: OpSquare} }

// Actor is an immutable routing definition plus its starting queue.
// Live queues and activity counters belong to the Engine.
type Actor struct {
	ID      int
	Op      Operation
	Divisor Worry
	IfTrue  int
	IfFalse int
	Items   []Worry
}

// Target returns the actor an already damped value is thrown to.
func (a Actor) Target(v Worry) int {
	if v%a.Divisor == 0 {
		return a.IfTrue
	}
	return a.IfFalse
}

type Event struct {
	Round   int            `json:"round"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

const (
	EventThrow    = "Throw"
	EventRoundEnd = "RoundEnd"
	EventLogLine  = "LogLine"
)
