package config

type TroopConfig struct {
	Actors []ActorDef `yaml:"actors"`
}

// ActorDef is one actor of a YAML troop. Operation holds the right-hand side
// of the notes grammar, e.g. "old * 19" or "new = old + 3".
type ActorDef struct {
	Items     []int64 `yaml:"items"`
	Operation string  `yaml:"operation"`
	Divisor   int64   `yaml:"divisor"`
	IfTrue    int     `yaml:"if_true"`
	IfFalse   int     `yaml:"if_false"`
}
