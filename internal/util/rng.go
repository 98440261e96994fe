package util

import (
	"fmt"
	"math/rand"

	"keepaway/internal/config"
)

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

var divisors = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23}

// RandomTroop builds a valid troop of n actors holding up to maxItems items
// each. Operators are limited to "+ k" and "* 2" / "* 3" so that damped
// values shrink or stay level under the default damping and never overflow.
func RandomTroop(rng *rand.Rand, n, maxItems int) *config.TroopConfig {
	tc := &config.TroopConfig{Actors: make([]config.ActorDef, n)}
	for i := range tc.Actors {
		items := make([]int64, rng.Intn(maxItems+1))
		for j := range items {
			items[j] = 1 + rng.Int63n(99)
		}
		var op string
		if rng.Intn(2) == 0 {
			op = fmt.Sprintf("old + %d", 1+rng.Intn(8))
		} else {
			op = fmt.Sprintf("old * %d", 2+rng.Intn(2))
		}
		tc.Actors[i] = config.ActorDef{
			Items:     items,
			Operation: op,
			Divisor:   divisors[rng.Intn(len(divisors))],
			IfTrue:    rng.Intn(n),
			IfFalse:   rng.Intn(n),
		}
	}
	return tc
}
