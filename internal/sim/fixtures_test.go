package sim

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func exampleNotes(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/example.txt")
	require.NoError(t, err)
	return string(b)
}

func exampleActors() []Actor {
	return []Actor{
		{ID: 0, Op: Multiply(19), Divisor: 23, IfTrue: 2, IfFalse: 3, Items: []Worry{79, 98}},
		{ID: 1, Op: Add(6), Divisor: 19, IfTrue: 2, IfFalse: 0, Items: []Worry{54, 65, 75, 74}},
		{ID: 2, Op: Square(), Divisor: 13, IfTrue: 1, IfFalse: 3, Items: []Worry{79, 60, 97}},
		{ID: 3, Op: Add(3), Divisor: 17, IfTrue: 0, IfFalse: 1, Items: []Worry{74}},
	}
}
