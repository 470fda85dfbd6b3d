package crossword

import (
	"testing"

	"github.com/matryer/is"
)

func TestVariableCells(t *testing.T) {
	is := is.New(t)
	type tc struct {
		v     Variable
		cells []Cell
	}
	cases := []tc{
		{
			v:     Variable{Row: 1, Col: 0, Direction: Across, Length: 3},
			cells: []Cell{{1, 0}, {1, 1}, {1, 2}},
		},
		{
			v:     Variable{Row: 0, Col: 1, Direction: Down, Length: 3},
			cells: []Cell{{0, 1}, {1, 1}, {2, 1}},
		},
		{
			v:     Variable{Row: 4, Col: 4, Direction: Down, Length: 2},
			cells: []Cell{{4, 4}, {5, 4}},
		},
	}
	for _, c := range cases {
		is.Equal(c.v.Cells(), c.cells)
	}
}

func TestVariableCompare(t *testing.T) {
	is := is.New(t)
	a := Variable{Row: 0, Col: 1, Direction: Down, Length: 3}
	b := Variable{Row: 1, Col: 0, Direction: Across, Length: 3}
	c := Variable{Row: 1, Col: 0, Direction: Down, Length: 3}
	is.True(a.Compare(b) < 0)
	is.True(b.Compare(a) > 0)
	is.True(b.Compare(c) < 0)
	is.Equal(a.Compare(a), 0)
}

func TestVariableString(t *testing.T) {
	is := is.New(t)
	v := Variable{Row: 2, Col: 5, Direction: Across, Length: 4}
	is.Equal(v.String(), "(2,5 across:4)")
	v.Direction = Down
	is.Equal(v.String(), "(2,5 down:4)")
}
