package crossword

import "fmt"

// Direction says which way a slot runs through the grid.
type Direction uint8

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// A Cell is a single grid position.
type Cell struct {
	Row int
	Col int
}

// A Variable is one fillable slot: a maximal run of open cells in a single
// direction. It is a plain value; two variables denote the same slot iff
// all four fields match, so it can key maps directly.
type Variable struct {
	Row       int
	Col       int
	Direction Direction
	Length    int
}

// Cells returns the grid positions the slot covers, in word order.
func (v Variable) Cells() []Cell {
	cells := make([]Cell, v.Length)
	for k := 0; k < v.Length; k++ {
		if v.Direction == Down {
			cells[k] = Cell{Row: v.Row + k, Col: v.Col}
		} else {
			cells[k] = Cell{Row: v.Row, Col: v.Col + k}
		}
	}
	return cells
}

// Compare orders variables by grid position, then direction, then length.
// Every ordered traversal in this module goes through it, which is what
// keeps solver runs reproducible.
func (v Variable) Compare(o Variable) int {
	if v.Row != o.Row {
		return v.Row - o.Row
	}
	if v.Col != o.Col {
		return v.Col - o.Col
	}
	if v.Direction != o.Direction {
		return int(v.Direction) - int(o.Direction)
	}
	return v.Length - o.Length
}

func (v Variable) String() string {
	return fmt.Sprintf("(%d,%d %s:%d)", v.Row, v.Col, v.Direction, v.Length)
}
