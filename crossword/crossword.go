// Package crossword models a puzzle grid: which cells are open, the slots
// those cells form, and where the slots cross each other.
package crossword

import (
	"errors"
	"sort"
)

// BlockedMarker denotes a cell that can never hold a letter. Every other
// character in a structure description, blanks included, is an open cell.
const BlockedMarker = '#'

// ErrEmptyStructure is returned when a structure description has no rows
// or no columns.
var ErrEmptyStructure = errors.New("structure has no cells")

// An Overlap records where two crossing slots share a cell, as character
// indices into each slot's word. I indexes the first slot of the pair and
// J the second.
type Overlap struct {
	I int
	J int
}

// A Crossword is an immutable puzzle structure. Build one with
// MakeCrossword; afterwards it is safe for concurrent readers.
type Crossword struct {
	Width  int
	Height int

	fillable  [][]bool
	variables []Variable
	overlaps  map[[2]Variable]Overlap
	neighbors map[Variable][]Variable
}

// MakeCrossword builds a Crossword from a textual grid description, one
// string per row. Rows shorter than the widest row are padded with
// blocked cells on the right.
func MakeCrossword(desc []string) (*Crossword, error) {
	height := len(desc)
	width := 0
	for _, row := range desc {
		if len(row) > width {
			width = len(row)
		}
	}
	if height == 0 || width == 0 {
		return nil, ErrEmptyStructure
	}

	cw := &Crossword{Width: width, Height: height}
	cw.fillable = make([][]bool, height)
	for r := 0; r < height; r++ {
		cw.fillable[r] = make([]bool, width)
		for c := 0; c < len(desc[r]); c++ {
			cw.fillable[r][c] = desc[r][c] != BlockedMarker
		}
	}
	cw.findVariables()
	cw.findOverlaps()
	return cw, nil
}

// Fillable reports whether the cell at (row, col) can hold a letter.
// Positions outside the grid are blocked.
func (cw *Crossword) Fillable(row, col int) bool {
	if row < 0 || row >= cw.Height || col < 0 || col >= cw.Width {
		return false
	}
	return cw.fillable[row][col]
}

// Variables returns every slot in the grid, sorted by Compare. Callers
// must not modify the returned slice.
func (cw *Crossword) Variables() []Variable {
	return cw.variables
}

// Overlap returns the crossing cell of x and y as indices into each, and
// whether the two slots cross at all.
func (cw *Crossword) Overlap(x, y Variable) (Overlap, bool) {
	ov, ok := cw.overlaps[[2]Variable{x, y}]
	return ov, ok
}

// Neighbors returns the slots that cross v, sorted by Compare. Callers
// must not modify the returned slice.
func (cw *Crossword) Neighbors(v Variable) []Variable {
	return cw.neighbors[v]
}

// findVariables scans the grid for maximal runs of open cells. A run
// must span at least two cells to count as a slot.
func (cw *Crossword) findVariables() {
	for r := 0; r < cw.Height; r++ {
		for c := 0; c < cw.Width; c++ {
			if !cw.fillable[r][c] {
				continue
			}
			if c == 0 || !cw.fillable[r][c-1] {
				length := 0
				for c+length < cw.Width && cw.fillable[r][c+length] {
					length++
				}
				if length > 1 {
					cw.variables = append(cw.variables, Variable{Row: r, Col: c, Direction: Across, Length: length})
				}
			}
			if r == 0 || !cw.fillable[r-1][c] {
				length := 0
				for r+length < cw.Height && cw.fillable[r+length][c] {
					length++
				}
				if length > 1 {
					cw.variables = append(cw.variables, Variable{Row: r, Col: c, Direction: Down, Length: length})
				}
			}
		}
	}
	sort.Slice(cw.variables, func(i, j int) bool {
		return cw.variables[i].Compare(cw.variables[j]) < 0
	})
}

// findOverlaps records the shared cell of every ordered pair of distinct
// slots. Two slots can share at most one cell, one running across and
// the other down.
func (cw *Crossword) findOverlaps() {
	cw.overlaps = make(map[[2]Variable]Overlap)
	cw.neighbors = make(map[Variable][]Variable)
	for _, x := range cw.variables {
		for _, y := range cw.variables {
			if x == y {
				continue
			}
			ov, ok := crossingOf(x, y)
			if !ok {
				continue
			}
			cw.overlaps[[2]Variable{x, y}] = ov
			cw.neighbors[x] = append(cw.neighbors[x], y)
		}
	}
	for _, ns := range cw.neighbors {
		sort.Slice(ns, func(i, j int) bool { return ns[i].Compare(ns[j]) < 0 })
	}
}

func crossingOf(x, y Variable) (Overlap, bool) {
	for i, cx := range x.Cells() {
		for j, cy := range y.Cells() {
			if cx == cy {
				return Overlap{I: i, J: j}, true
			}
		}
	}
	return Overlap{}, false
}
