// Package render turns a solved crossword into something a person can
// look at: a text grid for the terminal or a PNG raster. It only reads
// the structure and the assignment, so the solver stays headless.
package render

import (
	"strings"

	"github.com/AlexWSP/cs50-ai/crossword"
	"github.com/AlexWSP/cs50-ai/solver"
)

// BlockedGlyph is what a non-fillable cell renders as in text output.
const BlockedGlyph = '█'

// letterGrid lays the assignment out cell by cell. Cells no assigned
// word covers stay zero.
func letterGrid(cw *crossword.Crossword, a solver.Assignment) [][]byte {
	grid := make([][]byte, cw.Height)
	for r := range grid {
		grid[r] = make([]byte, cw.Width)
	}
	for v, word := range a {
		for k, cell := range v.Cells() {
			grid[cell.Row][cell.Col] = word[k]
		}
	}
	return grid
}

// Text renders the grid one row per line: blocked cells as a solid
// block, open cells as their letter or a space when unassigned.
func Text(cw *crossword.Crossword, a solver.Assignment) string {
	letters := letterGrid(cw, a)
	var sb strings.Builder
	for r := 0; r < cw.Height; r++ {
		for c := 0; c < cw.Width; c++ {
			switch {
			case !cw.Fillable(r, c):
				sb.WriteRune(BlockedGlyph)
			case letters[r][c] != 0:
				sb.WriteByte(letters[r][c])
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
