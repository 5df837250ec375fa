package navigate

import (
	nt "datasheet/entity"
)

// Navigable reports whether a cell may be landed on.
type Navigable func(cell nt.Cell, row, col int) bool

// Always is the default predicate.
func Always(nt.Cell, int, int) bool {
	return true
}

// Search steps from start by step until it reaches a navigable cell.
// Leaving the grid fails unless jumpRow is set, in which case the search wraps to
// the last column of the previous row when stepping left, or the first column of the
// next row otherwise, and continues from there.
// The number of cells visited is capped at rows*cols+1.
func Search(grid nt.Grid, navigable Navigable, start nt.Coord, step nt.Offset, jumpRow bool) (nt.Coord, bool) {

	rows, cols := grid.Rows(), grid.Cols()
	if rows == 0 || cols == 0 || step.Zero() {
		return nt.Coord{}, false
	}
	if navigable == nil {
		navigable = Always
	}

	pos := start
	for range rows*cols + 1 {
		pos = pos.Add(step)

		if !nt.InBounds(grid, pos) {
			if !jumpRow {
				return nt.Coord{}, false
			}
			pos = wrap(pos, step, cols)
			if !nt.InBounds(grid, pos) {
				return nt.Coord{}, false
			}
		}

		cell, _ := grid.Cell(pos.Row, pos.Col)
		if navigable(cell, pos.Row, pos.Col) {
			return pos, true
		}
	}

	return nt.Coord{}, false
}

func wrap(pos nt.Coord, step nt.Offset, cols int) nt.Coord {
	if step.Cols < 0 {
		return nt.Coord{Row: pos.Row - 1, Col: cols - 1}
	}
	return nt.Coord{Row: pos.Row + 1, Col: 0}
}
