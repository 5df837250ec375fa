// Package clip extracts clipboard snapshots from a selection rectangle.
package clip

import (
	nt "datasheet/entity"
)

// Entry is one copied cell.
type Entry struct {
	At      nt.Coord
	Content nt.Value
}

// Snapshot is every defined cell of a rectangle, row-major.
type Snapshot []Entry

// ContentFunc returns the content of the cell at row, col.
type ContentFunc func(row, col int) nt.Value

// Collect walks the normalized rectangle of rng and records each cell the grid defines.
// A nil content func records null content.
func Collect(grid nt.Grid, rng nt.Range, content ContentFunc) (snap Snapshot) {

	for _, at := range rng.Coords() {
		if !nt.InBounds(grid, at) {
			continue
		}

		entry := Entry{At: at}
		if content != nil {
			entry.Content = content(at.Row, at.Col)
		}
		snap = append(snap, entry)
	}

	return
}

// Coords returns the coordinates of the snapshot in order.
func (snap Snapshot) Coords() []nt.Coord {
	coords := make([]nt.Coord, len(snap))
	for i, entry := range snap {
		coords[i] = entry.At
	}
	return coords
}

// Origin returns the top-left corner of the snapshot, false if it is empty.
func (snap Snapshot) Origin() (origin nt.Coord, ok bool) {
	if len(snap) == 0 {
		return
	}

	origin = snap[0].At
	for _, entry := range snap[1:] {
		origin.Row = min(origin.Row, entry.At.Row)
		origin.Col = min(origin.Col, entry.At.Col)
	}
	ok = true
	return
}

// Rows groups contents by row, each row ordered by column.
func (snap Snapshot) Rows() (rows [][]nt.Value) {

	row := -1
	for _, entry := range snap {
		if len(rows) == 0 || entry.At.Row != row {
			row = entry.At.Row
			rows = append(rows, nil)
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], entry.Content)
	}
	return
}
