package entity

// Coord identifies one cell in a grid.
type Coord struct {
	Row int
	Col int
}

// Add returns the coordinate one step of off away.
func (c Coord) Add(off Offset) Coord {
	return Coord{Row: c.Row + off.Rows, Col: c.Col + off.Cols}
}

// Offset is a per-step move in rows and columns.
type Offset struct {
	Rows int
	Cols int
}

// Zero is true when the offset does not move.
func (off Offset) Zero() bool {
	return off.Rows == 0 && off.Cols == 0
}

// Pos is a coordinate that may be unset.
// The zero Pos is the "none" sentinel.
type Pos struct {
	Coord
	Set bool
}

// At returns a set Pos.
func At(row, col int) Pos {
	return Pos{Coord: Coord{Row: row, Col: col}, Set: true}
}

// PosOf returns a set Pos for a coordinate.
func PosOf(c Coord) Pos {
	return Pos{Coord: c, Set: true}
}

// Is reports whether pos is set and equal to c.
func (pos Pos) Is(c Coord) bool {
	return pos.Set && pos.Coord == c
}

// Range is a rectangle spanned by two corners given in any order.
// A range with either corner unset is empty.
type Range struct {
	Start Pos
	End   Pos
}

// NewRange returns the range spanned by start and end.
func NewRange(start, end Coord) Range {
	return Range{Start: PosOf(start), End: PosOf(end)}
}

// Single returns the range holding only c.
func Single(c Coord) Range {
	return NewRange(c, c)
}

// Empty is true when there is no selection.
func (rng Range) Empty() bool {
	return !rng.Start.Set || !rng.End.Set
}

// Bounds returns the top-left and bottom-right corners.
func (rng Range) Bounds() (lo, hi Coord) {
	lo = Coord{
		Row: min(rng.Start.Row, rng.End.Row),
		Col: min(rng.Start.Col, rng.End.Col),
	}
	hi = Coord{
		Row: max(rng.Start.Row, rng.End.Row),
		Col: max(rng.Start.Col, rng.End.Col),
	}
	return
}

// Contains is inclusive on all four sides.
func (rng Range) Contains(c Coord) bool {
	if rng.Empty() {
		return false
	}
	lo, hi := rng.Bounds()
	return c.Row >= lo.Row && c.Row <= hi.Row && c.Col >= lo.Col && c.Col <= hi.Col
}

// Coords lists covered coordinates in row-major order.
func (rng Range) Coords() (coords []Coord) {
	if rng.Empty() {
		return
	}
	lo, hi := rng.Bounds()
	for row := lo.Row; row <= hi.Row; row++ {
		for col := lo.Col; col <= hi.Col; col++ {
			coords = append(coords, Coord{Row: row, Col: col})
		}
	}
	return
}
