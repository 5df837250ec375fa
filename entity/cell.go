package entity

// Cell is the per-cell descriptor read by selection and navigation.
// It is owned by the grid's data store and never mutated by readers.
type Cell struct {
	ReadOnly       bool
	DisableEvents  bool
	HasComponent   bool
	ForceComponent bool
}

// Grid specifies a rectangular matrix of cell descriptors.
type Grid interface {
	// Rows returns the number of rows
	Rows() int
	// Cols returns the width of the first row
	Cols() int
	// Cell returns the descriptor at row, col, false when undefined
	Cell(row, col int) (Cell, bool)
}

// InBounds is true when the grid defines a cell at c.
func InBounds(grid Grid, c Coord) bool {
	_, ok := grid.Cell(c.Row, c.Col)
	return ok
}

// Matrix is a Grid backed by rows of descriptors.
type Matrix [][]Cell

// NewMatrix returns a rows by cols matrix of default descriptors.
func NewMatrix(rows, cols int) Matrix {
	mtx := make(Matrix, rows)
	for i := range mtx {
		mtx[i] = make([]Cell, cols)
	}
	return mtx
}

func (mtx Matrix) Rows() int {
	return len(mtx)
}

func (mtx Matrix) Cols() int {
	if len(mtx) == 0 {
		return 0
	}
	return len(mtx[0])
}

func (mtx Matrix) Cell(row, col int) (cell Cell, ok bool) {
	if row < 0 || row >= len(mtx) || col < 0 || col >= len(mtx[row]) {
		return
	}
	return mtx[row][col], true
}
