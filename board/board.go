package board

import (
	"slices"

	"github.com/pkg/errors"

	nt "datasheet/entity"
)

// Piece is the content shown in one square.
type Piece interface {
	Render() string
	Value() nt.Value
}

// File describes one column.
type File interface {
	Name() string
	Width() int
}

// Square is a piece and the descriptor navigation reads.
type Square struct {
	Piece Piece
	Cell  nt.Cell
}

type Rank struct {
	squares []Square
}

func NewRank(squares []Square) Rank {
	return Rank{squares: squares}
}

// Board is a grid of squares organized into ranks (rows) and files (columns).
// Board implements nt.Grid; the engine holds it by pointer, so Replace swaps
// content in place and readers see the new ranks on their next query.
type Board struct {
	ranks []Rank
	files []File
}

// New creates a board, every rank must have one square per file.
func New(ranks []Rank, files []File) (brd *Board, err error) {

	brd = &Board{files: files}
	err = brd.Replace(ranks)
	return
}

// Replace swaps in new ranks with the same files.
func (brd *Board) Replace(ranks []Rank) error {

	for i, rank := range ranks {
		if len(rank.squares) != len(brd.files) {
			return errors.Errorf("rank %d has %d squares for %d files", i, len(rank.squares), len(brd.files))
		}
	}

	brd.ranks = ranks
	return nil
}

func (brd *Board) Rows() int {
	return len(brd.ranks)
}

func (brd *Board) Cols() int {
	if len(brd.ranks) == 0 {
		return 0
	}
	return len(brd.files)
}

func (brd *Board) Cell(row, col int) (nt.Cell, bool) {
	sq, ok := brd.Square(row, col)
	return sq.Cell, ok
}

// Square returns the square at row, col.
func (brd *Board) Square(row, col int) (sq Square, ok bool) {
	if row < 0 || row >= len(brd.ranks) || col < 0 || col >= len(brd.files) {
		return
	}
	return brd.ranks[row].squares[col], true
}

// Value returns the content at row, col, null outside the board.
func (brd *Board) Value(row, col int) nt.Value {
	sq, ok := brd.Square(row, col)
	if !ok || sq.Piece == nil {
		return nt.Value{}
	}
	return sq.Piece.Value()
}

// Set replaces the piece at row, col.
func (brd *Board) Set(row, col int, pc Piece) error {
	if _, ok := brd.Square(row, col); !ok {
		return errors.Errorf("no square at %d,%d", row, col)
	}

	squares := slices.Clone(brd.ranks[row].squares)
	squares[col].Piece = pc
	brd.ranks[row] = Rank{squares: squares}
	return nil
}

// Files returns the column descriptions.
func (brd *Board) Files() []File {
	return slices.Clone(brd.files)
}
