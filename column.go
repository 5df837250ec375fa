package datasheet

import (
	"fmt"
	"strconv"

	"datasheet/board"
	"datasheet/board/piece"
	nt "datasheet/entity"
)

// Kind is what a column's cells hold.
type Kind string

const (
	Text     Kind = "text"
	Label    Kind = "label"
	Checkbox Kind = "checkbox"
	Choice   Kind = "choice"
)

// Column is the presentation of one store field.
type Column struct {
	Field    string   `yaml:"field"`
	Width    int      `yaml:"width"`
	Kind     Kind     `yaml:"kind,omitempty"`
	Format   string   `yaml:"format,omitempty"`
	Options  []string `yaml:"options,omitempty"`
	ReadOnly bool     `yaml:"readOnly,omitempty"`
	Skip     bool     `yaml:"skip,omitempty"`   // arrows pass over
	Locked   bool     `yaml:"locked,omitempty"` // ignores the mouse
	Always   bool     `yaml:"always,omitempty"` // component handles no keys of its own
}

func (col Column) component() bool {
	return col.Kind == Checkbox || col.Kind == Choice
}

func (col Column) cell() nt.Cell {

	return nt.Cell{
		ReadOnly:       col.ReadOnly || col.Kind == Label,
		DisableEvents:  col.Locked,
		HasComponent:   col.component(),
		ForceComponent: col.Always && col.component(),
	}
}

func (col Column) piece(val nt.Value) board.Piece {

	switch col.Kind {
	case Label:
		return piece.NewLabel(val.String())
	case Checkbox:
		return piece.ParseCheckbox(val)
	case Choice:
		return piece.NewChoice(col.Options, val.String())
	}
	return piece.NewValue(val, makeFormatter(col.Format))
}

// makeFormatter applies a printf verb to values that read as numbers
func makeFormatter(format string) func(nt.Value) string {

	if format == "" {
		return func(v nt.Value) string {
			return v.String()
		}
	}

	return func(v nt.Value) string {
		num, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return v.String()
		}
		return fmt.Sprintf(format, num)
	}
}

type header struct {
	name  string
	width int
}

func (hdr header) Name() string { return hdr.name }
func (hdr header) Width() int   { return hdr.width }
