package datasheet

import (
	"maps"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"datasheet/board"
	nt "datasheet/entity"
	"datasheet/navigate"
	"datasheet/util"
)

const minWidth = 8

// Layout is the yaml presentation of a sheet.
// Grid columns follow store field order; Columns dress the fields they name.
type Layout struct {
	Navigate navigate.Config `yaml:",inline"`
	Columns  []Column        `yaml:"columns"`

	resolved []Column
}

func LoadLayout(path string) (layout *Layout, err error) {

	layout = &Layout{}
	err = util.LoadConfig(layout, path)
	return
}

// DefaultLayout gives every field a text column wide enough for its name
func DefaultLayout(fields []nt.Field) *Layout {

	layout := &Layout{}
	for _, field := range fields {
		layout.Columns = append(layout.Columns, defaultColumn(field))
	}
	return layout
}

// Resolve matches columns to fields, erroring on a column with no field
func (layout *Layout) Resolve(fields []nt.Field) (err error) {

	byName := map[string]Column{}
	for _, col := range layout.Columns {
		byName[col.Field] = col
	}

	resolved := make([]Column, len(fields))
	for i, field := range fields {
		col, ok := byName[field.Name]
		if !ok {
			col = defaultColumn(field)
		}
		if col.Width <= 0 {
			col.Width = defaultColumn(field).Width
		}
		if col.Kind == "" {
			col.Kind = Text
		}
		if col.Kind == Choice && len(col.Options) == 0 {
			err = errors.Errorf("choice column %s has no options", col.Field)
			return
		}
		resolved[i] = col
		delete(byName, field.Name)
	}

	if len(byName) > 0 {
		names := slices.Sorted(maps.Keys(byName))
		err = errors.Errorf("layout columns are not fields: %s", strings.Join(names, ", "))
		return
	}

	layout.resolved = resolved
	return
}

func (layout *Layout) Files() []board.File {

	files := make([]board.File, len(layout.resolved))
	for i, col := range layout.resolved {
		files[i] = header{name: col.Field, width: col.Width}
	}
	return files
}

func (layout *Layout) Cell(col int) nt.Cell {
	if col < 0 || col >= len(layout.resolved) {
		return nt.Cell{}
	}
	return layout.resolved[col].cell()
}

func (layout *Layout) Piece(col int, val nt.Value) board.Piece {
	if col < 0 || col >= len(layout.resolved) {
		return nil
	}
	return layout.resolved[col].piece(val)
}

func (layout *Layout) Navigable(cell nt.Cell, row, col int) bool {
	if col < 0 || col >= len(layout.resolved) {
		return false
	}
	return !layout.resolved[col].Skip
}

func defaultColumn(field nt.Field) Column {
	return Column{
		Field: field.Name,
		Width: max(minWidth, len(field.Name)),
		Kind:  Text,
	}
}
