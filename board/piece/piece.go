// Package piece provides the content kinds a board square can hold.
package piece

import (
	"datasheet/board"
	"datasheet/navigate"
)

// Editable pieces open an editor when their cell enters edit mode.
// force asks for the existing content rather than an empty editor.
type Editable interface {
	board.Piece
	Edit(force bool) navigate.Editor
}

var (
	_ Editable           = Value{}
	_ Editable           = Checkbox{}
	_ Editable           = Choice{}
	_ board.Piece        = Label{}
	_ navigate.Component = &Checkbox{}
	_ navigate.Component = &Choice{}
	_ navigate.Editor    = TextInput{}
)
