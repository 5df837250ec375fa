package navigate

import (
	nt "datasheet/entity"
)

// Intent is a classified key press.
type Intent int

const (
	Other Intent = iota
	Up
	Down
	Left
	Right
	Tab
	Enter
	Escape
	Delete // delete or backspace
	Char   // printable rune
	Cut
	Copy
	Paste
)

var intentNames = map[Intent]string{
	Other:  "other",
	Up:     "up",
	Down:   "down",
	Left:   "left",
	Right:  "right",
	Tab:    "tab",
	Enter:  "enter",
	Escape: "escape",
	Delete: "delete",
	Char:   "char",
	Cut:    "cut",
	Copy:   "copy",
	Paste:  "paste",
}

func (intent Intent) String() string {
	if name, ok := intentNames[intent]; ok {
		return name
	}
	return "unknown"
}

// Key is one key press as seen by the engine.
type Key struct {
	Intent Intent
	Shift  bool
	Ctrl   bool // ctrl or cmd
	Rune   rune // for Char
}

// Offset returns the step for a directional intent.
// Enter steps a row, upward with shift; Tab steps a column, leftward with shift.
func (key Key) Offset() (off nt.Offset, jumpRow bool) {
	switch key.Intent {
	case Up:
		off.Rows = -1
	case Down:
		off.Rows = 1
	case Left:
		off.Cols = -1
	case Right:
		off.Cols = 1
	case Enter:
		off.Rows = 1
		if key.Shift {
			off.Rows = -1
		}
	case Tab:
		off.Cols = 1
		if key.Shift {
			off.Cols = -1
		}
		jumpRow = true
	}
	return
}

// Arrow is true for the four arrow intents.
func (key Key) Arrow() bool {
	switch key.Intent {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// EditStart is true for runes that open an empty editor when typed on a selected cell:
// digits, letters, the Latin-1 supplement and equation symbols.
func EditStart(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= 0xa0 && r <= 0xff:
		return true
	}

	switch r {
	case '=', '-', '.', '+':
		return true
	}
	return false
}
