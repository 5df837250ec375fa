package navigate

import (
	"datasheet/clip"
	nt "datasheet/entity"
)

// Hooks are the capabilities the engine borrows from its host.
// Any may be nil; Navigable then defaults to Always.
type Hooks struct {
	// Navigable decides whether directional moves may land on a cell
	Navigable Navigable
	// Content returns what is copied, and what an edit reverts to
	Content clip.ContentFunc
	// Clear empties cells on delete and cut
	Clear func(coords []nt.Coord) error
	// Paste applies a snapshot to the normalized selection
	Paste func(snap clip.Snapshot, start, end nt.Coord) error
	// Commit stores the value of a finished edit
	Commit func(row, col int, val nt.Value) error
	// Revert restores the content captured when the edit started
	Revert func(row, col int, initial nt.Value) error
	// ContextMenu is told about secondary clicks
	ContextMenu func(cell nt.Cell, row, col int)
	// Capture is called when a drag gesture starts and returns its release
	Capture func() (release func())
	// Copied is told about each new snapshot
	Copied func(snap clip.Snapshot)
}

// Editor is the widget open on the cell being edited.
type Editor interface {
	Value() nt.Value
}

// Component is an editor that owns its keystrokes.
// Consume is offered every key first and reports whether it used it.
type Component interface {
	Editor
	Consume(key Key) bool
}

// Result tells the host what became of a key.
type Result int

const (
	// Ignored keys are not for the grid
	Ignored Result = iota
	// Handled keys were acted on or suppressed
	Handled
	// Forward keys go to the open editor
	Forward
)

func (res Result) String() string {
	switch res {
	case Handled:
		return "handled"
	case Forward:
		return "forward"
	}
	return "ignored"
}
