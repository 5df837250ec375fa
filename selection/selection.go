// Package selection holds the selected range, the cell being edited and the drag flag.
package selection

import (
	"datasheet/clip"
	nt "datasheet/entity"
)

// State is a full view of the selection.
type State struct {
	nt.Range
	Editing   nt.Pos
	ForceEdit bool
	Selecting bool
}

// IsEditing is true when a cell is open for editing.
func (st State) IsEditing() bool {
	return st.Editing.Set
}

type field uint8

const (
	startField field = 1 << iota
	endField
	editingField
	forceField
	selectingField
)

// Update is a partial state; only fields that were set are applied.
type Update struct {
	fields    field
	start     nt.Pos
	end       nt.Pos
	editing   nt.Pos
	forceEdit bool
	selecting bool
}

// Set begins an empty update.
func Set() Update {
	return Update{}
}

func (upd Update) Start(pos nt.Pos) Update {
	upd.fields |= startField
	upd.start = pos
	return upd
}

func (upd Update) End(pos nt.Pos) Update {
	upd.fields |= endField
	upd.end = pos
	return upd
}

// Cell sets both corners to c.
func (upd Update) Cell(c nt.Coord) Update {
	return upd.Start(nt.PosOf(c)).End(nt.PosOf(c))
}

func (upd Update) Editing(pos nt.Pos) Update {
	upd.fields |= editingField
	upd.editing = pos
	return upd
}

func (upd Update) ForceEdit(force bool) Update {
	upd.fields |= forceField
	upd.forceEdit = force
	return upd
}

func (upd Update) Selecting(selecting bool) Update {
	upd.fields |= selectingField
	upd.selecting = selecting
	return upd
}

// TouchesRange is true when either corner is part of the update.
func (upd Update) TouchesRange() bool {
	return upd.fields&(startField|endField) != 0
}

func (upd Update) has(fld field) bool {
	return upd.fields&fld != 0
}

// Model reconciles the range held by a Store with locally held edit state.
type Model struct {
	store     Store
	editing   nt.Pos
	forceEdit bool
	selecting bool
	copied    clip.Snapshot
}

// New creates a Model over store.
func New(store Store) *Model {
	return &Model{store: store}
}

// State returns the range from the store and everything else from the model.
func (mdl *Model) State() State {
	return State{
		Range:     mdl.store.Read(),
		Editing:   mdl.editing,
		ForceEdit: mdl.forceEdit,
		Selecting: mdl.selecting,
	}
}

// Apply merges upd.
// A range change fills an unspecified corner from the store and is written as a pair.
func (mdl *Model) Apply(upd Update) {

	if upd.TouchesRange() {
		rng := mdl.store.Read()
		if upd.has(startField) {
			rng.Start = upd.start
		}
		if upd.has(endField) {
			rng.End = upd.end
		}
		mdl.store.Write(rng)
	}

	if upd.has(editingField) {
		mdl.editing = upd.editing
	}
	if upd.has(forceField) {
		mdl.forceEdit = upd.forceEdit
	}
	if upd.has(selectingField) {
		mdl.selecting = upd.selecting
	}
}

// Reset returns to no selection, no edit and no drag.
func (mdl *Model) Reset() {
	mdl.store.Reset()
	mdl.editing = nt.Pos{}
	mdl.forceEdit = false
	mdl.selecting = false
}

// IsWithinSelection is true when c lies in the current rectangle.
func (mdl *Model) IsWithinSelection(c nt.Coord) bool {
	return mdl.store.Read().Contains(c)
}

// IsEditingCell is true when c is open for editing.
func (mdl *Model) IsEditingCell(c nt.Coord) bool {
	return mdl.editing.Is(c)
}

// Copied returns the last copied snapshot.
func (mdl *Model) Copied() clip.Snapshot {
	return mdl.copied
}

// SetCopied replaces the copied snapshot.
func (mdl *Model) SetCopied(snap clip.Snapshot) {
	mdl.copied = snap
}
