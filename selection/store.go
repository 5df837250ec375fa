package selection

import (
	nt "datasheet/entity"
)

// Store specifies where the selection range lives.
type Store interface {
	// Read returns the authoritative range
	Read() nt.Range
	// Write proposes a new range
	Write(rng nt.Range)
	// Reset drops the range, when owned locally
	Reset()
}

// Owner is the external holder of a controlled selection.
type Owner interface {
	// Selected returns the current range, empty when there is none
	Selected() nt.Range
	// OnSelect receives every proposed range
	OnSelect(rng nt.Range)
}

// Internal is an uncontrolled store holding the range itself.
type Internal struct {
	rng      nt.Range
	onSelect func(nt.Range)
}

// NewInternal creates an uncontrolled store.
// onSelect, when not nil, is called each time the end corner moves.
func NewInternal(onSelect func(nt.Range)) *Internal {
	return &Internal{onSelect: onSelect}
}

func (in *Internal) Read() nt.Range {
	return in.rng
}

func (in *Internal) Write(rng nt.Range) {
	prev := in.rng.End
	in.rng = rng

	if in.onSelect == nil || !rng.End.Set {
		return
	}
	if prev.Set && prev.Coord == rng.End.Coord {
		return
	}
	in.onSelect(rng)
}

func (in *Internal) Reset() {
	in.rng = nt.Range{}
}

// Controlled delegates the range to an Owner.
type Controlled struct {
	owner Owner
}

// NewControlled creates a store that never keeps a range of its own.
func NewControlled(owner Owner) *Controlled {
	return &Controlled{owner: owner}
}

func (ctl *Controlled) Read() nt.Range {
	return ctl.owner.Selected()
}

func (ctl *Controlled) Write(rng nt.Range) {
	ctl.owner.OnSelect(rng)
}

// Reset leaves the owner's range alone.
func (ctl *Controlled) Reset() {}
