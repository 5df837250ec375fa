package sheet

import (
	"fmt"

	"datasheet/clip"
	nt "datasheet/entity"
	"datasheet/navigate"
)

// hooks lend the engine the store, the board and the terminal
func (m *Model) hooks() navigate.Hooks {

	return navigate.Hooks{
		Navigable: m.layout.Navigable,
		Content:   m.board.Value,
		Clear:     m.clear,
		Paste:     m.paste,
		Commit:    m.commit,
		Revert:    m.revert,
		ContextMenu: func(cell nt.Cell, row, col int) {
			m.notice = describe(cell, row, col)
		},
		Capture: m.capture,
		Copied:  m.copied,
	}
}

func (m *Model) clear(coords []nt.Coord) (err error) {

	err = m.store.Clear(coords)
	if err != nil {
		return
	}
	err = m.reload()
	return
}

func (m *Model) paste(snap clip.Snapshot, start, end nt.Coord) (err error) {

	err = m.store.Paste(snap, start, end)
	if err != nil {
		return
	}
	err = m.reload()
	return
}

func (m *Model) commit(row, col int, val nt.Value) (err error) {

	err = m.store.Set(row, col, val)
	if err != nil {
		return
	}
	err = m.board.Set(row, col, m.layout.Piece(col, val))
	return
}

// revert puts the content from edit start back on display, the store was never touched
func (m *Model) revert(row, col int, initial nt.Value) error {
	return m.board.Set(row, col, m.layout.Piece(col, initial))
}

// capture reports mouse motion anywhere until the drag is released
func (m *Model) capture() func() {

	m.capturing = true
	return func() {
		m.capturing = false
	}
}

func (m *Model) copied(snap clip.Snapshot) {

	m.notice = fmt.Sprintf("copied %d cells", len(snap))
	if m.clipboard == nil {
		return
	}

	text, err := snap.TSV()
	if err == nil {
		err = m.clipboard.WriteAll(text)
	}
	if err != nil {
		m.logger.Error(m.ctx, "failed to write clipboard", err, "cells", len(snap))
	}
}

func describe(cell nt.Cell, row, col int) string {

	text := fmt.Sprintf("row %d col %d", row+1, col+1)
	if cell.ReadOnly {
		text += " read-only"
	}
	if cell.HasComponent {
		text += " component"
	}
	return text
}
