package sheet

import (
	"time"

	tea "charm.land/bubbletea/v2"

	nt "datasheet/entity"
)

// hit finds the cell under x,y; the header and footer are outside the grid
func (m *Model) hit(x, y int) (at nt.Coord, ok bool) {

	row := y - headerHeight
	if row < 0 || row >= m.pageSize() {
		return
	}
	row += m.offset
	if row >= m.board.Rows() {
		return
	}

	left := 0
	for col, file := range m.board.Files() {
		right := left + file.Width() + 1 // padded for spacing
		if x >= left && x < right {
			at = nt.Coord{Row: row, Col: col}
			ok = true
			return
		}
		left = right
	}
	return
}

func (m *Model) click(mouse tea.Mouse) tea.Cmd {

	at, ok := m.hit(mouse.X, mouse.Y)
	if !ok {
		m.engine.HandleOutsideClick()
		m.sync()
		return nil
	}

	switch mouse.Button {
	case tea.MouseRight:
		m.engine.HandleContextMenu(at)

	case tea.MouseLeft:
		m.engine.HandleRangeAnchor(at, mouse.Mod&tea.ModShift != 0)
		if m.doubled(at) {
			m.engine.HandleDoubleClick(at)
		}
	}

	m.sync()
	return nil
}

// doubled is true for the second of two quick clicks on the same cell
func (m *Model) doubled(at nt.Coord) bool {

	now := m.now()
	doubled := at == m.lastClick && !m.clickedAt.IsZero() && now.Sub(m.clickedAt) < doubleClick

	m.lastClick = at
	m.clickedAt = now
	if doubled {
		m.clickedAt = time.Time{} // a third click starts over
	}
	return doubled
}
