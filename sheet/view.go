package sheet

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	nt "datasheet/entity"
	"datasheet/style"
)

// Todo: handle columns overflow

func (m *Model) View() tea.View {
	if m.width == 0 { // Todo: use m.intialized
		return tea.NewView("Loading...")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, m.render(), m.footer())

	view := tea.NewView(content)
	view.AltScreen = true
	view.ReportFocus = true
	view.MouseMode = tea.MouseModeCellMotion
	if m.capturing {
		view.MouseMode = tea.MouseModeAllMotion
	}
	return view
}

// render draws the visible page of the board
func (m *Model) render() string {

	files := m.board.Files()

	headers := make([]string, len(files))
	for i, file := range files {
		headers[i] = pad(truncate(file.Name(), file.Width()), file.Width()+1)
	}

	last := min(m.board.Rows(), m.offset+max(0, m.pageSize()))
	var rows [][]string
	for row := m.offset; row < last; row++ {
		cells := make([]string, len(files))
		for col, file := range files {
			cells[col] = pad(truncate(m.text(row, col), file.Width()), file.Width()+1)
		}
		rows = append(rows, cells)
	}

	tbl := table.New().
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return style.HeaderStyle
			}
			return style.CellStyle(m.mark(m.offset+row, col))
		})
	style.StyleTable(tbl)

	return tbl.Render()
}

// text is what a cell shows, the editor's rendering while it is open
func (m *Model) text(row, col int) string {

	if m.editor != nil && m.editAt == (nt.Coord{Row: row, Col: col}) {
		if rdr, ok := m.editor.(interface{ Render() string }); ok {
			return rdr.Render()
		}
	}

	sq, ok := m.board.Square(row, col)
	if !ok || sq.Piece == nil {
		return ""
	}
	return sq.Piece.Render()
}

func (m *Model) mark(row, col int) style.Mark {

	at := nt.Coord{Row: row, Col: col}
	st := m.model.State()
	cell, _ := m.board.Cell(row, col)

	return style.Mark{
		InRange:  st.Contains(at),
		Cursor:   st.Start.Is(at),
		Editing:  st.Editing.Is(at),
		ReadOnly: cell.ReadOnly,
	}
}

// footer shows position, help and source; an error or notice replaces the help
func (m *Model) footer() string {

	if m.errorString != "" {
		return style.ErrorStyle.Render(truncate(m.errorString, m.width)) // Todo: find a home for error string
	}

	st := m.model.State()
	left := fmt.Sprintf("%d rows", m.board.Rows())
	if st.Start.Set {
		left = fmt.Sprintf("%d/%d", st.Start.Row+1, m.board.Rows())
		if lo, hi := st.Bounds(); lo != hi {
			left += fmt.Sprintf(" %dx%d", hi.Row-lo.Row+1, hi.Col-lo.Col+1)
		}
	}

	middle := m.notice
	if middle == "" {
		middle = m.help.View(m.keys)
	}

	return RenderFooter(left, middle, m.store.Name(), m.width)
}

// RenderFooter renders a footer with metadata about the sheet.
func RenderFooter(left, middle, right string, width int) string {

	left = left + "  " + middle

	// Calculate padding
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.FooterStyle.Render(left + strings.Repeat(" ", padding) + right)
}

func pad(in string, width int) string {

	short := width - lipgloss.Width(in)
	if short <= 0 {
		return in
	}
	return in + strings.Repeat(" ", short)
}

func truncate(in string, width int) string {

	if width <= 0 {
		return ""
	}
	if lipgloss.Width(in) <= width {
		return in
	}

	runes := []rune(in)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + style.MutedStyle.Render("…")
}
