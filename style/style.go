package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	BackgroundColor  = lipgloss.Color("234")                                 // Dark warm grey
	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Subtle warm grey border
	HeaderStyle      = lipgloss.NewStyle().Bold(true)
	RangeStyle       = lipgloss.NewStyle().Background(lipgloss.Color("237")) // Slightly warmer cell
	CursorStyle      = lipgloss.NewStyle().Background(lipgloss.Color("63"))
	EditingStyle     = lipgloss.NewStyle().Background(lipgloss.Color("24")).Underline(true)
	MutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Warm muted grey text
	FooterStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ErrorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	UnStyle          = lipgloss.NewStyle()
)

// Mark is how a cell stands relative to the selection
type Mark struct {
	InRange  bool
	Cursor   bool
	Editing  bool
	ReadOnly bool
}

// CellStyle returns the style for a cell with the given mark
func CellStyle(mark Mark) lipgloss.Style {

	style := UnStyle
	switch {
	case mark.Editing:
		style = EditingStyle
	case mark.Cursor:
		style = CursorStyle
	case mark.InRange:
		style = RangeStyle
	}

	if mark.ReadOnly && !mark.Editing {
		style = style.Foreground(lipgloss.Color("246"))
	}
	return style
}

// StyleTable applies consistent table styling for borders and separators
func StyleTable(tbl *table.Table) {
	tbl.Border(lipgloss.Border{
		Top:         "─", // Horizontal parts of separator
		Middle:      "─", // Between columns in separator
		MiddleLeft:  "─", // Left edge of separator
		MiddleRight: "─", // Right edge of separator
	}).
		BorderTop(false).    // Disable top border
		BorderBottom(false). // Disable bottom border
		BorderLeft(false).   // Disable left border
		BorderRight(false).  // Disable right border
		BorderColumn(false). // Disable column separators
		BorderStyle(TableBorderStyle)
}
