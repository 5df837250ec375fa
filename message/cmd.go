package message

import tea "charm.land/bubbletea/v2"

// ErrorCmd returns a command reporting err, or nil when there is none
func ErrorCmd(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// LoadCmd returns a command to request a reload of lines
func LoadCmd() tea.Cmd {
	return func() tea.Msg {
		return LoadMsg{}
	}
}

// NoticeCmd returns a command to show text in the footer
func NoticeCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Text: text}
	}
}
