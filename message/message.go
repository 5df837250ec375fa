package message

import (
	nt "datasheet/entity"
)

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// LoadMsg signals to reload lines from the store
type LoadMsg struct{}

// LinesMsg contains every line of the sheet
type LinesMsg struct {
	Lines []nt.Line
}

// NoticeMsg contains a short note for the footer
type NoticeMsg struct {
	Text string
}
