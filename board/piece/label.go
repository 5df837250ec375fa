package piece

import (
	nt "datasheet/entity"
)

// Label is read-only text
type Label struct {
	text string
}

func NewLabel(text string) Label {
	return Label{text: text}
}

func (l Label) Text() string {
	return l.text
}

func (l Label) Render() string {
	return l.text
}

func (l Label) Value() nt.Value {
	return nt.Text(l.text)
}

// String lets Label name a column
func (l Label) String() string {
	return l.text
}
