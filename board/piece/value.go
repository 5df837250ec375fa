package piece

import (
	nt "datasheet/entity"
	"datasheet/navigate"
)

// maxText bounds what the text editor accepts
const maxText = 1024

// Value displays a formatted value while preserving the raw value for editing
type Value struct {
	raw       nt.Value
	formatter func(nt.Value) string
}

func NewValue(raw nt.Value, formatter func(nt.Value) string) Value {
	if formatter == nil {
		formatter = func(v nt.Value) string { return v.String() }
	}
	return Value{raw: raw, formatter: formatter}
}

func (v Value) Render() string {
	return v.formatter(v.raw)
}

func (v Value) Value() nt.Value {
	return v.raw
}

// Edit opens a text input, prefilled only when forced
func (v Value) Edit(force bool) navigate.Editor {
	if !force {
		return NewTextInput("", maxText)
	}
	return NewTextInput(v.raw.String(), maxText)
}
