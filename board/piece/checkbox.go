package piece

import (
	nt "datasheet/entity"
	"datasheet/navigate"
)

// Checkbox is a toggleable cell with its own editor
type Checkbox struct {
	checked bool
}

func NewCheckbox(checked bool) Checkbox {
	return Checkbox{checked: checked}
}

// ParseCheckbox reads stored text, anything unparsable is unchecked
func ParseCheckbox(val nt.Value) Checkbox {
	checked, _ := val.Bool()
	return Checkbox{checked: checked}
}

func (c Checkbox) Checked() bool {
	return c.checked
}

func (c Checkbox) Render() string {
	if c.checked {
		return "[x]"
	}
	return "[ ]"
}

func (c Checkbox) Value() nt.Value {
	if c.checked {
		return nt.Text("true")
	}
	return nt.Text("false")
}

func (c Checkbox) Edit(force bool) navigate.Editor {
	return &c
}

// Consume toggles on space or t
func (c *Checkbox) Consume(key navigate.Key) bool {
	if key.Intent == navigate.Char && (key.Rune == ' ' || key.Rune == 't') {
		c.checked = !c.checked
		return true
	}
	return false
}
