package piece

import (
	"slices"

	nt "datasheet/entity"
	"datasheet/navigate"
)

// Choice cycles through a list of options
type Choice struct {
	options  []string
	selected int
}

// NewChoice selects value among options, or the first option
func NewChoice(options []string, value string) Choice {
	selected := slices.Index(options, value)
	if selected < 0 {
		selected = 0
	}
	return Choice{
		options:  options,
		selected: selected,
	}
}

func (o Choice) Selected() string {
	if o.selected < 0 || o.selected >= len(o.options) {
		return ""
	}
	return o.options[o.selected]
}

func (o Choice) Render() string {
	if o.selected < 0 || o.selected >= len(o.options) {
		return "?"
	}
	return "‹" + o.options[o.selected] + "›"
}

func (o Choice) Value() nt.Value {
	return nt.Text(o.Selected())
}

func (o Choice) Edit(force bool) navigate.Editor {
	return &o
}

// Consume cycles on left and right, or h and l
func (o *Choice) Consume(key navigate.Key) bool {
	if len(o.options) == 0 {
		return false
	}

	switch {
	case key.Intent == navigate.Left, key.Intent == navigate.Char && key.Rune == 'h':
		o.selected--
		if o.selected < 0 {
			o.selected = len(o.options) - 1
		}
		return true
	case key.Intent == navigate.Right, key.Intent == navigate.Char && key.Rune == 'l':
		o.selected++
		if o.selected >= len(o.options) {
			o.selected = 0
		}
		return true
	}
	return false
}
