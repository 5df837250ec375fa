package piece

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	nt "datasheet/entity"
)

// TextInput is the editor for text cells
type TextInput struct {
	value     []rune
	cursor    int
	maxLength int
}

func NewTextInput(value string, maxLength int) TextInput {
	if maxLength <= 0 {
		maxLength = 100 // Default max length
	}
	runes := []rune(value)
	return TextInput{
		value:     runes,
		cursor:    len(runes),
		maxLength: maxLength,
	}
}

// Update applies a key press forwarded by the grid
func (t TextInput) Update(msg tea.KeyPressMsg) TextInput {
	return t.Key(msg.String(), msg.Text)
}

// Key applies a keystroke name and the text it produced
func (t TextInput) Key(keystroke, text string) TextInput {
	t.value = append([]rune(nil), t.value...)

	switch keystroke {
	case "backspace":
		if t.cursor > 0 {
			t.value = append(t.value[:t.cursor-1], t.value[t.cursor:]...)
			t.cursor--
		}
	case "delete":
		if t.cursor < len(t.value) {
			t.value = append(t.value[:t.cursor], t.value[t.cursor+1:]...)
		}
	case "left":
		if t.cursor > 0 {
			t.cursor--
		}
	case "right":
		if t.cursor < len(t.value) {
			t.cursor++
		}
	case "home", "ctrl+a":
		t.cursor = 0
	case "end", "ctrl+e":
		t.cursor = len(t.value)
	default:
		if text == "" || strings.HasPrefix(keystroke, "ctrl+") || strings.HasPrefix(keystroke, "alt+") {
			break
		}
		for _, r := range text {
			if len(t.value) >= t.maxLength {
				break
			}
			t.value = append(t.value[:t.cursor], append([]rune{r}, t.value[t.cursor:]...)...)
			t.cursor++
		}
	}
	return t
}

func (t TextInput) Value() nt.Value {
	return nt.Text(string(t.value))
}

func (t TextInput) Cursor() int {
	return t.cursor
}

// Render shows the value with the cursor as a bar
func (t TextInput) Render() string {
	return string(t.value[:t.cursor]) + "▏" + string(t.value[t.cursor:])
}
