package sheet

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"datasheet/navigate"
)

// KeyMap holds the bindings the grid does not classify by name.
type KeyMap struct {
	Quit  key.Binding
	Copy  key.Binding
	Cut   key.Binding
	Paste key.Binding
	Edit  key.Binding
	Clear key.Binding
}

// NewKeyMap binds clipboard shortcuts when clipboardKeys is set, ctrl+c quits otherwise.
func NewKeyMap(clipboardKeys bool) KeyMap {

	km := KeyMap{
		Quit:  key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Copy:  key.NewBinding(key.WithKeys("ctrl+c", "super+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x", "super+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v", "super+v"), key.WithHelp("ctrl+v", "paste")),
		Edit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Clear: key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "clear")),
	}

	if !clipboardKeys {
		km.Quit.SetKeys("ctrl+q", "ctrl+c")
		km.Copy.SetEnabled(false)
		km.Cut.SetEnabled(false)
		km.Paste.SetEnabled(false)
	}

	return km
}

// ShortHelp lists the bindings shown in the footer
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Edit, km.Clear, km.Copy, km.Paste, km.Quit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp(), {km.Cut}}
}

// Classify turns a key press into the engine's notion of a key.
func (km KeyMap) Classify(msg tea.KeyPressMsg) navigate.Key {

	switch {
	case key.Matches(msg, km.Copy):
		return navigate.Key{Intent: navigate.Copy, Ctrl: true}
	case key.Matches(msg, km.Cut):
		return navigate.Key{Intent: navigate.Cut, Ctrl: true}
	case key.Matches(msg, km.Paste):
		return navigate.Key{Intent: navigate.Paste, Ctrl: true}
	}

	return classify(msg.String(), msg.Text)
}

func classify(keystroke, text string) navigate.Key {

	base, shift := strings.CutPrefix(keystroke, "shift+")

	intent, ok := named[base]
	if ok {
		return navigate.Key{Intent: intent, Shift: shift}
	}

	for _, prefix := range []string{"ctrl+", "super+"} {
		if strings.HasPrefix(keystroke, prefix) {
			return navigate.Key{Intent: navigate.Other, Ctrl: true}
		}
	}
	if strings.HasPrefix(keystroke, "alt+") {
		return navigate.Key{Intent: navigate.Other}
	}

	runes := []rune(text)
	if len(runes) == 1 {
		return navigate.Key{Intent: navigate.Char, Rune: runes[0], Shift: shift}
	}
	return navigate.Key{Intent: navigate.Other, Shift: shift}
}

var named = map[string]navigate.Intent{
	"up":        navigate.Up,
	"down":      navigate.Down,
	"left":      navigate.Left,
	"right":     navigate.Right,
	"tab":       navigate.Tab,
	"enter":     navigate.Enter,
	"esc":       navigate.Escape,
	"escape":    navigate.Escape,
	"backspace": navigate.Delete,
	"delete":    navigate.Delete,
}
