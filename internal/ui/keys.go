package ui

import (
	"strings"

	"github.com/atomicstack/docnav/internal/keynav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap binds terminal keys to logical sidebar keys and UI commands.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	End      key.Binding
	Space    key.Binding
	Enter    key.Binding
	Escape   key.Binding
	Search   key.Binding
	Focus    key.Binding
	Copy     key.Binding
	Drawer   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
	Kill     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "move")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "fold")),
		Right:    key.NewBinding(key.WithKeys("right", "l")),
		Home:     key.NewBinding(key.WithKeys("home", "g")),
		End:      key.NewBinding(key.WithKeys("end", "G")),
		Space:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "open")),
		Enter:    key.NewBinding(key.WithKeys("enter")),
		Escape:   key.NewBinding(key.WithKeys("esc")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy path")),
		Drawer:   key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "sidebar")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Kill:     key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// logical maps msg to the key the sidebar controller understands.
func (k keyMap) logical(msg tea.KeyMsg) (keynav.Key, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return keynav.KeyUp, true
	case key.Matches(msg, k.Down):
		return keynav.KeyDown, true
	case key.Matches(msg, k.Left):
		return keynav.KeyLeft, true
	case key.Matches(msg, k.Right):
		return keynav.KeyRight, true
	case key.Matches(msg, k.Home):
		return keynav.KeyHome, true
	case key.Matches(msg, k.End):
		return keynav.KeyEnd, true
	case key.Matches(msg, k.Space):
		return keynav.KeySpace, true
	case key.Matches(msg, k.Enter):
		return keynav.KeyEnter, true
	case key.Matches(msg, k.Escape):
		return keynav.KeyEscape, true
	case key.Matches(msg, k.Search):
		return keynav.KeySlash, true
	}
	return "", false
}

// hints renders the footer from the bindings that carry help text.
func (k keyMap) hints(mobile bool) string {
	bindings := []key.Binding{k.Up, k.Left, k.Space, k.Search, k.Focus, k.Copy, k.Quit}
	if mobile {
		bindings = append([]key.Binding{k.Drawer}, bindings...)
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
