package ui

import (
	"github.com/atomicstack/docnav/internal/keynav"
	"github.com/atomicstack/docnav/internal/nav"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type clipboardResultMsg struct {
	text string
	err  error
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keymap.Kill) {
		return tea.Quit
	}
	if m.loading {
		return nil
	}
	target := m.doc.Focused()
	if k, ok := m.keymap.logical(keyMsg); ok {
		if m.disp.Dispatch(keynav.Event{Key: k, Target: target}) {
			m.afterFocusChange()
			return nil
		}
	}
	switch target.Kind {
	case nav.TargetInput:
		return m.handleInputKey(keyMsg, target.Input)
	case nav.TargetEntry:
		return m.handleEntryKey(keyMsg, target.Entry)
	default:
		return m.handleContentKey(keyMsg)
	}
}

// afterFocusChange keeps the text fields and the mobile drawer in step with
// the document focus.
func (m *Model) afterFocusChange() {
	focused := m.doc.Focused()
	for _, v := range m.variants {
		if focused.Kind == nav.TargetInput && focused.Input.ID == v.inputID {
			v.input.Focus()
		} else {
			v.input.Blur()
		}
	}
	if !m.desktopLayout() && focused.Kind != nav.TargetElsewhere && !m.drawerOpen {
		m.drawerOpen = true
		m.layoutSidebars()
	}
}

func (m *Model) handleInputKey(msg tea.KeyMsg, in *nav.Input) tea.Cmd {
	v := m.variantForInput(in)
	if v == nil {
		return nil
	}
	switch {
	case key.Matches(msg, m.keymap.Focus):
		m.cycleFocus()
		return nil
	case key.Matches(msg, m.keymap.Enter):
		if first := firstVisible(m.doc.Container(v.container)); first != nil {
			m.activate(first)
		}
		return nil
	}
	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() != before {
		m.applySearch(v)
	}
	return cmd
}

func (m *Model) handleEntryKey(msg tea.KeyMsg, e *nav.Entry) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Enter):
		m.activate(e)
	case key.Matches(msg, m.keymap.Escape):
		m.doc.Focus(nav.Elsewhere)
		if !m.desktopLayout() {
			m.drawerOpen = false
		}
	case key.Matches(msg, m.keymap.Focus):
		m.cycleFocus()
	case key.Matches(msg, m.keymap.Copy):
		return m.copyPath(e)
	case key.Matches(msg, m.keymap.Drawer):
		m.toggleDrawer()
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit
	}
	return nil
}

func (m *Model) handleContentKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.PageDown):
		m.body.HalfViewDown()
	case key.Matches(msg, m.keymap.PageUp):
		m.body.HalfViewUp()
	case key.Matches(msg, m.keymap.Focus):
		m.cycleFocus()
	case key.Matches(msg, m.keymap.Copy):
		return m.copyPath(m.doc.Container(m.activeVariant().container).Tree.Active())
	case key.Matches(msg, m.keymap.Drawer):
		m.toggleDrawer()
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit
	}
	return nil
}

// applySearch runs the filter for v and repairs the cursor when v is the
// sidebar under keyboard control.
func (m *Model) applySearch(v *variant) {
	v.filter.Apply(v.input.Value())
	if c := m.keys.Container(); c != nil && c.Name == v.container {
		m.keys.Repair()
	}
}

// cycleFocus moves focus sidebar cursor → search field → content → cursor.
func (m *Model) cycleFocus() {
	v := m.activeVariant()
	switch m.doc.Focused().Kind {
	case nav.TargetEntry:
		m.doc.Focus(nav.InputTarget(m.doc.Input(v.inputID)))
	case nav.TargetInput:
		m.doc.Focus(nav.Elsewhere)
	default:
		if cur := m.keys.Current(); cur != nil && cur.Visible() {
			m.keys.SetFocusedItem(cur)
		} else {
			m.doc.Focus(nav.InputTarget(m.doc.Input(v.inputID)))
		}
	}
	m.afterFocusChange()
}

func (m *Model) toggleDrawer() {
	if m.desktopLayout() {
		return
	}
	m.drawerOpen = !m.drawerOpen
	if !m.drawerOpen {
		m.doc.Focus(nav.Elsewhere)
		m.afterFocusChange()
	}
	m.layoutSidebars()
}

func (m *Model) variantForInput(in *nav.Input) *variant {
	if in == nil {
		return nil
	}
	for _, v := range m.variants {
		if v.inputID == in.ID {
			return v
		}
	}
	return nil
}

func firstVisible(c *nav.Container) *nav.Entry {
	if c == nil || c.Tree == nil {
		return nil
	}
	if vis := c.Tree.Visible(); len(vis) > 0 {
		return vis[0]
	}
	return nil
}

// copyPath puts the page path behind e on the system clipboard.
func (m *Model) copyPath(e *nav.Entry) tea.Cmd {
	if e == nil || e.Href == "" {
		return nil
	}
	text := e.Href
	if page, ok := m.site.Find(e.Href); ok && page.Path != "" {
		text = page.Path
	}
	return func() tea.Msg {
		return clipboardResultMsg{text: text, err: clipboard.WriteAll(text)}
	}
}

func (m *Model) handleClipboardResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(clipboardResultMsg)
	if !ok {
		return nil
	}
	if res.err != nil {
		m.errMsg = "clipboard: " + res.err.Error()
		return nil
	}
	m.setInfo("Copied " + res.text)
	return nil
}
