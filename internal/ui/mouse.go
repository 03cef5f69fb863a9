package ui

import (
	"github.com/atomicstack/docnav/internal/logging"
	"github.com/atomicstack/docnav/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

const wheelStep = 3

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.loading {
		return nil
	}
	if m.resize.Dragging() {
		return m.handleDrag(ev)
	}
	cols := m.columns()
	inSidebar := ev.X < cols.sidebar
	switch ev.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		m.scroll(ev.Button == tea.MouseButtonWheelDown, inSidebar)
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}
	if ev.Action != tea.MouseActionPress {
		return nil
	}
	if cols.handle > 0 && ev.X == cols.sidebar {
		m.resize.BeginDrag(ev.X)
		return nil
	}
	if !inSidebar {
		m.doc.Focus(nav.Elsewhere)
		m.afterFocusChange()
		return nil
	}
	m.clickSidebar(ev.Y)
	return nil
}

func (m *Model) handleDrag(ev tea.MouseMsg) tea.Cmd {
	switch ev.Action {
	case tea.MouseActionMotion:
		if m.resize.DragTo(ev.X) {
			m.layoutSidebars()
		}
	case tea.MouseActionRelease:
		if err := m.resize.EndDrag(m.ctx()); err != nil {
			logging.Error(err)
			m.errMsg = err.Error()
		}
		m.layoutSidebars()
		m.renderContent()
	}
	return nil
}

// clickSidebar handles a press on sidebar row y: the search field takes
// focus, a header toggles, an item opens its page.
func (m *Model) clickSidebar(y int) {
	v := m.activeVariant()
	c := m.doc.Container(v.container)
	if c == nil {
		return
	}
	switch {
	case y == 1:
		m.doc.Focus(nav.InputTarget(m.doc.Input(v.inputID)))
		m.afterFocusChange()
		return
	case y < sidebarHeaderRows:
		return
	}
	e := entryAtRow(c, y-sidebarHeaderRows)
	if e == nil {
		return
	}
	m.keys.SetFocusedItem(e)
	if e.Kind == nav.KindHeader {
		nav.Toggle(e)
		m.keys.Repair()
	} else {
		m.activate(e)
	}
	m.afterFocusChange()
}

// entryAtRow maps a row within the visible window to its entry.
func entryAtRow(c *nav.Container, row int) *nav.Entry {
	if c.Empty.Visible || row < 0 {
		return nil
	}
	rows := c.Tree.Navigable()
	start, end := c.Viewport.Window(len(rows))
	idx := start + row
	if idx >= end {
		return nil
	}
	return rows[idx]
}

func (m *Model) scroll(down, sidebar bool) {
	if !sidebar {
		if down {
			m.body.LineDown(wheelStep)
		} else {
			m.body.LineUp(wheelStep)
		}
		return
	}
	c := m.doc.Container(m.activeVariant().container)
	if c == nil {
		return
	}
	total := len(c.Tree.Navigable())
	if down {
		c.Viewport.Offset += wheelStep
	} else {
		c.Viewport.Offset -= wheelStep
	}
	start, _ := c.Viewport.Window(total)
	c.Viewport.Offset = start
}
