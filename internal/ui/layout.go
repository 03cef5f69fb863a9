package ui

import (
	"github.com/atomicstack/docnav/internal/docs"
	"github.com/atomicstack/docnav/internal/logging"
	"github.com/atomicstack/docnav/internal/nav"
	"github.com/atomicstack/docnav/internal/resize"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// sidebarHeaderRows are the site title and the search field above the
	// entry list.
	sidebarHeaderRows = 2
	handleWidth       = 1
	contentPadding    = 2
)

// columns is the horizontal split of one frame.
type columns struct {
	sidebar int
	handle  int
	content int
	toc     int
}

// columns computes the frame split. The desktop layout shows sidebar, handle,
// content and toc; the mobile layout shows either the drawer or the content.
func (m *Model) columns() columns {
	if !m.desktopLayout() {
		if m.drawerOpen {
			return columns{sidebar: m.width}
		}
		return columns{content: m.width}
	}
	sw, tw := m.resize.DefaultWidth(), m.resize.TOCWidth()
	if g := m.resize.Grid(); g.Inline {
		sw, tw = g.Sidebar, g.TOC
	}
	s, c, t := resize.Columns(m.width-handleWidth, sw, tw)
	return columns{sidebar: s, handle: handleWidth, content: c, toc: t}
}

// bodyHeight is the number of rows above the status and footer lines.
func (m *Model) bodyHeight() int {
	h := m.height - 1
	if m.showFooter {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

// layoutSidebars sizes each sidebar list and search field to the frame.
func (m *Model) layoutSidebars() {
	rows := m.bodyHeight() - sidebarHeaderRows
	if rows < 1 {
		rows = 1
	}
	cols := m.columns()
	for _, v := range m.variants {
		if c := m.doc.Container(v.container); c != nil {
			c.Viewport.Height = rows
		}
		w := cols.sidebar - len([]rune(v.input.Prompt)) - 1
		if w < 1 {
			w = 1
		}
		v.input.Width = w
	}
	m.body.Height = m.bodyHeight()
	m.body.Width = cols.content
}

// renderContent renders the page markdown for the current content width.
func (m *Model) renderContent() {
	width := m.columns().content - contentPadding
	if m.width <= 0 || width < 1 {
		width = 80
	}
	var (
		r   *docs.Renderer
		err error
	)
	if m.renderer == nil {
		r, err = docs.NewRenderer(m.style, width)
	} else {
		r, err = m.renderer.Resize(width)
	}
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		m.body.SetContent(string(m.source))
		return
	}
	m.renderer = r
	out, err := r.Render(m.source)
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		out = string(m.source)
	}
	m.body.SetContent(out)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	wasDesktop := m.desktopLayout()
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.layoutSidebars()
	cmds := []tea.Cmd{}
	if cmd := m.attachResize(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if wasDesktop != m.desktopLayout() {
		m.switchVariant()
	}
	cmds = append(cmds, settleCmd(m.resize.Viewport(m.width)))
	return tea.Batch(cmds...)
}

func (m *Model) handleViewportSettledMsg(msg tea.Msg) tea.Cmd {
	settled, ok := msg.(viewportSettledMsg)
	if !ok {
		return nil
	}
	if !m.resize.ApplyViewport(settled.seq) {
		return nil
	}
	m.layoutSidebars()
	m.renderContent()
	return nil
}

// switchVariant moves keyboard navigation to the sidebar matching the new
// layout, carrying focus over when it was inside the sidebar.
func (m *Model) switchVariant() {
	v := m.activeVariant()
	if v == nil {
		return
	}
	hadFocus := m.doc.Focused().Kind != nav.TargetElsewhere
	m.doc.Focus(nav.Elsewhere)
	m.keys.Init(v.container, v.inputID)
	if hadFocus && m.desktopLayout() {
		if cur := m.keys.Current(); cur != nil {
			m.keys.SetFocusedItem(cur)
		}
	}
}
