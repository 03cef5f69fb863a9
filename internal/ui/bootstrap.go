package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/docnav/internal/docs"
	"github.com/atomicstack/docnav/internal/logging"
	"github.com/atomicstack/docnav/internal/logging/events"
	"github.com/atomicstack/docnav/internal/nav"
	"github.com/atomicstack/docnav/internal/resize"
	"github.com/atomicstack/docnav/internal/search"
	"github.com/atomicstack/docnav/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoSite = errors.New("no site loaded")

// pageTransitionMsg announces that the page content is about to be swapped.
// Every sidebar controller is torn down before the new page loads.
type pageTransitionMsg struct {
	to     string
	reason string
}

// pageLoadedMsg carries the new page once its source has been read.
type pageLoadedMsg struct {
	site   *docs.Site
	page   docs.Page
	source []byte
	err    error
}

// viewportSettledMsg fires once a burst of terminal resizes has been quiet
// for viewportDebounce.
type viewportSettledMsg struct {
	seq int
}

// frameMsg marks that one frame has been rendered since a restore.
type frameMsg struct{}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(_ time.Time) tea.Msg { return frameMsg{} })
}

func settleCmd(seq int) tea.Cmd {
	return tea.Tick(viewportDebounce, func(_ time.Time) tea.Msg { return viewportSettledMsg{seq: seq} })
}

func navigateCmd(to, reason string) tea.Cmd {
	return func() tea.Msg { return pageTransitionMsg{to: to, reason: reason} }
}

// openInitialPage loads the starting page synchronously so the first frame
// already shows content and an initialised sidebar.
func (m *Model) openInitialPage(id string) {
	msg := loadPage(m.site, id)
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		logging.Error(msg.err)
	} else {
		m.showPage(msg)
	}
	m.bootstrap()
}

// loadPage resolves id (or the first page when empty) and reads its source.
func loadPage(site *docs.Site, id string) pageLoadedMsg {
	if site == nil {
		return pageLoadedMsg{err: errNoSite}
	}
	var (
		page docs.Page
		ok   bool
	)
	if id == "" {
		page, ok = site.First()
	} else {
		page, ok = site.Find(id)
	}
	if !ok {
		return pageLoadedMsg{site: site, err: fmt.Errorf("open %q: %w", id, docs.ErrPageNotFound)}
	}
	src, err := site.ReadPage(page.ID)
	if err != nil {
		return pageLoadedMsg{site: site, page: page, err: err}
	}
	return pageLoadedMsg{site: site, page: page, source: src}
}

func (m *Model) showPage(msg pageLoadedMsg) {
	if msg.site != nil {
		m.site = msg.site
	}
	m.page = msg.page
	m.source = msg.source
	m.headings = docs.Headings(msg.source)
	m.renderContent()
	m.body.GotoTop()
}

// bootstrap builds both sidebar variants for the current page and wires
// their controllers. It runs once per page.
func (m *Model) bootstrap() tea.Cmd {
	for _, v := range m.variants {
		tree := nav.Build(m.site, m.page.ID)
		m.doc.AddContainer(v.container, tree)
		m.doc.AddInput(v.inputID)
		v.input.SetValue("")
		v.filter = search.Attach(m.doc, v.inputID, v.container)
		v.filter.Apply("")
	}
	m.layoutSidebars()
	cmd := m.attachResize()
	if v := m.activeVariant(); v != nil {
		m.keys.Init(v.container, v.inputID)
	}
	return cmd
}

// attachResize wires the desktop panel once the terminal width is known and
// schedules the frame that re-enables transitions after a restore.
func (m *Model) attachResize() tea.Cmd {
	if m.width <= 0 || m.resize.Attached() {
		return nil
	}
	m.resize.Attach(m.ctx(), m.width)
	if m.resize.Grid().Transition == resize.TransitionSuppressed {
		m.renderContent()
		return frameCmd()
	}
	return nil
}

// activate follows a page link from the keyboard controller.
func (m *Model) activate(e *nav.Entry) {
	if e == nil || e.Href == "" {
		return
	}
	m.pending = append(m.pending, navigateCmd(e.Href, "link"))
}

func (m *Model) handlePageTransitionMsg(msg tea.Msg) tea.Cmd {
	tr, ok := msg.(pageTransitionMsg)
	if !ok {
		return nil
	}
	events.Page.Transition(m.page.ID, tr.to)
	m.refocusNav = m.doc.Focused().Kind == nav.TargetEntry
	m.resize.Reset()
	m.keys.Dispose()
	m.loading = true
	m.errMsg = ""
	site := m.site
	to := tr.to
	return m.bus.Execute(command.Request{
		ID:    "page:" + to,
		Label: tr.reason,
		Handler: func() tea.Msg {
			return loadPage(site, to)
		},
	})
}

func (m *Model) handlePageLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(pageLoadedMsg)
	if !ok {
		return nil
	}
	m.loading = false
	if loaded.err != nil {
		logging.Error(loaded.err)
		m.errMsg = loaded.err.Error()
		if loaded.site != nil {
			m.site = loaded.site
		}
	} else {
		m.showPage(loaded)
		if !m.desktopLayout() {
			m.drawerOpen = false
		}
	}
	cmd := m.bootstrap()
	if m.refocusNav {
		m.refocusNav = false
		if cur := m.keys.Current(); cur != nil && (m.desktopLayout() || m.drawerOpen) {
			m.keys.SetFocusedItem(cur)
		}
	}
	return cmd
}

func (m *Model) handleFrameMsg(tea.Msg) tea.Cmd {
	m.resize.FrameDone()
	return nil
}
