package ui

import (
	"context"
	"testing"

	"github.com/atomicstack/docnav/internal/backend"
	"github.com/atomicstack/docnav/internal/docs"
	"github.com/atomicstack/docnav/internal/nav"
	"github.com/atomicstack/docnav/internal/prefs"
	"github.com/atomicstack/docnav/internal/resize"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

const testSite = `
name: Guide
pages:
  - id: home
    title: Home
sections:
  - title: Getting Started
    pages:
      - id: install
        title: Install
      - id: setup
        title: Setup
        badge: new
  - title: Reference
    pages:
      - id: api
        title: API
      - id: advanced-setup
        title: Advanced Setup
`

func parseTestSite(t *testing.T) *docs.Site {
	t.Helper()
	site, err := docs.ParseSite([]byte(testSite))
	require.NoError(t, err)
	return site
}

func newTestStore(t *testing.T) *prefs.DB {
	t.Helper()
	store, err := prefs.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, store *prefs.DB, width int) *Model {
	t.Helper()
	return NewModel(Options{
		Site:       parseTestSite(t),
		Store:      store,
		Style:      "ascii",
		Width:      width,
		Height:     30,
		ShowFooter: true,
	})
}

func focusedID(m *Model) string {
	f := m.Document().Focused()
	if f.Kind != nav.TargetEntry {
		return f.String()
	}
	return f.Entry.ID
}

func TestNewModelBootstrapsDesktopSidebar(t *testing.T) {
	m := newTestModel(t, newTestStore(t), 120)

	require.Equal(t, "home", m.Page().ID)
	require.Equal(t, containerDesktop, m.Keys().Container().Name)
	require.Equal(t, 1, m.disp.Len())
	require.NotNil(t, m.Document().Container(containerMobile))
	require.NotNil(t, m.Document().Input(searchDesktop))
	require.NotNil(t, m.Document().Input(searchMobile))

	cur := m.Keys().Current()
	require.NotNil(t, cur)
	require.Equal(t, "home", cur.ID)
	require.Equal(t, 0, cur.TabIndex)
	require.True(t, m.Resize().Attached())
}

func TestArrowFromContentRedirectsIntoSidebar(t *testing.T) {
	h := NewHarness(newTestModel(t, newTestStore(t), 120))

	h.Press(tea.KeyDown)
	require.Equal(t, "home", focusedID(h.Model()))

	h.Press(tea.KeyDown)
	require.Equal(t, "section:getting-started", focusedID(h.Model()))

	h.Press(tea.KeyRight)
	h.Press(tea.KeyDown)
	require.Equal(t, "install", focusedID(h.Model()))

	h.Press(tea.KeyLeft)
	require.Equal(t, "section:getting-started", focusedID(h.Model()))
	sec := h.Model().Keys().Container().Tree.Sections[0]
	require.False(t, sec.Expanded)
}

func TestSpaceOpensPageAndReinitialises(t *testing.T) {
	h := NewHarness(newTestModel(t, newTestStore(t), 120))

	h.Press(tea.KeyDown)
	h.Press(tea.KeyDown)
	h.Press(tea.KeyRight)
	h.Press(tea.KeyDown)
	require.Equal(t, "install", focusedID(h.Model()))

	h.Press(tea.KeySpace)
	m := h.Model()
	require.Equal(t, "install", m.Page().ID)
	require.False(t, m.loading)
	require.Equal(t, 1, m.disp.Len())

	cur := m.Keys().Current()
	require.NotNil(t, cur)
	require.Equal(t, "install", cur.ID)
	require.True(t, cur.Active)
	require.True(t, cur.Focused)
	require.Equal(t, "install", focusedID(m))
}

func TestEnterOnItemFollowsLink(t *testing.T) {
	h := NewHarness(newTestModel(t, newTestStore(t), 120))

	h.Press(tea.KeyEnd)
	require.Equal(t, "home", focusedID(h.Model()))
	h.Press(tea.KeyDown)
	h.Press(tea.KeyDown)
	require.Equal(t, "section:reference", focusedID(h.Model()))
	h.Press(tea.KeyEnter)
	require.True(t, h.Model().Keys().Container().Tree.Sections[1].Expanded)
	h.Press(tea.KeyDown)
	require.Equal(t, "api", focusedID(h.Model()))

	h.Press(tea.KeyEnter)
	require.Equal(t, "api", h.Model().Page().ID)
}

func TestSearchFiltersAndEscapeRestoresFocus(t *testing.T) {
	h := NewHarness(newTestModel(t, newTestStore(t), 120))

	h.Type("/")
	require.Equal(t, "input:"+searchDesktop, focusedID(h.Model()))

	h.Type("setup")
	m := h.Model()
	tree := m.Document().Container(containerDesktop).Tree
	var shown []string
	for _, it := range tree.Items() {
		if !it.Hidden {
			shown = append(shown, it.ID)
		}
	}
	require.Equal(t, []string{"setup", "advanced-setup"}, shown)
	require.Equal(t, "setup", m.Document().Input(searchDesktop).Value)

	setup := tree.Find("setup")
	require.Equal(t, []nav.Mark{{Node: 0, Start: 0, End: 5}}, setup.Marks)

	cur := m.Keys().Current()
	require.Equal(t, "section:getting-started", cur.ID)
	require.Equal(t, 0, cur.TabIndex)

	h.Press(tea.KeyEsc)
	require.Equal(t, "section:getting-started", focusedID(h.Model()))
}

func TestSearchWithoutMatchesShowsEmptyState(t *testing.T) {
	h := NewHarness(newTestModel(t, newTestStore(t), 120))

	h.Type("/zzz")
	c := h.Model().Document().Container(containerDesktop)
	require.True(t, c.Empty.Visible)
	require.Contains(t, h.View(), `No results for "zzz"`)

	for i := 0; i < 3; i++ {
		h.Press(tea.KeyBackspace)
	}
	require.False(t, c.Empty.Visible)
	for _, it := range c.Tree.Items() {
		require.False(t, it.Hidden)
		require.Empty(t, it.Marks)
	}
}

func TestDragResizesAndPersists(t *testing.T) {
	store := newTestStore(t)
	h := NewHarness(newTestModel(t, store, 120))
	handle := h.Model().Resize().HandleColumn()
	require.Equal(t, 30, handle)

	h.Send(tea.MouseMsg{X: handle, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, h.Model().Resize().Dragging())
	h.Send(tea.MouseMsg{X: handle + 10, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})

	g := h.Model().Resize().Grid()
	require.True(t, g.Inline)
	require.Equal(t, 40, g.Sidebar)
	require.Equal(t, resize.TransitionShort, g.Transition)

	h.Send(tea.MouseMsg{X: handle + 10, Y: 5, Action: tea.MouseActionRelease})
	require.False(t, h.Model().Resize().Dragging())
	require.Equal(t, resize.TransitionNone, h.Model().Resize().Grid().Transition)

	stored, ok := prefs.Int(context.Background(), store, prefs.SidebarWidthKey)
	require.True(t, ok)
	require.Equal(t, 40, stored)
	require.Equal(t, 40, h.Model().columns().sidebar)
}

func TestStoredWidthRestoredWithoutTransition(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, prefs.SetInt(context.Background(), store, prefs.SidebarWidthKey, 44))

	m := newTestModel(t, store, 120)
	g := m.Resize().Grid()
	require.True(t, g.Inline)
	require.Equal(t, 44, g.Sidebar)
	require.Equal(t, resize.TransitionSuppressed, g.Transition)
	require.NotNil(t, m.Init())

	h := NewHarness(m)
	h.Send(frameMsg{})
	require.Equal(t, resize.TransitionNone, h.Model().Resize().Grid().Transition)
}

func TestStoredWidthOutOfBoundsIgnored(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, prefs.SetInt(context.Background(), store, prefs.SidebarWidthKey, 80))

	m := newTestModel(t, store, 120)
	require.False(t, m.Resize().Grid().Inline)
	require.Equal(t, 30, m.columns().sidebar)
}

func TestNarrowLayoutUsesMobileSidebar(t *testing.T) {
	h := NewHarness(newTestModel(t, newTestStore(t), 80))
	m := h.Model()
	require.Equal(t, containerMobile, m.Keys().Container().Name)
	require.False(t, m.drawerOpen)
	require.Equal(t, 0, m.columns().sidebar)

	h.Press(tea.KeyDown)
	require.True(t, h.Model().drawerOpen)
	require.Equal(t, "home", focusedID(h.Model()))
	require.Equal(t, 80, h.Model().columns().sidebar)

	h.Press(tea.KeyEsc)
	require.False(t, h.Model().drawerOpen)
	require.Equal(t, "elsewhere", focusedID(h.Model()))
}

func TestWindowResizeSwitchesLayoutAfterDebounce(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, prefs.SetInt(context.Background(), store, prefs.SidebarWidthKey, 36))
	h := NewHarness(newTestModel(t, store, 0))
	require.False(t, h.Model().Resize().Attached())

	h.Send(tea.WindowSizeMsg{Width: 120, Height: 30})
	m := h.Model()
	require.True(t, m.Resize().Attached())
	require.True(t, m.Resize().Desktop())
	require.Equal(t, 36, m.Resize().Grid().Sidebar)
	require.Equal(t, containerDesktop, m.Keys().Container().Name)

	h.Send(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = h.Model()
	require.False(t, m.Resize().Desktop())
	require.False(t, m.Resize().Grid().Inline)
	require.Equal(t, containerMobile, m.Keys().Container().Name)
	require.Equal(t, 1, m.disp.Len())
}

func TestStaleViewportSettleIgnored(t *testing.T) {
	m := newTestModel(t, newTestStore(t), 0)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	first := m.resize.Viewport(120)
	second := m.resize.Viewport(90)

	m.Update(viewportSettledMsg{seq: first})
	require.True(t, m.Resize().Desktop())
	m.Update(viewportSettledMsg{seq: second})
	require.False(t, m.Resize().Desktop())
}

func TestClickHeaderTogglesAndItemNavigates(t *testing.T) {
	h := NewHarness(newTestModel(t, newTestStore(t), 120))

	// rows: title, search, home, getting started
	h.Send(tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m := h.Model()
	require.True(t, m.Keys().Container().Tree.Sections[0].Expanded)
	require.Equal(t, "section:getting-started", focusedID(m))

	h.Send(tea.MouseMsg{X: 4, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, "install", h.Model().Page().ID)

	h.Send(tea.MouseMsg{X: 60, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, "elsewhere", focusedID(h.Model()))
}

func TestSiteReloadRebuildsSidebars(t *testing.T) {
	h := NewHarness(newTestModel(t, newTestStore(t), 120))
	before := h.Model().Document().Container(containerDesktop).Tree

	reloaded := parseTestSite(t)
	reloaded.Name = "Guide v2"
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindSite, Site: reloaded}})

	m := h.Model()
	require.Equal(t, "home", m.Page().ID)
	require.Equal(t, "Guide v2", m.Site().Name)
	require.NotSame(t, before, m.Document().Container(containerDesktop).Tree)
	require.Equal(t, 1, m.disp.Len())
	require.Contains(t, h.View(), "Guide v2")
}

func TestUnknownInitialPageReportsError(t *testing.T) {
	m := NewModel(Options{Site: parseTestSite(t), Page: "missing", Style: "ascii", Width: 120, Height: 20})
	require.Contains(t, m.errMsg, "missing")
	require.NotNil(t, m.Keys().Container())
}
