package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/docnav/internal/backend"
	"github.com/atomicstack/docnav/internal/docs"
	"github.com/atomicstack/docnav/internal/keynav"
	"github.com/atomicstack/docnav/internal/nav"
	"github.com/atomicstack/docnav/internal/prefs"
	"github.com/atomicstack/docnav/internal/resize"
	"github.com/atomicstack/docnav/internal/search"
	"github.com/atomicstack/docnav/internal/theme"
	"github.com/atomicstack/docnav/internal/ui/command"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Sidebar variants. Both are built for every page; only the one matching the
// current layout takes keyboard navigation.
const (
	containerDesktop = "desktop"
	containerMobile  = "mobile"

	searchDesktop = "desktop-search"
	searchMobile  = "mobile-search"
)

const (
	viewportDebounce = 100 * time.Millisecond
	frameInterval    = time.Second / 60
	infoTTL          = 3 * time.Second
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Site       *docs.Site
	Page       string
	Store      prefs.Store
	Vars       resize.Vars
	Breakpoint int
	Style      string
	Width      int
	Height     int
	ShowFooter bool
	Watcher    *backend.Watcher
}

// variant is one sidebar instance: its container name, search input id and
// the text field backing that input.
type variant struct {
	container string
	inputID   string
	input     textinput.Model
	filter    *search.Filter
}

// Model implements the Bubble Tea model for the documentation browser.
type Model struct {
	site     *docs.Site
	page     docs.Page
	source   []byte
	headings []docs.Heading
	style    string
	renderer *docs.Renderer
	body     viewport.Model

	doc      *nav.Document
	disp     *keynav.Dispatcher
	keys     *keynav.Controller
	resize   *resize.Controller
	variants []*variant
	store    prefs.Store
	keymap   keyMap

	loading     bool
	refocusNav  bool
	drawerOpen  bool
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	backend     *backend.Watcher
	backendErr  string

	pending  []tea.Cmd
	handlers map[reflect.Type]msgHandler
	bus      *command.Bus
}

// NewModel builds the UI for site, opening opts.Page or the first page.
func NewModel(opts Options) *Model {
	m := &Model{
		site:       opts.Site,
		style:      opts.Style,
		doc:        nav.NewDocument(),
		disp:       keynav.NewDispatcher(),
		store:      opts.Store,
		keymap:     defaultKeyMap(),
		showFooter: opts.ShowFooter,
		backend:    opts.Watcher,
		bus:        command.New(),
		body:       viewport.New(0, 0),
	}
	m.resize = resize.New(resize.Options{Vars: opts.Vars, Breakpoint: opts.Breakpoint, Store: opts.Store})
	m.keys = keynav.New(m.doc, m.disp, keynav.Hooks{Activate: m.activate})
	m.variants = []*variant{
		newVariant(containerDesktop, searchDesktop),
		newVariant(containerMobile, searchMobile),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.openInitialPage(opts.Page)
	m.registerHandlers()
	return m
}

func newVariant(container, inputID string) *variant {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search"
	ti.CharLimit = 128
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		ti.TextStyle = *styles.Filter
	}
	if styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = *styles.FilterPlaceholder
	}
	return &variant{container: container, inputID: inputID, input: ti}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if m.resize.Grid().Transition == resize.TransitionSuppressed {
		cmds = append(cmds, frameCmd())
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):       m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(viewportSettledMsg{}): m.handleViewportSettledMsg,
		reflect.TypeOf(frameMsg{}):           m.handleFrameMsg,
		reflect.TypeOf(pageTransitionMsg{}):  m.handlePageTransitionMsg,
		reflect.TypeOf(pageLoadedMsg{}):      m.handlePageLoadedMsg,
		reflect.TypeOf(backendEventMsg{}):    m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):     m.handleBackendDoneMsg,
		reflect.TypeOf(clipboardResultMsg{}): m.handleClipboardResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate collects commands queued by controller hooks during the update.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(m.pending) > 0 {
		cmds = append(cmds, m.pending...)
		m.pending = nil
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// variantFor returns the sidebar variant named container.
func (m *Model) variantFor(container string) *variant {
	for _, v := range m.variants {
		if v.container == container {
			return v
		}
	}
	return nil
}

// activeVariant is the sidebar matching the current layout.
func (m *Model) activeVariant() *variant {
	if m.desktopLayout() {
		return m.variantFor(containerDesktop)
	}
	return m.variantFor(containerMobile)
}

func (m *Model) desktopLayout() bool {
	return m.width >= m.resize.Breakpoint()
}

func (m *Model) setInfo(msg string) {
	m.infoMsg = msg
	m.infoExpire = time.Now().Add(infoTTL)
}

func (m *Model) currentInfo() string {
	if m.infoMsg == "" {
		return ""
	}
	if time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		return ""
	}
	return m.infoMsg
}

func (m *Model) ctx() context.Context {
	return context.Background()
}

// Site exposes the loaded site.
func (m *Model) Site() *docs.Site {
	return m.site
}

// Page returns the page currently shown.
func (m *Model) Page() docs.Page {
	return m.page
}

// Document exposes the sidebar view model.
func (m *Model) Document() *nav.Document {
	return m.doc
}

// Keys exposes the keyboard controller.
func (m *Model) Keys() *keynav.Controller {
	return m.keys
}

// Resize exposes the sidebar width controller.
func (m *Model) Resize() *resize.Controller {
	return m.resize
}
