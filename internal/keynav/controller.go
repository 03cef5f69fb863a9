package keynav

import (
	"github.com/atomicstack/docnav/internal/logging/events"
	"github.com/atomicstack/docnav/internal/nav"
)

// Hooks connect the controller to the page.
type Hooks struct {
	// Activate follows a page link.
	Activate func(*nav.Entry)
}

// Controller owns the roving cursor for one page instance. Init and Dispose
// bracket each page; Init always disposes first so at most one listener is
// ever installed.
type Controller struct {
	doc   *nav.Document
	disp  *Dispatcher
	hooks Hooks

	container *nav.Container
	input     *nav.Input
	listener  ListenerID
	installed bool
	current   *nav.Entry
}

func New(doc *nav.Document, disp *Dispatcher, hooks Hooks) *Controller {
	return &Controller{doc: doc, disp: disp, hooks: hooks}
}

// Init binds the controller to the named container and search input. It
// reports false when the container does not exist.
func (c *Controller) Init(container, inputID string) bool {
	c.Dispose()
	cont := c.doc.Container(container)
	if cont == nil || cont.Tree == nil {
		return false
	}
	c.container = cont
	c.input = c.doc.Input(inputID)

	for _, e := range cont.Tree.Entries() {
		e.TabIndex = -1
		e.Focused = false
	}
	if start := c.preferred(); start != nil {
		start.TabIndex = 0
		c.current = start
	}
	if c.current != nil && c.focusedHere(c.current) {
		c.current.Focused = true
	}

	c.doc.SetBlurHandler(c.handleBlur)
	c.listener = c.disp.Add(c.HandleKey)
	c.installed = true
	events.Nav.Init(cont.Name, len(cont.Tree.Visible()), entryID(c.current))
	return true
}

// Dispose removes the key listener and clears the cursor.
func (c *Controller) Dispose() {
	if !c.installed {
		return
	}
	c.disp.Remove(c.listener)
	c.doc.SetBlurHandler(nil)
	if c.current != nil {
		c.current.TabIndex = -1
		c.current.Focused = false
	}
	events.Nav.Dispose(c.container.Name)
	c.installed = false
	c.listener = 0
	c.current = nil
	c.container = nil
	c.input = nil
}

// Current returns the entry holding the roving cursor.
func (c *Controller) Current() *nav.Entry {
	return c.current
}

// Container returns the container the controller is bound to.
func (c *Controller) Container() *nav.Container {
	return c.container
}

// SetFocusedItem is the single place the cursor moves. It is a no-op beyond
// re-focusing when e already holds the cursor.
func (c *Controller) SetFocusedItem(e *nav.Entry) {
	if e == nil || c.container == nil || e.Tree() != c.container.Tree {
		return
	}
	if prev := c.current; prev != nil && prev != e {
		prev.TabIndex = -1
		prev.Focused = false
	}
	e.TabIndex = 0
	e.Focused = true
	c.current = e
	c.doc.Focus(nav.EntryTarget(e))
	c.reveal(e)
	events.Nav.Focus(c.container.Name, e.ID)
}

// Repair keeps the cursor on a navigable entry after search or collapse
// changed visibility. Focus follows the cursor only if it was on it.
func (c *Controller) Repair() {
	if c.container == nil {
		return
	}
	if c.current != nil && c.current.Visible() {
		c.current.TabIndex = 0
		c.reveal(c.current)
		return
	}
	next := c.preferred()
	if next == nil {
		next = first(c.container.Tree.Navigable())
	}
	if next == nil {
		// nothing is reachable; current stays as the position to come back to
		if c.current != nil {
			c.current.TabIndex = -1
		}
		return
	}
	hadFocus := c.focusedHere(c.current)
	if hadFocus {
		c.SetFocusedItem(next)
		return
	}
	if c.current != nil {
		c.current.TabIndex = -1
		c.current.Focused = false
	}
	next.TabIndex = 0
	c.current = next
	c.reveal(next)
}

// HandleKey is the document-level listener.
func (c *Controller) HandleKey(ev Event) bool {
	if c.container == nil {
		return false
	}
	handled := c.route(ev)
	events.Nav.Key(string(ev.Key), ev.Target.String(), handled)
	return handled
}

func (c *Controller) route(ev Event) bool {
	t := ev.Target
	if ev.Key == KeySlash {
		if t.Kind == nav.TargetInput || c.input == nil {
			return false
		}
		c.doc.Focus(nav.InputTarget(c.input))
		return true
	}
	switch {
	case t.Kind == nav.TargetInput:
		if ev.Key == KeyEscape && t.Input == c.input {
			c.restoreFocus()
			return true
		}
		return false
	case t.Kind == nav.TargetEntry && t.Entry.Tree() == c.container.Tree:
		if t.Entry.Kind == nav.KindHeader {
			return c.onHeader(t.Entry, ev.Key)
		}
		return c.onItem(t.Entry, ev.Key)
	default:
		if !ev.Key.navigation() {
			return false
		}
		c.SetFocusedItem(c.redirectTarget())
		return true
	}
}

func (c *Controller) onHeader(h *nav.Entry, key Key) bool {
	tree := c.container.Tree
	sec := h.Section
	switch key {
	case KeyRight:
		nav.Expand(h)
		c.Repair()
	case KeyLeft:
		nav.Collapse(h)
		c.Repair()
	case KeyDown:
		if sec.Expanded {
			if it := firstVisibleIn(sec); it != nil {
				c.SetFocusedItem(it)
				return true
			}
		}
		c.SetFocusedItem(after(tree.Headers(), h))
	case KeyUp:
		if prev := before(tree.Headers(), h); prev != nil {
			c.SetFocusedItem(prev)
		} else {
			c.SetFocusedItem(lastVisibleStatic(tree))
		}
	case KeyHome:
		c.SetFocusedItem(first(tree.Visible()))
	case KeyEnd:
		c.SetFocusedItem(last(tree.Visible()))
	case KeyEnter, KeySpace:
		nav.Toggle(h)
		c.Repair()
	default:
		return false
	}
	return true
}

func (c *Controller) onItem(it *nav.Entry, key Key) bool {
	tree := c.container.Tree
	switch key {
	case KeyDown:
		c.SetFocusedItem(after(tree.Navigable(), it))
	case KeyUp:
		c.SetFocusedItem(before(tree.Navigable(), it))
	case KeyLeft:
		if it.Section == nil {
			return false
		}
		nav.Collapse(it)
		c.SetFocusedItem(it.Section.Header)
	case KeyRight:
		if it.Section == nil {
			return false
		}
		nav.Expand(it)
	case KeyHome:
		c.SetFocusedItem(first(tree.Visible()))
	case KeyEnd:
		c.SetFocusedItem(last(tree.Visible()))
	case KeySpace:
		if c.hooks.Activate != nil {
			c.hooks.Activate(it)
		}
	default:
		return false
	}
	return true
}

// restoreFocus returns focus from the search input to the remembered cursor.
func (c *Controller) restoreFocus() {
	if c.current != nil && c.current.Visible() {
		c.SetFocusedItem(c.current)
		return
	}
	c.doc.Focus(nav.Elsewhere)
}

// redirectTarget picks where focus lands when a navigation key arrives from
// outside the sidebar: the active page, the remembered cursor, then the
// first visible item.
func (c *Controller) redirectTarget() *nav.Entry {
	tree := c.container.Tree
	if a := tree.Active(); a != nil && a.Visible() {
		return a
	}
	if c.current != nil && c.current.Visible() {
		return c.current
	}
	if v := first(tree.Visible()); v != nil {
		return v
	}
	return first(tree.Navigable())
}

// preferred is the initial cursor: the active page when visible, else the
// first visible item.
func (c *Controller) preferred() *nav.Entry {
	tree := c.container.Tree
	if a := tree.Active(); a != nil && a.Visible() {
		return a
	}
	return first(tree.Visible())
}

func (c *Controller) handleBlur(from, to nav.Target) {
	if from.Kind != nav.TargetEntry {
		return
	}
	if to.Kind == nav.TargetEntry && to.Entry.Tree() == from.Entry.Tree() {
		return
	}
	from.Entry.Focused = false
}

func (c *Controller) focusedHere(e *nav.Entry) bool {
	if e == nil {
		return false
	}
	f := c.doc.Focused()
	return f.Kind == nav.TargetEntry && f.Entry == e
}

func (c *Controller) reveal(e *nav.Entry) {
	tree := c.container.Tree
	c.container.Viewport.Reveal(tree.Row(e), len(tree.Navigable()))
}

func firstVisibleIn(sec *nav.Section) *nav.Entry {
	for _, it := range sec.Items {
		if it.Visible() {
			return it
		}
	}
	return nil
}

func lastVisibleStatic(tree *nav.Tree) *nav.Entry {
	for i := len(tree.Static) - 1; i >= 0; i-- {
		if tree.Static[i].Visible() {
			return tree.Static[i]
		}
	}
	return nil
}

func first(entries []*nav.Entry) *nav.Entry {
	if len(entries) == 0 {
		return nil
	}
	return entries[0]
}

func last(entries []*nav.Entry) *nav.Entry {
	if len(entries) == 0 {
		return nil
	}
	return entries[len(entries)-1]
}

func after(entries []*nav.Entry, e *nav.Entry) *nav.Entry {
	for i, x := range entries {
		if x == e && i+1 < len(entries) {
			return entries[i+1]
		}
	}
	return nil
}

func before(entries []*nav.Entry, e *nav.Entry) *nav.Entry {
	for i, x := range entries {
		if x == e && i > 0 {
			return entries[i-1]
		}
	}
	return nil
}

func entryID(e *nav.Entry) string {
	if e == nil {
		return ""
	}
	return e.ID
}
