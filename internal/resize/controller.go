package resize

import (
	"context"

	"github.com/atomicstack/docnav/internal/logging/events"
	"github.com/atomicstack/docnav/internal/prefs"
)

// DefaultBreakpoint is the narrowest terminal, in cells, that gets the
// desktop layout.
const DefaultBreakpoint = 100

// Options configures a Controller.
type Options struct {
	Vars       Vars
	Breakpoint int
	Store      prefs.Store
}

type dragState struct {
	startX     int
	startWidth int
}

// Controller owns the desktop sidebar width.
type Controller struct {
	vars       Vars
	breakpoint int
	store      prefs.Store

	attached bool
	width    int
	grid     Grid
	viewport int
	pending  int
	seq      int
	drag     *dragState
}

func New(opts Options) *Controller {
	vars := opts.Vars
	if vars == nil {
		vars = DefaultVars()
	}
	bp := opts.Breakpoint
	if bp <= 0 {
		bp = DefaultBreakpoint
	}
	return &Controller{vars: vars, breakpoint: bp, store: opts.Store}
}

// Attach wires the panel for viewportWidth. Only the first call after New or
// Reset does anything; it restores the stored width on desktop layouts.
func (c *Controller) Attach(ctx context.Context, viewportWidth int) bool {
	if c.attached {
		return false
	}
	c.attached = true
	c.viewport = viewportWidth
	c.pending = viewportWidth
	if !c.Desktop() {
		return true
	}
	stored, ok := prefs.Int(ctx, c.store, prefs.SidebarWidthKey)
	if !ok {
		return true
	}
	min, max, ok := c.vars.Bounds()
	if !ok || stored < min || stored > max {
		return true
	}
	c.width = stored
	c.applyGrid(TransitionSuppressed)
	events.Resize.Restore(stored)
	return true
}

// Attached reports whether Attach has run since the last Reset.
func (c *Controller) Attached() bool {
	return c.attached
}

// Reset clears the attach guard so the next page can attach again.
func (c *Controller) Reset() {
	c.attached = false
	c.drag = nil
}

// Breakpoint returns the desktop threshold.
func (c *Controller) Breakpoint() int {
	return c.breakpoint
}

// Desktop reports whether the committed viewport uses the desktop layout.
func (c *Controller) Desktop() bool {
	return c.viewport >= c.breakpoint
}

// Width is the sidebar width: the dragged or restored value, else the
// stylesheet default.
func (c *Controller) Width() int {
	if c.width > 0 {
		return c.width
	}
	return c.DefaultWidth()
}

// DefaultWidth is the stylesheet sidebar width, falling back to the minimum
// bound.
func (c *Controller) DefaultWidth() int {
	if w, ok := c.vars.Length(VarSidebarWidth); ok {
		return w
	}
	if min, _, ok := c.vars.Bounds(); ok {
		return min
	}
	return 0
}

// TOCWidth is the table-of-contents column width, zero when undeclared.
func (c *Controller) TOCWidth() int {
	w, _ := c.vars.Length(VarTOCWidth)
	return w
}

// Grid returns the current inline override.
func (c *Controller) Grid() Grid {
	return c.grid
}

// HandleColumn is the x offset of the resize handle, the column immediately
// right of the sidebar.
func (c *Controller) HandleColumn() int {
	return c.Width()
}

// BeginDrag starts a drag when x hits the handle on a desktop layout.
func (c *Controller) BeginDrag(x int) bool {
	if !c.attached || !c.Desktop() || x != c.HandleColumn() {
		return false
	}
	c.drag = &dragState{startX: x, startWidth: c.Width()}
	return true
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.drag != nil
}

// DragTo resizes to follow the pointer at x, clamped to the bounds. Nothing
// changes when the bounds cannot be read.
func (c *Controller) DragTo(x int) bool {
	if c.drag == nil {
		return false
	}
	min, max, ok := c.vars.Bounds()
	if !ok {
		return false
	}
	w := c.drag.startWidth + (x - c.drag.startX)
	if w < min {
		w = min
	}
	if w > max {
		w = max
	}
	if w == c.width && c.grid.Inline {
		return false
	}
	c.width = w
	c.applyGrid(TransitionShort)
	events.Resize.Drag(w)
	return true
}

// EndDrag finishes a drag and persists the final width.
func (c *Controller) EndDrag(ctx context.Context) error {
	if c.drag == nil {
		return nil
	}
	c.drag = nil
	c.grid.Transition = TransitionNone
	if c.width <= 0 {
		return nil
	}
	err := prefs.SetInt(ctx, c.store, prefs.SidebarWidthKey, c.width)
	events.Resize.Persist(c.width, err)
	return err
}

// FrameDone re-enables transitions one rendered frame after a restore.
func (c *Controller) FrameDone() {
	if c.grid.Transition == TransitionSuppressed {
		c.grid.Transition = TransitionNone
	}
}

// Viewport records a new terminal width and returns the sequence the caller
// passes to ApplyViewport once the resize burst settles.
func (c *Controller) Viewport(width int) int {
	c.pending = width
	c.seq++
	return c.seq
}

// ApplyViewport commits the pending width unless a newer Viewport call
// superseded seq. Below the breakpoint the inline override is cleared so the
// responsive layout takes over; above it the override is reapplied.
func (c *Controller) ApplyViewport(seq int) bool {
	if seq != c.seq {
		return false
	}
	c.viewport = c.pending
	if !c.Desktop() {
		c.drag = nil
		c.grid = Grid{}
	} else if c.width > 0 {
		c.applyGrid(c.grid.Transition)
	}
	events.Resize.Viewport(c.viewport, c.grid.Inline)
	return true
}

func (c *Controller) applyGrid(t Transition) {
	c.grid = Grid{
		Sidebar:    c.width,
		TOC:        c.TOCWidth(),
		Inline:     true,
		Transition: t,
	}
}
