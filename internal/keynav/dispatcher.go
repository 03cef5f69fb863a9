// Package keynav implements roving-cursor keyboard navigation over the
// sidebar: a single document-level key listener that routes each key by the
// current focus holder and keeps exactly one entry reachable.
package keynav

import "github.com/atomicstack/docnav/internal/nav"

// Key is a logical key, independent of the terminal encoding.
type Key string

const (
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	KeyLeft   Key = "left"
	KeyRight  Key = "right"
	KeyHome   Key = "home"
	KeyEnd    Key = "end"
	KeySpace  Key = "space"
	KeyEnter  Key = "enter"
	KeyEscape Key = "esc"
	KeySlash  Key = "/"
)

func (k Key) navigation() bool {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeyHome, KeyEnd:
		return true
	}
	return false
}

// Event is a key press delivered to the focus holder Target.
type Event struct {
	Key    Key
	Target nav.Target
}

// Listener handles an event; returning true suppresses the default action.
type Listener func(Event) bool

type ListenerID int

type registration struct {
	id ListenerID
	fn Listener
}

// Dispatcher is the document-level key listener list. Listeners run in
// registration order.
type Dispatcher struct {
	next      ListenerID
	listeners []registration
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Add registers fn and returns its handle.
func (d *Dispatcher) Add(fn Listener) ListenerID {
	d.next++
	d.listeners = append(d.listeners, registration{id: d.next, fn: fn})
	return d.next
}

// Remove unregisters id. Unknown ids are ignored.
func (d *Dispatcher) Remove(id ListenerID) {
	for i, r := range d.listeners {
		if r.id == id {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered listeners.
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}

// Dispatch delivers ev to every listener and reports whether any handled it.
func (d *Dispatcher) Dispatch(ev Event) bool {
	handled := false
	for _, r := range append([]registration(nil), d.listeners...) {
		if r.fn(ev) {
			handled = true
		}
	}
	return handled
}
