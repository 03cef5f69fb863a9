package command

import (
	"fmt"

	"github.com/atomicstack/docnav/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates one asynchronous piece of work, such as loading a page.
type Request struct {
	ID      string
	Label   string
	Handler func() tea.Msg
}

// Bus runs requests off the update loop and traces each one.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		msg := req.Handler()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
