package ui

import (
	"github.com/atomicstack/docnav/internal/backend"
	"github.com/atomicstack/docnav/internal/logging"
	"github.com/atomicstack/docnav/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent swaps in a reloaded site and re-runs the page transition
// so every sidebar is rebuilt from fresh entries. The current page stays open
// unless it was removed.
func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	if evt.Err != nil {
		logging.Error(evt.Err)
		m.backendErr = evt.Err.Error()
		return nil
	}
	m.backendErr = ""
	if evt.Site == nil {
		return nil
	}
	m.site = evt.Site
	to := m.page.ID
	if _, ok := m.site.Find(to); !ok {
		to = ""
	}
	events.Page.Reload("site changed")
	return navigateCmd(to, "reload")
}
