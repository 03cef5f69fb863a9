package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/docnav/internal/backend"
	"github.com/atomicstack/docnav/internal/docs"
	"github.com/atomicstack/docnav/internal/logging"
	"github.com/atomicstack/docnav/internal/logging/events"
	"github.com/atomicstack/docnav/internal/prefs"
	"github.com/atomicstack/docnav/internal/resize"
	"github.com/atomicstack/docnav/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	SitePath      string
	Page          string
	StatePath     string
	Style         string
	Breakpoint    int
	Vars          resize.Vars
	Width         int
	Height        int
	ShowFooter    bool
	WatchInterval time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (err error) {
	defer func() { events.App.Stop(err) }()

	site, err := docs.LoadSite(cfg.SitePath)
	if err != nil {
		return fmt.Errorf("load site: %w", err)
	}
	store, err := openStore(cfg.StatePath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logging.Error(cerr)
		}
	}()

	watcher := backend.NewWatcher(site, cfg.WatchInterval)
	defer watcher.Stop()

	model := ui.NewModel(ui.Options{
		Site:       site,
		Page:       cfg.Page,
		Store:      store,
		Vars:       cfg.Vars,
		Breakpoint: cfg.Breakpoint,
		Style:      cfg.Style,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Watcher:    watcher,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// openStore opens the preferences database. An empty path keeps
// preferences in memory for this run only.
func openStore(path string) (*prefs.DB, error) {
	if path == "" {
		return prefs.OpenMemory()
	}
	return prefs.Open(path)
}
