package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/docnav/internal/app"
	"github.com/atomicstack/docnav/internal/config"
	"github.com/atomicstack/docnav/internal/logging"
	"github.com/atomicstack/docnav/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records where docnav reads its site and state from,
// the layout it starts with, and the terminal it found.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":  cfg.Args,
		"flags": cfg.Flags,
		"site":  cfg.App.SitePath,
		"page":  cfg.App.Page,
		"state": statePath(cfg.App),
		"layout": map[string]interface{}{
			"style":      cfg.App.Style,
			"breakpoint": cfg.App.Breakpoint,
			"vars":       cfg.App.Vars,
			"width":      cfg.App.Width,
			"height":     cfg.App.Height,
			"footer":     cfg.App.ShowFooter,
		},
		"watch": cfg.App.WatchInterval.String(),
		"log": map[string]interface{}{
			"file":  cfg.Logging.FilePath,
			"trace": cfg.Logging.Trace,
		},
		"tty": collectTTYDetails(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

// statePath names the preferences store; an empty path keeps it in memory.
func statePath(cfg app.Config) string {
	if cfg.StatePath == "" {
		return ":memory:"
	}
	return cfg.StatePath
}

type ttyDetails struct {
	Size   *ttySize   `json:"size,omitempty"`
	Probes []ttyProbe `json:"probes"`
}

type ttySize struct {
	From   string `json:"from"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbe struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

func probeTTY(name string, f *os.File) ttyProbe {
	p := ttyProbe{Name: name}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return p
	}
	p.Terminal = true
	w, h, err := term.GetSize(fd)
	if err != nil {
		p.Error = err.Error()
		return p
	}
	p.Width, p.Height = w, h
	return p
}

// collectTTYDetails probes the standard descriptors. The first one with a
// usable size is what the initial layout will be computed from.
func collectTTYDetails() ttyDetails {
	details := ttyDetails{Probes: []ttyProbe{
		probeTTY("stdin", os.Stdin),
		probeTTY("stdout", os.Stdout),
		probeTTY("stderr", os.Stderr),
	}}
	for _, p := range details.Probes {
		if p.Terminal && p.Error == "" {
			details.Size = &ttySize{From: p.Name, Width: p.Width, Height: p.Height}
			break
		}
	}
	return details
}
