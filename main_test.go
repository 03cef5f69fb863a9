package main

import (
	"testing"
	"time"

	"github.com/atomicstack/docnav/internal/app"
	"github.com/atomicstack/docnav/internal/config"
	"github.com/atomicstack/docnav/internal/resize"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadDescribesSiteAndState(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			SitePath:      "docs/site.yaml",
			Page:          "intro",
			StatePath:     "/tmp/docnav/state.db",
			Style:         "dark",
			Breakpoint:    100,
			Vars:          resize.DefaultVars(),
			Width:         120,
			Height:        40,
			ShowFooter:    true,
			WatchInterval: 2 * time.Second,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{"site": "docs/site.yaml", "page": "intro"},
		Args:  []string{"--site", "docs/site.yaml", "--page", "intro"},
	}

	payload := startupTracePayload(cfg)

	if payload["site"] != "docs/site.yaml" {
		t.Fatalf("expected site path, got %v", payload["site"])
	}
	if payload["page"] != "intro" {
		t.Fatalf("expected page intro, got %v", payload["page"])
	}
	if payload["state"] != "/tmp/docnav/state.db" {
		t.Fatalf("expected state path, got %v", payload["state"])
	}
	if payload["watch"] != "2s" {
		t.Fatalf("expected watch interval 2s, got %v", payload["watch"])
	}
	layout, ok := payload["layout"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected layout map in payload")
	}
	if layout["breakpoint"] != 100 || layout["width"] != 120 {
		t.Fatalf("unexpected layout %v", layout)
	}
	logCfg := payload["log"].(map[string]interface{})
	if logCfg["file"] != "trace.log" || logCfg["trace"] != true {
		t.Fatalf("unexpected log settings %v", logCfg)
	}
	if _, ok := payload["config"]; ok {
		t.Fatalf("payload should not carry the raw config")
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if got := payload["argv"].([]string); len(got) != 4 {
		t.Fatalf("expected argv to be carried, got %v", got)
	}

	cfg.App.StatePath = ""
	if got := startupTracePayload(cfg)["state"]; got != ":memory:" {
		t.Fatalf("expected in-memory state, got %v", got)
	}
}
