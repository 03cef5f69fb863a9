package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/docnav/internal/app"
	"github.com/atomicstack/docnav/internal/resize"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSite         = "DOCNAV_SITE"
	envPage         = "DOCNAV_PAGE"
	envState        = "DOCNAV_STATE"
	envStyle        = "DOCNAV_STYLE"
	envBreakpoint   = "DOCNAV_BREAKPOINT"
	envSidebarWidth = "DOCNAV_SIDEBAR_WIDTH"
	envSidebarMin   = "DOCNAV_SIDEBAR_MIN"
	envSidebarMax   = "DOCNAV_SIDEBAR_MAX"
	envTOCWidth     = "DOCNAV_TOC_WIDTH"
	envWidth        = "DOCNAV_WIDTH"
	envHeight       = "DOCNAV_HEIGHT"
	envShowFooter   = "DOCNAV_FOOTER"
	envWatch        = "DOCNAV_WATCH"
	envTrace        = "DOCNAV_TRACE"
	envLogFile      = "DOCNAV_LOG_FILE"
)

var ErrNoSite = errors.New("no site file given (use --site or DOCNAV_SITE)")

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	vars := resize.DefaultVars()

	fs := pflag.NewFlagSet("docnav", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	site := fs.String("site", envOrDefault(env, envSite, ""), "path to the site navigation file (YAML)")
	page := fs.String("page", envOrDefault(env, envPage, ""), "page id to open first (defaults to the first page)")
	state := fs.String("state", envOrDefault(env, envState, defaultStatePath()), "path to the preferences database")
	style := fs.String("style", envOrDefault(env, envStyle, "dark"), "glamour style used for page content")
	breakpoint := fs.Int("breakpoint", envOrInt(env, envBreakpoint, resize.DefaultBreakpoint), "narrowest terminal width (cells) using the desktop layout")
	sidebarWidth := fs.String("sidebar-width", envOrDefault(env, envSidebarWidth, vars[resize.VarSidebarWidth]), "default sidebar width")
	sidebarMin := fs.String("sidebar-min", envOrDefault(env, envSidebarMin, vars[resize.VarSidebarMin]), "minimum sidebar width when resizing")
	sidebarMax := fs.String("sidebar-max", envOrDefault(env, envSidebarMax, vars[resize.VarSidebarMax]), "maximum sidebar width when resizing")
	tocWidth := fs.String("toc-width", envOrDefault(env, envTOCWidth, vars[resize.VarTOCWidth]), "table of contents width (0 hides it)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint row")
	watch := fs.Duration("watch", envOrDuration(env, envWatch, 2*time.Second), "poll interval for site changes (0 disables)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if *site == "" && fs.NArg() > 0 {
		*site = fs.Arg(0)
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			SitePath:   *site,
			Page:       *page,
			StatePath:  *state,
			Style:      *style,
			Breakpoint: *breakpoint,
			Vars: resize.Vars{
				resize.VarSidebarWidth: *sidebarWidth,
				resize.VarSidebarMin:   *sidebarMin,
				resize.VarSidebarMax:   *sidebarMax,
				resize.VarTOCWidth:     *tocWidth,
			},
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			WatchInterval: *watch,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"site":          *site,
			"page":          *page,
			"state":         *state,
			"style":         *style,
			"breakpoint":    strconv.Itoa(*breakpoint),
			"sidebar-width": *sidebarWidth,
			"sidebar-min":   *sidebarMin,
			"sidebar-max":   *sidebarMax,
			"toc-width":     *tocWidth,
			"width":         strconv.Itoa(*width),
			"height":        strconv.Itoa(*height),
			"footer":        strconv.FormatBool(*footer),
			"watch":         watch.String(),
			"trace":         strconv.FormatBool(*trace),
			"logFile":       *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return filepath.Join(".docnav", "state.db")
	}
	return filepath.Join(dir, "docnav", "state.db")
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.SitePath) == "" {
		return ErrNoSite
	}
	if cfg.App.Breakpoint <= 0 {
		return fmt.Errorf("breakpoint must be > 0 (got %d)", cfg.App.Breakpoint)
	}
	if cfg.App.WatchInterval < 0 {
		return fmt.Errorf("watch interval must be >= 0 (got %s)", cfg.App.WatchInterval)
	}
	return nil
}
