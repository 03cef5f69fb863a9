// Package resize implements drag-to-resize for the desktop sidebar together
// with the responsive three-column grid it lives in.
package resize

import (
	"strconv"
	"strings"
)

const (
	VarSidebarWidth = "--sidebar-width"
	VarSidebarMin   = "--sidebar-min-width"
	VarSidebarMax   = "--sidebar-max-width"
	VarTOCWidth     = "--toc-width"
)

// Vars holds layout custom properties as raw strings, the way a stylesheet
// would declare them.
type Vars map[string]string

// ParseLength parses a cell length such as "24", "24ch" or "24px".
func ParseLength(raw string) (int, bool) {
	s := strings.TrimSpace(strings.ToLower(raw))
	for _, unit := range []string{"px", "ch"} {
		s = strings.TrimSuffix(s, unit)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Length parses the named property.
func (v Vars) Length(name string) (int, bool) {
	raw, ok := v[name]
	if !ok {
		return 0, false
	}
	return ParseLength(raw)
}

// Bounds returns the sidebar width limits. ok is false when either bound is
// absent, unparsable or inverted.
func (v Vars) Bounds() (min, max int, ok bool) {
	min, okMin := v.Length(VarSidebarMin)
	max, okMax := v.Length(VarSidebarMax)
	if !okMin || !okMax || min > max {
		return 0, 0, false
	}
	return min, max, true
}

// DefaultVars mirrors the stock stylesheet.
func DefaultVars() Vars {
	return Vars{
		VarSidebarWidth: "30",
		VarSidebarMin:   "20",
		VarSidebarMax:   "60",
		VarTOCWidth:     "24",
	}
}
