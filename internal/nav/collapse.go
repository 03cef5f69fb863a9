package nav

import "github.com/atomicstack/docnav/internal/logging/events"

// SectionOf returns the section enclosing e, or nil for sectionless links.
func SectionOf(e *Entry) *Section {
	if e == nil {
		return nil
	}
	return e.Section
}

// Collapse collapses the section enclosing e. Collapsing an already
// collapsed section, or an entry without a section, does nothing.
func Collapse(e *Entry) {
	setExpanded(SectionOf(e), false)
}

// Expand expands the section enclosing e.
func Expand(e *Entry) {
	setExpanded(SectionOf(e), true)
}

// Toggle flips the expanded state of the section enclosing e.
func Toggle(e *Entry) {
	sec := SectionOf(e)
	if sec == nil {
		return
	}
	setExpanded(sec, !sec.Expanded)
}

func setExpanded(sec *Section, expanded bool) {
	if sec == nil || sec.Expanded == expanded {
		return
	}
	sec.Expanded = expanded
	events.Nav.Section(sec.ID, expanded)
}
