package nav

import "github.com/atomicstack/docnav/internal/docs"

const headerPrefix = "section:"

// Tree is one sidebar's navigation: sectionless links followed by sections.
type Tree struct {
	Static   []*Entry
	Sections []*Section
}

// Build creates a tree from site with activePage marked active. The section
// holding the active page starts expanded.
func Build(site *docs.Site, activePage string) *Tree {
	t := &Tree{}
	if site == nil {
		return t
	}
	for _, p := range site.Pages {
		t.Static = append(t.Static, t.newItem(p, nil, activePage))
	}
	for _, s := range site.Sections {
		sec := &Section{ID: s.ID, Title: s.Title, Expanded: s.Expanded}
		sec.Header = &Entry{
			ID:       headerPrefix + s.ID,
			Kind:     KindHeader,
			Text:     []string{s.Title},
			Section:  sec,
			TabIndex: -1,
			tree:     t,
		}
		for _, p := range s.Pages {
			item := t.newItem(p, sec, activePage)
			if item.Active {
				sec.Expanded = true
			}
			sec.Items = append(sec.Items, item)
		}
		t.Sections = append(t.Sections, sec)
	}
	return t
}

func (t *Tree) newItem(p docs.Page, sec *Section, activePage string) *Entry {
	text := []string{p.Title}
	if p.Badge != "" {
		text = append(text, " ", p.Badge)
	}
	return &Entry{
		ID:       p.ID,
		Kind:     KindItem,
		Text:     text,
		Href:     p.ID,
		Section:  sec,
		Active:   p.ID == activePage && activePage != "",
		TabIndex: -1,
		tree:     t,
	}
}

// Entries returns every entry in document order.
func (t *Tree) Entries() []*Entry {
	out := make([]*Entry, 0, len(t.Static)+len(t.Sections)*4)
	out = append(out, t.Static...)
	for _, s := range t.Sections {
		out = append(out, s.Header)
		out = append(out, s.Items...)
	}
	return out
}

// Items returns every item (static links and section items) in document order.
func (t *Tree) Items() []*Entry {
	out := make([]*Entry, 0, len(t.Static)+len(t.Sections)*4)
	out = append(out, t.Static...)
	for _, s := range t.Sections {
		out = append(out, s.Items...)
	}
	return out
}

// Visible returns the ordered navigable item set.
func (t *Tree) Visible() []*Entry {
	var out []*Entry
	for _, e := range t.Items() {
		if e.Visible() {
			out = append(out, e)
		}
	}
	return out
}

// Headers returns the headers of sections not hidden by search.
func (t *Tree) Headers() []*Entry {
	var out []*Entry
	for _, s := range t.Sections {
		if !s.Hidden {
			out = append(out, s.Header)
		}
	}
	return out
}

// Navigable returns every entry that may hold the roving cursor.
func (t *Tree) Navigable() []*Entry {
	var out []*Entry
	for _, e := range t.Entries() {
		if e.Visible() {
			out = append(out, e)
		}
	}
	return out
}

// Row returns the rendered row index of e, or -1. Rendered rows are exactly
// the navigable entries.
func (t *Tree) Row(e *Entry) int {
	for i, r := range t.Navigable() {
		if r == e {
			return i
		}
	}
	return -1
}

// Find returns the entry with id.
func (t *Tree) Find(id string) *Entry {
	for _, e := range t.Entries() {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Active returns the entry for the current page.
func (t *Tree) Active() *Entry {
	for _, e := range t.Items() {
		if e.Active {
			return e
		}
	}
	return nil
}

// ClearMarks drops every highlight in the tree.
func (t *Tree) ClearMarks() {
	for _, e := range t.Items() {
		e.Marks = nil
	}
}
