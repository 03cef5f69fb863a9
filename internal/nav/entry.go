package nav

import "strings"

// Kind distinguishes focusable entries in the navigation tree.
type Kind int

const (
	KindItem Kind = iota
	KindHeader
)

func (k Kind) String() string {
	if k == KindHeader {
		return "header"
	}
	return "item"
}

// Mark highlights Start..End (rune offsets) within text node Node.
type Mark struct {
	Node  int
	Start int
	End   int
}

// Entry is a focusable row: a page link or a section header.
type Entry struct {
	ID       string
	Kind     Kind
	Text     []string
	Href     string
	Section  *Section
	Hidden   bool
	Active   bool
	Focused  bool
	TabIndex int
	Marks    []Mark

	tree *Tree
}

// Label is the concatenated text content of the entry.
func (e *Entry) Label() string {
	if e == nil {
		return ""
	}
	return strings.Join(e.Text, "")
}

// Tree returns the navigation tree that owns the entry.
func (e *Entry) Tree() *Tree {
	if e == nil {
		return nil
	}
	return e.tree
}

// Visible reports whether the entry is reachable by the roving cursor. Items
// need to be unhidden and either sectionless or inside an expanded section;
// headers only need their section to be unhidden.
func (e *Entry) Visible() bool {
	if e == nil {
		return false
	}
	if e.Kind == KindHeader {
		return e.Section != nil && !e.Section.Hidden
	}
	if e.Hidden {
		return false
	}
	return e.Section == nil || e.Section.Expanded
}

// MarkFor returns the highlight mark for text node i.
func (e *Entry) MarkFor(node int) (Mark, bool) {
	for _, m := range e.Marks {
		if m.Node == node {
			return m, true
		}
	}
	return Mark{}, false
}

// Section is a collapsible group of items under one header.
type Section struct {
	ID       string
	Title    string
	Expanded bool
	Hidden   bool
	Header   *Entry
	Items    []*Entry
}

// VisibleItems counts items in the section not hidden by search.
func (s *Section) VisibleItems() int {
	n := 0
	for _, it := range s.Items {
		if !it.Hidden {
			n++
		}
	}
	return n
}
