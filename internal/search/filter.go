package search

import (
	"sort"

	"github.com/atomicstack/docnav/internal/logging/events"
	"github.com/atomicstack/docnav/internal/nav"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const maxSuggestions = 3

// Filter binds one search input to one sidebar container.
type Filter struct {
	doc       *nav.Document
	input     *nav.Input
	container *nav.Container
	query     string
}

// Attach returns a filter scoped to the named container, or nil when either
// the input or the container is missing.
func Attach(doc *nav.Document, inputID, container string) *Filter {
	if doc == nil {
		return nil
	}
	in := doc.Input(inputID)
	c := doc.Container(container)
	if in == nil || c == nil || c.Tree == nil {
		return nil
	}
	return &Filter{doc: doc, input: in, container: c}
}

// Query returns the last applied query.
func (f *Filter) Query() string {
	if f == nil {
		return ""
	}
	return f.query
}

// Container returns the scoped container.
func (f *Filter) Container() *nav.Container {
	if f == nil {
		return nil
	}
	return f.container
}

// Apply re-evaluates the whole scope for query and returns the number of
// matching items. Highlights are cleared document-wide first so marks from
// another sidebar never linger.
func (f *Filter) Apply(query string) int {
	if f == nil {
		return 0
	}
	f.input.Value = query
	f.query = Normalize(query)
	f.doc.ClearHighlights()

	tree := f.container.Tree
	empty := &f.container.Empty
	if f.query == "" {
		for _, it := range tree.Items() {
			it.Hidden = false
		}
		for _, sec := range tree.Sections {
			sec.Hidden = false
		}
		*empty = nav.EmptyState{}
		events.Search.Cleared(f.container.Name)
		return len(tree.Items())
	}

	matched := 0
	for _, it := range tree.Items() {
		if !Contains(it.Label(), f.query) {
			it.Hidden = true
			continue
		}
		it.Hidden = false
		matched++
		for i, node := range it.Text {
			if sp, ok := Match(node, f.query); ok {
				it.Marks = append(it.Marks, nav.Mark{Node: i, Start: sp.Start, End: sp.End})
			}
		}
	}
	for _, sec := range tree.Sections {
		sec.Hidden = sec.VisibleItems() == 0
	}
	*empty = nav.EmptyState{Visible: matched == 0, Query: f.query}
	if matched == 0 {
		empty.Suggestions = suggest(tree, f.query)
	}
	events.Search.Apply(f.container.Name, f.query, matched)
	return matched
}

func suggest(tree *nav.Tree, query string) []string {
	items := tree.Items()
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label()
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) == 0 {
		return nil
	}
	sort.Stable(ranks)
	out := make([]string, 0, maxSuggestions)
	for _, r := range ranks {
		out = append(out, r.Target)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
