package search

import (
	"testing"

	"github.com/atomicstack/docnav/internal/docs"
	"github.com/atomicstack/docnav/internal/nav"
	"github.com/stretchr/testify/require"
)

const filterSite = `
sections:
  - id: guide
    title: Guide
    expanded: true
    pages:
      - {id: intro, title: Intro}
      - {id: setup, title: Setup}
      - {id: advanced, title: Advanced Setup}
`

func newDoc(t *testing.T, containers ...string) *nav.Document {
	t.Helper()
	site, err := docs.ParseSite([]byte(filterSite))
	require.NoError(t, err)
	doc := nav.NewDocument()
	for _, name := range containers {
		doc.AddContainer(name, nav.Build(site, ""))
		doc.AddInput(name + "-search")
	}
	return doc
}

type snapshot struct {
	hidden  map[string]bool
	marks   map[string][]nav.Mark
	section bool
	empty   nav.EmptyState
}

func snap(c *nav.Container) snapshot {
	s := snapshot{hidden: map[string]bool{}, marks: map[string][]nav.Mark{}}
	for _, it := range c.Tree.Items() {
		s.hidden[it.ID] = it.Hidden
		if len(it.Marks) > 0 {
			s.marks[it.ID] = append([]nav.Mark(nil), it.Marks...)
		}
	}
	s.section = c.Tree.Sections[0].Hidden
	s.empty = c.Empty
	return s
}

func TestApplySetupScenario(t *testing.T) {
	doc := newDoc(t, "desktop")
	f := Attach(doc, "desktop-search", "desktop")
	require.NotNil(t, f)

	require.Equal(t, 2, f.Apply("setup"))
	tree := f.Container().Tree
	require.True(t, tree.Find("intro").Hidden)
	require.False(t, tree.Find("setup").Hidden)
	require.False(t, tree.Find("advanced").Hidden)
	require.Equal(t, []nav.Mark{{Node: 0, Start: 0, End: 5}}, tree.Find("setup").Marks)
	require.Equal(t, []nav.Mark{{Node: 0, Start: 9, End: 14}}, tree.Find("advanced").Marks)
	require.Empty(t, tree.Find("intro").Marks)
	require.False(t, tree.Sections[0].Hidden)
	require.False(t, f.Container().Empty.Visible)
	require.Equal(t, "setup", doc.Input("desktop-search").Value)
}

func TestApplyNoMatchesShowsEmptyState(t *testing.T) {
	doc := newDoc(t, "desktop")
	f := Attach(doc, "desktop-search", "desktop")

	require.Equal(t, 0, f.Apply("zzz"))
	for _, it := range f.Container().Tree.Items() {
		require.True(t, it.Hidden, it.ID)
	}
	require.True(t, f.Container().Tree.Sections[0].Hidden)
	require.True(t, f.Container().Empty.Visible)
	require.Equal(t, "zzz", f.Container().Empty.Query)
}

func TestEmptyStateSuggestions(t *testing.T) {
	doc := newDoc(t, "desktop")
	f := Attach(doc, "desktop-search", "desktop")

	require.Equal(t, 0, f.Apply("stp"))
	require.Equal(t, []string{"Setup", "Advanced Setup"}, f.Container().Empty.Suggestions)
}

func TestEmptyQueryRestoresEverything(t *testing.T) {
	doc := newDoc(t, "desktop")
	f := Attach(doc, "desktop-search", "desktop")
	pristine := snap(f.Container())

	f.Apply("zzz")
	f.Apply("adv")
	f.Apply("   ")
	require.Equal(t, pristine, snap(f.Container()))
	for _, it := range f.Container().Tree.Items() {
		require.Equal(t, []string{it.Label()}, it.Text)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	doc := newDoc(t, "desktop")
	f := Attach(doc, "desktop-search", "desktop")

	f.Apply("set")
	once := snap(f.Container())
	f.Apply("set")
	require.Equal(t, once, snap(f.Container()))
}

func TestInstancesAreIndependentButHighlightsClearGlobally(t *testing.T) {
	doc := newDoc(t, "desktop", "mobile")
	desktop := Attach(doc, "desktop-search", "desktop")
	mobile := Attach(doc, "mobile-search", "mobile")

	desktop.Apply("intro")
	require.NotEmpty(t, desktop.Container().Tree.Find("intro").Marks)

	mobile.Apply("zzz")
	require.True(t, mobile.Container().Empty.Visible)
	require.False(t, desktop.Container().Empty.Visible)
	require.False(t, desktop.Container().Tree.Find("intro").Hidden)
	require.Empty(t, desktop.Container().Tree.Find("intro").Marks)
}

func TestAttachMissingPreconditions(t *testing.T) {
	doc := newDoc(t, "desktop")
	require.Nil(t, Attach(doc, "nope", "desktop"))
	require.Nil(t, Attach(doc, "desktop-search", "nope"))
	require.Nil(t, Attach(nil, "desktop-search", "desktop"))

	var f *Filter
	require.Equal(t, 0, f.Apply("x"))
	require.Equal(t, "", f.Query())
	require.Nil(t, f.Container())
}
