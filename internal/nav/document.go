// Package nav is the in-memory model of the documentation sidebars: entries,
// sections, per-sidebar trees and the document-wide focus holder. Renderers
// read it; the search, resize and keyboard controllers mutate it.
package nav

// TargetKind classifies what currently holds focus.
type TargetKind int

const (
	TargetElsewhere TargetKind = iota
	TargetEntry
	TargetInput
)

// Target is a focus holder. The zero value means focus is elsewhere on the
// page (the content pane).
type Target struct {
	Kind  TargetKind
	Entry *Entry
	Input *Input
}

// Elsewhere is focus outside the sidebar.
var Elsewhere = Target{}

func EntryTarget(e *Entry) Target {
	if e == nil {
		return Elsewhere
	}
	return Target{Kind: TargetEntry, Entry: e}
}

func InputTarget(in *Input) Target {
	if in == nil {
		return Elsewhere
	}
	return Target{Kind: TargetInput, Input: in}
}

func (t Target) String() string {
	switch t.Kind {
	case TargetEntry:
		return t.Entry.Kind.String() + ":" + t.Entry.ID
	case TargetInput:
		return "input:" + t.Input.ID
	default:
		return "elsewhere"
	}
}

// Input is a text field; every input accepts typed text.
type Input struct {
	ID    string
	Value string
}

// EmptyState is the placeholder shown when a search matches nothing.
type EmptyState struct {
	Visible     bool
	Query       string
	Suggestions []string
}

// Container is one sidebar instance.
type Container struct {
	Name     string
	Tree     *Tree
	Empty    EmptyState
	Viewport Viewport
}

// BlurFunc observes focus leaving from for to.
type BlurFunc func(from, to Target)

// Document holds every sidebar container, the search inputs and the current
// focus holder.
type Document struct {
	containers []*Container
	inputs     map[string]*Input
	focus      Target
	onBlur     BlurFunc
}

func NewDocument() *Document {
	return &Document{inputs: make(map[string]*Input)}
}

// AddContainer registers a sidebar, replacing any container with that name.
func (d *Document) AddContainer(name string, tree *Tree) *Container {
	c := &Container{Name: name, Tree: tree}
	for i, existing := range d.containers {
		if existing.Name == name {
			c.Viewport.Height = existing.Viewport.Height
			d.containers[i] = c
			if d.focus.Kind == TargetEntry && d.focus.Entry.Tree() == existing.Tree {
				d.focus = Elsewhere
			}
			return c
		}
	}
	d.containers = append(d.containers, c)
	return c
}

func (d *Document) Container(name string) *Container {
	for _, c := range d.containers {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ContainerOf returns the container whose tree owns e.
func (d *Document) ContainerOf(e *Entry) *Container {
	if e == nil {
		return nil
	}
	for _, c := range d.containers {
		if c.Tree == e.Tree() {
			return c
		}
	}
	return nil
}

// AddInput registers a text input, returning the existing one if present.
func (d *Document) AddInput(id string) *Input {
	if in, ok := d.inputs[id]; ok {
		return in
	}
	in := &Input{ID: id}
	d.inputs[id] = in
	return in
}

func (d *Document) Input(id string) *Input {
	return d.inputs[id]
}

// Focused returns the current focus holder.
func (d *Document) Focused() Target {
	return d.focus
}

// SetBlurHandler installs fn as the single blur observer; nil removes it.
func (d *Document) SetBlurHandler(fn BlurFunc) {
	d.onBlur = fn
}

// Focus moves focus to t. The blur observer runs before the move completes
// so it can inspect both holders.
func (d *Document) Focus(t Target) {
	if d.focus == t {
		return
	}
	prev := d.focus
	if d.onBlur != nil && prev.Kind != TargetElsewhere {
		d.onBlur(prev, t)
	}
	d.focus = t
}

// ClearHighlights removes highlight marks from every container.
func (d *Document) ClearHighlights() {
	for _, c := range d.containers {
		if c.Tree != nil {
			c.Tree.ClearMarks()
		}
	}
}
