package resize

// Transition describes how the renderer animates column changes.
type Transition int

const (
	TransitionNone Transition = iota
	// TransitionSuppressed holds while a restored width is first applied.
	TransitionSuppressed
	// TransitionShort is active while the handle is being dragged.
	TransitionShort
)

func (t Transition) String() string {
	switch t {
	case TransitionSuppressed:
		return "suppressed"
	case TransitionShort:
		return "short"
	default:
		return "none"
	}
}

// minContentWidth keeps the page column readable; the toc column is dropped
// first when space runs out.
const minContentWidth = 20

// Grid is the inline column override for the desktop layout.
type Grid struct {
	Sidebar    int
	TOC        int
	Inline     bool
	Transition Transition
}

// Columns splits total cells into sidebar, content and toc widths using
// sidebar and toc as the requested sizes.
func Columns(total, sidebar, toc int) (int, int, int) {
	if total <= 0 {
		return 0, 0, 0
	}
	if sidebar > total {
		sidebar = total
	}
	content := total - sidebar - toc
	if content < minContentWidth {
		toc = 0
		content = total - sidebar
	}
	if content < 0 {
		content = 0
	}
	return sidebar, content, toc
}
