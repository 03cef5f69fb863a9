package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/docnav/internal/nav"
	"github.com/atomicstack/docnav/internal/resize"
	"github.com/atomicstack/docnav/internal/search"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	handleGlyph    = "│"
	indicatorGlyph = "▌"
	expandedGlyph  = "▾ "
	collapsedGlyph = "▸ "
	tocTitle       = "On this page"
	// badgeNode is the text node index holding an item's badge.
	badgeNode = 2
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 {
		return ""
	}
	cols := m.columns()
	h := m.bodyHeight()
	parts := make([]string, 0, 4)
	if cols.sidebar > 0 {
		parts = append(parts, m.renderSidebar(m.activeVariant(), cols.sidebar, h))
	}
	if cols.handle > 0 {
		parts = append(parts, m.renderHandle(h))
	}
	if cols.content > 0 {
		parts = append(parts, m.renderBody(cols.content, h))
	}
	if cols.toc > 0 {
		parts = append(parts, m.renderTOC(cols.toc, h))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, parts...)}
	rows = append(rows, fitLine(m.statusLine(), m.width))
	if m.showFooter {
		rows = append(rows, fitLine(styles.Footer.Render(m.keymap.hints(!m.desktopLayout())), m.width))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderSidebar(v *variant, width, height int) string {
	lines := make([]string, 0, height)
	title := "docs"
	if m.site != nil && m.site.Name != "" {
		title = m.site.Name
	}
	lines = append(lines, styles.Title.Render(title))
	lines = append(lines, v.input.View())
	c := m.doc.Container(v.container)
	if c == nil || c.Tree == nil {
		return fitBlock(lines, width, height)
	}
	if c.Empty.Visible {
		lines = append(lines, emptyStateLines(c.Empty)...)
		return fitBlock(lines, width, height)
	}
	rows := c.Tree.Navigable()
	start, end := c.Viewport.Window(len(rows))
	for _, e := range rows[start:end] {
		lines = append(lines, entryLine(e, width))
	}
	return fitBlock(lines, width, height)
}

func emptyStateLines(empty nav.EmptyState) []string {
	lines := []string{styles.Empty.Render(fmt.Sprintf("No results for %q", empty.Query))}
	if len(empty.Suggestions) == 0 {
		return lines
	}
	lines = append(lines, "", styles.Empty.Render("Did you mean:"))
	for _, s := range empty.Suggestions {
		lines = append(lines, styles.Suggestion.Render("  "+s))
	}
	return lines
}

// entryLine renders one sidebar row. Highlight marks are drawn over the
// unmodified text nodes.
func entryLine(e *nav.Entry, width int) string {
	if e.Kind == nav.KindHeader {
		glyph := collapsedGlyph
		if e.Section != nil && e.Section.Expanded {
			glyph = expandedGlyph
		}
		st := styles.Header
		if e.Focused {
			st = styles.FocusedHeader
		}
		return padStyled(st.Render(glyph+e.Label()), st, width)
	}

	base := styles.Item
	indicator, indicatorStyle := " ", styles.ItemIndicator
	switch {
	case e.Focused:
		base = styles.FocusedItem
		indicator, indicatorStyle = indicatorGlyph, styles.FocusedIndicator
	case e.Active:
		base = styles.ActiveItem
		indicator = indicatorGlyph
	}
	var b strings.Builder
	b.WriteString(indicatorStyle.Render(indicator))
	lead := " "
	if e.Section != nil {
		lead = "   "
	}
	b.WriteString(base.Render(lead))
	for i, node := range e.Text {
		st := base
		if i >= badgeNode {
			st = styles.Badge
		}
		var spans []search.Span
		if mark, ok := e.MarkFor(i); ok {
			spans = append(spans, search.Span{Start: mark.Start, End: mark.End})
		}
		for _, seg := range search.Segments(node, spans...) {
			if seg.Marked {
				b.WriteString(styles.Mark.Render(seg.Text))
			} else {
				b.WriteString(st.Render(seg.Text))
			}
		}
	}
	return padStyled(b.String(), base, width)
}

func (m *Model) renderHandle(height int) string {
	st := styles.Handle
	if m.resize.Dragging() || m.resize.Grid().Transition == resize.TransitionShort {
		st = styles.HandleActive
	}
	lines := make([]string, height)
	for i := range lines {
		lines[i] = st.Render(handleGlyph)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBody(width, height int) string {
	if m.loading {
		return fitBlock([]string{styles.Info.Render(" Loading…")}, width, height)
	}
	return fitBlock(strings.Split(m.body.View(), "\n"), width, height)
}

func (m *Model) renderTOC(width, height int) string {
	lines := []string{styles.TOCTitle.Render(" " + tocTitle)}
	for _, h := range m.headings {
		if h.Level < 2 || h.Level > 3 {
			continue
		}
		indent := strings.Repeat("  ", h.Level-1)
		lines = append(lines, styles.TOCEntry.Render(indent+h.Text))
	}
	return fitBlock(lines, width, height)
}

func (m *Model) statusLine() string {
	switch {
	case m.errMsg != "":
		return styles.Error.Render("Error: " + m.errMsg)
	case m.backendErr != "":
		return styles.Error.Render("Watch: " + m.backendErr)
	}
	if info := m.currentInfo(); info != "" {
		return styles.Info.Render(info)
	}
	if m.page.Title != "" {
		return styles.Info.Render(m.page.Title)
	}
	return ""
}

// fitBlock renders lines as exactly height rows of width cells.
func fitBlock(lines []string, width, height int) string {
	if len(lines) > height {
		lines = lines[:height]
	}
	out := make([]string, height)
	for i := range out {
		if i < len(lines) {
			out[i] = fitLine(lines[i], width)
		} else {
			out[i] = strings.Repeat(" ", width)
		}
	}
	return strings.Join(out, "\n")
}

// fitLine truncates or pads a styled line to width cells.
func fitLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(line) > width {
		line = ansi.Truncate(line, width, "…")
	}
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

// padStyled extends line to width with spaces in st so row backgrounds span
// the column.
func padStyled(line string, st *lipgloss.Style, width int) string {
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += st.Render(strings.Repeat(" ", pad))
	}
	return line
}
