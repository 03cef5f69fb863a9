// Package search implements the sidebar filter: case-insensitive substring
// matching over entry text, highlight spans and the empty-state placeholder.
package search

import (
	"strings"
	"unicode"
)

// Span is a half-open rune range within a text node.
type Span struct {
	Start int
	End   int
}

// Len is the number of runes covered.
func (s Span) Len() int {
	return s.End - s.Start
}

// Segment is a run of text rendered either plain or highlighted.
type Segment struct {
	Text   string
	Marked bool
}

// Normalize trims surrounding whitespace from a raw query.
func Normalize(query string) string {
	return strings.TrimSpace(query)
}

// Match finds the first case-insensitive occurrence of query in text.
func Match(text, query string) (Span, bool) {
	if query == "" {
		return Span{}, false
	}
	q := []rune(query)
	t := []rune(text)
	for i := 0; i+len(q) <= len(t); i++ {
		if foldPrefix(t[i:], q) {
			return Span{Start: i, End: i + len(q)}, true
		}
	}
	return Span{}, false
}

// Contains reports whether query occurs anywhere in text, ignoring case.
func Contains(text, query string) bool {
	_, ok := Match(text, query)
	return ok
}

func foldPrefix(text, prefix []rune) bool {
	for i, r := range prefix {
		if !foldEqual(text[i], r) {
			return false
		}
	}
	return true
}

func foldEqual(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// Segments splits text into plain and marked runs. Spans must be ordered and
// non-overlapping; out-of-range spans are clipped. Empty runs are dropped, so
// joining the segment texts always yields text.
func Segments(text string, spans ...Span) []Segment {
	runes := []rune(text)
	out := make([]Segment, 0, 2*len(spans)+1)
	pos := 0
	for _, sp := range spans {
		start, end := clamp(sp.Start, pos, len(runes)), clamp(sp.End, pos, len(runes))
		if start >= end {
			continue
		}
		if start > pos {
			out = append(out, Segment{Text: string(runes[pos:start])})
		}
		out = append(out, Segment{Text: string(runes[start:end]), Marked: true})
		pos = end
	}
	if pos < len(runes) || len(out) == 0 {
		out = append(out, Segment{Text: string(runes[pos:])})
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
