package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchFirstOccurrenceIgnoringCase(t *testing.T) {
	sp, ok := Match("Advanced Setup setup", "SETUP")
	require.True(t, ok)
	require.Equal(t, Span{Start: 9, End: 14}, sp)
	require.Equal(t, 5, sp.Len())

	sp, ok = Match("Größe ändern", "ÄND")
	require.True(t, ok)
	require.Equal(t, Span{Start: 6, End: 9}, sp)

	_, ok = Match("Intro", "setup")
	require.False(t, ok)
	_, ok = Match("Intro", "")
	require.False(t, ok)
	require.True(t, Contains("Intro", "TRO"))
}

func TestSegmentsRoundTrip(t *testing.T) {
	cases := []struct {
		text  string
		spans []Span
		want  []Segment
	}{
		{"Setup", []Span{{0, 5}}, []Segment{{Text: "Setup", Marked: true}}},
		{"Advanced Setup", []Span{{9, 14}}, []Segment{{Text: "Advanced "}, {Text: "Setup", Marked: true}}},
		{"pre-mid-post", []Span{{4, 7}}, []Segment{{Text: "pre-"}, {Text: "mid", Marked: true}, {Text: "-post"}}},
		{"plain", nil, []Segment{{Text: "plain"}}},
		{"", nil, []Segment{{Text: ""}}},
		{"clip", []Span{{2, 99}}, []Segment{{Text: "cl"}, {Text: "ip", Marked: true}}},
	}
	for _, tc := range cases {
		got := Segments(tc.text, tc.spans...)
		require.Equal(t, tc.want, got, tc.text)
		var b strings.Builder
		for _, seg := range got {
			b.WriteString(seg.Text)
		}
		require.Equal(t, tc.text, b.String())
	}
}

func TestNormalizeTrims(t *testing.T) {
	require.Equal(t, "setup", Normalize("  setup \t"))
	require.Equal(t, "", Normalize("   "))
}
