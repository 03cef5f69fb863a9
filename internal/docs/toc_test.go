package docs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeadingsInDocumentOrder(t *testing.T) {
	src := []byte("# Guide\n\nintro\n\n## Install `cli`\n\ntext\n\n### Linux *only*\n")
	got := Headings(src)
	require.Equal(t, []Heading{
		{Level: 1, Text: "Guide"},
		{Level: 2, Text: "Install cli"},
		{Level: 3, Text: "Linux only"},
	}, got)
	require.Nil(t, Headings(nil))
}

func TestRendererWrapsMarkdown(t *testing.T) {
	r, err := NewRenderer("ascii", 40)
	require.NoError(t, err)
	out, err := r.Render([]byte("# Title\n\nbody text"))
	require.NoError(t, err)
	require.True(t, strings.Contains(out, "Title"))
	require.True(t, strings.Contains(out, "body text"))

	same, err := r.Resize(40)
	require.NoError(t, err)
	require.Same(t, r, same)
	wider, err := r.Resize(60)
	require.NoError(t, err)
	require.Equal(t, 60, wider.Width())
}
