package testutil

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestPlainStripsStylingAndTrailingBlanks(t *testing.T) {
	styled := "\x1b[1mbold\x1b[0m   \nnext  "
	require.Equal(t, "bold\nnext", Plain(styled))
}

func TestWidthIgnoresEscapes(t *testing.T) {
	s := lipgloss.NewStyle().Bold(true).Render("▌ item")
	require.Equal(t, 6, Width(s))
	require.Equal(t, 6, Width("\x1b[7m▌ item\x1b[0m"))
}

func TestAssertGoldenMatchesPlainOutput(t *testing.T) {
	AssertGolden(t, "testutil_plain.golden", "\x1b[32mdocnav\x1b[0m   \nready")
}
