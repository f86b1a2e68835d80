package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"menuflow/internal/nav"
)

func testMenu(labels ...string) *Menu {
	items := make([]Item, len(labels))
	for i, l := range labels {
		items[i] = Item{Label: l}
	}
	return NewMenu(items, NewStyles(), 20)
}

func TestMenuImplementsListView(t *testing.T) {
	var _ nav.ListView = testMenu("a")
}

func TestMenuMarks(t *testing.T) {
	m := testMenu("alpha", "beta", "gamma")
	require.Equal(t, 3, m.Count())
	require.Equal(t, -1, m.Highlighted())
	require.Equal(t, -1, m.Selected())

	m.Highlight(1)
	require.Equal(t, 1, m.Highlighted())

	m.Unhighlight(0) // stale position, must not clear the current mark
	require.Equal(t, 1, m.Highlighted())
	m.Unhighlight(1)
	require.Equal(t, -1, m.Highlighted())

	m.Select(2)
	require.Equal(t, 2, m.Selected())
	m.Unselect(2)
	require.Equal(t, -1, m.Selected())
}

func TestMenuRender(t *testing.T) {
	m := testMenu("alpha", "beta")
	m.Highlight(0)
	m.Select(1)

	out := m.Render()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "›")
	require.Contains(t, lines[0], "alpha")
	require.Contains(t, lines[1], "✓")
	require.Contains(t, lines[1], "beta")
}

func TestMenuRenderTruncatesLongLabels(t *testing.T) {
	long := strings.Repeat("x", 50)
	m := testMenu(long)

	out := m.Render()
	require.NotContains(t, out, long)
	require.Contains(t, out, "…")
}
