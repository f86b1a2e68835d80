package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"menuflow/internal/config"
	"menuflow/internal/eventbus"
	"menuflow/internal/nav"
	"menuflow/internal/stream"
)

type modelFixture struct {
	model *Model
	keys  chan string
	hover chan int
	bus   eventbus.Bus
}

func newModelFixture(t *testing.T) *modelFixture {
	t.Helper()
	cfg := config.Default()
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	keys := make(chan string, 8)
	hover := make(chan int, 8)
	menu := testMenu("alpha", "beta", "gamma")
	m := NewModel(cfg, bus, menu, keys, hover, stream.NewToggle(), NewStyles())
	return &modelFixture{model: m, keys: keys, hover: hover, bus: bus}
}

func keyMsg(s string) tea.KeyMsg {
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelForwardsKeysToPipeline(t *testing.T) {
	f := newModelFixture(t)

	_, cmd := f.model.Update(keyMsg("j"))
	require.Nil(t, cmd)

	select {
	case got := <-f.keys:
		require.Equal(t, "j", got)
	default:
		t.Fatal("key was not forwarded")
	}
}

func TestModelQuitKey(t *testing.T) {
	f := newModelFixture(t)

	_, cmd := f.model.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
	require.Empty(t, f.keys, "quit key must not reach the pipeline")
}

func TestModelPublishesSelection(t *testing.T) {
	f := newModelFixture(t)

	got := make(chan eventbus.Event, 1)
	f.bus.Subscribe(eventbus.EventSelectionMade, func(e eventbus.Event) { got <- e })

	f.model.Update(PipelineMsg{Value: nav.Selection[Item]{Index: 1, Item: Item{Label: "beta"}}})
	require.Contains(t, f.model.status, "beta")

	select {
	case e := <-got:
		require.Equal(t, eventbus.SelectionMadeEvent{Index: 1, Label: "beta"}, e)
	case <-time.After(time.Second):
		t.Fatal("selection event never published")
	}
}

func TestModelTracksHighlightFromPipeline(t *testing.T) {
	f := newModelFixture(t)

	f.model.Update(PipelineMsg{Value: nav.Index(2)})
	require.Equal(t, 2, f.model.last)
	require.Contains(t, f.model.status, "3/3")

	f.model.Update(PipelineMsg{Value: nav.None})
	require.Equal(t, -1, f.model.last)
	require.Empty(t, f.model.status)
}

func TestModelMouseHover(t *testing.T) {
	f := newModelFixture(t)

	f.model.Update(tea.MouseMsg{Y: menuTop + 1, Action: tea.MouseActionMotion})
	select {
	case got := <-f.hover:
		require.Equal(t, 1, got)
	default:
		t.Fatal("hover was not forwarded")
	}
}

func TestModelMouseDisabled(t *testing.T) {
	f := newModelFixture(t)
	f.model.cfg.UI.MouseEnabled = false

	f.model.Update(tea.MouseMsg{Y: menuTop, Action: tea.MouseActionMotion})
	require.Empty(t, f.hover)
}

func TestHelpContentListsBindings(t *testing.T) {
	content := renderHelpContent(config.Default())
	for _, want := range []string{"Navigation", "Selection", "down, j", "enter", "Quit"} {
		require.True(t, strings.Contains(content, want), "help should mention %q", want)
	}
}
