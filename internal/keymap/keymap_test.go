package keymap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"menuflow/internal/config"
	"menuflow/internal/nav"
)

func TestDecodeDefaults(t *testing.T) {
	km := New(config.Default().Keys)

	for key, want := range map[string]nav.Action{
		"down":  nav.Next,
		"j":     nav.Next,
		"up":    nav.Previous,
		"k":     nav.Previous,
		"enter": nav.Select,
		" ":     nav.Select,
		"esc":   nav.Clear,
	} {
		got, ok := km.Decode(key)
		require.True(t, ok, "key %q should be bound", key)
		require.Equal(t, want, got, "key %q", key)
	}
}

func TestDecodeUnboundKey(t *testing.T) {
	km := New(config.Default().Keys)
	_, ok := km.Decode("x")
	require.False(t, ok)
}

func TestStreamDecodesAndDropsUnbound(t *testing.T) {
	km := New(config.Default().Keys)

	keys := make(chan string, 4)
	keys <- "j"
	keys <- "x" // unbound, removed
	keys <- "k"
	keys <- "enter"
	close(keys)

	var got []any
	for v := range km.Stream(keys) {
		got = append(got, v)
	}
	require.Equal(t, []any{nav.Next, nav.Previous, nav.Select}, got)
}
