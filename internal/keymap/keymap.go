// Package keymap turns the key names bubbletea reports into navigation
// events, according to the configured bindings. It is the decode stage of the
// input pipeline.
package keymap

import (
	"menuflow/internal/config"
	"menuflow/internal/nav"
	"menuflow/internal/stream"
)

// Keymap is an immutable key-to-event table.
type Keymap struct {
	bindings map[string]nav.Action
}

// New builds a keymap from configured bindings. Later bindings win when one
// key appears under several events.
func New(keys config.KeyBindings) *Keymap {
	m := make(map[string]nav.Action)
	bind := func(names []string, a nav.Action) {
		for _, n := range names {
			m[n] = a
		}
	}
	bind(keys.Next, nav.Next)
	bind(keys.Previous, nav.Previous)
	bind(keys.Select, nav.Select)
	bind(keys.Clear, nav.Clear)
	return &Keymap{bindings: m}
}

// Decode maps one key name to its navigation event.
func (k *Keymap) Decode(key string) (nav.Action, bool) {
	a, ok := k.bindings[key]
	return a, ok
}

// Stream builds the decode stage: key names in, navigation events out, keys
// with no binding removed.
func (k *Keymap) Stream(keys <-chan string) <-chan any {
	decoded := stream.Map(keys, func(s string) any {
		if a, ok := k.Decode(s); ok {
			return a
		}
		return nil
	})
	return stream.Remove(decoded, func(v any) bool { return v == nil })
}
