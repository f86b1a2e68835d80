// Package nav contains the two coordinators at the heart of menuflow: the
// highlighter, which tracks the single highlighted position of a list, and the
// selector, which layers a selected position on top of it. Both are driven by
// a channel of events and drive a ListView as a side effect.
package nav

import "fmt"

// Action is a navigation command. Next, Previous and Clear are consumed by the
// highlighter; Select is consumed by the selector and passes through the
// highlighter untouched.
type Action int

const (
	Next Action = iota
	Previous
	Clear
	Select
)

func (a Action) String() string {
	switch a {
	case Next:
		return "next"
	case Previous:
		return "previous"
	case Clear:
		return "clear"
	case Select:
		return "select"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Index is a list position, or None when nothing is highlighted or selected.
type Index int

// None is the "no position" sentinel.
const None Index = -1

// IsSome reports whether i refers to an actual list position.
func (i Index) IsSome() bool { return i >= 0 }

func (i Index) String() string {
	if !i.IsSome() {
		return "none"
	}
	return fmt.Sprintf("%d", int(i))
}

// Selection is emitted by the selector when a Select event lands: the item at
// the highlighted position together with that position.
type Selection[T any] struct {
	Index Index
	Item  T
}

// ListView is the capability a renderable list exposes to the coordinators.
// The coordinators never see the concrete list; any renderer (terminal menu,
// test spy) that implements these five operations can be driven.
type ListView interface {
	Highlight(i int)
	Unhighlight(i int)
	Select(i int)
	Unselect(i int)
	Count() int
}
