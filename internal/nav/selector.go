package nav

// Selector starts the selection coordinator over the highlighter's output
// stream. It shadows the highlighted position by watching the Index and raw
// int values flowing through, and on a Select event it moves the selected
// position there: the previous selection (if any) is unselected on the view,
// the new one selected, and a Selection carrying items[highlighted] is
// emitted. Everything that is not a Select is passed through unchanged.
//
// A Select arriving while nothing is highlighted has nothing to act on and is
// forwarded verbatim like any other unrecognized event.
//
// items is the ordered data backing the list, indexed by list position; it
// must stay in step with the view the upstream highlighter drives.
func Selector[T any](in <-chan any, view ListView, items []T) <-chan any {
	out := make(chan any)
	go func() {
		defer close(out)
		highlighted := None
		selected := None
		for ev := range in {
			switch e := ev.(type) {
			case Action:
				if e != Select || !highlighted.IsSome() {
					out <- ev
					continue
				}
				if selected.IsSome() {
					view.Unselect(int(selected))
				}
				view.Select(int(highlighted))
				selected = highlighted
				out <- Selection[T]{Index: selected, Item: items[selected]}
			case Index:
				highlighted = e
				out <- ev
			case int:
				highlighted = Index(e)
				out <- ev
			default:
				out <- ev
			}
		}
	}()
	return out
}
