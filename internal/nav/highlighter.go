package nav

// Highlighter starts the highlight coordinator over in and returns its output
// stream. It understands Next, Previous, Clear and raw int events (direct
// position set, e.g. from pointer hover); recognized events move the single
// highlighted position and the resulting Index is emitted downstream. Any
// other event is forwarded verbatim with no state change.
//
// The list size is read from view on every transition, so the list may grow
// or shrink between events. Callers must not feed Next/Previous while the
// list is empty.
//
// The coordinator owns its state for its whole life: it is created here,
// mutated only inside the loop, and discarded when in closes, at which point
// the output closes too.
func Highlighter(in <-chan any, view ListView) <-chan any {
	out := make(chan any)
	go func() {
		defer close(out)
		cur := None
		for ev := range in {
			next, ok := transition(cur, ev, view.Count())
			if !ok {
				out <- ev
				continue
			}
			if cur.IsSome() {
				view.Unhighlight(int(cur))
			}
			if next.IsSome() {
				view.Highlight(int(next))
			}
			cur = next
			out <- cur
		}
	}()
	return out
}

// transition computes the next highlighted position. ok is false for events
// the highlighter does not understand.
func transition(cur Index, ev any, count int) (next Index, ok bool) {
	switch e := ev.(type) {
	case Action:
		switch e {
		case Next:
			if !cur.IsSome() {
				return 0, true
			}
			return Index((int(cur) + 1) % count), true
		case Previous:
			if !cur.IsSome() {
				return Index(count - 1), true
			}
			return Index((int(cur) - 1 + count) % count), true
		case Clear:
			return None, true
		}
		// Select and any future action belong to downstream coordinators.
		return None, false
	case int:
		return Index(e), true
	}
	return None, false
}
