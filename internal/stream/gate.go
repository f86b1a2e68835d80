package stream

// Toggle is the control handle of a Gate. The underlying channel holds at most
// one pending value and Set always replaces an unread one, so the gate only
// ever acts on the most recent desired state and Set never blocks the caller.
type Toggle struct {
	ch chan bool
}

// NewToggle returns a toggle whose gate starts closed.
func NewToggle() *Toggle {
	return &Toggle{ch: make(chan bool, 1)}
}

// Set records the desired gate state, overwriting any state the gate has not
// picked up yet.
func (t *Toggle) Set(open bool) {
	for {
		select {
		case t.ch <- open:
			return
		default:
			// Stale value pending; drop it and retry.
			select {
			case <-t.ch:
			default:
			}
		}
	}
}

// Close releases the toggle. A gate reading a closed toggle keeps its last
// known state.
func (t *Toggle) Close() {
	close(t.ch)
}

// Gate forwards values from in while the latest value received from t is
// true and drops them while it is false. A pending toggle update is applied
// before each value is judged. The output closes when in closes.
func Gate[T any](in <-chan T, t *Toggle) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		open := false
		ctrl := t.ch
		for {
			select {
			case v, ok := <-ctrl:
				if !ok {
					ctrl = nil
					continue
				}
				open = v
			case e, ok := <-in:
				if !ok {
					return
				}
				if ctrl != nil {
					select {
					case v, ok := <-ctrl:
						if ok {
							open = v
						} else {
							ctrl = nil
						}
					default:
					}
				}
				if open {
					out <- e
				}
			}
		}
	}()
	return out
}
