// Package stream provides the channel combinators the navigation pipeline is
// built from: order-preserving transforms, a fan-in merger and a toggle gate.
// Every combinator starts one goroutine that reads its input until closure and
// closes its output on the way out, so shutting a pipeline down is always
// "close the source channel".
package stream

// Map forwards fn(v) for every v received on in. One input value yields
// exactly one output value, in arrival order.
func Map[T, U any](in <-chan T, fn func(T) U) <-chan U {
	out := make(chan U)
	go func() {
		defer close(out)
		for v := range in {
			out <- fn(v)
		}
	}()
	return out
}

// TryMap is Map for transforms that can fail. The first error stops the stage:
// it is delivered on the returned error channel and both channels are closed.
// Nothing downstream ever sees a value produced from a failed transform.
func TryMap[T, U any](in <-chan T, fn func(T) (U, error)) (<-chan U, <-chan error) {
	out := make(chan U)
	errs := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errs)
		for v := range in {
			u, err := fn(v)
			if err != nil {
				errs <- err
				return
			}
			out <- u
		}
	}()
	return out, errs
}

// Filter forwards only values for which keep returns true.
func Filter[T any](in <-chan T, keep func(T) bool) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for v := range in {
			if keep(v) {
				out <- v
			}
		}
	}()
	return out
}

// Remove is the complement of Filter: values for which drop returns true are
// discarded.
func Remove[T any](in <-chan T, drop func(T) bool) <-chan T {
	return Filter(in, func(v T) bool { return !drop(v) })
}

// Distinct suppresses consecutive duplicates. The first value always passes.
func Distinct[T comparable](in <-chan T) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		first := true
		var last T
		for v := range in {
			if !first && v == last {
				continue
			}
			first = false
			last = v
			out <- v
		}
	}()
	return out
}
