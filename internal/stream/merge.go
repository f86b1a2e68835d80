package stream

import "sync"

// Merge fans in any number of sources into one channel. Values from the same
// source keep their relative order; the interleaving between sources is
// whatever the scheduler produces. Every source value is forwarded exactly
// once. The output closes after all sources have closed.
func Merge[T any](ins ...<-chan T) <-chan T {
	out := make(chan T)
	var wg sync.WaitGroup
	for _, in := range ins {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := range in {
				out <- v
			}
		}()
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
