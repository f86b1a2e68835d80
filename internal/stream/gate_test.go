package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Control sequence false -> true -> false: only events processed while the
// latest control value is true come through.
func TestGateForwardsOnlyWhileOpen(t *testing.T) {
	in := make(chan string)
	toggle := NewToggle()
	out := Gate(in, toggle)

	toggle.Set(false)
	toggle.Set(true) // overwrites the unread false
	in <- "during"
	require.Equal(t, "during", <-out)

	// The forwarded read above guarantees the gate is idle again, so the
	// false below is pending before the next event is judged.
	toggle.Set(false)
	in <- "after"

	close(in)
	_, ok := <-out
	require.False(t, ok, `"after" should have been dropped`)
}

func TestGateStartsClosed(t *testing.T) {
	in := make(chan int)
	toggle := NewToggle()
	out := Gate(in, toggle)

	in <- 1
	in <- 2
	close(in)

	require.Empty(t, collect(out), "nothing may flow before the first true")
}

func TestToggleSetNeverBlocks(t *testing.T) {
	toggle := NewToggle()
	// No gate is reading; every Set must still return immediately.
	for i := 0; i < 1000; i++ {
		toggle.Set(i%2 == 0)
	}
}

func TestGateActsOnMostRecentToggle(t *testing.T) {
	in := make(chan int)
	toggle := NewToggle()
	out := Gate(in, toggle)

	// Burst of toggles with no reader in between: last one wins.
	toggle.Set(true)
	toggle.Set(false)
	toggle.Set(true)
	in <- 42
	require.Equal(t, 42, <-out)

	toggle.Set(false)
	toggle.Set(true)
	toggle.Set(false)
	in <- 43
	close(in)
	_, ok := <-out
	require.False(t, ok, "43 should have been dropped")
}

func TestGateSurvivesToggleClose(t *testing.T) {
	in := make(chan int)
	toggle := NewToggle()
	out := Gate(in, toggle)

	toggle.Set(true)
	in <- 1
	require.Equal(t, 1, <-out)

	toggle.Close()
	in <- 2 // last known state was open
	require.Equal(t, 2, <-out)
	close(in)
	_, ok := <-out
	require.False(t, ok)
}
