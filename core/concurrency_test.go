// Package core_test verifies thread-safety of core.Model under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/fseof/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddReaction adds reactions from many goroutines and checks
// that none are lost.
func TestConcurrentAddReaction(t *testing.T) {
	m := core.NewModel()
	require.NoError(t, m.AddMetabolite(core.Metabolite{ID: MetA}))
	const num = 200
	var wg sync.WaitGroup
	errs := make(chan error, num)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- m.AddReaction(core.Reaction{
				ID:            fmt.Sprintf("R%d", id),
				Upper:         1,
				Stoichiometry: map[string]float64{MetA: 1},
			})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, num, m.ReactionCount())
}

// TestConcurrentAcquire lets many goroutines race for the scan guard; exactly
// one must win.
func TestConcurrentAcquire(t *testing.T) {
	m := core.NewModel()
	const num = 64
	var (
		wg    sync.WaitGroup
		won   atomic.Int32
		start = make(chan struct{})
	)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func() {
			defer wg.Done()
			<-start
			if _, err := m.Acquire(); err == nil {
				won.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()
	require.Equal(t, int32(1), won.Load())
}
