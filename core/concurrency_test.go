// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mosaic/core"
)

// TestConcurrentAddEdge links one hub tile to many others from parallel
// goroutines; every neighbour must appear exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("hub", strconv.Itoa(id))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	nbs, err := g.NeighborIDs("hub")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentDuplicateEdge races the same pair; only one insert wins.
func TestConcurrentDuplicateEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 50
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func() {
			defer wg.Done()
			if _, err := g.AddEdge("1951", "2311"); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			} else {
				require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, wins)
	require.Equal(t, 1, g.EdgeCount())
}

// TestConcurrentReadsAndWrites mixes NeighborIDs and Degree with AddEdge.
func TestConcurrentReadsAndWrites(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge("A", "B"+strconv.Itoa(id))
		}(i)
		go func() {
			defer wg.Done()
			_, err := g.NeighborIDs("A")
			require.NoError(t, err)
			_, err = g.Degree("A")
			require.NoError(t, err)
		}()
	}
	wg.Wait()
	d, err := g.Degree("A")
	require.NoError(t, err)
	require.Equal(t, rounds, d)
}
