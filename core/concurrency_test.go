package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdgeAndRead mixes insertions with MST and edge reads to
// verify no races or lost updates occur.
func TestConcurrentAddEdgeAndRead(t *testing.T) {
	const n = 200
	g := buildGraph(t, n)

	var wg sync.WaitGroup
	wg.Add(2 * (n - 1))
	for v := 1; v < n; v++ {
		go func(v int) {
			defer wg.Done()
			added, err := g.AddEdge(v-1, v, float64(v))
			assert.NoError(t, err)
			assert.True(t, added)
		}(v)
		go func() {
			defer wg.Done()
			_, err := g.MinimumSpanningTree()
			assert.NoError(t, err)
			_ = g.Edges()
			_ = g.TotalWeight()
		}()
	}
	wg.Wait()

	require.Equal(t, n-1, g.EdgeCount())
	assert.True(t, g.IsConnected())
	mst, err := g.MinimumSpanningTree()
	require.NoError(t, err)
	assert.Len(t, mst, n-1)
}
