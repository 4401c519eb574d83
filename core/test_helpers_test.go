package core_test

import (
	"testing"

	"github.com/katalvlaran/kruskal/core"
	"github.com/stretchr/testify/require"
)

// triple is a compact (v1, v2, weight) literal for table-driven tests.
type triple struct {
	v1, v2 int
	w      float64
}

// mustEdge builds an Edge or fails the test.
func mustEdge(t *testing.T, v1, v2 int, w float64) core.Edge {
	t.Helper()
	e, err := core.NewEdge(v1, v2, w)
	require.NoError(t, err)

	return e
}

// edgesOf converts triples into Edges.
func edgesOf(t *testing.T, ts ...triple) []core.Edge {
	t.Helper()
	out := make([]core.Edge, 0, len(ts))
	for _, tr := range ts {
		out = append(out, mustEdge(t, tr.v1, tr.v2, tr.w))
	}

	return out
}

// buildGraph creates an n-vertex graph and inserts every triple, requiring
// each insertion to succeed.
func buildGraph(t *testing.T, n int, ts ...triple) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, tr := range ts {
		added, err := g.AddEdge(tr.v1, tr.v2, tr.w)
		require.NoError(t, err)
		require.True(t, added, "edge %v rejected", tr)
	}

	return g
}
