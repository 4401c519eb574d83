package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kruskal/core"
	"github.com/katalvlaran/kruskal/disjointset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKruskal_Scenarios pins the tie-breaking behaviour on small graphs.
func TestKruskal_Scenarios(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges []triple
		want  []triple
	}{
		{
			name:  "equal weights triangle",
			n:     3,
			edges: []triple{{0, 1, 0.5}, {0, 2, 0.5}, {1, 2, 0.5}},
			want:  []triple{{0, 1, 0.5}, {0, 2, 0.5}},
		},
		{
			name:  "equal weights square",
			n:     4,
			edges: []triple{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 0, 1}},
			want:  []triple{{0, 1, 1}, {0, 3, 1}, {1, 2, 1}},
		},
		{
			name:  "self-loops are skipped",
			n:     3,
			edges: []triple{{0, 0, 0.0}, {0, 1, 0.5}, {1, 1, 0.5}, {0, 2, 0.5}, {1, 2, 0.0}},
			want:  []triple{{1, 2, 0.0}, {0, 1, 0.5}},
		},
		{
			name:  "lighter edges win",
			n:     4,
			edges: []triple{{0, 1, 4}, {1, 2, 2}, {2, 3, 5}, {3, 0, 4}, {0, 2, 1}, {1, 3, 3}},
			want:  []triple{{0, 2, 1}, {1, 2, 2}, {1, 3, 3}},
		},
		{
			name:  "disconnected forest",
			n:     5,
			edges: []triple{{0, 1, 2}, {3, 4, 1}, {1, 0, 9}},
			want:  []triple{{3, 4, 1}, {0, 1, 2}},
		},
		{
			name: "single vertex",
			n:    1,
			want: []triple{},
		},
		{
			name: "empty graph",
			n:    0,
			want: []triple{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.NewGraph(tc.n)
			require.NoError(t, err)
			for _, e := range tc.edges {
				_, err = g.AddEdge(e.v1, e.v2, e.w)
				require.NoError(t, err)
			}

			mst, err := g.MinimumSpanningTree()
			require.NoError(t, err)
			assert.Equal(t, edgesOf(t, tc.want...), mst)

			direct, err := core.Kruskal(g)
			require.NoError(t, err)
			assert.Equal(t, mst, direct)

			compressed, err := core.Kruskal(g, disjointset.WithPathCompression())
			require.NoError(t, err)
			assert.Equal(t, mst, compressed)
		})
	}
}

// TestKruskal_RandomProperties checks size bounds, absence of loops,
// acyclicity and determinism on random graphs.
func TestKruskal_RandomProperties(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for round := 0; round < 20; round++ {
		n := 1 + r.Intn(60)
		attempts := r.Intn(3 * n)
		g := buildGraph(t, n)
		for i := 0; i < attempts; i++ {
			_, err := g.AddEdge(r.Intn(n), r.Intn(n), float64(r.Intn(10)))
			require.NoError(t, err)
		}

		mst, err := g.MinimumSpanningTree()
		require.NoError(t, err)
		assert.LessOrEqual(t, len(mst), n-1)

		sets, err := disjointset.New(n)
		require.NoError(t, err)
		for _, e := range mst {
			require.False(t, e.IsLoop(), "loop %v in tree", e)
			merged, err := sets.Union(e.Low(), e.High())
			require.NoError(t, err)
			require.True(t, merged, "edge %v closes a cycle", e)
		}

		// The tree spans exactly the components of the full edge set.
		all, err := disjointset.New(n)
		require.NoError(t, err)
		for _, e := range g.Edges() {
			_, _ = all.Union(e.Low(), e.High())
		}
		assert.Equal(t, all.Count(), sets.Count())
		assert.Equal(t, all.Count() == 1, g.IsConnected())
		assert.Equal(t, g.IsConnected(), len(mst) == n-1)

		// The tree depends on the edge set only, not on insertion order.
		clone := buildGraph(t, n)
		for _, e := range g.Edges() {
			_, err := clone.AddEdge(e.Low(), e.High(), e.Weight())
			require.NoError(t, err)
		}
		again, err := clone.MinimumSpanningTree()
		require.NoError(t, err)
		assert.Equal(t, mst, again)
	}
}

// sliceSource is an EdgeSource that is not a Graph.
type sliceSource struct {
	n     int
	edges []core.Edge
}

func (s sliceSource) VertexCount() int   { return s.n }
func (s sliceSource) Edges() []core.Edge { return s.edges }

// TestKruskal_ForeignSource verifies Kruskal accepts any EdgeSource and
// reports endpoints outside the declared vertex range.
func TestKruskal_ForeignSource(t *testing.T) {
	src := sliceSource{n: 3, edges: edgesOf(t, triple{0, 1, 1}, triple{1, 2, 2}, triple{0, 2, 3})}
	mst, err := core.Kruskal(src)
	require.NoError(t, err)
	assert.Equal(t, edgesOf(t, triple{0, 1, 1}, triple{1, 2, 2}), mst)

	bad := sliceSource{n: 2, edges: edgesOf(t, triple{0, 5, 1})}
	_, err = core.Kruskal(bad)
	assert.ErrorIs(t, err, disjointset.ErrOutOfRange)
}
