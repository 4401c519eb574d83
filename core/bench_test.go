package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kruskal/core"
	"github.com/katalvlaran/kruskal/disjointset"
)

// BenchmarkAddEdge measures insertion into a large graph.
func BenchmarkAddEdge(b *testing.B) {
	const n = 1 << 16
	g, _ := core.NewGraph(n)
	r := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(r.Intn(n), r.Intn(n), r.Float64())
	}
}

// BenchmarkKruskal measures a full computation on a random sparse graph,
// sorting excluded.
func BenchmarkKruskal(b *testing.B) {
	g, _ := core.NewRandomGraph(4096, 4*4096, rand.New(rand.NewSource(1234)))
	_ = g.Edges() // sort once outside the timer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.Kruskal(g)
	}
}

// BenchmarkKruskal_PathCompression is BenchmarkKruskal with a compressing forest.
func BenchmarkKruskal_PathCompression(b *testing.B) {
	g, _ := core.NewRandomGraph(4096, 4*4096, rand.New(rand.NewSource(1234)))
	_ = g.Edges()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.Kruskal(g, disjointset.WithPathCompression())
	}
}
