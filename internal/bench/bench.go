// Package bench times Kruskal's algorithm on random graphs of growing size
// and density and renders the measurements.
package bench

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/kruskal/core"
	"github.com/katalvlaran/kruskal/disjointset"
)

// Result is one measured graph.
type Result struct {
	Trial      int
	Multiplier int
	Vertices   int
	Edges      int
	TreeSize   int
	Connected  bool
	Elapsed    time.Duration
}

// Run executes the benchmark described by cfg.
//
// For trial i = 1..Trials the graph has InitialSize << i vertices; for
// j = 1..EdgeIterations it is generated with vertices*j edge attempts and
// its spanning tree is timed. Every graph draws from one generator seeded
// with cfg.Seed, so a session is reproducible. ctx is checked between graphs.
func Run(ctx context.Context, cfg *Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts []disjointset.Option
	if cfg.PathCompression {
		opts = append(opts, disjointset.WithPathCompression())
	}

	r := rand.New(rand.NewSource(cfg.Seed))
	results := make([]Result, 0, cfg.Trials*cfg.EdgeIterations)
	for i := 1; i <= cfg.Trials; i++ {
		size := cfg.InitialSize << i
		log.Debug().Int("trial", i).Int("vertices", size).Msg("starting trial")

		for j := 1; j <= cfg.EdgeIterations; j++ {
			if err := ctx.Err(); err != nil {
				return results, err
			}

			g, err := core.NewRandomGraph(size, size*j, r)
			if err != nil {
				return results, err
			}
			res, err := measure(g, opts)
			if err != nil {
				return results, err
			}
			res.Trial, res.Multiplier = i, j
			results = append(results, res)

			log.Debug().
				Int("trial", i).
				Int("edges", res.Edges).
				Dur("elapsed", res.Elapsed).
				Msg("graph measured")
		}
	}

	return results, nil
}

// measure times one spanning tree computation. Sorting the edges is part of
// the measured work.
func measure(g *core.Graph, opts []disjointset.Option) (Result, error) {
	var (
		mst []core.Edge
		err error
	)
	start := time.Now()
	if len(opts) > 0 {
		mst, err = core.Kruskal(g, opts...)
	} else {
		mst, err = g.MinimumSpanningTree()
	}
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Vertices:  g.VertexCount(),
		Edges:     g.EdgeCount(),
		TreeSize:  len(mst),
		Connected: len(mst) == g.VertexCount()-1,
		Elapsed:   elapsed,
	}, nil
}
