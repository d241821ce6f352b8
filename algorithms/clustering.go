package algorithms

import (
	"github.com/samborick/graphball/graph"
	"github.com/samborick/graphball/xrand"
)

// ClusteringGraph is the capability the clustering-coefficient sampler needs
// from a graph: graph.RandomNeighbor to sample a uniformly random
// out-neighbor of a vertex, plus an O(1) adjacency check. graph.Adjacency
// satisfies it.
type ClusteringGraph interface {
	graph.RandomNeighbor
	HasLink(u, v int) bool
}

// ClusteringCoefficient estimates the local clustering coefficient by
// sampling k trials: each trial picks a uniformly random vertex from nodes
// (the caller-filtered set of vertices with out-degree >= 2), draws two
// distinct neighbors of it (resampling on a tie), and checks whether those
// two neighbors are themselves linked. Returns 0 if nodes is empty.
func ClusteringCoefficient(g ClusteringGraph, nodes []int, k int, r xrand.Source) float64 {
	if len(nodes) == 0 {
		return 0.0
	}
	hits := 0
	for i := 0; i < k; i++ {
		v := nodes[r.Uint64()%uint64(len(nodes))]
		u, w := twoDistinctNeighbors(g, v, r)
		if g.HasLink(u, w) {
			hits++
		}
	}
	return float64(hits) / float64(k)
}

// twoDistinctNeighbors draws two distinct out-neighbors of v, resampling
// whenever the draw produces a tie. v must have out-degree >= 2; callers
// are expected to pre-filter, per the sampler's contract.
func twoDistinctNeighbors(g ClusteringGraph, v int, r xrand.Source) (int, int) {
	if g.OutDegree(v) < 2 {
		panic("graphball: ClusteringCoefficient sampled a vertex with out-degree < 2")
	}
	for {
		u := g.SampleNeighbor(v, r)
		w := g.SampleNeighbor(v, r)
		if u != w {
			return u, w
		}
	}
}
