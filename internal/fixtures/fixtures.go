/*
Package fixtures builds the test graphs used across package tests: graph_one
(the fixed 10-vertex two-clique example the original algorithm suite was
validated against) and an Erdős–Rényi random-graph generator. Neither is
part of the core runtime — they exist only to give tests something
reproducible to run the algorithms against.
*/
package fixtures

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/samborick/graphball/graph"
	"github.com/samborick/graphball/xrand"
)

// GraphOneEdges returns the edge list of graph_one: two K5 cliques on
// {0..4} and {5..9}, bridged by exactly three edges (2,6), (4,5), (3,7) —
// the graph's minimum cut. Expected exact APL is in [3.145, 3.18].
func GraphOneEdges() []graph.Edge {
	edges := []graph.Edge{}
	clique := func(base int) {
		for i := 0; i < 5; i++ {
			for j := 0; j < 5; j++ {
				if i == j {
					continue
				}
				edges = append(edges, graph.Edge{U: base + i, V: base + j})
			}
		}
	}
	clique(0)
	clique(5)
	edges = append(edges,
		graph.Edge{U: 2, V: 6},
		graph.Edge{U: 4, V: 5},
		graph.Edge{U: 3, V: 7},
	)
	return edges
}

// GraphOneEdgeList builds graph_one as an EdgeList.
func GraphOneEdgeList() *graph.EdgeList {
	return graph.NewEdgeList(10, GraphOneEdges())
}

// GraphOneCSR builds graph_one as a CSR.
func GraphOneCSR() *graph.CSR {
	return graph.NewCSR(10, GraphOneEdges())
}

// GraphOneAdjacency builds graph_one as an Adjacency view.
func GraphOneAdjacency() *graph.Adjacency {
	return graph.NewAdjacency(10, GraphOneEdges())
}

// RandomGraphER draws an edge count from Binomial(n(n-1)/2, p) by summing
// Bernoulli(p) trials, then samples that many distinct non-self-loop edges
// uniformly at random, deduplicated with a bitset.BitSet per source vertex
// (exercising the same dependency graph.Adjacency uses for HasLink, rather
// than a hash-set).
func RandomGraphER(n int, p float64, r xrand.Source) []graph.Edge {
	maxEdges := n * (n - 1) / 2
	target := binomialSample(maxEdges, p, r)
	if target > n*(n-1) {
		target = n * (n - 1)
	}

	seen := make([]*bitset.BitSet, n)
	for i := range seen {
		seen[i] = bitset.New(uint(n))
	}

	edges := make([]graph.Edge, 0, target)
	for len(edges) < target {
		u := int(r.Uint64() % uint64(n))
		v := int(r.Uint64() % uint64(n))
		if u == v || seen[u].Test(uint(v)) {
			continue
		}
		seen[u].Set(uint(v))
		edges = append(edges, graph.Edge{U: u, V: v})
	}
	return edges
}

// binomialSample draws one sample from Binomial(trials, p) via direct
// Bernoulli summation — trials here is always n(n-1)/2 for a test graph,
// small enough that a tighter inversion method isn't worth the complexity.
func binomialSample(trials int, p float64, r xrand.Source) int {
	if trials <= 0 {
		return 0
	}
	count := 0
	for i := 0; i < trials; i++ {
		if uniformFloat(r) < p {
			count++
		}
	}
	return count
}

func uniformFloat(r xrand.Source) float64 {
	return float64(r.Uint64()>>11) / float64(uint64(1)<<53)
}
