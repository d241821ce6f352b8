package algorithms

import (
	"testing"

	"github.com/samborick/graphball/internal/fixtures"
	"github.com/samborick/graphball/xrand"
)

func eligibleNodes(n int, g interface{ OutDegree(int) int }) []int {
	var nodes []int
	for v := 0; v < n; v++ {
		if g.OutDegree(v) >= 2 {
			nodes = append(nodes, v)
		}
	}
	return nodes
}

func TestClusteringCoefficientOnGraphOneIsHigh(t *testing.T) {
	adj := fixtures.GraphOneAdjacency()
	nodes := eligibleNodes(10, adj)
	r := xrand.NewPCGSource(11)
	c := ClusteringCoefficient(adj, nodes, 2000, r)
	// graph_one is two complete K5 cliques bridged by 3 edges, so most
	// sampled neighbor pairs are themselves adjacent.
	if c < 0.5 {
		t.Fatalf("ClusteringCoefficient(graph_one) = %v, want >= 0.5", c)
	}
}

func TestClusteringCoefficientEmptyNodesReturnsZero(t *testing.T) {
	adj := fixtures.GraphOneAdjacency()
	r := xrand.NewPCGSource(12)
	if c := ClusteringCoefficient(adj, nil, 100, r); c != 0.0 {
		t.Fatalf("ClusteringCoefficient with no eligible nodes = %v, want 0", c)
	}
}
