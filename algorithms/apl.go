/*
Package algorithms implements the graph-analytics algorithm cores: exact
average path length via Floyd–Warshall, HyperBall's HyperLogLog-based
approximation of the same quantity, Karger–Stein randomized minimum cut
(baseline and undo-log-accelerated variants), and a clustering-coefficient
sampler.
*/
package algorithms

import "github.com/samborick/graphball/graph"

// ExactAPL computes the average path length of g by all-pairs shortest
// paths (Floyd–Warshall), treating every edge as undirected and unweighted.
// Intended for small graphs and as a ground truth for HyperBall; its O(n^3)
// cost makes it unsuitable for the graphs HyperBall targets.
func ExactAPL(g graph.EdgeListMutable) float64 {
	n := g.Vertices()
	const unreachable = int(^uint(0) >> 1)

	distances := make([][]int, n)
	for i := range distances {
		distances[i] = make([]int, n)
		for j := range distances[i] {
			distances[i][j] = unreachable
		}
		distances[i][i] = 0
	}
	for _, e := range g.EdgesMut() {
		distances[e.U][e.V] = 1
		distances[e.V][e.U] = 1
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if distances[i][k] == unreachable {
				continue
			}
			for j := 0; j < n; j++ {
				if distances[k][j] == unreachable {
					continue
				}
				if d := distances[i][k] + distances[k][j]; d < distances[i][j] {
					distances[i][j] = d
				}
			}
		}
	}

	total := 0
	for i := range distances {
		for _, d := range distances[i] {
			total += d
		}
	}
	return float64(total) / (float64(n*(n-1)) / 2.0)
}
