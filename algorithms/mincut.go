package algorithms

import (
	"math"

	"github.com/samborick/graphball/graph"
	"github.com/samborick/graphball/unionfind"
	"github.com/samborick/graphball/xrand"
)

// cutSet is the capability contractTo needs from a disjoint-set: both
// *unionfind.DisjointSet (the baseline, cloneable variant) and
// *unionfind.UndoDisjointSet (the fast, save/restore variant) satisfy it, so
// contraction and cut evaluation are written once and shared by both
// Karger–Stein flavors.
type cutSet interface {
	Union(i, j int)
	AreConnected(i, j int) bool
	Components() int
}

// runsFor returns the number of independent Karger–Stein runs for a graph
// of n vertices: floor(log2 n)^2 + 2. The reference algorithm instead
// derives this from trailing_zeros(^n), a bit trick that only exactly
// equals floor(log2 n) when n is a power of two; this is the intended
// quantity computed directly.
func runsFor(n int) int {
	if n < 2 {
		return 2
	}
	log := math.Floor(math.Log2(float64(n)))
	return int(log*log) + 2
}

// contractTo repeatedly swaps a uniformly chosen edge (from the unvisited
// suffix starting at *cursor) into position *cursor and unions its
// endpoints, advancing *cursor, until ds has exactly k components or the
// edge slice is exhausted.
func contractTo(edges []graph.Edge, ds cutSet, k int, cursor *int, r xrand.Source) {
	cur := *cursor
	for cur < len(edges) && ds.Components() > k {
		i := cur + int(r.Uint64()%uint64(len(edges)-cur))
		edges[cur], edges[i] = edges[i], edges[cur]
		if !ds.AreConnected(edges[cur].U, edges[cur].V) {
			ds.Union(edges[cur].U, edges[cur].V)
		}
		cur++
	}
	*cursor = cur
}

// cutEdges scans the full edge slice and returns every edge whose endpoints
// ended up in different components of ds. Valid once ds.Components() == 2.
func cutEdges(edges []graph.Edge, ds cutSet) []graph.Edge {
	var out []graph.Edge
	for _, e := range edges {
		if !ds.AreConnected(e.U, e.V) {
			out = append(out, e)
		}
	}
	return out
}

func splitCount(components int) int {
	return 1 + int(float64(components)/math.Sqrt2)
}

func minCutBaseline(edges []graph.Edge, ds *unionfind.DisjointSet, cursor int, r xrand.Source) []graph.Edge {
	if ds.Components() < 6 {
		cur := cursor
		contractTo(edges, ds, 2, &cur, r)
		if ds.Components() != 2 {
			return nil
		}
		return cutEdges(edges, ds)
	}

	t := splitCount(ds.Components())

	cur1 := cursor
	ds1 := ds.Clone()
	contractTo(edges, ds1, t, &cur1, r)
	m1 := minCutBaseline(edges, ds1, cur1, r)

	cur2 := cursor
	ds2 := ds.Clone()
	contractTo(edges, ds2, t, &cur2, r)
	m2 := minCutBaseline(edges, ds2, cur2, r)

	return smallerCut(m1, m2)
}

func minCutFast(edges []graph.Edge, ds *unionfind.UndoDisjointSet, cursor int, r xrand.Source) []graph.Edge {
	if ds.Components() < 6 {
		cur := cursor
		contractTo(edges, ds, 2, &cur, r)
		if ds.Components() != 2 {
			return nil
		}
		return cutEdges(edges, ds)
	}

	t := splitCount(ds.Components())

	cur := cursor
	ds.SaveState()
	contractTo(edges, ds, t, &cur, r)
	m1 := minCutFast(edges, ds, cur, r)
	ds.RestoreState()

	cur = cursor
	ds.SaveState()
	contractTo(edges, ds, t, &cur, r)
	m2 := minCutFast(edges, ds, cur, r)
	ds.RestoreState()

	return smallerCut(m1, m2)
}

func smallerCut(a, b []graph.Edge) []graph.Edge {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case len(b) < len(a):
		return b
	default:
		return a
	}
}

// KargerStein returns the smallest cut edge set found over runsFor(g.Vertices())
// independent randomized contraction runs, using the baseline (clone-per-
// branch) disjoint-set.
func KargerStein(g graph.EdgeListMutable, r xrand.Source) []graph.Edge {
	n := g.Vertices()
	edges := g.EdgesMut()
	var best []graph.Edge
	for i, runs := 0, runsFor(n); i < runs; i++ {
		ds := unionfind.New(n, unionfind.PathCompression)
		best = smallerCut(best, minCutBaseline(edges, ds, 0, r))
	}
	return best
}

// KargerSteinCount returns the size of the smallest cut KargerStein finds.
func KargerSteinCount(g graph.EdgeListMutable, r xrand.Source) int {
	return len(KargerStein(g, r))
}

// FastKargerStein is KargerStein using a single undoable disjoint-set per
// run instead of cloning at every recursive branch.
func FastKargerStein(g graph.EdgeListMutable, r xrand.Source) []graph.Edge {
	n := g.Vertices()
	edges := g.EdgesMut()
	var best []graph.Edge
	for i, runs := 0, runsFor(n); i < runs; i++ {
		ds := unionfind.NewUndo(n, unionfind.PathCompression)
		best = smallerCut(best, minCutFast(edges, ds, 0, r))
	}
	return best
}

// FastKargerSteinCount returns the size of the smallest cut FastKargerStein
// finds.
func FastKargerSteinCount(g graph.EdgeListMutable, r xrand.Source) int {
	return len(FastKargerStein(g, r))
}
