package graph

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/samborick/graphball/xrand"
)

// Adjacency is a mutable graph view with per-vertex neighbor slices plus a
// per-vertex bitset for O(1) edge-existence checks — the representation the
// clustering-coefficient sampler queries on every trial. Contract merges two
// vertices in place.
type Adjacency struct {
	neighbors [][]int
	present   []*bitset.BitSet
	edgeCount int
}

// NewAdjacency builds an Adjacency view over n vertices from a directed edge
// list. Parallel edges are preserved in neighbors but collapse in present,
// since the bitset only answers "does any edge u->v exist".
func NewAdjacency(n int, edges []Edge) *Adjacency {
	a := &Adjacency{
		neighbors: make([][]int, n),
		present:   make([]*bitset.BitSet, n),
	}
	for i := range a.present {
		a.present[i] = bitset.New(uint(n))
	}
	for _, e := range edges {
		a.neighbors[e.U] = append(a.neighbors[e.U], e.V)
		a.present[e.U].Set(uint(e.V))
		a.edgeCount++
	}
	return a
}

// Vertices returns the current vertex count.
func (a *Adjacency) Vertices() int { return len(a.neighbors) }

// Edges returns the current edge count.
func (a *Adjacency) Edges() int { return a.edgeCount }

// Neighbors returns vertex v's out-neighbor list as (v, w) edges.
func (a *Adjacency) Neighbors(v int) []Edge {
	out := make([]Edge, len(a.neighbors[v]))
	for i, w := range a.neighbors[v] {
		out[i] = Edge{U: v, V: w}
	}
	return out
}

// OutDegree returns vertex v's out-degree, counting parallel edges.
func (a *Adjacency) OutDegree(v int) int { return len(a.neighbors[v]) }

// SampleNeighbor draws a uniformly random out-neighbor of v. Panics if v has
// no out-neighbors; callers are expected to check OutDegree first.
func (a *Adjacency) SampleNeighbor(v int, r xrand.Source) int {
	deg := len(a.neighbors[v])
	if deg == 0 {
		panic("graphball: SampleNeighbor called on a vertex with no neighbors")
	}
	return a.neighbors[v][r.Uint64()%uint64(deg)]
}

// HasLink reports whether any edge u->v exists, in O(1).
func (a *Adjacency) HasLink(u, v int) bool {
	return a.present[u].Test(uint(v))
}

// Contract merges vertex v into vertex u: every edge touching v is rewired
// to touch u instead, edges between u and v (now u->u self-loops) are
// dropped, and v's neighbor list and bitset are cleared. u keeps its own
// index; v becomes isolated but is not removed from the slices.
func (a *Adjacency) Contract(u, v int) {
	for _, w := range a.neighbors[v] {
		if w == u {
			a.edgeCount--
			continue
		}
		a.neighbors[u] = append(a.neighbors[u], w)
		a.present[u].Set(uint(w))
	}
	kept := a.neighbors[u][:0]
	for _, w := range a.neighbors[u] {
		if w == v {
			a.edgeCount--
			continue
		}
		kept = append(kept, w)
	}
	a.neighbors[u] = kept
	for w := range a.neighbors {
		a.rewriteReference(w, v, u)
	}
	a.present[u].Clear(uint(u))
	a.present[u].Clear(uint(v))
	a.neighbors[v] = nil
	a.present[v].ClearAll()
}

// rewriteReference replaces every occurrence of from in vertex w's neighbor
// list (and bitset) with to, used when references to v must now point at u.
func (a *Adjacency) rewriteReference(w, from, to int) {
	if w == from || w == to {
		return
	}
	for i, n := range a.neighbors[w] {
		if n == from {
			a.neighbors[w][i] = to
		}
	}
	if a.present[w].Test(uint(from)) {
		a.present[w].Clear(uint(from))
		a.present[w].Set(uint(to))
	}
}
