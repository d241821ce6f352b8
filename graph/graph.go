/*
Package graph implements the three graph views the algorithms package reads
from: EdgeList (a flat, mutable edge slice — Karger–Stein's working
representation, also read by exact APL), CSR (a compressed sparse row
layout built once and read many times — HyperBall's representation), and
Adjacency (per-vertex neighbor slices with O(1) edge-existence checks — the
clustering-coefficient sampler's representation).

No single concrete type implements every operation every algorithm needs;
instead each algorithm takes the narrowest capability interface it requires,
and callers pick whichever concrete graph shape satisfies it.
*/
package graph

import "github.com/samborick/graphball/xrand"

// Edge is the canonical edge shape shared by every graph view. Weight is
// never read by any algorithm in this module; it exists purely so a caller
// can round-trip arbitrary payloads through contraction and construction.
type Edge struct {
	U, V   int
	Weight any
}

// Counter is the capability every graph view provides: its vertex and edge
// counts.
type Counter interface {
	Vertices() int
	Edges() int
}

// EdgeListMutable is satisfied by graph views whose edges can be read and
// rewritten in place — the representation Karger–Stein's contraction needs,
// and the one exact APL reads its edges from.
type EdgeListMutable interface {
	Counter
	EdgesMut() []Edge
}

// Neighborhoods is satisfied by graph views that can list a vertex's
// out-edges — the representation HyperBall needs.
type Neighborhoods interface {
	Counter
	Neighbors(v int) []Edge
}

// RandomNeighbor is satisfied by graph views that can sample a uniformly
// random neighbor of a vertex — the representation the clustering-
// coefficient sampler needs.
type RandomNeighbor interface {
	Counter
	OutDegree(v int) int
	SampleNeighbor(v int, r xrand.Source) int
}
