package graph

// EdgeList is a flat, mutable edge slice: the representation Karger–Stein's
// contraction reorders in place by swapping edges as it picks them.
type EdgeList struct {
	vertices int
	edges    []Edge
}

// NewEdgeList builds an EdgeList over n vertices from edges. The slice is
// copied; callers may reuse their own backing array afterward.
func NewEdgeList(n int, edges []Edge) *EdgeList {
	return &EdgeList{vertices: n, edges: append([]Edge(nil), edges...)}
}

// Vertices returns the vertex count.
func (l *EdgeList) Vertices() int { return l.vertices }

// Edges returns the current edge count.
func (l *EdgeList) Edges() int { return len(l.edges) }

// EdgesMut exposes the backing edge slice for in-place rewriting.
func (l *EdgeList) EdgesMut() []Edge { return l.edges }

// Truncate drops the tail of the edge slice, keeping only the first n
// entries.
func (l *EdgeList) Truncate(n int) { l.edges = l.edges[:n] }

// Clone returns an independent copy of l.
func (l *EdgeList) Clone() *EdgeList {
	return &EdgeList{vertices: l.vertices, edges: append([]Edge(nil), l.edges...)}
}
