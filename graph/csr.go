package graph

// CSR (compressed sparse row) is a graph view built once from a complete
// edge list and read many times: row indexes bound each vertex's slice of
// the shared columns array, giving O(deg(v)) neighbor iteration with no
// per-vertex slice allocation. Used by HyperBall, which scans every
// vertex's full out-neighborhood every round.
type CSR struct {
	columns    []Edge
	rowIndexes []int
}

// NewCSR builds a CSR over n vertices from edges. edges need not be sorted
// by source vertex; NewCSR buckets them in one counting pass.
func NewCSR(n int, edges []Edge) *CSR {
	counts := make([]int, n+1)
	for _, e := range edges {
		counts[e.U+1]++
	}
	for i := 1; i <= n; i++ {
		counts[i] += counts[i-1]
	}
	rowIndexes := append([]int(nil), counts...)
	columns := make([]Edge, len(edges))
	cursor := append([]int(nil), counts...)
	for _, e := range edges {
		columns[cursor[e.U]] = e
		cursor[e.U]++
	}
	return &CSR{columns: columns, rowIndexes: rowIndexes}
}

// Vertices returns the vertex count.
func (c *CSR) Vertices() int { return len(c.rowIndexes) - 1 }

// Edges returns the edge count.
func (c *CSR) Edges() int { return len(c.columns) }

// Neighbors returns vertex v's out-edges as a slice view into the shared
// columns array. Callers must not retain it past the CSR's lifetime if they
// mutate the CSR elsewhere (they never do — CSR is read-only after
// construction).
func (c *CSR) Neighbors(v int) []Edge {
	return c.columns[c.rowIndexes[v]:c.rowIndexes[v+1]]
}

// Neighborhoods returns every vertex's out-edge slice in vertex order.
func (c *CSR) Neighborhoods() [][]Edge {
	out := make([][]Edge, c.Vertices())
	for v := range out {
		out[v] = c.Neighbors(v)
	}
	return out
}
