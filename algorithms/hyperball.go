package algorithms

import (
	"github.com/samborick/graphball/graph"
	"github.com/samborick/graphball/hll"
)

// HyperBallByte runs the HyperBall approximate average-path-length
// algorithm over g using a byte-backed counter per vertex. counters must
// already have length g.Vertices(); HyperBall registers vertex v into
// counters.At(v) itself.
//
// Each round, every vertex's scratch counter is seeded from its own current
// estimate and then unioned with every out-neighbor's current counter; the
// round's contribution to each vertex's running APL accumulator is
// t*(new_estimate - old_estimate). Rounds continue until no counter changes.
func HyperBallByte(g graph.Neighborhoods, counters *hll.ByteArray) float64 {
	n := g.Vertices()
	for v := 0; v < n; v++ {
		counters.At(v).Register(uint64(v))
	}

	apls := make([]float64, n)
	next := counters.CloneShape()

	modified := true
	t := 1.0
	for modified {
		modified = false
		for v := 0; v < n; v++ {
			next.ResetFrom(counters, v)
			a := next.At(v)
			for _, e := range g.Neighbors(v) {
				if counters.At(e.V).UnionOnto(a) {
					modified = true
				}
			}
			apls[v] += t * (a.Estimate() - counters.At(v).Estimate())
		}
		counters.Swap(next)
		t++
	}

	sum := 0.0
	for _, v := range apls {
		sum += v
	}
	return sum / float64(n)
}

// HyperBallCompact runs the same HyperBall algorithm over g using a
// bit-packed counter per vertex. Given the same seed, hasher, and b as the
// byte-backed run, it produces the same result (CompactHLL and ByteHLL are
// bit-identical sketches, see package hll).
func HyperBallCompact(g graph.Neighborhoods, counters *hll.CompactArray) float64 {
	n := g.Vertices()
	for v := 0; v < n; v++ {
		counters.At(v).Register(uint64(v))
	}

	apls := make([]float64, n)
	next := counters.CloneShape()

	modified := true
	t := 1.0
	for modified {
		modified = false
		for v := 0; v < n; v++ {
			next.ResetFrom(counters, v)
			a := next.At(v)
			for _, e := range g.Neighbors(v) {
				if counters.At(e.V).UnionOnto(a) {
					modified = true
				}
			}
			apls[v] += t * (a.Estimate() - counters.At(v).Estimate())
		}
		counters.Swap(next)
		t++
	}

	sum := 0.0
	for _, v := range apls {
		sum += v
	}
	return sum / float64(n)
}
