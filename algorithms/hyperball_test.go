package algorithms

import (
	"math"
	"testing"

	"github.com/samborick/graphball/hll"
	"github.com/samborick/graphball/internal/fixtures"
)

const hyperBallSeed = 0x0BAD5EED

func TestHyperBallByteNearExactAPL(t *testing.T) {
	g := fixtures.GraphOneCSR()
	counters := hll.NewByteArray(g.Vertices(), hll.B4, hyperBallSeed, hll.NewXXHasher())
	apl := HyperBallByte(g, counters)

	const exact = 3.1556
	if math.Abs(apl-exact) > math.Max(exact, apl)*1.0 {
		t.Fatalf("HyperBallByte(graph_one) = %v, too far from exact APL %v", apl, exact)
	}
}

func TestHyperBallCompactNearExactAPL(t *testing.T) {
	g := fixtures.GraphOneCSR()
	counters := hll.NewCompactArray(g.Vertices(), hll.B4, 10, hyperBallSeed, hll.NewXXHasher())
	apl := HyperBallCompact(g, counters)

	const exact = 3.1556
	if math.Abs(apl-exact) > math.Max(exact, apl)*1.0 {
		t.Fatalf("HyperBallCompact(graph_one) = %v, too far from exact APL %v", apl, exact)
	}
}

func TestHyperBallByteAndCompactAgree(t *testing.T) {
	byteAPL := HyperBallByte(fixtures.GraphOneCSR(), hll.NewByteArray(10, hll.B4, hyperBallSeed, hll.NewXXHasher()))
	compactAPL := HyperBallCompact(fixtures.GraphOneCSR(), hll.NewCompactArray(10, hll.B4, 10, hyperBallSeed, hll.NewXXHasher()))
	if byteAPL != compactAPL {
		t.Fatalf("byte-backed and compact HyperBall diverged: %v vs %v", byteAPL, compactAPL)
	}
}
