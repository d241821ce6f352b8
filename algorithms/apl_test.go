package algorithms

import (
	"testing"

	"github.com/samborick/graphball/internal/fixtures"
)

func TestExactAPLOnGraphOne(t *testing.T) {
	apl := ExactAPL(fixtures.GraphOneEdgeList())
	if apl < 3.145 || apl > 3.18 {
		t.Fatalf("ExactAPL(graph_one) = %v, want in [3.145, 3.18]", apl)
	}
}
