package rain

import (
	"math/rand"
	"testing"

	"github.com/onsi/gomega"
)

func TestPickDepth_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, maxDepth := range []int{0, 1, 2, 5, 9} {
		for i := 0; i < 1000; i++ {
			d := pickDepth(rng, maxDepth)
			if d < 0 || d > maxDepth {
				t.Fatalf("pickDepth(maxDepth=%d) = %d, out of range", maxDepth, d)
			}
		}
	}
}

func TestPickDepth_ZeroMaxDepth(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		if d := pickDepth(rng, 0); d != 0 {
			t.Fatalf("pickDepth(maxDepth=0) = %d, want 0", d)
		}
	}
}

func TestPickDepth_Distribution(t *testing.T) {
	g := gomega.NewWithT(t)
	rng := rand.New(rand.NewSource(42))

	const draws = 10000
	counts := make([]int, 2)
	for i := 0; i < draws; i++ {
		counts[pickDepth(rng, 1)]++
	}

	// weight(0)=2, weight(1)=1: expect a 2:1 split, and depth 0 strictly
	// more frequent than depth 1.
	g.Expect(counts[0]).To(gomega.BeNumerically(">", counts[1]))
	ratio := float64(counts[0]) / float64(counts[1])
	g.Expect(ratio).To(gomega.BeNumerically("~", 2.0, 0.3))
}

func TestPickDepth_ShallowAlwaysMostFrequent(t *testing.T) {
	g := gomega.NewWithT(t)
	rng := rand.New(rand.NewSource(7))

	const draws = 20000
	maxDepth := 5
	counts := make([]int, maxDepth+1)
	for i := 0; i < draws; i++ {
		counts[pickDepth(rng, maxDepth)]++
	}

	for d := 0; d < maxDepth; d++ {
		g.Expect(counts[d]).To(gomega.BeNumerically(">", counts[d+1]),
			"depth %d should be drawn more often than depth %d", d, d+1)
	}
	// Deepest layer has weight 1, not 0: it must still be reachable.
	g.Expect(counts[maxDepth]).To(gomega.BeNumerically(">", 0))
}
