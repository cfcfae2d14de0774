package rain

import (
	"fmt"
	"math/rand"
)

// Strand length bounds, in symbols. Deeper layers are scaled down toward
// MinLength to fake distance.
const (
	MinLength = 4
	MaxLength = 30
)

// Factory derives new strands from a depth layer and the global tuning
// ratios. All randomness flows through the one injected source so runs are
// reproducible from a seed.
type Factory struct {
	rng      *rand.Rand
	symbols  *SymbolGen
	maxDepth int
	length   int // global length setting, 1-10
	air      int // global spacing setting, 1-10
}

// NewFactory builds a strand factory. Settings are assumed to be validated
// at the boundary: maxDepth >= 0, length and air in [1, 10].
func NewFactory(rng *rand.Rand, charset []rune, maxDepth, length, air int) (*Factory, error) {
	symbols, err := NewSymbolGen(charset, rng)
	if err != nil {
		return nil, err
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("maxDepth must be >= 0, got %d", maxDepth)
	}
	return &Factory{
		rng:      rng,
		symbols:  symbols,
		maxDepth: maxDepth,
		length:   length,
		air:      air,
	}, nil
}

func (f *Factory) MaxDepth() int { return f.maxDepth }

// PickDepth draws a depth layer for a new strand.
func (f *Factory) PickDepth() int {
	return pickDepth(f.rng, f.maxDepth)
}

// depthRatio maps a layer to [0, 1]: 1 at the front, 0 at the deepest
// layer. A single-layer setup counts as fully in front.
func (f *Factory) depthRatio(depth int) float64 {
	if f.maxDepth == 0 {
		return 1
	}
	return float64(f.maxDepth-depth) / float64(f.maxDepth)
}

// lengthCap is the largest length a strand at this depth can get.
func (f *Factory) lengthCap(depth int) int {
	ratio := float64(f.length) / 10 * f.depthRatio(depth)
	return MinLength + int(ratio*float64(MaxLength-MinLength))
}

// LengthFor draws a strand length for the given depth, uniform in
// [MinLength, lengthCap(depth)].
func (f *Factory) LengthFor(depth int) int {
	longest := f.lengthCap(depth)
	return MinLength + f.rng.Intn(longest-MinLength+1)
}

// startY draws the spawn row for a new strand: somewhere above the
// viewport, spread over a depth-scaled span so spacing looks uniform
// across layers after perspective scaling.
func (f *Factory) startY(depth int) int {
	ratio := float64(f.air) / 10 * f.depthRatio(depth)
	span := MaxLength + int(ratio*float64(MaxLength*5))
	return -f.rng.Intn(span + 1)
}

// NewStrand creates a strand with a freshly drawn depth, length and spawn
// offset, filled with random symbols.
func (f *Factory) NewStrand() (*Strand, error) {
	depth := f.PickDepth()
	length := f.LengthFor(depth)
	if length <= 0 {
		return nil, fmt.Errorf("invalid strand length %d at depth %d", length, depth)
	}
	s := &Strand{
		symbols: make([]rune, length),
		length:  length,
		depth:   depth,
		y:       f.startY(depth),
	}
	f.symbols.Fill(s.symbols)
	return s, nil
}
