package rain

// Strand is one falling string of symbols. y is the viewport row of the
// leading (newest) symbol; symbol i sits at row y-i, so the trailing edge
// is at y-length. depth throttles the fall: the strand only moves once
// every depth+1 ticks, which is what makes far layers fall slower.
type Strand struct {
	symbols []rune
	length  int
	depth   int
	clock   int
	y       int
}

func (s *Strand) Depth() int  { return s.depth }
func (s *Strand) Length() int { return s.length }
func (s *Strand) Y() int      { return s.y }

// Advance steps the strand's internal clock. Nothing observable changes
// until the clock wraps; on the wrap the strand drops one row, every
// symbol shifts one slot toward the tail, and a fresh symbol enters at
// the leading edge.
func (s *Strand) Advance(gen *SymbolGen) {
	s.clock = (s.clock + 1) % (s.depth + 1)
	if s.clock != 0 {
		return
	}
	s.y++
	for i := s.length - 1; i > 0; i-- {
		s.symbols[i] = s.symbols[i-1]
	}
	s.symbols[0] = gen.Next()
}

// Emerged reports whether the trailing edge has fully entered the viewport
// from the top. A column spawns its next strand once its newest strand has
// emerged.
func (s *Strand) Emerged() bool {
	return s.y-s.length > 0
}

// Gone reports whether the strand has scrolled completely past the bottom
// of the viewport and can be dropped.
func (s *Strand) Gone(height int) bool {
	return s.y-s.length >= height
}
