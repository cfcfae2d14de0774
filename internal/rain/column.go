package rain

// Column holds the strands sharing one horizontal position, ordered oldest
// first. The count changes by at most one append and one removal per tick.
type Column struct {
	strands []*Strand
}

func (c *Column) Count() int { return len(c.strands) }

// Update advances every strand one tick, then applies the grow/shrink
// rules: an empty column always gains a strand, the next strand spawns as
// soon as the newest one has fully emerged, and the oldest strand is
// dropped once it scrolls out the bottom. Append and removal can both
// happen on the same tick.
func (c *Column) Update(f *Factory, height int) error {
	for _, s := range c.strands {
		s.Advance(f.symbols)
	}

	if len(c.strands) == 0 {
		s, err := f.NewStrand()
		if err != nil {
			return err
		}
		c.strands = append(c.strands, s)
		return nil
	}

	if c.strands[len(c.strands)-1].Emerged() {
		s, err := f.NewStrand()
		if err != nil {
			return err
		}
		c.strands = append(c.strands, s)
	}

	if c.strands[0].Gone(height) {
		n := len(c.strands)
		copy(c.strands, c.strands[1:])
		c.strands[n-1] = nil
		c.strands = c.strands[:n-1]
	}

	return nil
}
