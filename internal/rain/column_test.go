package rain

import (
	"testing"
)

func TestColumn_EmptyAlwaysGainsOne(t *testing.T) {
	f := newTestFactory(t, 3, 5, 5)
	var c Column

	if err := c.Update(f, 24); err != nil {
		t.Fatal(err)
	}
	if c.Count() != 1 {
		t.Fatalf("empty column has %d strands after update, want 1", c.Count())
	}
}

func TestColumn_CountChangesByAtMostOne(t *testing.T) {
	f := newTestFactory(t, 2, 8, 3)
	var c Column

	prev := 0
	for tick := 0; tick < 5000; tick++ {
		if err := c.Update(f, 10); err != nil {
			t.Fatal(err)
		}
		delta := c.Count() - prev
		if delta < -1 || delta > 1 {
			t.Fatalf("tick %d: count changed by %d (from %d to %d)", tick, delta, prev, c.Count())
		}
		prev = c.Count()
	}
}

func TestColumn_SpawnsAfterNewestEmerges(t *testing.T) {
	f := newTestFactory(t, 0, 5, 5)
	var c Column

	if err := c.Update(f, 24); err != nil {
		t.Fatal(err)
	}
	first := c.strands[0]

	// The second strand appears on exactly the tick where the first one
	// fully emerges, never before.
	for tick := 0; tick < 1000; tick++ {
		if err := c.Update(f, 24); err != nil {
			t.Fatal(err)
		}
		if c.Count() == 2 {
			if !first.Emerged() {
				t.Fatal("second strand spawned before the first emerged")
			}
			return
		}
		if first.Emerged() {
			t.Fatal("no spawn on the tick the first strand emerged")
		}
	}
	t.Fatal("first strand never emerged")
}

func TestColumn_RemovalPreservesOrder(t *testing.T) {
	f := newTestFactory(t, 0, 5, 5)

	// Oldest strand already past the bottom; the rest still falling.
	gone := makeStrand(0, "aaaa", 100)
	second := makeStrand(0, "bbbb", 5)
	third := makeStrand(0, "cccc", 2)
	c := Column{strands: []*Strand{gone, second, third}}

	if err := c.Update(f, 24); err != nil {
		t.Fatal(err)
	}

	if c.strands[0] != second || c.strands[1] != third {
		t.Fatal("removal did not preserve the order of remaining strands")
	}
}

func TestColumn_AppendAndRemoveSameTick(t *testing.T) {
	f := newTestFactory(t, 0, 5, 5)

	// Oldest is gone and the newest has emerged: the same tick must both
	// remove and append, leaving the count unchanged.
	gone := makeStrand(0, "aaaa", 100)
	newest := makeStrand(0, "bbbb", 10)
	c := Column{strands: []*Strand{gone, newest}}

	if err := c.Update(f, 24); err != nil {
		t.Fatal(err)
	}

	if c.Count() != 2 {
		t.Fatalf("count = %d after simultaneous append+remove, want 2", c.Count())
	}
	if c.strands[0] != newest {
		t.Fatal("oldest surviving strand is not first")
	}
}

// Scenario from a single-layer setup: one column, starting empty.
func TestColumn_SingleDepthLifecycle(t *testing.T) {
	f := newTestFactory(t, 0, 5, 5)
	var c Column
	height := 24

	if err := c.Update(f, height); err != nil {
		t.Fatal(err)
	}
	if c.Count() != 1 {
		t.Fatalf("tick 1: count = %d, want 1", c.Count())
	}
	s := c.strands[0]
	if s.depth != 0 {
		t.Fatalf("tick 1: depth = %d, want 0", s.depth)
	}
	if s.y > 0 {
		t.Fatalf("tick 1: y = %d, want initial negative offset", s.y)
	}

	for tick := 0; tick < 1000; tick++ {
		if s.Emerged() {
			if err := c.Update(f, height); err != nil {
				t.Fatal(err)
			}
			if c.Count() != 2 {
				t.Fatalf("count = %d one tick after emergence, want 2", c.Count())
			}
			return
		}
		if err := c.Update(f, height); err != nil {
			t.Fatal(err)
		}
	}
	t.Fatal("strand never emerged")
}
