package rain

import (
	"math/rand"
	"testing"
)

func newTestFactory(t *testing.T, maxDepth, length, air int) *Factory {
	t.Helper()
	set, err := Charset("ascii")
	if err != nil {
		t.Fatal(err)
	}
	f, err := NewFactory(rand.New(rand.NewSource(99)), set, maxDepth, length, air)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestNewFactory_EmptyCharset(t *testing.T) {
	_, err := NewFactory(rand.New(rand.NewSource(1)), nil, 3, 5, 5)
	if err == nil {
		t.Fatal("expected error for empty charset")
	}
}

func TestLengthFor_Bounds(t *testing.T) {
	for _, maxDepth := range []int{0, 1, 4, 9} {
		f := newTestFactory(t, maxDepth, 10, 5)
		for d := 0; d <= maxDepth; d++ {
			for i := 0; i < 500; i++ {
				got := f.LengthFor(d)
				if got < MinLength || got > MaxLength {
					t.Fatalf("LengthFor(%d) = %d, want in [%d, %d]", d, got, MinLength, MaxLength)
				}
			}
		}
	}
}

func TestLengthCap_NonIncreasingWithDepth(t *testing.T) {
	f := newTestFactory(t, 9, 8, 5)
	prev := MaxLength
	for d := 0; d <= 9; d++ {
		got := f.lengthCap(d)
		if got > prev {
			t.Errorf("lengthCap(%d) = %d, exceeds lengthCap(%d) = %d", d, got, d-1, prev)
		}
		if got < MinLength {
			t.Errorf("lengthCap(%d) = %d, below MinLength", d, got)
		}
		prev = got
	}
	// Deepest layer collapses to the minimum.
	if got := f.lengthCap(9); got != MinLength {
		t.Errorf("lengthCap(maxDepth) = %d, want %d", got, MinLength)
	}
}

func TestStartY_AlwaysAboveViewport(t *testing.T) {
	tests := []struct {
		name     string
		maxDepth int
		air      int
	}{
		{"flat", 0, 5},
		{"shallow", 2, 1},
		{"deep", 9, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFactory(t, tt.maxDepth, 5, tt.air)
			maxSpan := MaxLength + MaxLength*5
			for d := 0; d <= tt.maxDepth; d++ {
				for i := 0; i < 500; i++ {
					y := f.startY(d)
					if y > 0 {
						t.Fatalf("startY(%d) = %d, must not be below row 0", d, y)
					}
					if y < -maxSpan {
						t.Fatalf("startY(%d) = %d, beyond max span %d", d, y, maxSpan)
					}
				}
			}
		})
	}
}

func TestNewStrand(t *testing.T) {
	f := newTestFactory(t, 4, 7, 5)

	for i := 0; i < 200; i++ {
		s, err := f.NewStrand()
		if err != nil {
			t.Fatal(err)
		}
		if s.depth < 0 || s.depth > 4 {
			t.Fatalf("strand depth %d out of range", s.depth)
		}
		if s.length < MinLength || s.length > MaxLength {
			t.Fatalf("strand length %d out of range", s.length)
		}
		if len(s.symbols) != s.length {
			t.Fatalf("symbols len %d != length %d", len(s.symbols), s.length)
		}
		if s.y > 0 {
			t.Fatalf("strand spawned at y=%d, want above viewport", s.y)
		}
		if s.clock != 0 {
			t.Fatalf("new strand clock = %d, want 0", s.clock)
		}
	}
}
