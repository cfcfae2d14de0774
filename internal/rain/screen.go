package rain

import "fmt"

// Screen is the full grid of columns sized to the viewport. A resize never
// mutates a screen in place; the owner constructs a fresh one (see
// engine.Runner.Resize), so no in-flight strand state survives a resize.
type Screen struct {
	width   int
	height  int
	columns []Column
	factory *Factory
}

func NewScreen(width, height int, f *Factory) (*Screen, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid screen size %dx%d", width, height)
	}
	return &Screen{
		width:   width,
		height:  height,
		columns: make([]Column, width),
		factory: f,
	}, nil
}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

// Count returns the total number of live strands across all columns.
func (s *Screen) Count() int {
	n := 0
	for i := range s.columns {
		n += s.columns[i].Count()
	}
	return n
}

// Update runs one tick over every column. A failed column update is fatal
// for the tick and propagates up so the run loop can stop cleanly.
func (s *Screen) Update() error {
	for i := range s.columns {
		if err := s.columns[i].Update(s.factory, s.height); err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
	}
	return nil
}

// Render emits one draw call per visible symbol. Symbol i of a strand sits
// at row y-i; rows outside the viewport are skipped.
func (s *Screen) Render(emit func(x, y int, ch rune, color int)) {
	for x := range s.columns {
		for _, st := range s.columns[x].strands {
			for i := 0; i < st.length; i++ {
				row := st.y - i
				if row >= s.height {
					continue
				}
				if row < 0 {
					break
				}
				emit(x, row, st.symbols[i], ColorIndex(st.depth, i, st.length))
			}
		}
	}
}

// Snapshot renders the current tick into an immutable frame, safe to hand
// to another goroutine.
func (s *Screen) Snapshot() Frame {
	f := NewFrame(s.width, s.height)
	s.Render(func(x, y int, ch rune, color int) {
		f.Cells[y][x] = Cell{Ch: ch, Color: color}
	})
	return f
}
