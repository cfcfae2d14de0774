package rain

// Cell is one drawn symbol with its palette color index. A zero Ch means
// the cell is background.
type Cell struct {
	Ch    rune `json:"ch"`
	Color int  `json:"color"`
}

// Frame is a snapshot of one rendered tick: Height rows of Width cells.
type Frame struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Cells  [][]Cell `json:"cells"`
}

func NewFrame(width, height int) Frame {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return Frame{Width: width, Height: height, Cells: cells}
}
