package tui

import (
	"strings"
	"testing"

	"github.com/san-kum/matrixrain/internal/palette"
	"github.com/san-kum/matrixrain/internal/rain"
)

func TestRenderFrame_Layout(t *testing.T) {
	f := rain.NewFrame(5, 3)
	f.Cells[0][0] = rain.Cell{Ch: 'a', Color: 0}
	f.Cells[1][2] = rain.Cell{Ch: 'b', Color: 3}
	f.Cells[2][4] = rain.Cell{Ch: 'c', Color: 8}

	styles := palette.Styles(palette.Get("matrix"), 2)
	out := RenderFrame(f, styles)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3", len(lines))
	}
	for i, ch := range []string{"a", "b", "c"} {
		if !strings.Contains(lines[i], ch) {
			t.Errorf("line %d missing %q: %q", i, ch, lines[i])
		}
	}
}

func TestRenderFrame_BackgroundIsSpaces(t *testing.T) {
	f := rain.NewFrame(4, 2)
	out := RenderFrame(f, nil)

	want := "    \n    "
	if out != want {
		t.Errorf("empty frame rendered %q, want %q", out, want)
	}
}

func TestRenderFrame_OutOfRangeColorUnstyled(t *testing.T) {
	f := rain.NewFrame(2, 1)
	f.Cells[0][0] = rain.Cell{Ch: 'z', Color: 999}

	out := RenderFrame(f, palette.Styles(palette.Get("matrix"), 1))
	if !strings.Contains(out, "z") {
		t.Fatalf("symbol dropped: %q", out)
	}
}

func TestQuitKey(t *testing.T) {
	// Typing mode only quits on 'q'; otherwise any key quits.
	tests := []struct {
		typing bool
		key    string
		quit   bool
	}{
		{true, "q", true},
		{true, "a", false},
		{true, "ctrl+c", true},
		{false, "a", true},
		{false, "q", true},
		{false, "ctrl+c", true},
	}

	for _, tt := range tests {
		m := Model{typing: tt.typing}
		if got := m.quitKeyString(tt.key); got != tt.quit {
			t.Errorf("typing=%v key=%q: quit=%v, want %v", tt.typing, tt.key, got, tt.quit)
		}
	}
}
