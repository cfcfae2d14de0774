// Package palette turns a theme's base color into the depth-layered shade
// table the renderer indexes into: each depth layer owns a block of
// rain.ShadesPerDepth styles, dimmed by distance and faded along the trail.
package palette

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/matrixrain/internal/rain"
)

type RGB struct {
	R, G, B uint8
}

// Theme pairs a leading-edge highlight with the trail base color.
type Theme struct {
	Name string
	Head RGB
	Base RGB
}

var themes = []Theme{
	{Name: "matrix", Head: RGB{210, 255, 210}, Base: RGB{0, 255, 70}},
	{Name: "amber", Head: RGB{255, 240, 200}, Base: RGB{255, 176, 0}},
	{Name: "crimson", Head: RGB{255, 220, 220}, Base: RGB{220, 20, 60}},
	{Name: "ice", Head: RGB{230, 245, 255}, Base: RGB{80, 180, 255}},
	{Name: "violet", Head: RGB{240, 225, 255}, Base: RGB{160, 60, 255}},
}

// Get returns the theme by name, falling back to the matrix theme.
func Get(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// Has reports whether a theme with the given name exists.
func Has(name string) bool {
	for _, t := range themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Names returns the available theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(themes))
	for _, t := range themes {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

// dim scales a color toward black.
func dim(c RGB, factor float64) RGB {
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

func style(c RGB) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
}

// Styles builds the full shade table for numDepths layers, indexed by
// rain.ColorIndex. Within each depth block, entry 0 is the highlight and
// entries 1..ShadesPerDepth-1 fade from the depth's base color down to 20%
// brightness. Deeper blocks start dimmer overall.
func Styles(t Theme, numDepths int) []lipgloss.Style {
	styles := make([]lipgloss.Style, 0, numDepths*rain.ShadesPerDepth)
	for d := 0; d < numDepths; d++ {
		depthFade := 1.0
		if numDepths > 1 {
			depthFade = 1 - 0.6*float64(d)/float64(numDepths-1)
		}
		head := dim(t.Head, depthFade)
		base := dim(t.Base, depthFade)

		styles = append(styles, style(head))
		for s := 1; s < rain.ShadesPerDepth; s++ {
			fade := 1 - float64(s-1)/float64(rain.ShadesPerDepth-2)*0.8
			styles = append(styles, style(dim(base, fade)))
		}
	}
	return styles
}
