package rain

import "math"

// ShadesPerDepth is the size of the contiguous palette block each depth
// layer owns: one leading-edge highlight plus a fading trail.
const ShadesPerDepth = 7

// ColorIndex maps a symbol's position within a strand to a palette index.
// Index 0, the leading edge, always gets the brightest entry of its
// depth's block. Trail symbols pick a shade by their relative position,
// interpolated between the second-brightest and dimmest entries and
// rounded to the nearest shade bucket.
func ColorIndex(depth, index, length int) int {
	base := depth * ShadesPerDepth
	if index <= 0 {
		return base
	}
	ratio := float64(index) / float64(length)
	shade := 1 + int(math.Round(ratio*float64(ShadesPerDepth-2)))
	if shade > ShadesPerDepth-1 {
		shade = ShadesPerDepth - 1
	}
	return base + shade
}
