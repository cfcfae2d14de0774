package rain

import "math/rand"

// pickDepth returns a layer index in [0, maxDepth] using triangular
// weighting: layer d carries weight maxDepth-d+1, so the front layer is
// always the most likely and the deepest layer keeps weight 1 rather than
// being reachable only through an overflow fallback. At maxDepth=1 the
// resulting draw ratio is 2:1 in favor of depth 0.
func pickDepth(rng *rand.Rand, maxDepth int) int {
	if maxDepth <= 0 {
		return 0
	}
	total := (maxDepth + 1) * (maxDepth + 2) / 2
	draw := rng.Intn(total)

	cum := 0
	for d := 0; d <= maxDepth; d++ {
		cum += maxDepth - d + 1
		if cum > draw {
			return d
		}
	}
	return maxDepth
}
