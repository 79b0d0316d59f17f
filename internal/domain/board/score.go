package board

import "math"

// Score maps a shot count to a percentage: perfect shots score 100 and
// maxShots score 0. Results below 0 are clamped.
func Score(shots, perfect, maxShots int) int {
	if maxShots <= perfect {
		return 0
	}
	pct := math.Round(float64(maxShots-shots) / float64(maxShots-perfect) * 100)
	if pct < 0 {
		return 0
	}
	return int(pct)
}
