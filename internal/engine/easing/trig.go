package easing

import "math"

// Sine and cosine tables for whole degrees in [0, 180].
var (
	sinTable [181]float64
	cosTable [181]float64
)

func init() {
	for deg := 0; deg <= 180; deg++ {
		rad := float64(deg) * math.Pi / 180
		sinTable[deg] = math.Sin(rad)
		cosTable[deg] = math.Cos(rad)
	}
}

// roundDeg rounds half up, matching the rounding used to build the curves.
func roundDeg(deg float64) int {
	return int(math.Floor(deg + 0.5))
}

// normDeg folds an angle into [0, 360).
func normDeg(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

func sinDeg(deg int) float64 {
	deg = normDeg(deg)
	if deg > 180 {
		return -sinTable[deg-180]
	}
	return sinTable[deg]
}

func cosDeg(deg int) float64 {
	deg = normDeg(deg)
	if deg > 180 {
		return -cosTable[deg-180]
	}
	return cosTable[deg]
}
