// Package easing provides Penner-style easing curves.
//
// Every curve shares the same signature: elapsed time, start value, change in
// value and total duration. Curves extrapolate past the duration instead of
// clamping, so callers that overshoot get a continued curve.
package easing

import "math"

// Func maps an elapsed time within a duration to an interpolated value.
type Func func(elapsed, start, delta, duration float64) float64

// Linear is a constant-speed transition.
func Linear(t, b, c, d float64) float64 {
	return c*t/d + b
}

// InQuad accelerates from zero velocity.
func InQuad(t, b, c, d float64) float64 {
	t /= d
	return c*t*t + b
}

// OutQuad decelerates to zero velocity.
func OutQuad(t, b, c, d float64) float64 {
	t /= d
	return -c*t*(t-2) + b
}

// InOutQuad accelerates until halfway, then decelerates.
func InOutQuad(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t + b
	}
	t--
	return -c/2*(t*(t-2)-1) + b
}

func InCubic(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t + b
}

func OutCubic(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*t+1) + b
}

func InOutCubic(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t+2) + b
}

func InQuart(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t + b
}

func OutQuart(t, b, c, d float64) float64 {
	t = t/d - 1
	return -c*(t*t*t*t-1) + b
}

func InOutQuart(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t + b
	}
	t -= 2
	return -c/2*(t*t*t*t-2) + b
}

func InQuint(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t*t + b
}

func OutQuint(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*t*t*t+1) + b
}

func InOutQuint(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t*t*t+2) + b
}

// InSine uses the degree lookup table, so the curve moves in whole-degree steps.
func InSine(t, b, c, d float64) float64 {
	return -c*cosDeg(roundDeg(t/d*90)) + c + b
}

// OutSine uses the degree lookup table, so the curve moves in whole-degree steps.
func OutSine(t, b, c, d float64) float64 {
	return c*sinDeg(roundDeg(t/d*90)) + b
}

// InOutSine uses the degree lookup table, so the curve moves in whole-degree steps.
func InOutSine(t, b, c, d float64) float64 {
	return -c/2*(cosDeg(roundDeg(180*t/d))-1) + b
}

func InExpo(t, b, c, d float64) float64 {
	return c*math.Pow(2, 10*(t/d-1)) + b
}

func OutExpo(t, b, c, d float64) float64 {
	return c*(-math.Pow(2, -10*t/d)+1) + b
}

func InOutExpo(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*math.Pow(2, 10*(t-1)) + b
	}
	t--
	return c/2*(-math.Pow(2, -10*t)+2) + b
}

func InCirc(t, b, c, d float64) float64 {
	t /= d
	return -c*(math.Sqrt(1-t*t)-1) + b
}

func OutCirc(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*math.Sqrt(1-t*t) + b
}

func InOutCirc(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return -c/2*(math.Sqrt(1-t*t)-1) + b
	}
	t -= 2
	return c/2*(math.Sqrt(1-t*t)+1) + b
}

var byName = map[string]Func{
	"linear":     Linear,
	"inQuad":     InQuad,
	"outQuad":    OutQuad,
	"inOutQuad":  InOutQuad,
	"inCubic":    InCubic,
	"outCubic":   OutCubic,
	"inOutCubic": InOutCubic,
	"inQuart":    InQuart,
	"outQuart":   OutQuart,
	"inOutQuart": InOutQuart,
	"inQuint":    InQuint,
	"outQuint":   OutQuint,
	"inOutQuint": InOutQuint,
	"inSine":     InSine,
	"outSine":    OutSine,
	"inOutSine":  InOutSine,
	"inExpo":     InExpo,
	"outExpo":    OutExpo,
	"inOutExpo":  InOutExpo,
	"inCirc":     InCirc,
	"outCirc":    OutCirc,
	"inOutCirc":  InOutCirc,
}

// ByName looks up a curve by its config name (e.g. "inOutSine").
func ByName(name string) (Func, bool) {
	f, ok := byName[name]
	return f, ok
}
