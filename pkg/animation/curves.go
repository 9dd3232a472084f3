package animation

import "github.com/tanema/gween/ease"

// Curve maps linear progress t in [0, 1] to eased progress. A curve must
// return 0 at t = 0 and 1 at t = 1.
type Curve func(t float64) float64

// LinearCurve returns t unchanged.
func LinearCurve(t float64) float64 {
	return t
}

// Named curves, built from the gween easing equations.
var (
	Ease      = FromEase(ease.OutCubic)
	EaseIn    = FromEase(ease.InQuad)
	EaseOut   = FromEase(ease.OutQuad)
	EaseInOut = FromEase(ease.InOutCubic)
)

// FromEase turns a gween easing equation into a Curve over the unit
// interval. The endpoints are exact regardless of float32 rounding.
func FromEase(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// TweenFunc adapts c to the gween easing signature, which maps elapsed
// time t of a tween of duration d starting at b by change.
func (c Curve) TweenFunc() ease.TweenFunc {
	return func(t, b, change, d float32) float32 {
		if d <= 0 {
			return b + change
		}
		return b + change*float32(c(clamp01(float64(t/d))))
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
