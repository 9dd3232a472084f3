package animation

import (
	"time"

	"github.com/tanema/gween"

	"github.com/go-drift/native/pkg/graphics"
)

// Tween moves a number from one value to another over a fixed duration,
// eased by a curve. Advance it with Update once per frame.
type Tween struct {
	from, to float64
	value    float64
	done     bool
	tween    *gween.Tween
}

// NewTween creates a tween from from to to. A duration of zero or less
// yields a tween that is already done at to. A nil curve is linear.
func NewTween(from, to float64, duration time.Duration, curve Curve) *Tween {
	tw := &Tween{from: from, to: to, value: from}
	if duration <= 0 || from == to {
		tw.value, tw.done = to, true
		return tw
	}
	if curve == nil {
		curve = LinearCurve
	}
	tw.tween = gween.New(float32(from), float32(to), float32(duration.Seconds()), curve.TweenFunc())
	return tw
}

// Update advances the tween by delta and returns the current value and
// whether the tween has finished. A finished tween reports exactly its end
// value.
func (tw *Tween) Update(delta time.Duration) (float64, bool) {
	if tw.done {
		return tw.value, true
	}
	v, finished := tw.tween.Update(float32(delta.Seconds()))
	if finished {
		tw.value, tw.done = tw.to, true
	} else {
		tw.value = float64(v)
	}
	return tw.value, tw.done
}

// Value returns the current value.
func (tw *Tween) Value() float64 {
	return tw.value
}

// Target returns the end value.
func (tw *Tween) Target() float64 {
	return tw.to
}

// Done reports whether the tween has reached its end value.
func (tw *Tween) Done() bool {
	return tw.done
}

// LerpFloat64 linearly interpolates from a to b.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor interpolates each channel of a toward b, truncating.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	aa, ar, ag, ab := a.Channels()
	ba, br, bg, bb := b.Channels()
	lerp := func(x, y uint8) uint8 { return uint8(LerpFloat64(float64(x), float64(y), t)) }
	return graphics.ARGB(lerp(aa, ba), lerp(ar, br), lerp(ag, bg), lerp(ab, bb))
}
