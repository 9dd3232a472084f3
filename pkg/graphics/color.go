package graphics

import "math"

// Color is a non-premultiplied sRGB color packed as 0xAARRGGBB.
type Color uint32

// Common colors.
const (
	ColorTransparent Color = 0x00000000
	ColorBlack       Color = 0xFF000000
	ColorWhite       Color = 0xFFFFFFFF
	ColorRed         Color = 0xFFFF0000
	ColorGreen       Color = 0xFF00FF00
	ColorBlue        Color = 0xFF0000FF
	ColorCyan        Color = 0xFF00FFFF
)

// ARGB packs four 8-bit channels.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// RGBA returns a color with alpha given in [0, 1].
func RGBA(r, g, b uint8, alpha float64) Color {
	return ARGB(unitToByte(alpha), r, g, b)
}

// Channels unpacks the color.
func (c Color) Channels() (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBAF returns the channels scaled to [0, 1].
func (c Color) RGBAF() (r, g, b, a float64) {
	ab, rb, gb, bb := c.Channels()
	return float64(rb) / 255, float64(gb) / 255, float64(bb) / 255, float64(ab) / 255
}

// Alpha returns the alpha channel in [0, 1].
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / 255
}

// Fade multiplies the alpha channel by amount.
func (c Color) Fade(amount float64) Color {
	return Color(uint32(unitToByte(c.Alpha()*amount))<<24 | uint32(c)&0x00FFFFFF)
}

// Darken mixes the color toward black by amount in [0, 1].
func (c Color) Darken(amount float64) Color {
	return c.mix(0, amount)
}

// Lighten mixes the color toward white by amount in [0, 1].
func (c Color) Lighten(amount float64) Color {
	return c.mix(255, amount)
}

func (c Color) mix(toward float64, amount float64) Color {
	k := min(max(amount, 0), 1)
	a, r, g, b := c.Channels()
	ch := func(v uint8) uint8 {
		return uint8(math.Round(float64(v) + (toward-float64(v))*k))
	}
	return ARGB(a, ch(r), ch(g), ch(b))
}

func unitToByte(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}
