package graphics_test

import (
	"testing"

	"github.com/go-drift/native/pkg/graphics"
)

func TestColorComponents(t *testing.T) {
	c := graphics.RGBA(10, 20, 30, 0.5)
	r, g, b, a := c.RGBAF()
	if uint8(r*255+0.5) != 10 || uint8(g*255+0.5) != 20 || uint8(b*255+0.5) != 30 {
		t.Errorf("unexpected channels %v %v %v", r, g, b)
	}
	if a < 0.49 || a > 0.51 {
		t.Errorf("alpha = %v, want ~0.5", a)
	}
}

func TestColorFade(t *testing.T) {
	if got := graphics.ColorRed.Fade(0); got != graphics.Color(0x00FF0000) {
		t.Errorf("Fade(0) = %#x", uint32(got))
	}
	if got := graphics.ColorRed.Fade(1); got != graphics.ColorRed {
		t.Errorf("Fade(1) = %#x", uint32(got))
	}
}

func TestColorDarkenLighten(t *testing.T) {
	if got := graphics.ColorWhite.Darken(1); got != graphics.ColorBlack {
		t.Errorf("Darken(1) = %#x", uint32(got))
	}
	if got := graphics.ColorBlack.Lighten(1); got != graphics.ColorWhite {
		t.Errorf("Lighten(1) = %#x", uint32(got))
	}
	if got := graphics.ColorCyan.Darken(0); got != graphics.ColorCyan {
		t.Errorf("Darken(0) changed the color: %#x", uint32(got))
	}
}

func TestFontIsComparable(t *testing.T) {
	a := graphics.DefaultFont()
	b := graphics.DefaultFont()
	if a != b {
		t.Error("identical fonts compare unequal")
	}
	b.Italic = true
	if a == b {
		t.Error("different fonts compare equal")
	}
}
