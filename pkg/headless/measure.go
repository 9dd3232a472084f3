package headless

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font"
	_ "golang.org/x/image/webp"

	"github.com/go-drift/native/pkg/graphics"
	"github.com/go-drift/native/pkg/layout"
	"github.com/go-drift/native/pkg/platform"
)

type textMeasurer struct {
	face  font.Face
	lines []string
	wrap  graphics.Wrap
}

func (b *Backend) textMeasurer(text string, wrap graphics.Wrap) layout.Measurer {
	return &textMeasurer{face: b.face, lines: strings.Split(text, "\n"), wrap: wrap}
}

func (m *textMeasurer) width(s string) float32 {
	return float32(font.MeasureString(m.face, s).Ceil())
}

func (m *textMeasurer) lineHeight() float32 {
	return float32(m.face.Metrics().Height.Ceil())
}

// minWidth is the widest unbreakable unit.
func (m *textMeasurer) minWidth() float32 {
	var w float32
	for _, line := range m.lines {
		switch m.wrap {
		case graphics.WrapNone:
			w = max(w, m.width(line))
		case graphics.WrapChar:
			for _, r := range line {
				w = max(w, m.width(string(r)))
			}
		default:
			for _, word := range strings.Fields(line) {
				w = max(w, m.width(word))
			}
		}
	}
	return w
}

// wrapLines counts the lines needed at width and returns the widest one.
func (m *textMeasurer) wrapLines(limit float32) (float32, int) {
	var widest float32
	count := 0
	for _, line := range m.lines {
		var units []string
		sep := " "
		switch m.wrap {
		case graphics.WrapNone:
			units = []string{line}
		case graphics.WrapChar:
			units = strings.Split(line, "")
			sep = ""
		default:
			units = strings.Fields(line)
		}
		if len(units) == 0 {
			count++
			continue
		}
		current := units[0]
		for _, unit := range units[1:] {
			candidate := current + sep + unit
			if m.width(candidate) > limit {
				widest = max(widest, m.width(current))
				count++
				current = unit
				continue
			}
			current = candidate
		}
		widest = max(widest, m.width(current))
		count++
	}
	return widest, count
}

func (m *textMeasurer) Measure(known layout.Known, available layout.Space) layout.Size {
	var limit float32
	switch {
	case known.HasWidth:
		limit = known.Width
	case available.Width.Kind == layout.SpaceMinContent:
		limit = m.minWidth()
	case available.Width.Kind == layout.SpaceDefinite:
		limit = available.Width.Value
	default:
		limit = float32(1 << 24)
	}
	width, lines := m.wrapLines(limit)
	size := layout.Size{Width: width, Height: float32(lines) * m.lineHeight()}
	if known.HasWidth {
		size.Width = known.Width
	}
	if known.HasHeight {
		size.Height = known.Height
	}
	return size
}

// Image is a headless image.
type Image struct {
	base
	data   []byte
	format string
	bounds image.Point
	tint   graphics.Color
}

// NewImage implements platform.ImageFactory.
func (b *Backend) NewImage() platform.Image {
	i := &Image{base: b.newBase("Image")}
	b.register(i, i.id)
	return i
}

// Format returns the name of the decoded format, or "" if nothing is
// loaded.
func (i *Image) Format() string { return i.format }

// Bounds returns the pixel size of the loaded image.
func (i *Image) Bounds() (width, height int) { return i.bounds.X, i.bounds.Y }

// Tint returns the tint color.
func (i *Image) Tint() graphics.Color { return i.tint }

func (i *Image) SetTint(color graphics.Color) {
	i.op("SetTint")
	i.tint = color
}

func (i *Image) LoadData(data []byte) (layout.Measurer, error) {
	i.op("LoadData")
	i.data = data
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		i.format, i.bounds = "", image.Point{}
		return imageMeasurer{}, fmt.Errorf("decode image: %w", err)
	}
	i.format, i.bounds = format, image.Point{X: cfg.Width, Y: cfg.Height}
	return imageMeasurer{width: float32(cfg.Width), height: float32(cfg.Height)}, nil
}

// imageMeasurer keeps the aspect ratio when one axis is fixed.
type imageMeasurer struct {
	width, height float32
}

func (m imageMeasurer) Measure(known layout.Known, available layout.Space) layout.Size {
	switch {
	case known.HasWidth && known.HasHeight:
		return layout.Size{Width: known.Width, Height: known.Height}
	case known.HasWidth && m.width > 0:
		return layout.Size{Width: known.Width, Height: known.Width * m.height / m.width}
	case known.HasHeight && m.height > 0:
		return layout.Size{Width: known.Height * m.width / m.height, Height: known.Height}
	}
	return layout.Size{Width: m.width, Height: m.height}
}
