package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-drift/native/pkg/animation"
	"github.com/go-drift/native/pkg/config"
	"github.com/go-drift/native/pkg/core"
	"github.com/go-drift/native/pkg/graphics"
	"github.com/go-drift/native/pkg/views"
)

// counter is the application data of the demo.
type counter struct {
	Count int
}

var (
	buttonColor  = graphics.RGB(0x3b, 0x82, 0xf6)
	pressedColor = buttonColor.Darken(0.2)
	hoverColor   = buttonColor.Lighten(0.1)
	emptyColor   = graphics.RGB(0x9c, 0xa3, 0xaf)
	fullColor    = graphics.RGB(0x16, 0xa3, 0x4a)
)

func counterView(cfg *config.Resolved) func(data *counter) core.Effect[counter] {
	return func(data *counter) core.Effect[counter] {
		return views.Window[counter]{
			Title:  cfg.Title,
			Sizing: cfg.Sizing,
			Width:  cfg.Width,
			Height: cfg.Height,
			Contents: views.Column[counter](
				views.Text[counter]{Content: fmt.Sprintf("Pressed %d times.", data.Count)},
				views.Transition[counter]{
					Target:   float64(data.Count % 10),
					Duration: 400 * time.Millisecond,
					View: func(_ *counter, value float64) core.View[counter] {
						font := graphics.DefaultFont()
						font.Color = animation.LerpColor(emptyColor, fullColor, value/10)
						return views.Text[counter]{Content: meter(value), Font: font}
					},
				},
				views.Pressable[counter]{
					Contents: button,
					OnPress:  views.Update(func(data *counter) { data.Count++ }),
				},
			).WithGap(8).WithPadding(16),
		}
	}
}

func button(_ *counter, state views.PressState) core.View[counter] {
	color := buttonColor
	switch {
	case state.Pressed:
		color = pressedColor
	case state.Hovered:
		color = hoverColor
	}
	return views.Row[counter](views.Text[counter]{Content: "Press me"}).
		WithPadding(4).
		WithBackground(color).
		WithCorners(4)
}

// meter renders value as a bar of ten cells.
func meter(value float64) string {
	filled := min(max(int(value+0.5), 0), 10)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", 10-filled) + "]"
}
