package headless_test

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/native/pkg/graphics"
	"github.com/go-drift/native/pkg/headless"
	"github.com/go-drift/native/pkg/layout"
	"github.com/go-drift/native/pkg/platform"
)

func TestGroupChildren(t *testing.T) {
	b := headless.New()
	p := b.Platform()
	g := p.NewGroup().(*headless.Group)
	t1, _ := p.NewText("a", nil, graphics.WrapWord)
	t2, _ := p.NewText("b", nil, graphics.WrapWord)

	g.InsertChild(0, t1)
	g.InsertChild(1, t2)
	g.SwapChildren(0, 1)
	if got := g.Children(); got[0] != t2 || got[1] != t1 {
		t.Errorf("after swap children = %v, want [b a]", got)
	}
	g.SetChildLayout(1, 1, 2, 3, 4)
	if got := g.ChildFrame(1); got != (headless.Rect{X: 1, Y: 2, Width: 3, Height: 4}) {
		t.Errorf("ChildFrame(1) = %+v", got)
	}
	g.RemoveChild(0)
	if got := len(g.Children()); got != 1 {
		t.Errorf("len(Children()) = %d, want 1", got)
	}
	if got := b.Count("Group.InsertChild"); got != 2 {
		t.Errorf("Count(Group.InsertChild) = %d, want 2", got)
	}
	if got := b.Live(); got != 3 {
		t.Errorf("Live() = %d, want 3", got)
	}
}

func TestUseAfterTeardownPanics(t *testing.T) {
	b := headless.New()
	g := b.NewGroup()
	g.Teardown()
	defer func() {
		if recover() == nil {
			t.Error("SetBackgroundColor after Teardown did not panic")
		}
	}()
	g.SetBackgroundColor(graphics.ColorRed)
}

func TestTextMeasurement(t *testing.T) {
	b := headless.New()
	_, m := b.NewText("hello big world", nil, graphics.WrapWord)

	tests := []struct {
		name  string
		space layout.Space
		want  layout.Size
	}{
		{"max content", layout.Space{Width: layout.MaxContent, Height: layout.MaxContent}, layout.Size{Width: 105, Height: 13}},
		{"min content", layout.Space{Width: layout.MinContent, Height: layout.MaxContent}, layout.Size{Width: 35, Height: 39}},
		{"definite", layout.DefiniteSpace(70, 100), layout.Size{Width: 63, Height: 26}},
	}
	for _, tt := range tests {
		if got := m.Measure(layout.Known{}, tt.space); got != tt.want {
			t.Errorf("%s: Measure() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestImageDecoding(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 2))); err != nil {
		t.Fatal(err)
	}

	b := headless.New()
	img := b.NewImage().(*headless.Image)
	m, err := img.LoadData(buf.Bytes())
	if err != nil {
		t.Fatalf("LoadData(png) error = %v", err)
	}
	if img.Format() != "png" {
		t.Errorf("Format() = %q, want png", img.Format())
	}
	if got := m.Measure(layout.Known{}, layout.Space{}); got != (layout.Size{Width: 4, Height: 2}) {
		t.Errorf("Measure() = %+v, want 4x2", got)
	}
	if got := m.Measure(layout.Known{Width: 8, HasWidth: true}, layout.Space{}); got != (layout.Size{Width: 8, Height: 4}) {
		t.Errorf("Measure(width 8) = %+v, want 8x4", got)
	}

	m, err = img.LoadData([]byte("not an image"))
	if err == nil {
		t.Error("LoadData(garbage) error = nil")
	}
	if got := m.Measure(layout.Known{}, layout.Space{}); got != (layout.Size{}) {
		t.Errorf("Measure() after failed load = %+v, want zero", got)
	}
}

func TestWindowSimulation(t *testing.T) {
	b := headless.New()
	w := b.NewWindow(b.NewGroup()).(*headless.Window)

	resized := 0
	w.SetOnResize(func() { resized++ })
	var frames []time.Duration
	w.SetOnAnimationFrame(func(d time.Duration) { frames = append(frames, d) })

	w.SetMinSize(100, 50)
	w.Resize(10, 10)
	if width, height := w.Size(); width != 100 || height != 50 {
		t.Errorf("Size() after Resize below minimum = %vx%v, want 100x50", width, height)
	}
	if resized != 1 {
		t.Errorf("resize callbacks = %d, want 1", resized)
	}
	w.SetSize(300, 200)
	if resized != 1 {
		t.Error("SetSize reported a resize")
	}

	if w.Frame(time.Millisecond) {
		t.Error("Frame() delivered while not animating")
	}
	w.StartAnimating()
	w.Frame(16 * time.Millisecond)
	w.StopAnimating()
	w.Frame(16 * time.Millisecond)
	if len(frames) != 1 || frames[0] != 16*time.Millisecond {
		t.Errorf("frames = %v, want [16ms]", frames)
	}
}

func TestLayerShellCapability(t *testing.T) {
	b := headless.New()
	if b.Platform().LayerShells != nil {
		t.Error("LayerShells set without LayerShell enabled")
	}
	b.LayerShell = true
	p := b.Platform()
	if p.LayerShells == nil {
		t.Fatal("LayerShells = nil with LayerShell enabled")
	}
	ls := p.LayerShells.NewLayerShell(b.NewGroup()).(*headless.LayerShell)
	ls.SetAnchor(platform.AnchorTop | platform.AnchorLeft)
	if !ls.Anchor.Has(platform.AnchorTop) || ls.Anchor.Has(platform.AnchorBottom) {
		t.Errorf("Anchor = %v", ls.Anchor)
	}
}

func TestDump(t *testing.T) {
	b := headless.New()
	g := b.NewGroup()
	label, _ := b.NewText("Pressed 3 times.", nil, graphics.WrapWord)
	g.InsertChild(0, label)
	g.InsertChild(1, b.NewPressable(b.NewGroup()))
	w := b.NewWindow(g)
	w.SetTitle("Counter")

	out := headless.Dump(w)
	for _, want := range []string{`"Counter"`, "Group", `"Pressed 3 times."`, "Pressable"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() missing %s:\n%s", want, out)
		}
	}
}
