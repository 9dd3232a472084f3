package views_test

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/native/pkg/animation"
	"github.com/go-drift/native/pkg/app"
	"github.com/go-drift/native/pkg/core"
	"github.com/go-drift/native/pkg/errors"
	"github.com/go-drift/native/pkg/headless"
	"github.com/go-drift/native/pkg/layout"
	"github.com/go-drift/native/pkg/platform"
	"github.com/go-drift/native/pkg/views"
)

type counter struct {
	Count int
}

func newCounter(b *headless.Backend) *app.App[counter] {
	return app.New(b.Platform(), &counter{}, func(data *counter) core.Effect[counter] {
		return views.Window[counter]{
			Title: "Counter",
			Contents: views.Column[counter](
				views.Text[counter]{Content: fmt.Sprintf("Pressed %d times.", data.Count)},
				views.Pressable[counter]{
					Contents: func(*counter, views.PressState) core.View[counter] {
						return views.Text[counter]{Content: "Press me"}
					},
					OnPress: views.Update(func(data *counter) { data.Count++ }),
				},
			),
		}
	})
}

func window(t *testing.T, b *headless.Backend) *headless.Window {
	t.Helper()
	windows := b.Windows()
	if len(windows) != 1 {
		t.Fatalf("open windows = %d, want 1", len(windows))
	}
	return windows[0]
}

func rootGroup(t *testing.T, b *headless.Backend) *headless.Group {
	t.Helper()
	g, ok := window(t, b).Child().(*headless.Group)
	if !ok {
		t.Fatalf("window child = %T, want *headless.Group", window(t, b).Child())
	}
	return g
}

func contents(g *headless.Group) []string {
	var out []string
	for _, w := range g.Children() {
		if text, ok := w.(*headless.Text); ok {
			out = append(out, text.Content())
		} else {
			out = append(out, w.(interface{ Kind() string }).Kind())
		}
	}
	return out
}

type recordingHandler struct {
	errors []*errors.NativeError
}

func (h *recordingHandler) HandleError(err *errors.NativeError) { h.errors = append(h.errors, err) }
func (h *recordingHandler) HandlePanic(*errors.PanicError)      {}

func recordErrors(t *testing.T) *recordingHandler {
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func TestCounter(t *testing.T) {
	b := headless.New()
	a := newCounter(b)
	a.Pump()

	g := rootGroup(t, b)
	label := g.Children()[0].(*headless.Text)
	button := g.Children()[1].(*headless.Pressable)
	for range 3 {
		button.Click()
		a.Pump()
	}

	if a.Data().Count != 3 {
		t.Errorf("Count = %d, want 3", a.Data().Count)
	}
	if got := label.Content(); got != "Pressed 3 times." {
		t.Errorf("label = %q, want %q", got, "Pressed 3 times.")
	}
	if g.Children()[0] != label {
		t.Error("label widget was replaced")
	}
	if got := b.Count("Text.New"); got != 2 {
		t.Errorf("Count(Text.New) = %d, want 2", got)
	}
	if got := b.Count("Text.SetText"); got != 3 {
		t.Errorf("Count(Text.SetText) = %d, want 3", got)
	}
}

func TestCounterLayout(t *testing.T) {
	b := headless.New()
	newCounter(b).Pump()

	w := window(t, b)
	if width, height := w.MinSize(); width != 49 || height != 65 {
		t.Errorf("MinSize() = %vx%v, want 49x65", width, height)
	}
	if width, height := w.Size(); width != headless.DefaultWindowWidth || height != headless.DefaultWindowHeight {
		t.Errorf("Size() = %vx%v, want the default size", width, height)
	}
	g := rootGroup(t, b)
	if got, want := g.ChildFrame(0), (headless.Rect{Width: 800, Height: 13}); got != want {
		t.Errorf("label frame = %+v, want %+v", got, want)
	}
	if got, want := g.ChildFrame(1), (headless.Rect{Y: 13, Width: 800, Height: 13}); got != want {
		t.Errorf("button frame = %+v, want %+v", got, want)
	}
	if width, height := g.Size(); width != 800 || height != 26 {
		t.Errorf("column size = %vx%v, want 800x26", width, height)
	}
}

func TestRebuildWithoutChangesIsFree(t *testing.T) {
	b := headless.New()
	a := newCounter(b)
	a.Pump()

	b.Reset()
	a.Proxy().RequestRebuild()
	a.Pump()
	if got := b.Mutations(); got != 0 {
		t.Errorf("Mutations() = %d after an unchanged rebuild, want 0: %v", got, b.Counts())
	}
}

func TestCloseQuits(t *testing.T) {
	b := headless.New()
	a := newCounter(b)
	a.Pump()

	window(t, b).RequestClose()
	a.Pump()
	if !a.Quitting() || !b.QuitRequested() {
		t.Errorf("Quitting() = %v, QuitRequested() = %v, want both true", a.Quitting(), b.QuitRequested())
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if got := b.Live(); got != 0 {
		t.Errorf("Live() = %d after Close, want 0", got)
	}
}

type rows struct {
	Rows  []string
	Keyed bool
}

func newRows(b *headless.Backend, data *rows) *app.App[rows] {
	return app.New(b.Platform(), data, func(data *rows) core.Effect[rows] {
		children := make([]core.View[rows], 0, len(data.Rows))
		for _, r := range data.Rows {
			var v core.View[rows] = views.Text[rows]{Content: r}
			if data.Keyed {
				v = core.Key(r, v)
			}
			children = append(children, v)
		}
		col := views.Column(children...)
		col.Keyed = data.Keyed
		return views.Window[rows]{Contents: col}
	})
}

func TestMiddleRowRemoval(t *testing.T) {
	tests := []struct {
		name      string
		keyed     bool
		kept      []int
		tornDown  int
		wantTexts int
	}{
		// Positional matching reuses the second widget for "c".
		{name: "positional", kept: []int{0, 1}, tornDown: 2, wantTexts: 1},
		{name: "keyed", keyed: true, kept: []int{0, 2}, tornDown: 1, wantTexts: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := headless.New()
			data := &rows{Rows: []string{"a", "b", "c"}, Keyed: tt.keyed}
			a := newRows(b, data)
			a.Pump()

			g := rootGroup(t, b)
			before := g.Children()
			b.Reset()
			data.Rows = []string{"a", "c"}
			a.Proxy().RequestRebuild()
			a.Pump()

			after := g.Children()
			if len(after) != 2 || after[0] != before[tt.kept[0]] || after[1] != before[tt.kept[1]] {
				t.Errorf("children = %v, want widgets %v of %v", after, tt.kept, before)
			}
			if diff := cmp.Diff([]string{"a", "c"}, contents(g)); diff != "" {
				t.Errorf("contents mismatch (-want +got):\n%s", diff)
			}
			if !before[tt.tornDown].(*headless.Text).TornDown() {
				t.Errorf("widget %d was not torn down", tt.tornDown)
			}
			if got := b.Count("Text.SetText"); got != tt.wantTexts {
				t.Errorf("Count(Text.SetText) = %d, want %d", got, tt.wantTexts)
			}
			if got := b.Count("Text.New"); got != 0 {
				t.Errorf("Count(Text.New) = %d, want 0", got)
			}
		})
	}
}

func TestKeyedReorder(t *testing.T) {
	b := headless.New()
	data := &rows{Rows: []string{"a", "b", "c"}, Keyed: true}
	a := newRows(b, data)
	a.Pump()

	g := rootGroup(t, b)
	before := g.Children()
	data.Rows = []string{"c", "a", "d", "b"}
	a.Proxy().RequestRebuild()
	a.Pump()

	after := g.Children()
	if len(after) != 4 || after[0] != before[2] || after[1] != before[0] || after[3] != before[1] {
		t.Errorf("children were not moved: before %v, after %v", before, after)
	}
	if diff := cmp.Diff([]string{"c", "a", "d", "b"}, contents(g)); diff != "" {
		t.Errorf("contents mismatch (-want +got):\n%s", diff)
	}
	if got := b.Count("Text.Teardown"); got != 0 {
		t.Errorf("Count(Text.Teardown) = %d, want 0", got)
	}
	// Frames follow the widgets to their new positions.
	for i := range after {
		if got := g.ChildFrame(i).Y; got != float32(13*i) {
			t.Errorf("ChildFrame(%d).Y = %v, want %v", i, got, 13*i)
		}
	}
}

type toggle struct {
	Kinds []string
	Step  int
}

func TestAnySwitchesTypes(t *testing.T) {
	b := headless.New()
	data := &toggle{Kinds: []string{"text", "text", "row", "row", "text"}}
	a := app.New(b.Platform(), data, func(data *toggle) core.Effect[toggle] {
		var v core.View[toggle] = views.Text[toggle]{Content: fmt.Sprint(data.Step)}
		if data.Kinds[data.Step] == "row" {
			v = views.Row[toggle]()
		}
		return views.Window[toggle]{Contents: views.Column(core.Any(v))}
	})
	a.Pump()
	g := rootGroup(t, b)
	kinds := []string{contents(g)[0]}
	for data.Step = 1; data.Step < len(data.Kinds); data.Step++ {
		a.Proxy().RequestRebuild()
		a.Pump()
		kind := "row"
		if _, ok := g.Children()[0].(*headless.Text); ok {
			kind = "text"
		}
		kinds = append(kinds, kind)
	}

	if diff := cmp.Diff([]string{"0", "text", "row", "row", "text"}, kinds); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
	// The column itself is the first group.
	builds := b.Count("Text.New") + b.Count("Group.New") - 1
	teardowns := b.Count("Text.Teardown") + b.Count("Group.Teardown")
	if builds != 3 || teardowns != 2 {
		t.Errorf("builds = %d, teardowns = %d, want 3 and 2", builds, teardowns)
	}
	if got := b.Count("Group.ReplaceChild"); got != 2 {
		t.Errorf("Count(Group.ReplaceChild) = %d, want 2", got)
	}
}

func TestReplacementIsPlaced(t *testing.T) {
	b := headless.New()
	data := &toggle{Kinds: []string{"text", "row"}}
	a := app.New(b.Platform(), data, func(data *toggle) core.Effect[toggle] {
		var v core.View[toggle] = views.Text[toggle]{Content: "x"}
		if data.Kinds[data.Step] == "row" {
			row := views.Row[toggle]()
			row.Style.Size.Height = layout.Length(13)
			v = row
		}
		return views.Window[toggle]{Contents: views.Column(core.Any(v))}
	})
	a.Pump()
	g := rootGroup(t, b)
	before := b.Count("Group.SetChildLayout")

	data.Step = 1
	a.Proxy().RequestRebuild()
	a.Pump()

	if _, ok := g.Children()[0].(*headless.Group); !ok {
		t.Fatalf("child = %T, want *headless.Group", g.Children()[0])
	}
	// Same geometry as the text it replaced, but a new widget to place.
	if got := b.Count("Group.SetChildLayout") - before; got != 1 {
		t.Errorf("SetChildLayout calls after replace = %d, want 1", got)
	}
	if diff := cmp.Diff(headless.Rect{Width: 800, Height: 13}, g.ChildFrame(0)); diff != "" {
		t.Errorf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestRebuildTypeChangePanics(t *testing.T) {
	b := headless.New()
	data := &toggle{Kinds: []string{"text", "row"}}
	a := app.New(b.Platform(), data, func(data *toggle) core.Effect[toggle] {
		var v core.View[toggle] = views.Text[toggle]{Content: "x"}
		if data.Kinds[data.Step] == "row" {
			v = views.Row[toggle]()
		}
		return views.Window[toggle]{Contents: views.Column(v)}
	})
	a.Pump()
	data.Step = 1
	a.Proxy().RequestRebuild()

	defer func() {
		r := recover()
		err, ok := r.(error)
		var inv *errors.InvariantError
		if !ok || !errors.As(err, &inv) {
			t.Errorf("recovered %v, want an invariant error", r)
		}
	}()
	a.Pump()
}

type pressLog struct {
	Presses int
	Hovered bool
	States  []views.PressState
}

func TestPressStateMachine(t *testing.T) {
	b := headless.New()
	a := app.New(b.Platform(), &pressLog{}, func(data *pressLog) core.Effect[pressLog] {
		return views.Window[pressLog]{Contents: views.Pressable[pressLog]{
			Contents: func(data *pressLog, state views.PressState) core.View[pressLog] {
				data.States = append(data.States, state)
				return views.Text[pressLog]{Content: "button"}
			},
			OnPress: views.Update(func(data *pressLog) { data.Presses++ }),
			OnHover: func(data *pressLog, hovered bool) core.Action {
				data.Hovered = hovered
				return core.Action{}
			},
		}}
	})
	a.Pump()
	p := window(t, b).Child().(*headless.Pressable)

	steps := []struct {
		name  string
		do    func()
		press int
	}{
		{"click", p.Click, 1},
		{"cancelled press", func() { p.Press(platform.PressDown); p.Press(platform.PressCancel); p.Press(platform.PressUp) }, 1},
		{"release without press", func() { p.Press(platform.PressUp) }, 1},
		{"leave while pressed", func() { p.Hover(true); p.Press(platform.PressDown); p.Hover(false); p.Press(platform.PressUp) }, 1},
		{"second click", p.Click, 2},
	}
	for _, step := range steps {
		step.do()
		a.Pump()
		if got := a.Data().Presses; got != step.press {
			t.Errorf("%s: Presses = %d, want %d", step.name, got, step.press)
		}
	}
	if a.Data().Hovered {
		t.Error("Hovered = true after leaving")
	}

	var sawPressedHover bool
	for _, s := range a.Data().States {
		if s.Pressed && s.Hovered {
			sawPressedHover = true
		}
	}
	if !sawPressedHover {
		t.Errorf("Build never saw a pressed and hovered state: %+v", a.Data().States)
	}
	if last := a.Data().States[len(a.Data().States)-1]; last.Pressed {
		t.Errorf("last state = %+v, want not pressed", last)
	}
}

type form struct {
	Text      string
	Submitted string
}

func TestTextInput(t *testing.T) {
	b := headless.New()
	a := app.New(b.Platform(), &form{}, func(data *form) core.Effect[form] {
		return views.Window[form]{Contents: views.TextInput[form]{
			Text:        data.Text,
			Placeholder: "Name",
			OnChange: func(data *form, text string) core.Action {
				data.Text = text
				return core.Rebuild()
			},
			OnSubmit: func(data *form, text string) core.Action {
				data.Submitted = text
				return core.Action{}
			},
		}}
	})
	a.Pump()
	input := window(t, b).Child().(*headless.TextInput)
	if input.Placeholder() != "Name" {
		t.Errorf("Placeholder() = %q, want Name", input.Placeholder())
	}

	input.Type("Ada")
	a.Pump()
	input.Submit()
	a.Pump()

	if diff := cmp.Diff(&form{Text: "Ada", Submitted: "Ada"}, a.Data()); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
	// Echoing the reported text back does not push it to the widget again.
	if got := b.Count("TextInput.SetText"); got != 1 {
		t.Errorf("Count(TextInput.SetText) = %d, want 1", got)
	}
	if width, _ := input.Size(); width != 800 {
		t.Errorf("input width = %v, want 800", width)
	}
}

type picture struct {
	Data []byte
}

func TestImageFallback(t *testing.T) {
	h := recordErrors(t)
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 20))); err != nil {
		t.Fatal(err)
	}

	b := headless.New()
	data := &picture{Data: []byte("not an image")}
	a := app.New(b.Platform(), data, func(data *picture) core.Effect[picture] {
		return views.Window[picture]{
			Sizing:   views.ContentFit,
			Contents: views.Image[picture]{Data: data.Data},
		}
	})
	a.Pump()

	if len(h.errors) != 1 || h.errors[0].Kind != errors.KindResource {
		t.Fatalf("reported errors = %v, want one resource error", h.errors)
	}
	if width, height := window(t, b).Size(); width != 0 || height != 0 {
		t.Errorf("window size with a broken image = %vx%v, want 0x0", width, height)
	}

	data.Data = buf.Bytes()
	a.Proxy().RequestRebuild()
	a.Pump()
	if len(h.errors) != 1 {
		t.Errorf("reported errors = %d after a valid image, want 1", len(h.errors))
	}
	if width, height := window(t, b).Size(); width != 40 || height != 20 {
		t.Errorf("window size = %vx%v, want 40x20", width, height)
	}
}

type text struct {
	Content string
}

func TestContentFitWindow(t *testing.T) {
	b := headless.New()
	data := &text{Content: "hello big world"}
	a := app.New(b.Platform(), data, func(data *text) core.Effect[text] {
		return views.Window[text]{
			Sizing:   views.ContentFit,
			Contents: views.Column[text](views.Text[text]{Content: data.Content}),
		}
	})
	a.Pump()

	w := window(t, b)
	if width, height := w.Size(); width != 35 || height != 39 {
		t.Errorf("Size() = %vx%v, want 35x39", width, height)
	}
	if width, height := w.MinSize(); width != 35 || height != 39 {
		t.Errorf("MinSize() = %vx%v, want 35x39", width, height)
	}

	data.Content = "a much longer headline"
	a.Proxy().RequestRebuild()
	a.Pump()
	// "headline" is the longest word.
	if width, _ := w.Size(); width != 56 {
		t.Errorf("Size() width = %v after the text changed, want 56", width)
	}
}

func TestUserResize(t *testing.T) {
	b := headless.New()
	a := newCounter(b)
	a.Pump()

	w := window(t, b)
	w.Resize(300, 10)
	a.Pump()
	if width, height := w.Size(); width != 300 || height != 65 {
		t.Errorf("Size() = %vx%v, want 300x65", width, height)
	}
	if got := rootGroup(t, b).ChildFrame(0).Width; got != 300 {
		t.Errorf("label width = %v after resize, want 300", got)
	}
}

type scroller struct {
	Rows int
}

func TestScrollContentSize(t *testing.T) {
	b := headless.New()
	a := app.New(b.Platform(), &scroller{Rows: 10}, func(data *scroller) core.Effect[scroller] {
		children := make([]core.View[scroller], data.Rows)
		for i := range children {
			children[i] = views.Text[scroller]{Content: "row"}
		}
		return views.Window[scroller]{
			Width:    100,
			Height:   50,
			Contents: views.VScroll[scroller](views.Column(children...)),
		}
	})
	a.Pump()

	s, ok := window(t, b).Child().(*headless.Scroll)
	if !ok {
		t.Fatalf("window child = %T, want *headless.Scroll", window(t, b).Child())
	}
	if s.Direction() != layout.Column {
		t.Errorf("Direction() = %v, want column", s.Direction())
	}
	if _, height := s.ContentSize(); height != 130 {
		t.Errorf("ContentSize() height = %v, want 130", height)
	}
	if _, ok := s.Child().(*headless.Group); !ok {
		t.Errorf("scroll child = %T, want *headless.Group", s.Child())
	}
}

type fader struct {
	Target float64
}

func TestTransitionAnimates(t *testing.T) {
	b := headless.New()
	a := app.New(b.Platform(), &fader{}, func(data *fader) core.Effect[fader] {
		return views.Window[fader]{Contents: views.Transition[fader]{
			Target:   data.Target,
			Duration: 100 * time.Millisecond,
			Curve:    animation.LinearCurve,
			View: func(_ *fader, value float64) core.View[fader] {
				return views.Text[fader]{Content: fmt.Sprintf("%.0f", value)}
			},
		}}
	})
	a.Pump()
	w := window(t, b)
	label := w.Child().(*headless.Text)
	if w.Animating() {
		t.Fatal("window animating before the target changed")
	}

	a.Data().Target = 10
	a.Proxy().RequestRebuild()
	a.Pump()
	if !w.Animating() {
		t.Fatal("window not animating after the target changed")
	}

	w.Frame(50 * time.Millisecond)
	a.Pump()
	if got := label.Content(); got != "5" {
		t.Errorf("label halfway = %q, want 5", got)
	}

	w.Frame(100 * time.Millisecond)
	a.Pump()
	if got := label.Content(); got != "10" {
		t.Errorf("label at the end = %q, want 10", got)
	}
	if w.Animating() {
		t.Error("window still animating after the transition finished")
	}
	if w.Frame(time.Millisecond) {
		t.Error("frame delivered after the transition finished")
	}
	if start, stop := b.Count("Window.StartAnimating"), b.Count("Window.StopAnimating"); start != 1 || stop != 1 {
		t.Errorf("StartAnimating = %d, StopAnimating = %d, want 1 each", start, stop)
	}
}

type spinners struct {
	Spinning []bool
}

func spinner(i int) views.Animate[spinners, int] {
	return views.Animate[spinners, int]{
		ShouldAnimate: func(data *spinners, _ *int) bool { return data.Spinning[i] },
		Tick:          func(_ *spinners, frames *int, _ time.Duration) { *frames++ },
		View: func(_ *spinners, frames *int) core.View[spinners] {
			return views.Text[spinners]{Content: fmt.Sprint(*frames)}
		},
	}
}

func TestAnimationRequestsAreCounted(t *testing.T) {
	b := headless.New()
	data := &spinners{Spinning: []bool{true, true}}
	a := app.New(b.Platform(), data, func(data *spinners) core.Effect[spinners] {
		return views.Window[spinners]{Contents: views.Row[spinners](spinner(0), spinner(1))}
	})
	a.Pump()
	w := window(t, b)

	w.Frame(time.Millisecond)
	a.Pump()
	data.Spinning[0] = false
	a.Proxy().RequestRebuild()
	a.Pump()
	if !w.Animating() {
		t.Fatal("window stopped animating while one spinner still runs")
	}
	w.Frame(time.Millisecond)
	a.Pump()

	if diff := cmp.Diff([]string{"1", "2"}, contents(rootGroup(t, b))); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}

	data.Spinning[1] = false
	a.Proxy().RequestRebuild()
	a.Pump()
	if w.Animating() {
		t.Error("window still animating after every spinner stopped")
	}
	if start, stop := b.Count("Window.StartAnimating"), b.Count("Window.StopAnimating"); start != 1 || stop != 1 {
		t.Errorf("StartAnimating = %d, StopAnimating = %d, want 1 each", start, stop)
	}
}

type panel struct{}

func TestLayerShell(t *testing.T) {
	opts := &views.LayerShellOptions{
		Layer:  platform.LayerTop,
		Anchor: platform.AnchorTop | platform.AnchorLeft | platform.AnchorRight,
	}
	root := func(*panel) core.Effect[panel] {
		return views.Window[panel]{
			Title:      "Bar",
			Contents:   views.Text[panel]{Content: "12:00"},
			LayerShell: opts,
		}
	}

	t.Run("supported", func(t *testing.T) {
		h := recordErrors(t)
		b := headless.New()
		b.LayerShell = true
		app.New(b.Platform(), &panel{}, root).Pump()
		if got := window(t, b).Kind(); got != "LayerShell" {
			t.Errorf("window kind = %q, want LayerShell", got)
		}
		if got := b.Count("LayerShell.SetAnchor"); got != 1 {
			t.Errorf("Count(LayerShell.SetAnchor) = %d, want 1", got)
		}
		if len(h.errors) != 0 {
			t.Errorf("reported errors = %v, want none", h.errors)
		}
	})

	t.Run("fallback", func(t *testing.T) {
		h := recordErrors(t)
		b := headless.New()
		app.New(b.Platform(), &panel{}, root).Pump()
		if got := window(t, b).Kind(); got != "Window" {
			t.Errorf("window kind = %q, want Window", got)
		}
		if len(h.errors) != 1 || h.errors[0].Kind != errors.KindPlatform {
			t.Errorf("reported errors = %v, want one platform error", h.errors)
		}
		if got := window(t, b).Title(); got != "Bar" {
			t.Errorf("Title() = %q, want Bar", got)
		}
	})
}

type ping struct{ N int }

type inbox struct {
	Total int
}

func TestReceiveBroadcast(t *testing.T) {
	b := headless.New()
	a := app.New(b.Platform(), &inbox{}, func(data *inbox) core.Effect[inbox] {
		return core.Effects[inbox](
			views.Window[inbox]{Contents: views.Text[inbox]{Content: fmt.Sprint(data.Total)}},
			core.Receive(func(data *inbox, p ping) core.Action {
				data.Total += p.N
				return core.Rebuild()
			}),
		)
	})
	a.Pump()

	a.Proxy().Message(core.Broadcast(ping{N: 2}))
	a.Proxy().Message(core.Broadcast(ping{N: 3}))
	a.Pump()
	if got := window(t, b).Child().(*headless.Text).Content(); got != "5" {
		t.Errorf("label = %q, want 5", got)
	}
}

func TestDeadTargetIsDropped(t *testing.T) {
	b := headless.New()
	a := newCounter(b)
	a.Pump()
	b.Reset()

	a.Proxy().Message(core.NewMessage("stale", 9999))
	a.Pump()
	if a.Data().Count != 0 || b.Mutations() != 0 {
		t.Errorf("stale message changed state: count %d, mutations %v", a.Data().Count, b.Counts())
	}
}
