// Package headless is an in-memory widget backend.
//
// It implements every widget kind of the platform package without a
// display. Widgets record their properties and children, the backend
// counts every mutating call, and tests or terminal front ends drive the
// widgets through simulation methods such as (*Pressable).Click and
// (*Window).Resize.
//
// Text is measured with a fixed 7x13 bitmap face regardless of the font,
// which keeps layout results exact and portable. Images are decoded far
// enough to learn their size; PNG, BMP and WebP are supported.
//
// A Backend is not safe for concurrent use. Simulation callbacks only send
// messages through the application proxy, so they may be called from any
// goroutine as long as the backend itself is only touched by one.
package headless

import (
	"maps"
	"slices"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/native/pkg/errors"
	"github.com/go-drift/native/pkg/graphics"
	"github.com/go-drift/native/pkg/layout"
	"github.com/go-drift/native/pkg/platform"
)

// Backend creates headless widgets and keeps statistics about them.
type Backend struct {
	face    font.Face
	counts  map[string]int
	nextID  int
	live    map[int]platform.Widget
	windows []*Window
	quit    bool

	// LayerShell enables layer-shell windows.
	LayerShell bool
}

// New returns an empty backend.
func New() *Backend {
	return &Backend{
		face:   basicfont.Face7x13,
		counts: make(map[string]int),
		live:   make(map[int]platform.Widget),
	}
}

// Platform returns the capability set of the backend.
func (b *Backend) Platform() *platform.Platform {
	p := platform.New(b)
	if !b.LayerShell {
		p.LayerShells = nil
	}
	return p
}

func (b *Backend) count(op string) {
	b.counts[op]++
}

// Count returns how many times op was called, where op is a widget kind and
// method such as "Text.SetText".
func (b *Backend) Count(op string) int {
	return b.counts[op]
}

// Counts returns a copy of all call counters.
func (b *Backend) Counts() map[string]int {
	return maps.Clone(b.counts)
}

// Mutations returns the total number of calls that created, changed or
// destroyed widgets since the last Reset.
func (b *Backend) Mutations() int {
	total := 0
	for _, n := range b.counts {
		total += n
	}
	return total
}

// Reset clears the call counters.
func (b *Backend) Reset() {
	clear(b.counts)
}

// Live returns the number of widgets created and not yet torn down.
func (b *Backend) Live() int {
	return len(b.live)
}

// Windows returns the open windows in creation order.
func (b *Backend) Windows() []*Window {
	return slices.Clone(b.windows)
}

// Quit records a request to leave the event loop.
func (b *Backend) Quit() {
	b.count("Backend.Quit")
	b.quit = true
}

// QuitRequested reports whether Quit was called.
func (b *Backend) QuitRequested() bool {
	return b.quit
}

// base is embedded in every headless widget.
type base struct {
	b      *Backend
	id     int
	kind   string
	torn   bool
	width  float32
	height float32
}

func (b *Backend) newBase(kind string) base {
	b.nextID++
	b.count(kind + ".New")
	return base{b: b, id: b.nextID, kind: kind}
}

func (b *Backend) register(w platform.Widget, id int) {
	b.live[id] = w
}

func (w *base) op(method string) {
	if w.torn {
		errors.Invariant("headless."+w.kind+"."+method, "widget %d used after teardown", w.id)
	}
	w.b.count(w.kind + "." + method)
}

// ID returns the widget's unique id.
func (w *base) ID() int { return w.id }

// Kind returns the widget kind, such as "Group".
func (w *base) Kind() string { return w.kind }

// TornDown reports whether the widget has been destroyed.
func (w *base) TornDown() bool { return w.torn }

// Size returns the size last set by the layout.
func (w *base) Size() (width, height float32) { return w.width, w.height }

func (w *base) SetSize(width, height float32) {
	w.op("SetSize")
	w.width, w.height = width, height
}

func (w *base) Teardown() {
	w.op("Teardown")
	w.torn = true
	delete(w.b.live, w.id)
}

// Rect is the frame of a child inside its group.
type Rect struct {
	X, Y, Width, Height float32
}

// Group is a headless container.
type Group struct {
	base
	children    []platform.Widget
	frames      []Rect
	Background  graphics.Color
	BorderColor graphics.Color
	BorderWidth [4]float32
	CornerRadii [4]float32
}

// NewGroup implements platform.GroupFactory.
func (b *Backend) NewGroup() platform.Group {
	g := &Group{base: b.newBase("Group")}
	b.register(g, g.id)
	return g
}

// Children returns the child widgets in order.
func (g *Group) Children() []platform.Widget {
	return slices.Clone(g.children)
}

// ChildFrame returns the frame of the child at index.
func (g *Group) ChildFrame(index int) Rect {
	return g.frames[index]
}

func (g *Group) checkIndex(method string, index int, n int) {
	if index < 0 || index >= n {
		errors.Invariant("headless.Group."+method, "index %d out of range [0, %d)", index, n)
	}
}

func (g *Group) InsertChild(index int, child platform.Widget) {
	g.op("InsertChild")
	g.checkIndex("InsertChild", index, len(g.children)+1)
	g.children = slices.Insert(g.children, index, child)
	g.frames = slices.Insert(g.frames, index, Rect{})
}

func (g *Group) RemoveChild(index int) {
	g.op("RemoveChild")
	g.checkIndex("RemoveChild", index, len(g.children))
	g.children = slices.Delete(g.children, index, index+1)
	g.frames = slices.Delete(g.frames, index, index+1)
}

func (g *Group) ReplaceChild(index int, child platform.Widget) {
	g.op("ReplaceChild")
	g.checkIndex("ReplaceChild", index, len(g.children))
	g.children[index] = child
}

func (g *Group) SwapChildren(a, b int) {
	g.op("SwapChildren")
	g.checkIndex("SwapChildren", a, len(g.children))
	g.checkIndex("SwapChildren", b, len(g.children))
	g.children[a], g.children[b] = g.children[b], g.children[a]
	g.frames[a], g.frames[b] = g.frames[b], g.frames[a]
}

func (g *Group) SetChildLayout(index int, x, y, width, height float32) {
	g.op("SetChildLayout")
	g.checkIndex("SetChildLayout", index, len(g.children))
	g.frames[index] = Rect{X: x, Y: y, Width: width, Height: height}
}

func (g *Group) SetBackgroundColor(color graphics.Color) {
	g.op("SetBackgroundColor")
	g.Background = color
}

func (g *Group) SetBorderColor(color graphics.Color) {
	g.op("SetBorderColor")
	g.BorderColor = color
}

func (g *Group) SetBorderWidth(width [4]float32) {
	g.op("SetBorderWidth")
	g.BorderWidth = width
}

func (g *Group) SetCornerRadii(radii [4]float32) {
	g.op("SetCornerRadii")
	g.CornerRadii = radii
}

// Text is a headless text run.
type Text struct {
	base
	content string
	spans   []graphics.TextSpan
	wrap    graphics.Wrap
}

// NewText implements platform.TextFactory.
func (b *Backend) NewText(text string, spans []graphics.TextSpan, wrap graphics.Wrap) (platform.Text, layout.Measurer) {
	t := &Text{base: b.newBase("Text"), content: text, spans: slices.Clone(spans), wrap: wrap}
	b.register(t, t.id)
	return t, b.textMeasurer(text, wrap)
}

// Content returns the displayed text.
func (t *Text) Content() string { return t.content }

// Spans returns the font spans of the text.
func (t *Text) Spans() []graphics.TextSpan { return slices.Clone(t.spans) }

func (t *Text) SetText(text string, spans []graphics.TextSpan, wrap graphics.Wrap) layout.Measurer {
	t.op("SetText")
	t.content, t.spans, t.wrap = text, slices.Clone(spans), wrap
	return t.b.textMeasurer(text, wrap)
}

// TextInput is a headless editable field.
type TextInput struct {
	base
	text            string
	placeholder     string
	font            graphics.Font
	placeholderFont graphics.Font
	newline         platform.Newline
	acceptTab       bool
	onChange        func(string)
	onSubmit        func(string)
}

// NewTextInput implements platform.TextInputFactory.
func (b *Backend) NewTextInput() platform.TextInput {
	t := &TextInput{base: b.newBase("TextInput")}
	b.register(t, t.id)
	return t
}

// Text returns the current content.
func (t *TextInput) Text() string { return t.text }

// Placeholder returns the placeholder text.
func (t *TextInput) Placeholder() string { return t.placeholder }

// Newline returns the line-break policy.
func (t *TextInput) Newline() platform.Newline { return t.newline }

func (t *TextInput) SetOnChange(fn func(text string)) { t.onChange = fn }
func (t *TextInput) SetOnSubmit(fn func(text string)) { t.onSubmit = fn }

func (t *TextInput) SetNewline(newline platform.Newline) {
	t.op("SetNewline")
	t.newline = newline
}

func (t *TextInput) SetAcceptTab(accept bool) {
	t.op("SetAcceptTab")
	t.acceptTab = accept
}

func (t *TextInput) SetFont(font graphics.Font) {
	t.op("SetFont")
	t.font = font
}

func (t *TextInput) SetText(text string) {
	t.op("SetText")
	t.text = text
}

func (t *TextInput) SetPlaceholderFont(font graphics.Font) {
	t.op("SetPlaceholderFont")
	t.placeholderFont = font
}

func (t *TextInput) SetPlaceholderText(text string) {
	t.op("SetPlaceholderText")
	t.placeholder = text
}

// Measurer measures the content, or the placeholder while empty.
func (t *TextInput) Measurer() layout.Measurer {
	shown := t.text
	if shown == "" {
		shown = t.placeholder
	}
	wrap := graphics.WrapNone
	if t.newline != platform.NewlineNone {
		wrap = graphics.WrapWord
	}
	return t.b.textMeasurer(shown, wrap)
}

// Type replaces the content as if the user typed it and reports the change.
func (t *TextInput) Type(text string) {
	t.text = text
	if t.onChange != nil {
		t.onChange(text)
	}
}

// Submit reports the current content as submitted.
func (t *TextInput) Submit() {
	if t.onSubmit != nil {
		t.onSubmit(t.text)
	}
}

// Scroll is a headless scroll container.
type Scroll struct {
	base
	child       platform.Widget
	direction   layout.Direction
	contentSize [2]float32
}

// NewScroll implements platform.ScrollFactory.
func (b *Backend) NewScroll(contents platform.Widget) platform.Scroll {
	s := &Scroll{base: b.newBase("Scroll"), child: contents}
	b.register(s, s.id)
	return s
}

// Child returns the scrolled widget.
func (s *Scroll) Child() platform.Widget { return s.child }

// Direction returns the scroll axis.
func (s *Scroll) Direction() layout.Direction { return s.direction }

// ContentSize returns the size of the scrolled contents.
func (s *Scroll) ContentSize() (width, height float32) {
	return s.contentSize[0], s.contentSize[1]
}

func (s *Scroll) ReplaceChild(index int, child platform.Widget) {
	s.op("ReplaceChild")
	s.child = child
}

func (s *Scroll) SetDirection(direction layout.Direction) {
	s.op("SetDirection")
	s.direction = direction
}

func (s *Scroll) SetContentSize(width, height float32) {
	s.op("SetContentSize")
	s.contentSize = [2]float32{width, height}
}

// Pressable is a headless press target.
type Pressable struct {
	base
	child   platform.Widget
	onPress func(platform.Press)
	onHover func(bool)
	onFocus func(bool)
}

// NewPressable implements platform.PressableFactory.
func (b *Backend) NewPressable(contents platform.Widget) platform.Pressable {
	p := &Pressable{base: b.newBase("Pressable"), child: contents}
	b.register(p, p.id)
	return p
}

// Child returns the wrapped widget.
func (p *Pressable) Child() platform.Widget { return p.child }

func (p *Pressable) ReplaceChild(index int, child platform.Widget) {
	p.op("ReplaceChild")
	p.child = child
}

func (p *Pressable) SetOnPress(fn func(press platform.Press)) { p.onPress = fn }
func (p *Pressable) SetOnHover(fn func(hovered bool))         { p.onHover = fn }
func (p *Pressable) SetOnFocus(fn func(focused bool))         { p.onFocus = fn }

// Press reports a pointer button transition.
func (p *Pressable) Press(press platform.Press) {
	if p.onPress != nil {
		p.onPress(press)
	}
}

// Click reports a press followed by a release.
func (p *Pressable) Click() {
	p.Press(platform.PressDown)
	p.Press(platform.PressUp)
}

// Hover reports the pointer entering or leaving.
func (p *Pressable) Hover(hovered bool) {
	if p.onHover != nil {
		p.onHover(hovered)
	}
}

// Focus reports keyboard focus changes.
func (p *Pressable) Focus(focused bool) {
	if p.onFocus != nil {
		p.onFocus(focused)
	}
}
