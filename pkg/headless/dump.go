package headless

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/go-drift/native/pkg/platform"
)

var (
	kindStyle  = lipgloss.NewStyle().Bold(true)
	valueStyle = lipgloss.NewStyle().Faint(true)
)

func label(w platform.Widget) string {
	switch w := w.(type) {
	case *Group:
		return fmt.Sprintf("%s %s", kindStyle.Render("Group"), valueStyle.Render(fmt.Sprintf("%gx%g", w.width, w.height)))
	case *Text:
		return fmt.Sprintf("%s %q", kindStyle.Render("Text"), w.content)
	case *TextInput:
		return fmt.Sprintf("%s %q", kindStyle.Render("TextInput"), w.text)
	case *Image:
		return fmt.Sprintf("%s %s", kindStyle.Render("Image"), valueStyle.Render(fmt.Sprintf("%s %dx%d", w.format, w.bounds.X, w.bounds.Y)))
	case *Scroll:
		return kindStyle.Render("Scroll")
	case *Pressable:
		return kindStyle.Render("Pressable")
	case *Window:
		return fmt.Sprintf("%s %q", kindStyle.Render(w.kind), w.title)
	case *LayerShell:
		return fmt.Sprintf("%s %q", kindStyle.Render(w.kind), w.title)
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%T", w)
	}
}

func children(w platform.Widget) []platform.Widget {
	switch w := w.(type) {
	case *Group:
		return w.children
	case *Scroll:
		return []platform.Widget{w.child}
	case *Pressable:
		return []platform.Widget{w.child}
	case *Window:
		return []platform.Widget{w.child}
	case *LayerShell:
		return []platform.Widget{w.child}
	}
	return nil
}

func build(w platform.Widget) *tree.Tree {
	t := tree.Root(label(w))
	for _, child := range children(w) {
		if len(children(child)) == 0 {
			t.Child(label(child))
			continue
		}
		t.Child(build(child))
	}
	return t
}

// Dump renders the widget tree below w, one widget per line.
func Dump(w platform.Widget) string {
	return build(w).String()
}
