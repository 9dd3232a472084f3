// Package views provides the built-in views.
//
// Views are plain struct literals, generic over the application data type:
//
//	views.Column[Data](
//	    views.Text[Data]{Content: fmt.Sprintf("Pressed %d times.", data.Count)},
//	    views.Pressable[Data]{
//	        Contents: func(data *Data, press views.PressState) core.View[Data] {
//	            return views.Text[Data]{Content: "Press me"}
//	        },
//	        OnPress: views.Update(func(data *Data) { data.Count++ }),
//	    },
//	)
//
// Every view keeps the props it last applied and skips native calls whose
// values did not change, so rebuilding an unchanged tree is free.
package views

import (
	"reflect"

	"github.com/go-drift/native/pkg/core"
	"github.com/go-drift/native/pkg/errors"
	"github.com/go-drift/native/pkg/layout"
	"github.com/go-drift/native/pkg/platform"
)

// Update adapts a data mutation to a handler that requests a rebuild.
func Update[T any](fn func(data *T)) func(data *T) core.Action {
	return func(data *T) core.Action {
		fn(data)
		return core.Rebuild()
	}
}

func isLayout(msg *core.Message) bool {
	lc, ok := core.Get[core.Lifecycle](msg)
	return ok && lc.Kind == core.LifecycleLayout
}

// sizeCache forwards computed sizes to a widget, skipping repeats.
type sizeCache struct {
	size layout.Size
	set  bool
}

func (c *sizeCache) apply(cx *core.Context, node layout.NodeID, w platform.Sizer) {
	l, ok := cx.ComputedLayout(node)
	if !ok || (c.set && c.size == l.Size) {
		return
	}
	w.SetSize(l.Size.Width, l.Size.Height)
	c.size, c.set = l.Size, true
}

// rebuildChild rebuilds the single child of a wrapper view. The child must
// keep its view type.
func rebuildChild[T any](op string, old, next core.View[T], el core.PodMut, state core.State, cx *core.Context, data *T) {
	if reflect.TypeOf(old) != reflect.TypeOf(next) {
		errors.Invariant(op, "contents changed from %T to %T; wrap them with core.Any", old, next)
	}
	next.Rebuild(el, state, cx, data)
}
