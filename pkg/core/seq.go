package core

import (
	"reflect"

	"github.com/go-drift/native/pkg/errors"
)

type seqChild[T any] struct {
	view  View[T]
	state State
}

// Seq is the reconciliation state of an ordered list of child views. It
// pairs each element of a container with the view that built it.
type Seq[T any] struct {
	children []seqChild[T]
}

// Len returns the number of children.
func (s *Seq[T]) Len() int {
	return len(s.children)
}

// State returns the state of the child at index.
func (s *Seq[T]) State(index int) State {
	return s.children[index].state
}

func compact[T any](views []View[T]) []View[T] {
	for _, v := range views {
		if v == nil {
			out := make([]View[T], 0, len(views))
			for _, v := range views {
				if v != nil {
					out = append(out, v)
				}
			}
			return out
		}
	}
	return views
}

// SeqBuild builds every view and inserts the elements through els. Nil
// views are skipped.
func SeqBuild[T any](views []View[T], els Elements, cx *Context, data *T) *Seq[T] {
	views = compact(views)
	seq := &Seq[T]{children: make([]seqChild[T], 0, len(views))}
	for _, v := range views {
		pod, state := v.Build(cx, data)
		els.Insert(cx, pod)
		seq.children = append(seq.children, seqChild[T]{view: v, state: state})
	}
	return seq
}

// SeqRebuild reconciles views against the existing children by position.
// Shared positions are rebuilt in place and must keep their view type;
// extra views are built and inserted; surplus elements are removed from
// the tail and torn down.
func SeqRebuild[T any](views []View[T], seq *Seq[T], els Elements, cx *Context, data *T) {
	views = compact(views)
	m, n := len(seq.children), len(views)

	for i := 0; i < min(m, n); i++ {
		el, ok := els.Next(cx)
		if !ok {
			errors.Invariant("core.SeqRebuild", "element list ended at %d of %d children", i, m)
		}
		child := &seq.children[i]
		v := views[i]
		if viewType(child.view) != viewType(v) {
			errors.Invariant("core.SeqRebuild",
				"child %d changed from %s to %s; wrap alternating views with core.Any",
				i, typeName(child.view), typeName(v))
		}
		v.Rebuild(el, child.state, cx, data)
		child.view = v
	}

	for i := m; i < n; i++ {
		pod, state := views[i].Build(cx, data)
		els.Insert(cx, pod)
		seq.children = append(seq.children, seqChild[T]{view: views[i], state: state})
	}

	for i := n; i < m; i++ {
		pod := els.Remove(cx)
		child := seq.children[i]
		child.view.Teardown(pod, child.state, cx)
	}
	if n < m {
		clear(seq.children[n:])
		seq.children = seq.children[:n]
	}
}

// SeqMessage delivers msg to the children in order until it is taken and
// merges their actions.
func SeqMessage[T any](seq *Seq[T], els Elements, cx *Context, data *T, msg *Message) Action {
	var action Action
	for i := range seq.children {
		if msg.Taken() {
			break
		}
		el, ok := els.Next(cx)
		if !ok {
			errors.Invariant("core.SeqMessage", "element list ended at %d of %d children", i, len(seq.children))
		}
		child := seq.children[i]
		action = action.Merge(child.view.Message(el, child.state, cx, data, msg))
	}
	return action
}

// SeqTeardown removes and tears down every child.
func SeqTeardown[T any](seq *Seq[T], els Elements, cx *Context) {
	for _, child := range seq.children {
		pod := els.Remove(cx)
		child.view.Teardown(pod, child.state, cx)
	}
	seq.children = nil
}

// Keyed is a view tagged with a key for SeqRebuildKeyed.
type Keyed[T any] struct {
	Key  any
	View View[T]
}

// Key tags v with key.
func Key[T any](key any, v View[T]) View[T] {
	return Keyed[T]{Key: key, View: v}
}

func (k Keyed[T]) Build(cx *Context, data *T) (Pod, State) {
	return k.View.Build(cx, data)
}

func (k Keyed[T]) Rebuild(el PodMut, state State, cx *Context, data *T) {
	k.View.Rebuild(el, state, cx, data)
}

func (k Keyed[T]) Message(el PodMut, state State, cx *Context, data *T, msg *Message) Action {
	return k.View.Message(el, state, cx, data, msg)
}

func (k Keyed[T]) Teardown(el Pod, state State, cx *Context) {
	k.View.Teardown(el, state, cx)
}

func viewType[T any](v View[T]) reflect.Type {
	if k, ok := v.(Keyed[T]); ok {
		return reflect.TypeOf(k.View)
	}
	return reflect.TypeOf(v)
}

func keyOf[T any](v View[T]) (any, bool) {
	k, ok := v.(Keyed[T])
	if !ok {
		return nil, false
	}
	return k.Key, true
}

func sameKeyedView[T any](old, next View[T]) bool {
	ok, hasOld := keyOf(old)
	nk, hasNext := keyOf(next)
	if hasOld != hasNext || !reflect.DeepEqual(ok, nk) {
		return false
	}
	return viewType(old) == viewType(next)
}

// SeqRebuildKeyed reconciles views against the existing children, moving
// elements whose key and view type match into place with Elements.Swap
// before rebuilding them. Views without a key match the element at the
// same position only. Unmatched elements end up at the tail and are torn
// down.
func SeqRebuildKeyed[T any](views []View[T], seq *Seq[T], els Elements, cx *Context, data *T) {
	views = compact(views)

	for i, v := range views {
		match := -1
		if _, keyed := keyOf(v); keyed {
			for j := i; j < len(seq.children); j++ {
				if sameKeyedView(seq.children[j].view, v) {
					match = j
					break
				}
			}
		} else if i < len(seq.children) && sameKeyedView(seq.children[i].view, v) {
			match = i
		}

		if match < 0 {
			pod, state := v.Build(cx, data)
			els.Insert(cx, pod)
			seq.children = append(seq.children, seqChild[T]{})
			copy(seq.children[i+1:], seq.children[i:])
			seq.children[i] = seqChild[T]{view: v, state: state}
			continue
		}

		if match > i {
			els.Swap(cx, match-i)
			seq.children[i], seq.children[match] = seq.children[match], seq.children[i]
		}
		el, ok := els.Next(cx)
		if !ok {
			errors.Invariant("core.SeqRebuildKeyed", "element list ended at %d", i)
		}
		v.Rebuild(el, seq.children[i].state, cx, data)
		seq.children[i].view = v
	}

	n := len(views)
	for i := n; i < len(seq.children); i++ {
		pod := els.Remove(cx)
		child := seq.children[i]
		child.view.Teardown(pod, child.state, cx)
	}
	if n < len(seq.children) {
		clear(seq.children[n:])
		seq.children = seq.children[:n]
	}
}
