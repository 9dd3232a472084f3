// Package core provides the view and element framework interfaces and
// the reconciliation lifecycle.
//
// Application state produces a fresh tree of views on every render pass.
// Views are cheap value types describing what the UI should look like; the
// framework diffs them against the retained element tree and mutates the
// native widgets and layout nodes in place.
//
// # Core Types
//
// View is an ephemeral description of one tree node for application data of
// type T. It builds an element (a Pod pairing a layout node and a native
// widget) plus opaque per-view State, rebuilds that element in place when
// the view recurs at the same position, reacts to messages and finally
// tears the element down.
//
// Effect is a view that owns no widget in its parent, such as a window or
// a message receiver.
//
// # Children
//
// Containers keep their children in three index-synchronized lists: the
// native widget's children, the layout node's children and the element
// list. GroupChildren and the Elements cursor keep them paired; the Seq
// functions reconcile a list of child views against them positionally:
//
//	state.seq = core.SeqBuild(children, state.group.Elements(), cx, data)
//	core.SeqRebuild(children, state.seq, state.group.Elements(), cx, data)
//
// Positions are matched by index, not identity. Removing a row from the
// middle of a list rebuilds every following element against the next
// view. Wrap children with Key and use SeqRebuildKeyed to match by key.
//
// # Heterogeneous Children
//
// A position must keep the same concrete view type across rebuilds; a type
// change is a programming error and panics. Any erases the type so a
// position can alternate between views, replacing the element in place on
// each change:
//
//	if data.Editing {
//	    return core.Any[Data](views.TextInput[Data]{...})
//	}
//	return core.Any[Data](views.Text[Data]{...})
//
// # Messages
//
// Native callbacks never touch widgets. They capture the Proxy and the
// element's ViewID and post a targeted Message; the driver delivers every
// message to the root, and containers forward it until it is taken:
//
//	if press, ok := core.TakeTargeted[pressMsg](msg, state.id); ok {
//	    ...
//	}
//
// Message handlers return an Action requesting a rebuild, follow-up
// messages, background tasks or quitting. Actions merge with or-semantics
// on the way up.
package core
