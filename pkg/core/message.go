package core

import (
	"context"
	"time"
)

// ViewID identifies an element for message delivery. IDs are allocated at
// build time and stay valid until teardown. Zero is never allocated and
// addresses no element.
type ViewID uint64

// IDAllocator hands out view ids. It belongs to one application instance
// and is only used from its UI goroutine.
type IDAllocator struct {
	last ViewID
}

// Next returns a fresh id.
func (a *IDAllocator) Next() ViewID {
	a.last++
	return a.last
}

// Message is a dynamically typed payload with an optional target. A
// targeted message is consumed by the one element whose id matches. A
// broadcast message is offered to every element.
type Message struct {
	target  ViewID
	payload any
	taken   bool
}

// NewMessage creates a message for target. A zero target makes it a
// broadcast.
func NewMessage(payload any, target ViewID) *Message {
	return &Message{target: target, payload: payload}
}

// Broadcast creates an untargeted message.
func Broadcast(payload any) *Message {
	return &Message{payload: payload}
}

// Target returns the addressed view, or zero for broadcasts.
func (m *Message) Target() ViewID {
	return m.target
}

// IsBroadcast reports whether the message has no target.
func (m *Message) IsBroadcast() bool {
	return m.target == 0
}

// Taken reports whether the payload has been consumed.
func (m *Message) Taken() bool {
	return m.taken
}

// Payload returns the payload, or nil once it has been taken.
func (m *Message) Payload() any {
	return m.payload
}

func (m *Message) take() {
	m.payload = nil
	m.taken = true
}

// TakeTargeted consumes the payload if the message targets id and the
// payload has type P.
func TakeTargeted[P any](m *Message, id ViewID) (P, bool) {
	var zero P
	if m.taken || id == 0 || m.target != id {
		return zero, false
	}
	p, ok := m.payload.(P)
	if !ok {
		return zero, false
	}
	m.take()
	return p, true
}

// Get inspects a broadcast payload of type P without consuming it.
func Get[P any](m *Message) (P, bool) {
	var zero P
	if m.taken || m.target != 0 {
		return zero, false
	}
	p, ok := m.payload.(P)
	return p, ok
}

// Take consumes a broadcast payload of type P.
func Take[P any](m *Message) (P, bool) {
	p, ok := Get[P](m)
	if ok {
		m.take()
	}
	return p, ok
}

// LifecycleKind tells which lifecycle signal is broadcast.
type LifecycleKind int

const (
	// LifecycleLayout means fresh geometry is available in the layout tree.
	LifecycleLayout LifecycleKind = iota
	// LifecycleAnimate means an animation frame elapsed.
	LifecycleAnimate
)

func (k LifecycleKind) String() string {
	switch k {
	case LifecycleLayout:
		return "layout"
	case LifecycleAnimate:
		return "animate"
	default:
		return "unknown"
	}
}

// Lifecycle is a broadcast signal from a window to its contents. Delta is
// set for animation frames.
type Lifecycle struct {
	Kind  LifecycleKind
	Delta time.Duration
}

// WindowRelayout asks the window addressed by the message to recompute
// its layout.
type WindowRelayout struct{}

// Proxy is the handle background code and native callbacks use to reach
// the UI goroutine. Implementations are safe for concurrent use and never
// block.
type Proxy interface {
	// Message queues msg for delivery to the element tree.
	Message(msg *Message)
	// RequestRebuild asks for a render pass.
	RequestRebuild()
	// Spawn runs task in the background. The task's context is cancelled
	// when the application stops.
	Spawn(task func(ctx context.Context))
}
