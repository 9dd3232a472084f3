// Package app drives a view tree: it builds the root effect, delivers
// queued messages, applies the resulting actions and rebuilds the tree.
//
//	a := app.New(backend.Platform(), &Data{}, func(data *Data) core.Effect[Data] {
//	    return views.Window[Data]{Title: "Counter", Contents: counter(data)}
//	})
//	err := a.Run(ctx)
//
// All tree work happens on the goroutine that calls Start, Pump and Run.
// The proxy handed to views may be used from any goroutine.
package app

import (
	"context"
	"reflect"

	"golang.org/x/sync/errgroup"

	"github.com/go-drift/native/pkg/config"
	"github.com/go-drift/native/pkg/core"
	"github.com/go-drift/native/pkg/errors"
	"github.com/go-drift/native/pkg/layout"
	"github.com/go-drift/native/pkg/platform"
)

// Option configures an App.
type Option func(*options)

type options struct {
	layout  layout.Service
	verbose bool
}

// WithLayout replaces the default layout tree.
func WithLayout(svc layout.Service) Option {
	return func(o *options) { o.layout = svc }
}

// WithConfig applies a resolved configuration.
func WithConfig(cfg *config.Resolved) Option {
	return func(o *options) { o.verbose = cfg.Verbose }
}

// WithVerbose enables diagnostic logging.
func WithVerbose(v bool) Option {
	return func(o *options) { o.verbose = v }
}

// App owns the application data, the element tree and the message queue.
type App[T any] struct {
	data     *T
	root     func(data *T) core.Effect[T]
	platform *platform.Platform
	cx       *core.Context
	queue    *queue[event]

	tasks  *errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc

	view    core.Effect[T]
	state   core.State
	started bool
	quit    bool
	closed  bool
}

// New creates an app for data. root is called on every rebuild and must
// return effects of the same type each time.
func New[T any](p *platform.Platform, data *T, root func(data *T) core.Effect[T], opts ...Option) *App[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.layout == nil {
		o.layout = layout.NewTree()
	}
	if o.verbose {
		errors.SetVerbose(true)
	}

	ctx, cancel := context.WithCancel(context.Background())
	tasks, ctx := errgroup.WithContext(ctx)
	a := &App[T]{
		data:     data,
		root:     root,
		platform: p,
		queue:    newQueue[event](),
		tasks:    tasks,
		ctx:      ctx,
		cancel:   cancel,
	}
	a.cx = core.NewContext(p, o.layout, proxy[T]{app: a})
	return a
}

// Data returns the application data. It must only be changed on the UI
// goroutine.
func (a *App[T]) Data() *T {
	return a.data
}

// Proxy returns the handle background code uses to reach the app.
func (a *App[T]) Proxy() core.Proxy {
	return proxy[T]{app: a}
}

// Wake is signalled whenever an event is queued. Event loops that own the
// UI goroutine call Pump after receiving from it.
func (a *App[T]) Wake() <-chan struct{} {
	return a.queue.wake
}

// Quitting reports whether a Quit action has been applied.
func (a *App[T]) Quitting() bool {
	return a.quit
}

// Start builds the element tree. It is called by Run; event loops that
// call Pump themselves call it once first.
func (a *App[T]) Start() {
	if a.started {
		return
	}
	a.started = true
	errors.Logf("app: start")
	a.view = a.root(a.data)
	a.state = a.view.BuildEffect(a.cx, a.data)
}

// Pump processes everything queued so far, including the messages queued
// while processing, and returns when the queue is empty or the app is
// quitting. All messages of a batch are delivered before at most one
// rebuild. Messages sent by a batch's actions form the next batch and see
// the rebuilt tree.
func (a *App[T]) Pump() {
	a.Start()
	for !a.quit {
		events := a.queue.drain()
		if len(events) == 0 {
			return
		}
		var action core.Action
		for _, ev := range events {
			if ev.rebuild {
				action = action.Merge(core.Rebuild())
				continue
			}
			action = action.Merge(a.deliver(ev.msg))
		}
		a.apply(action)
	}
}

func (a *App[T]) deliver(msg *core.Message) core.Action {
	action := a.view.MessageEffect(a.state, a.cx, a.data, msg)
	if !msg.IsBroadcast() && !msg.Taken() {
		errors.Logf("app: dropped message %T for view %d", msg.Payload(), msg.Target())
	}
	return action
}

func (a *App[T]) apply(action core.Action) {
	for _, msg := range action.Messages() {
		a.queue.push(event{msg: msg})
	}
	for _, task := range action.Tasks() {
		a.spawn(task)
	}
	if action.WantsQuit() {
		errors.Logf("app: quit")
		a.quit = true
		a.platform.Quit()
		return
	}
	if action.WantsRebuild() {
		a.rebuild()
	}
}

func (a *App[T]) rebuild() {
	next := a.root(a.data)
	if reflect.TypeOf(next) != reflect.TypeOf(a.view) {
		errors.Invariant("app.Rebuild", "root changed from %T to %T", a.view, next)
	}
	next.RebuildEffect(a.state, a.cx, a.data)
	a.view = next
}

func (a *App[T]) spawn(task func(ctx context.Context)) {
	a.tasks.Go(func() error {
		defer errors.Recover("app.Spawn")
		task(a.ctx)
		return nil
	})
}

// Run starts the app and processes events until a Quit action or until ctx
// is cancelled, then closes the app.
func (a *App[T]) Run(ctx context.Context) error {
	a.Start()
	for {
		a.Pump()
		if a.quit {
			return a.Close()
		}
		select {
		case <-a.queue.wake:
		case <-ctx.Done():
			if err := a.Close(); err != nil {
				return err
			}
			return ctx.Err()
		}
	}
}

// Close tears the element tree down, cancels spawned tasks and waits for
// them to return.
func (a *App[T]) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	if a.started {
		a.view.TeardownEffect(a.state, a.cx)
	}
	a.cancel()
	err := a.tasks.Wait()
	errors.Logf("app: closed")
	return err
}

type proxy[T any] struct {
	app *App[T]
}

func (p proxy[T]) Message(msg *core.Message) {
	p.app.queue.push(event{msg: msg})
}

func (p proxy[T]) RequestRebuild() {
	p.app.queue.push(event{rebuild: true})
}

func (p proxy[T]) Spawn(task func(ctx context.Context)) {
	p.app.spawn(task)
}
