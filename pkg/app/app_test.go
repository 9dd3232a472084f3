package app_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-drift/native/pkg/app"
	"github.com/go-drift/native/pkg/config"
	"github.com/go-drift/native/pkg/core"
	"github.com/go-drift/native/pkg/errors"
	"github.com/go-drift/native/pkg/headless"
	"github.com/go-drift/native/pkg/views"
)

type model struct {
	Total  int
	Builds int
}

type add struct{ N int }

type stop struct{}

type chain struct{ N int }

func newApp(b *headless.Backend, data *model, opts ...app.Option) *app.App[model] {
	return app.New(b.Platform(), data, func(data *model) core.Effect[model] {
		data.Builds++
		return core.Effects[model](
			views.Window[model]{Contents: views.Text[model]{Content: fmt.Sprint(data.Total)}},
			core.Receive(func(data *model, a add) core.Action {
				data.Total += a.N
				return core.Rebuild()
			}),
			core.Receive(func(data *model, c chain) core.Action {
				if c.N == 0 {
					return core.Action{}
				}
				return core.Send(core.Broadcast(add{N: 1})).Merge(core.Send(core.Broadcast(chain{N: c.N - 1})))
			}),
			core.Receive(func(*model, stop) core.Action {
				return core.Quit()
			}),
		)
	}, opts...)
}

func label(t *testing.T, b *headless.Backend) string {
	t.Helper()
	windows := b.Windows()
	if len(windows) != 1 {
		t.Fatalf("open windows = %d, want 1", len(windows))
	}
	return windows[0].Child().(*headless.Text).Content()
}

func TestBatchRebuildsOnce(t *testing.T) {
	b := headless.New()
	data := &model{}
	a := newApp(b, data)
	a.Pump()
	if data.Builds != 1 {
		t.Fatalf("Builds = %d after start, want 1", data.Builds)
	}

	p := a.Proxy()
	p.Message(core.Broadcast(add{N: 1}))
	p.RequestRebuild()
	p.Message(core.Broadcast(add{N: 2}))
	p.RequestRebuild()
	a.Pump()

	if data.Builds != 2 {
		t.Errorf("Builds = %d, want 2", data.Builds)
	}
	if got := label(t, b); got != "3" {
		t.Errorf("label = %q, want 3", got)
	}
}

func TestFollowUpMessages(t *testing.T) {
	b := headless.New()
	data := &model{}
	a := newApp(b, data)
	a.Pump()

	a.Proxy().Message(core.Broadcast(chain{N: 3}))
	a.Pump()
	if data.Total != 3 {
		t.Errorf("Total = %d, want 3", data.Total)
	}
	if got := label(t, b); got != "3" {
		t.Errorf("label = %q, want 3", got)
	}
	// Each follow-up batch that carries an add rebuilds once.
	if data.Builds != 4 {
		t.Errorf("Builds = %d, want 4", data.Builds)
	}
}

func TestSpawnedTaskReportsBack(t *testing.T) {
	b := headless.New()
	data := &model{}
	a := newApp(b, data)
	a.Pump()

	proxy := a.Proxy()
	proxy.Spawn(func(ctx context.Context) {
		proxy.Message(core.Broadcast(add{N: 5}))
	})

	deadline := time.After(5 * time.Second)
	for data.Total == 0 {
		select {
		case <-a.Wake():
			a.Pump()
		case <-deadline:
			t.Fatal("task result never arrived")
		}
	}
	if got := label(t, b); got != "5" {
		t.Errorf("label = %q, want 5", got)
	}
	if err := a.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestRunUntilQuit(t *testing.T) {
	b := headless.New()
	a := newApp(b, &model{})

	go a.Proxy().Message(core.Broadcast(stop{}))
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !b.QuitRequested() {
		t.Error("backend was not asked to quit")
	}
	if got := b.Live(); got != 0 {
		t.Errorf("Live() = %d after Run, want 0", got)
	}
}

func TestRunCancelled(t *testing.T) {
	b := headless.New()
	a := newApp(b, &model{})

	var stopped bool
	a.Proxy().Spawn(func(ctx context.Context) {
		<-ctx.Done()
		stopped = true
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	if err := a.Run(ctx); err != context.Canceled {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if !stopped {
		t.Error("spawned task still running after Run returned")
	}
	if got := b.Live(); got != 0 {
		t.Errorf("Live() = %d after Run, want 0", got)
	}
	if err := a.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

type panicRecorder struct {
	mu     sync.Mutex
	panics []*errors.PanicError
}

func (r *panicRecorder) HandleError(*errors.NativeError) {}

func (r *panicRecorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

func TestSpawnedPanicIsReported(t *testing.T) {
	rec := &panicRecorder{}
	errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(nil) })

	b := headless.New()
	a := newApp(b, &model{})
	a.Pump()
	a.Proxy().Spawn(func(context.Context) { panic("boom") })
	if err := a.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.panics) != 1 || rec.panics[0].Op != "app.Spawn" || rec.panics[0].Value != "boom" {
		t.Errorf("panics = %v, want one app.Spawn panic", rec.panics)
	}
}

func TestWithConfig(t *testing.T) {
	b := headless.New()
	cfg := &config.Resolved{Title: "Counter", FPS: 60}
	a := newApp(b, &model{}, app.WithConfig(cfg), app.WithVerbose(false))
	a.Pump()
	if a.Quitting() {
		t.Error("Quitting() = true before any quit")
	}
	if err := a.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
