package main

import (
	"errors"
	"testing"

	"github.com/go-drift/native/pkg/app"
	"github.com/go-drift/native/pkg/config"
	"github.com/go-drift/native/pkg/headless"
)

func newCounterApp(t *testing.T) (*app.App[counter], *headless.Backend) {
	t.Helper()
	cfg, err := config.Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	b := headless.New()
	a := app.New(b.Platform(), &counter{}, counterView(cfg), app.WithConfig(cfg))
	a.Pump()
	return a, b
}

func TestFinishClosesApp(t *testing.T) {
	a, b := newCounterApp(t)
	if err := finish(a, nil); err != nil {
		t.Fatalf("finish() error = %v", err)
	}
	if got := b.Live(); got != 0 {
		t.Errorf("live widgets after finish = %d, want 0", got)
	}
}

func TestFinishWrapsTerminalError(t *testing.T) {
	a, b := newCounterApp(t)
	cause := errors.New("no tty")
	err := finish(a, cause)
	if !errors.Is(err, cause) {
		t.Fatalf("finish() error = %v, want it to wrap %v", err, cause)
	}
	if got := b.Live(); got != 0 {
		t.Errorf("live widgets after finish = %d, want 0", got)
	}
}

func TestMeter(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "[..........]"},
		{4.6, "[#####.....]"},
		{12, "[##########]"},
	}
	for _, tt := range tests {
		if got := meter(tt.value); got != tt.want {
			t.Errorf("meter(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
