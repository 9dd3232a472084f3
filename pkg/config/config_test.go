package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/native/pkg/config"
	"github.com/go-drift/native/pkg/views"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/apps/counter/v2\n\ngo 1.24\n")

	got, err := config.Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := &config.Resolved{
		Root:   dir,
		Title:  "counter",
		Sizing: views.UserControlled,
		FPS:    60,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.FileName, `
version: 1.2.0
window:
  title: Counter
  sizing: content
  width: 320
  height: 200
animation:
  fps: 30
log:
  verbose: true
`)

	got, err := config.Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := &config.Resolved{
		Root:    dir,
		Version: "v1.2.0",
		Title:   "Counter",
		Sizing:  views.ContentFit,
		Width:   320,
		Height:  200,
		FPS:     30,
		Verbose: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad version", "version: banana\n", "not a semantic version"},
		{"unsupported major", "version: 2.0.0\n", "not supported"},
		{"bad sizing", "window:\n  sizing: huge\n", "window.sizing"},
		{"negative size", "window:\n  width: -1\n", "must not be negative"},
		{"negative fps", "animation:\n  fps: -5\n", "animation.fps"},
		{"bad yaml", "window: [\n", "failed to parse"},
	}
	for _, tt := range tests {
		_, err := config.Parse([]byte(tt.yaml))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: Parse() error = %v, want containing %q", tt.name, err, tt.want)
		}
	}
}

func TestLoadOptionalMissing(t *testing.T) {
	cfg, err := config.LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	if diff := cmp.Diff(&config.Config{}, cfg); diff != "" {
		t.Errorf("LoadOptional() mismatch (-want +got):\n%s", diff)
	}
}
