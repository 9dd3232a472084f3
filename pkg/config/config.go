// Package config loads the optional native.yaml file of an application.
//
//	version: 1.0.0
//	window:
//	  title: Counter
//	  sizing: content
//	  width: 320
//	  height: 200
//	animation:
//	  fps: 60
//	log:
//	  verbose: true
//
// Every field is optional. Resolve fills in defaults, deriving the window
// title from the module path in go.mod when none is given.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/native/pkg/animation"
	"github.com/go-drift/native/pkg/views"
)

// FileName is the name of the configuration file.
const FileName = "native.yaml"

// SupportedMajor is the configuration format major version this package
// reads.
const SupportedMajor = "v1"

// Config represents the optional native.yaml configuration.
type Config struct {
	Version   string          `yaml:"version,omitempty"`
	Window    WindowConfig    `yaml:"window"`
	Animation AnimationConfig `yaml:"animation"`
	Log       LogConfig       `yaml:"log"`
}

// WindowConfig contains the settings of the main window.
type WindowConfig struct {
	Title  string  `yaml:"title,omitempty"`
	Sizing string  `yaml:"sizing,omitempty"`
	Width  float32 `yaml:"width,omitempty"`
	Height float32 `yaml:"height,omitempty"`
}

// AnimationConfig contains frame pacing settings.
type AnimationConfig struct {
	FPS int `yaml:"fps,omitempty"`
}

// LogConfig contains diagnostics settings.
type LogConfig struct {
	Verbose bool `yaml:"verbose,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root    string
	Version string
	Title   string
	Sizing  views.WindowSizing
	Width   float32
	Height  float32
	FPS     int
	Verbose bool
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return Parse(data)
}

// Parse decodes and validates a configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOptional reads native.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	if v := strings.TrimSpace(c.Version); v != "" {
		canonical := canonicalVersion(v)
		if !semver.IsValid(canonical) {
			return fmt.Errorf("version %q is not a semantic version", v)
		}
		if major := semver.Major(canonical); major != SupportedMajor {
			return fmt.Errorf("version %q is not supported (want %s.x.y)", v, SupportedMajor)
		}
	}
	if _, err := parseSizing(c.Window.Sizing); err != nil {
		return err
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size must not be negative (got %vx%v)", c.Window.Width, c.Window.Height)
	}
	if c.Animation.FPS < 0 {
		return fmt.Errorf("animation.fps must not be negative (got %d)", c.Animation.FPS)
	}
	return nil
}

// Resolve loads native.yaml from dir (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(cfg.Window.Title)
	if title == "" {
		title = defaultTitle(dir)
	}
	sizing, _ := parseSizing(cfg.Window.Sizing)

	fps := cfg.Animation.FPS
	if fps == 0 {
		fps = animation.DefaultFPS
	}

	version := strings.TrimSpace(cfg.Version)
	if version != "" {
		version = semver.Canonical(canonicalVersion(version))
	}

	return &Resolved{
		Root:    dir,
		Version: version,
		Title:   title,
		Sizing:  sizing,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		FPS:     fps,
		Verbose: cfg.Log.Verbose,
	}, nil
}

func canonicalVersion(v string) string {
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}

func parseSizing(s string) (views.WindowSizing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "user":
		return views.UserControlled, nil
	case "content":
		return views.ContentFit, nil
	default:
		return 0, fmt.Errorf("window.sizing must be %q or %q (got %q)", "user", "content", s)
	}
}

// defaultTitle names the window after the module in dir, falling back to
// the directory name.
func defaultTitle(dir string) string {
	title := filepath.Base(dir)
	if data, err := os.ReadFile(filepath.Join(dir, "go.mod")); err == nil {
		if path := modfile.ModulePath(data); path != "" {
			prefix, _, ok := module.SplitPathVersion(path)
			if ok {
				parts := strings.Split(prefix, "/")
				title = parts[len(parts)-1]
			}
		}
	}
	if title == "" || title == "." || title == string(filepath.Separator) {
		return "native"
	}
	return title
}
