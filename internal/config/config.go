// Package config reads the gcfg (git-config style) settings file.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/philipparndt/gointersect/pkg/geometry"
)

// Backends lists the accepted values of Window.Backend
var Backends = []string{"raylib", "ebiten", "fyne"}

// Example is a complete settings file with every value at its default
var Example = Format(Default())

// WindowConfig is the [Window] section
type WindowConfig struct {
	Width   int
	Height  int
	FPS     int
	Backend string
	Title   string
}

// SolverConfig is the [Solver] section
type SolverConfig struct {
	Tolerance float64
}

// RenderConfig is the [Render] section
type RenderConfig struct {
	CircleSegments int
	PointSize      float64
	LineWidth      float64
	Axes           bool
}

// LogConfig is the [Log] section
type LogConfig struct {
	Level string
}

// Config holds all settings. Section and variable names are case-insensitive
// in the file.
type Config struct {
	Window WindowConfig
	Solver SolverConfig
	Render RenderConfig
	Log    LogConfig
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:   900,
			Height:  900,
			FPS:     60,
			Backend: "raylib",
			Title:   "GoIntersect",
		},
		Solver: SolverConfig{Tolerance: geometry.DefaultTolerance},
		Render: RenderConfig{
			CircleSegments: geometry.DefaultCircleSegments,
			PointSize:      10,
			LineWidth:      2,
			Axes:           true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path on top of the defaults. Values missing from the file keep
// their default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if err := gcfg.ReadFileInto(&cfg, path); err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads settings from a string on top of the defaults
func Parse(text string) (Config, error) {
	cfg := Default()
	if err := gcfg.ReadStringInto(&cfg, text); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every value is usable
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("window fps must be positive, got %d", c.Window.FPS)
	}

	c.Window.Backend = strings.ToLower(strings.TrimSpace(c.Window.Backend))
	if !validBackend(c.Window.Backend) {
		return fmt.Errorf("unknown backend %q, expected one of %s", c.Window.Backend, strings.Join(Backends, ", "))
	}

	if !(c.Solver.Tolerance > 0) {
		return fmt.Errorf("solver tolerance must be positive, got %g", c.Solver.Tolerance)
	}
	if c.Render.CircleSegments < 3 {
		return fmt.Errorf("circle needs at least 3 segments, got %d", c.Render.CircleSegments)
	}
	if c.Render.PointSize <= 0 || c.Render.LineWidth <= 0 {
		return fmt.Errorf("point size and line width must be positive")
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level into a slog level
func (c *Config) LogLevel() (slog.Level, error) {
	return ParseLevel(c.Log.Level)
}

// ParseLevel accepts debug, info, warn or error in any case
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// Format renders the settings in the format Load reads
func Format(c Config) string {
	var b strings.Builder
	b.WriteString("; GoIntersect settings\n")
	fmt.Fprintf(&b, "[window]\nwidth = %d\nheight = %d\nfps = %d\nbackend = %s\ntitle = %s\n\n",
		c.Window.Width, c.Window.Height, c.Window.FPS, c.Window.Backend, c.Window.Title)
	fmt.Fprintf(&b, "[solver]\ntolerance = %g\n\n", c.Solver.Tolerance)
	fmt.Fprintf(&b, "[render]\ncirclesegments = %d\npointsize = %g\nlinewidth = %g\naxes = %t\n\n",
		c.Render.CircleSegments, c.Render.PointSize, c.Render.LineWidth, c.Render.Axes)
	fmt.Fprintf(&b, "[log]\nlevel = %s\n", c.Log.Level)
	return b.String()
}

func validBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}
