package vscroll

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Layout kinds accepted in [layout].kind.
const (
	LayoutFixed    = "fixed"
	LayoutGrid     = "grid"
	LayoutAuto     = "auto"
	LayoutLazy     = "lazy"
	LayoutSized    = "sized"
	LayoutCarousel = "carousel"
)

type Config struct {
	Scroller ScrollerConfig `toml:"scroller"`
	Layout   LayoutConfig   `toml:"layout"`
	Log      LogConfig      `toml:"log"`
}

type ScrollerConfig struct {
	Axis              string  `toml:"axis"`
	Inertia           bool    `toml:"inertia"`
	Deceleration      float64 `toml:"deceleration"`
	MaxVelocity       float64 `toml:"max_velocity"`
	DragSensitivity   float64 `toml:"drag_sensitivity"`
	VelocityThreshold float64 `toml:"velocity_threshold"`
	ElasticDuration   float64 `toml:"elastic_duration"`
	WheelStep         float64 `toml:"wheel_step"`
}

type LayoutConfig struct {
	Kind            string  `toml:"kind"`
	CellSize        float64 `toml:"cell_size"`
	CellBreadth     float64 `toml:"cell_breadth"`
	Space           float64 `toml:"space"`
	Columns         int     `toml:"columns"`
	PaddingStart    float64 `toml:"padding_start"`
	PaddingEnd      float64 `toml:"padding_end"`
	DefaultCellSize float64 `toml:"default_cell_size"`
	Loop            bool    `toml:"loop"`
}

type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func DefaultConfig() *Config {
	return &Config{
		Scroller: ScrollerConfig{
			Axis:              "vertical",
			Inertia:           true,
			Deceleration:      defaultDeceleration,
			MaxVelocity:       defaultMaxVelocity,
			DragSensitivity:   1,
			VelocityThreshold: defaultVelocityThreshold,
			ElasticDuration:   defaultElasticDuration,
			WheelStep:         defaultWheelStep,
		},
		Layout: LayoutConfig{
			Kind:            LayoutFixed,
			CellSize:        100,
			CellBreadth:     100,
			Columns:         3,
			DefaultCellSize: 100,
			Loop:            true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigPath returns the default configuration file location.
func ConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "vscroll", "config.toml"), nil
}

// DecodeConfig parses TOML on top of the defaults and validates the result.
func DecodeConfig(data []byte) (*Config, error) {
	return decodeConfig(DefaultConfig(), data)
}

func decodeConfig(cfg *Config, data []byte) (*Config, error) {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads the file at path. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	return LoadConfigFrom(path, DefaultConfig())
}

// LoadConfigFrom reads the file at path on top of base, which hosts with
// other units than pixels use to supply their own defaults. A missing file
// yields base.
func LoadConfigFrom(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return decodeConfig(base, data)
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// Validate reports the first invalid value as a *ConfigError.
func (c *Config) Validate() error {
	if _, err := parseAxis(c.Scroller.Axis); err != nil {
		return err
	}
	positive := []struct {
		field string
		value float64
	}{
		{"scroller.max_velocity", c.Scroller.MaxVelocity},
		{"scroller.elastic_duration", c.Scroller.ElasticDuration},
		{"layout.cell_size", c.Layout.CellSize},
		{"layout.default_cell_size", c.Layout.DefaultCellSize},
	}
	for _, p := range positive {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return &ConfigError{Field: p.field, Reason: fmt.Sprintf("must be a positive number, got %v", p.value)}
		}
	}
	if s := c.Scroller.DragSensitivity; s < 0.1 || s > 1 {
		return &ConfigError{Field: "scroller.drag_sensitivity", Reason: fmt.Sprintf("must be within [0.1, 1], got %v", s)}
	}
	if c.Scroller.VelocityThreshold < 0 {
		return &ConfigError{Field: "scroller.velocity_threshold", Reason: "must not be negative"}
	}
	if c.Layout.Space < 0 {
		return &ConfigError{Field: "layout.space", Reason: "must not be negative"}
	}
	if c.Layout.PaddingStart < 0 || c.Layout.PaddingEnd < 0 {
		return &ConfigError{Field: "layout.padding", Reason: "must not be negative"}
	}
	switch c.Layout.Kind {
	case LayoutFixed, LayoutAuto, LayoutLazy, LayoutSized, LayoutCarousel:
	case LayoutGrid:
		if c.Layout.Columns < 1 {
			return &ConfigError{Field: "layout.columns", Reason: "must be at least 1"}
		}
		if !(c.Layout.CellBreadth > 0) {
			return &ConfigError{Field: "layout.cell_breadth", Reason: "must be positive"}
		}
	default:
		return &ConfigError{Field: "layout.kind", Reason: fmt.Sprintf("%q", c.Layout.Kind), Err: ErrUnknownLayout}
	}
	return nil
}

func parseAxis(raw string) (Axis, error) {
	switch strings.ToLower(raw) {
	case "vertical", "v", "":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	}
	return Vertical, &ConfigError{Field: "scroller.axis", Reason: fmt.Sprintf("want horizontal or vertical, got %q", raw)}
}

// NewScroller builds a scroller from the [scroller] section.
func (c *Config) NewScroller() *Scroller {
	axis, _ := parseAxis(c.Scroller.Axis)
	return NewScroller().
		SetAxis(axis).
		SetInertia(c.Scroller.Inertia).
		SetDeceleration(c.Scroller.Deceleration).
		SetMaxVelocity(c.Scroller.MaxVelocity).
		SetDragSensitivity(c.Scroller.DragSensitivity).
		SetVelocityThreshold(c.Scroller.VelocityThreshold).
		SetElasticDuration(c.Scroller.ElasticDuration)
}

// NewLayout builds the layout named by [layout].kind.
func (c *Config) NewLayout() (Layout, error) {
	l := c.Layout
	padding := Padding{Start: l.PaddingStart, End: l.PaddingEnd}
	switch l.Kind {
	case LayoutFixed:
		return NewFixedList(l.CellSize, l.Space).SetPadding(padding), nil
	case LayoutGrid:
		return NewFixedGrid(l.CellSize, l.CellBreadth, l.Columns).SetSpace(l.Space, l.Space).SetPadding(padding), nil
	case LayoutAuto:
		return NewAutoList(l.DefaultCellSize, l.Space).SetPadding(padding), nil
	case LayoutLazy:
		return NewLazyList(l.DefaultCellSize, l.Space).SetPadding(padding), nil
	case LayoutSized:
		return NewSizedList(l.Space).SetPadding(padding), nil
	case LayoutCarousel:
		return NewCarousel(l.CellSize, l.Space).SetLoop(l.Loop), nil
	}
	return nil, fmt.Errorf("new layout %q: %w", l.Kind, ErrUnknownLayout)
}

// NewView builds a view with the configured scroller, layout and wheel step.
func (c *Config) NewView() (*View, error) {
	layout, err := c.NewLayout()
	if err != nil {
		return nil, err
	}
	return NewView(layout).
		SetScroller(c.NewScroller()).
		SetWheelStep(c.Scroller.WheelStep), nil
}
