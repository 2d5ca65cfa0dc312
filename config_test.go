package vscroll

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeConfig(t *testing.T) {
	data := []byte(`
[scroller]
axis = "horizontal"
inertia = false
velocity_threshold = 25.0
wheel_step = 40.0

[layout]
kind = "grid"
cell_size = 30.0
cell_breadth = 20.0
columns = 4
`)

	cfg, err := DecodeConfig(data)
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	if cfg.Scroller.Deceleration != defaultDeceleration {
		t.Errorf("unset deceleration = %v, want default %v", cfg.Scroller.Deceleration, defaultDeceleration)
	}

	v, err := cfg.NewView()
	if err != nil {
		t.Fatalf("NewView() error = %v", err)
	}
	s := v.Scroller()
	if s.Axis() != Horizontal || s.Inertia() || s.VelocityThreshold() != 25 {
		t.Errorf("scroller = %v inertia=%v threshold=%v", s.Axis(), s.Inertia(), s.VelocityThreshold())
	}
	if v.WheelStep() != 40 {
		t.Errorf("WheelStep() = %v, want 40", v.WheelStep())
	}
	g, ok := v.Layout().(*FixedGrid)
	if !ok {
		t.Fatalf("layout = %T, want *FixedGrid", v.Layout())
	}
	if g.Columns() != 4 {
		t.Errorf("Columns() = %d, want 4", g.Columns())
	}
}

func TestConfig_Validate(t *testing.T) {
	type tc struct {
		edit    func(c *Config)
		field   string
		unknown bool
	}

	tests := map[string]tc{
		"bad axis": {
			edit:  func(c *Config) { c.Scroller.Axis = "diagonal" },
			field: "scroller.axis",
		},
		"zero elastic duration": {
			edit:  func(c *Config) { c.Scroller.ElasticDuration = 0 },
			field: "scroller.elastic_duration",
		},
		"drag sensitivity too high": {
			edit:  func(c *Config) { c.Scroller.DragSensitivity = 2 },
			field: "scroller.drag_sensitivity",
		},
		"negative space": {
			edit:  func(c *Config) { c.Layout.Space = -1 },
			field: "layout.space",
		},
		"grid without columns": {
			edit: func(c *Config) {
				c.Layout.Kind = LayoutGrid
				c.Layout.Columns = 0
			},
			field: "layout.columns",
		},
		"unknown kind": {
			edit:    func(c *Config) { c.Layout.Kind = "spiral" },
			field:   "layout.kind",
			unknown: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(cfg)

			err := cfg.Validate()
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.field)
			}
			if got := errors.Is(err, ErrUnknownLayout); got != tt.unknown {
				t.Errorf("errors.Is(err, ErrUnknownLayout) = %v, want %v", got, tt.unknown)
			}
		})
	}
}

func TestDecodeConfig_Errors(t *testing.T) {
	if _, err := DecodeConfig([]byte("[scroller\n")); err == nil || IsConfigError(err) {
		t.Errorf("malformed TOML: err = %v, want a decode error", err)
	}
	if _, err := DecodeConfig([]byte("[layout]\nkind = \"spiral\"\n")); !IsConfigError(err) {
		t.Errorf("unknown kind: err = %v, want a ConfigError", err)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfigFrom_KeepsBaseForUnsetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[layout]\nkind = \"auto\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	base := DefaultConfig()
	base.Layout.CellSize = 3
	base.Scroller.WheelStep = 3
	cfg, err := LoadConfigFrom(path, base)
	if err != nil {
		t.Fatalf("LoadConfigFrom() error = %v", err)
	}
	if cfg.Layout.Kind != LayoutAuto || cfg.Layout.CellSize != 3 || cfg.Scroller.WheelStep != 3 {
		t.Errorf("LoadConfigFrom() = %+v", cfg)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Layout.Kind = LayoutCarousel
	cfg.Layout.Loop = false
	cfg.Log.Level = "debug"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestConfig_NewLayoutKinds(t *testing.T) {
	tests := map[string]struct {
		kind string
		want Layout
	}{
		"fixed":    {kind: LayoutFixed, want: &FixedList{}},
		"grid":     {kind: LayoutGrid, want: &FixedGrid{}},
		"auto":     {kind: LayoutAuto, want: &AutoList{}},
		"lazy":     {kind: LayoutLazy, want: &LazyList{}},
		"sized":    {kind: LayoutSized, want: &SizedList{}},
		"carousel": {kind: LayoutCarousel, want: &Carousel{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Layout.Kind = tt.kind
			l, err := cfg.NewLayout()
			if err != nil {
				t.Fatalf("NewLayout() error = %v", err)
			}
			if got, want := typeName(l), typeName(tt.want); got != want {
				t.Errorf("NewLayout() = %s, want %s", got, want)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Layout.Kind = "spiral"
	if _, err := cfg.NewLayout(); !errors.Is(err, ErrUnknownLayout) {
		t.Errorf("NewLayout() error = %v, want ErrUnknownLayout", err)
	}
}

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}
	if want := filepath.Join(dir, "vscroll", "config.toml"); path != want {
		t.Errorf("ConfigPath() = %q, want %q", path, want)
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "vscroll.log")
	SetLogLevel("debug")
	defer SetLogLevel("info")

	l, closer := NewLogger(path, nil)
	l.Debug("hello", "n", 1)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(data) == 0 {
		t.Errorf("debug record not written at debug level")
	}
}

func TestSetLogLevel(t *testing.T) {
	defer SetLogLevel("info")
	tests := map[string]string{
		"debug":   "DEBUG",
		"WARNING": "WARN",
		"error":   "ERROR",
		"bogus":   "INFO",
	}
	for raw, want := range tests {
		SetLogLevel(raw)
		if got := LogLevel().String(); got != want {
			t.Errorf("SetLogLevel(%q) gave %s, want %s", raw, got, want)
		}
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *FixedList:
		return "FixedList"
	case *FixedGrid:
		return "FixedGrid"
	case *AutoList:
		return "AutoList"
	case *LazyList:
		return "LazyList"
	case *SizedList:
		return "SizedList"
	case *Carousel:
		return "Carousel"
	}
	return "unknown"
}
