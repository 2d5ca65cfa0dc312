// Command vscroll-demo scrolls a few hundred text cells in the terminal with
// any of the vscroll layouts.
//
//	vscroll-demo -layout auto -count 500
//
// Settings are read from $XDG_CONFIG_HOME/vscroll/config.toml. One unit is
// one terminal cell. Logs go to a JSON file because the terminal belongs to
// the demo while it runs.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ayn2op/vscroll"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	defaultConfigPath, err := vscroll.ConfigPath()
	if err != nil {
		defaultConfigPath = "config.toml"
	}

	configPath := flag.String("config", defaultConfigPath, "path to the TOML configuration")
	layout := flag.String("layout", "", "layout kind: fixed, grid, auto, lazy, sized or carousel")
	count := flag.Int("count", 200, "number of items")
	logPath := flag.String("log", "", "log file (default from config, else a temp file)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	flag.Parse()

	cfg, err := vscroll.LoadConfigFrom(*configPath, terminalConfig())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *layout != "" {
		cfg.Layout.Kind = *layout
	}
	if *logPath != "" {
		cfg.Log.Path = *logPath
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	vscroll.SetLogLevel(cfg.Log.Level)
	logger, closer := vscroll.NewLogger(cfg.Log.Path, nil)
	defer closer.Close()
	vscroll.SetLogger(logger)
	slog.SetDefault(logger)

	d, err := newDemo(cfg, max(*count, 0))
	if err != nil {
		return err
	}
	slog.Info("demo started", "layout", cfg.Layout.Kind, "count", *count, "config", *configPath)
	return vscroll.NewApplication().SetRoot(d).Run()
}

// terminalConfig returns the defaults scaled to terminal cells.
func terminalConfig() *vscroll.Config {
	cfg := vscroll.DefaultConfig()
	cfg.Scroller.Deceleration = 200
	cfg.Scroller.MaxVelocity = 300
	cfg.Scroller.VelocityThreshold = 1
	cfg.Scroller.WheelStep = vscroll.DefaultTerminalWheelStep
	cfg.Layout.CellSize = 3
	cfg.Layout.CellBreadth = 18
	cfg.Layout.DefaultCellSize = 2
	cfg.Log.Path = filepath.Join(os.TempDir(), "vscroll-demo.log")
	return cfg
}
