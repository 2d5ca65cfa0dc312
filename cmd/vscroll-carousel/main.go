// Command vscroll-carousel shows a looping carousel of coloured cards in an
// ebiten window. Drag, scroll or use the arrow keys to move between cards.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/ayn2op/vscroll"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	windowWidth  = 960
	windowHeight = 360
	windowTitle  = "vscroll carousel"
)

var palette = []color.RGBA{
	{0xe6, 0x39, 0x46, 0xff},
	{0xf4, 0xa2, 0x61, 0xff},
	{0xe9, 0xc4, 0x6a, 0xff},
	{0x2a, 0x9d, 0x8f, 0xff},
	{0x26, 0x46, 0x53, 0xff},
	{0x45, 0x7b, 0x9d, 0xff},
	{0x8e, 0x5e, 0xa2, 0xff},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	count := flag.Int("count", len(palette), "number of cards")
	cardWidth := flag.Float64("card", 240, "card width in pixels")
	space := flag.Float64("space", 24, "space between cards in pixels")
	loop := flag.Bool("loop", true, "wrap around at either end")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	vscroll.SetLogLevel(*logLevel)
	logger, closer := vscroll.NewLogger("", os.Stderr)
	defer closer.Close()
	vscroll.SetLogger(logger)
	slog.SetDefault(logger)

	cfg := vscroll.DefaultConfig()
	cfg.Scroller.Axis = "horizontal"
	cfg.Layout.Kind = vscroll.LayoutCarousel
	cfg.Layout.CellSize = *cardWidth
	cfg.Layout.Space = *space
	cfg.Layout.Loop = *loop
	if err := cfg.Validate(); err != nil {
		return err
	}

	view, err := cfg.NewView()
	if err != nil {
		return err
	}
	d := newDeck(view, max(*count, 1), float32(*cardWidth))

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(d.driver); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
