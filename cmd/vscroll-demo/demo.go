package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/ayn2op/vscroll"
	"github.com/ayn2op/vscroll/help"
	"github.com/ayn2op/vscroll/keybind"
	"github.com/gdamore/tcell/v3"
)

type action int

const (
	actionQuit action = iota
	actionNextLayout
	actionPrevLayout
)

var layoutKinds = []string{
	vscroll.LayoutFixed,
	vscroll.LayoutGrid,
	vscroll.LayoutAuto,
	vscroll.LayoutLazy,
	vscroll.LayoutSized,
	vscroll.LayoutCarousel,
}

// demo is the root primitive: a bordered scroll view above a help line.
type demo struct {
	*vscroll.Box

	cfg    *vscroll.Config
	count  int
	scroll *vscroll.ScrollView
	help   *help.Help
	keys   *keybind.Map[action]
}

func newDemo(cfg *vscroll.Config, count int) (*demo, error) {
	view, err := cfg.NewView()
	if err != nil {
		return nil, err
	}
	scroll := vscroll.NewScrollView(view)
	view.SetWheelStep(cfg.Scroller.WheelStep)
	scroll.SetBorders(vscroll.BordersAll)

	d := &demo{
		Box:    vscroll.NewBox(),
		cfg:    cfg,
		count:  count,
		scroll: scroll,
		keys: keybind.NewMap[action]().
			Set(actionNextLayout, keybind.NewKeybind(
				keybind.WithKeys("tab", "n"),
				keybind.WithHelp("tab/n", "next layout"),
			)).
			Set(actionPrevLayout, keybind.NewKeybind(
				keybind.WithKeys("backtab", "p"),
			)).
			Set(actionQuit, keybind.NewKeybind(
				keybind.WithKeys("q", "ctrl+c"),
				keybind.WithHelp("q", "quit"),
			)),
	}
	d.help = help.New().SetKeyMaps(d.keys, scroll.Keys())

	view.SetSelectedFunc(func(index int) {
		slog.Debug("carousel selected", "index", index)
	})
	view.SetRepositionFunc(d.highlight)
	if err := d.setLayout(cfg.Layout.Kind); err != nil {
		return nil, err
	}
	return d, nil
}

// highlight marks the cell closest to the centre of a carousel.
func (d *demo) highlight(c vscroll.Cell, _ int, distance float64) {
	cell, ok := c.(*vscroll.TextCell)
	if !ok {
		return
	}
	background := vscroll.Styles.CellBackgroundColor
	if d.cfg.Layout.Kind == vscroll.LayoutCarousel && distance < 0.2 {
		background = vscroll.Styles.SelectedBackgroundColor
	}
	cell.SetBackgroundColor(background)
}

// setLayout switches the view to the layout kind with a matching source.
func (d *demo) setLayout(kind string) error {
	cfg := *d.cfg
	cfg.Layout.Kind = kind
	layout, err := cfg.NewLayout()
	if err != nil {
		return fmt.Errorf("set layout: %w", err)
	}
	d.cfg.Layout.Kind = kind

	view := d.scroll.View()
	view.SetLayout(layout).SetDataSource(sourceFor(kind, d.count))
	view.SetNormalizedPosition(0)
	d.scroll.SetTitle(fmt.Sprintf(" %s: %d items ", kind, d.count))
	slog.Info("layout changed", "layout", kind)
	return nil
}

func (d *demo) cycleLayout(step int) {
	i := slices.Index(layoutKinds, d.cfg.Layout.Kind)
	next := layoutKinds[(i+step+len(layoutKinds))%len(layoutKinds)]
	if err := d.setLayout(next); err != nil {
		slog.Error("failed to switch layout", "layout", next, "err", err)
	}
}

func (d *demo) Animate(dt float64) bool {
	return d.scroll.Animate(dt)
}

// Draw lays out the scroll view above a one row help line.
func (d *demo) Draw(screen tcell.Screen) {
	defer d.MarkClean()
	x, y, width, height := d.GetRect()
	if height < 2 {
		d.scroll.SetRect(x, y, width, height)
		d.scroll.Draw(screen)
		return
	}
	d.scroll.SetRect(x, y, width, height-1)
	d.help.SetRect(x, y+height-1, width, 1)
	d.scroll.Draw(screen)
	d.help.Draw(screen)
}

func (d *demo) InputHandler(event *tcell.EventKey) vscroll.Command {
	if a, ok := d.keys.Lookup(event); ok {
		return d.handleAction(a)
	}
	return d.scroll.InputHandler(event)
}

func (d *demo) handleAction(a action) vscroll.Command {
	switch a {
	case actionQuit:
		return vscroll.QuitCommand{}
	case actionNextLayout:
		d.cycleLayout(1)
	case actionPrevLayout:
		d.cycleLayout(-1)
	}
	return vscroll.RedrawCommand{}
}

func (d *demo) MouseHandler(action vscroll.MouseAction, event *tcell.EventMouse) (vscroll.Primitive, vscroll.Command) {
	return d.scroll.MouseHandler(action, event)
}

var (
	_ vscroll.Primitive = &demo{}
	_ vscroll.Animator  = &demo{}
)
