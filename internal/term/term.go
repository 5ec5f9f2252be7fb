// Package term runs the weather overlay in a terminal, driving the same
// engine as the desktop host from a tcell event loop.
package term

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/senk-showcase/internal/config"
	"github.com/iburimskiy/senk-showcase/internal/fx"
	"github.com/iburimskiy/senk-showcase/internal/logger"
)

type Options struct {
	Prefs fx.Preferences
	Rand  *rand.Rand
}

type App struct {
	screen tcell.Screen
	canvas *Canvas
	engine *fx.Engine
}

// New wires an engine to an initialised screen and restores the saved mode.
func New(s tcell.Screen, opts Options) *App {
	a := &App{screen: s, canvas: NewCanvas(s)}
	fxOpts := []fx.Option{fx.WithPreferences(opts.Prefs, config.FxModeKey)}
	if opts.Rand != nil {
		fxOpts = append(fxOpts, fx.WithRand(opts.Rand))
	}
	a.engine = fx.New(a.canvas, fxOpts...)
	s.EnableFocus()
	a.resize()
	mode := a.engine.Restore()
	logger.Info("term: restored weather mode %s", mode)
	return a
}

func (a *App) Engine() *fx.Engine { return a.engine }

// resize keeps the bottom row for the status line.
func (a *App) resize() {
	w, h := a.screen.Size()
	if h > 0 {
		h--
	}
	a.engine.Resize(float64(w*CellWidth), float64(h*CellHeight), 1)
}

// Handle applies one event and reports whether the loop should go on.
func (a *App) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'o':
			a.engine.SetMode(fx.ModeOff)
		case 'r':
			a.engine.SetMode(fx.ModeRain)
		case 's':
			a.engine.SetMode(fx.ModeSnow)
		}
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	case *tcell.EventFocus:
		a.engine.SetVisible(ev.Focused)
		logger.Debug("term: focused=%v", ev.Focused)
	}
	return true
}

// Frame draws one frame at timestamp ts and flushes the screen.
func (a *App) Frame(ts time.Duration) {
	a.engine.Frame(ts)
	a.drawStatus()
	a.screen.Show()
}

func (a *App) drawStatus() {
	w, h := a.screen.Size()
	if h == 0 {
		return
	}
	line := fmt.Sprintf(" weather: %-4s  particles: %3d   [o]ff [r]ain [s]now [q]uit", a.engine.Mode(), a.engine.Particles())
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	runes := []rune(line)
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		a.screen.SetContent(x, h-1, ch, nil, style)
	}
}

// Run polls events and ticks frames until ctx ends or the user quits.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / config.TPS)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	start := time.Now()
	a.Frame(0)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !a.Handle(ev) {
				return nil
			}
		case <-ticker.C:
			a.Frame(time.Since(start))
		}
	}
}
