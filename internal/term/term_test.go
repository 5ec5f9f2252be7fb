package term

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/senk-showcase/internal/config"
	"github.com/iburimskiy/senk-showcase/internal/fx"
	"github.com/iburimskiy/senk-showcase/internal/prefs"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newTestApp(t *testing.T, store prefs.Store) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := newSimScreen(t, 80, 25)
	return New(s, Options{Prefs: store, Rand: rand.New(rand.NewPCG(3, 7))}), s
}

func key(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func cellsWith(s tcell.Screen, rows int, want ...rune) int {
	w, _ := s.Size()
	n := 0
	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			ch, _, _, _ := s.GetContent(x, y)
			for _, r := range want {
				if ch == r {
					n++
				}
			}
		}
	}
	return n
}

func TestAppKeysSwitchModes(t *testing.T) {
	store := prefs.NewMemory()
	app, _ := newTestApp(t, store)

	if app.Engine().Mode() != fx.ModeOff {
		t.Fatalf("initial mode = %v", app.Engine().Mode())
	}
	tests := []struct {
		r    rune
		want fx.Mode
	}{
		{'r', fx.ModeRain},
		{'s', fx.ModeSnow},
		{'x', fx.ModeSnow},
		{'o', fx.ModeOff},
	}
	for _, tt := range tests {
		if !app.Handle(key(tt.r)) {
			t.Fatalf("key %q should not quit", tt.r)
		}
		if got := app.Engine().Mode(); got != tt.want {
			t.Fatalf("after %q mode = %v, want %v", tt.r, got, tt.want)
		}
	}
	if v, _ := store.Load(config.FxModeKey); v != "off" {
		t.Fatalf("stored mode = %q, want off", v)
	}
}

func TestAppQuitKeys(t *testing.T) {
	app, _ := newTestApp(t, prefs.NewMemory())
	if app.Handle(key('q')) {
		t.Fatal("q should quit")
	}
	if app.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("Esc should quit")
	}
}

func TestAppRestoresSavedMode(t *testing.T) {
	store := prefs.NewMemory()
	_ = store.Save(config.FxModeKey, "snow")
	app, _ := newTestApp(t, store)
	if app.Engine().Mode() != fx.ModeSnow || !app.Engine().Running() {
		t.Fatalf("restored mode=%v running=%v", app.Engine().Mode(), app.Engine().Running())
	}
}

func TestAppDrawsRain(t *testing.T) {
	app, s := newTestApp(t, prefs.NewMemory())
	app.Handle(key('r'))
	// drops spawn above the top edge and need a few seconds to fall in
	var ts time.Duration
	for i := 0; i < 150; i++ {
		ts += 33 * time.Millisecond
		app.Frame(ts)
	}

	if n := cellsWith(s, 24, '|', '\\'); n == 0 {
		t.Fatal("no rain drawn")
	}
	ch, _, _, _ := s.GetContent(1, 24)
	if ch != 'w' {
		t.Fatalf("status line starts with %q", ch)
	}

	app.Handle(key('o'))
	app.Frame(ts + 33*time.Millisecond)
	if n := cellsWith(s, 24, '|', '\\'); n != 0 {
		t.Fatalf("%d rain cells left after switching off", n)
	}
}

func TestAppFocusAndResize(t *testing.T) {
	app, s := newTestApp(t, prefs.NewMemory())
	app.Handle(key('s'))

	app.Handle(tcell.NewEventFocus(false))
	if app.Engine().Running() {
		t.Fatal("losing focus should stop the engine")
	}
	app.Handle(tcell.NewEventFocus(true))
	if !app.Engine().Running() {
		t.Fatal("regaining focus should resume the engine")
	}

	s.SetSize(40, 10)
	app.Handle(tcell.NewEventResize(40, 10))
	if w, h := app.Engine().Viewport(); w != 320 || h != 144 {
		t.Fatalf("viewport = %vx%v, want 320x144", w, h)
	}
}

func TestRunStopsOnContext(t *testing.T) {
	app, _ := newTestApp(t, prefs.NewMemory())
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- app.Run(ctx) }()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run() = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the context ended")
	}
}

func TestCanvasShapes(t *testing.T) {
	s := newSimScreen(t, 20, 10)
	c := NewCanvas(s)
	c.Resize(160, 144, 1)

	c.FillCircle(20, 40, 2.4, 0.2)
	c.FillCircle(60, 40, 1.2, 0.2)
	c.StrokeLine(80, 0, 80, 40, 1, 0.2)
	c.FillCircle(20, 150, 3, 0.2) // status row, clipped

	check := func(x, y int, want rune) {
		t.Helper()
		if ch, _, _, _ := s.GetContent(x, y); ch != want {
			t.Errorf("cell (%d,%d) = %q, want %q", x, y, ch, want)
		}
	}
	check(2, 2, '*')
	check(7, 2, '·')
	check(10, 0, '|')
	check(10, 1, '|')
	check(10, 2, '|')
	if ch, _, _, _ := s.GetContent(2, 9); ch == '*' {
		t.Error("drawing leaked into the status row")
	}

	c.Clear()
	if n := cellsWith(s, 9, '*', '·', '|'); n != 0 {
		t.Fatalf("%d cells left after Clear", n)
	}
}
