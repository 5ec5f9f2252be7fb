// Package fx is the rain and snow overlay: a population of particles split
// into parallax layers, advanced by elapsed time and drawn onto a Canvas.
//
// The engine never schedules itself. The host calls Frame once per animation
// frame with a monotonic timestamp and forwards resize and visibility
// changes; Start and Stop are explicit.
package fx

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/senk-showcase/internal/config"
	"github.com/iburimskiy/senk-showcase/internal/logger"
)

// Canvas is the drawing surface. Coordinates are in CSS-like logical
// pixels; the canvas applies the scale passed to Resize itself.
type Canvas interface {
	Resize(backingW, backingH int, scale float64)
	Clear()
	StrokeLine(x0, y0, x1, y1, width, alpha float64)
	FillCircle(x, y, r, alpha float64)
}

// Preferences persists the selected mode. prefs.Store satisfies it.
type Preferences interface {
	Load(key string) (string, error)
	Save(key, value string) error
}

type nopCanvas struct{}

func (nopCanvas) Resize(int, int, float64)            {}
func (nopCanvas) Clear()                              {}
func (nopCanvas) StrokeLine(_, _, _, _, _, _ float64) {}
func (nopCanvas) FillCircle(_, _, _, _ float64)       {}

type Engine struct {
	mode Mode

	w, h    float64
	dpr     float64
	backW   int
	backH   int
	drops   []Drop
	flakes  []Flake
	running bool
	visible bool

	lastT   time.Duration
	hasLast bool

	rng    *rand.Rand
	canvas Canvas
	prefs  Preferences
	key    string
}

type Option func(*Engine)

// WithRand fixes the random source, mostly for tests.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithPreferences persists mode changes under key.
func WithPreferences(p Preferences, key string) Option {
	return func(e *Engine) {
		e.prefs = p
		if key != "" {
			e.key = key
		}
	}
}

// New creates an engine in ModeOff. A nil canvas is allowed and discards
// all drawing.
func New(c Canvas, opts ...Option) *Engine {
	if c == nil {
		c = nopCanvas{}
	}
	e := &Engine{
		canvas:  c,
		visible: true,
		dpr:     1,
		key:     config.FxModeKey,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		seed := uint64(time.Now().UnixNano())
		e.rng = rand.New(rand.NewPCG(seed, seed>>17|1))
	}
	return e
}

func (e *Engine) Mode() Mode      { return e.mode }
func (e *Engine) Running() bool   { return e.running }
func (e *Engine) Visible() bool   { return e.visible }
func (e *Engine) Drops() []Drop   { return e.drops }
func (e *Engine) Flakes() []Flake { return e.flakes }
func (e *Engine) Particles() int  { return len(e.drops) + len(e.flakes) }
func (e *Engine) Scale() float64  { return e.dpr }

func (e *Engine) Viewport() (w, h float64) { return e.w, e.h }

// Backing returns the canvas backing-store size in device pixels.
func (e *Engine) Backing() (w, h int) { return e.backW, e.backH }

// ParticleCount is the base population for a viewport, proportional to
// the square root of its area.
func ParticleCount(w, h float64) int {
	base := math.Sqrt(w*h) * config.FxAreaFactor
	n := int(math.Floor(base))
	if n < config.FxMinCount {
		return config.FxMinCount
	}
	if n > config.FxMaxCount {
		return config.FxMaxCount
	}
	return n
}

// LayerCount is how many particles of the given mode live on layer l.
func LayerCount(m Mode, n, l int) int {
	depth := layerDepth(l)
	switch m {
	case ModeRain:
		return int(math.Floor(float64(n) * (0.5 + depth*0.4)))
	case ModeSnow:
		return int(math.Floor(float64(n) * (0.35 + depth*0.35)))
	}
	return 0
}

func layerDepth(l int) float64 { return float64(l+1) / config.FxLayers }

// Resize sets the viewport in logical pixels and the device pixel ratio,
// resizes the canvas backing store and rebuilds the population.
func (e *Engine) Resize(w, h, dpr float64) {
	if dpr <= 0 || math.IsNaN(dpr) {
		dpr = 1
	}
	e.dpr = math.Min(dpr, config.MaxDPR)
	e.w = math.Max(0, math.Floor(w))
	e.h = math.Max(0, math.Floor(h))
	e.backW = int(math.Floor(e.w * e.dpr))
	e.backH = int(math.Floor(e.h * e.dpr))
	e.canvas.Resize(e.backW, e.backH, e.dpr)
	e.rebuild()
}

func (e *Engine) rebuild() {
	e.drops = e.drops[:0]
	e.flakes = e.flakes[:0]

	n := ParticleCount(e.w, e.h)
	for l := 0; l < config.FxLayers; l++ {
		depth := layerDepth(l)
		count := LayerCount(e.mode, n, l)
		for i := 0; i < count; i++ {
			switch e.mode {
			case ModeRain:
				e.drops = append(e.drops, e.makeDrop(depth))
			case ModeSnow:
				e.flakes = append(e.flakes, e.makeFlake(depth))
			}
		}
	}
}

// SetMode applies a user selection and persists it. Storage failures are
// logged and ignored; the mode still applies for the session.
func (e *Engine) SetMode(m Mode) {
	if !m.Valid() {
		logger.Warn("fx: ignoring invalid mode %v", m)
		return
	}
	e.apply(m)
	if e.prefs == nil {
		return
	}
	if err := e.prefs.Save(e.key, m.String()); err != nil {
		logger.Debug("fx: could not persist mode %s: %v", m, err)
	}
}

// Restore reads the persisted mode once and applies it without writing it
// back. Missing, unreadable or invalid values fall back to ModeOff.
func (e *Engine) Restore() Mode {
	saved := ModeOff
	if e.prefs != nil {
		s, err := e.prefs.Load(e.key)
		if err != nil {
			logger.Debug("fx: no stored mode: %v", err)
		} else if m, err := ParseMode(s); err != nil {
			logger.Info("fx: %v, using off", err)
		} else {
			saved = m
		}
	}
	e.apply(saved)
	return saved
}

func (e *Engine) apply(m Mode) {
	next, action := Transition(e.mode, m)
	e.mode = next
	switch action {
	case ActionHalt:
		e.Stop()
		e.drops = e.drops[:0]
		e.flakes = e.flakes[:0]
	case ActionRebuild:
		e.rebuild()
		e.Start()
	}
}

// Start resumes the frame loop when the surface is visible and a mode is
// active. The next frame establishes a fresh time baseline.
func (e *Engine) Start() {
	if e.running || !e.visible || e.mode == ModeOff {
		return
	}
	e.running = true
	e.hasLast = false
}

// Stop halts the frame loop, forgets the time baseline and clears the canvas.
func (e *Engine) Stop() {
	e.running = false
	e.hasLast = false
	e.canvas.Clear()
}

// SetVisible mirrors document visibility: hidden stops the loop, visible
// resumes it unless the mode is off.
func (e *Engine) SetVisible(visible bool) {
	e.visible = visible
	if !visible {
		e.Stop()
		return
	}
	e.Start()
}

// Frame advances and draws one frame at timestamp ts. It reports whether
// anything ran. Elapsed time is clamped to config.MaxFrameDelta.
func (e *Engine) Frame(ts time.Duration) bool {
	if !e.running {
		return false
	}
	if !e.hasLast {
		e.lastT = ts
		e.hasLast = true
	}
	dt := ts - e.lastT
	if dt < 0 {
		dt = 0
	}
	if dt > config.MaxFrameDelta {
		dt = config.MaxFrameDelta
	}
	e.lastT = ts

	e.canvas.Clear()
	switch e.mode {
	case ModeRain:
		e.stepRain(dt.Seconds())
		e.drawRain()
	case ModeSnow:
		e.stepSnow(dt.Seconds(), ts.Seconds())
		e.drawSnow()
	}
	return true
}
