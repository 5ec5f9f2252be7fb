package fx

import (
	"math"

	"github.com/iburimskiy/senk-showcase/internal/config"
)

// Drop is one rain streak. Depth in [0,1] scales speed, length, width
// and opacity so nearer layers read as closer.
type Drop struct {
	X, Y  float64
	Speed float64
	Len   float64
	Width float64
	Alpha float64
	Depth float64
	Drift float64
}

// Flake is one snow flake swaying on a per-flake phase.
type Flake struct {
	X, Y   float64
	Radius float64
	Speed  float64
	Drift  float64
	Alpha  float64
	Phase  float64
	Depth  float64
}

const (
	rainWrap = 20
	snowWrap = 10
)

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func (e *Engine) makeDrop(depth float64) Drop {
	r := e.rng
	return Drop{
		X:     r.Float64() * e.w,
		Y:     -r.Float64() * e.h,
		Speed: lerp(560, 980, depth) * (0.85 + r.Float64()*0.25),
		Len:   lerp(16, 34, depth) * (0.8 + r.Float64()*0.45),
		Width: lerp(0.7, 1.15, depth),
		Alpha: lerp(0.10, 0.22, depth),
		Depth: depth,
		Drift: (r.Float64()*2 - 1) * lerp(8, 22, depth),
	}
}

func (e *Engine) makeFlake(depth float64) Flake {
	r := e.rng
	drift := lerp(10, 28, depth)
	if r.Float64() < 0.5 {
		drift = -drift
	}
	return Flake{
		X:      r.Float64() * e.w,
		Y:      r.Float64() * e.h,
		Radius: lerp(1.0, 2.2, depth) * (0.8 + r.Float64()*0.7),
		Speed:  lerp(26, 70, depth) * (0.8 + r.Float64()*0.55),
		Drift:  drift,
		Alpha:  lerp(0.12, 0.26, depth),
		Phase:  r.Float64() * math.Pi * 2,
		Depth:  depth,
	}
}

// stepRain integrates dt seconds. Drops wrap horizontally and respawn
// above the top edge once their tail clears the bottom padding.
func (e *Engine) stepRain(dt float64) {
	sm := float64(config.RainSpeedMul)
	for i := range e.drops {
		d := &e.drops[i]
		d.Y += d.Speed * dt * sm
		d.X += (config.RainWind + d.Drift) * dt * (0.35 + d.Depth*0.65) * sm

		if d.X < -rainWrap {
			d.X = e.w + rainWrap
		}
		if d.X > e.w+rainWrap {
			d.X = -rainWrap
		}

		if d.Y-d.Len > e.h+config.RainResetPad {
			d.Y = -e.rng.Float64()*(e.h*0.35) - d.Len
			d.X = e.rng.Float64() * e.w
		}
	}
}

func (e *Engine) drawRain() {
	for _, d := range e.drops {
		slant := d.Len * config.RainSlant * (0.45 + d.Depth*0.55)
		e.canvas.StrokeLine(d.X, d.Y, d.X+slant, d.Y+d.Len, d.Width, d.Alpha)
	}
}

// stepSnow integrates dt seconds; t is the frame timestamp in seconds and
// drives the sideways sway.
func (e *Engine) stepSnow(dt, t float64) {
	for i := range e.flakes {
		f := &e.flakes[i]
		f.Y += f.Speed * dt
		f.X += math.Sin(t*0.9+f.Phase) * (f.Drift * 0.02)

		if f.Y-f.Radius > e.h {
			f.Y = -e.rng.Float64()*e.h*0.15 - f.Radius
			f.X = e.rng.Float64() * e.w
		}
		if f.X < -snowWrap {
			f.X = e.w + snowWrap
		}
		if f.X > e.w+snowWrap {
			f.X = -snowWrap
		}
	}
}

func (e *Engine) drawSnow() {
	for _, f := range e.flakes {
		e.canvas.FillCircle(f.X, f.Y, f.Radius, f.Alpha)
	}
}
