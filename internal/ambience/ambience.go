// Package ambience plays a soft procedural weather loop that follows the
// fx mode: a brighter hiss for rain, a low whisper for snow, silence when off.
package ambience

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/senk-showcase/internal/config"
	"github.com/iburimskiy/senk-showcase/internal/fx"
)

// tone is the gain and one-pole low-pass coefficient for a mode.
type tone struct {
	gain   float64
	cutoff float64
}

var tones = map[fx.Mode]tone{
	fx.ModeRain: {gain: 0.22, cutoff: 0.35},
	fx.ModeSnow: {gain: 0.06, cutoff: 0.04},
}

// noise is filtered white noise; gain and cutoff can change mid-stream.
type noise struct {
	rng    *rand.Rand
	tone   tone
	stateL float64
	stateR float64
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		l := n.rng.Float64()*2 - 1
		r := n.rng.Float64()*2 - 1
		n.stateL += n.tone.cutoff * (l - n.stateL)
		n.stateR += n.tone.cutoff * (r - n.stateR)
		samples[i] = [2]float64{n.stateL * n.tone.gain, n.stateR * n.tone.gain}
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

type Player struct {
	noise  *noise
	volume *effects.Volume
	ctrl   *beep.Ctrl
	meter  *meter

	mode    fx.Mode
	visible bool
	started bool
	mu      sync.Mutex
}

// New builds the streamer chain noise -> volume -> ctrl -> meter. volume is
// in beep's base-2 steps, 0 meaning unchanged. Nothing plays until Start.
func New(volume float64) *Player {
	seed := uint64(time.Now().UnixNano())
	n := &noise{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
	v := &effects.Volume{Streamer: n, Base: 2, Volume: volume}
	c := &beep.Ctrl{Streamer: v, Paused: true}
	return &Player{
		noise:   n,
		volume:  v,
		ctrl:    c,
		meter:   newMeter(c, config.MeterRingSize),
		visible: true,
	}
}

// Start initialises the speaker and begins streaming. Errors leave the
// player usable but silent.
func (p *Player) Start() error {
	sr := beep.SampleRate(config.AmbienceSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.mu.Lock()
	p.started = true
	p.mu.Unlock()
	speaker.Play(p.meter)
	return nil
}

// Close stops playback; the player can not be restarted.
func (p *Player) Close() {
	p.mu.Lock()
	started := p.started
	p.started = false
	p.mu.Unlock()
	if started {
		speaker.Clear()
		speaker.Close()
	}
}

func (p *Player) locked(fn func()) {
	p.mu.Lock()
	started := p.started
	p.mu.Unlock()
	if started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

func (p *Player) Mode() fx.Mode { return p.mode }

func (p *Player) SetMode(m fx.Mode) {
	p.locked(func() {
		p.mode = m
		if t, ok := tones[m]; ok {
			p.noise.tone = t
		}
		p.ctrl.Paused = !p.audible()
	})
}

// SetVisible pauses the loop while the window is hidden.
func (p *Player) SetVisible(visible bool) {
	p.locked(func() {
		p.visible = visible
		p.ctrl.Paused = !p.audible()
	})
}

func (p *Player) audible() bool { return p.visible && p.mode != fx.ModeOff }

func (p *Player) Paused() bool {
	var paused bool
	p.locked(func() { paused = p.ctrl.Paused })
	return paused
}

// Level is the recent loudness used by the HUD meter.
func (p *Player) Level() float64 { return p.meter.level(config.MeterRingSize / 4) }
