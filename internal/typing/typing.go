// Package typing animates the page title: hold a word, erase it one rune
// at a time, type the next one, repeat.
package typing

import (
	"time"

	"github.com/iburimskiy/senk-showcase/internal/config"
)

type Phase int

const (
	PhaseHold Phase = iota
	PhaseErase
	PhaseType
	// PhaseStatic never advances; used under reduced motion.
	PhaseStatic
)

func (p Phase) String() string {
	switch p {
	case PhaseHold:
		return "hold"
	case PhaseErase:
		return "erase"
	case PhaseType:
		return "type"
	case PhaseStatic:
		return "static"
	}
	return "unknown"
}

type Options struct {
	TypeDelay     time.Duration
	EraseDelay    time.Duration
	Hold          time.Duration
	ReducedMotion bool
}

type Typewriter struct {
	words [][]rune
	word  int
	shown []rune
	phase Phase
	wait  time.Duration
	opts  Options
}

// New starts fully typed on words[0]. Empty word lists render nothing.
func New(words []string, opts Options) *Typewriter {
	if opts.TypeDelay <= 0 {
		opts.TypeDelay = config.TypeDelay
	}
	if opts.EraseDelay <= 0 {
		opts.EraseDelay = config.EraseDelay
	}
	if opts.Hold <= 0 {
		opts.Hold = config.TypeHold
	}

	t := &Typewriter{opts: opts}
	for _, w := range words {
		t.words = append(t.words, []rune(w))
	}
	if len(t.words) == 0 {
		t.phase = PhaseStatic
		return t
	}
	t.shown = append([]rune(nil), t.words[0]...)
	if opts.ReducedMotion || len(t.words) == 1 {
		t.phase = PhaseStatic
		return t
	}
	t.phase = PhaseHold
	t.wait = opts.Hold
	return t
}

func (t *Typewriter) Text() string { return string(t.shown) }
func (t *Typewriter) Phase() Phase { return t.phase }
func (t *Typewriter) Word() int    { return t.word }

// Advance moves the animation forward by dt, possibly through several steps.
func (t *Typewriter) Advance(dt time.Duration) {
	if t.phase == PhaseStatic {
		return
	}
	for t.wait <= dt {
		dt -= t.wait
		t.step()
	}
	t.wait -= dt
}

func (t *Typewriter) step() {
	switch t.phase {
	case PhaseHold:
		t.phase = PhaseErase
		t.wait = 0
	case PhaseErase:
		if len(t.shown) == 0 {
			t.word = (t.word + 1) % len(t.words)
			t.phase = PhaseType
			t.wait = 0
			return
		}
		t.shown = t.shown[:len(t.shown)-1]
		t.wait = t.opts.EraseDelay
	case PhaseType:
		target := t.words[t.word]
		if len(t.shown) >= len(target) {
			t.phase = PhaseHold
			t.wait = t.opts.Hold
			return
		}
		t.shown = append(t.shown, target[len(t.shown)])
		t.wait = t.opts.TypeDelay
	}
}
