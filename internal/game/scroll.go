package game

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/senk-showcase/internal/config"
)

// scroller is the page's vertical scroll position, eased toward its target
// by a critically damped spring.
type scroller struct {
	pos, vel float64
	target   float64
	max      float64
	reduced  bool
	locked   bool
	spring   harmonica.Spring
}

func newScroller(reduced bool) *scroller {
	return &scroller{
		reduced: reduced,
		spring:  harmonica.NewSpring(harmonica.FPS(config.TPS), 7, 1),
	}
}

func (s *scroller) setMax(limit float64) {
	s.max = math.Max(0, limit)
	s.target = clamp(s.target, 0, s.max)
	s.pos = clamp(s.pos, 0, s.max)
}

// wheel scrolls by wheel notches; positive dy scrolls up as in ebiten.Wheel.
func (s *scroller) wheel(dy float64) {
	if s.locked || dy == 0 {
		return
	}
	s.target = clamp(s.target-dy*config.WheelStep, 0, s.max)
	if s.reduced {
		s.pos, s.vel = s.target, 0
	}
}

// scrollTo moves smoothly to y, or jumps when motion is reduced.
func (s *scroller) scrollTo(y float64) {
	if s.locked {
		return
	}
	s.target = clamp(y, 0, s.max)
	if s.reduced {
		s.pos, s.vel = s.target, 0
	}
}

func (s *scroller) update() {
	if s.pos == s.target && s.vel == 0 {
		return
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < 0.1 && math.Abs(s.vel) < 0.1 {
		s.pos, s.vel = s.target, 0
	}
}

func (s *scroller) scrolled() bool { return s.pos > config.ScrolledAfter }
