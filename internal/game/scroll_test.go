package game

import "testing"

func TestScrollerReducedMotion(t *testing.T) {
	s := newScroller(true)
	s.setMax(500)

	s.wheel(-2)
	if s.pos != 96 || s.target != 96 {
		t.Fatalf("pos=%v target=%v, want 96", s.pos, s.target)
	}
	s.wheel(100)
	if s.pos != 0 {
		t.Fatalf("pos = %v, want clamp to 0", s.pos)
	}
	s.scrollTo(9000)
	if s.pos != 500 {
		t.Fatalf("pos = %v, want clamp to 500", s.pos)
	}
}

func TestScrollerEases(t *testing.T) {
	s := newScroller(false)
	s.setMax(1000)
	s.scrollTo(300)
	if s.pos != 0 {
		t.Fatal("smooth scroll should not jump")
	}
	for i := 0; i < 600 && s.pos != s.target; i++ {
		s.update()
	}
	if s.pos != 300 {
		t.Fatalf("pos = %v, want 300", s.pos)
	}
	if !s.scrolled() {
		t.Fatal("scrolled() should be true past the threshold")
	}
}

func TestScrollerLocked(t *testing.T) {
	s := newScroller(true)
	s.setMax(500)
	s.locked = true
	s.wheel(-3)
	s.scrollTo(200)
	if s.pos != 0 {
		t.Fatalf("locked scroller moved to %v", s.pos)
	}
}

func TestScrollerShrinkClamps(t *testing.T) {
	s := newScroller(true)
	s.setMax(800)
	s.scrollTo(700)
	s.setMax(-50)
	if s.pos != 0 || s.target != 0 {
		t.Fatalf("pos=%v target=%v after shrink", s.pos, s.target)
	}
}
