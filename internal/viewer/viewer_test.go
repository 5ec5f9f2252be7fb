package viewer

import (
	"testing"
	"time"
)

var fourImages = []string{"a.png", "b.png", "c.png", "d.png"}

func newTestViewer(width float64) *Viewer {
	return New(width, fourImages, Options{})
}

// settle ticks until the spring rests or the budget runs out.
func settle(t *testing.T, v *Viewer) {
	t.Helper()
	for i := 0; i < 600 && v.Animating(); i++ {
		v.Tick()
	}
	if v.Animating() {
		t.Fatalf("viewer still animating: pos=%v offset=%v", v.Position(), v.Offset())
	}
}

func TestNewStartsAtFirstSlide(t *testing.T) {
	v := New(300, []string{"1", "2", "3", "4", "5", "6"}, Options{})
	if v.Len() != Slides {
		t.Fatalf("Len() = %d, want %d", v.Len(), Slides)
	}
	if v.Index() != 0 || v.Offset() != 0 || v.Position() != 0 {
		t.Fatalf("start state index=%d offset=%v pos=%v", v.Index(), v.Offset(), v.Position())
	}
	if !v.IndicatorVisible() {
		t.Fatal("indicator should be shown after construction")
	}
}

func TestZeroWidthMeasuresAsOne(t *testing.T) {
	v := New(0, fourImages, Options{})
	if v.Width() != 1 {
		t.Fatalf("Width() = %v, want 1", v.Width())
	}
}

func TestSnapToClamps(t *testing.T) {
	tests := []struct {
		req  int
		want int
	}{
		{-5, 0},
		{-1, 0},
		{0, 0},
		{2, 2},
		{3, 3},
		{4, 3},
		{100, 3},
	}
	for _, tt := range tests {
		v := newTestViewer(300)
		v.SnapTo(tt.req, true)
		if v.Index() != tt.want {
			t.Errorf("SnapTo(%d) index = %d, want %d", tt.req, v.Index(), tt.want)
		}
		if want := -float64(tt.want) * 300; v.Offset() != want {
			t.Errorf("SnapTo(%d) offset = %v, want %v", tt.req, v.Offset(), want)
		}
	}
}

func TestSnapToIdempotent(t *testing.T) {
	v := newTestViewer(250)
	v.SnapTo(1, false)
	settle(t, v)
	first := v.Position()
	v.SnapTo(1, false)
	settle(t, v)
	if v.Position() != first || v.Position() != -250 {
		t.Fatalf("positions differ: %v then %v", first, v.Position())
	}
}

func TestAnimatedSnapConverges(t *testing.T) {
	v := newTestViewer(300)
	v.SnapTo(2, false)
	if !v.Animating() {
		t.Fatal("animated snap should start the spring")
	}
	if v.Position() != 0 {
		t.Fatalf("position moved before first tick: %v", v.Position())
	}
	settle(t, v)
	if v.Position() != -600 {
		t.Fatalf("Position() = %v, want -600", v.Position())
	}
}

func TestReducedMotionIsInstant(t *testing.T) {
	v := New(300, fourImages, Options{ReducedMotion: true})
	v.SnapTo(3, false)
	if v.Animating() || v.Position() != -900 {
		t.Fatalf("reduced motion snap animating=%v pos=%v", v.Animating(), v.Position())
	}
}

func TestEndToEnd(t *testing.T) {
	v := newTestViewer(300)

	v.SnapTo(2, false)
	if v.Index() != 2 || v.Offset() != -600 {
		t.Fatalf("after SnapTo(2): index=%d offset=%v", v.Index(), v.Offset())
	}
	v.SnapTo(10, false)
	if v.Index() != 3 || v.Offset() != -900 {
		t.Fatalf("after SnapTo(10): index=%d offset=%v", v.Index(), v.Offset())
	}

	v.SnapTo(0, true)
	if !v.PointerDown(0, PointerTouch) {
		t.Fatal("touch press should start a drag")
	}
	v.PointerMove(-80)
	v.PointerUp()
	if v.Index() != 1 {
		t.Fatalf("drag of -80px on 300px: index = %d, want 1", v.Index())
	}
}

func TestDragRelease(t *testing.T) {
	tests := []struct {
		name  string
		start int
		dx    float64
		want  int
	}{
		{"forward past threshold", 1, -60, 2},
		{"back past threshold", 1, 60, 0},
		{"within threshold forward", 1, -50, 1},
		{"within threshold back", 1, 53, 1},
		{"back clamps at first", 0, 120, 0},
		{"forward clamps at last", 3, -120, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestViewer(300) // threshold 54px
			v.SnapTo(tt.start, true)
			v.PointerDown(100, PointerTouch)
			v.PointerMove(100 + tt.dx)
			v.PointerUp()
			if v.Index() != tt.want {
				t.Fatalf("index = %d, want %d", v.Index(), tt.want)
			}
			if v.Dragging() {
				t.Fatal("still dragging after release")
			}
		})
	}
}

func TestDragElasticEdges(t *testing.T) {
	v := newTestViewer(300)
	v.PointerDown(0, PointerTouch)
	v.PointerMove(100)
	if got := v.Offset(); got != 25 {
		t.Fatalf("offset past first slide = %v, want 25", got)
	}
	v.PointerMove(-40)
	if got := v.Offset(); got != -40 {
		t.Fatalf("offset inside range = %v, want -40", got)
	}
	v.PointerCancel()

	v.SnapTo(3, true)
	v.PointerDown(0, PointerTouch)
	v.PointerMove(-200)
	if got := v.Offset(); got != -950 {
		t.Fatalf("offset past last slide = %v, want -950", got)
	}
	if v.Position() != v.Offset() {
		t.Fatal("drag should place the track without transition")
	}
}

func TestMouseDragIgnoredWithHoverScrub(t *testing.T) {
	v := New(300, fourImages, Options{HoverScrub: true, HoverCapable: true})
	if v.PointerDown(0, PointerMouse) {
		t.Fatal("mouse drag should be ignored while hover-scrub is active")
	}
	if !v.PointerDown(0, PointerTouch) {
		t.Fatal("touch drag should still work")
	}

	noHover := New(300, fourImages, Options{HoverScrub: true, HoverCapable: false})
	if !noHover.PointerDown(0, PointerMouse) {
		t.Fatal("mouse drag should work on devices without hover")
	}
}

func TestRatioIndex(t *testing.T) {
	tests := []struct {
		ratio float64
		want  int
	}{
		{-0.3, 0},
		{0, 0},
		{0.2499, 0},
		{0.25, 1},
		{0.5, 2},
		{0.75, 3},
		{0.999, 3},
		{1.0, 3},
		{7, 3},
	}
	for _, tt := range tests {
		if got := RatioIndex(tt.ratio); got != tt.want {
			t.Errorf("RatioIndex(%v) = %d, want %d", tt.ratio, got, tt.want)
		}
	}
}

func TestHoverScrubCoalescesPerFrame(t *testing.T) {
	v := New(400, fourImages, Options{HoverScrub: true, HoverCapable: true})
	var seen []int
	v.OnIndexChange(func(i int) { seen = append(seen, i) })

	v.PointerEnter()
	v.HoverMove(0.3)
	v.HoverMove(0.6)
	v.HoverMove(0.9)
	if v.Index() != 0 {
		t.Fatal("hover should not apply before the next frame")
	}
	v.Tick()
	if v.Index() != 3 {
		t.Fatalf("index = %d, want 3", v.Index())
	}
	if len(seen) != 1 || seen[0] != 3 {
		t.Fatalf("snaps = %v, want a single snap to 3", seen)
	}

	v.HoverMove(0.8)
	v.Tick()
	if len(seen) != 1 {
		t.Fatalf("same-slide hover should not snap again: %v", seen)
	}
}

func TestHoverIgnoredWithoutScrub(t *testing.T) {
	v := New(400, fourImages, Options{HoverScrub: false, HoverCapable: true})
	v.HoverMove(0.9)
	v.Tick()
	if v.Index() != 0 {
		t.Fatalf("index = %d, want 0", v.Index())
	}
}

func TestResizeResnapsInstantly(t *testing.T) {
	v := newTestViewer(300)
	v.SnapTo(2, false)
	v.Resize(500)
	if v.Index() != 2 || v.Offset() != -1000 || v.Position() != -1000 || v.Animating() {
		t.Fatalf("after resize index=%d offset=%v pos=%v", v.Index(), v.Offset(), v.Position())
	}

	var calls int
	v.OnIndexChange(func(int) { calls++ })
	v.Resize(500.3)
	if calls != 0 || v.Offset() != -1000 {
		t.Fatalf("sub-epsilon resize should not re-snap: calls=%d offset=%v", calls, v.Offset())
	}
}

type fakeResizes struct {
	fns       map[int]func(float64)
	next      int
	cancelled int
}

func (f *fakeResizes) OnResize(fn func(float64)) func() {
	if f.fns == nil {
		f.fns = map[int]func(float64){}
	}
	f.next++
	id := f.next
	f.fns[id] = fn
	return func() {
		f.cancelled++
		delete(f.fns, id)
	}
}

func (f *fakeResizes) fire(w float64) {
	for _, fn := range f.fns {
		fn(w)
	}
}

func TestResizeSourceReleasedOnDestroy(t *testing.T) {
	src := &fakeResizes{}
	v := New(300, fourImages, Options{Resizes: src})
	v.SnapTo(1, true)

	src.fire(600)
	if v.Offset() != -600 {
		t.Fatalf("offset after observed resize = %v, want -600", v.Offset())
	}

	v.Destroy()
	v.Destroy()
	if src.cancelled != 1 || len(src.fns) != 0 {
		t.Fatalf("resize subscription not released once: cancelled=%d live=%d", src.cancelled, len(src.fns))
	}
	if v.Len() != 0 {
		t.Fatal("destroy should clear slides")
	}
	v.SnapTo(3, true)
	if v.Index() != 1 {
		t.Fatal("destroyed viewer should ignore navigation")
	}
}

func TestIndicatorAutoHide(t *testing.T) {
	step := 100 * time.Millisecond
	v := New(300, fourImages, Options{FrameStep: step, IndicatorDelay: 1500 * time.Millisecond})

	for i := 0; i < 14; i++ {
		v.Tick()
	}
	if !v.IndicatorVisible() {
		t.Fatal("indicator hid before the delay")
	}
	v.Tick()
	if v.Indicator() != IndicatorHidden {
		t.Fatal("indicator should hide after the delay")
	}

	v.Next()
	if !v.IndicatorVisible() {
		t.Fatal("index change should show the indicator")
	}
}

func TestIndicatorStaysWhileHovering(t *testing.T) {
	step := 100 * time.Millisecond
	v := New(300, fourImages, Options{FrameStep: step})
	v.PointerEnter()
	for i := 0; i < 30; i++ {
		v.Tick()
	}
	if !v.IndicatorVisible() {
		t.Fatal("indicator should stay visible while hovering")
	}
	v.PointerLeave()
	for i := 0; i < 15; i++ {
		v.Tick()
	}
	if v.IndicatorVisible() {
		t.Fatal("indicator should hide after leaving")
	}
}

func TestIndicatorStaysWhileDragging(t *testing.T) {
	step := 100 * time.Millisecond
	v := New(300, fourImages, Options{FrameStep: step})
	v.PointerDown(0, PointerTouch)
	for i := 0; i < 30; i++ {
		v.Tick()
	}
	if !v.IndicatorVisible() {
		t.Fatal("indicator should stay visible while dragging")
	}
}

func TestOnIndexChangeCancel(t *testing.T) {
	v := newTestViewer(300)
	var got []int
	cancel := v.OnIndexChange(func(i int) { got = append(got, i) })
	v.Next()
	v.Next()
	cancel()
	v.Next()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("notifications = %v, want [1 2]", got)
	}
}

func TestFewerImagesStillClampToTrack(t *testing.T) {
	v := New(300, []string{"only.png"}, Options{})
	v.SnapTo(9, true)
	if v.Len() != 1 || v.Index() != Slides-1 {
		t.Fatalf("len=%d index=%d", v.Len(), v.Index())
	}
}
