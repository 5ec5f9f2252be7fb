// Package viewer implements the four-slide carousel used on case cards,
// project cards and inside the case and photo modals.
//
// A Viewer is host independent: the host feeds it pointer events in
// container-local coordinates, calls Tick once per frame and reads Offset
// and Position back to place the track. Nothing here draws.
package viewer

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/senk-showcase/internal/config"
)

// Slides is the fixed number of positions on the track.
const Slides = config.ViewerSlides

type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
	PointerPen
)

// IndicatorState is the visibility of the slide position pill.
type IndicatorState int

const (
	IndicatorHidden IndicatorState = iota
	IndicatorShown
)

func (s IndicatorState) String() string {
	if s == IndicatorShown {
		return "shown"
	}
	return "hidden"
}

// ResizeSource reports container width changes. The returned cancel func
// must stop further callbacks.
type ResizeSource interface {
	OnResize(fn func(width float64)) (cancel func())
}

type Options struct {
	// HoverScrub maps horizontal hover position to a slide. It only takes
	// effect when HoverCapable is also set.
	HoverScrub    bool
	HoverCapable  bool
	ReducedMotion bool

	IndicatorDelay time.Duration
	FrameStep      time.Duration

	Resizes ResizeSource
}

type listener struct {
	id int
	fn func(int)
}

type Viewer struct {
	images []string
	index  int
	width  float64

	hoverScrub bool
	reduced    bool

	// offset is where the track is told to be; pos is where it is drawn.
	offset    float64
	pos       float64
	vel       float64
	spring    harmonica.Spring
	animating bool

	dragging bool
	startX   float64
	dx       float64

	hovering     bool
	pendingRatio float64
	hasPending   bool

	indicator IndicatorState
	delay     time.Duration
	step      time.Duration
	now       time.Duration
	hideAt    time.Duration
	hideArmed bool

	listeners    []listener
	nextID       int
	cancelResize func()
	destroyed    bool
}

// New builds a viewer for a container of the given width. At most Slides
// images are kept. The track starts on slide 0 with the indicator shown.
func New(width float64, images []string, opts Options) *Viewer {
	if len(images) > Slides {
		images = images[:Slides]
	}
	if opts.IndicatorDelay <= 0 {
		opts.IndicatorDelay = config.IndicatorDelay
	}
	if opts.FrameStep <= 0 {
		opts.FrameStep = time.Second / config.TPS
	}
	fps := int(time.Second / opts.FrameStep)
	if fps < 1 {
		fps = 1
	}

	v := &Viewer{
		images:     append([]string(nil), images...),
		width:      measure(width),
		hoverScrub: opts.HoverScrub && opts.HoverCapable,
		reduced:    opts.ReducedMotion,
		delay:      opts.IndicatorDelay,
		step:       opts.FrameStep,
		spring:     harmonica.NewSpring(harmonica.FPS(fps), config.SlideSpringFrequency, config.SlideSpringDamping),
	}
	if opts.Resizes != nil {
		v.cancelResize = opts.Resizes.OnResize(v.Resize)
	}
	v.SnapTo(0, true)
	return v
}

func measure(width float64) float64 {
	if width <= 0 || math.IsNaN(width) {
		return 1
	}
	return width
}

func clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > Slides-1 {
		return Slides - 1
	}
	return i
}

func (v *Viewer) Index() int        { return v.index }
func (v *Viewer) Width() float64    { return v.width }
func (v *Viewer) Offset() float64   { return v.offset }
func (v *Viewer) Position() float64 { return v.pos }
func (v *Viewer) Len() int          { return len(v.images) }
func (v *Viewer) Dragging() bool    { return v.dragging }
func (v *Viewer) Hovering() bool    { return v.hovering }
func (v *Viewer) HoverScrub() bool  { return v.hoverScrub }
func (v *Viewer) Destroyed() bool   { return v.destroyed }
func (v *Viewer) Animating() bool   { return v.animating }
func (v *Viewer) Images() []string  { return append([]string(nil), v.images...) }

func (v *Viewer) Indicator() IndicatorState { return v.indicator }

func (v *Viewer) IndicatorVisible() bool { return v.indicator == IndicatorShown }

// SnapTo moves to idx clamped to [0, Slides-1]. Instant snaps and reduced
// motion place the track immediately; otherwise Position follows a spring.
func (v *Viewer) SnapTo(idx int, instant bool) {
	if v.destroyed {
		return
	}
	v.index = clampIndex(idx)
	v.offset = -float64(v.index) * v.width

	if instant || v.reduced {
		v.pos = v.offset
		v.vel = 0
		v.animating = false
	} else {
		v.animating = true
	}

	v.notify()
	v.showIndicator()
}

func (v *Viewer) Next() { v.SnapTo(v.index+1, false) }
func (v *Viewer) Prev() { v.SnapTo(v.index-1, false) }

// Resize re-measures the container and keeps the current slide in view.
func (v *Viewer) Resize(width float64) {
	if v.destroyed {
		return
	}
	prev := v.width
	v.width = measure(width)
	if math.Abs(prev-v.width) > config.ResizeEpsilon {
		v.SnapTo(v.index, true)
	}
}

func (v *Viewer) PointerEnter() {
	if v.destroyed {
		return
	}
	v.hovering = true
	v.showIndicator()
}

func (v *Viewer) PointerLeave() {
	if v.destroyed {
		return
	}
	v.hovering = false
	v.hideLater()
}

// HoverMove records the pointer position as a ratio of the container
// width. Only the latest ratio before the next Tick is applied.
func (v *Viewer) HoverMove(ratio float64) {
	if v.destroyed || !v.hoverScrub {
		return
	}
	if math.IsNaN(ratio) {
		ratio = 0
	}
	v.pendingRatio = ratio
	v.hasPending = true
}

// RatioIndex maps a hover ratio to a slide index.
func RatioIndex(ratio float64) int {
	r := math.Max(0, math.Min(config.HoverRatioCeil, ratio))
	return clampIndex(int(math.Floor(r * Slides)))
}

// PointerDown starts a drag. Mouse presses are ignored while hover-scrub
// is active since hovering already navigates.
func (v *Viewer) PointerDown(x float64, kind PointerKind) bool {
	if v.destroyed {
		return false
	}
	if kind == PointerMouse && v.hoverScrub {
		return false
	}
	v.dragging = true
	v.showIndicator()
	v.startX = x
	v.dx = 0

	// transitions are off while dragging
	v.pos = v.offset
	v.vel = 0
	v.animating = false
	return true
}

func (v *Viewer) PointerMove(x float64) {
	if v.destroyed || !v.dragging {
		return
	}
	v.showIndicator()
	v.dx = x - v.startX
	v.offset = v.dragOffset()
	v.pos = v.offset
}

func (v *Viewer) dragOffset() float64 {
	x := -float64(v.index)*v.width + v.dx
	minX := -float64(Slides-1) * v.width
	maxX := 0.0

	if x > maxX {
		x = maxX + (x-maxX)*config.EdgeResistance
	}
	if x < minX {
		x = minX + (x-minX)*config.EdgeResistance
	}
	return x
}

// PointerUp ends a drag, moving one slide when the drag passed the
// swipe threshold and snapping back otherwise.
func (v *Viewer) PointerUp() {
	if v.destroyed || !v.dragging {
		return
	}
	v.dragging = false

	threshold := v.width * config.SwipeThreshold
	next := v.index
	if v.dx > threshold {
		next = v.index - 1
	}
	if v.dx < -threshold {
		next = v.index + 1
	}
	v.SnapTo(next, false)
	v.hideLater()
}

func (v *Viewer) PointerCancel() { v.PointerUp() }

// Tick advances one frame: applies the pending hover ratio, steps the
// slide spring and fires the indicator deadline.
func (v *Viewer) Tick() {
	if v.destroyed {
		return
	}
	v.now += v.step

	if v.hasPending {
		v.hasPending = false
		idx := RatioIndex(v.pendingRatio)
		if idx != v.index {
			v.SnapTo(idx, false)
		} else {
			v.showIndicator()
		}
	}

	if v.animating {
		v.pos, v.vel = v.spring.Update(v.pos, v.vel, v.offset)
		if math.Abs(v.pos-v.offset) < 0.05 && math.Abs(v.vel) < 0.05 {
			v.pos = v.offset
			v.vel = 0
			v.animating = false
		}
	}

	if v.hideArmed && v.now >= v.hideAt {
		v.hideArmed = false
		if !v.dragging && !v.hovering {
			v.indicator = IndicatorHidden
		}
	}
}

func (v *Viewer) showIndicator() {
	v.indicator = IndicatorShown
	v.hideLater()
}

func (v *Viewer) hideLater() {
	v.hideArmed = true
	v.hideAt = v.now + v.delay
}

// OnIndexChange registers fn to be called with the index after every snap.
func (v *Viewer) OnIndexChange(fn func(index int)) (cancel func()) {
	if v.destroyed || fn == nil {
		return func() {}
	}
	v.nextID++
	id := v.nextID
	v.listeners = append(v.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range v.listeners {
			if l.id == id {
				v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
				return
			}
		}
	}
}

func (v *Viewer) notify() {
	for _, l := range append([]listener(nil), v.listeners...) {
		l.fn(v.index)
	}
}

// Destroy releases the resize subscription, the indicator timer and all
// listeners. It is safe to call more than once.
func (v *Viewer) Destroy() {
	if v.destroyed {
		return
	}
	v.destroyed = true
	if v.cancelResize != nil {
		v.cancelResize()
		v.cancelResize = nil
	}
	v.hideArmed = false
	v.hasPending = false
	v.dragging = false
	v.listeners = nil
	v.images = nil
}
