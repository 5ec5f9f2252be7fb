package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const tapDeadZone = 6.0 // pixels

type touchPoint struct {
	id           ebiten.TouchID
	x, y         float64
	justPressed  bool
	justReleased bool
}

// input is one tick's pointer snapshot in screen coordinates.
type input struct {
	mouseX, mouseY float64
	mouseMoved     bool
	mouseDown      bool
	mouseJustDown  bool
	mouseJustUp    bool
	wheelY         float64

	touches []touchPoint

	// click is a press and release within tapDeadZone, from mouse or touch.
	click          bool
	clickX, clickY float64
}

// pointerTracker remembers press origins across ticks to tell taps from drags.
type pointerTracker struct {
	lastX, lastY   float64
	pressX, pressY float64
	touchStart     map[ebiten.TouchID][2]float64
	justPressed    []ebiten.TouchID
	justReleased   []ebiten.TouchID
	ids            []ebiten.TouchID
}

func newPointerTracker() *pointerTracker {
	return &pointerTracker{touchStart: map[ebiten.TouchID][2]float64{}}
}

func (t *pointerTracker) poll() input {
	var in input

	mx, my := ebiten.CursorPosition()
	in.mouseX, in.mouseY = float64(mx), float64(my)
	in.mouseMoved = in.mouseX != t.lastX || in.mouseY != t.lastY
	t.lastX, t.lastY = in.mouseX, in.mouseY

	in.mouseDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.mouseJustDown = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.mouseJustUp = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	_, in.wheelY = ebiten.Wheel()

	if in.mouseJustDown {
		t.pressX, t.pressY = in.mouseX, in.mouseY
	}
	if in.mouseJustUp && withinTap(t.pressX, t.pressY, in.mouseX, in.mouseY) {
		in.click, in.clickX, in.clickY = true, in.mouseX, in.mouseY
	}

	t.justPressed = inpututil.AppendJustPressedTouchIDs(t.justPressed[:0])
	for _, id := range t.justPressed {
		x, y := ebiten.TouchPosition(id)
		t.touchStart[id] = [2]float64{float64(x), float64(y)}
	}

	t.ids = ebiten.AppendTouchIDs(t.ids[:0])
	for _, id := range t.ids {
		x, y := ebiten.TouchPosition(id)
		in.touches = append(in.touches, touchPoint{
			id:          id,
			x:           float64(x),
			y:           float64(y),
			justPressed: inpututil.IsTouchJustPressed(id),
		})
	}

	t.justReleased = inpututil.AppendJustReleasedTouchIDs(t.justReleased[:0])
	for _, id := range t.justReleased {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		tp := touchPoint{id: id, x: float64(x), y: float64(y), justReleased: true}
		in.touches = append(in.touches, tp)
		if start, ok := t.touchStart[id]; ok && withinTap(start[0], start[1], tp.x, tp.y) {
			in.click, in.clickX, in.clickY = true, tp.x, tp.y
		}
		delete(t.touchStart, id)
	}
	return in
}

func withinTap(x0, y0, x1, y1 float64) bool {
	return math.Hypot(x1-x0, y1-y0) <= tapDeadZone
}

// clicked reports a click inside r, where r is in screen coordinates.
func (in input) clicked(r rect) bool {
	return in.click && r.contains(in.clickX, in.clickY)
}

func (in input) hovering(r rect) bool {
	return r.contains(in.mouseX, in.mouseY)
}
