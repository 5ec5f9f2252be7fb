package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/senk-showcase/internal/viewer"
)

// carousel binds a viewer to a panel on screen and feeds it pointer input.
type carousel struct {
	panel   *panel
	v       *viewer.Viewer
	hover   bool
	mouse   bool
	touch   bool
	touchID ebiten.TouchID
}

func newCarousel(r rect, images []string, opts viewer.Options) *carousel {
	p := newPanel(r)
	opts.Resizes = p
	return &carousel{
		panel: p,
		v:     viewer.New(r.w, images, opts),
		hover: opts.HoverCapable,
	}
}

// handle routes one tick of input. dy converts the panel's page
// coordinates to the screen.
func (c *carousel) handle(in input, dy float64) {
	v := c.v
	if v.Destroyed() {
		return
	}
	r := c.panel.r.shift(dy)
	inside := in.hovering(r)

	if c.hover {
		switch {
		case inside && !v.Hovering():
			v.PointerEnter()
		case !inside && v.Hovering():
			v.PointerLeave()
		}
		if inside && (in.mouseMoved || in.wheelY != 0) {
			v.HoverMove((in.mouseX - r.x) / r.w)
		}
	}

	switch {
	case c.mouse && in.mouseDown:
		v.PointerMove(in.mouseX - r.x)
	case c.mouse:
		v.PointerUp()
		c.mouse = false
	case in.mouseJustDown && inside && !c.touch:
		c.mouse = v.PointerDown(in.mouseX-r.x, viewer.PointerMouse)
	}

	for _, tp := range in.touches {
		if c.touch {
			if tp.id != c.touchID {
				continue
			}
			if tp.justReleased {
				v.PointerUp()
				c.touch = false
				continue
			}
			v.PointerMove(tp.x - r.x)
			continue
		}
		if tp.justPressed && r.contains(tp.x, tp.y) && !c.mouse {
			if v.PointerDown(tp.x-r.x, viewer.PointerTouch) {
				c.touch, c.touchID = true, tp.id
			}
		}
	}
}

func (c *carousel) busy() bool { return c.mouse || c.touch }

// draw renders the track clipped to the panel, plus the slide indicator.
func (c *carousel) draw(dst *ebiten.Image, dy float64, cache *imageCache) {
	r := c.panel.r.shift(dy)
	clip := image.Rect(int(r.x), int(r.y), int(r.x+r.w), int(r.y+r.h)).Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	sub := dst.SubImage(clip).(*ebiten.Image)

	v := c.v
	images := v.Images()
	w := v.Width()
	for i := 0; i < viewer.Slides; i++ {
		x := r.x + v.Position() + float64(i)*w
		if x+w < r.x || x > r.x+r.w {
			continue
		}
		src := ""
		if i < len(images) {
			src = images[i]
		}
		var img *ebiten.Image
		if src != "" {
			img = cache.get(src)
		}
		slot := rect{x, r.y, w, r.h}
		if img == nil {
			drawPlaceholder(sub, slot, src, i)
			continue
		}
		drawCover(sub, img, slot)
	}

	if v.IndicatorVisible() {
		const pillW, pillH = 72.0, 18.0
		px := r.x + (r.w-pillW)/2
		py := r.y + r.h - pillH - 10
		vector.DrawFilledRect(sub, float32(px), float32(py), pillW, pillH, color.RGBA{A: 140}, true)
		drawDots(sub, r.x+r.w/2, py+pillH/2, viewer.Slides, v.Index())
	}
}

func drawPlaceholder(dst *ebiten.Image, r rect, src string, slide int) {
	vector.DrawFilledRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), placeholderColor(src, slide), false)
}

// drawCover scales img to cover r, cropping the overflow through the
// destination's clip.
func drawCover(dst, img *ebiten.Image, r rect) {
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	s := r.w / iw
	if hs := r.h / ih; hs > s {
		s = hs
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(r.x+(r.w-iw*s)/2, r.y+(r.h-ih*s)/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func (c *carousel) destroy() { c.v.Destroy() }
