package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// fxCanvas is the weather layer: an offscreen image at backing-store
// resolution that the engine draws into in logical coordinates.
type fxCanvas struct {
	img   *ebiten.Image
	scale float64
}

func (c *fxCanvas) Resize(w, h int, scale float64) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.scale = scale
	if c.img != nil {
		b := c.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(w, h)
}

func (c *fxCanvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

func white(alpha float64) color.NRGBA {
	return color.NRGBA{R: 255, G: 255, B: 255, A: uint8(clamp01(alpha) * 255)}
}

func (c *fxCanvas) StrokeLine(x0, y0, x1, y1, width, alpha float64) {
	if c.img == nil {
		return
	}
	s := c.scale
	vector.StrokeLine(c.img, float32(x0*s), float32(y0*s), float32(x1*s), float32(y1*s), float32(width*s), white(alpha), true)
}

func (c *fxCanvas) FillCircle(x, y, r, alpha float64) {
	if c.img == nil {
		return
	}
	s := c.scale
	vector.DrawFilledCircle(c.img, float32(x*s), float32(y*s), float32(r*s), white(alpha), true)
}

// draw composites the layer onto the logical-size screen.
func (c *fxCanvas) draw(screen *ebiten.Image) {
	if c.img == nil || c.scale <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1/c.scale, 1/c.scale)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(c.img, op)
}
