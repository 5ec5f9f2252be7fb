package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// One terminal cell stands for this many logical pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Canvas draws engine particles as characters on a tcell screen.
type Canvas struct {
	screen tcell.Screen
	rows   int
}

func NewCanvas(s tcell.Screen) *Canvas { return &Canvas{screen: s} }

// Resize ignores the backing size: a cell grid has no device pixels. Only
// the drawable row count is kept so the status line stays untouched.
func (c *Canvas) Resize(_, backingH int, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	c.rows = int(float64(backingH) / scale / CellHeight)
}

func (c *Canvas) Clear() {
	w, _ := c.screen.Size()
	for y := 0; y < c.rows; y++ {
		for x := 0; x < w; x++ {
			c.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, _, alpha float64) {
	ch := '|'
	if dy := y1 - y0; dy > 0 && (x1-x0)/dy > 0.12 {
		ch = '\\'
	}
	style := shade(alpha)

	r0 := int(math.Floor(y0 / CellHeight))
	r1 := int(math.Floor(y1 / CellHeight))
	for row := r0; row <= r1; row++ {
		t := 0.0
		if r1 > r0 {
			t = float64(row-r0) / float64(r1-r0)
		}
		x := x0 + (x1-x0)*t
		c.set(int(math.Floor(x/CellWidth)), row, ch, style)
	}
}

func (c *Canvas) FillCircle(x, y, r, alpha float64) {
	ch := '·'
	if r >= 2 {
		ch = '*'
	}
	c.set(int(math.Floor(x/CellWidth)), int(math.Floor(y/CellHeight)), ch, shade(alpha))
}

func (c *Canvas) set(x, y int, ch rune, style tcell.Style) {
	w, _ := c.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= c.rows {
		return
	}
	c.screen.SetContent(x, y, ch, nil, style)
}

// shade maps particle opacity, roughly 0.1 to 0.26, onto a visible grey.
func shade(alpha float64) tcell.Style {
	v := 90 + alpha*4*165
	if v > 255 {
		v = 255
	}
	g := int32(v)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(g, g, g))
}
