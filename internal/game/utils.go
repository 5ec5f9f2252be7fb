package game

import (
	"hash/fnv"
	"image/color"
	"math"
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

// placeholderColor gives every missing image a stable hue derived from its path.
func placeholderColor(src string, slide int) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(src))
	hue := float64(h.Sum32()%360) + float64(slide)*24
	r, g, b := hsvToRgb(hue, 0.45, 0.55)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

type rect struct {
	x, y, w, h float64
}

func (r rect) contains(px, py float64) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}

func (r rect) shift(dy float64) rect { return rect{r.x, r.y + dy, r.w, r.h} }
