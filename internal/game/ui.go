package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	colorBackground = color.RGBA{R: 14, G: 16, B: 22, A: 255}
	colorCard       = color.RGBA{R: 26, G: 30, B: 40, A: 255}
	colorText       = color.RGBA{R: 232, G: 234, B: 240, A: 255}
	colorMuted      = color.RGBA{R: 150, G: 156, B: 172, A: 255}
	colorAccent     = color.RGBA{R: 120, G: 170, B: 255, A: 255}
	colorBorder     = color.RGBA{R: 60, G: 70, B: 90, A: 255}
)

type faces struct {
	title text.Face
	head  text.Face
	body  text.Face
	small text.Face
}

func loadFaces() (*faces, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &faces{
		title: &text.GoTextFace{Source: src, Size: 28},
		head:  &text.GoTextFace{Source: src, Size: 20},
		body:  &text.GoTextFace{Source: src, Size: 15},
		small: text.NewGoXFace(basicfont.Face7x13),
	}, nil
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = face.Metrics().HAscent + face.Metrics().HDescent + 4
	text.Draw(dst, s, face, op)
}

func textWidth(s string, face text.Face) float64 {
	w, _ := text.Measure(s, face, 0)
	return w
}

// drawButton draws a labelled button. active marks toggle buttons that are
// currently selected.
func drawButton(dst *ebiten.Image, r rect, label string, face text.Face, hovered, active bool) {
	var bgColor color.Color
	switch {
	case active:
		bgColor = color.RGBA{R: 70, G: 110, B: 190, A: 255}
	case hovered:
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bgColor = color.RGBA{R: 44, G: 52, B: 70, A: 255}
	}
	vector.DrawFilledRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, borderColor, false)

	_, lh := text.Measure(label, face, 0)
	tx := r.x + (r.w-textWidth(label, face))/2
	ty := r.y + (r.h-lh)/2
	drawText(dst, label, face, tx, ty, colorText)
}

// drawDots draws one dot per slide with the current one highlighted.
func drawDots(dst *ebiten.Image, cx, cy float64, n, current int) {
	const gap = 12.0
	x := cx - gap*float64(n-1)/2
	for i := 0; i < n; i++ {
		clr := color.RGBA{R: 255, G: 255, B: 255, A: 90}
		radius := float32(3)
		if i == current {
			clr = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			radius = 4
		}
		vector.DrawFilledCircle(dst, float32(x+float64(i)*gap), float32(cy), radius, clr, true)
	}
}
