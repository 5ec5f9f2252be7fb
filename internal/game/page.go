package game

import (
	"math"

	"github.com/iburimskiy/senk-showcase/internal/config"
	"github.com/iburimskiy/senk-showcase/internal/content"
	"github.com/iburimskiy/senk-showcase/internal/fx"
	"github.com/iburimskiy/senk-showcase/internal/viewer"
)

const (
	maxColumns    = 3
	headingHeight = 44
)

// card is a case or project tile. Rects are in page coordinates.
type card struct {
	r        rect
	title    string
	caption  string
	button   rect
	label    string
	index    int
	project  bool
	carousel *carousel
}

// page lays out the scrollable part of the showcase.
type page struct {
	content   *content.Page
	cases     []*card
	projects  []*card
	casesY    float64
	projectsY float64
	height    float64
}

func newPage(c *content.Page, opts viewer.Options) *page {
	opts.HoverScrub = true
	p := &page{content: c}
	for i, cs := range c.Cases {
		p.cases = append(p.cases, &card{
			title:    cs.Title(),
			caption:  cs.Desc,
			label:    "Открыть кейс",
			index:    i,
			carousel: newCarousel(rect{}, c.Images(cs.Images), opts),
		})
	}
	for i, pr := range c.Projects {
		p.projects = append(p.projects, &card{
			title:    pr.Title,
			label:    "Фото",
			index:    i,
			project:  true,
			carousel: newCarousel(rect{}, c.Images(pr.Images), opts),
		})
	}
	return p
}

func (p *page) cards() []*card {
	return append(append([]*card(nil), p.cases...), p.projects...)
}

// columns is how many cards fit side by side in a viewport of width w.
func columns(w float64) int {
	avail := w - 2*config.PagePadding + config.CardGap
	n := int(math.Floor(avail / (config.CardWidth + config.CardGap)))
	if n < 1 {
		return 1
	}
	if n > maxColumns {
		return maxColumns
	}
	return n
}

// layout places every card for a viewport of width w. Carousels whose
// width changes re-snap through their panel.
func (p *page) layout(w float64) {
	cols := columns(w)
	cardW := (w - 2*config.PagePadding - float64(cols-1)*config.CardGap) / float64(cols)
	if cardW < 1 {
		cardW = 1
	}

	y := float64(config.BarHeight + config.PagePadding)
	p.casesY = y
	y = placeCards(p.cases, y+headingHeight, cols, cardW)
	p.projectsY = y + config.PagePadding
	y = placeCards(p.projects, p.projectsY+headingHeight, cols, cardW)
	p.height = y + config.PagePadding
}

func placeCards(cards []*card, top float64, cols int, cardW float64) float64 {
	if len(cards) == 0 {
		return top
	}
	for i, c := range cards {
		row, col := i/cols, i%cols
		c.r = rect{
			x: config.PagePadding + float64(col)*(cardW+config.CardGap),
			y: top + float64(row)*(config.CardHeight+config.CardGap),
			w: cardW,
			h: config.CardHeight,
		}
		c.carousel.panel.setRect(rect{c.r.x, c.r.y, c.r.w, config.SlideHeight})
		c.button = rect{c.r.x + 16, c.r.y + c.r.h - config.ButtonHeight - 16, c.r.w - 32, config.ButtonHeight}
	}
	rows := (len(cards) + cols - 1) / cols
	return top + float64(rows)*config.CardHeight + float64(rows-1)*config.CardGap
}

func (p *page) destroy() {
	for _, c := range p.cards() {
		c.carousel.destroy()
	}
}

// bar holds the header controls in screen coordinates.
type bar struct {
	fx    [3]rect
	cases rect
	photo rect
	meter rect
}

func layoutBar(w float64) bar {
	var b bar
	y := (config.BarHeight - config.ButtonHeight) / 2.0
	x := w - config.PagePadding
	for i := len(fx.Modes) - 1; i >= 0; i-- {
		x -= config.FxButtonW
		b.fx[i] = rect{x, y, config.FxButtonW, config.ButtonHeight}
		x -= 4
	}
	x -= 16
	b.meter = rect{x - 6, y, 6, config.ButtonHeight}
	x -= 6 + 16
	x -= 80
	b.photo = rect{x, y, 80, config.ButtonHeight}
	x -= 88
	b.cases = rect{x, y, 80, config.ButtonHeight}
	return b
}

func fxLabel(m fx.Mode) string {
	switch m {
	case fx.ModeRain:
		return "Дождь"
	case fx.ModeSnow:
		return "Снег"
	}
	return "Выкл"
}
