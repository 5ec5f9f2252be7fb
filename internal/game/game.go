// Package game is the desktop host: an ebiten game that lays out the
// showcase page, feeds pointer input to the carousels and drives the
// weather overlay once per tick.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/senk-showcase/internal/config"
	"github.com/iburimskiy/senk-showcase/internal/content"
	"github.com/iburimskiy/senk-showcase/internal/fx"
	"github.com/iburimskiy/senk-showcase/internal/logger"
	"github.com/iburimskiy/senk-showcase/internal/typing"
	"github.com/iburimskiy/senk-showcase/internal/viewer"
)

// Ambience is the optional weather soundscape. ambience.Player satisfies it.
type Ambience interface {
	SetMode(m fx.Mode)
	SetVisible(visible bool)
	Level() float64
}

type Options struct {
	Page          *content.Page
	Prefs         fx.Preferences
	Ambience      Ambience
	ReducedMotion bool

	// HoverCapable is false on touch-only setups; hover-scrub is then off.
	HoverCapable bool
}

type Game struct {
	opts    Options
	faces   *faces
	fx      *fx.Engine
	canvas  *fxCanvas
	images  *imageCache
	tracker *pointerTracker
	prevKey map[ebiten.Key]bool
	in      input

	page   *page
	bar    bar
	modal  *modal
	scroll *scroller
	title  *typing.Typewriter

	start      time.Time
	w, h       int
	outW, outH int
	visible    bool

	status  string
	lastErr error
}

func New(opts Options) (*Game, error) {
	if opts.Page == nil {
		opts.Page = content.Default()
	}
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}
	g := &Game{
		opts:    opts,
		faces:   f,
		canvas:  &fxCanvas{},
		images:  newImageCache(),
		tracker: newPointerTracker(),
		prevKey: map[ebiten.Key]bool{},
		scroll:  newScroller(opts.ReducedMotion),
		start:   time.Now(),
		visible: true,
	}
	g.fx = fx.New(g.canvas, fx.WithPreferences(opts.Prefs, config.FxModeKey))
	g.setPage(opts.Page)

	mode := g.fx.Restore()
	if opts.Ambience != nil {
		opts.Ambience.SetMode(mode)
	}
	logger.Info("game: restored weather mode %s", mode)
	return g, nil
}

func (g *Game) viewerOptions() viewer.Options {
	return viewer.Options{
		HoverCapable:  g.opts.HoverCapable,
		ReducedMotion: g.opts.ReducedMotion,
		FrameStep:     time.Second / config.TPS,
	}
}

// setPage replaces the page content, releasing the previous viewers.
func (g *Game) setPage(p *content.Page) {
	g.closeModal()
	if g.page != nil {
		g.page.destroy()
		g.images.reset()
	}
	g.opts.Page = p
	g.page = newPage(p, g.viewerOptions())
	g.title = typing.New(p.TitleWords, typing.Options{ReducedMotion: g.opts.ReducedMotion})
	if g.w > 0 {
		g.relayout()
	}
}

func (g *Game) relayout() {
	w, h := float64(g.w), float64(g.h)
	dpr := 1.0
	if m := ebiten.Monitor(); m != nil {
		dpr = m.DeviceScaleFactor()
	}
	g.fx.Resize(w, h, dpr)
	g.page.layout(w)
	g.bar = layoutBar(w)
	g.scroll.setMax(g.page.height - h)
	if g.modal != nil {
		g.modal.layout(w, h)
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if g.outW != g.w || g.outH != g.h {
		g.w, g.h = g.outW, g.outH
		g.relayout()
	}
	g.updateVisibility()

	g.in = g.tracker.poll()
	in := g.in

	if justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyEscape) {
		if g.modal == nil {
			return ebiten.Termination
		}
		g.closeModal()
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openManifestDialog(); err != nil {
			g.lastErr = err
		}
	}

	if g.modal != nil {
		if justPressed(ebiten.KeyArrowLeft) {
			g.modal.carousel.v.Prev()
		}
		if justPressed(ebiten.KeyArrowRight) {
			g.modal.carousel.v.Next()
		}
		switch g.modal.handle(in) {
		case modalClose:
			g.closeModal()
		case modalOrder:
			if err := g.order(); err != nil {
				g.lastErr = err
			}
		}
	} else {
		g.handlePage(in)
	}

	g.scroll.update()
	for _, c := range g.page.cards() {
		c.carousel.v.Tick()
	}
	if g.modal != nil {
		g.modal.carousel.v.Tick()
	}
	g.title.Advance(time.Second / config.TPS)
	g.fx.Frame(time.Since(g.start))
	return nil
}

// updateVisibility treats a minimized or unfocused window as hidden.
func (g *Game) updateVisibility() {
	visible := !ebiten.IsWindowMinimized() && ebiten.IsFocused()
	if visible == g.visible {
		return
	}
	g.visible = visible
	g.fx.SetVisible(visible)
	if g.opts.Ambience != nil {
		g.opts.Ambience.SetVisible(visible)
	}
	logger.Debug("game: visible=%v", visible)
}

func (g *Game) handlePage(in input) {
	g.scroll.wheel(in.wheelY)

	for i, m := range fx.Modes {
		if in.clicked(g.bar.fx[i]) {
			g.setMode(m)
			return
		}
	}
	if in.clicked(g.bar.cases) {
		g.scroll.scrollTo(g.page.casesY - config.BarHeight)
		return
	}
	if in.clicked(g.bar.photo) {
		g.scroll.scrollTo(g.page.projectsY - config.BarHeight)
		return
	}
	if in.click && in.clickY < config.BarHeight {
		return
	}

	dy := -g.scroll.pos
	for _, c := range g.page.cards() {
		c.carousel.handle(in, dy)
		if in.clicked(c.button.shift(dy)) {
			g.openModal(c)
			return
		}
	}
}

func (g *Game) setMode(m fx.Mode) {
	g.fx.SetMode(m)
	if g.opts.Ambience != nil {
		g.opts.Ambience.SetMode(m)
	}
	g.status = "Погода: " + fxLabel(m)
}

// openModal closes any open dialog before building the new one.
func (g *Game) openModal(c *card) {
	g.closeModal()
	p := g.opts.Page
	opts := g.viewerOptions()
	if c.project {
		pr := p.Projects[c.index]
		g.modal = newPhotoModal(pr, p.Images(pr.Images), opts)
	} else {
		cs := p.Cases[c.index]
		g.modal = newCaseModal(cs, p.Images(cs.Images), opts)
	}
	g.modal.layout(float64(g.w), float64(g.h))
	g.scroll.locked = true
}

func (g *Game) closeModal() {
	if g.modal == nil {
		return
	}
	g.modal.destroy()
	g.modal = nil
	g.scroll.locked = false
}

func (g *Game) order() error {
	url := content.OrderURL(g.opts.Page.Order.Username, g.modal.orderText())
	err := zenity.Question("Открыть чат для заказа?",
		zenity.Title("Заказ"),
		zenity.OKLabel("Открыть"),
		zenity.CancelLabel("Отмена"),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	logger.Info("game: opening %s", url)
	return openURL(url)
}

func (g *Game) openManifestDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Showcase Manifest"),
		zenity.FileFilters{{
			Name:     "Manifest",
			Patterns: []string{"*.toml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	p, err := content.Load(filename)
	if err != nil {
		return err
	}
	logger.Info("game: loaded manifest %s", filename)
	g.setPage(p)
	g.lastErr = nil
	g.status = fmt.Sprintf("%d кейса, %d проекта", len(p.Cases), len(p.Projects))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.canvas.draw(screen)

	g.drawCards(screen)
	g.drawBar(screen)
	if g.modal != nil {
		g.drawModal(screen)
	}

	status := g.status
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	if status != "" {
		ebitenutil.DebugPrintAt(screen, status, 12, g.h-20)
	}
}

func (g *Game) drawCards(screen *ebiten.Image) {
	dy := -g.scroll.pos
	drawText(screen, "Кейсы", g.faces.head, config.PagePadding, g.page.casesY+dy+8, colorText)
	drawText(screen, "Фото", g.faces.head, config.PagePadding, g.page.projectsY+dy+8, colorText)

	for _, c := range g.page.cards() {
		r := c.r.shift(dy)
		if r.y > float64(g.h) || r.y+r.h < 0 {
			continue
		}
		vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), colorCard, false)
		vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, colorBorder, false)
		c.carousel.draw(screen, dy, g.images)

		ty := r.y + config.SlideHeight + 12
		drawText(screen, c.title, g.faces.head, r.x+16, ty, colorText)
		if c.caption != "" {
			drawText(screen, c.caption, g.faces.small, r.x+16, ty+32, colorMuted)
		}
		b := c.button.shift(dy)
		drawButton(screen, b, c.label, g.faces.body, g.in.hovering(b) && g.modal == nil, false)
	}
}

func (g *Game) drawBar(screen *ebiten.Image) {
	w := float32(g.w)
	if g.scroll.scrolled() {
		vector.DrawFilledRect(screen, 0, 0, w, config.BarHeight, color.RGBA{R: 14, G: 16, B: 22, A: 230}, false)
		vector.StrokeLine(screen, 0, config.BarHeight, w, config.BarHeight, 1, colorBorder, false)
	}

	title := g.title.Text()
	if g.title.Phase() != typing.PhaseStatic {
		title += "|"
	}
	drawText(screen, title, g.faces.title, config.PagePadding, 10, colorText)

	for i, m := range fx.Modes {
		r := g.bar.fx[i]
		drawButton(screen, r, fxLabel(m), g.faces.body, g.in.hovering(r), g.fx.Mode() == m)
	}
	drawButton(screen, g.bar.cases, "Кейсы", g.faces.body, g.in.hovering(g.bar.cases), false)
	drawButton(screen, g.bar.photo, "Фото", g.faces.body, g.in.hovering(g.bar.photo), false)

	if g.opts.Ambience != nil {
		r := g.bar.meter
		level := clamp01(g.opts.Ambience.Level() * 4)
		vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, colorBorder, false)
		fill := r.h * level
		vector.DrawFilledRect(screen, float32(r.x), float32(r.y+r.h-fill), float32(r.w), float32(fill), colorAccent, false)
	}
}

func (g *Game) drawModal(screen *ebiten.Image) {
	m := g.modal
	vector.DrawFilledRect(screen, 0, 0, float32(g.w), float32(g.h), color.RGBA{A: 170}, false)

	b := m.box
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), colorCard, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 1, colorBorder, false)
	drawText(screen, m.title, g.faces.head, b.x+24, b.y+20, colorText)
	drawButton(screen, m.closeBtn, "×", g.faces.body, g.in.hovering(m.closeBtn), false)

	m.carousel.draw(screen, 0, g.images)
	s := m.slides()
	drawButton(screen, m.prevBtn, "<", g.faces.body, g.in.hovering(m.prevBtn), false)
	drawButton(screen, m.nextBtn, ">", g.faces.body, g.in.hovering(m.nextBtn), false)
	drawDots(screen, s.x+s.w/2, m.prevBtn.y+m.prevBtn.h/2, viewer.Slides, m.dot)

	if m.kind != modalCase {
		return
	}
	y := m.prevBtn.y + m.prevBtn.h + 12
	if m.desc != "" {
		drawText(screen, m.desc, g.faces.body, b.x+24, y, colorText)
		y += 24
	}
	for _, t := range m.tasks {
		drawText(screen, "• "+t, g.faces.body, b.x+24, y, colorMuted)
		y += 22
	}
	drawButton(screen, m.orderBtn, "Заказать", g.faces.body, g.in.hovering(m.orderBtn), false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outW, g.outH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
