package game

import (
	"math"

	"github.com/iburimskiy/senk-showcase/internal/config"
	"github.com/iburimskiy/senk-showcase/internal/content"
	"github.com/iburimskiy/senk-showcase/internal/viewer"
)

type modalKind int

const (
	modalCase modalKind = iota
	modalPhoto
)

type modalAction int

const (
	modalStay modalAction = iota
	modalClose
	modalOrder
)

// modal is an open case or photo dialog with its own viewer. Rects are in
// screen coordinates.
type modal struct {
	kind     modalKind
	title    string
	caseName string
	desc     string
	tasks    []string

	carousel   *carousel
	dot        int
	cancelDots func()

	box      rect
	closeBtn rect
	prevBtn  rect
	nextBtn  rect
	orderBtn rect
}

func newCaseModal(c content.Case, images []string, opts viewer.Options) *modal {
	m := &modal{
		kind:     modalCase,
		title:    c.Title(),
		caseName: c.Title(),
		desc:     c.Desc,
		tasks:    c.TaskList(),
	}
	m.attach(images, opts)
	return m
}

func newPhotoModal(p content.Project, images []string, opts viewer.Options) *modal {
	m := &modal{kind: modalPhoto, title: p.PhotoTitle()}
	m.attach(images, opts)
	return m
}

func (m *modal) attach(images []string, opts viewer.Options) {
	opts.HoverScrub = false
	m.carousel = newCarousel(rect{}, images, opts)
	m.dot = m.carousel.v.Index()
	m.cancelDots = m.carousel.v.OnIndexChange(func(i int) { m.dot = i })
}

// layout centers the dialog in a w×h screen.
func (m *modal) layout(w, h float64) {
	bw := math.Min(config.ModalWidth, w-32)
	bh := math.Min(config.ModalHeight, h-32)
	m.box = rect{(w - bw) / 2, (h - bh) / 2, bw, bh}

	b := m.box
	slideH := math.Min(config.ModalSlideHeight, bh-180)
	if m.kind == modalPhoto {
		slideH = bh - 140
	}
	if slideH < 40 {
		slideH = 40
	}
	m.carousel.panel.setRect(rect{b.x + 24, b.y + 64, b.w - 48, slideH})

	m.closeBtn = rect{b.x + b.w - 24 - 32, b.y + 16, 32, config.ButtonHeight}
	navY := b.y + 64 + slideH + 12
	m.prevBtn = rect{b.x + 24, navY, 48, config.ButtonHeight}
	m.nextBtn = rect{b.x + b.w - 24 - 48, navY, 48, config.ButtonHeight}
	m.orderBtn = rect{b.x + b.w - 24 - 140, b.y + b.h - 24 - config.ButtonHeight, 140, config.ButtonHeight}
}

func (m *modal) slides() rect { return m.carousel.panel.r }

// handle routes one tick of input while the modal is open.
func (m *modal) handle(in input) modalAction {
	m.carousel.handle(in, 0)
	if m.carousel.busy() || !in.click {
		return modalStay
	}
	v := m.carousel.v
	switch {
	case in.clicked(m.closeBtn):
		return modalClose
	case in.clicked(m.prevBtn):
		v.Prev()
	case in.clicked(m.nextBtn):
		v.Next()
	case m.kind == modalCase && in.clicked(m.orderBtn):
		return modalOrder
	case !in.clicked(m.box):
		return modalClose
	}
	return modalStay
}

// orderText is the prefilled message for the slide currently shown.
func (m *modal) orderText() string {
	return content.OrderMessage(m.caseName, m.carousel.v.Index()+1)
}

// destroy releases the dots subscription and the viewer. Safe to call twice.
func (m *modal) destroy() {
	if m.cancelDots != nil {
		m.cancelDots()
		m.cancelDots = nil
	}
	m.carousel.destroy()
}
