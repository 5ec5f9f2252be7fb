package game

// panel is a laid-out rectangle that notifies subscribers when its width
// changes, playing the part of a resize observer for carousels.
type panel struct {
	r    rect
	subs map[int]func(float64)
	next int
}

func newPanel(r rect) *panel {
	return &panel{r: r, subs: map[int]func(float64){}}
}

func (p *panel) OnResize(fn func(width float64)) (cancel func()) {
	p.next++
	id := p.next
	p.subs[id] = fn
	return func() { delete(p.subs, id) }
}

func (p *panel) observers() int { return len(p.subs) }

func (p *panel) setRect(r rect) {
	prev := p.r.w
	p.r = r
	if prev == r.w {
		return
	}
	for _, fn := range p.subs {
		fn(r.w)
	}
}
