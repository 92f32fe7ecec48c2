package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LayoutStrategy positions a panel's children within its bounds. A
// panel holds one strategy instead of subclassing container types.
type LayoutStrategy interface {
	Arrange(x, y, w, h int, children []Widget)
}

// VerticalLayout stacks children top to bottom with fixed spacing.
type VerticalLayout struct {
	Padding int
	Spacing int
}

func (v VerticalLayout) Arrange(x, y, w, h int, children []Widget) {
	cy := y + v.Padding
	for _, c := range children {
		_, _, cw, ch := c.Bounds()
		if cw > w-2*v.Padding {
			cw = w - 2*v.Padding
		}
		c.SetBounds(x+v.Padding, cy, cw, ch)
		cy += ch + v.Spacing
	}
}

// HorizontalLayout places children left to right with fixed spacing.
type HorizontalLayout struct {
	Padding int
	Spacing int
}

func (hl HorizontalLayout) Arrange(x, y, w, h int, children []Widget) {
	cx := x + hl.Padding
	for _, c := range children {
		_, _, cw, ch := c.Bounds()
		c.SetBounds(cx, y+hl.Padding, cw, ch)
		cx += cw + hl.Spacing
	}
}

// Panel is a themed container that arranges its children with a
// pluggable layout strategy.
type Panel struct {
	Base
	Theme    Theme
	Strategy LayoutStrategy
	children []Widget
}

func NewPanel(theme Theme, strategy LayoutStrategy) *Panel {
	return &Panel{Theme: theme, Strategy: strategy}
}

// Add appends a child widget.
func (p *Panel) Add(w Widget) {
	p.children = append(p.children, w)
}

func (p *Panel) Layout() {
	if p.Strategy != nil {
		p.Strategy.Arrange(p.X, p.Y, p.W, p.H, p.children)
	}
	for _, c := range p.children {
		c.Layout()
	}
}

func (p *Panel) Render(dst *ebiten.Image) {
	if p.Hidden {
		return
	}
	vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), p.Theme.PanelBG, false)
	for _, c := range p.children {
		c.Render(dst)
	}
}

// HandleEvent offers the event to children in reverse draw order so the
// topmost widget wins. Pointer events inside the panel are consumed
// even when no child takes them, keeping clicks from falling through to
// whatever sits beneath the panel.
func (p *Panel) HandleEvent(ev Event) bool {
	if p.Hidden {
		return false
	}
	for i := len(p.children) - 1; i >= 0; i-- {
		if p.children[i].HandleEvent(ev) {
			return true
		}
	}
	if ev.Type == PointerDown && p.Contains(ev.X, ev.Y) {
		return true
	}
	return false
}
