// Package ui is a minimal widget layer: an event/widget contract, a few
// concrete widgets, and containers with pluggable layout strategies.
// Theming is passed explicitly through constructors; there is no global
// theme registry.
package ui

import "github.com/hajimehoshi/ebiten/v2"

// EventType distinguishes the input events widgets receive.
type EventType int

const (
	PointerDown EventType = iota
	PointerUp
	PointerMove
	Wheel
	KeyPress
)

// Event is a dispatched input event carrying absolute window
// coordinates and button/modifier state.
type Event struct {
	Type    EventType
	X, Y    int
	Button  int // 0=left 1=middle 2=right
	ScrollY float64
	Key     ebiten.Key
	Shift   bool
	Ctrl    bool
}

// Widget is the render/layout/event contract shared by all widgets.
type Widget interface {
	Layout()
	Render(dst *ebiten.Image)
	// HandleEvent returns true when the widget consumed the event.
	HandleEvent(ev Event) bool
	Bounds() (x, y, w, h int)
	SetBounds(x, y, w, h int)
}

// Base carries position/size and is embedded by concrete widgets.
type Base struct {
	X, Y, W, H int
	Hidden     bool
}

func (b *Base) Layout() {}

func (b *Base) Bounds() (int, int, int, int) { return b.X, b.Y, b.W, b.H }
func (b *Base) SetBounds(x, y, w, h int) {
	b.X, b.Y, b.W, b.H = x, y, w, h
}

// Contains reports whether the window point lies inside the widget.
func (b *Base) Contains(px, py int) bool {
	return px >= b.X && px < b.X+b.W && py >= b.Y && py < b.Y+b.H
}
