// Package hexrender draws a hex grid and owns the view state (pan,
// zoom, selection) used to move between coordinate spaces.
//
// Three spaces are involved:
//
//	world:  hex projected at the grid origin, pan/zoom independent
//	screen: world transformed by the view (zoom then pan), renderer-local
//	window: screen plus the renderer's own offset within its parent
package hexrender

import (
	"math"

	"github.com/ksks2012/hexfield/engine/grid"
	"github.com/ksks2012/hexfield/engine/hex"
)

const (
	MinZoom = 0.1
	MaxZoom = 5.0

	// ZoomStep is the multiplicative wheel step.
	ZoomStep = 1.1
)

// MouseButton identifies a pointer button for input dispatch.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
)

// Renderer owns the view into a Grid and converts between hex, world,
// screen, and window coordinates.
type Renderer struct {
	Grid *grid.Grid

	// Widget bounds within the parent window.
	X, Y          int
	Width, Height int

	HexSize float64

	PanX, PanY float64
	Zoom       float64

	Selected *hex.Coordinate
	Hovered  *hex.Coordinate

	// Highlights are renderer-side tints (movement range, attack range)
	// layered over any tile-side highlight.
	Highlights map[hex.Coordinate]grid.HighlightColor

	Palette Palette

	ShowGrid   bool
	ShowCoords bool

	dragging   bool
	lastDragX  int
	lastDragY  int
	pulse      *pulseAnim
	scroll     *scrollAnim
	OnSelected func(hex.Coordinate, bool)
}

// New creates a renderer over g with the given widget bounds.
func New(g *grid.Grid, x, y, w, h int, palette Palette) *Renderer {
	return &Renderer{
		Grid:       g,
		X:          x,
		Y:          y,
		Width:      w,
		Height:     h,
		HexSize:    24,
		Zoom:       1.0,
		Highlights: make(map[hex.Coordinate]grid.HighlightColor),
		Palette:    palette,
		ShowGrid:   true,
		pulse:      newPulseAnim(),
	}
}

// --- Coordinate spaces ---

// applyView maps a world point to renderer-local screen space. Its
// inverse is reverseView; the two are kept adjacent so the round-trip
// stays exact by construction.
func (r *Renderer) applyView(wx, wy float64) (sx, sy float64) {
	return wx*r.Zoom + r.PanX, wy*r.Zoom + r.PanY
}

// reverseView maps a renderer-local screen point back to world space.
func (r *Renderer) reverseView(sx, sy float64) (wx, wy float64) {
	return (sx - r.PanX) / r.Zoom, (sy - r.PanY) / r.Zoom
}

// HexToWorld projects a cell to pan/zoom-independent world space.
func (r *Renderer) HexToWorld(c hex.Coordinate) (float64, float64) {
	return c.ToScreen(r.HexSize)
}

// HexToScreen projects a cell to renderer-local screen space.
func (r *Renderer) HexToScreen(c hex.Coordinate) (float64, float64) {
	wx, wy := r.HexToWorld(c)
	return r.applyView(wx, wy)
}

// HexToWindow projects a cell to absolute window space.
func (r *Renderer) HexToWindow(c hex.Coordinate) (float64, float64) {
	sx, sy := r.HexToScreen(c)
	return sx + float64(r.X), sy + float64(r.Y)
}

// ScreenToHex converts a renderer-local point (the caller subtracts the
// widget offset) to the cell under it.
func (r *Renderer) ScreenToHex(relX, relY float64) hex.Coordinate {
	wx, wy := r.reverseView(relX, relY)
	return hex.FromScreen(wx, wy, r.HexSize)
}

// WindowToHex converts an absolute window point to the cell under it.
func (r *Renderer) WindowToHex(wx, wy int) hex.Coordinate {
	return r.ScreenToHex(float64(wx-r.X), float64(wy-r.Y))
}

// CenterOn pans so that c's world position lands on the renderer's
// visual center at the current zoom.
func (r *Renderer) CenterOn(c hex.Coordinate) {
	wx, wy := r.HexToWorld(c)
	r.PanX = float64(r.Width)/2 - wx*r.Zoom
	r.PanY = float64(r.Height)/2 - wy*r.Zoom
}

// ResetView restores zoom 1 and centers the grid's offset rectangle.
func (r *Renderer) ResetView() {
	r.Zoom = 1.0
	r.CenterOn(hex.FromOffset(r.Grid.Width/2, r.Grid.Height/2))
}

// SetZoom clamps and applies zoom. Zoom pivots at the world origin;
// callers wanting a cursor-centered zoom recompute pan themselves.
func (r *Renderer) SetZoom(z float64) {
	r.Zoom = math.Max(MinZoom, math.Min(MaxZoom, z))
}

// --- Input dispatch ---

// MouseDown dispatches a pointer press at window coordinates.
func (r *Renderer) MouseDown(btn MouseButton, wx, wy int) {
	switch btn {
	case ButtonLeft:
		c := r.WindowToHex(wx, wy)
		if r.Grid.Contains(c) {
			sel := c
			r.Selected = &sel
			r.pulse.restart()
			if r.OnSelected != nil {
				r.OnSelected(c, true)
			}
		} else {
			r.Selected = nil
			if r.OnSelected != nil {
				r.OnSelected(hex.Coordinate{}, false)
			}
		}
	case ButtonMiddle:
		r.dragging = true
		r.lastDragX = wx
		r.lastDragY = wy
	}
}

// MouseUp ends a middle-drag; further motion no longer pans.
func (r *Renderer) MouseUp(btn MouseButton) {
	if btn == ButtonMiddle {
		r.dragging = false
	}
}

// MouseMove updates the hovered cell and advances an active pan drag.
func (r *Renderer) MouseMove(wx, wy int) {
	c := r.WindowToHex(wx, wy)
	if r.Grid.Contains(c) {
		hov := c
		r.Hovered = &hov
	} else {
		r.Hovered = nil
	}
	if r.dragging {
		r.PanX += float64(wx - r.lastDragX)
		r.PanY += float64(wy - r.lastDragY)
		r.lastDragX = wx
		r.lastDragY = wy
	}
}

// Scroll applies a wheel zoom step: up multiplies zoom by 1.1, down by
// 0.9, clamped to [MinZoom, MaxZoom].
func (r *Renderer) Scroll(dy float64) {
	if dy > 0 {
		r.SetZoom(r.Zoom * ZoomStep)
	} else if dy < 0 {
		r.SetZoom(r.Zoom * 0.9)
	}
}

// Dragging reports whether a middle-button pan is in progress.
func (r *Renderer) Dragging() bool { return r.dragging }

// --- Visibility ---

// VisibleTiles returns the cells whose screen position falls inside the
// renderer bounds. When culling yields nothing for a non-empty grid the
// neighborhood around the origin is returned instead, so a degenerate
// view never renders a blank widget.
func (r *Renderer) VisibleTiles() []hex.Coordinate {
	var out []hex.Coordinate
	for c := range r.Grid.Tiles {
		sx, sy := r.HexToScreen(c)
		if sx >= 0 && sx <= float64(r.Width) && sy >= 0 && sy <= float64(r.Height) {
			out = append(out, c)
		}
	}
	if len(out) == 0 && len(r.Grid.Tiles) > 0 {
		for _, c := range (hex.Coordinate{}).CoordinatesInRange(3) {
			if r.Grid.Contains(c) {
				out = append(out, c)
			}
		}
	}
	return out
}
