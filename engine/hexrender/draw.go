package hexrender

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ksks2012/hexfield/engine/grid"
)

// Palette maps terrain and overlay states to colors. It is passed in at
// construction instead of read from a global theme.
type Palette struct {
	Terrain    map[grid.TerrainType]color.RGBA
	Background color.RGBA
	GridLine   color.RGBA
	Selection  color.RGBA
	Hover      color.RGBA
	Unit       color.RGBA
	Formation  color.RGBA
}

// DefaultPalette returns the stock editor colors.
func DefaultPalette() Palette {
	return Palette{
		Terrain: map[grid.TerrainType]color.RGBA{
			grid.TerrainPlain:         {126, 166, 92, 255},
			grid.TerrainForest:        {52, 104, 58, 255},
			grid.TerrainMountain:      {134, 126, 116, 255},
			grid.TerrainRiver:         {62, 110, 176, 255},
			grid.TerrainSwamp:         {94, 110, 74, 255},
			grid.TerrainCityWall:      {160, 154, 140, 255},
			grid.TerrainRoad:          {170, 148, 104, 255},
			grid.TerrainBridge:        {140, 108, 70, 255},
			grid.TerrainCamp:          {176, 120, 80, 255},
			grid.TerrainFortification: {120, 110, 96, 255},
		},
		Background: color.RGBA{24, 26, 34, 255},
		GridLine:   color.RGBA{0, 0, 0, 90},
		Selection:  color.RGBA{255, 220, 80, 255},
		Hover:      color.RGBA{255, 255, 255, 70},
		Unit:       color.RGBA{220, 60, 60, 255},
		Formation:  color.RGBA{90, 170, 255, 120},
	}
}

var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

// hexCorner returns corner i (0..5) of the hex centered at (cx, cy).
// Corner angles match the ToScreen projection so adjacent cells tile.
func hexCorner(cx, cy, size float64, i int) (float64, float64) {
	angle := math.Pi / 180 * (60*float64(i) - 30)
	return cx + size*math.Cos(angle), cy + size*math.Sin(angle)
}

// fillHex draws a filled hexagon as a triangle fan over the shared
// white image (tile fills are too numerous for per-call paths).
func fillHex(dst *ebiten.Image, cx, cy, size float64, clr color.RGBA) {
	var vs [7]ebiten.Vertex
	cr := float32(clr.R) / 255
	cg := float32(clr.G) / 255
	cb := float32(clr.B) / 255
	ca := float32(clr.A) / 255
	vs[0] = ebiten.Vertex{DstX: float32(cx), DstY: float32(cy), SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca}
	for i := 0; i < 6; i++ {
		x, y := hexCorner(cx, cy, size, i)
		vs[i+1] = ebiten.Vertex{DstX: float32(x), DstY: float32(y), SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca}
	}
	is := make([]uint16, 0, 18)
	for i := 0; i < 6; i++ {
		is = append(is, 0, uint16(i+1), uint16((i+1)%6+1))
	}
	dst.DrawTriangles(vs[:], is, whiteImage, &ebiten.DrawTrianglesOptions{})
}

// strokeHex outlines a hexagon.
func strokeHex(dst *ebiten.Image, cx, cy, size float64, width float32, clr color.RGBA) {
	for i := 0; i < 6; i++ {
		x0, y0 := hexCorner(cx, cy, size, i)
		x1, y1 := hexCorner(cx, cy, size, (i+1)%6)
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
	}
}

// shade darkens a color by elevation level.
func shade(clr color.RGBA, height int) color.RGBA {
	f := 1.0 - 0.12*float64(height)
	return color.RGBA{
		R: uint8(float64(clr.R) * f),
		G: uint8(float64(clr.G) * f),
		B: uint8(float64(clr.B) * f),
		A: clr.A,
	}
}

// Draw renders every visible tile plus overlays onto dst. dst is the
// renderer's own sub-image; callers clip to the widget bounds.
func (r *Renderer) Draw(dst *ebiten.Image) {
	dst.Fill(r.Palette.Background)
	size := r.HexSize * r.Zoom

	for _, c := range r.VisibleTiles() {
		t := r.Grid.At(c)
		if t == nil {
			continue
		}
		sx, sy := r.HexToScreen(c)
		fillHex(dst, sx, sy, size, shade(r.Palette.Terrain[t.Terrain], t.Height))

		if t.Highlighted {
			h := t.Highlight
			fillHex(dst, sx, sy, size, color.RGBA{h.R, h.G, h.B, h.A})
		}
		if hl, ok := r.Highlights[c]; ok {
			fillHex(dst, sx, sy, size, color.RGBA{hl.R, hl.G, hl.B, hl.A})
		}
		if t.InFormation {
			strokeHex(dst, sx, sy, size*0.85, 2, r.Palette.Formation)
		}
		if r.ShowGrid {
			strokeHex(dst, sx, sy, size, 1, r.Palette.GridLine)
		}
		if t.Occupied() {
			vector.DrawFilledCircle(dst, float32(sx), float32(sy), float32(size*0.35), r.Palette.Unit, true)
			ebitenutil.DebugPrintAt(dst, t.Unit, int(sx)-6, int(sy)-6)
		}
		if r.ShowCoords {
			ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%d,%d", t.Coord.X, t.Coord.Z), int(sx)-10, int(sy)+2)
		}
	}

	if r.Hovered != nil {
		sx, sy := r.HexToScreen(*r.Hovered)
		fillHex(dst, sx, sy, size, r.Palette.Hover)
	}
	if r.Selected != nil {
		sx, sy := r.HexToScreen(*r.Selected)
		sel := r.Palette.Selection
		sel.A = r.pulse.alpha()
		strokeHex(dst, sx, sy, size, 3, sel)
	}
}
