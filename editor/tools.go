package editor

import (
	"fmt"

	"github.com/ksks2012/hexfield/engine/grid"
	"github.com/ksks2012/hexfield/engine/hex"
)

// HandleClick routes a primary click at cell c to the active tool.
// shift extends the multi-selection for the Select tool.
func (e *Editor) HandleClick(c hex.Coordinate, shift bool) {
	if !e.Grid.Contains(c) {
		return
	}
	switch e.Tool {
	case ToolSelect:
		e.selectTile(c, shift)
	case ToolPaint:
		e.Paint(c)
	case ToolFill:
		e.Fill(c)
	case ToolHeight:
		e.PaintHeight(c)
	case ToolUnitPlace:
		e.PlaceOrRemoveUnit(c)
	case ToolEventEdit:
		e.selectTile(c, false)
	case ToolFormation:
		e.toggleFormation(c)
	case ToolMeasure:
		e.measure(c)
	}
}

func (e *Editor) selectTile(c hex.Coordinate, extend bool) {
	if extend {
		for _, s := range e.Selection {
			if s == c {
				return
			}
		}
		e.Selection = append(e.Selection, c)
		return
	}
	e.Selection = []hex.Coordinate{c}
	sel := c
	e.Primary = &sel
	if e.OnTileSelected != nil {
		e.OnTileSelected(c)
	}
}

// brushArea returns the cells within hex distance BrushSize-1 of c.
func (e *Editor) brushArea(c hex.Coordinate) []hex.Coordinate {
	r := e.BrushSize - 1
	if r < 0 {
		r = 0
	}
	return c.CoordinatesInRange(r)
}

// Paint applies the selected terrain over the brush area. Tiles already
// holding that terrain are skipped so no spurious undo entries appear.
func (e *Editor) Paint(c hex.Coordinate) {
	var changes []TileChange
	for _, bc := range e.brushArea(c) {
		t := e.Grid.At(bc)
		if t == nil || t.Terrain == e.Terrain {
			continue
		}
		before := snapshot(t)
		t.SetTerrain(e.Terrain)
		changes = append(changes, TileChange{Coord: bc, Before: before, After: snapshot(t)})
	}
	if len(changes) > 0 {
		e.addToHistory(Action{
			Tool:        ToolPaint,
			Changes:     changes,
			Description: fmt.Sprintf("Paint %s ×%d", e.Terrain, len(changes)),
		})
	}
}

// Fill flood-fills the 6-connected region of c's terrain with the
// selected terrain, recorded as a single compound action.
func (e *Editor) Fill(c hex.Coordinate) {
	start := e.Grid.At(c)
	if start == nil || start.Terrain == e.Terrain {
		return
	}
	from := start.Terrain

	var changes []TileChange
	visited := map[hex.Coordinate]bool{c: true}
	stack := []hex.Coordinate{c}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		t := e.Grid.At(cur)
		if t == nil || t.Terrain != from {
			continue
		}
		before := snapshot(t)
		t.SetTerrain(e.Terrain)
		changes = append(changes, TileChange{Coord: cur, Before: before, After: snapshot(t)})
		for _, n := range cur.Neighbors() {
			if !visited[n] && e.Grid.Contains(n) {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	if len(changes) > 0 {
		e.addToHistory(Action{
			Tool:        ToolFill,
			Changes:     changes,
			Description: fmt.Sprintf("Fill %s→%s ×%d", from, e.Terrain, len(changes)),
		})
	}
}

// PaintHeight assigns the selected height over the brush area.
func (e *Editor) PaintHeight(c hex.Coordinate) {
	h := e.HeightValue
	if h < 0 {
		h = 0
	}
	if h > 3 {
		h = 3
	}
	var changes []TileChange
	for _, bc := range e.brushArea(c) {
		t := e.Grid.At(bc)
		if t == nil || t.Height == h {
			continue
		}
		before := snapshot(t)
		t.SetHeight(h)
		changes = append(changes, TileChange{Coord: bc, Before: before, After: snapshot(t)})
	}
	if len(changes) > 0 {
		e.addToHistory(Action{
			Tool:        ToolHeight,
			Changes:     changes,
			Description: fmt.Sprintf("Height %d ×%d", h, len(changes)),
		})
	}
}

// PlaceOrRemoveUnit removes the occupant of an occupied tile, otherwise
// places the selected unit type. Placement goes through Grid.PlaceUnit,
// which validates passability.
func (e *Editor) PlaceOrRemoveUnit(c hex.Coordinate) {
	t := e.Grid.At(c)
	if t == nil {
		return
	}
	before := snapshot(t)
	var desc string
	if t.Occupied() {
		removed := e.Grid.RemoveUnit(c)
		desc = fmt.Sprintf("Remove unit %s", removed)
	} else {
		if !e.Grid.PlaceUnit(c, e.UnitType) {
			return
		}
		desc = fmt.Sprintf("Place unit %s", e.UnitType)
	}
	e.addToHistory(Action{
		Tool:        ToolUnitPlace,
		Changes:     []TileChange{{Coord: c, Before: before, After: snapshot(t)}},
		Description: desc,
	})
}

func (e *Editor) toggleFormation(c hex.Coordinate) {
	if t := e.Grid.At(c); t != nil {
		t.InFormation = !t.InFormation
	}
}

func (e *Editor) measure(c hex.Coordinate) {
	if e.Primary == nil {
		sel := c
		e.Primary = &sel
		e.Measure = nil
		return
	}
	from := *e.Primary
	e.Measure = &MeasureResult{
		From:     from,
		To:       c,
		Distance: from.DistanceTo(c),
		Path:     e.Grid.FindPath(from, c, nil),
	}
	e.Primary = nil
}

// --- Structures ---

// BuildBridge, BuildFortification, and DestroyStructure wrap the tile
// structure lifecycle with undo records, since these are the only
// mutations that make Props deviate from terrain defaults.

func (e *Editor) BuildBridge(c hex.Coordinate) bool {
	return e.structureOp(c, "Build bridge", (*grid.Tile).BuildBridge)
}

func (e *Editor) BuildFortification(c hex.Coordinate) bool {
	return e.structureOp(c, "Build fortification", (*grid.Tile).BuildFortification)
}

func (e *Editor) DestroyStructure(c hex.Coordinate) bool {
	return e.structureOp(c, "Destroy structure", (*grid.Tile).Destroy)
}

func (e *Editor) structureOp(c hex.Coordinate, desc string, op func(*grid.Tile) bool) bool {
	t := e.Grid.At(c)
	if t == nil {
		return false
	}
	before := snapshot(t)
	if !op(t) {
		return false
	}
	e.addToHistory(Action{
		Tool:        e.Tool,
		Changes:     []TileChange{{Coord: c, Before: before, After: snapshot(t)}},
		Description: desc,
	})
	return true
}

// --- Clipboard ---

// clipEntry stores one copied tile relative to the copy anchor.
type clipEntry struct {
	Offset  hex.Coordinate
	Terrain grid.TerrainType
	Height  int
	Unit    string
	Props   grid.Props
}

// Copy captures the current selection relative to the primary cell (or
// the first selected cell when no primary is set).
func (e *Editor) Copy() int {
	if len(e.Selection) == 0 {
		return 0
	}
	anchor := e.Selection[0]
	if e.Primary != nil {
		anchor = *e.Primary
	}
	e.clipboard = e.clipboard[:0]
	for _, c := range e.Selection {
		t := e.Grid.At(c)
		if t == nil {
			continue
		}
		e.clipboard = append(e.clipboard, clipEntry{
			Offset:  c.Sub(anchor),
			Terrain: t.Terrain,
			Height:  t.Height,
			Unit:    t.Unit,
			Props:   t.Props,
		})
	}
	return len(e.clipboard)
}

// Paste applies the clipboard at a new anchor as one compound action.
// Entries landing outside the grid are dropped.
func (e *Editor) Paste(anchor hex.Coordinate) {
	var changes []TileChange
	for _, ce := range e.clipboard {
		c := anchor.Add(ce.Offset)
		t := e.Grid.At(c)
		if t == nil {
			continue
		}
		before := snapshot(t)
		t.Terrain = ce.Terrain
		t.Height = ce.Height
		t.Unit = ce.Unit
		t.Props = ce.Props
		changes = append(changes, TileChange{Coord: c, Before: before, After: snapshot(t)})
	}
	if len(changes) > 0 {
		e.addToHistory(Action{
			Tool:        ToolSelect,
			Changes:     changes,
			Description: fmt.Sprintf("Paste ×%d", len(changes)),
		})
	}
}

// ClipboardLen returns the number of copied tiles.
func (e *Editor) ClipboardLen() int { return len(e.clipboard) }
