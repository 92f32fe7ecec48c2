package grid

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ksks2012/hexfield/engine/hex"
)

// Grid owns the tile collection of a map, keyed by cube coordinate.
// Width and Height describe the offset rectangle used for initial
// population; afterwards validity is simply membership in the tile map.
type Grid struct {
	Width  int
	Height int
	Tiles  map[hex.Coordinate]*Tile
}

// New creates a width×height grid of Plain tiles populated through the
// odd-row offset mapping.
func New(width, height int) *Grid {
	g := &Grid{Width: width, Height: height}
	g.populate()
	return g
}

func (g *Grid) populate() {
	g.Tiles = make(map[hex.Coordinate]*Tile, g.Width*g.Height)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			c := hex.FromOffset(col, row)
			g.Tiles[c] = NewTile(c, TerrainPlain)
		}
	}
}

// At returns the tile at c, or nil for coordinates outside the grid.
func (g *Grid) At(c hex.Coordinate) *Tile {
	return g.Tiles[c]
}

// Contains reports whether c addresses a tile of this grid.
func (g *Grid) Contains(c hex.Coordinate) bool {
	_, ok := g.Tiles[c]
	return ok
}

// IsPassable reports whether the tile at c exists, is passable terrain,
// and is unoccupied.
func (g *Grid) IsPassable(c hex.Coordinate) bool {
	t := g.Tiles[c]
	return t != nil && t.Props.Passable && !t.Occupied()
}

// SetTerrain paints terrain at c. No-op outside the grid.
func (g *Grid) SetTerrain(c hex.Coordinate, terrain TerrainType) {
	if t := g.Tiles[c]; t != nil {
		t.SetTerrain(terrain)
	}
}

// Resize recreates the grid with new dimensions. All tiles are discarded.
func (g *Grid) Resize(width, height int) {
	g.Width = width
	g.Height = height
	g.populate()
}

// Clear resets every tile to Plain, keeping dimensions.
func (g *Grid) Clear() {
	g.populate()
}

// PlaceUnit puts a unit on a passable, vacant tile.
func (g *Grid) PlaceUnit(c hex.Coordinate, unitID string) bool {
	t := g.Tiles[c]
	if t == nil || !t.Props.Passable || t.Occupied() {
		return false
	}
	t.Unit = unitID
	return true
}

// RemoveUnit clears the occupant at c, returning its id.
func (g *Grid) RemoveUnit(c hex.Coordinate) string {
	t := g.Tiles[c]
	if t == nil {
		return ""
	}
	id := t.Unit
	t.Unit = ""
	return id
}

// MoveUnit relocates the occupant of from to a passable, vacant to.
func (g *Grid) MoveUnit(from, to hex.Coordinate) bool {
	src := g.Tiles[from]
	if src == nil || !src.Occupied() || !g.IsPassable(to) {
		return false
	}
	g.Tiles[to].Unit = src.Unit
	src.Unit = ""
	return true
}

// SetFormation marks the given cells as part of a formation.
func (g *Grid) SetFormation(cells []hex.Coordinate) {
	for _, c := range cells {
		if t := g.Tiles[c]; t != nil {
			t.InFormation = true
		}
	}
}

// ClearFormations removes formation membership everywhere.
func (g *Grid) ClearFormations() {
	for _, t := range g.Tiles {
		t.InFormation = false
	}
}

// SetHighlight tints the tile at c.
func (g *Grid) SetHighlight(c hex.Coordinate, col HighlightColor) {
	if t := g.Tiles[c]; t != nil {
		t.Highlighted = true
		t.Highlight = col
	}
}

// ClearHighlights removes all tile highlights.
func (g *Grid) ClearHighlights() {
	for _, t := range g.Tiles {
		t.Highlighted = false
	}
}

// --- Serialization ---

// tileDoc is the flat on-disk form of a tile.
type tileDoc struct {
	X              int    `json:"x"`
	Y              int    `json:"y"`
	Z              int    `json:"z"`
	Terrain        uint8  `json:"terrain"`
	Height         int    `json:"height"`
	Passable       bool   `json:"passable"`
	Buildable      bool   `json:"buildable"`
	Hidden         bool   `json:"hidden"`
	MovementCost   int    `json:"movementCost"`
	DefensiveBonus int    `json:"defensiveBonus"`
	SpecialTag     string `json:"specialTag,omitempty"`
	Unit           string `json:"unit,omitempty"`
}

type gridDoc struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Tiles  []tileDoc `json:"tiles"`
}

func specialTag(t *Tile) string {
	if t.Props.SupplyPoint {
		return "supply"
	}
	if t.Props.Destructible {
		return "destructible"
	}
	return ""
}

// ToJSON serializes the grid to its flat document form.
func (g *Grid) ToJSON() ([]byte, error) {
	doc := gridDoc{Width: g.Width, Height: g.Height, Tiles: make([]tileDoc, 0, len(g.Tiles))}
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			t := g.Tiles[hex.FromOffset(col, row)]
			if t == nil {
				continue
			}
			doc.Tiles = append(doc.Tiles, tileDoc{
				X: t.Coord.X, Y: t.Coord.Y, Z: t.Coord.Z,
				Terrain:        uint8(t.Terrain),
				Height:         t.Height,
				Passable:       t.Props.Passable,
				Buildable:      t.Props.Buildable,
				Hidden:         t.Props.Hidden,
				MovementCost:   t.Props.MovementCost,
				DefensiveBonus: t.Props.DefensiveBonus,
				SpecialTag:     specialTag(t),
				Unit:           t.Unit,
			})
		}
	}
	return json.MarshalIndent(doc, "", "  ")
}

// FromJSON rebuilds the grid from its document form. Tiles are recreated
// from the stored terrain (restoring the default property bundle) and
// then overridden with any persisted deviations, so destroyed or built
// structures round-trip.
func FromJSON(data []byte) (*Grid, error) {
	var doc gridDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse map: %w", err)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("parse map: invalid dimensions %dx%d", doc.Width, doc.Height)
	}
	g := &Grid{
		Width:  doc.Width,
		Height: doc.Height,
		Tiles:  make(map[hex.Coordinate]*Tile, len(doc.Tiles)),
	}
	for _, td := range doc.Tiles {
		c := hex.Coordinate{X: td.X, Y: td.Y, Z: td.Z}
		if !c.Valid() {
			return nil, fmt.Errorf("parse map: coordinate (%d,%d,%d) violates cube invariant", td.X, td.Y, td.Z)
		}
		if td.Terrain >= uint8(terrainCount) {
			return nil, fmt.Errorf("parse map: unknown terrain %d at (%d,%d,%d)", td.Terrain, td.X, td.Y, td.Z)
		}
		t := NewTile(c, TerrainType(td.Terrain))
		t.SetHeight(td.Height)
		t.Props.Passable = td.Passable
		t.Props.Buildable = td.Buildable
		t.Props.Hidden = td.Hidden
		t.Props.MovementCost = td.MovementCost
		t.Props.DefensiveBonus = td.DefensiveBonus
		t.Unit = td.Unit
		g.Tiles[c] = t
	}
	return g, nil
}

// SaveFile writes the grid document to path.
func (g *Grid) SaveFile(path string) error {
	data, err := g.ToJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write map: %w", err)
	}
	return nil
}

// LoadFile reads a grid document from path. Open and parse failures are
// distinguishable through error wrapping.
func LoadFile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	return FromJSON(data)
}
