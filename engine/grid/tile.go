package grid

import (
	"github.com/google/uuid"

	"github.com/ksks2012/hexfield/engine/hex"
)

// TerrainType defines the terrain of a tile
type TerrainType uint8

const (
	TerrainPlain TerrainType = iota
	TerrainForest
	TerrainMountain
	TerrainRiver
	TerrainSwamp
	TerrainCityWall
	TerrainRoad
	TerrainBridge
	TerrainCamp
	TerrainFortification
	terrainCount
)

var terrainNames = [...]string{
	"Plain", "Forest", "Mountain", "River", "Swamp",
	"CityWall", "Road", "Bridge", "Camp", "Fortification",
}

func (t TerrainType) String() string {
	if int(t) < len(terrainNames) {
		return terrainNames[t]
	}
	return "Unknown"
}

// Props is the gameplay attribute bundle of a tile. Except for the
// destructible-structure lifecycle (BuildBridge, BuildFortification,
// Destroy), Props always equals the defaults for the tile's terrain.
type Props struct {
	MovementCost   int  `json:"movementCost"`
	Passable       bool `json:"passable"`
	Buildable      bool `json:"buildable"`
	Hidden         bool `json:"hidden"` // blocks line of sight
	SupplyPoint    bool `json:"supplyPoint"`
	Destructible   bool `json:"destructible"`
	DefensiveBonus int  `json:"defensiveBonus"`
	EvasionBonus   int  `json:"evasionBonus"`
	RangedPenalty  int  `json:"rangedPenalty"`
}

// defaultProps is the single source of per-terrain attributes.
func defaultProps(t TerrainType) Props {
	switch t {
	case TerrainForest:
		return Props{MovementCost: 2, Passable: true, Hidden: true, EvasionBonus: 20, RangedPenalty: 10}
	case TerrainMountain:
		return Props{MovementCost: 3, Passable: true, Hidden: true, DefensiveBonus: 30}
	case TerrainRiver:
		return Props{MovementCost: 99}
	case TerrainSwamp:
		return Props{MovementCost: 3, Passable: true, EvasionBonus: -10}
	case TerrainCityWall:
		return Props{MovementCost: 99, Destructible: true, DefensiveBonus: 50}
	case TerrainRoad:
		return Props{MovementCost: 1, Passable: true, Buildable: true}
	case TerrainBridge:
		return Props{MovementCost: 1, Passable: true, Destructible: true}
	case TerrainCamp:
		return Props{MovementCost: 1, Passable: true, SupplyPoint: true, DefensiveBonus: 10}
	case TerrainFortification:
		return Props{MovementCost: 2, Passable: true, Destructible: true, DefensiveBonus: 40}
	default: // Plain
		return Props{MovementCost: 1, Passable: true, Buildable: true}
	}
}

// TriggerEvent is a scripted one-shot event attached to a tile.
type TriggerEvent struct {
	ID        string            `json:"id"`
	Condition string            `json:"condition"`
	Action    string            `json:"action"`
	Params    map[string]string `json:"params,omitempty"`
	Triggered bool              `json:"triggered"`
}

// HighlightColor is an RGBA highlight tint.
type HighlightColor struct {
	R, G, B, A uint8
}

// Tile is a single cell of the grid. Tiles are owned by their Grid and
// addressed by cube coordinate.
type Tile struct {
	Coord       hex.Coordinate
	Terrain     TerrainType
	Height      int // elevation level (0-3)
	Props       Props
	Unit        string // occupant unit id, "" when empty
	Highlighted bool
	Highlight   HighlightColor
	InFormation bool
	Events      []TriggerEvent
}

// NewTile creates a tile with terrain defaults applied.
func NewTile(c hex.Coordinate, t TerrainType) *Tile {
	return &Tile{Coord: c, Terrain: t, Props: defaultProps(t)}
}

// SetTerrain changes the terrain and resets Props to the terrain defaults.
func (t *Tile) SetTerrain(terrain TerrainType) {
	t.Terrain = terrain
	t.Props = defaultProps(terrain)
}

// SetHeight sets the elevation, clamped to [0, 3].
func (t *Tile) SetHeight(h int) {
	if h < 0 {
		h = 0
	}
	if h > 3 {
		h = 3
	}
	t.Height = h
}

// Occupied reports whether a unit stands on the tile.
func (t *Tile) Occupied() bool { return t.Unit != "" }

// CanBuild reports whether a structure can be erected here.
func (t *Tile) CanBuild() bool { return t.Props.Buildable && !t.Occupied() }

// BlocksLineOfSight reports whether the tile hides cells behind it.
func (t *Tile) BlocksLineOfSight() bool { return t.Props.Hidden }

// BuildBridge turns a River tile into a Bridge. Returns false on any
// other terrain.
func (t *Tile) BuildBridge() bool {
	if t.Terrain != TerrainRiver {
		return false
	}
	t.SetTerrain(TerrainBridge)
	return true
}

// BuildFortification erects a fortification on a buildable, unoccupied
// tile. The result is no longer buildable, so fortifying twice fails.
func (t *Tile) BuildFortification() bool {
	if !t.CanBuild() {
		return false
	}
	t.SetTerrain(TerrainFortification)
	return true
}

// Destroy tears down a destructible structure: Bridge reverts to River,
// Fortification and CityWall to Plain. No-op otherwise.
func (t *Tile) Destroy() bool {
	if !t.Props.Destructible {
		return false
	}
	switch t.Terrain {
	case TerrainBridge:
		t.SetTerrain(TerrainRiver)
	case TerrainFortification, TerrainCityWall:
		t.SetTerrain(TerrainPlain)
	default:
		return false
	}
	return true
}

// AddEvent attaches a trigger event, generating an id when none is given.
func (t *Tile) AddEvent(ev TriggerEvent) string {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	t.Events = append(t.Events, ev)
	return ev.ID
}

// TriggeredEvents returns the events fired by the given condition and
// context, marking each as triggered. An event fires when its condition
// matches and every declared parameter equals the context value. Events
// fire at most once.
func (t *Tile) TriggeredEvents(condition string, ctx map[string]string) []TriggerEvent {
	var fired []TriggerEvent
	for i := range t.Events {
		ev := &t.Events[i]
		if ev.Triggered || ev.Condition != condition {
			continue
		}
		match := true
		for k, v := range ev.Params {
			if ctx[k] != v {
				match = false
				break
			}
		}
		if match {
			ev.Triggered = true
			fired = append(fired, *ev)
		}
	}
	return fired
}
