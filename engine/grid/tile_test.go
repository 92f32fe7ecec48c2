package grid

import (
	"testing"

	"github.com/ksks2012/hexfield/engine/hex"
)

func TestTerrainDefaults(t *testing.T) {
	cases := []struct {
		terrain TerrainType
		cost    int
		pass    bool
		hidden  bool
	}{
		{TerrainPlain, 1, true, false},
		{TerrainForest, 2, true, true},
		{TerrainMountain, 3, true, true},
		{TerrainRiver, 99, false, false},
		{TerrainCityWall, 99, false, false},
		{TerrainRoad, 1, true, false},
	}
	for _, c := range cases {
		p := defaultProps(c.terrain)
		if p.MovementCost != c.cost {
			t.Errorf("%s: cost %d, want %d", c.terrain, p.MovementCost, c.cost)
		}
		if p.Passable != c.pass {
			t.Errorf("%s: passable %v, want %v", c.terrain, p.Passable, c.pass)
		}
		if p.Hidden != c.hidden {
			t.Errorf("%s: hidden %v, want %v", c.terrain, p.Hidden, c.hidden)
		}
	}
	if p := defaultProps(TerrainForest); p.EvasionBonus != 20 || p.RangedPenalty != 10 {
		t.Errorf("Forest bonuses = %+v", p)
	}
	if p := defaultProps(TerrainCityWall); !p.Destructible || p.DefensiveBonus != 50 {
		t.Errorf("CityWall props = %+v", p)
	}
}

func TestSetTerrainResetsProps(t *testing.T) {
	tile := NewTile(hex.Coordinate{}, TerrainPlain)
	tile.Props.MovementCost = 42
	tile.SetTerrain(TerrainForest)
	if tile.Props != defaultProps(TerrainForest) {
		t.Errorf("Props not reset to terrain defaults: %+v", tile.Props)
	}
}

func TestSetHeightClamps(t *testing.T) {
	tile := NewTile(hex.Coordinate{}, TerrainPlain)
	tile.SetHeight(7)
	if tile.Height != 3 {
		t.Errorf("height = %d, want clamp to 3", tile.Height)
	}
	tile.SetHeight(-2)
	if tile.Height != 0 {
		t.Errorf("height = %d, want clamp to 0", tile.Height)
	}
}

func TestBuildBridge(t *testing.T) {
	tile := NewTile(hex.Coordinate{}, TerrainRiver)
	if !tile.BuildBridge() {
		t.Fatal("BuildBridge on River should succeed")
	}
	if tile.Terrain != TerrainBridge || !tile.Props.Passable {
		t.Errorf("bridge tile = %v %+v", tile.Terrain, tile.Props)
	}
	plain := NewTile(hex.Coordinate{}, TerrainPlain)
	if plain.BuildBridge() {
		t.Error("BuildBridge on Plain should fail")
	}
}

func TestBuildFortificationIdempotence(t *testing.T) {
	tile := NewTile(hex.Coordinate{}, TerrainPlain)
	if !tile.BuildFortification() {
		t.Fatal("first fortification should succeed")
	}
	if tile.BuildFortification() {
		t.Error("second fortification should fail: tile no longer buildable")
	}
	occupied := NewTile(hex.Coordinate{}, TerrainPlain)
	occupied.Unit = "legion-1"
	if occupied.BuildFortification() {
		t.Error("fortifying an occupied tile should fail")
	}
}

func TestDestroyLifecycle(t *testing.T) {
	bridge := NewTile(hex.Coordinate{}, TerrainRiver)
	bridge.BuildBridge()
	if !bridge.Destroy() {
		t.Fatal("destroying a bridge should succeed")
	}
	if bridge.Terrain != TerrainRiver {
		t.Errorf("destroyed bridge = %v, want River", bridge.Terrain)
	}

	wall := NewTile(hex.Coordinate{}, TerrainCityWall)
	if !wall.Destroy() {
		t.Fatal("destroying a city wall should succeed")
	}
	if wall.Terrain != TerrainPlain {
		t.Errorf("destroyed wall = %v, want Plain", wall.Terrain)
	}

	forest := NewTile(hex.Coordinate{}, TerrainForest)
	if forest.Destroy() {
		t.Error("destroying non-destructible terrain should fail")
	}
}

func TestTriggeredEventsOneShot(t *testing.T) {
	tile := NewTile(hex.Coordinate{}, TerrainPlain)
	id := tile.AddEvent(TriggerEvent{
		Condition: "enter",
		Action:    "ambush",
		Params:    map[string]string{"unit": "cavalry"},
	})
	if id == "" {
		t.Fatal("AddEvent should assign an id")
	}

	// Wrong parameter value: no fire.
	if got := tile.TriggeredEvents("enter", map[string]string{"unit": "infantry"}); len(got) != 0 {
		t.Fatalf("event fired with mismatched params: %v", got)
	}
	// Matching condition and params: fires once.
	got := tile.TriggeredEvents("enter", map[string]string{"unit": "cavalry", "turn": "3"})
	if len(got) != 1 || got[0].Action != "ambush" {
		t.Fatalf("expected one fired event, got %v", got)
	}
	// Never re-fires.
	if got := tile.TriggeredEvents("enter", map[string]string{"unit": "cavalry"}); len(got) != 0 {
		t.Fatalf("one-shot event fired twice: %v", got)
	}
}
