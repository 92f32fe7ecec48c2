package grid

import (
	"testing"

	"github.com/ksks2012/hexfield/engine/hex"
)

func countTerrain(g *Grid, tt TerrainType) int {
	n := 0
	for _, t := range g.Tiles {
		if t.Terrain == tt {
			n++
		}
	}
	return n
}

func TestSetupCannae(t *testing.T) {
	g := New(16, 12)
	g.SetupCannae()
	if countTerrain(g, TerrainRiver) == 0 {
		t.Error("Cannae should have a river")
	}
	if countTerrain(g, TerrainBridge) != 2 {
		t.Errorf("Cannae crossing should be 2 bridge tiles, got %d", countTerrain(g, TerrainBridge))
	}
	if countTerrain(g, TerrainCamp) != 2 {
		t.Error("Cannae should have two camps")
	}
	// The bridge must connect the plain side to the far bank.
	if !g.FindPath(hex.FromOffset(1, 1), hex.FromOffset(g.Width/2, g.Height-1), nil).Found {
		t.Error("far bank should be reachable over the bridge")
	}
}

func TestSetupAlesia(t *testing.T) {
	g := New(15, 15)
	g.SetupAlesia()
	center := hex.FromOffset(g.Width/2, g.Height/2)
	ct := g.At(center)
	if ct.Terrain != TerrainMountain || ct.Height != 2 {
		t.Errorf("Alesia center = %v h%d, want mountain h2", ct.Terrain, ct.Height)
	}
	if countTerrain(g, TerrainCityWall) == 0 {
		t.Error("Alesia should have a city wall ring")
	}
	if countTerrain(g, TerrainFortification) == 0 {
		t.Error("Alesia should have a fortification ring")
	}
}

func TestSetupTeutoberg(t *testing.T) {
	g := New(20, 9)
	g.SetupTeutoberg()
	for col := 1; col < g.Width; col++ {
		if tt := g.At(hex.FromOffset(col, g.Height/2)).Terrain; tt != TerrainRoad {
			t.Fatalf("middle row col %d = %v, want road", col, tt)
		}
	}
	if countTerrain(g, TerrainForest) <= countTerrain(g, TerrainSwamp) {
		t.Error("forest should dominate the field")
	}
}

func TestPresetsDeterministic(t *testing.T) {
	setups := map[string]func(*Grid){
		"cannae":    (*Grid).SetupCannae,
		"alesia":    (*Grid).SetupAlesia,
		"teutoberg": (*Grid).SetupTeutoberg,
	}
	for name, setup := range setups {
		a, b := New(14, 10), New(14, 10)
		setup(a)
		setup(b)
		for c, ta := range a.Tiles {
			tb := b.Tiles[c]
			if ta.Terrain != tb.Terrain || ta.Height != tb.Height {
				t.Errorf("%s: tile %v differs between runs", name, c)
			}
		}
	}
}

func TestPresetsResetPreviousState(t *testing.T) {
	g := New(14, 10)
	c := hex.FromOffset(3, 3)
	g.PlaceUnit(c, "legion")
	g.SetHighlight(c, HighlightColor{R: 255, A: 128})
	g.SetupCannae()
	if g.At(c).Unit != "" {
		t.Error("preset should clear units")
	}
	if g.At(c).Highlighted {
		t.Error("preset should clear highlights")
	}
}
