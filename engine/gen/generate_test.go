package gen

import (
	"testing"

	"github.com/ksks2012/hexfield/engine/grid"
	"github.com/ksks2012/hexfield/engine/hex"
)

func TestGenerateDeterministic(t *testing.T) {
	a, b := grid.New(24, 18), grid.New(24, 18)
	cfg := DefaultConfig(42)
	Generate(a, cfg)
	Generate(b, cfg)
	for c, ta := range a.Tiles {
		tb := b.Tiles[c]
		if ta.Terrain != tb.Terrain || ta.Height != tb.Height {
			t.Fatalf("tile %v differs between runs with the same seed", c)
		}
	}
}

func TestGenerateSeedVariation(t *testing.T) {
	a, b := grid.New(24, 18), grid.New(24, 18)
	Generate(a, DefaultConfig(1))
	Generate(b, DefaultConfig(2))
	same := 0
	for c, ta := range a.Tiles {
		if ta.Terrain == b.Tiles[c].Terrain {
			same++
		}
	}
	if same == len(a.Tiles) {
		t.Error("different seeds produced identical maps")
	}
}

func TestGenerateRoadCorridor(t *testing.T) {
	g := grid.New(24, 18)
	Generate(g, DefaultConfig(7))
	row := g.Height / 2
	for col := 0; col < g.Width; col++ {
		tt := g.At(hex.FromOffset(col, row)).Terrain
		if tt != grid.TerrainRoad && tt != grid.TerrainBridge {
			t.Fatalf("middle row col %d = %v, want road or bridge", col, tt)
		}
	}
	// The corridor guarantees the map is crossable end to end.
	from := hex.FromOffset(0, row)
	to := hex.FromOffset(g.Width-1, row)
	if !g.FindPath(from, to, nil).Found {
		t.Error("road corridor should connect the map edges")
	}
}

func TestGenerateHeightBounds(t *testing.T) {
	g := grid.New(24, 18)
	Generate(g, DefaultConfig(99))
	for c, tile := range g.Tiles {
		if tile.Height < 0 || tile.Height > 3 {
			t.Errorf("tile %v height %d out of range", c, tile.Height)
		}
	}
}

func TestThresholdExtremes(t *testing.T) {
	g := grid.New(12, 12)
	cfg := DefaultConfig(5)
	cfg.WaterLevel = 2.0 // everything below water
	Generate(g, cfg)
	for c, tile := range g.Tiles {
		if _, row := c.ToOffset(); row == g.Height/2 {
			continue // road carving overrides the middle row
		}
		if tile.Terrain != grid.TerrainRiver {
			t.Fatalf("tile %v = %v, want river with maxed water level", c, tile.Terrain)
		}
	}
}
