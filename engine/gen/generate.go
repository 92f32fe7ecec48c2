// Package gen produces battlefield layouts from layered simplex noise.
// Generation is deterministic for a given seed.
package gen

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/ksks2012/hexfield/engine/grid"
	"github.com/ksks2012/hexfield/engine/hex"
)

// Config holds battlefield generation parameters.
type Config struct {
	Seed        int64
	WaterLevel  float64 // elevation below which rivers form
	MountainLvl float64 // elevation above which mountains form
	ForestLvl   float64 // moisture above which forest grows
}

// DefaultConfig returns a balanced parameter set.
func DefaultConfig(seed int64) Config {
	return Config{
		Seed:        seed,
		WaterLevel:  0.22,
		MountainLvl: 0.75,
		ForestLvl:   0.58,
	}
}

// Generate repaints every tile of g from elevation and moisture noise.
func Generate(g *grid.Grid, cfg Config) {
	elevNoise := opensimplex.NewNormalized(cfg.Seed)
	moistNoise := opensimplex.NewNormalized(cfg.Seed + 1)

	for _, t := range g.Tiles {
		// Sample noise in the hex's continuous screen space so adjacent
		// cells get adjacent samples.
		x, y := t.Coord.ToScreen(1.0)

		elev := octaveNoise(elevNoise, x, y, 4, 0.10, 0.5)
		moist := octaveNoise(moistNoise, x, y, 3, 0.08, 0.5)

		t.SetTerrain(deriveTerrain(elev, moist, cfg))
		t.SetHeight(int(elev * 4))
	}

	carveRoad(g)
}

func deriveTerrain(elev, moist float64, cfg Config) grid.TerrainType {
	switch {
	case elev < cfg.WaterLevel:
		return grid.TerrainRiver
	case elev > cfg.MountainLvl:
		return grid.TerrainMountain
	case moist > 0.72 && elev < 0.4:
		return grid.TerrainSwamp
	case moist > cfg.ForestLvl:
		return grid.TerrainForest
	default:
		return grid.TerrainPlain
	}
}

// carveRoad cuts a passable road across the middle row so generated
// maps always have at least one corridor, bridging river crossings.
func carveRoad(g *grid.Grid) {
	row := g.Height / 2
	for col := 0; col < g.Width; col++ {
		t := g.At(hex.FromOffset(col, row))
		if t == nil {
			continue
		}
		if t.Terrain == grid.TerrainRiver {
			t.SetTerrain(grid.TerrainBridge)
		} else {
			t.SetTerrain(grid.TerrainRoad)
		}
	}
}

// octaveNoise layers multiple noise frequencies into fractal noise.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}
