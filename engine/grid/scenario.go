package grid

import "github.com/ksks2012/hexfield/engine/hex"

// Historical battlefield presets. Each routine deterministically paints
// the current grid; given the same dimensions it always produces the
// same map.

// SetupCannae lays out the Aufidius river along the bottom rows, open
// plain in the center, and the opposing camps near the short edges.
func (g *Grid) SetupCannae() {
	g.Clear()
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			c := hex.FromOffset(col, row)
			switch {
			case row >= g.Height-2:
				g.SetTerrain(c, TerrainRiver)
			case row == g.Height-3 && col%4 == 0:
				g.SetTerrain(c, TerrainSwamp)
			default:
				g.SetTerrain(c, TerrainPlain)
			}
		}
	}
	// One crossing over the river.
	if g.Width > 2 {
		for row := g.Height - 2; row < g.Height; row++ {
			if t := g.At(hex.FromOffset(g.Width/2, row)); t != nil {
				t.SetTerrain(TerrainBridge)
			}
		}
	}
	// Camps in opposite corners.
	g.SetTerrain(hex.FromOffset(1, 1), TerrainCamp)
	g.SetTerrain(hex.FromOffset(g.Width-2, 1), TerrainCamp)
}

// SetupAlesia paints the walled oppidum on a central hill surrounded by
// a ring of fortifications, the classic double siege line.
func (g *Grid) SetupAlesia() {
	g.Clear()
	center := hex.FromOffset(g.Width/2, g.Height/2)
	maxR := g.Width / 2
	if h := g.Height / 2; h < maxR {
		maxR = h
	}
	wallR := maxR / 3
	if wallR < 1 {
		wallR = 1
	}
	fortR := wallR + 2
	for _, c := range center.CoordinatesInRange(maxR) {
		t := g.At(c)
		if t == nil {
			continue
		}
		d := center.DistanceTo(c)
		switch {
		case d < wallR:
			t.SetTerrain(TerrainMountain)
			t.SetHeight(2)
		case d == wallR:
			t.SetTerrain(TerrainCityWall)
			t.SetHeight(1)
		case d == fortR:
			t.SetTerrain(TerrainFortification)
		}
	}
	g.SetTerrain(hex.FromOffset(0, 0), TerrainCamp)
	g.SetTerrain(hex.FromOffset(g.Width-1, g.Height-1), TerrainCamp)
}

// SetupTeutoberg covers the field in forest and swamp with a single
// road winding through the middle, the ambush corridor.
func (g *Grid) SetupTeutoberg() {
	g.Clear()
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			c := hex.FromOffset(col, row)
			switch {
			case row == g.Height/2:
				g.SetTerrain(c, TerrainRoad)
			case (col+row)%5 == 0:
				g.SetTerrain(c, TerrainSwamp)
			default:
				g.SetTerrain(c, TerrainForest)
				if t := g.At(c); t != nil && col%3 == 0 {
					t.SetHeight(1)
				}
			}
		}
	}
	g.SetTerrain(hex.FromOffset(0, g.Height/2), TerrainCamp)
}
