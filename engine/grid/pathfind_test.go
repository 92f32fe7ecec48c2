package grid

import (
	"testing"

	"github.com/ksks2012/hexfield/engine/hex"
)

func TestFindPathUniformCostMatchesDistance(t *testing.T) {
	g := New(8, 8)
	start := hex.FromOffset(0, 0)
	goal := hex.FromOffset(6, 5)
	res := g.FindPath(start, goal, nil)
	if !res.Found {
		t.Fatal("path on an open grid should be found")
	}
	if want := start.DistanceTo(goal); res.TotalCost != want {
		t.Errorf("TotalCost = %d, want %d (uniform cost)", res.TotalCost, want)
	}
	if res.Path[0] != start || res.Path[len(res.Path)-1] != goal {
		t.Errorf("path endpoints wrong: %v", res.Path)
	}
	for i := 1; i < len(res.Path); i++ {
		if res.Path[i-1].DistanceTo(res.Path[i]) != 1 {
			t.Errorf("path step %d is not adjacent", i)
		}
	}
}

func TestFindPathAvoidsExpensiveTerrain(t *testing.T) {
	g := New(7, 3)
	start := hex.FromOffset(0, 1)
	goal := hex.FromOffset(6, 1)
	// A swamp belt on the direct row; the cheaper route detours around it.
	for col := 2; col <= 4; col++ {
		g.SetTerrain(hex.FromOffset(col, 1), TerrainSwamp)
	}
	res := g.FindPath(start, goal, nil)
	if !res.Found {
		t.Fatal("path should be found")
	}
	direct := 0
	for i := 1; i < 7; i++ {
		c := hex.FromOffset(i, 1)
		direct += g.At(c).Props.MovementCost
	}
	if res.TotalCost >= direct {
		t.Errorf("TotalCost = %d, expected cheaper than the direct row %d", res.TotalCost, direct)
	}
}

func TestFindPathHeightPenalty(t *testing.T) {
	g := New(3, 1)
	a := hex.FromOffset(0, 0)
	b := hex.FromOffset(1, 0)
	c := hex.FromOffset(2, 0)
	g.At(b).SetHeight(3)
	res := g.FindPath(a, c, nil)
	if !res.Found {
		t.Fatal("path should be found")
	}
	// Climb 3 up onto b, 3 down to c, plus two movement costs of 1.
	if res.TotalCost != 8 {
		t.Errorf("TotalCost = %d, want 8 with height penalties", res.TotalCost)
	}
}

func TestFindPathUnreachable(t *testing.T) {
	g := New(5, 5)
	goal := hex.FromOffset(4, 4)
	// Wall the goal off with river.
	for _, n := range goal.Neighbors() {
		g.SetTerrain(n, TerrainRiver)
	}
	res := g.FindPath(hex.FromOffset(0, 0), goal, nil)
	if res.Found {
		t.Error("walled-off goal should be unreachable")
	}
	if len(res.Path) != 0 {
		t.Errorf("unreachable result should have empty path, got %v", res.Path)
	}

	if g.FindPath(hex.Coordinate{99, -99, 0}, goal, nil).Found {
		t.Error("invalid start should not find a path")
	}
}

func TestMovementRangeBudget(t *testing.T) {
	g := New(9, 9)
	start := hex.FromOffset(4, 4)
	got := g.MovementRange(start, 2, nil)
	if got[start] != 0 {
		t.Errorf("start cost = %d, want 0", got[start])
	}
	for c, cost := range got {
		if cost > 2 {
			t.Errorf("%v reachable at cost %d despite budget 2", c, cost)
		}
	}
	// Uniform cost 1: budget 2 covers exactly the radius-2 neighborhood
	// that lies on the grid.
	want := 0
	for _, c := range start.CoordinatesInRange(2) {
		if g.Contains(c) {
			want++
		}
	}
	if len(got) != want {
		t.Errorf("reachable set has %d cells, want %d", len(got), want)
	}
}

func TestMovementRangeMonotonic(t *testing.T) {
	g := New(9, 9)
	g.SetTerrain(hex.FromOffset(3, 3), TerrainForest)
	g.SetTerrain(hex.FromOffset(5, 4), TerrainMountain)
	start := hex.FromOffset(4, 4)
	prev := 0
	for budget := 0; budget <= 6; budget++ {
		got := g.MovementRange(start, budget, nil)
		if len(got) < prev {
			t.Errorf("budget %d shrank the reachable set: %d < %d", budget, len(got), prev)
		}
		prev = len(got)
	}
}

func TestLineOfSight(t *testing.T) {
	g := New(7, 1)
	a := hex.FromOffset(0, 0)
	b := hex.FromOffset(4, 0)
	if !g.LineOfSight(a, b) {
		t.Fatal("open row should have line of sight")
	}
	g.SetTerrain(hex.FromOffset(2, 0), TerrainForest)
	if g.LineOfSight(a, b) {
		t.Error("forest between endpoints should block sight")
	}
	// Endpoints themselves never block.
	g.SetTerrain(a, TerrainForest)
	g.SetTerrain(hex.FromOffset(2, 0), TerrainPlain)
	if !g.LineOfSight(a, b) {
		t.Error("a hidden endpoint must not block its own sight")
	}
}

func TestAttackRange(t *testing.T) {
	g := New(7, 7)
	attacker := hex.FromOffset(3, 3)
	got := g.AttackRange(attacker, 2, false)
	for _, c := range got {
		if c == attacker {
			t.Error("attack range must exclude the attacker's cell")
		}
		if attacker.DistanceTo(c) > 2 {
			t.Errorf("%v beyond range 2", c)
		}
	}
	want := 0
	for _, c := range attacker.CoordinatesInRange(2) {
		if c != attacker && g.Contains(c) {
			want++
		}
	}
	if len(got) != want {
		t.Errorf("attack range has %d cells, want %d", len(got), want)
	}

	// LOS filtering removes cells behind blockers.
	for _, n := range attacker.Neighbors() {
		g.SetTerrain(n, TerrainForest)
	}
	withLOS := g.AttackRange(attacker, 2, true)
	if len(withLOS) >= len(got) {
		t.Errorf("LOS filter removed nothing: %d vs %d", len(withLOS), len(got))
	}
}
