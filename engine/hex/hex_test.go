package hex

import "testing"

func TestCoordinateInvariant(t *testing.T) {
	c := Coordinate{2, -5, 3}
	if !c.Valid() {
		t.Fatalf("(2,-5,3) should satisfy the cube invariant")
	}
	if (Coordinate{1, 1, 1}).Valid() {
		t.Fatalf("(1,1,1) should violate the cube invariant")
	}
}

func TestNeighbors(t *testing.T) {
	c := Coordinate{3, -1, -2}
	ns := c.Neighbors()
	if len(ns) != 6 {
		t.Fatalf("Neighbors() returned %d cells, want 6", len(ns))
	}
	seen := map[Coordinate]bool{}
	for _, n := range ns {
		if !n.Valid() {
			t.Errorf("neighbor %v violates invariant", n)
		}
		if d := c.DistanceTo(n); d != 1 {
			t.Errorf("DistanceTo(%v) = %d, want 1", n, d)
		}
		seen[n] = true
	}
	if len(seen) != 6 {
		t.Errorf("neighbors are not distinct: %v", ns)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	a := Coordinate{0, 0, 0}
	b := Coordinate{3, -7, 4}
	if a.DistanceTo(b) != b.DistanceTo(a) {
		t.Errorf("distance not symmetric: %d vs %d", a.DistanceTo(b), b.DistanceTo(a))
	}
	if a.DistanceTo(a) != 0 {
		t.Errorf("DistanceTo(self) = %d, want 0", a.DistanceTo(a))
	}
	if got := a.DistanceTo(b); got != 7 {
		t.Errorf("DistanceTo = %d, want 7", got)
	}
}

func TestCoordinatesInRangeCardinality(t *testing.T) {
	c := Coordinate{1, -1, 0}
	for r := 0; r <= 5; r++ {
		got := c.CoordinatesInRange(r)
		want := 3*r*r + 3*r + 1
		if len(got) != want {
			t.Errorf("range %d: %d cells, want %d", r, len(got), want)
		}
		for _, n := range got {
			if !n.Valid() {
				t.Errorf("range %d produced invalid cell %v", r, n)
			}
			if c.DistanceTo(n) > r {
				t.Errorf("range %d contains %v at distance %d", r, n, c.DistanceTo(n))
			}
		}
	}
}

func TestRing(t *testing.T) {
	c := Coordinate{0, 0, 0}
	for r := 1; r <= 4; r++ {
		ring := c.Ring(r)
		if len(ring) != 6*r {
			t.Errorf("Ring(%d) has %d cells, want %d", r, len(ring), 6*r)
		}
		for _, n := range ring {
			if c.DistanceTo(n) != r {
				t.Errorf("Ring(%d) contains %v at distance %d", r, n, c.DistanceTo(n))
			}
		}
	}
}

func TestScreenRoundTrip(t *testing.T) {
	sizes := []float64{1, 8, 24, 32.5}
	for _, size := range sizes {
		for _, c := range (Coordinate{}).CoordinatesInRange(6) {
			x, y := c.ToScreen(size)
			got := FromScreen(x, y, size)
			if got != c {
				t.Fatalf("size %v: FromScreen(ToScreen(%v)) = %v", size, c, got)
			}
		}
	}
}

func TestFromScreenRoundsToNearest(t *testing.T) {
	// A point slightly off a cell center still resolves to that cell.
	c := Coordinate{2, -3, 1}
	x, y := c.ToScreen(24)
	got := FromScreen(x+3, y-3, 24)
	if got != c {
		t.Errorf("near-center point resolved to %v, want %v", got, c)
	}
}

func TestLerpEndpointsAndValidity(t *testing.T) {
	a := Coordinate{0, 0, 0}
	b := Coordinate{4, -7, 3}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	for i := 0; i <= 10; i++ {
		got := a.Lerp(b, float64(i)/10)
		if !got.Valid() {
			t.Errorf("Lerp produced invalid cell %v", got)
		}
	}
}

func TestLineToLength(t *testing.T) {
	a := Coordinate{0, 0, 0}
	b := Coordinate{3, -3, 0}
	line := a.LineTo(b)
	if len(line) != a.DistanceTo(b)+1 {
		t.Fatalf("LineTo has %d cells, want %d", len(line), a.DistanceTo(b)+1)
	}
	if line[0] != a || line[len(line)-1] != b {
		t.Errorf("LineTo endpoints wrong: %v", line)
	}
	for i := 1; i < len(line); i++ {
		if line[i-1].DistanceTo(line[i]) != 1 {
			t.Errorf("LineTo step %d jumps from %v to %v", i, line[i-1], line[i])
		}
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	for row := 0; row < 7; row++ {
		for col := 0; col < 7; col++ {
			c := FromOffset(col, row)
			if !c.Valid() {
				t.Errorf("FromOffset(%d,%d) = %v violates invariant", col, row, c)
			}
			gc, gr := c.ToOffset()
			if gc != col || gr != row {
				t.Errorf("ToOffset(FromOffset(%d,%d)) = (%d,%d)", col, row, gc, gr)
			}
		}
	}
}

func TestRoundCorrectsLargestError(t *testing.T) {
	// x carries the largest rounding error (0.4 vs 0.3, 0.3), so x is
	// the axis recomputed from the other two.
	got := Round(0.4, 0.3, -0.7)
	want := Coordinate{1, 0, -1}
	if got != want {
		t.Errorf("Round(0.4,0.3,-0.7) = %v, want %v", got, want)
	}
	if !got.Valid() {
		t.Fatalf("Round produced invalid cell %v", got)
	}
}

func TestLess(t *testing.T) {
	a := Coordinate{0, 1, -1}
	b := Coordinate{1, -1, 0}
	if !a.Less(b) || b.Less(a) {
		t.Errorf("lexicographic order broken for %v vs %v", a, b)
	}
	if a.Less(a) {
		t.Errorf("Less must be irreflexive")
	}
}
