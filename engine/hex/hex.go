package hex

import "math"

// Sqrt3 is used by the flat-top screen projection.
const Sqrt3 = 1.7320508075688772935274463415059

// Coordinate is a hex cell in cube coordinates. A coordinate is valid
// when X+Y+Z == 0; every operation in this package preserves that.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Directions are the six unit vectors to adjacent cells, starting East
// of the cell and going clockwise.
var Directions = [6]Coordinate{
	{1, -1, 0}, {1, 0, -1}, {0, 1, -1},
	{-1, 1, 0}, {-1, 0, 1}, {0, -1, 1},
}

// FromOffset maps odd-row offset coordinates (col, row) to cube coordinates.
func FromOffset(col, row int) Coordinate {
	x := col - (row-(row&1))/2
	z := row
	return Coordinate{X: x, Y: -x - z, Z: z}
}

// ToOffset converts back to odd-row offset coordinates.
func (c Coordinate) ToOffset() (col, row int) {
	col = c.X + (c.Z-(c.Z&1))/2
	row = c.Z
	return
}

// Valid reports whether the cube invariant holds.
func (c Coordinate) Valid() bool {
	return c.X+c.Y+c.Z == 0
}

// Add returns the component-wise sum.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

// Sub returns the component-wise difference.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{c.X - o.X, c.Y - o.Y, c.Z - o.Z}
}

// Neighbor returns the adjacent cell in direction d (0..5).
func (c Coordinate) Neighbor(d int) Coordinate {
	return c.Add(Directions[d%6])
}

// Neighbors returns the six adjacent cells.
func (c Coordinate) Neighbors() [6]Coordinate {
	var out [6]Coordinate
	for i, d := range Directions {
		out[i] = c.Add(d)
	}
	return out
}

// DistanceTo returns the hex-grid distance between two cells.
func (c Coordinate) DistanceTo(o Coordinate) int {
	return (abs(c.X-o.X) + abs(c.Y-o.Y) + abs(c.Z-o.Z)) / 2
}

// Less orders coordinates lexicographically on (X, Y, Z).
func (c Coordinate) Less(o Coordinate) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.Z < o.Z
}

// Lerp interpolates toward target in real-valued cube space and rounds
// to the nearest lattice cell.
func (c Coordinate) Lerp(target Coordinate, t float64) Coordinate {
	x := float64(c.X) + (float64(target.X)-float64(c.X))*t
	y := float64(c.Y) + (float64(target.Y)-float64(c.Y))*t
	z := float64(c.Z) + (float64(target.Z)-float64(c.Z))*t
	return Round(x, y, z)
}

// LineTo returns the unit-step interpolated cells from c to target inclusive.
func (c Coordinate) LineTo(target Coordinate) []Coordinate {
	n := c.DistanceTo(target)
	line := make([]Coordinate, 0, n+1)
	if n == 0 {
		return append(line, c)
	}
	for i := 0; i <= n; i++ {
		line = append(line, c.Lerp(target, float64(i)/float64(n)))
	}
	return line
}

// ToScreen projects the cell to pixel coordinates for a flat-top layout
// with the origin cell centered at (0, 0).
func (c Coordinate) ToScreen(hexSize float64) (x, y float64) {
	x = hexSize * (Sqrt3*float64(c.X) + Sqrt3/2*float64(c.Z))
	y = hexSize * (3.0 / 2.0 * float64(c.Z))
	return
}

// FromScreen inverts ToScreen, rounding to the nearest cell. For any
// valid coordinate FromScreen(ToScreen(c)) == c.
func FromScreen(x, y, hexSize float64) Coordinate {
	fx := (Sqrt3/3*x - 1.0/3*y) / hexSize
	fz := (2.0 / 3 * y) / hexSize
	return Round(fx, -fx-fz, fz)
}

// Round snaps a real-valued cube coordinate to the nearest valid cell.
// Each axis is rounded independently, then the axis with the largest
// rounding error is recomputed from the other two so the invariant holds.
func Round(x, y, z float64) Coordinate {
	rx := math.Round(x)
	ry := math.Round(y)
	rz := math.Round(z)
	dx := math.Abs(rx - x)
	dy := math.Abs(ry - y)
	dz := math.Abs(rz - z)
	if dx > dy && dx > dz {
		rx = -ry - rz
	} else if dy > dz {
		ry = -rx - rz
	} else {
		rz = -rx - ry
	}
	return Coordinate{int(rx), int(ry), int(rz)}
}

// CoordinatesInRange returns every cell within hex distance r of c,
// including c itself. The result has 3r²+3r+1 cells.
func (c Coordinate) CoordinatesInRange(r int) []Coordinate {
	if r < 0 {
		return nil
	}
	out := make([]Coordinate, 0, 3*r*r+3*r+1)
	for dx := -r; dx <= r; dx++ {
		for dy := max(-r, -dx-r); dy <= min(r, -dx+r); dy++ {
			out = append(out, c.Add(Coordinate{dx, dy, -dx - dy}))
		}
	}
	return out
}

// Ring returns the cells at exactly hex distance r from c.
func (c Coordinate) Ring(r int) []Coordinate {
	if r <= 0 {
		return []Coordinate{c}
	}
	out := make([]Coordinate, 0, 6*r)
	cur := c.Add(Coordinate{-r, 0, r}) // start west, direction 4 scaled
	for side := 0; side < 6; side++ {
		for step := 0; step < r; step++ {
			out = append(out, cur)
			cur = cur.Neighbor(side)
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
