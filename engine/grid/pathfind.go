package grid

import (
	"container/heap"

	"github.com/ksks2012/hexfield/engine/hex"
)

// PathResult is the outcome of a pathfinding query.
type PathResult struct {
	Found     bool
	Path      []hex.Coordinate
	TotalCost int
}

// stepCost is the cost of entering dest from a neighboring tile: the
// destination's movement cost plus the height difference penalty.
func stepCost(from, dest *Tile) int {
	dh := dest.Height - from.Height
	if dh < 0 {
		dh = -dh
	}
	return dest.Props.MovementCost + dh
}

// FindPath searches for a minimum-cost path from start to goal with A*.
// isPassable filters traversable cells; nil means Grid.IsPassable. The
// hex distance is an admissible heuristic since every step costs at
// least 1.
func (g *Grid) FindPath(start, goal hex.Coordinate, isPassable func(hex.Coordinate) bool) PathResult {
	if isPassable == nil {
		isPassable = g.IsPassable
	}
	if !g.Contains(start) || !g.Contains(goal) {
		return PathResult{}
	}

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, &pathNode{c: start, f: start.DistanceTo(goal)})

	came := make(map[hex.Coordinate]hex.Coordinate)
	gScore := map[hex.Coordinate]int{start: 0}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pathNode)
		if cur.c == goal {
			return PathResult{
				Found:     true,
				Path:      reconstructPath(came, goal),
				TotalCost: gScore[goal],
			}
		}
		curTile := g.Tiles[cur.c]
		for _, nc := range cur.c.Neighbors() {
			dest := g.Tiles[nc]
			if dest == nil || !isPassable(nc) {
				continue
			}
			tentative := gScore[cur.c] + stepCost(curTile, dest)
			if old, ok := gScore[nc]; ok && tentative >= old {
				continue
			}
			gScore[nc] = tentative
			came[nc] = cur.c
			heap.Push(open, &pathNode{c: nc, g: tentative, f: tentative + nc.DistanceTo(goal)})
		}
	}
	return PathResult{}
}

// MovementRange floods outward from start with Dijkstra and returns
// every cell whose minimum cumulative cost fits the movement budget,
// mapped to that cost. The start cell is included at cost 0.
func (g *Grid) MovementRange(start hex.Coordinate, movementPoints int, isPassable func(hex.Coordinate) bool) map[hex.Coordinate]int {
	if isPassable == nil {
		isPassable = g.IsPassable
	}
	reachable := make(map[hex.Coordinate]int)
	if !g.Contains(start) || movementPoints < 0 {
		return reachable
	}

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, &pathNode{c: start})
	best := map[hex.Coordinate]int{start: 0}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pathNode)
		if cur.g > best[cur.c] {
			continue // stale entry
		}
		reachable[cur.c] = cur.g
		curTile := g.Tiles[cur.c]
		for _, nc := range cur.c.Neighbors() {
			dest := g.Tiles[nc]
			if dest == nil || !isPassable(nc) {
				continue
			}
			cost := cur.g + stepCost(curTile, dest)
			if cost > movementPoints {
				continue
			}
			if old, ok := best[nc]; ok && cost >= old {
				continue
			}
			best[nc] = cost
			heap.Push(open, &pathNode{c: nc, g: cost, f: cost})
		}
	}
	return reachable
}

// LineOfSight reports whether no intermediate tile between from and to
// blocks visibility. The endpoints themselves never block.
func (g *Grid) LineOfSight(from, to hex.Coordinate) bool {
	if !g.Contains(from) || !g.Contains(to) {
		return false
	}
	line := from.LineTo(to)
	for i := 1; i < len(line)-1; i++ {
		if t := g.Tiles[line[i]]; t != nil && t.BlocksLineOfSight() {
			return false
		}
	}
	return true
}

// AttackRange returns the valid cells within rng of attacker, excluding
// the attacker's own cell, optionally filtered by line of sight.
func (g *Grid) AttackRange(attacker hex.Coordinate, rng int, requireLOS bool) []hex.Coordinate {
	if !g.Contains(attacker) {
		return nil
	}
	var out []hex.Coordinate
	for _, c := range attacker.CoordinatesInRange(rng) {
		if c == attacker || !g.Contains(c) {
			continue
		}
		if requireLOS && !g.LineOfSight(attacker, c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func reconstructPath(came map[hex.Coordinate]hex.Coordinate, goal hex.Coordinate) []hex.Coordinate {
	path := []hex.Coordinate{goal}
	cur := goal
	for {
		prev, ok := came[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// --- Priority queue ---

type pathNode struct {
	c    hex.Coordinate
	g, f int
}

type nodeHeap []*pathNode

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*pathNode)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
