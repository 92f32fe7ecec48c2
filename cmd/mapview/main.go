// Command mapview is a standalone 3D viewer for saved map files. It
// renders tiles as extruded hex prisms with an orbiting camera, which
// makes elevation painting much easier to judge than the flat editor
// view.
//
// Usage: mapview <map.hexmap>
package main

import (
	"log"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ksks2012/hexfield/engine/grid"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	hexSize      = 4.0
)

func terrainColor(t grid.TerrainType) rl.Color {
	switch t {
	case grid.TerrainForest:
		return rl.NewColor(52, 104, 58, 255)
	case grid.TerrainMountain:
		return rl.NewColor(134, 126, 116, 255)
	case grid.TerrainRiver:
		return rl.NewColor(62, 110, 176, 255)
	case grid.TerrainSwamp:
		return rl.NewColor(94, 110, 74, 255)
	case grid.TerrainCityWall:
		return rl.NewColor(160, 154, 140, 255)
	case grid.TerrainRoad:
		return rl.NewColor(170, 148, 104, 255)
	case grid.TerrainBridge:
		return rl.NewColor(140, 108, 70, 255)
	case grid.TerrainCamp:
		return rl.NewColor(176, 120, 80, 255)
	case grid.TerrainFortification:
		return rl.NewColor(120, 110, 96, 255)
	default:
		return rl.NewColor(126, 166, 92, 255)
	}
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: mapview <map.hexmap>")
	}
	g, err := grid.LoadFile(os.Args[1])
	if err != nil {
		log.Fatalf("load map: %v", err)
	}

	rl.InitWindow(screenWidth, screenHeight, "Hexfield Map Viewer | Q/E rotate, wheel tilt")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{
		Up:         rl.NewVector3(0, 1, 0),
		Projection: rl.CameraPerspective,
	}
	orbit := rl.NewVector3(120, 160, 160)
	tilt := float32(0.4)

	// Center the orbit on the middle of the grid.
	var cx, cz float64
	for _, t := range g.Tiles {
		x, z := t.Coord.ToScreen(hexSize)
		cx += x
		cz += z
	}
	n := float64(len(g.Tiles))
	if n > 0 {
		cx /= n
		cz /= n
	}
	target := rl.NewVector3(float32(cx), 0, float32(cz))

	for !rl.WindowShouldClose() {
		if rl.IsKeyDown(rl.KeyQ) {
			orbit = rl.Vector3RotateByAxisAngle(orbit, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			orbit = rl.Vector3RotateByAxisAngle(orbit, camera.Up, 0.02)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			tilt += wheel * 0.05
			tilt = float32(math.Max(0.05, math.Min(0.95, float64(tilt))))
		}

		topDown := rl.NewVector3(0.1, 320, 0.1)
		camera.Position = rl.Vector3Add(target, rl.Vector3Lerp(orbit, topDown, tilt))
		camera.Target = target
		camera.Fovy = 50 - 15*tilt

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(14, 16, 24, 255))
		rl.BeginMode3D(camera)

		for _, t := range g.Tiles {
			x, z := t.Coord.ToScreen(hexSize)
			height := float32(2 + t.Height*3)
			pos := rl.NewVector3(float32(x), height/2, float32(z))
			clr := terrainColor(t.Terrain)
			rl.DrawCylinder(rl.NewVector3(float32(x), 0, float32(z)), hexSize*0.9, hexSize*0.9, height, 6, clr)
			rl.DrawCylinderWires(rl.NewVector3(float32(x), 0, float32(z)), hexSize*0.9, hexSize*0.9, height, 6, rl.NewColor(0, 0, 0, 60))
			if t.Occupied() {
				rl.DrawSphere(rl.NewVector3(pos.X, height+2, pos.Z), 1.6, rl.Red)
			}
		}

		rl.EndMode3D()
		rl.DrawText(os.Args[1], 10, 10, 18, rl.RayWhite)
		rl.DrawFPS(10, 34)
		rl.EndDrawing()
	}
}
