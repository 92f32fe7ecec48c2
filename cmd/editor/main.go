package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/ksks2012/hexfield/editor"
	"github.com/ksks2012/hexfield/engine/grid"
	"github.com/ksks2012/hexfield/engine/hex"
	"github.com/ksks2012/hexfield/engine/hexrender"
	"github.com/ksks2012/hexfield/engine/input"
	"github.com/ksks2012/hexfield/engine/ui"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	SidebarWidth = 200
)

type EditorApp struct {
	editor   *editor.Editor
	renderer *hexrender.Renderer
	input    *input.InputState
	sidebar  *ui.Panel
	theme    ui.Theme

	toolButtons    map[editor.Tool]*ui.Button
	terrainButtons map[grid.TerrainType]*ui.Button
	status         string
}

func NewEditorApp() *EditorApp {
	renderer := hexrender.New(nil, 0, 0, ScreenWidth-SidebarWidth, ScreenHeight, hexrender.DefaultPalette())
	a := &EditorApp{
		editor:         editor.New(20, 15, renderer),
		renderer:       renderer,
		input:          input.NewInputState(),
		theme:          ui.DarkTheme(),
		toolButtons:    make(map[editor.Tool]*ui.Button),
		terrainButtons: make(map[grid.TerrainType]*ui.Button),
	}
	a.renderer.ResetView()
	a.buildSidebar()

	a.editor.OnTileSelected = func(c hex.Coordinate) {
		if t := a.editor.Grid.At(c); t != nil {
			a.status = fmt.Sprintf("Selected (%d,%d,%d) %s h=%d", c.X, c.Y, c.Z, t.Terrain, t.Height)
		}
	}
	a.editor.OnActionExecuted = func(act editor.Action) {
		a.status = act.Description
	}
	a.editor.OnMapSaved = func(path string) {
		a.status = "Saved " + path
		log.Printf("saved map to %s", path)
	}
	a.editor.OnMapLoaded = func(path string) {
		a.status = "Loaded " + path
		a.renderer.ResetView()
		log.Printf("loaded map from %s", path)
	}

	if len(os.Args) > 1 {
		if err := a.editor.LoadMap(os.Args[1]); err != nil {
			log.Printf("failed to load map: %v", err)
		}
	}
	return a
}

func (a *EditorApp) buildSidebar() {
	a.sidebar = ui.NewPanel(a.theme, ui.VerticalLayout{Padding: 10, Spacing: 4})
	a.sidebar.SetBounds(ScreenWidth-SidebarWidth, 0, SidebarWidth, ScreenHeight)

	a.sidebar.Add(ui.NewLabel("TOOLS", a.theme))
	for t := editor.ToolSelect; t <= editor.ToolMeasure; t++ {
		tool := t
		btn := ui.NewButton(tool.String(), a.theme, func() {
			a.editor.SetTool(tool)
		})
		btn.SetBounds(0, 0, SidebarWidth-20, 20)
		a.toolButtons[tool] = btn
		a.sidebar.Add(btn)
	}

	a.sidebar.Add(ui.NewLabel("TERRAIN", a.theme))
	terrains := []grid.TerrainType{
		grid.TerrainPlain, grid.TerrainForest, grid.TerrainMountain,
		grid.TerrainRiver, grid.TerrainSwamp, grid.TerrainCityWall,
		grid.TerrainRoad, grid.TerrainBridge, grid.TerrainCamp,
		grid.TerrainFortification,
	}
	for _, tt := range terrains {
		terrain := tt
		btn := ui.NewButton(terrain.String(), a.theme, func() {
			a.editor.Terrain = terrain
		})
		btn.SetBounds(0, 0, SidebarWidth-20, 20)
		a.terrainButtons[terrain] = btn
		a.sidebar.Add(btn)
	}

	a.sidebar.Add(ui.NewLabel("PRESETS", a.theme))
	for _, name := range []string{"cannae", "alesia", "teutoberg"} {
		preset := name
		btn := ui.NewButton(preset, a.theme, func() {
			if err := a.editor.LoadPreset(preset); err != nil {
				log.Printf("preset: %v", err)
			} else {
				a.status = "Preset " + preset
			}
		})
		btn.SetBounds(0, 0, SidebarWidth-20, 20)
		a.sidebar.Add(btn)
	}
	randBtn := ui.NewButton("Random", a.theme, func() {
		seed := time.Now().UnixNano()
		a.editor.GenerateRandom(seed)
		a.status = fmt.Sprintf("Generated seed %d", seed)
	})
	randBtn.SetBounds(0, 0, SidebarWidth-20, 20)
	a.sidebar.Add(randBtn)

	a.sidebar.Layout()
}

func (a *EditorApp) uiEvent(t ui.EventType) ui.Event {
	return ui.Event{
		Type:    t,
		X:       a.input.MouseX,
		Y:       a.input.MouseY,
		ScrollY: a.input.ScrollY,
		Shift:   a.input.Shift,
		Ctrl:    a.input.Ctrl,
	}
}

func (a *EditorApp) Update() error {
	a.input.Update()

	// Sidebar gets first crack at pointer events.
	a.sidebar.HandleEvent(a.uiEvent(ui.PointerMove))
	sidebarConsumed := false
	if a.input.LeftJustPressed {
		sidebarConsumed = a.sidebar.HandleEvent(a.uiEvent(ui.PointerDown))
	}

	inMap := a.input.MouseX < ScreenWidth-SidebarWidth

	// View manipulation.
	a.renderer.MouseMove(a.input.MouseX, a.input.MouseY)
	if inMap && a.input.ScrollY != 0 {
		a.renderer.Scroll(a.input.ScrollY)
	}
	if inMap && a.input.MiddleJustPressed {
		a.renderer.MouseDown(hexrender.ButtonMiddle, a.input.MouseX, a.input.MouseY)
	}
	if a.input.MiddleJustReleased {
		a.renderer.MouseUp(hexrender.ButtonMiddle)
	}

	// Tool application. Paint-style tools repeat while the button is
	// held; the rest act on the initial press only.
	if inMap && !sidebarConsumed {
		c := a.renderer.WindowToHex(a.input.MouseX, a.input.MouseY)
		switch a.editor.Tool {
		case editor.ToolPaint, editor.ToolHeight:
			if a.input.LeftPressed {
				a.editor.HandleClick(c, a.input.Shift)
			}
		default:
			if a.input.LeftJustPressed {
				a.renderer.MouseDown(hexrender.ButtonLeft, a.input.MouseX, a.input.MouseY)
				a.editor.HandleClick(c, a.input.Shift)
			}
		}
	}

	a.handleKeys()

	// Reflect tool/terrain state in the sidebar.
	for t, btn := range a.toolButtons {
		btn.Active = a.editor.Tool == t
	}
	for tt, btn := range a.terrainButtons {
		btn.Active = a.editor.Terrain == tt
	}

	a.renderer.Update(1.0 / 60.0)
	return nil
}

var keyTools = map[ebiten.Key]editor.Tool{
	ebiten.KeyV: editor.ToolSelect,
	ebiten.KeyP: editor.ToolPaint,
	ebiten.KeyF: editor.ToolFill,
	ebiten.KeyH: editor.ToolHeight,
	ebiten.KeyU: editor.ToolUnitPlace,
	ebiten.KeyE: editor.ToolEventEdit,
	ebiten.KeyO: editor.ToolFormation,
	ebiten.KeyM: editor.ToolMeasure,
}

func (a *EditorApp) handleKeys() {
	if a.input.Ctrl {
		if a.input.IsKeyJustPressed(ebiten.KeyZ) {
			if a.input.Shift {
				a.editor.Redo()
			} else {
				a.editor.Undo()
			}
		}
		if a.input.IsKeyJustPressed(ebiten.KeyY) {
			a.editor.Redo()
		}
		if a.input.IsKeyJustPressed(ebiten.KeyS) {
			if err := a.editor.SaveMap(a.editor.FilePath); err != nil {
				a.status = "Save failed: " + err.Error()
				log.Printf("save failed: %v", err)
			}
		}
		if a.input.IsKeyJustPressed(ebiten.KeyC) {
			a.status = fmt.Sprintf("Copied %d tiles", a.editor.Copy())
		}
		if a.input.IsKeyJustPressed(ebiten.KeyV) && a.renderer.Hovered != nil {
			a.editor.Paste(*a.renderer.Hovered)
		}
		return
	}

	for k, t := range keyTools {
		if a.input.IsKeyJustPressed(k) {
			a.editor.SetTool(t)
		}
	}
	for i := 0; i < 10; i++ {
		if a.input.IsKeyJustPressed(ebiten.Key0 + ebiten.Key(i)) {
			a.editor.Terrain = grid.TerrainType(i)
		}
	}
	if a.input.IsKeyJustPressed(ebiten.KeyTab) {
		a.editor.BrushSize++
		if a.editor.BrushSize > 4 {
			a.editor.BrushSize = 1
		}
	}
	if a.input.IsKeyJustPressed(ebiten.KeyBracketRight) && a.editor.HeightValue < 3 {
		a.editor.HeightValue++
	}
	if a.input.IsKeyJustPressed(ebiten.KeyBracketLeft) && a.editor.HeightValue > 0 {
		a.editor.HeightValue--
	}
	if a.input.IsKeyJustPressed(ebiten.KeyG) {
		a.renderer.ShowGrid = !a.renderer.ShowGrid
	}
	if a.input.IsKeyJustPressed(ebiten.KeyC) {
		a.renderer.ShowCoords = !a.renderer.ShowCoords
	}
	if a.input.IsKeyJustPressed(ebiten.KeyR) {
		a.renderer.ResetView()
	}
	if a.input.IsKeyJustPressed(ebiten.KeyHome) && a.renderer.Selected != nil {
		a.renderer.ScrollTo(*a.renderer.Selected, 0.4)
	}
}

func (a *EditorApp) Draw(screen *ebiten.Image) {
	mapArea := screen.SubImage(image.Rect(0, 0, ScreenWidth-SidebarWidth, ScreenHeight)).(*ebiten.Image)
	a.renderer.Draw(mapArea)
	a.sidebar.Render(screen)

	info := fmt.Sprintf("Tool:%s Terrain:%s Brush:%d Height:%d Zoom:%.2f",
		a.editor.Tool, a.editor.Terrain, a.editor.BrushSize, a.editor.HeightValue, a.renderer.Zoom)
	if a.editor.Measure != nil {
		m := a.editor.Measure
		info += fmt.Sprintf(" | Measure: dist=%d cost=%d", m.Distance, m.Path.TotalCost)
	}
	if a.editor.Modified {
		info += " | *modified*"
	}
	ebitenutil.DebugPrintAt(screen, info, 5, ScreenHeight-32)
	if a.status != "" {
		ebitenutil.DebugPrintAt(screen, a.status, 5, ScreenHeight-16)
	}
}

func (a *EditorApp) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Hexfield Map Editor")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewEditorApp()); err != nil {
		log.Fatal(err)
	}
}
