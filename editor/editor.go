// Package editor implements the interactive hex map editor: tool
// dispatch, multi-selection, clipboard, and a bounded undo/redo log.
package editor

import (
	"fmt"

	"github.com/ksks2012/hexfield/engine/gen"
	"github.com/ksks2012/hexfield/engine/grid"
	"github.com/ksks2012/hexfield/engine/hex"
	"github.com/ksks2012/hexfield/engine/hexrender"
)

// Tool is the active editing tool.
type Tool int

const (
	ToolSelect Tool = iota
	ToolPaint
	ToolFill
	ToolHeight
	ToolUnitPlace
	ToolEventEdit
	ToolFormation
	ToolMeasure
)

var toolNames = [...]string{
	"Select", "Paint", "Fill", "Height",
	"UnitPlace", "EventEdit", "Formation", "Measure",
}

func (t Tool) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return "Unknown"
}

// MaxHistory bounds the undo log; the oldest action is evicted beyond it.
const MaxHistory = 100

// tileState is the undo snapshot of a single tile.
type tileState struct {
	Terrain grid.TerrainType
	Height  int
	Unit    string
	Props   grid.Props
}

func snapshot(t *grid.Tile) tileState {
	return tileState{Terrain: t.Terrain, Height: t.Height, Unit: t.Unit, Props: t.Props}
}

func (s tileState) restore(t *grid.Tile) {
	t.Terrain = s.Terrain
	t.Height = s.Height
	t.Unit = s.Unit
	t.Props = s.Props
}

// TileChange records one tile's before/after state inside an Action.
type TileChange struct {
	Coord  hex.Coordinate
	Before tileState
	After  tileState
}

// Action is an undo-log entry. Bulk operations (brush strokes, fills,
// pastes) are stored as a single compound action.
type Action struct {
	Tool        Tool
	Changes     []TileChange
	Description string
}

// MeasureResult is the outcome of the Measure tool.
type MeasureResult struct {
	From, To hex.Coordinate
	Distance int
	Path     grid.PathResult
}

// Editor composes a Grid and a Renderer and owns all editing state.
type Editor struct {
	Grid     *grid.Grid
	Renderer *hexrender.Renderer

	Tool        Tool
	Terrain     grid.TerrainType
	HeightValue int
	UnitType    string
	BrushSize   int

	Selection []hex.Coordinate
	Primary   *hex.Coordinate
	Measure   *MeasureResult

	clipboard []clipEntry

	history []Action
	histIdx int // number of applied actions

	FilePath string
	Modified bool

	OnTileSelected   func(hex.Coordinate)
	OnActionExecuted func(Action)
	OnMapSaved       func(string)
	OnMapLoaded      func(string)
}

// New creates an editor over a fresh width×height grid.
func New(width, height int, renderer *hexrender.Renderer) *Editor {
	e := &Editor{
		Grid:      grid.New(width, height),
		Renderer:  renderer,
		Tool:      ToolSelect,
		Terrain:   grid.TerrainPlain,
		UnitType:  "infantry",
		BrushSize: 1,
	}
	if renderer != nil {
		renderer.Grid = e.Grid
	}
	return e
}

// SetTool switches the active tool. Switching has no other side effects.
func (e *Editor) SetTool(t Tool) { e.Tool = t }

// --- History ---

// addToHistory appends an action, truncating any redo branch first and
// evicting the oldest entry when the log exceeds MaxHistory.
func (e *Editor) addToHistory(a Action) {
	e.history = append(e.history[:e.histIdx], a)
	e.histIdx = len(e.history)
	if len(e.history) > MaxHistory {
		e.history = e.history[1:]
		e.histIdx--
	}
	e.Modified = true
	if e.OnActionExecuted != nil {
		e.OnActionExecuted(a)
	}
}

// CanUndo reports whether an action is available to undo.
func (e *Editor) CanUndo() bool { return e.histIdx > 0 }

// CanRedo reports whether an undone action can be re-applied.
func (e *Editor) CanRedo() bool { return e.histIdx < len(e.history) }

// Undo replays the previous action's before-snapshots. It does not
// re-run tool logic.
func (e *Editor) Undo() bool {
	if !e.CanUndo() {
		return false
	}
	e.histIdx--
	for _, ch := range e.history[e.histIdx].Changes {
		if t := e.Grid.At(ch.Coord); t != nil {
			ch.Before.restore(t)
		}
	}
	e.Modified = true
	return true
}

// Redo replays the next action's after-snapshots.
func (e *Editor) Redo() bool {
	if !e.CanRedo() {
		return false
	}
	for _, ch := range e.history[e.histIdx].Changes {
		if t := e.Grid.At(ch.Coord); t != nil {
			ch.After.restore(t)
		}
	}
	e.histIdx++
	e.Modified = true
	return true
}

// HistoryLen returns the number of recorded actions.
func (e *Editor) HistoryLen() int { return len(e.history) }

// LastAction returns the most recently applied action, if any.
func (e *Editor) LastAction() (Action, bool) {
	if e.histIdx == 0 {
		return Action{}, false
	}
	return e.history[e.histIdx-1], true
}

func (e *Editor) resetHistory() {
	e.history = nil
	e.histIdx = 0
	e.Selection = nil
	e.Primary = nil
	e.Measure = nil
}

// --- Map lifecycle ---

// NewMap replaces the grid with a fresh one and clears all history.
func (e *Editor) NewMap(width, height int) {
	e.Grid = grid.New(width, height)
	if e.Renderer != nil {
		e.Renderer.Grid = e.Grid
		e.Renderer.Selected = nil
		e.Renderer.Hovered = nil
	}
	e.FilePath = ""
	e.Modified = false
	e.resetHistory()
}

// SaveMap writes the grid document. An empty path reuses the last one.
func (e *Editor) SaveMap(path string) error {
	if path == "" {
		path = e.FilePath
	}
	if path == "" {
		path = "untitled.hexmap"
	}
	if err := e.Grid.SaveFile(path); err != nil {
		return err
	}
	e.FilePath = path
	e.Modified = false
	if e.OnMapSaved != nil {
		e.OnMapSaved(path)
	}
	return nil
}

// LoadMap replaces the grid from a saved document. The grid is left
// untouched on error.
func (e *Editor) LoadMap(path string) error {
	g, err := grid.LoadFile(path)
	if err != nil {
		return err
	}
	e.Grid = g
	if e.Renderer != nil {
		e.Renderer.Grid = g
		e.Renderer.Selected = nil
		e.Renderer.Hovered = nil
	}
	e.FilePath = path
	e.Modified = false
	e.resetHistory()
	if e.OnMapLoaded != nil {
		e.OnMapLoaded(path)
	}
	return nil
}

// LoadPreset paints a historical battlefield over the current grid
// dimensions. Presets reset history like a loaded map.
func (e *Editor) LoadPreset(name string) error {
	switch name {
	case "cannae":
		e.Grid.SetupCannae()
	case "alesia":
		e.Grid.SetupAlesia()
	case "teutoberg":
		e.Grid.SetupTeutoberg()
	default:
		return fmt.Errorf("unknown preset %q", name)
	}
	e.Modified = true
	e.resetHistory()
	return nil
}

// GenerateRandom repaints the grid from seeded noise.
func (e *Editor) GenerateRandom(seed int64) {
	gen.Generate(e.Grid, gen.DefaultConfig(seed))
	e.Modified = true
	e.resetHistory()
}
