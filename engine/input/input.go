package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse
	MouseX, MouseY   int
	MouseDX, MouseDY int // delta since last frame
	prevMouseX       int
	prevMouseY       int

	LeftPressed        bool
	MiddlePressed      bool
	RightPressed       bool
	LeftJustPressed    bool
	MiddleJustPressed  bool
	RightJustPressed   bool
	LeftJustReleased   bool
	MiddleJustReleased bool
	RightJustReleased  bool
	ScrollY            float64

	// Modifiers
	Shift bool
	Ctrl  bool
}

func NewInputState() *InputState {
	return &InputState{}
}

// Update should be called once at the top of every frame
func (s *InputState) Update() {
	// Mouse position
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.MouseDX = s.MouseX - s.prevMouseX
	s.MouseDY = s.MouseY - s.prevMouseY

	// Mouse buttons
	s.LeftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.MiddlePressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	s.RightPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.MiddleJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle)
	s.RightJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	s.LeftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	s.MiddleJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle)
	s.RightJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight)

	// Scroll
	_, scrollY := ebiten.Wheel()
	s.ScrollY = scrollY

	// Modifiers
	s.Shift = ebiten.IsKeyPressed(ebiten.KeyShift)
	s.Ctrl = ebiten.IsKeyPressed(ebiten.KeyControl)
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
