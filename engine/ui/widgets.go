package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var face = basicfont.Face7x13

func drawText(dst *ebiten.Image, s string, x, y int, clr image.Image) {
	d := font.Drawer{
		Dst:  dst,
		Src:  clr,
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(s)
}

// Label is a single line of text.
type Label struct {
	Base
	Text  string
	Theme Theme
	Muted bool
}

func NewLabel(text string, theme Theme) *Label {
	w := font.MeasureString(face, text).Ceil()
	return &Label{Base: Base{W: w, H: face.Height}, Text: text, Theme: theme}
}

// SetText updates the label, re-measuring its width.
func (l *Label) SetText(s string) {
	l.Text = s
	l.W = font.MeasureString(face, s).Ceil()
}

func (l *Label) Render(dst *ebiten.Image) {
	if l.Hidden {
		return
	}
	clr := l.Theme.Text
	if l.Muted {
		clr = l.Theme.TextMuted
	}
	drawText(dst, l.Text, l.X, l.Y, image.NewUniform(clr))
}

func (l *Label) HandleEvent(Event) bool { return false }

// Button is a clickable box with a text caption.
type Button struct {
	Base
	Text    string
	Theme   Theme
	Active  bool // drawn highlighted, e.g. the current tool
	hovered bool
	OnClick func()
}

func NewButton(text string, theme Theme, onClick func()) *Button {
	return &Button{
		Base:    Base{W: 120, H: 24},
		Text:    text,
		Theme:   theme,
		OnClick: onClick,
	}
}

func (b *Button) Render(dst *ebiten.Image) {
	if b.Hidden {
		return
	}
	bg := b.Theme.ButtonBG
	if b.Active {
		bg = b.Theme.ButtonActive
	} else if b.hovered {
		bg = b.Theme.ButtonHover
	}
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, b.Theme.Border, false)
	tw := font.MeasureString(face, b.Text).Ceil()
	drawText(dst, b.Text, b.X+(b.W-tw)/2, b.Y+(b.H-face.Height)/2, image.NewUniform(b.Theme.Text))
}

func (b *Button) HandleEvent(ev Event) bool {
	if b.Hidden {
		return false
	}
	switch ev.Type {
	case PointerMove:
		b.hovered = b.Contains(ev.X, ev.Y)
	case PointerDown:
		if ev.Button == 0 && b.Contains(ev.X, ev.Y) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
	}
	return false
}
