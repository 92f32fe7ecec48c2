package hexrender

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/ksks2012/hexfield/engine/hex"
)

// pulseAnim drives the selection outline alpha up and down.
type pulseAnim struct {
	tween  *gween.Tween
	value  float32
	rising bool
}

func newPulseAnim() *pulseAnim {
	return &pulseAnim{
		tween: gween.New(255, 90, 0.6, ease.InOutQuad),
		value: 255,
	}
}

func (p *pulseAnim) restart() {
	p.tween = gween.New(255, 90, 0.6, ease.InOutQuad)
	p.rising = false
	p.value = 255
}

func (p *pulseAnim) update(dt float32) {
	v, done := p.tween.Update(dt)
	p.value = v
	if done {
		if p.rising {
			p.tween = gween.New(255, 90, 0.6, ease.InOutQuad)
		} else {
			p.tween = gween.New(90, 255, 0.6, ease.InOutQuad)
		}
		p.rising = !p.rising
	}
}

func (p *pulseAnim) alpha() uint8 { return uint8(p.value) }

// scrollAnim animates pan toward a target cell's centered position.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// ScrollTo animates the view so c ends up centered, over duration
// seconds. CenterOn is the instant variant.
func (r *Renderer) ScrollTo(c hex.Coordinate, duration float32) {
	wx, wy := r.HexToWorld(c)
	targetX := float64(r.Width)/2 - wx*r.Zoom
	targetY := float64(r.Height)/2 - wy*r.Zoom
	r.scroll = &scrollAnim{
		tweenX: gween.New(float32(r.PanX), float32(targetX), duration, ease.OutQuad),
		tweenY: gween.New(float32(r.PanY), float32(targetY), duration, ease.OutQuad),
	}
}

// Update advances the renderer's animations by dt seconds.
func (r *Renderer) Update(dt float32) {
	if r.Selected != nil {
		r.pulse.update(dt)
	}
	if r.scroll != nil {
		if !r.scroll.doneX {
			v, done := r.scroll.tweenX.Update(dt)
			r.PanX = float64(v)
			r.scroll.doneX = done
		}
		if !r.scroll.doneY {
			v, done := r.scroll.tweenY.Update(dt)
			r.PanY = float64(v)
			r.scroll.doneY = done
		}
		if r.scroll.doneX && r.scroll.doneY {
			r.scroll = nil
		}
	}
}
