package ui

import "image/color"

// Theme holds the widget palette. It is threaded through constructors
// so different panels can carry different themes.
type Theme struct {
	PanelBG      color.RGBA
	ButtonBG     color.RGBA
	ButtonHover  color.RGBA
	ButtonActive color.RGBA
	Border       color.RGBA
	Text         color.RGBA
	TextMuted    color.RGBA
}

// DarkTheme returns the stock editor theme.
func DarkTheme() Theme {
	return Theme{
		PanelBG:      color.RGBA{20, 20, 40, 220},
		ButtonBG:     color.RGBA{50, 50, 80, 255},
		ButtonHover:  color.RGBA{70, 70, 110, 255},
		ButtonActive: color.RGBA{100, 100, 200, 255},
		Border:       color.RGBA{100, 100, 160, 255},
		Text:         color.RGBA{230, 230, 235, 255},
		TextMuted:    color.RGBA{150, 150, 160, 255},
	}
}
