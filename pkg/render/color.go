// pkg/render/color.go
package render

import "image/color"

// BoardColors holds all the color definitions needed to render the board.
type BoardColors struct {
	BackgroundColor  color.RGBA
	GridLineColor    color.RGBA
	PathColor        color.RGBA
	TowerCoreColor   color.RGBA
	TowerStrokeColor color.RGBA
	SelectedColor    color.RGBA
	HealthBackColor  color.RGBA
	HealthColor      color.RGBA
	RangeColor       color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced. Color channels are scaled so
// the result stays a valid premultiplied color.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := func(v uint8) uint8 {
		if c.A == 0 {
			return 0
		}
		return uint8(uint32(v) * uint32(a) / uint32(c.A))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: a}
}
