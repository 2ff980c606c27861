// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.RGBA
	HoverColor color.RGBA
	Disabled   bool
	DisabledBg color.RGBA
	Font       font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.White,
		BgColor:    color.RGBA{22, 163, 74, 255},
		HoverColor: color.RGBA{34, 197, 94, 255},
		DisabledBg: color.RGBA{75, 85, 99, 255},
		Font:       face,
	}
}

// Contains reports whether the point lies on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked reports whether the point hits an enabled button.
func (b *Button) IsClicked(x, y int) bool {
	return !b.Disabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, mouseX, mouseY int) {
	bg := b.BgColor
	switch {
	case b.Disabled:
		bg = b.DisabledBg
	case b.Contains(mouseX, mouseY):
		bg = b.HoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{31, 41, 55, 255}, false)

	DrawCenteredText(screen, b.Text, b.Font, b.Rect, b.TextColor)
}

// DrawCenteredText draws a single line of text centered in rect.
func DrawCenteredText(screen *ebiten.Image, s string, face font.Face, rect image.Rectangle, clr color.Color) {
	bounds := text.BoundString(face, s)
	tx := rect.Min.X + (rect.Dx()-bounds.Dx())/2 - bounds.Min.X
	ty := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, s, face, tx, ty, clr)
}
