// internal/ui/wave_indicator.go
package ui

import (
	"image/color"

	"go-path-defense/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int // центр верхней кромки текста
	Color            color.Color
	BossColor        color.Color
	OutlineColor     color.Color
	OutlineThickness int
	Font             font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face, clr, bossColor color.Color) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            clr,
		BossColor:        bossColor,
		OutlineColor:     color.Black,
		OutlineThickness: 1,
		Font:             face,
	}
}

// Draw отрисовывает индикатор на экране. The final wave is highlighted.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, total int) {
	label := utils.WaveLabel(wave, total)

	textColor := i.Color
	if wave > 0 && wave == total {
		textColor = i.BossColor
	}

	bounds := text.BoundString(i.Font, label)
	textX := i.X - bounds.Dx()/2 - bounds.Min.X
	textY := i.Y - bounds.Min.Y

	// Рисуем обводку
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.Font, textX+dx, textY+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.Font, textX, textY, textColor)
}
