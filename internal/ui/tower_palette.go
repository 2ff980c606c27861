// internal/ui/tower_palette.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"go-path-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	paletteSlotW   = 150
	paletteSlotH   = 44
	paletteSpacing = 8
)

type paletteSlot struct {
	def  *defs.TowerDefinition
	rect image.Rectangle
}

// TowerPalette lists buildable towers in catalog order. Slot i is bound to key i+1.
type TowerPalette struct {
	slots         []paletteSlot
	font          font.Face
	textColor     color.Color
	mutedColor    color.Color
	selectedColor color.RGBA
	bgColor       color.RGBA
}

func NewTowerPalette(catalog *defs.Catalog, x, y int, face font.Face, textColor, mutedColor color.Color, selectedColor, bgColor color.RGBA) *TowerPalette {
	p := &TowerPalette{
		font:          face,
		textColor:     textColor,
		mutedColor:    mutedColor,
		selectedColor: selectedColor,
		bgColor:       bgColor,
	}
	for i, id := range catalog.TowerIDs() {
		def, _ := catalog.Tower(id)
		x0 := x + i*(paletteSlotW+paletteSpacing)
		p.slots = append(p.slots, paletteSlot{
			def:  def,
			rect: image.Rect(x0, y, x0+paletteSlotW, y+paletteSlotH),
		})
	}
	return p
}

// Len is the number of slots.
func (p *TowerPalette) Len() int {
	return len(p.slots)
}

// IDAt returns the archetype in slot i (0-based).
func (p *TowerPalette) IDAt(i int) (string, bool) {
	if i < 0 || i >= len(p.slots) {
		return "", false
	}
	return p.slots[i].def.ID, true
}

// HitTest returns the archetype under the point.
func (p *TowerPalette) HitTest(x, y int) (string, bool) {
	pt := image.Pt(x, y)
	for _, s := range p.slots {
		if pt.In(s.rect) {
			return s.def.ID, true
		}
	}
	return "", false
}

// Draw renders every slot; unaffordable towers are dimmed.
func (p *TowerPalette) Draw(screen *ebiten.Image, selected string, money int) {
	for i, s := range p.slots {
		x, y := float32(s.rect.Min.X), float32(s.rect.Min.Y)
		w, h := float32(s.rect.Dx()), float32(s.rect.Dy())
		vector.DrawFilledRect(screen, x, y, w, h, p.bgColor, false)
		if s.def.ID == selected {
			vector.StrokeRect(screen, x, y, w, h, 2, p.selectedColor, false)
		}

		swatch := float32(12)
		vector.DrawFilledRect(screen, x+8, y+8, swatch, swatch, s.def.Visuals.Color, false)

		clr := p.textColor
		if money < s.def.Cost {
			clr = p.mutedColor
		}
		text.Draw(screen, fmt.Sprintf("%d %s", i+1, s.def.Name), p.font, s.rect.Min.X+26, s.rect.Min.Y+18, clr)
		text.Draw(screen, fmt.Sprintf("$%d  dmg %d  rng %.1f", s.def.Cost, s.def.Damage, s.def.Range), p.font, s.rect.Min.X+8, s.rect.Min.Y+36, clr)
	}
}
