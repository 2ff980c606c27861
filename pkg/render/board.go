// pkg/render/board.go
package render

import (
	"image/color"
	"math"

	"go-path-defense/pkg/geom"
	"go-path-defense/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BoardRenderer draws the grid, the path and everything standing on it.
// Board coordinates are cell units; cell (x, y) is centered at (x, y).
type BoardRenderer struct {
	CellSize float64
	Width    int // cells
	Height   int // cells
	colors   *BoardColors
	mapImage *ebiten.Image
}

func NewBoardRenderer(cellSize float64, width, height int, colors *BoardColors) *BoardRenderer {
	return &BoardRenderer{CellSize: cellSize, Width: width, Height: height, colors: colors}
}

// ToScreen converts a board point to pixel coordinates.
func (r *BoardRenderer) ToScreen(p geom.Point) (float32, float32) {
	return float32((p.X + 0.5) * r.CellSize), float32((p.Y + 0.5) * r.CellSize)
}

// CellAt returns the cell under a pixel and whether it is on the board.
func (r *BoardRenderer) CellAt(x, y int) (int, int, bool) {
	cx := int(math.Floor(float64(x) / r.CellSize))
	cy := int(math.Floor(float64(y) / r.CellSize))
	return cx, cy, cx >= 0 && cx < r.Width && cy >= 0 && cy < r.Height
}

// RenderMapImage pre-renders the static background: grid lines and path.
func (r *BoardRenderer) RenderMapImage(path []geom.Point, pathWidth float32) {
	w := int(float64(r.Width) * r.CellSize)
	h := int(float64(r.Height) * r.CellSize)
	if r.mapImage != nil {
		r.mapImage.Deallocate()
	}
	r.mapImage = ebiten.NewImage(w, h)
	r.mapImage.Fill(r.colors.BackgroundColor)

	for x := 0; x <= r.Width; x++ {
		px := float32(float64(x) * r.CellSize)
		vector.StrokeLine(r.mapImage, px, 0, px, float32(h), 1, r.colors.GridLineColor, false)
	}
	for y := 0; y <= r.Height; y++ {
		py := float32(float64(y) * r.CellSize)
		vector.StrokeLine(r.mapImage, 0, py, float32(w), py, 1, r.colors.GridLineColor, false)
	}

	for i := 0; i+1 < len(path); i++ {
		x1, y1 := r.ToScreen(path[i])
		x2, y2 := r.ToScreen(path[i+1])
		vector.StrokeLine(r.mapImage, x1, y1, x2, y2, pathWidth, r.colors.PathColor, true)
		// Скругляем стыки сегментов.
		vector.DrawFilledCircle(r.mapImage, x2, y2, pathWidth/2, r.colors.PathColor, true)
	}
}

// Draw blits the pre-rendered background.
func (r *BoardRenderer) Draw(screen *ebiten.Image) {
	if r.mapImage != nil {
		screen.DrawImage(r.mapImage, nil)
	}
}

// DrawCell fills one cell, e.g. a placement preview.
func (r *BoardRenderer) DrawCell(screen *ebiten.Image, x, y int, clr color.Color) {
	s := float32(r.CellSize)
	vector.DrawFilledRect(screen, float32(x)*s, float32(y)*s, s, s, clr, false)
}

// DrawTower draws a tower body on its cell.
func (r *BoardRenderer) DrawTower(screen *ebiten.Image, x, y int, clr color.RGBA, selected bool, inset float32) {
	s := float32(r.CellSize)
	px, py := float32(x)*s+inset, float32(y)*s+inset
	size := s - 2*inset

	vector.DrawFilledRect(screen, px, py, size, size, r.colors.TowerCoreColor, true)
	stroke := r.colors.TowerStrokeColor
	if selected {
		stroke = r.colors.SelectedColor
	}
	vector.StrokeRect(screen, px, py, size, size, 2, stroke, true)
	cx, cy := r.ToScreen(geom.Pt(float64(x), float64(y)))
	vector.DrawFilledCircle(screen, cx, cy, size/4, clr, true)
	vector.StrokeCircle(screen, cx, cy, size/4, 1, DarkenColor(clr), true)
}

// DrawRange outlines a tower's reach.
func (r *BoardRenderer) DrawRange(screen *ebiten.Image, center geom.Point, rangeCells float64) {
	cx, cy := r.ToScreen(center)
	radius := float32(rangeCells * r.CellSize)
	vector.DrawFilledCircle(screen, cx, cy, radius, WithAlpha(r.colors.RangeColor, r.colors.RangeColor.A/3), true)
	vector.StrokeCircle(screen, cx, cy, radius, 1, r.colors.RangeColor, true)
}

// DrawEnemy draws an enemy with a health bar above it.
func (r *BoardRenderer) DrawEnemy(screen *ebiten.Image, pos geom.Point, clr color.RGBA, health float64, radius, barHeight float32) {
	cx, cy := r.ToScreen(pos)
	vector.DrawFilledCircle(screen, cx, cy, radius, clr, true)
	vector.StrokeCircle(screen, cx, cy, radius, 1, DarkenColor(clr), true)

	health = utils.Clamp(health, 0, 1)
	barW := radius * 2
	barX, barY := cx-radius, cy-radius-barHeight-2
	vector.DrawFilledRect(screen, barX, barY, barW, barHeight, r.colors.HealthBackColor, false)
	vector.DrawFilledRect(screen, barX, barY, barW*float32(health), barHeight, r.colors.HealthColor, false)
}

// DrawProjectile draws a shot in flight.
func (r *BoardRenderer) DrawProjectile(screen *ebiten.Image, pos geom.Point, clr color.RGBA, size float32) {
	cx, cy := r.ToScreen(pos)
	vector.DrawFilledCircle(screen, cx, cy, size, clr, true)
}
