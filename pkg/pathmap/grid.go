// pkg/pathmap/grid.go
package pathmap

import (
	"errors"
	"math"

	"go-path-defense/pkg/geom"

	"github.com/solarlune/resolv"
)

const (
	TagPath  = "path"
	TagTower = "tower"
)

// Each grid cell spans cellUnits units of the collision space. Objects are
// inset by one unit on every side so that touching boxes never share a cell.
const (
	cellUnits = 4
	cellInset = 1
)

var (
	ErrOutOfBounds  = errors.New("cell is outside the grid")
	ErrCellOccupied = errors.New("cell is occupied by a tower")
	ErrCellOnPath   = errors.New("cell intersects the path")
)

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// Center returns the board position of the cell.
func (c Cell) Center() geom.Point {
	return geom.Point{X: float64(c.X), Y: float64(c.Y)}
}

// Grid tracks which cells can hold a tower. Path segment bounding boxes and
// placed towers live in a resolv space as tagged objects.
type Grid struct {
	Width, Height int

	path  *Path
	space *resolv.Space
}

// NewGrid builds an empty grid with the path's bounding boxes marked.
func NewGrid(width, height int, path *Path) *Grid {
	g := &Grid{Width: width, Height: height, path: path}
	g.Reset()
	return g
}

// Reset removes every tower and rebuilds the path markers.
func (g *Grid) Reset() {
	g.space = resolv.NewSpace(g.Width*cellUnits, g.Height*cellUnits, cellUnits, cellUnits)

	for i := 0; i < g.path.SegmentCount(); i++ {
		lo, hi := g.path.SegmentBounds(i)
		// A cell is on the path when its coordinate lies inside the closed box.
		x0, x1 := int(math.Ceil(lo.X)), int(math.Floor(hi.X))
		y0, y1 := int(math.Ceil(lo.Y)), int(math.Floor(hi.Y))
		if obj := g.boxObject(x0, y0, x1, y1, TagPath); obj != nil {
			g.space.Add(obj)
		}
	}
}

// boxObject covers the inclusive cell range clamped to the grid, or returns nil if empty.
func (g *Grid) boxObject(x0, y0, x1, y1 int, tags ...string) *resolv.Object {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, g.Width-1), min(y1, g.Height-1)
	if x0 > x1 || y0 > y1 {
		return nil
	}
	x := float64(x0*cellUnits + cellInset)
	y := float64(y0*cellUnits + cellInset)
	w := float64((x1-x0+1)*cellUnits - 2*cellInset)
	h := float64((y1-y0+1)*cellUnits - 2*cellInset)
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}

// InBounds reports whether c is inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Occupied reports whether a tower stands on c.
func (g *Grid) Occupied(c Cell) bool {
	return g.probe(c, TagTower)
}

// OnPath reports whether c intersects any path segment's bounding box.
func (g *Grid) OnPath(c Cell) bool {
	return g.probe(c, TagPath)
}

// CanPlace returns nil if a tower may be built on c.
func (g *Grid) CanPlace(c Cell) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	if g.Occupied(c) {
		return ErrCellOccupied
	}
	if g.OnPath(c) {
		return ErrCellOnPath
	}
	return nil
}

// Occupy marks c as holding a tower.
func (g *Grid) Occupy(c Cell) error {
	if err := g.CanPlace(c); err != nil {
		return err
	}
	obj := g.boxObject(c.X, c.Y, c.X, c.Y, TagTower)
	g.space.Add(obj)
	return nil
}

// probe checks a single-cell object at c against objects carrying tag.
func (g *Grid) probe(c Cell, tag string) bool {
	if !g.InBounds(c) {
		return false
	}
	obj := g.boxObject(c.X, c.Y, c.X, c.Y)
	g.space.Add(obj)
	defer g.space.Remove(obj)
	return obj.Check(0, 0, tag) != nil
}
