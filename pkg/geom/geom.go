// pkg/geom/geom.go
package geom

import "math"

// Point is a position in board units. Grid cell (x, y) sits at Point{x, y}.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the straight-line distance between a and b.
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// StepTowards moves from towards to by at most step.
// When the remaining distance is strictly less than step the result snaps to
// `to` and arrived is true; otherwise the point advances exactly step along
// the normalized direction.
func StepTowards(from, to Point, step float64) (next Point, arrived bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < step {
		return to, true
	}
	if dist == 0 {
		return from, false
	}
	return Point{
		X: from.X + (dx/dist)*step,
		Y: from.Y + (dy/dist)*step,
	}, false
}
