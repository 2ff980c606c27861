// pkg/pathmap/path.go
package pathmap

import (
	"errors"
	"math"

	"go-path-defense/pkg/geom"
)

// ErrPathTooShort is returned when a path has fewer than two waypoints.
var ErrPathTooShort = errors.New("path needs at least two waypoints")

// Path is the fixed route enemies walk. Segment i joins waypoint i and i+1.
// A Path is immutable once built.
type Path struct {
	waypoints []geom.Point
}

// NewPath copies the waypoints into a new Path.
func NewPath(waypoints []geom.Point) (*Path, error) {
	if len(waypoints) < 2 {
		return nil, ErrPathTooShort
	}
	wp := make([]geom.Point, len(waypoints))
	copy(wp, waypoints)
	return &Path{waypoints: wp}, nil
}

// Len returns the number of waypoints.
func (p *Path) Len() int {
	return len(p.waypoints)
}

// SegmentCount returns the number of segments, always Len()-1.
func (p *Path) SegmentCount() int {
	return len(p.waypoints) - 1
}

// WaypointAt returns waypoint i. It panics when i is out of range, like a slice index.
func (p *Path) WaypointAt(i int) geom.Point {
	return p.waypoints[i]
}

// Start is the spawn point.
func (p *Path) Start() geom.Point {
	return p.waypoints[0]
}

// Next returns the waypoint after index i, if any.
func (p *Path) Next(i int) (geom.Point, bool) {
	if i < 0 || i+1 >= len(p.waypoints) {
		return geom.Point{}, false
	}
	return p.waypoints[i+1], true
}

// Waypoints returns a copy of all waypoints.
func (p *Path) Waypoints() []geom.Point {
	wp := make([]geom.Point, len(p.waypoints))
	copy(wp, p.waypoints)
	return wp
}

// SegmentBounds returns the axis-aligned bounding box of segment i.
func (p *Path) SegmentBounds(i int) (lo, hi geom.Point) {
	a, b := p.waypoints[i], p.waypoints[i+1]
	lo = geom.Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
	hi = geom.Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
	return lo, hi
}

// Length returns the total length of the route.
func (p *Path) Length() float64 {
	total := 0.0
	for i := 0; i < p.SegmentCount(); i++ {
		total += geom.Distance(p.waypoints[i], p.waypoints[i+1])
	}
	return total
}
