package pathmap

import (
	"errors"
	"math"
	"testing"

	"go-path-defense/pkg/geom"
)

// The default board route, kept here so the tests do not depend on the catalog.
var testWaypoints = []geom.Point{
	{X: -1, Y: 7}, {X: 2, Y: 7}, {X: 2, Y: 3}, {X: 6, Y: 3}, {X: 6, Y: 11},
	{X: 10, Y: 11}, {X: 10, Y: 2}, {X: 17, Y: 2}, {X: 17, Y: 8}, {X: 21, Y: 8},
	{X: 21, Y: 5}, {X: 24, Y: 5},
}

func mustPath(t *testing.T, wp []geom.Point) *Path {
	t.Helper()
	p, err := NewPath(wp)
	if err != nil {
		t.Fatalf("NewPath: %v", err)
	}
	return p
}

func TestNewPathRejectsShortRoutes(t *testing.T) {
	for _, wp := range [][]geom.Point{nil, {{X: 1, Y: 1}}} {
		if _, err := NewPath(wp); !errors.Is(err, ErrPathTooShort) {
			t.Errorf("NewPath(%v) error = %v, want ErrPathTooShort", wp, err)
		}
	}
}

func TestPathQueries(t *testing.T) {
	p := mustPath(t, testWaypoints)

	if p.Len() != 12 || p.SegmentCount() != 11 {
		t.Fatalf("unexpected sizes: len=%d segments=%d", p.Len(), p.SegmentCount())
	}
	if p.Start() != geom.Pt(-1, 7) || p.WaypointAt(p.Len()-1) != geom.Pt(24, 5) {
		t.Fatalf("unexpected endpoints %v %v", p.Start(), p.WaypointAt(p.Len()-1))
	}
	if next, ok := p.Next(0); !ok || next != geom.Pt(2, 7) {
		t.Fatalf("Next(0) = %v, %v", next, ok)
	}
	if _, ok := p.Next(p.Len() - 1); ok {
		t.Fatal("last waypoint must have no successor")
	}
	lo, hi := p.SegmentBounds(1)
	if lo != geom.Pt(2, 3) || hi != geom.Pt(2, 7) {
		t.Fatalf("SegmentBounds(1) = %v %v", lo, hi)
	}
	if math.Abs(p.Length()-55) > 1e-9 {
		t.Fatalf("Length() = %v, want 55", p.Length())
	}
}

func TestPathIsImmutable(t *testing.T) {
	wp := []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}}
	p := mustPath(t, wp)
	wp[0] = geom.Pt(9, 9)
	out := p.Waypoints()
	out[1] = geom.Pt(9, 9)
	if p.WaypointAt(0) != geom.Pt(0, 0) || p.WaypointAt(1) != geom.Pt(5, 0) {
		t.Fatal("path changed through an external slice")
	}
}

func TestGridPlacementRules(t *testing.T) {
	g := NewGrid(24, 16, mustPath(t, testWaypoints))

	cases := []struct {
		name string
		cell Cell
		want error
	}{
		{"free cell", Cell{0, 0}, nil},
		{"next to path", Cell{3, 4}, nil},
		{"on horizontal segment", Cell{4, 3}, ErrCellOnPath},
		{"on vertical segment", Cell{6, 8}, ErrCellOnPath},
		{"waypoint corner", Cell{2, 3}, ErrCellOnPath},
		{"entry segment clipped at the edge", Cell{0, 7}, ErrCellOnPath},
		{"exit cell", Cell{23, 5}, ErrCellOnPath},
		{"left of grid", Cell{-1, 0}, ErrOutOfBounds},
		{"below grid", Cell{0, 16}, ErrOutOfBounds},
	}
	for _, c := range cases {
		if err := g.CanPlace(c.cell); !errors.Is(err, c.want) {
			t.Errorf("%s: CanPlace(%v) = %v, want %v", c.name, c.cell, err, c.want)
		}
	}
}

func TestGridOccupy(t *testing.T) {
	g := NewGrid(24, 16, mustPath(t, testWaypoints))
	c := Cell{X: 4, Y: 5}

	if err := g.Occupy(c); err != nil {
		t.Fatalf("Occupy: %v", err)
	}
	if !g.Occupied(c) {
		t.Fatal("expected cell to be occupied")
	}
	if err := g.CanPlace(c); !errors.Is(err, ErrCellOccupied) {
		t.Fatalf("CanPlace on occupied cell = %v", err)
	}
	// Neighbours stay free.
	for _, n := range []Cell{{3, 5}, {5, 5}, {4, 4}, {4, 6}} {
		if err := g.CanPlace(n); err != nil {
			t.Fatalf("neighbour %v blocked: %v", n, err)
		}
	}
}

func TestGridResetClearsTowers(t *testing.T) {
	g := NewGrid(24, 16, mustPath(t, testWaypoints))
	if err := g.Occupy(Cell{0, 0}); err != nil {
		t.Fatalf("Occupy: %v", err)
	}
	g.Reset()
	if g.Occupied(Cell{0, 0}) || g.CanPlace(Cell{0, 0}) != nil {
		t.Fatal("reset should clear towers")
	}
	if !g.OnPath(Cell{4, 3}) {
		t.Fatal("reset should keep the path")
	}
}
