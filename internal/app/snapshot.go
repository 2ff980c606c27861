// internal/app/snapshot.go
package app

import (
	"image/color"

	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
	"go-path-defense/pkg/pathmap"
)

type EnemyView struct {
	ID        types.EntityID
	Archetype string
	Name      string
	HP        int
	MaxHP     int
	Position  geom.Point
	PathIndex int
	Color     color.RGBA
}

type TowerView struct {
	ID        types.EntityID
	Archetype string
	Cell      pathmap.Cell
	Cooldown  float64
	Range     float64
	Color     color.RGBA
}

type ProjectileView struct {
	ID             types.EntityID
	TowerArchetype string
	Color          color.RGBA
	Position       geom.Point
}

// Snapshot is a read-only copy of the game for renderers and tests.
// It shares no memory with the Game.
type Snapshot struct {
	Status      component.GameStatus
	Wave        int
	WaveCount   int
	Lives       int
	Money       int
	Tick        uint64
	Enemies     []EnemyView
	Towers      []TowerView
	Projectiles []ProjectileView
	Path        []geom.Point
	GridWidth   int
	GridHeight  int
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	s := Snapshot{
		Status:      ecs.State.Status,
		Wave:        ecs.State.Wave,
		WaveCount:   g.Catalog.WaveCount(),
		Lives:       ecs.State.Lives,
		Money:       ecs.State.Money,
		Tick:        ecs.Tick,
		Enemies:     make([]EnemyView, 0, len(ecs.Enemies)),
		Towers:      make([]TowerView, 0, len(ecs.Towers)),
		Projectiles: make([]ProjectileView, 0, len(ecs.Projectiles)),
		Path:        g.Path.Waypoints(),
		GridWidth:   g.Grid.Width,
		GridHeight:  g.Grid.Height,
	}
	for _, e := range ecs.Enemies {
		s.Enemies = append(s.Enemies, EnemyView{
			ID:        e.ID,
			Archetype: e.DefID,
			Name:      e.Def.Name,
			HP:        e.Health,
			MaxHP:     e.Def.Health,
			Position:  e.Position,
			PathIndex: e.Index,
			Color:     e.Def.Visuals.Color,
		})
	}
	for _, t := range ecs.Towers {
		s.Towers = append(s.Towers, TowerView{
			ID:        t.ID,
			Archetype: t.DefID,
			Cell:      t.Cell,
			Cooldown:  t.Cooldown,
			Range:     t.Def.Range,
			Color:     t.Def.Visuals.Color,
		})
	}
	for _, p := range ecs.Projectiles {
		s.Projectiles = append(s.Projectiles, ProjectileView{
			ID:             p.ID,
			TowerArchetype: p.Tower.ID,
			Color:          p.Tower.Visuals.ProjectileColor,
			Position:       p.Position,
		})
	}
	return s
}

// WaveCount is the number of waves in the schedule.
func (g *Game) WaveCount() int {
	return g.Catalog.WaveCount()
}

// TowerAt returns the tower standing on cell, if any.
func (s *Snapshot) TowerAt(cell pathmap.Cell) (TowerView, bool) {
	for _, t := range s.Towers {
		if t.Cell == cell {
			return t, true
		}
	}
	return TowerView{}, false
}
