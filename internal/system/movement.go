// internal/system/movement.go
package system

import (
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/pkg/geom"
	"go-path-defense/pkg/pathmap"
)

// MovementSystem moves enemies along the path and removes those that reach the end.
type MovementSystem struct {
	ecs             *entity.ECS
	path            *pathmap.Path
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, path *pathmap.Path, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, path: path, eventDispatcher: eventDispatcher}
}

// Update advances every enemy by one tick and returns how many breached.
//
// An enemy that would pass its next waypoint stops exactly on it, so the
// path index grows by at most one per tick whatever the speed.
func (s *MovementSystem) Update(deltaMs float64) int {
	last := s.path.Len() - 1
	breached := 0
	alive := s.ecs.Enemies[:0]
	for _, e := range s.ecs.Enemies {
		if next, ok := s.path.Next(e.Index); ok {
			step := e.Def.Speed * deltaMs / 1000
			pos, arrived := geom.StepTowards(e.Position, next, step)
			e.Position = pos
			if arrived {
				e.Index++
			}
		} else {
			// Уже за последним сегментом: считаем прорывом.
			e.Index = last
		}

		if e.Index >= last {
			breached++
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyBreached,
				Data: event.EnemyData{ID: e.ID, DefID: e.DefID, Reward: e.Def.Reward},
			})
			continue
		}
		alive = append(alive, e)
	}
	clearTail(s.ecs.Enemies, len(alive))
	s.ecs.Enemies = alive
	return breached
}

// clearTail nils out the slots past n so removed entities can be collected.
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
