// internal/system/combat.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

// CombatSystem управляет атакой башен: перезарядка, выбор цели, выстрел.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update ticks every tower's cooldown and fires the ready ones. It returns
// the number of projectiles created.
func (s *CombatSystem) Update(deltaMs float64) int {
	fired := 0
	for _, tower := range s.ecs.Towers {
		tower.Cooldown = max(0, tower.Cooldown-deltaMs)
		if tower.Cooldown != 0 {
			continue
		}
		// No target keeps the cooldown at zero; the tower retries next tick.
		target := s.findFirstEnemyInRange(tower)
		if target == nil {
			continue
		}
		s.createProjectile(tower, target.ID)
		tower.Cooldown = tower.Def.CooldownMs()
		fired++
	}
	return fired
}

// findFirstEnemyInRange returns the earliest-spawned live enemy within range.
func (s *CombatSystem) findFirstEnemyInRange(tower *component.Tower) *component.Enemy {
	origin := tower.Position()
	for _, e := range s.ecs.Enemies {
		if geom.Distance(origin, e.Position) <= tower.Def.Range {
			return e
		}
	}
	return nil
}

func (s *CombatSystem) createProjectile(tower *component.Tower, targetID types.EntityID) {
	proj := &component.Projectile{
		ID:       s.ecs.NewEntity(),
		TowerID:  tower.ID,
		Tower:    tower.Def,
		TargetID: targetID,
		Position: tower.Position(),
	}
	s.ecs.Projectiles = append(s.ecs.Projectiles, proj)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ProjectileFired,
		Data: event.ShotData{ProjectileID: proj.ID, TowerID: tower.ID, TargetID: targetID, Damage: tower.Def.Damage},
	})
}
