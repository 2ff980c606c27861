// internal/system/projectile.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/pkg/geom"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update moves every projectile toward its target's current position and
// resolves hits in order. A kill removes the enemy from ecs.Enemies at once,
// so later projectiles in the same tick cannot claim the reward again.
// It returns the number of kills and the money they earned.
func (s *ProjectileSystem) Update(deltaMs float64) (killed, reward int) {
	inFlight := s.ecs.Projectiles[:0]
	for _, proj := range s.ecs.Projectiles {
		target, idx := s.ecs.FindEnemy(proj.TargetID)
		if target == nil {
			// Цель пропала: снаряд исчезает без эффекта.
			continue
		}

		step := proj.Tower.ProjectileSpeed * deltaMs / 1000
		pos, hit := geom.StepTowards(proj.Position, target.Position, step)
		if !hit {
			proj.Position = pos
			inFlight = append(inFlight, proj)
			continue
		}

		if s.hitTarget(proj, target) {
			s.ecs.RemoveEnemyAt(idx)
			killed++
			reward += target.Def.Reward
		}
	}
	clearTail(s.ecs.Projectiles, len(inFlight))
	s.ecs.Projectiles = inFlight
	return killed, reward
}

// hitTarget applies the projectile's damage and reports whether the target died.
func (s *ProjectileSystem) hitTarget(proj *component.Projectile, target *component.Enemy) bool {
	target.Health -= proj.Tower.Damage
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ProjectileHit,
		Data: event.ShotData{ProjectileID: proj.ID, TowerID: proj.TowerID, TargetID: target.ID, Damage: proj.Tower.Damage},
	})
	if target.Alive() {
		return false
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyData{ID: target.ID, DefID: target.DefID, Reward: target.Def.Reward},
	})
	return true
}
