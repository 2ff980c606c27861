// internal/entity/ecs.go
package entity

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/types"
)

// ECS holds every piece of dynamic simulation state. Collections keep
// insertion order: enemies are ordered by spawn, which targeting relies on.
type ECS struct {
	Tick        uint64 // completed ticks since reset
	NextID      types.EntityID
	Enemies     []*component.Enemy
	Towers      []*component.Tower
	Projectiles []*component.Projectile
	Cursor      component.SpawnCursor
	State       component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Enemies:     make([]*component.Enemy, 0, 64),
		Towers:      make([]*component.Tower, 0, 16),
		Projectiles: make([]*component.Projectile, 0, 64),
		State: component.GameState{
			Status: component.StartScreen,
			Lives:  config.InitialLives,
			Money:  config.InitialMoney,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Now is the simulation time in milliseconds at the start of the current tick.
func (ecs *ECS) Now() float64 {
	return float64(ecs.Tick) * 1000 / config.TickRate
}

// FindEnemy returns the live enemy with the given ID and its index.
func (ecs *ECS) FindEnemy(id types.EntityID) (*component.Enemy, int) {
	for i, e := range ecs.Enemies {
		if e.ID == id {
			return e, i
		}
	}
	return nil, -1
}

// RemoveEnemyAt drops the enemy at index i, keeping the order of the rest.
func (ecs *ECS) RemoveEnemyAt(i int) {
	copy(ecs.Enemies[i:], ecs.Enemies[i+1:])
	ecs.Enemies[len(ecs.Enemies)-1] = nil
	ecs.Enemies = ecs.Enemies[:len(ecs.Enemies)-1]
}

// HasWork reports whether anything is still moving on the board.
func (ecs *ECS) HasWork() bool {
	return len(ecs.Enemies) > 0 || len(ecs.Projectiles) > 0
}
