// internal/component/enemy.go
package component

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID     types.EntityID
	DefID  string
	Def    *defs.EnemyDefinition // shared archetype, read-only
	Health int
	PathProgress
}

// Alive reports whether the enemy still has health left.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}
