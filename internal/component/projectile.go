// internal/component/projectile.go
package component

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
)

// Projectile представляет летящий снаряд.
// The target is held by ID and looked up every tick; it may already be gone.
type Projectile struct {
	ID       types.EntityID
	TowerID  types.EntityID
	Tower    *defs.TowerDefinition // archetype of the tower that fired
	TargetID types.EntityID
	Position geom.Point
}
