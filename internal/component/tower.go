// component/tower.go
package component

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/geom"
	"go-path-defense/pkg/pathmap"
)

type Tower struct {
	ID       types.EntityID
	DefID    string
	Def      *defs.TowerDefinition
	Cell     pathmap.Cell // fixed at placement
	Cooldown float64      // ms until the tower may fire again
}

// Position is the board point the tower shoots from.
func (t *Tower) Position() geom.Point {
	return t.Cell.Center()
}
