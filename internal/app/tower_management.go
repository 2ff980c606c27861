// internal/app/tower_management.go
package app

import (
	"errors"

	"go-path-defense/internal/component"
	"go-path-defense/internal/event"
	"go-path-defense/pkg/pathmap"
)

var (
	ErrUnknownTower      = errors.New("unknown tower archetype")
	ErrInsufficientFunds = errors.New("not enough money")
	ErrNotBuilding       = errors.New("towers can only be built during play")
)

// PlaceTower attempts to build a tower of the given archetype on cell.
// A rejected placement changes nothing; the reason is only logged and
// dispatched as PlacementRejected.
func (g *Game) PlaceTower(defID string, cell pathmap.Cell) bool {
	if err := g.CanPlaceTower(defID, cell); err != nil {
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.PlacementRejected,
			Data: event.PlacementData{DefID: defID, Cell: cell, Reason: err},
		})
		return false
	}

	def, _ := g.Catalog.Tower(defID)
	if err := g.Grid.Occupy(cell); err != nil {
		// CanPlaceTower already checked the grid.
		g.log.Warn("grid refused a validated cell", "cell", cell, "err", err)
		return false
	}
	g.StateSystem.Spend(def.Cost)

	tower := &component.Tower{
		ID:    g.ECS.NewEntity(),
		DefID: defID,
		Def:   def,
		Cell:  cell,
	}
	g.ECS.Towers = append(g.ECS.Towers, tower)
	g.selectedTower = ""

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.PlacementData{TowerID: tower.ID, DefID: defID, Cell: cell},
	})
	return true
}

// CanPlaceTower returns nil if PlaceTower would succeed.
func (g *Game) CanPlaceTower(defID string, cell pathmap.Cell) error {
	switch g.ECS.State.Status {
	case component.Playing, component.WaveInProgress:
	default:
		return ErrNotBuilding
	}
	def, ok := g.Catalog.Tower(defID)
	if !ok {
		return ErrUnknownTower
	}
	if !g.Grid.InBounds(cell) {
		return pathmap.ErrOutOfBounds
	}
	if g.ECS.State.Money < def.Cost {
		return ErrInsufficientFunds
	}
	return g.Grid.CanPlace(cell)
}
