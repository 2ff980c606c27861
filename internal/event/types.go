// internal/event/types.go
package event

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/pathmap"
)

const (
	EnemySpawned      EventType = "EnemySpawned"
	EnemyBreached     EventType = "EnemyBreached" // дошёл до конца пути
	EnemyKilled       EventType = "EnemyKilled"
	ProjectileFired   EventType = "ProjectileFired"
	ProjectileHit     EventType = "ProjectileHit"
	TowerPlaced       EventType = "TowerPlaced"
	PlacementRejected EventType = "PlacementRejected"
	WaveStarted       EventType = "WaveStarted"
	WaveCleared       EventType = "WaveCleared"
	LivesChanged      EventType = "LivesChanged"
	MoneyChanged      EventType = "MoneyChanged"
	StatusChanged     EventType = "StatusChanged"
)

// EnemyData is the payload of EnemySpawned, EnemyBreached and EnemyKilled.
type EnemyData struct {
	ID     types.EntityID
	DefID  string
	Reward int
}

// ShotData is the payload of ProjectileFired and ProjectileHit.
type ShotData struct {
	ProjectileID types.EntityID
	TowerID      types.EntityID
	TargetID     types.EntityID
	Damage       int
}

// PlacementData is the payload of TowerPlaced and PlacementRejected.
type PlacementData struct {
	TowerID types.EntityID // zero when rejected
	DefID   string
	Cell    pathmap.Cell
	Reason  error // nil when placed
}

// WaveData is the payload of WaveStarted and WaveCleared.
type WaveData struct {
	Wave    int
	Enemies int
}

// CounterData is the payload of LivesChanged and MoneyChanged.
type CounterData struct {
	Before, After int
}

// StatusData is the payload of StatusChanged.
type StatusData struct {
	From, To component.GameStatus
}
