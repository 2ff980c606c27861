// internal/component/wave.go
package component

import "go-path-defense/internal/defs"

// SpawnPhase is the state of the spawn cursor.
type SpawnPhase int

const (
	SpawnIdle SpawnPhase = iota
	SpawnActive
	SpawnDrained
)

func (p SpawnPhase) String() string {
	switch p {
	case SpawnIdle:
		return "IDLE"
	case SpawnActive:
		return "SPAWNING"
	case SpawnDrained:
		return "DRAINED"
	default:
		return "UNKNOWN"
	}
}

// SpawnCursor tracks how far the active wave has progressed through its groups.
type SpawnCursor struct {
	Wave           int // 0 when no wave was started since reset
	Groups         []defs.SpawnGroup
	GroupIndex     int
	SpawnedInGroup int
	NextSpawnTime  float64 // simulation ms
}

func (c *SpawnCursor) Phase() SpawnPhase {
	if c.Wave == 0 {
		return SpawnIdle
	}
	if c.GroupIndex >= len(c.Groups) {
		return SpawnDrained
	}
	return SpawnActive
}

// Drained reports whether the current wave has nothing left to release.
// An idle cursor counts as drained.
func (c *SpawnCursor) Drained() bool {
	return c.Phase() != SpawnActive
}
