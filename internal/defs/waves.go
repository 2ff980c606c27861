// internal/defs/waves.go
package defs

// SpawnGroup is a run of identical enemies released one at a time.
type SpawnGroup struct {
	EnemyID      string `json:"enemy_id"`
	Count        int    `json:"count"`
	SpawnDelayMs int    `json:"spawn_delay_ms"` // gap between two spawns of this group
}

// WaveDefinition описывает одну волну: группы идут строго по порядку.
type WaveDefinition struct {
	Groups []SpawnGroup `json:"groups"`
}

// EnemyCount is the total number of enemies the wave releases.
func (w WaveDefinition) EnemyCount() int {
	n := 0
	for _, g := range w.Groups {
		n += g.Count
	}
	return n
}
