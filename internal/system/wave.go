// internal/system/wave.go
package system

import (
	"log/slog"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/pkg/pathmap"
)

// WaveSystem releases the enemies of the active wave, one at a time.
type WaveSystem struct {
	ecs             *entity.ECS
	path            *pathmap.Path
	catalog         *defs.Catalog
	eventDispatcher *event.Dispatcher
	log             *slog.Logger
}

func NewWaveSystem(ecs *entity.ECS, path *pathmap.Path, catalog *defs.Catalog, eventDispatcher *event.Dispatcher, log *slog.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		path:            path,
		catalog:         catalog,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
}

// StartWave rewinds the spawn cursor to the first group of wave n.
// The first enemy is due immediately.
func (s *WaveSystem) StartWave(n int, wave defs.WaveDefinition) {
	s.ecs.Cursor = component.SpawnCursor{
		Wave:          n,
		Groups:        wave.Groups,
		NextSpawnTime: s.ecs.Now(),
	}
}

// Update spawns at most one enemy. Missed spawn slots are not caught up:
// if ticks run late, the wave simply takes longer.
func (s *WaveSystem) Update() int {
	c := &s.ecs.Cursor
	if c.Phase() != component.SpawnActive {
		return 0
	}
	now := s.ecs.Now()
	if now < c.NextSpawnTime {
		return 0
	}

	group := c.Groups[c.GroupIndex]
	spawned := 0
	if def, ok := s.catalog.Enemy(group.EnemyID); ok {
		s.spawnEnemy(group.EnemyID, def)
		spawned = 1
	} else {
		s.log.Warn("wave group references unknown enemy", "wave", c.Wave, "enemy", group.EnemyID)
	}

	c.SpawnedInGroup++
	c.NextSpawnTime = now + float64(group.SpawnDelayMs)
	if c.SpawnedInGroup >= group.Count {
		c.GroupIndex++
		c.SpawnedInGroup = 0
	}
	return spawned
}

// Drained reports whether the active wave has released everything.
func (s *WaveSystem) Drained() bool {
	return s.ecs.Cursor.Drained()
}

func (s *WaveSystem) spawnEnemy(defID string, def *defs.EnemyDefinition) {
	e := &component.Enemy{
		ID:     s.ecs.NewEntity(),
		DefID:  defID,
		Def:    def,
		Health: def.Health,
		PathProgress: component.PathProgress{
			Position: s.path.Start(),
			Index:    0,
		},
	}
	s.ecs.Enemies = append(s.ecs.Enemies, e)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{ID: e.ID, DefID: defID, Reward: def.Reward},
	})
}
