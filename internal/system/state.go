// internal/system/state.go
package system

import (
	"log/slog"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

// StateSystem owns the game status machine and the lives/money counters.
type StateSystem struct {
	ecs             *entity.ECS
	catalog         *defs.Catalog
	waves           *WaveSystem
	eventDispatcher *event.Dispatcher
	log             *slog.Logger
}

func NewStateSystem(ecs *entity.ECS, catalog *defs.Catalog, waves *WaveSystem, eventDispatcher *event.Dispatcher, log *slog.Logger) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		catalog:         catalog,
		waves:           waves,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
}

// SwitchTo changes the status and announces it. Switching to the current
// status does nothing.
func (s *StateSystem) SwitchTo(status component.GameStatus) {
	from := s.ecs.State.Status
	if from == status {
		return
	}
	s.ecs.State.Status = status
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.StatusChanged,
		Data: event.StatusData{From: from, To: status},
	})
}

// StartNextWave moves PLAYING to WAVE_IN_PROGRESS with the next scheduled
// wave, or to VICTORY when the schedule is exhausted. Any other status
// ignores the request. It reports whether a wave was started.
func (s *StateSystem) StartNextWave() bool {
	st := &s.ecs.State
	if st.Status != component.Playing {
		s.log.Debug("start wave ignored", "status", st.Status)
		return false
	}
	if st.Wave >= s.catalog.WaveCount() {
		s.SwitchTo(component.Victory)
		return false
	}

	st.Wave++
	wave, _ := s.catalog.Wave(st.Wave)
	s.waves.StartWave(st.Wave, wave)
	s.SwitchTo(component.WaveInProgress)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Wave: st.Wave, Enemies: wave.EnemyCount()},
	})
	return true
}

// Spend debits cost if the player can afford it.
func (s *StateSystem) Spend(cost int) bool {
	st := &s.ecs.State
	if st.Money < cost {
		return false
	}
	s.setMoney(st.Money - cost)
	return true
}

// ApplyTick applies one tick's aggregated breaches and rewards.
func (s *StateSystem) ApplyTick(livesLost, moneyGained int) {
	st := &s.ecs.State
	if livesLost > 0 {
		before := st.Lives
		st.Lives = max(0, st.Lives-livesLost)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.LivesChanged,
			Data: event.CounterData{Before: before, After: st.Lives},
		})
	}
	if moneyGained > 0 {
		s.setMoney(st.Money + moneyGained)
	}
}

// Resolve runs the end-of-tick transitions. Running out of lives wins over
// a wave that was cleared in the same tick.
func (s *StateSystem) Resolve() {
	st := &s.ecs.State
	if st.Lives <= 0 && !st.Status.Terminal() {
		s.SwitchTo(component.GameOver)
		return
	}
	if st.Status != component.WaveInProgress || len(s.ecs.Enemies) > 0 || !s.waves.Drained() {
		return
	}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveCleared,
		Data: event.WaveData{Wave: st.Wave},
	})
	if st.Wave >= s.catalog.WaveCount() {
		s.SwitchTo(component.Victory)
	} else {
		s.SwitchTo(component.Playing)
	}
}

func (s *StateSystem) setMoney(amount int) {
	before := s.ecs.State.Money
	s.ecs.State.Money = amount
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MoneyChanged,
		Data: event.CounterData{Before: before, After: amount},
	})
}
