// internal/app/events.go
package app

import (
	"log/slog"

	"go-path-defense/internal/event"
)

// logListener пишет игровые события в лог.
type logListener struct {
	log *slog.Logger
}

func (l *logListener) OnEvent(e event.Event) {
	switch d := e.Data.(type) {
	case event.PlacementData:
		if d.Reason != nil {
			l.log.Info("placement rejected", "tower", d.DefID, "cell", d.Cell, "reason", d.Reason)
			return
		}
		l.log.Info("tower placed", "tower", d.DefID, "id", d.TowerID, "cell", d.Cell)
	case event.WaveData:
		l.log.Info(string(e.Type), "wave", d.Wave, "enemies", d.Enemies)
	case event.StatusData:
		l.log.Info("status changed", "from", d.From, "to", d.To)
	case event.EnemyData:
		l.log.Debug(string(e.Type), "enemy", d.DefID, "id", d.ID)
	case event.CounterData:
		l.log.Debug(string(e.Type), "before", d.Before, "after", d.After)
	}
}
