// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logger"
	"go-path-defense/internal/system"
	"go-path-defense/pkg/pathmap"
)

// TickReport summarizes what one tick did.
type TickReport struct {
	Spawned     int
	Breached    int
	Fired       int
	Killed      int
	LivesLost   int
	MoneyGained int
}

// Game holds the simulation and the commands the UI may issue.
// All methods must be called from one goroutine; a command never runs
// in the middle of a tick.
type Game struct {
	Catalog          *defs.Catalog
	Path             *pathmap.Path
	Grid             *pathmap.Grid
	ECS              *entity.ECS
	EventDispatcher  *event.Dispatcher
	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	StateSystem      *system.StateSystem

	selectedTower string
	log           *slog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger replaces the shared logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// NewGame initializes a new game instance on the start screen.
func NewGame(catalog *defs.Catalog, opts ...Option) (*Game, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}
	if err := catalog.Prepare(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	path, err := pathmap.NewPath(catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("build path: %w", err)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Catalog:         catalog,
		Path:            path,
		Grid:            pathmap.NewGrid(catalog.Grid.Width, catalog.Grid.Height, path),
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		log:             logger.Logger,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.WaveSystem = system.NewWaveSystem(ecs, path, catalog, eventDispatcher, g.log)
	g.MovementSystem = system.NewMovementSystem(ecs, path, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, catalog, g.WaveSystem, eventDispatcher, g.log)

	eventDispatcher.SubscribeAll(&logListener{log: g.log})
	return g, nil
}

// NeedsTick reports whether the tick loop has anything to do. The driver
// may stop calling Tick while this is false.
func (g *Game) NeedsTick() bool {
	switch g.ECS.State.Status {
	case component.WaveInProgress:
		return true
	case component.Playing:
		return g.ECS.HasWork()
	default:
		return false
	}
}

// Tick advances the simulation by one fixed step:
// spawn, move, fire, resolve projectiles, then apply lives and money.
func (g *Game) Tick() TickReport {
	var r TickReport
	if !g.NeedsTick() {
		return r
	}
	dt := config.TickDurationMs

	if g.ECS.State.Status == component.WaveInProgress {
		r.Spawned = g.WaveSystem.Update()
	}
	r.Breached = g.MovementSystem.Update(dt)
	r.Fired = g.CombatSystem.Update(dt)
	r.Killed, r.MoneyGained = g.ProjectileSystem.Update(dt)

	r.LivesLost = r.Breached
	g.StateSystem.ApplyTick(r.LivesLost, r.MoneyGained)
	g.StateSystem.Resolve()

	g.ECS.Tick++
	return r
}

// StartGame resets everything and enters play.
func (g *Game) StartGame() {
	g.Reset()
	g.StateSystem.SwitchTo(component.Playing)
}

// Reset discards all dynamic state and returns to the start screen.
func (g *Game) Reset() {
	from := g.ECS.State.Status
	*g.ECS = *entity.NewECS()
	g.Grid.Reset()
	g.selectedTower = ""
	if from != component.StartScreen {
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.StatusChanged,
			Data: event.StatusData{From: from, To: component.StartScreen},
		})
	}
}

// StartNextWave starts the next scheduled wave. See StateSystem.StartNextWave.
func (g *Game) StartNextWave() bool {
	return g.StateSystem.StartNextWave()
}

// Status returns the current game status.
func (g *Game) Status() component.GameStatus {
	return g.ECS.State.Status
}

// SelectTower sets the UI's tower-to-build hint. An unknown ID clears it.
func (g *Game) SelectTower(defID string) {
	if _, ok := g.Catalog.Tower(defID); !ok {
		defID = ""
	}
	g.selectedTower = defID
}

// SelectedTower returns the current build hint, or "".
func (g *Game) SelectedTower() string {
	return g.selectedTower
}
