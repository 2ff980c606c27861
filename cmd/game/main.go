// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/logger"
	"go-path-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	width, height  int
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	catalogPath := flag.String("catalog", "", "path to a catalog JSON file (built-in catalog if empty)")
	flag.Parse()

	catalog := defs.Default()
	if *catalogPath != "" {
		var err error
		if catalog, err = defs.LoadCatalog(*catalogPath); err != nil {
			log.Fatal(err)
		}
	}

	game, err := app.NewGame(catalog)
	if err != nil {
		log.Fatal(err)
	}
	logger.Logger.Info("game ready", "waves", game.WaveCount(), "path_len", game.Path.Length(), "grid_w", game.Grid.Width, "grid_h", game.Grid.Height)

	sm := state.NewStateMachine() // Создаём машину состояний
	menu := state.NewClient(sm, game, basicfont.Face7x13)
	sm.SetState(menu)

	width := game.Grid.Width * config.CellSize
	height := game.Grid.Height*config.CellSize + config.HUDHeight
	a := &AppGame{
		stateMachine:   sm,
		width:          width,
		height:         height,
		lastUpdateTime: time.Now(),
	}

	// One ebiten update is one simulation tick.
	ebiten.SetTPS(config.TickRate)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Path Defense")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
