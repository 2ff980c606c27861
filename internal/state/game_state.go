// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"go-path-defense/internal/app"
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/event"
	"go-path-defense/internal/ui"
	"go-path-defense/pkg/geom"
	"go-path-defense/pkg/pathmap"
	"go-path-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// GameState отвечает за поле, HUD и ввод игрока.
// Ввод превращается в команды app.Game; сама симуляция здесь не считается.
type GameState struct {
	sm            *StateMachine
	menu          *MenuState
	game          *app.Game
	font          font.Face
	renderer      *render.BoardRenderer
	palette       *ui.TowerPalette
	hud           *ui.HUD
	waveIndicator *ui.WaveIndicator
	indicator     *ui.StateIndicator
	speedButton   *ui.SpeedButton
	waveButton    *ui.Button
	resetButton   *ui.Button
	lastClickTime time.Time
}

// NewClient builds the client screens around g and returns the start screen.
func NewClient(sm *StateMachine, g *app.Game, face font.Face) *MenuState {
	gs := NewGameState(sm, g, face)
	gs.menu = NewMenuState(sm, gs, face)
	return gs.menu
}

func NewGameState(sm *StateMachine, g *app.Game, face font.Face) *GameState {
	colors := &render.BoardColors{
		BackgroundColor:  config.BackgroundColor,
		GridLineColor:    config.GridLineColor,
		PathColor:        config.PathColor,
		TowerCoreColor:   config.TowerCoreColor,
		TowerStrokeColor: config.TowerStrokeColor,
		SelectedColor:    config.SelectedColor,
		HealthBackColor:  config.HealthBackColor,
		HealthColor:      config.HealthColor,
		RangeColor:       config.RangeColor,
	}
	renderer := render.NewBoardRenderer(config.CellSize, g.Grid.Width, g.Grid.Height, colors)
	renderer.RenderMapImage(g.Path.Waypoints(), config.PathWidth)

	gs := &GameState{
		sm:       sm,
		game:     g,
		font:     face,
		renderer: renderer,
	}
	w, h := gs.ScreenSize()
	boardH := h - config.HUDHeight

	gs.hud = &ui.HUD{
		X:          config.HUDPadding,
		Y:          boardH + config.HUDPadding + config.TextLineHeight,
		Font:       face,
		MoneyColor: config.MoneyColor,
		LivesColor: config.HealthColor,
		AlertColor: config.GameOverColor,
	}
	gs.palette = ui.NewTowerPalette(g.Catalog, config.HUDPadding+160, boardH+config.HUDPadding, face,
		config.TextLightColor, config.TextMutedColor, config.SelectedColor, config.TowerCoreColor)
	gs.waveIndicator = ui.NewWaveIndicator(w-90, boardH+config.HUDPadding, face, config.TextLightColor, config.BossWaveColor)

	gs.waveButton = ui.NewButton(image.Rect(w-170, boardH+40, w-10, boardH+76), "Start Wave", face)
	gs.waveButton.BgColor, gs.waveButton.HoverColor, gs.waveButton.DisabledBg = config.ButtonColor, config.ButtonHoverColor, config.DisabledColor
	gs.resetButton = ui.NewButton(image.Rect(w-170, boardH+82, w-10, boardH+110), "Reset (R)", face)
	gs.resetButton.BgColor, gs.resetButton.HoverColor = config.DisabledColor, config.TowerStrokeColor

	gs.indicator = ui.NewStateIndicator(float32(w-config.IndicatorOffsetX), float32(boardH+config.IndicatorOffsetX), config.IndicatorRadius)
	gs.speedButton = ui.NewSpeedButton(float32(config.HUDPadding+140), float32(boardH+config.IndicatorOffsetX), config.IndicatorRadius,
		[]color.RGBA{config.TextLightColor, config.MoneyColor, config.GameOverColor})

	g.EventDispatcher.Subscribe(event.PlacementRejected, event.ListenerFunc(gs.onPlacementRejected))
	g.EventDispatcher.Subscribe(event.StatusChanged, event.ListenerFunc(func(event.Event) { gs.indicator.Pulse() }))
	return gs
}

// ScreenSize is the window size in pixels: the board plus the HUD strip.
func (g *GameState) ScreenSize() (int, int) {
	return g.game.Grid.Width * config.CellSize, g.game.Grid.Height*config.CellSize + config.HUDHeight
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.hud.Update(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.Push(NewPauseState(g.sm, g.font))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
		return
	}
	g.handleKeys()
	g.handleMouse()
	if g.game.Status() == component.StartScreen {
		return
	}

	for i := 0; i < g.speedButton.TicksPerFrame() && g.game.NeedsTick(); i++ {
		g.game.Tick()
	}
	if g.game.Status().Terminal() {
		g.sm.Push(NewEndState(g.sm, g, g.font))
	}
}

func (g *GameState) handleKeys() {
	for i, key := range digitKeys {
		if i >= g.palette.Len() {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			id, _ := g.palette.IDAt(i)
			g.toggleSelection(id)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.game.StartNextWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.speedButton.ToggleState()
	}
}

func (g *GameState) handleMouse() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.SelectTower("")
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if time.Since(g.lastClickTime) < config.ClickCooldown*time.Millisecond {
		return
	}
	g.lastClickTime = time.Now()

	x, y := ebiten.CursorPosition()
	switch {
	case g.waveButton.IsClicked(x, y):
		g.game.StartNextWave()
	case g.resetButton.IsClicked(x, y):
		g.reset()
	case g.speedButton.IsClicked(x, y):
		g.speedButton.ToggleState()
	default:
		if id, ok := g.palette.HitTest(x, y); ok {
			g.toggleSelection(id)
			return
		}
		cx, cy, onBoard := g.renderer.CellAt(x, y)
		if onBoard && g.game.SelectedTower() != "" {
			g.game.PlaceTower(g.game.SelectedTower(), pathmap.Cell{X: cx, Y: cy})
		}
	}
}

func (g *GameState) toggleSelection(id string) {
	if g.game.SelectedTower() == id {
		id = ""
	}
	g.game.SelectTower(id)
}

func (g *GameState) reset() {
	g.game.Reset()
	g.sm.SetState(g.menu)
}

func (g *GameState) onPlacementRejected(e event.Event) {
	data, ok := e.Data.(event.PlacementData)
	if !ok {
		return
	}
	switch {
	case errors.Is(data.Reason, app.ErrInsufficientFunds):
		g.hud.Notify("Not enough money")
	case errors.Is(data.Reason, pathmap.ErrCellOnPath):
		g.hud.Notify("Cannot build on the road")
	case errors.Is(data.Reason, pathmap.ErrCellOccupied):
		g.hud.Notify("Cell is taken")
	default:
		g.hud.Notify(fmt.Sprintf("Cannot build: %v", data.Reason))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	mx, my := ebiten.CursorPosition()
	hx, hy, hovering := g.renderer.CellAt(mx, my)
	hoverCell := pathmap.Cell{X: hx, Y: hy}

	g.renderer.Draw(screen)
	if hovering {
		g.drawPlacementPreview(screen, hoverCell)
	}

	selected := g.game.SelectedTower()
	for _, t := range snap.Towers {
		isHovered := hovering && t.Cell == hoverCell
		if isHovered {
			g.renderer.DrawRange(screen, t.Cell.Center(), t.Range)
		}
		g.renderer.DrawTower(screen, t.Cell.X, t.Cell.Y, t.Color, isHovered, config.TowerInset)
	}
	for _, e := range snap.Enemies {
		g.renderer.DrawEnemy(screen, e.Position, e.Color, float64(e.HP)/float64(e.MaxHP), config.EnemyRadius, config.HealthBarH)
	}
	for _, p := range snap.Projectiles {
		g.renderer.DrawProjectile(screen, p.Position, p.Color, config.ProjectileSize)
	}

	g.drawHUD(screen, snap, selected, mx, my)
}

func (g *GameState) drawPlacementPreview(screen *ebiten.Image, cell pathmap.Cell) {
	id := g.game.SelectedTower()
	def, ok := g.game.Catalog.Tower(id)
	if !ok {
		return
	}
	clr := config.InvalidCellColor
	if g.game.CanPlaceTower(id, cell) == nil {
		clr = config.ValidCellColor
	}
	g.renderer.DrawCell(screen, cell.X, cell.Y, clr)
	g.renderer.DrawRange(screen, geom.Pt(float64(cell.X), float64(cell.Y)), def.Range)
}

func (g *GameState) drawHUD(screen *ebiten.Image, snap app.Snapshot, selected string, mx, my int) {
	w, h := g.ScreenSize()
	top := float32(h - config.HUDHeight)
	vector.DrawFilledRect(screen, 0, top, float32(w), config.HUDHeight, config.HUDColor, false)

	g.hud.Draw(screen, snap.Money, snap.Lives)
	g.palette.Draw(screen, selected, snap.Money)
	g.waveIndicator.Draw(screen, snap.Wave, snap.WaveCount)
	g.indicator.Draw(screen, statusColor(snap.Status))
	g.speedButton.Draw(screen)

	g.waveButton.Disabled = snap.Status != component.Playing
	switch {
	case snap.Status == component.WaveInProgress:
		g.waveButton.Text = fmt.Sprintf("Wave %d...", snap.Wave)
	case snap.Wave >= snap.WaveCount:
		g.waveButton.Text = "Finish"
	default:
		g.waveButton.Text = fmt.Sprintf("Start Wave %d", snap.Wave+1)
	}
	g.waveButton.Draw(screen, mx, my)
	g.resetButton.Draw(screen, mx, my)
}

func (g *GameState) Exit() {}

func statusColor(s component.GameStatus) color.RGBA {
	switch s {
	case component.WaveInProgress:
		return config.GameOverColor
	case component.Victory:
		return config.VictoryColor
	case component.GameOver:
		return config.DisabledColor
	default:
		return config.ButtonColor
	}
}
