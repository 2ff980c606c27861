// internal/state/menu_state.go
package state

import (
	"image"

	"go-path-defense/internal/config"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// MenuState — стартовый экран.
type MenuState struct {
	sm          *StateMachine
	gameState   *GameState
	font        font.Face
	startButton *ui.Button
}

func NewMenuState(sm *StateMachine, gameState *GameState, face font.Face) *MenuState {
	w, h := gameState.ScreenSize()
	rect := image.Rect(w/2-90, h/2, w/2+90, h/2+44)
	btn := ui.NewButton(rect, "Start Game", face)
	btn.BgColor, btn.HoverColor = config.ButtonColor, config.ButtonHoverColor
	return &MenuState{sm: sm, gameState: gameState, font: face, startButton: btn}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		start = start || m.startButton.IsClicked(x, y)
	}
	if start {
		m.gameState.game.StartGame()
		m.sm.SetState(m.gameState)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	w, h := m.gameState.ScreenSize()

	title := image.Rect(0, h/2-120, w, h/2-90)
	ui.DrawCenteredText(screen, "PATH DEFENSE", m.font, title, config.SelectedColor)
	hint := image.Rect(0, h/2-70, w, h/2-50)
	ui.DrawCenteredText(screen, "Build towers along the road. Do not let them through.", m.font, hint, config.TextMutedColor)

	x, y := ebiten.CursorPosition()
	m.startButton.Draw(screen, x, y)
}

func (m *MenuState) Exit() {}
