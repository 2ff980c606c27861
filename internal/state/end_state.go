// internal/state/end_state.go
package state

import (
	"fmt"
	"image"
	"image/color"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/ui"
	"go-path-defense/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var _ State = (*EndState)(nil)

// EndState shows the result over the frozen board.
type EndState struct {
	sm          *StateMachine
	gameState   *GameState
	font        font.Face
	againButton *ui.Button
}

func NewEndState(sm *StateMachine, gameState *GameState, face font.Face) *EndState {
	w, h := gameState.ScreenSize()
	btn := ui.NewButton(image.Rect(w/2-90, h/2+40, w/2+90, h/2+84), "Play Again", face)
	btn.BgColor, btn.HoverColor = config.ButtonColor, config.ButtonHoverColor
	return &EndState{sm: sm, gameState: gameState, font: face, againButton: btn}
}

func (s *EndState) Enter() {}

func (s *EndState) Update(deltaTime float64) {
	restart := inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		restart = restart || s.againButton.IsClicked(x, y)
	}
	if restart {
		s.gameState.game.StartGame()
		s.sm.Pop()
	}
}

func (s *EndState) Draw(screen *ebiten.Image) {
	game := s.gameState.game
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), config.OverlayColor, false)

	title, clr := "GAME OVER", color.Color(config.GameOverColor)
	if game.Status() == component.Victory {
		title, clr = "VICTORY", config.VictoryColor
	}
	mid := b.Dy() / 2
	ui.DrawCenteredText(screen, title, s.font, image.Rect(0, mid-50, b.Dx(), mid-30), clr)

	reached := fmt.Sprintf("Wave reached: %s of %s", utils.ToRoman(game.ECS.State.Wave), utils.ToRoman(game.WaveCount()))
	ui.DrawCenteredText(screen, reached, s.font, image.Rect(0, mid-20, b.Dx(), mid), config.TextLightColor)

	x, y := ebiten.CursorPosition()
	s.againButton.Draw(screen, x, y)
}

func (s *EndState) Exit() {}
