// internal/state/pause_state.go
package state

import (
	"image"

	"go-path-defense/internal/config"
	"go-path-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState lies over the board; while it is on top no ticks run.
type PauseState struct {
	stateMachine *StateMachine
	font         font.Face
}

func NewPauseState(sm *StateMachine, face font.Face) *PauseState {
	return &PauseState{stateMachine: sm, font: face}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.Pop()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), config.OverlayColor, false)
	mid := b.Dy() / 2
	ui.DrawCenteredText(screen, "PAUSED", s.font, image.Rect(0, mid-20, b.Dx(), mid), config.TextLightColor)
	ui.DrawCenteredText(screen, "Press P to continue", s.font, image.Rect(0, mid+4, b.Dx(), mid+24), config.TextMutedColor)
}

func (s *PauseState) Exit() {}
