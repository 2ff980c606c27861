// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const toastDuration = 2.0 // seconds

// HUD draws the counters and a short-lived status message.
type HUD struct {
	X, Y       int
	Font       font.Face
	MoneyColor color.Color
	LivesColor color.Color
	AlertColor color.Color

	message string
	ttl     float64
}

// Notify shows msg for a couple of seconds, replacing any previous one.
func (h *HUD) Notify(msg string) {
	h.message = msg
	h.ttl = toastDuration
}

// Message returns the message currently shown, or "".
func (h *HUD) Message() string {
	if h.ttl <= 0 {
		return ""
	}
	return h.message
}

// Update ages the message.
func (h *HUD) Update(deltaTime float64) {
	if h.ttl > 0 {
		h.ttl -= deltaTime
	}
}

func (h *HUD) Draw(screen *ebiten.Image, money, lives int) {
	text.Draw(screen, fmt.Sprintf("Money: $%d", money), h.Font, h.X, h.Y, h.MoneyColor)
	text.Draw(screen, fmt.Sprintf("Lives: %d", lives), h.Font, h.X, h.Y+18, h.LivesColor)
	if msg := h.Message(); msg != "" {
		text.Draw(screen, msg, h.Font, h.X, h.Y+36, h.AlertColor)
	}
}
