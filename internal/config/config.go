// internal/config/config.go
package config

import "image/color"

// Simulation.
const (
	TickRate       = 60 // ticks per second
	TickDurationMs = 1000.0 / TickRate
	InitialLives   = 20
	InitialMoney   = 200
)

// Client layout.
const (
	CellSize         = 40 // pixels per grid cell
	HUDHeight        = 120
	HUDPadding       = 12
	IndicatorOffsetX = 24
	IndicatorRadius  = 10
	ClickCooldown    = 150 // ms between accepted clicks
	MaxDeltaTime     = 0.1 // seconds; caps UI timers after a stall
	PathWidth        = CellSize * 0.8
	EnemyRadius      = CellSize * 0.375
	HealthBarH       = 4
	ProjectileSize   = 4.0
	TowerInset       = 2
	TextLineHeight   = 13
)

// Colors are premultiplied, as ebiten expects.
var (
	BackgroundColor  = color.RGBA{17, 24, 39, 255}
	GridLineColor    = color.RGBA{31, 41, 55, 255}
	PathColor        = color.RGBA{74, 85, 104, 255}
	HUDColor         = color.RGBA{31, 41, 55, 220}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextMutedColor   = color.RGBA{156, 163, 175, 255}
	MoneyColor       = color.RGBA{250, 204, 21, 255}
	HealthBackColor  = color.RGBA{75, 85, 99, 255}
	HealthColor      = color.RGBA{34, 197, 94, 255}
	TowerStrokeColor = color.RGBA{156, 163, 175, 255}
	TowerCoreColor   = color.RGBA{55, 65, 81, 255}
	SelectedColor    = color.RGBA{34, 211, 238, 255}
	ValidCellColor   = color.RGBA{12, 69, 33, 90}
	InvalidCellColor = color.RGBA{84, 24, 24, 90}
	RangeColor       = color.RGBA{60, 60, 60, 60}
	ButtonColor      = color.RGBA{22, 163, 74, 255}
	ButtonHoverColor = color.RGBA{34, 197, 94, 255}
	DisabledColor    = color.RGBA{75, 85, 99, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 180}
	GameOverColor    = color.RGBA{239, 68, 68, 255}
	VictoryColor     = color.RGBA{250, 204, 21, 255}
	BossWaveColor    = color.RGBA{239, 68, 68, 255}
)
