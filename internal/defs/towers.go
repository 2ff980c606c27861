// internal/defs/towers.go
package defs

import "image/color"

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Cost            int          `json:"cost"`
	Damage          int          `json:"damage"`
	Range           float64      `json:"range"`            // cells
	FireRate        float64      `json:"fire_rate"`        // shots per second
	ProjectileSpeed float64      `json:"projectile_speed"` // cells per second
	Visuals         TowerVisuals `json:"visuals"`
}

// CooldownMs is the delay between two shots in milliseconds.
func (d *TowerDefinition) CooldownMs() float64 {
	return 1000 / d.FireRate
}

// TowerVisuals contains parameters for rendering a tower and its shots.
type TowerVisuals struct {
	Color           color.RGBA `json:"color"`
	ProjectileColor color.RGBA `json:"projectile_color"`
}
