// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
// Live enemies point at one of these and never modify it.
type EnemyDefinition struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Health  int          `json:"health"`
	Speed   float64      `json:"speed"`  // cells per second
	Reward  int          `json:"reward"` // money paid on kill
	Visuals EnemyVisuals `json:"visuals"`
}

// EnemyVisuals contains parameters for rendering an enemy.
type EnemyVisuals struct {
	Color color.RGBA `json:"color"`
}
