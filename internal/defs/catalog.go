// internal/defs/catalog.go
package defs

import (
	"errors"
	"fmt"

	"go-path-defense/pkg/geom"
)

// GridDefinition is the size of the buildable board in cells.
type GridDefinition struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Catalog is the static configuration of a session: board, route,
// archetypes and the wave schedule. It is read-only after loading.
type Catalog struct {
	Grid    GridDefinition    `json:"grid"`
	Path    []geom.Point      `json:"path"`
	Enemies []EnemyDefinition `json:"enemies"`
	Towers  []TowerDefinition `json:"towers"`
	Waves   []WaveDefinition  `json:"waves"`

	enemyIndex map[string]int
	towerIndex map[string]int
}

// Enemy looks up an enemy archetype by ID.
func (c *Catalog) Enemy(id string) (*EnemyDefinition, bool) {
	i, ok := c.enemyIndex[id]
	if !ok {
		return nil, false
	}
	return &c.Enemies[i], true
}

// Tower looks up a tower archetype by ID.
func (c *Catalog) Tower(id string) (*TowerDefinition, bool) {
	i, ok := c.towerIndex[id]
	if !ok {
		return nil, false
	}
	return &c.Towers[i], true
}

// TowerIDs returns tower archetype IDs in catalog order.
func (c *Catalog) TowerIDs() []string {
	ids := make([]string, len(c.Towers))
	for i, t := range c.Towers {
		ids[i] = t.ID
	}
	return ids
}

// WaveCount is the number of waves in the schedule.
func (c *Catalog) WaveCount() int {
	return len(c.Waves)
}

// Wave returns wave n, counting from 1.
func (c *Catalog) Wave(n int) (WaveDefinition, bool) {
	if n < 1 || n > len(c.Waves) {
		return WaveDefinition{}, false
	}
	return c.Waves[n-1], true
}

// Prepare validates the catalog and builds its lookup tables. It must run
// before any lookup; catalogs from ParseCatalog are already prepared.
func (c *Catalog) Prepare() error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.index()
	return nil
}

func (c *Catalog) index() {
	c.enemyIndex = make(map[string]int, len(c.Enemies))
	for i, e := range c.Enemies {
		c.enemyIndex[e.ID] = i
	}
	c.towerIndex = make(map[string]int, len(c.Towers))
	for i, t := range c.Towers {
		c.towerIndex[t.ID] = i
	}
}

// Validate reports every problem in the catalog at once.
func (c *Catalog) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid: invalid size %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if len(c.Path) < 2 {
		errs = append(errs, fmt.Errorf("path: need at least 2 waypoints, got %d", len(c.Path)))
	}

	enemies := make(map[string]bool, len(c.Enemies))
	for _, e := range c.Enemies {
		switch {
		case e.ID == "":
			errs = append(errs, errors.New("enemy: empty id"))
		case enemies[e.ID]:
			errs = append(errs, fmt.Errorf("enemy %s: duplicate id", e.ID))
		case e.Health <= 0:
			errs = append(errs, fmt.Errorf("enemy %s: health must be positive", e.ID))
		case e.Speed <= 0:
			errs = append(errs, fmt.Errorf("enemy %s: speed must be positive", e.ID))
		case e.Reward < 0:
			errs = append(errs, fmt.Errorf("enemy %s: negative reward", e.ID))
		}
		enemies[e.ID] = true
	}

	towers := make(map[string]bool, len(c.Towers))
	for _, t := range c.Towers {
		switch {
		case t.ID == "":
			errs = append(errs, errors.New("tower: empty id"))
		case towers[t.ID]:
			errs = append(errs, fmt.Errorf("tower %s: duplicate id", t.ID))
		case t.Cost < 0:
			errs = append(errs, fmt.Errorf("tower %s: negative cost", t.ID))
		case t.Range < 0:
			errs = append(errs, fmt.Errorf("tower %s: negative range", t.ID))
		case t.FireRate <= 0:
			errs = append(errs, fmt.Errorf("tower %s: fire rate must be positive", t.ID))
		case t.ProjectileSpeed <= 0:
			errs = append(errs, fmt.Errorf("tower %s: projectile speed must be positive", t.ID))
		}
		towers[t.ID] = true
	}

	for i, w := range c.Waves {
		for j, g := range w.Groups {
			if !enemies[g.EnemyID] {
				errs = append(errs, fmt.Errorf("wave %d group %d: unknown enemy %q", i+1, j+1, g.EnemyID))
			}
			if g.Count <= 0 {
				errs = append(errs, fmt.Errorf("wave %d group %d: count must be positive", i+1, j+1))
			}
			if g.SpawnDelayMs < 0 {
				errs = append(errs, fmt.Errorf("wave %d group %d: negative spawn delay", i+1, j+1))
			}
		}
	}
	return errors.Join(errs...)
}
