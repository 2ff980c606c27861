package defs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-path-defense/pkg/geom"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if c.Grid.Width != 24 || c.Grid.Height != 16 {
		t.Fatalf("unexpected grid %+v", c.Grid)
	}
	if len(c.Path) != 12 {
		t.Fatalf("expected 12 waypoints, got %d", len(c.Path))
	}
	if c.WaveCount() != 6 {
		t.Fatalf("expected 6 waves, got %d", c.WaveCount())
	}

	normal, ok := c.Enemy("NORMAL")
	if !ok || normal.Health != 100 || normal.Reward != 10 || normal.Speed != 1.5 {
		t.Fatalf("unexpected NORMAL archetype: %+v", normal)
	}
	basic, ok := c.Tower("BASIC")
	if !ok || basic.Cost != 100 || basic.Damage != 20 || basic.Range != 3 {
		t.Fatalf("unexpected BASIC archetype: %+v", basic)
	}
	if basic.CooldownMs() != 500 {
		t.Fatalf("BASIC cooldown = %v, want 500", basic.CooldownMs())
	}

	wave1, ok := c.Wave(1)
	if !ok || len(wave1.Groups) != 1 || wave1.Groups[0] != (SpawnGroup{EnemyID: "NORMAL", Count: 10, SpawnDelayMs: 500}) {
		t.Fatalf("unexpected wave 1: %+v", wave1)
	}
	if w, _ := c.Wave(2); w.EnemyCount() != 20 {
		t.Fatalf("wave 2 enemy count = %d, want 20", w.EnemyCount())
	}
	if _, ok := c.Wave(0); ok {
		t.Fatal("wave numbers start at 1")
	}
	if _, ok := c.Wave(7); ok {
		t.Fatal("wave 7 should not exist")
	}

	ids := c.TowerIDs()
	if strings.Join(ids, ",") != "BASIC,SNIPER,MACHINE_GUN" {
		t.Fatalf("unexpected tower order %v", ids)
	}
}

func TestCatalogLookupSharesArchetype(t *testing.T) {
	c := Default()
	a, _ := c.Enemy("FAST")
	b, _ := c.Enemy("FAST")
	if a != b {
		t.Fatal("lookups should return the same shared definition")
	}
	if _, ok := c.Enemy("GHOST"); ok {
		t.Fatal("unknown enemy should not resolve")
	}
	if _, ok := c.Tower("LASER"); ok {
		t.Fatal("unknown tower should not resolve")
	}
}

func TestPrepareBuildsLookups(t *testing.T) {
	c := &Catalog{
		Grid:    GridDefinition{Width: 4, Height: 2},
		Path:    []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 0}},
		Enemies: []EnemyDefinition{{ID: "E", Health: 10, Speed: 1, Reward: 1}},
		Towers:  []TowerDefinition{{ID: "T", Cost: 10, Damage: 1, Range: 1, FireRate: 1, ProjectileSpeed: 1}},
	}
	if _, ok := c.Tower("T"); ok {
		t.Fatal("lookup should fail before Prepare")
	}
	if err := c.Prepare(); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if _, ok := c.Tower("T"); !ok {
		t.Fatal("tower not found after Prepare")
	}
	if _, ok := c.Enemy("E"); !ok {
		t.Fatal("enemy not found after Prepare")
	}

	c.Towers[0].FireRate = 0
	if err := c.Prepare(); err == nil || !strings.Contains(err.Error(), "fire rate") {
		t.Fatalf("Prepare = %v, want fire rate error", err)
	}
}

func TestParseCatalogValidation(t *testing.T) {
	cases := []struct {
		name string
		json string
		want string
	}{
		{"bad json", `{`, "unmarshal"},
		{"empty grid", `{"path":[{"x":0,"y":0},{"x":1,"y":0}]}`, "grid: invalid size"},
		{"short path", `{"grid":{"width":2,"height":2},"path":[{"x":0,"y":0}]}`, "at least 2 waypoints"},
		{
			"unknown enemy in wave",
			`{"grid":{"width":2,"height":2},"path":[{"x":0,"y":0},{"x":1,"y":0}],
			  "waves":[{"groups":[{"enemy_id":"NOPE","count":1,"spawn_delay_ms":0}]}]}`,
			`unknown enemy "NOPE"`,
		},
		{
			"zero fire rate",
			`{"grid":{"width":2,"height":2},"path":[{"x":0,"y":0},{"x":1,"y":0}],
			  "towers":[{"id":"T","cost":1,"damage":1,"range":1,"fire_rate":0,"projectile_speed":1}]}`,
			"fire rate must be positive",
		},
		{
			"duplicate enemy",
			`{"grid":{"width":2,"height":2},"path":[{"x":0,"y":0},{"x":1,"y":0}],
			  "enemies":[{"id":"E","health":1,"speed":1},{"id":"E","health":1,"speed":1}]}`,
			"duplicate id",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(c.json))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("error %q does not mention %q", err, c.want)
			}
		})
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(path, defaultCatalog, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.WaveCount() != 6 {
		t.Fatalf("expected 6 waves, got %d", c.WaveCount())
	}

	if _, err := LoadCatalog(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
