package entity

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/types"
)

func TestNewECSFreshState(t *testing.T) {
	ecs := NewECS()
	if ecs.State.Lives != config.InitialLives || ecs.State.Money != config.InitialMoney {
		t.Fatalf("unexpected economy %+v", ecs.State)
	}
	if ecs.State.Status != component.StartScreen || ecs.State.Wave != 0 {
		t.Fatalf("unexpected status %+v", ecs.State)
	}
	if ecs.HasWork() {
		t.Fatal("fresh ECS should be idle")
	}
	if ecs.Cursor.Phase() != component.SpawnIdle {
		t.Fatalf("cursor phase = %v, want IDLE", ecs.Cursor.Phase())
	}
}

func TestNewEntityIsSequential(t *testing.T) {
	ecs := NewECS()
	for want := types.EntityID(1); want <= 3; want++ {
		if got := ecs.NewEntity(); got != want {
			t.Fatalf("NewEntity() = %d, want %d", got, want)
		}
	}
}

func TestNowTracksTicks(t *testing.T) {
	ecs := NewECS()
	ecs.Tick = 30
	if ecs.Now() != 500 {
		t.Fatalf("Now() after 30 ticks = %v, want 500", ecs.Now())
	}
	ecs.Tick = 270
	if ecs.Now() != 4500 {
		t.Fatalf("Now() after 270 ticks = %v, want 4500", ecs.Now())
	}
}

func TestRemoveEnemyAtKeepsOrder(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 4; i++ {
		ecs.Enemies = append(ecs.Enemies, &component.Enemy{ID: ecs.NewEntity()})
	}
	e, i := ecs.FindEnemy(2)
	if e == nil || i != 1 {
		t.Fatalf("FindEnemy(2) = %v, %d", e, i)
	}
	ecs.RemoveEnemyAt(i)

	want := []types.EntityID{1, 3, 4}
	if len(ecs.Enemies) != len(want) {
		t.Fatalf("expected %d enemies, got %d", len(want), len(ecs.Enemies))
	}
	for i, id := range want {
		if ecs.Enemies[i].ID != id {
			t.Fatalf("enemy[%d] = %d, want %d", i, ecs.Enemies[i].ID, id)
		}
	}
	if e, _ := ecs.FindEnemy(2); e != nil {
		t.Fatal("removed enemy still found")
	}
}
