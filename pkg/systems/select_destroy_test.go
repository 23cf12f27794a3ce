package systems

import (
	"testing"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
	"github.com/decker502/notagame/pkg/game"
)

// spawnAll 按默认阵型创建四个角色，返回按种类索引的实体
func spawnAll(t *testing.T, em *ecs.EntityManager) map[components.EnemyKind]ecs.EntityID {
	t.Helper()
	ids := make(map[components.EnemyKind]ecs.EntityID)
	rl := newStubResources()
	for _, kind := range components.AllEnemyKinds {
		ids[kind] = spawnEnemy(t, em, rl, kind, 0.5, 0, components.DirectionRight)
	}
	return ids
}

func TestSelectEvent_LastWinsAndClears(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState(game.PauseRunning)
	ids := spawnAll(t, em)
	sys := NewSelectEventSystem(em, gs)

	DispatchSelect(em, components.EnemyKindTwo)
	sys.Update()

	two := enemyOf(em, ids[components.EnemyKindTwo])
	two.Controller.Movement = components.MovementLeft

	DispatchSelect(em, components.EnemyKindOne)
	DispatchSelect(em, components.EnemyKindThree)
	sys.Update()

	active, ok := ActiveEnemy(em)
	if !ok || active != ids[components.EnemyKindThree] {
		t.Fatalf("Expected kind three to be active, got %d", active)
	}
	if n := len(ecs.GetEntitiesWith1[*components.ActiveControllerComponent](em)); n != 1 {
		t.Errorf("Expected exactly one active controller, got %d", n)
	}
	if n := len(ecs.GetEntitiesWith1[*components.EnemySelectEvent](em)); n != 0 {
		t.Errorf("Expected select events to be consumed, got %d", n)
	}
	if gs.UI.SelectedKind != components.EnemyKindThree || !gs.UI.HasSelection {
		t.Errorf("Expected UI to show kind three, got %v", gs.UI.SelectedKind)
	}
	// 之前受控角色的移动状态保留，只有新选中的角色被清空
	if two.Controller.Movement != components.MovementLeft {
		t.Errorf("Expected deselected enemy to keep its movement")
	}
}

func TestDestroyEvent_ReselectsSurvivor(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState(game.PauseRunning)
	cues := game.NewAudioEventQueue()
	ids := spawnAll(t, em)
	sel := NewSelectEventSystem(em, gs)
	sys := NewDestroyEventSystem(em, gs, cues)

	DispatchSelect(em, components.EnemyKindOne)
	sel.Update()

	em.AddComponent(ids[components.EnemyKindOne], &components.EnemyDestroyEvent{})
	sys.Update()

	if !em.IsMarkedForDeletion(ids[components.EnemyKindOne]) {
		t.Fatalf("Expected destroyed enemy to be marked")
	}
	if !gs.IsDestroyed(components.EnemyKindOne) {
		t.Errorf("Expected kind one recorded as destroyed")
	}
	if ecs.HasComponent[*components.EnemyDestroyEvent](em, ids[components.EnemyKindOne]) {
		t.Errorf("Expected destroy events to be cleared")
	}
	if events := cues.Drain(); len(events) != 1 || events[0] != game.AudioCollisionDie {
		t.Errorf("Expected a single die cue, got %v", events)
	}
	if !ecs.HasComponent[*components.EnemySelectEvent](em, ids[components.EnemyKindTwo]) {
		t.Fatalf("Expected control to pass to the first survivor")
	}

	em.RemoveMarkedEntities()
	sel.Update()
	if active, _ := ActiveEnemy(em); active != ids[components.EnemyKindTwo] {
		t.Errorf("Expected kind two to be active, got %d", active)
	}
}

func TestDestroyEvent_InactiveEnemyKeepsSelection(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState(game.PauseRunning)
	ids := spawnAll(t, em)
	sel := NewSelectEventSystem(em, gs)

	DispatchSelect(em, components.EnemyKindTwo)
	sel.Update()

	em.AddComponent(ids[components.EnemyKindFour], &components.EnemyDestroyEvent{})
	NewDestroyEventSystem(em, gs, nil).Update()

	if n := len(ecs.GetEntitiesWith1[*components.EnemySelectEvent](em)); n != 0 {
		t.Errorf("Expected no reselection, got %d select events", n)
	}
}

func TestGameOver_WhenAllEnemiesMarked(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState(game.PauseRunning)
	ids := spawnAll(t, em)
	sys := NewGameOverSystem(em, gs)

	for kind, id := range ids {
		if kind != components.EnemyKindFour {
			em.DestroyEntity(id)
		}
	}
	sys.Update()
	if gs.Pause.Mode != game.PauseRunning {
		t.Fatalf("Expected to keep running with one enemy left, got %v", gs.Pause.Mode)
	}

	em.DestroyEntity(ids[components.EnemyKindFour])
	sys.Update()
	if gs.Pause.Mode != game.PauseGameOver || gs.UI.Phase != game.UIPhaseGameOver {
		t.Errorf("Expected game over, got mode %v phase %v", gs.Pause.Mode, gs.UI.Phase)
	}
}
