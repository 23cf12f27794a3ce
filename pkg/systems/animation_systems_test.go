package systems

import (
	"testing"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
	"github.com/decker502/notagame/pkg/entities"
)

// advanceCells 推进 n 帧（每次恰好一个帧时长）
func advanceCells(update func(float64), n int) {
	for i := 0; i < n; i++ {
		update(50)
	}
}

func TestEnemyAnimation_PhaseFollowsController(t *testing.T) {
	em := ecs.NewEntityManager()
	id := spawnEnemy(t, em, newStubResources(), components.EnemyKindOne, 0.5, 0, components.DirectionRight)
	enemy := enemyOf(em, id)
	anim := ecs.MustGetComponent[*components.AnimationComponent](em, id)
	sys := NewEnemyAnimationSystem(em, NewProjectileSpawner())

	advanceCells(sys.Update, 3)
	if anim.Index != 3 {
		t.Fatalf("Expected idle index 3, got %d", anim.Index)
	}

	enemy.Controller.Movement = components.MovementRight
	sys.Update(1)
	if enemy.Phase != components.PhaseWalk || anim.Index != 0 {
		t.Errorf("Expected walk phase reset to 0, got %v index %d", enemy.Phase, anim.Index)
	}
	if enemy.SpriteSheet() != enemy.Sheets[components.PhaseWalk] {
		t.Errorf("Expected active sheet to match the phase")
	}

	enemy.Controller.Attack = &components.Attack{Kind: components.EnemyKindOne}
	sys.Update(1)
	if enemy.Phase != components.PhaseBlast {
		t.Errorf("Expected attack to override walking, got %v", enemy.Phase)
	}
}

func TestEnemyAnimation_AttackEndsOnWrap(t *testing.T) {
	em := ecs.NewEntityManager()
	id := spawnEnemy(t, em, newStubResources(), components.EnemyKindOne, 0.5, 0, components.DirectionRight)
	enemy := enemyOf(em, id)
	enemy.Controller.Attack = &components.Attack{Kind: components.EnemyKindOne}
	sys := NewEnemyAnimationSystem(em, NewProjectileSpawner())

	// 第一次更新同时切换阶段并前进一帧，31 次后停在最后一帧
	advanceCells(sys.Update, 31)
	if enemy.Controller.Attack == nil {
		t.Fatalf("Expected attack to still run before the last cell")
	}
	sys.Update(50)
	if enemy.Controller.Attack != nil {
		t.Errorf("Expected attack to stop when the animation wraps")
	}

	sys.Update(1)
	if enemy.Phase != components.PhaseIdle {
		t.Errorf("Expected idle after the attack, got %v", enemy.Phase)
	}
}

func TestEnemyAnimation_CellTriggers(t *testing.T) {
	tests := []struct {
		kind components.EnemyKind
		cell int
		want components.ProjectileRequestKind
	}{
		{components.EnemyKindTwo, BulletTriggerCell, components.RequestBullet},
		{components.EnemyKindThree, EnemyRocketTriggerCell, components.RequestEnemyRocket},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := spawnEnemy(t, em, newStubResources(), tt.kind, 0.5, 0, components.DirectionRight)
			enemyOf(em, id).Controller.Attack = &components.Attack{Kind: tt.kind}
			spawner := NewProjectileSpawner()
			sys := NewEnemyAnimationSystem(em, spawner)

			// 第一次更新只切换阶段（回到第 0 帧且剩余一个帧时长）
			sys.Update(0)
			advanceCells(sys.Update, tt.cell-1)
			if spawner.Len() != 0 {
				t.Fatalf("Expected no request before cell %d", tt.cell)
			}
			sys.Update(50)
			reqs := spawner.Drain()
			if len(reqs) != 1 || reqs[0].Kind != tt.want {
				t.Fatalf("Expected one %v request at cell %d, got %v", tt.want, tt.cell, reqs)
			}

			advanceCells(sys.Update, 40)
			if spawner.Len() != 0 {
				t.Errorf("Expected no further requests once the attack ended, got %d", spawner.Len())
			}
		})
	}
}

func TestEnemyAnimation_KindFourStartsLauncherBehindIt(t *testing.T) {
	em := ecs.NewEntityManager()
	rl := newStubResources()
	id := spawnEnemy(t, em, rl, components.EnemyKindFour, 1, 0, components.DirectionLeft)
	left, _ := entities.NewLauncherEntity(em, rl, components.LauncherSideLeft)
	right, _ := entities.NewLauncherEntity(em, rl, components.LauncherSideRight)

	enemyOf(em, id).Controller.Attack = &components.Attack{Kind: components.EnemyKindFour}
	sys := NewEnemyAnimationSystem(em, NewProjectileSpawner())
	sys.Update(0)
	advanceCells(sys.Update, LauncherTriggerCell)

	if !ecs.MustGetComponent[*components.LauncherComponent](em, right).Launching {
		t.Errorf("Expected right launcher to launch for an enemy facing left")
	}
	if ecs.MustGetComponent[*components.LauncherComponent](em, left).Launching {
		t.Errorf("Expected left launcher to stay idle")
	}
}

func TestLauncherAnimation_FiresOnWrap(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := entities.NewLauncherEntity(em, newStubResources(), components.LauncherSideLeft)
	if err != nil {
		t.Fatalf("failed to create launcher: %v", err)
	}
	launcher := ecs.MustGetComponent[*components.LauncherComponent](em, id)
	anim := ecs.MustGetComponent[*components.AnimationComponent](em, id)
	spawner := NewProjectileSpawner()
	sys := NewLauncherAnimationSystem(em, spawner)

	advanceCells(sys.Update, 5)
	if anim.Index != 0 {
		t.Fatalf("Expected idle launcher to stay on cell 0, got %d", anim.Index)
	}

	launcher.Launching = true
	advanceCells(sys.Update, 31)
	if spawner.Len() != 0 {
		t.Fatalf("Expected no rocket before the animation wraps")
	}
	sys.Update(50)

	reqs := spawner.Drain()
	if len(reqs) != 1 || reqs[0].Kind != components.RequestGroundRocket || reqs[0].Side != components.LauncherSideLeft {
		t.Fatalf("Expected one left ground rocket, got %v", reqs)
	}
	if launcher.Launching {
		t.Errorf("Expected launcher to stop after firing")
	}
}

func TestExplosionAnimation_DestroysExplodeeAtMidpoint(t *testing.T) {
	em := ecs.NewEntityManager()
	rl := newStubResources()
	enemy := spawnEnemy(t, em, rl, components.EnemyKindOne, 0.5, 0, components.DirectionRight)
	bomb := entities.NewBombEntity(em, rl.Projectile(entities.ProjectileRocketGood), 0.5, -1e-8)

	sheet := rl.ExplosionSheet()
	onEnemy := entities.NewExplosionEntity(em, sheet, enemy, 0, 0)
	onBomb := entities.NewExplosionEntity(em, sheet, bomb, 0, 0)
	sys := NewExplosionAnimationSystem(em)

	advanceCells(sys.Update, sheet.Len()/2-1)
	if ecs.HasComponent[*components.EnemyDestroyEvent](em, enemy) || em.IsMarkedForDeletion(bomb) {
		t.Fatalf("Expected nothing destroyed before the midpoint")
	}

	sys.Update(50)
	if !ecs.HasComponent[*components.EnemyDestroyEvent](em, enemy) {
		t.Errorf("Expected a destroy event on the enemy")
	}
	if em.IsMarkedForDeletion(enemy) {
		t.Errorf("Expected the enemy to be left for the destroy event system")
	}
	if !em.IsMarkedForDeletion(bomb) {
		t.Errorf("Expected the bomb to be marked for deletion")
	}

	advanceCells(sys.Update, sheet.Len()/2)
	if !em.IsMarkedForDeletion(onEnemy) || !em.IsMarkedForDeletion(onBomb) {
		t.Errorf("Expected explosions to remove themselves at the end")
	}
}
