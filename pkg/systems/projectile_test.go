package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/config"
	"github.com/decker502/notagame/pkg/ecs"
	"github.com/decker502/notagame/pkg/entities"
)

func TestProjectilePhysics_BombFallsAndIsMarkedOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	img := newStubResources().Projectile(entities.ProjectileRocketGood)
	bomb := entities.NewBombEntity(em, img, 0.5, -1e-7)

	physics := NewProjectilePhysicsSystem(em)
	deletion := NewDeletionSystem(em, nil)

	marks := 0
	crossed := false
	for i := 0; i < 2000 && em.Exists(bomb); i++ {
		physics.Update(testDelta)
		if positionOf(em, bomb).Y < entities.BombFloorY {
			crossed = true
		}
		if em.IsMarkedForDeletion(bomb) {
			marks++
		}
		deletion.Update()
	}

	if !crossed {
		t.Errorf("Expected bomb to fall below %v", entities.BombFloorY)
	}
	if marks != 1 {
		t.Errorf("Expected bomb to be marked exactly once, got %d", marks)
	}
	if em.Exists(bomb) {
		t.Errorf("Expected bomb to be removed")
	}
	if deletion.Removed() != 1 {
		t.Errorf("Expected one removal, got %d", deletion.Removed())
	}
}

func TestStepProjectile_RocketHeading(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
		wantDX   float64
		wantDY   float64
	}{
		{"straight up", 0, 0, 1},
		{"tilted left", 90, -1, 0},
		{"tilted right", -90, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj := &components.ProjectileComponent{
				Motion:        components.MotionRocket,
				Rotation:      tt.rotation,
				ThrustSpeed:   0.001,
				RotationSpeed: 0.02,
			}
			pos := &components.LayoutPosition{X: 0.5, Y: 0.5}
			StepProjectile(proj, pos, 10)

			if dx := (pos.X - 0.5) / 0.01; math.Abs(dx-tt.wantDX) > 1e-9 {
				t.Errorf("Expected dx %v, got %v", tt.wantDX, dx)
			}
			if dy := (pos.Y - 0.5) / 0.01; math.Abs(dy-tt.wantDY) > 1e-9 {
				t.Errorf("Expected dy %v, got %v", tt.wantDY, dy)
			}
			if want := tt.rotation - 0.2; math.Abs(proj.Rotation-want) > 1e-9 {
				t.Errorf("Expected rotation %v, got %v", want, proj.Rotation)
			}
		})
	}
}

func TestStepProjectile_Bounds(t *testing.T) {
	tests := []struct {
		name string
		proj components.ProjectileComponent
		pos  components.LayoutPosition
		want bool
	}{
		{"bullet inside", components.ProjectileComponent{Motion: components.MotionBullet}, components.LayoutPosition{X: 1.2}, false},
		{"bullet past right", components.ProjectileComponent{Motion: components.MotionBullet, VelocityX: 0.01}, components.LayoutPosition{X: 1.5}, true},
		{"rocket past left", components.ProjectileComponent{Motion: components.MotionRocket}, components.LayoutPosition{X: -0.6}, true},
		{"bomb far right is kept", components.ProjectileComponent{Motion: components.MotionBomb}, components.LayoutPosition{X: 3, Y: 0}, false},
		{"bomb below floor", components.ProjectileComponent{Motion: components.MotionBomb}, components.LayoutPosition{Y: -0.6}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj, pos := tt.proj, tt.pos
			if got := StepProjectile(&proj, &pos, 1); got != tt.want {
				t.Errorf("Expected out of bounds %v, got %v", tt.want, got)
			}
		})
	}
}

func TestProjectileSpawn_Requests(t *testing.T) {
	em := ecs.NewEntityManager()
	rl := newStubResources()
	spawnEnemy(t, em, rl, components.EnemyKindTwo, 0.3, 0, components.DirectionLeft)
	spawnEnemy(t, em, rl, components.EnemyKindThree, 0.7, 0, components.DirectionRight)
	if _, err := entities.NewLauncherEntity(em, rl, components.LauncherSideRight); err != nil {
		t.Fatalf("failed to create launcher: %v", err)
	}

	spawner := NewProjectileSpawner()
	sys := NewProjectileSpawnSystem(em, spawner, rl, rand.New(rand.NewSource(1)))

	spawner.Push(components.ProjectileRequest{Kind: components.RequestBullet})
	spawner.Push(components.ProjectileRequest{Kind: components.RequestEnemyRocket})
	spawner.Push(components.ProjectileRequest{Kind: components.RequestGroundRocket, Side: components.LauncherSideLeft})
	spawner.Push(components.ProjectileRequest{Kind: components.RequestGroundRocket, Side: components.LauncherSideRight})
	spawner.Push(components.ProjectileRequest{Kind: components.RequestBomb})
	sys.Update()

	if spawner.Len() != 0 {
		t.Errorf("Expected requests to be drained")
	}
	// 左侧没有发射台，只生成 4 个
	if sys.Spawned() != 4 {
		t.Fatalf("Expected 4 projectiles, got %d", sys.Spawned())
	}

	motions := make(map[components.ProjectileMotion]int)
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](em) {
		proj := ecs.MustGetComponent[*components.ProjectileComponent](em, id)
		motions[proj.Motion]++

		switch proj.Motion {
		case components.MotionBullet:
			if x := positionOf(em, id).X; math.Abs(x-0.25) > 1e-9 || proj.VelocityX >= 0 {
				t.Errorf("Expected left-facing bullet at 0.25 moving left, got x=%v v=%v", x, proj.VelocityX)
			}
		case components.MotionBomb:
			pos := positionOf(em, id)
			if pos.X < 0 || pos.X >= 1 || pos.Y != 1 {
				t.Errorf("Expected bomb at the top with x in [0,1), got %+v", pos)
			}
			if proj.AccelerationY < BombAccelerationMin || proj.AccelerationY >= BombAccelerationMax {
				t.Errorf("Expected bomb acceleration in range, got %v", proj.AccelerationY)
			}
		}
	}
	if motions[components.MotionBullet] != 1 || motions[components.MotionRocket] != 2 || motions[components.MotionBomb] != 1 {
		t.Errorf("Unexpected projectile mix: %v", motions)
	}
}

func TestBomber_Countdown(t *testing.T) {
	cfg := config.DefaultGameConfig()
	spawner := NewProjectileSpawner()
	sys := NewBomberSystem(spawner, rand.New(rand.NewSource(7)), cfg)

	sys.Update(cfg.InitialDropCountdown - 1)
	if spawner.Len() != 0 {
		t.Fatalf("Expected no bomb before the countdown ends")
	}

	sys.Update(1)
	if spawner.Len() != 1 || sys.Dropped() != 1 {
		t.Fatalf("Expected one bomb request, got %d", spawner.Len())
	}
	if c := sys.Countdown(); c < cfg.DropCountdownRange.Min || c >= cfg.DropCountdownRange.Max {
		t.Errorf("Expected countdown re-armed within range, got %v", c)
	}

	for i := 0; i < 100; i++ {
		sys.Update(testDelta)
	}
	// 每颗炸弹间隔至少 100ms
	if n := sys.Dropped(); n < 8 || n > 18 {
		t.Errorf("Expected between 8 and 18 bombs over ~1.7s, got %d", n)
	}
}
