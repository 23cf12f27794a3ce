package systems

import (
	"testing"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
	"github.com/decker502/notagame/pkg/input"
)

func TestControllerPhysics_SingleJumpLands(t *testing.T) {
	em := ecs.NewEntityManager()
	id := spawnEnemy(t, em, newStubResources(), components.EnemyKindOne, 0.5, 0, components.DirectionRight)
	c := enemyOf(em, id).Controller
	sys := NewControllerPhysicsSystem(em, testTuning)

	ProcessControllerInput(c, input.KeyDown(input.KeyUp), 0, testTuning, nil)

	peak := 0.0
	for i := 0; i < 200 && c.Jump != nil; i++ {
		if c.Jump.HasDoubleJumped {
			t.Fatalf("Expected single jump to never be flagged as double")
		}
		sys.Update(testDelta)
		peak = max(peak, positionOf(em, id).Y)
	}

	if c.Jump != nil {
		t.Fatalf("Expected jump to finish")
	}
	if y := positionOf(em, id).Y; y != 0 {
		t.Errorf("Expected to land at y=0, got %v", y)
	}
	if peak <= 0 {
		t.Errorf("Expected the jump to rise, peak %v", peak)
	}
}

func TestControllerPhysics_DoubleAndTripleJump(t *testing.T) {
	em := ecs.NewEntityManager()
	id := spawnEnemy(t, em, newStubResources(), components.EnemyKindTwo, 0.5, 0, components.DirectionRight)
	c := enemyOf(em, id).Controller
	sys := NewControllerPhysicsSystem(em, testTuning)

	ProcessControllerInput(c, input.KeyDown(input.KeyUp), positionOf(em, id).Y, testTuning, nil)
	for i := 0; i < 5; i++ {
		sys.Update(testDelta)
	}

	ProcessControllerInput(c, input.KeyDown(input.KeyUp), positionOf(em, id).Y, testTuning, nil)
	if !c.Jump.HasDoubleJumped {
		t.Fatalf("Expected double jump")
	}
	sys.Update(testDelta)
	velocity := c.Jump.Velocity

	ProcessControllerInput(c, input.KeyDown(input.KeyUp), positionOf(em, id).Y, testTuning, nil)
	if !c.Jump.HasDoubleJumped || c.Jump.Velocity != velocity {
		t.Errorf("Expected third jump to be a no-op, velocity %v -> %v", velocity, c.Jump.Velocity)
	}

	for i := 0; i < 500 && c.Jump != nil; i++ {
		sys.Update(testDelta)
	}
	if c.Jump != nil || positionOf(em, id).Y != 0 {
		t.Errorf("Expected to land back at y=0, jump=%v y=%v", c.Jump, positionOf(em, id).Y)
	}
}

func TestControllerPhysics_HidingCycle(t *testing.T) {
	em := ecs.NewEntityManager()
	id := spawnEnemy(t, em, newStubResources(), components.EnemyKindThree, 0.5, 0.5, components.DirectionRight)
	c := enemyOf(em, id).Controller
	sys := NewControllerPhysicsSystem(em, testTuning)

	ProcessControllerInput(c, input.KeyDown(input.KeyDown), 0.5, testTuning, nil)

	prev := positionOf(em, id).Y
	lowest := prev
	for i := 0; i < 1000 && c.Hiding != nil && c.Hiding.State == components.HidingDown; i++ {
		sys.Update(testDelta)
		y := positionOf(em, id).Y
		if y >= prev {
			t.Fatalf("Expected y to decrease while going down, %v -> %v", prev, y)
		}
		prev, lowest = y, y
	}

	if c.Hiding == nil || c.Hiding.State != components.HidingUp || c.Hiding.StartY != 0.5 {
		t.Fatalf("Expected Up{0.5} after reaching the floor, got %+v", c.Hiding)
	}
	if lowest >= testTuning.HideFloor {
		t.Errorf("Expected to pass below %v, lowest %v", testTuning.HideFloor, lowest)
	}

	for i := 0; i < 1000 && c.Hiding != nil; i++ {
		sys.Update(testDelta)
		y := positionOf(em, id).Y
		if y < prev {
			t.Fatalf("Expected y to increase while going up, %v -> %v", prev, y)
		}
		prev = y
	}

	if c.Hiding != nil {
		t.Fatalf("Expected hiding to clear")
	}
	if y := positionOf(em, id).Y; y != 0.5 {
		t.Errorf("Expected to return to exactly 0.5, got %v", y)
	}
}

func TestControllerPhysics_HorizontalClampAndFacing(t *testing.T) {
	em := ecs.NewEntityManager()
	id := spawnEnemy(t, em, newStubResources(), components.EnemyKindOne, 0.001, 0, components.DirectionRight)
	c := enemyOf(em, id).Controller
	c.Movement = components.MovementLeft

	NewControllerPhysicsSystem(em, testTuning).Update(testDelta)

	if x := positionOf(em, id).X; x != 0 {
		t.Errorf("Expected x clamped to 0, got %v", x)
	}
	if c.Facing != components.DirectionLeft {
		t.Errorf("Expected facing left, got %v", c.Facing)
	}
}

func TestControllerPhysics_KindFourPinnedToLaunchPad(t *testing.T) {
	tests := []struct {
		side       components.LauncherSide
		wantX      float64
		wantAnchor float64
		wantFacing components.Direction
	}{
		{components.LauncherSideLeft, 0, 50, components.DirectionRight},
		{components.LauncherSideRight, 1, -50, components.DirectionLeft},
	}

	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := spawnEnemy(t, em, newStubResources(), components.EnemyKindFour, 0.4, 0.3, components.DirectionLeft)
			c := enemyOf(em, id).Controller
			c.Side = tt.side

			NewControllerPhysicsSystem(em, testTuning).Update(testDelta)

			pos := positionOf(em, id)
			anchor := ecs.MustGetComponent[*components.LayoutAnchor](em, id)
			if pos.X != tt.wantX || pos.Y != 0.005 || anchor.X != tt.wantAnchor || c.Facing != tt.wantFacing {
				t.Errorf("Expected x=%v y=0.005 anchor=%v facing=%v, got x=%v y=%v anchor=%v facing=%v",
					tt.wantX, tt.wantAnchor, tt.wantFacing, pos.X, pos.Y, anchor.X, c.Facing)
			}
		})
	}
}
