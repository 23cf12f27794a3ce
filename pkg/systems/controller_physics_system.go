package systems

import (
	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
)

// 四号角色固定在发射台上的位置参数
const (
	launchPadY       = 0.005
	launchPadAnchorX = 50.0
)

// ControllerPhysicsSystem 根据控制器状态推进角色位置
//
// 水平移动、躲藏、跳跃依次作用于 LayoutPosition，结果通过 ControllerUpdate 写回控制器。
type ControllerPhysicsSystem struct {
	entityManager *ecs.EntityManager
	tuning        ControllerTuning
}

// NewControllerPhysicsSystem 创建控制器物理系统
func NewControllerPhysicsSystem(em *ecs.EntityManager, tuning ControllerTuning) *ControllerPhysicsSystem {
	return &ControllerPhysicsSystem{
		entityManager: em,
		tuning:        tuning,
	}
}

// Update 推进 deltaTime 毫秒
func (s *ControllerPhysicsSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.LayoutPosition, *components.LayoutAnchor](s.entityManager)

	for _, id := range entities {
		enemy := ecs.MustGetComponent[*components.EnemyComponent](s.entityManager, id)
		pos := ecs.MustGetComponent[*components.LayoutPosition](s.entityManager, id)
		anchor := ecs.MustGetComponent[*components.LayoutAnchor](s.entityManager, id)
		c := enemy.Controller

		movement := c.Movement
		if !c.HasHorizontalMovement() {
			movement = components.MovementNone
		}
		next, update := StepController(c, movement, *pos, deltaTime, s.tuning)
		*pos = next
		c.ApplyUpdate(update)

		if c.Kind == components.EnemyKindFour {
			pinToLaunchPad(c, pos, anchor)
		}
	}
}

// StepController 计算一个 tick 后的位置与控制器变更，不修改 c
func StepController(c *components.Controller, movement components.HorizontalMovement, pos components.LayoutPosition, deltaTime float64, tuning ControllerTuning) (components.LayoutPosition, components.ControllerUpdate) {
	var update components.ControllerUpdate

	horizontalSpeed := tuning.HorizontalSpeed * deltaTime
	switch movement {
	case components.MovementLeft:
		pos.X -= horizontalSpeed
		dir := components.DirectionLeft
		update.Direction = &dir
	case components.MovementRight:
		pos.X += horizontalSpeed
		dir := components.DirectionRight
		update.Direction = &dir
	}

	if h := c.Hiding; h != nil {
		hidingSpeed := tuning.HidingSpeed * deltaTime
		switch h.State {
		case components.HidingDown:
			pos.Y -= hidingSpeed
			if pos.Y < tuning.HideFloor {
				update.SetHiding = true
				update.Hiding = &components.Hiding{State: components.HidingUp, StartY: h.StartY}
			}
		case components.HidingUp:
			pos.Y += hidingSpeed
			if pos.Y >= h.StartY {
				pos.Y = h.StartY
				update.SetHiding = true
			}
		}
	}

	if c.Jump != nil {
		jump := *c.Jump
		pos.Y += jump.Velocity
		jump.Velocity += jump.Acceleration

		update.SetJump = true
		if pos.Y <= jump.StartY {
			pos.Y = jump.StartY
		} else {
			update.Jump = &jump
		}
	}

	pos.X = max(0, min(1, pos.X))
	return pos, update
}

// pinToLaunchPad 四号角色站在所选一侧的发射台上，面朝场地中央
func pinToLaunchPad(c *components.Controller, pos *components.LayoutPosition, anchor *components.LayoutAnchor) {
	pos.Y = launchPadY
	if c.Side == components.LauncherSideLeft {
		pos.X = 0
		anchor.X = launchPadAnchorX
		c.Facing = components.DirectionRight
	} else {
		pos.X = 1
		anchor.X = -launchPadAnchorX
		c.Facing = components.DirectionLeft
	}
}
