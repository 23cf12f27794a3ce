package systems

import (
	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
)

// 攻击动画中触发发射的帧序号
const (
	BulletTriggerCell      = 10
	EnemyRocketTriggerCell = 5
	LauncherTriggerCell    = 20
)

// EnemyAnimationSystem 角色动画驱动
//
// 先根据控制器状态确定动画阶段（阶段变化时动画回到第 0 帧），再推进所有角色的动画。
// 攻击动画在固定帧上发出投射物请求，动画回绕时结束攻击。
type EnemyAnimationSystem struct {
	entityManager *ecs.EntityManager
	projectiles   *ProjectileSpawner
}

// NewEnemyAnimationSystem 创建角色动画系统
func NewEnemyAnimationSystem(em *ecs.EntityManager, projectiles *ProjectileSpawner) *EnemyAnimationSystem {
	return &EnemyAnimationSystem{
		entityManager: em,
		projectiles:   projectiles,
	}
}

// Update 推进 deltaTime 毫秒
func (s *EnemyAnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.AnimationComponent](s.entityManager)

	for _, id := range entities {
		enemy := ecs.MustGetComponent[*components.EnemyComponent](s.entityManager, id)
		anim := ecs.MustGetComponent[*components.AnimationComponent](s.entityManager, id)

		if phase := phaseFor(enemy); phase != enemy.Phase {
			enemy.Phase = phase
			anim.Reset(enemy.SpriteSheet())
		}
	}

	var ended []*components.EnemyComponent
	for _, id := range entities {
		enemy := ecs.MustGetComponent[*components.EnemyComponent](s.entityManager, id)
		anim := ecs.MustGetComponent[*components.AnimationComponent](s.entityManager, id)

		advanced, wrapped := anim.Advance(deltaTime)
		switch {
		case wrapped:
			ended = append(ended, enemy)
		case advanced:
			s.triggerCell(enemy, anim.Index)
		}
	}

	for _, enemy := range ended {
		enemy.Controller.StopAttack()
	}
}

// phaseFor 由控制器状态决定的动画阶段，攻击优先
func phaseFor(enemy *components.EnemyComponent) components.EnemyPhase {
	c := enemy.Controller
	if c.Attack != nil {
		return components.AttackPhase(enemy.Kind)
	}
	if enemy.Kind != components.EnemyKindFour && c.Movement != components.MovementNone {
		return components.PhaseWalk
	}
	return components.PhaseIdle
}

func (s *EnemyAnimationSystem) triggerCell(enemy *components.EnemyComponent, index int) {
	switch {
	case enemy.Kind == components.EnemyKindTwo && enemy.Phase == components.PhaseShooting && index == BulletTriggerCell:
		s.projectiles.Push(components.ProjectileRequest{Kind: components.RequestBullet})
	case enemy.Kind == components.EnemyKindThree && enemy.Phase == components.PhaseShoot && index == EnemyRocketTriggerCell:
		s.projectiles.Push(components.ProjectileRequest{Kind: components.RequestEnemyRocket})
	case enemy.Kind == components.EnemyKindFour && enemy.Phase == components.PhaseShoot && index == LauncherTriggerCell:
		s.startLauncher(enemy.Controller.Facing)
	}
}

// startLauncher 启动角色背后的发射台: 面朝左时站在右侧发射台上
func (s *EnemyAnimationSystem) startLauncher(facing components.Direction) {
	side := components.LauncherSideLeft
	if facing == components.DirectionLeft {
		side = components.LauncherSideRight
	}
	for _, id := range ecs.GetEntitiesWith1[*components.LauncherComponent](s.entityManager) {
		launcher := ecs.MustGetComponent[*components.LauncherComponent](s.entityManager, id)
		if launcher.Side == side {
			launcher.Launching = true
			return
		}
	}
}
