package systems

import (
	"math"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
	"github.com/decker502/notagame/pkg/entities"
)

// ProjectilePhysicsSystem 投射物的显式欧拉积分
//
// 子弹与炸弹: 位置 += 速度·dt，速度 += 加速度·dt。
// 火箭: 沿当前朝向 (-sinθ, cosθ) 推进，随后 θ -= 旋转速度·dt。
// 飞出场地的投射物标记删除。
type ProjectilePhysicsSystem struct {
	entityManager *ecs.EntityManager
}

// NewProjectilePhysicsSystem 创建投射物物理系统
func NewProjectilePhysicsSystem(em *ecs.EntityManager) *ProjectilePhysicsSystem {
	return &ProjectilePhysicsSystem{entityManager: em}
}

// Update 推进 deltaTime 毫秒
func (s *ProjectilePhysicsSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.LayoutPosition, *components.TransformComponent](s.entityManager)

	for _, id := range ids {
		proj := ecs.MustGetComponent[*components.ProjectileComponent](s.entityManager, id)
		pos := ecs.MustGetComponent[*components.LayoutPosition](s.entityManager, id)
		transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, id)

		if StepProjectile(proj, pos, deltaTime) {
			s.entityManager.DestroyEntity(id)
		}
		transform.Rotation = proj.Rotation
	}
}

// StepProjectile 推进一个投射物，返回其是否已飞出场地
func StepProjectile(proj *components.ProjectileComponent, pos *components.LayoutPosition, deltaTime float64) bool {
	switch proj.Motion {
	case components.MotionRocket:
		rad := proj.Rotation * math.Pi / 180
		pos.X += proj.ThrustSpeed * -math.Sin(rad) * deltaTime
		pos.Y += proj.ThrustSpeed * math.Cos(rad) * deltaTime
		proj.Rotation -= proj.RotationSpeed * deltaTime
	default:
		pos.X += proj.VelocityX * deltaTime
		pos.Y += proj.VelocityY * deltaTime
		proj.VelocityX += proj.AccelerationX * deltaTime
		proj.VelocityY += proj.AccelerationY * deltaTime
	}

	if proj.IsBomb() {
		return pos.Y < entities.BombFloorY
	}
	return pos.X > entities.ProjectileMaxX || pos.X < entities.ProjectileMinX
}
