package systems

import (
	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
)

// ColliderSystem 用世界变换刷新碰撞体顶点
//
// 角色使用当前动画帧的尺寸，投射物使用贴图尺寸。
type ColliderSystem struct {
	entityManager *ecs.EntityManager
}

// NewColliderSystem 创建碰撞体系统
func NewColliderSystem(em *ecs.EntityManager) *ColliderSystem {
	return &ColliderSystem{entityManager: em}
}

// Update 刷新所有碰撞体
func (s *ColliderSystem) Update() {
	enemies := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.ColliderComponent, *components.AnimationComponent](s.entityManager)
	for _, id := range enemies {
		enemy := ecs.MustGetComponent[*components.EnemyComponent](s.entityManager, id)
		anim := ecs.MustGetComponent[*components.AnimationComponent](s.entityManager, id)
		transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, id)

		cell := enemy.SpriteSheet().Cell(anim.Index)
		ecs.MustGetComponent[*components.ColliderComponent](s.entityManager, id).
			Update(float64(cell.Width), float64(cell.Height), transform.World)
	}

	projectiles := ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.ColliderComponent](s.entityManager)
	for _, id := range projectiles {
		proj := ecs.MustGetComponent[*components.ProjectileComponent](s.entityManager, id)
		transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, id)

		ecs.MustGetComponent[*components.ColliderComponent](s.entityManager, id).
			Update(proj.Width, proj.Height, transform.World)
	}
}
