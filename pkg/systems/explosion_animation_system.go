package systems

import (
	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
)

// ExplosionAnimationSystem 推进爆炸动画
//
// 播到一半时摧毁被炸的实体（角色改为发出销毁事件），播完后删除爆炸自身。
type ExplosionAnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewExplosionAnimationSystem 创建爆炸动画系统
func NewExplosionAnimationSystem(em *ecs.EntityManager) *ExplosionAnimationSystem {
	return &ExplosionAnimationSystem{entityManager: em}
}

// Update 推进 deltaTime 毫秒
func (s *ExplosionAnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.ExplosionComponent, *components.AnimationComponent](s.entityManager)

	for _, id := range entities {
		explosion := ecs.MustGetComponent[*components.ExplosionComponent](s.entityManager, id)
		anim := ecs.MustGetComponent[*components.AnimationComponent](s.entityManager, id)

		advanced, wrapped := anim.Advance(deltaTime)
		if wrapped {
			s.entityManager.DestroyEntity(id)
			continue
		}
		if advanced && anim.Index == anim.Len/2 {
			s.destroyExplodee(explosion.Explodee)
		}
	}
}

func (s *ExplosionAnimationSystem) destroyExplodee(target ecs.EntityID) {
	if !s.entityManager.Exists(target) {
		return
	}
	if ecs.HasComponent[*components.EnemyComponent](s.entityManager, target) {
		s.entityManager.AddComponent(target, &components.EnemyDestroyEvent{})
		return
	}
	s.entityManager.DestroyEntity(target)
}
