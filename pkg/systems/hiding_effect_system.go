package systems

import (
	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
)

// HidingEffectSystem 躲藏中的角色每个 tick 推进一次闪烁
type HidingEffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewHidingEffectSystem 创建躲藏效果系统
func NewHidingEffectSystem(em *ecs.EntityManager) *HidingEffectSystem {
	return &HidingEffectSystem{entityManager: em}
}

// Update 推进躲藏效果
func (s *HidingEffectSystem) Update() {
	entities := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.HidingEffectComponent](s.entityManager)

	for _, id := range entities {
		enemy := ecs.MustGetComponent[*components.EnemyComponent](s.entityManager, id)
		if !enemy.Controller.IsHiding() {
			continue
		}
		ecs.MustGetComponent[*components.HidingEffectComponent](s.entityManager, id).Step()
	}
}
