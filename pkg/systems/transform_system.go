package systems

import (
	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
)

// TransformSystem 沿场景层级计算世界变换
//
// 子节点的世界变换 = 自身局部变换，再叠加父节点的世界变换。
type TransformSystem struct {
	entityManager *ecs.EntityManager
	resolved      map[ecs.EntityID]bool
}

// NewTransformSystem 创建变换系统
func NewTransformSystem(em *ecs.EntityManager) *TransformSystem {
	return &TransformSystem{
		entityManager: em,
		resolved:      make(map[ecs.EntityID]bool),
	}
}

// Update 重新计算所有实体的世界变换
func (s *TransformSystem) Update() {
	clear(s.resolved)
	for _, id := range ecs.GetEntitiesWith1[*components.TransformComponent](s.entityManager) {
		s.resolve(id)
	}
}

func (s *TransformSystem) resolve(id ecs.EntityID) *components.TransformComponent {
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	if !ok {
		return nil
	}
	if s.resolved[id] {
		return transform
	}
	s.resolved[id] = true

	world := transform.LocalGeoM()
	if parent, ok := s.entityManager.Parent(id); ok {
		if pt := s.resolve(parent); pt != nil {
			world.Concat(pt.World)
		}
	}
	transform.World = world
	return transform
}
