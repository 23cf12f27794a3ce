package systems

import (
	"github.com/decker502/notagame/pkg/ecs"
)

// DeletionSystem 清理标记删除的实体，必须在 update 阶段最后执行
//
// 实体先从场景层级摘除，再连同全部组件删除；
// 同时清除这些实体在爆炸生成器中的记录。
type DeletionSystem struct {
	entityManager *ecs.EntityManager
	explosions    *ExplosionSpawner
	removed       int
}

// NewDeletionSystem 创建删除系统，explosions 可为 nil
func NewDeletionSystem(em *ecs.EntityManager, explosions *ExplosionSpawner) *DeletionSystem {
	return &DeletionSystem{
		entityManager: em,
		explosions:    explosions,
	}
}

// Update 执行删除
func (s *DeletionSystem) Update() {
	marked := s.entityManager.MarkedEntities()
	s.removed += s.entityManager.RemoveMarkedEntities()
	if s.explosions != nil {
		s.explosions.Forget(marked...)
	}
}

// Removed 累计删除的实体数量
func (s *DeletionSystem) Removed() int {
	return s.removed
}
