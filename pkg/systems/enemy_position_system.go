package systems

import (
	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
)

// EnemyPositionSystem 按朝向翻转角色
//
// 朝左时水平镜像并用精灵图的锚点修正位置；四号角色的锚点由发射台决定，不在此修改。
type EnemyPositionSystem struct {
	entityManager *ecs.EntityManager
}

// NewEnemyPositionSystem 创建角色朝向系统
func NewEnemyPositionSystem(em *ecs.EntityManager) *EnemyPositionSystem {
	return &EnemyPositionSystem{entityManager: em}
}

// Update 同步朝向到变换与锚点
func (s *EnemyPositionSystem) Update() {
	entities := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.LayoutAnchor, *components.TransformComponent](s.entityManager)

	for _, id := range entities {
		enemy := ecs.MustGetComponent[*components.EnemyComponent](s.entityManager, id)
		anchor := ecs.MustGetComponent[*components.LayoutAnchor](s.entityManager, id)
		transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, id)

		anchorX := 0.0
		if sheet := enemy.SpriteSheet(); sheet != nil {
			anchorX = sheet.AnchorX
		}

		if enemy.Controller.Facing == components.DirectionLeft {
			transform.ScaleX = -1
		} else {
			transform.ScaleX = 1
			anchorX = -anchorX
		}
		if enemy.Kind != components.EnemyKindFour {
			anchor.X = anchorX
		}
	}
}
