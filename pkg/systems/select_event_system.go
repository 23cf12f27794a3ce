package systems

import (
	"log"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
	"github.com/decker502/notagame/pkg/game"
)

// SelectEventSystem 处理角色选择事件
//
// 本 tick 内有多个选择事件时，ID 最大的角色生效。被选中的角色清空控制器瞬时状态
// 并成为唯一的 ActiveController。
type SelectEventSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewSelectEventSystem 创建选择事件系统
func NewSelectEventSystem(em *ecs.EntityManager, gs *game.GameState) *SelectEventSystem {
	return &SelectEventSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 处理本 tick 的选择事件
func (s *SelectEventSystem) Update() {
	selected := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.EnemySelectEvent](s.entityManager)
	if len(selected) == 0 {
		return
	}
	chosen := selected[len(selected)-1]

	for _, id := range ecs.GetEntitiesWith1[*components.ActiveControllerComponent](s.entityManager) {
		ecs.RemoveComponent[*components.ActiveControllerComponent](s.entityManager, id)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.EnemySelectEvent](s.entityManager) {
		ecs.RemoveComponent[*components.EnemySelectEvent](s.entityManager, id)
	}

	enemy := ecs.MustGetComponent[*components.EnemyComponent](s.entityManager, chosen)
	enemy.Controller.Clear()
	s.entityManager.AddComponent(chosen, &components.ActiveControllerComponent{})
	s.gameState.SetSelectedKind(enemy.Kind)

	log.Printf("[SelectEventSystem] Enemy %s (entity %d) is now under control", enemy.Kind, chosen)
}

// DispatchSelect 给指定种类的第一个未被标记删除的角色添加选择事件
//
// 返回是否找到了该种类的角色。
func DispatchSelect(em *ecs.EntityManager, kind components.EnemyKind) bool {
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		if em.IsMarkedForDeletion(id) {
			continue
		}
		enemy := ecs.MustGetComponent[*components.EnemyComponent](em, id)
		if enemy.Kind == kind {
			em.AddComponent(id, &components.EnemySelectEvent{})
			return true
		}
	}
	return false
}

// ActiveEnemy 返回当前受控的角色
func ActiveEnemy(em *ecs.EntityManager) (ecs.EntityID, bool) {
	active := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.ActiveControllerComponent](em)
	if len(active) == 0 {
		return ecs.InvalidEntity, false
	}
	return active[0], true
}
