package systems

import (
	"log"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
	"github.com/decker502/notagame/pkg/game"
)

// DestroyEventSystem 处理角色销毁事件
//
// 被销毁的角色标记删除并记录其种类；若受控角色被销毁，
// 控制权转交给第一个仍然存活的角色。
type DestroyEventSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	cues          *game.AudioEventQueue
}

// NewDestroyEventSystem 创建销毁事件系统
func NewDestroyEventSystem(em *ecs.EntityManager, gs *game.GameState, cues *game.AudioEventQueue) *DestroyEventSystem {
	return &DestroyEventSystem{
		entityManager: em,
		gameState:     gs,
		cues:          cues,
	}
}

// Update 处理本 tick 的销毁事件
func (s *DestroyEventSystem) Update() {
	destroyed := false
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyDestroyEvent, *components.EnemyComponent](s.entityManager) {
		enemy := ecs.MustGetComponent[*components.EnemyComponent](s.entityManager, id)
		s.entityManager.DestroyEntity(id)
		s.gameState.RecordDestroyed(enemy.Kind)
		destroyed = true
		log.Printf("[DestroyEventSystem] Enemy %s (entity %d) destroyed", enemy.Kind, id)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.EnemyDestroyEvent](s.entityManager) {
		ecs.RemoveComponent[*components.EnemyDestroyEvent](s.entityManager, id)
	}

	if !destroyed {
		return
	}
	pushCue(s.cues, game.AudioCollisionDie)

	active, ok := ActiveEnemy(s.entityManager)
	if !ok || !s.entityManager.IsMarkedForDeletion(active) {
		return
	}
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDeletion(id) {
			continue
		}
		DispatchSelect(s.entityManager, ecs.MustGetComponent[*components.EnemyComponent](s.entityManager, id).Kind)
		return
	}
}
