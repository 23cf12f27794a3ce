package systems

import (
	"log"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
	"github.com/decker502/notagame/pkg/game"
)

// GameOverSystem 所有角色都被摧毁后结束游戏
type GameOverSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewGameOverSystem 创建游戏结束检测系统
func NewGameOverSystem(em *ecs.EntityManager, gs *game.GameState) *GameOverSystem {
	return &GameOverSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 检查是否还有未被标记删除的角色
func (s *GameOverSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager) {
		if !s.entityManager.IsMarkedForDeletion(id) {
			return
		}
	}

	if s.gameState.Pause.Mode != game.PauseGameOver {
		log.Printf("[GameOverSystem] No enemies left, game over")
	}
	s.gameState.Pause.SetGameOver()
	s.gameState.UI.Phase = game.UIPhaseGameOver
}
