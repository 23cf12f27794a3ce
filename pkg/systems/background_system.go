package systems

import "github.com/decker502/notagame/pkg/game"

// CloudDriftSpeed 云层每毫秒的水平漂移量
const CloudDriftSpeed = 0.00001

// BackgroundSystem 背景云层漂移
type BackgroundSystem struct {
	gameState *game.GameState
}

// NewBackgroundSystem 创建背景系统
func NewBackgroundSystem(gs *game.GameState) *BackgroundSystem {
	return &BackgroundSystem{gameState: gs}
}

// Update 推进 deltaTime 毫秒
func (s *BackgroundSystem) Update(deltaTime float64) {
	s.gameState.CloudOffset += deltaTime * CloudDriftSpeed
}
