package systems

import (
	"math/rand"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/config"
)

// BomberSystem 定时从空中投下炸弹
//
// 倒计时归零时请求一颗炸弹，并在 [min, max) 内随机重置倒计时。
type BomberSystem struct {
	projectiles *ProjectileSpawner
	rng         *rand.Rand
	countdown   float64
	rangeMin    float64
	rangeMax    float64
	dropped     int
}

// NewBomberSystem 创建炸弹投放系统
func NewBomberSystem(projectiles *ProjectileSpawner, rng *rand.Rand, cfg *config.GameConfig) *BomberSystem {
	return &BomberSystem{
		projectiles: projectiles,
		rng:         rng,
		countdown:   cfg.InitialDropCountdown,
		rangeMin:    cfg.DropCountdownRange.Min,
		rangeMax:    cfg.DropCountdownRange.Max,
	}
}

// Update 推进 deltaTime 毫秒
func (s *BomberSystem) Update(deltaTime float64) {
	s.countdown -= deltaTime
	if s.countdown > 0 {
		return
	}
	s.countdown = s.rangeMin + s.rng.Float64()*(s.rangeMax-s.rangeMin)
	s.projectiles.Push(components.ProjectileRequest{Kind: components.RequestBomb})
	s.dropped++
}

// Countdown 距离下一颗炸弹的剩余毫秒数
func (s *BomberSystem) Countdown() float64 {
	return s.countdown
}

// Dropped 已请求的炸弹数量
func (s *BomberSystem) Dropped() int {
	return s.dropped
}
