package systems

import (
	"log"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
	"github.com/decker502/notagame/pkg/entities"
	"github.com/decker502/notagame/pkg/game"
)

// ExplosionSpawnSystem 在被确认碰撞的实体处生成爆炸
//
// 爆炸居中放在目标碰撞体的世界包围盒中心。
type ExplosionSpawnSystem struct {
	entityManager *ecs.EntityManager
	explosions    *ExplosionSpawner
	sheet         *components.SpriteSheet
	cues          *game.AudioEventQueue
}

// NewExplosionSpawnSystem 创建爆炸生成系统
func NewExplosionSpawnSystem(em *ecs.EntityManager, explosions *ExplosionSpawner, sheet *components.SpriteSheet, cues *game.AudioEventQueue) *ExplosionSpawnSystem {
	return &ExplosionSpawnSystem{
		entityManager: em,
		explosions:    explosions,
		sheet:         sheet,
		cues:          cues,
	}
}

// Update 处理本 tick 的爆炸请求
func (s *ExplosionSpawnSystem) Update() {
	halfW := float64(s.sheet.MaxCellWidth) / 2
	halfH := float64(s.sheet.MaxCellHeight) / 2

	spawned := false
	for _, target := range s.explosions.Drain() {
		collider, ok := ecs.GetComponent[*components.ColliderComponent](s.entityManager, target)
		if !ok {
			log.Printf("[ExplosionSpawnSystem] Entity %d is gone, skipping explosion", target)
			continue
		}
		if !s.explosions.MarkSpawned(target) {
			continue
		}
		transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, target)

		x0, y0 := transform.World.Apply(0, 0)
		x1, y1 := transform.World.Apply(collider.Width, collider.Height)
		x := x0 + (x1-x0)/2 - halfW
		y := y0 + (y1-y0)/2 - halfH

		entities.NewExplosionEntity(s.entityManager, s.sheet, target, x, y)
		spawned = true
	}

	if spawned {
		pushCue(s.cues, game.AudioCollisionImpact)
	}
}
