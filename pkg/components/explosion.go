package components

import "github.com/decker502/notagame/pkg/ecs"

// ExplosionComponent 爆炸特效，Explodee 为被炸毁的实体
type ExplosionComponent struct {
	Explodee ecs.EntityID
	Sheet    *SpriteSheet
}
