package entities

import (
	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
)

// NewExplosionEntity 在世界坐标 (x, y) 处创建爆炸，explodee 为被炸毁的实体
//
// 爆炸不经过布局换算，直接使用平移变换。
func NewExplosionEntity(em *ecs.EntityManager, sheet *components.SpriteSheet, explodee ecs.EntityID, x, y float64) ecs.EntityID {
	transform := components.NewTransform()
	transform.TranslationX = x
	transform.TranslationY = y

	id := em.CreateEntity()
	em.AddComponent(id, &components.ExplosionComponent{Explodee: explodee, Sheet: sheet})
	em.AddComponent(id, components.NewAnimation(sheet))
	em.AddComponent(id, transform)
	attachToSceneRoot(em, id)
	return id
}
