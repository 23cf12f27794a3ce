package entities

import (
	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
)

// NewSceneRoot 创建场景图根节点
//
// 根节点使用单位变换，之后由工厂创建的实体都挂在它下面，
// 删除实体时先从根节点摘除。
func NewSceneRoot(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.SceneRootComponent{})
	em.AddComponent(id, components.NewTransform())
	return id
}

// attachToSceneRoot 把新实体挂到场景根节点，没有根节点时保持独立
func attachToSceneRoot(em *ecs.EntityManager, id ecs.EntityID) {
	roots := ecs.GetEntitiesWith1[*components.SceneRootComponent](em)
	if len(roots) == 0 {
		return
	}
	em.SetParent(id, roots[0])
}
