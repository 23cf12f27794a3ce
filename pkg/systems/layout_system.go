package systems

import (
	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
)

// LayoutSystem 把归一化布局位置换算为世界坐标平移
//
// 世界坐标以视口中心为原点、Y 轴向上，地面比视口底部高 footerHeight 像素。
type LayoutSystem struct {
	entityManager *ecs.EntityManager
	footerHeight  float64
}

// NewLayoutSystem 创建布局系统
func NewLayoutSystem(em *ecs.EntityManager, footerHeight float64) *LayoutSystem {
	return &LayoutSystem{
		entityManager: em,
		footerHeight:  footerHeight,
	}
}

// Update 按视口尺寸刷新所有带布局位置的实体
func (s *LayoutSystem) Update(viewportWidth, viewportHeight float64) {
	entities := ecs.GetEntitiesWith2[*components.LayoutPosition, *components.TransformComponent](s.entityManager)

	for _, id := range entities {
		pos := ecs.MustGetComponent[*components.LayoutPosition](s.entityManager, id)
		transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, id)

		transform.TranslationX, transform.TranslationY = LayoutToWorld(*pos, viewportWidth, viewportHeight, s.footerHeight)
		if anchor, ok := ecs.GetComponent[*components.LayoutAnchor](s.entityManager, id); ok {
			transform.TranslationX += anchor.X
			transform.TranslationY += anchor.Y
		}
	}
}

// LayoutToWorld 归一化位置到世界坐标
func LayoutToWorld(pos components.LayoutPosition, viewportWidth, viewportHeight, footerHeight float64) (float64, float64) {
	x := pos.X*viewportWidth - viewportWidth/2
	y := pos.Y*viewportHeight - viewportHeight/2 + footerHeight
	return x, y
}
