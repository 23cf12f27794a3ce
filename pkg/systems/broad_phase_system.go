package systems

import (
	"image"

	"github.com/decker502/notagame/pkg/collision"
	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
)

// BroadPhaseSystem 几何粗检测
//
// 只检测有意义的组合: 炸弹对每个未躲藏的角色，炸弹对每枚子弹或火箭。
// 碰撞体相交且尚未在队列中的组合进入细检测队列。
type BroadPhaseSystem struct {
	entityManager *ecs.EntityManager
	queue         *collision.EventQueue
}

// NewBroadPhaseSystem 创建粗检测系统
func NewBroadPhaseSystem(em *ecs.EntityManager, queue *collision.EventQueue) *BroadPhaseSystem {
	return &BroadPhaseSystem{
		entityManager: em,
		queue:         queue,
	}
}

// Update 检测本 tick 的候选碰撞，返回新加入队列的数量
func (s *BroadPhaseSystem) Update() int {
	added := 0
	var bombs, others []ecs.EntityID

	enemies := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.ColliderComponent](s.entityManager)
	projectiles := ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.ColliderComponent](s.entityManager)

	for _, p := range projectiles {
		proj := ecs.MustGetComponent[*components.ProjectileComponent](s.entityManager, p)
		if !proj.IsBomb() {
			others = append(others, p)
			continue
		}
		bombs = append(bombs, p)

		for _, e := range enemies {
			enemy := ecs.MustGetComponent[*components.EnemyComponent](s.entityManager, e)
			if enemy.Controller.IsHiding() {
				continue
			}
			if s.check(p, e, s.projectileTarget, s.enemyTarget) {
				added++
			}
		}
	}

	for _, b := range bombs {
		for _, o := range others {
			if s.check(b, o, s.projectileTarget, s.projectileTarget) {
				added++
			}
		}
	}
	return added
}

func (s *BroadPhaseSystem) check(a, b ecs.EntityID, targetA, targetB func(ecs.EntityID) collision.Target) bool {
	if s.queue.Has(a, b) {
		return false
	}
	ca := ecs.MustGetComponent[*components.ColliderComponent](s.entityManager, a)
	cb := ecs.MustGetComponent[*components.ColliderComponent](s.entityManager, b)
	if !collision.Intersects(ca.Vertices, cb.Vertices) {
		return false
	}
	return s.queue.Add(targetA(a), targetB(b))
}

// projectileTarget 投射物使用整张贴图
func (s *BroadPhaseSystem) projectileTarget(id ecs.EntityID) collision.Target {
	proj := ecs.MustGetComponent[*components.ProjectileComponent](s.entityManager, id)
	return collision.Target{
		Entity:   id,
		Vertices: ecs.MustGetComponent[*components.ColliderComponent](s.entityManager, id).Vertices,
		Texture:  proj.Texture,
	}
}

// enemyTarget 角色使用当前精灵图的第 0 帧作为轮廓
func (s *BroadPhaseSystem) enemyTarget(id ecs.EntityID) collision.Target {
	sheet := ecs.MustGetComponent[*components.EnemyComponent](s.entityManager, id).SpriteSheet()
	cell := sheet.Cell(0)
	return collision.Target{
		Entity:   id,
		Vertices: ecs.MustGetComponent[*components.ColliderComponent](s.entityManager, id).Vertices,
		Source:   image.Rect(cell.X, cell.Y, cell.X+cell.Width, cell.Y+cell.Height),
		Texture:  sheet.Texture,
	}
}
