package entities

import (
	"fmt"
	"log"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
)

// EnemySpawn 角色的开局位置与朝向
type EnemySpawn struct {
	Kind   components.EnemyKind
	X, Y   float64
	Facing components.Direction
}

// DefaultEnemySpawns 开局阵型，按生成顺序排列
var DefaultEnemySpawns = []EnemySpawn{
	{Kind: components.EnemyKindOne, X: 0.35, Y: 0, Facing: components.DirectionRight},
	{Kind: components.EnemyKindTwo, X: 0.5, Y: 0, Facing: components.DirectionLeft},
	{Kind: components.EnemyKindThree, X: 0.65, Y: 0, Facing: components.DirectionRight},
	{Kind: components.EnemyKindFour, X: 0, Y: 0, Facing: components.DirectionLeft},
}

// NewEnemyEntity 创建可操控角色
//
// 参数:
//   - em: 实体管理器
//   - rl: 资源加载器（提供各阶段精灵图）
//   - spawn: 开局位置与朝向
//
// 返回:
//   - ecs.EntityID: 角色实体ID
//   - error: 精灵图缺失时返回错误
func NewEnemyEntity(em *ecs.EntityManager, rl ResourceLoader, spawn EnemySpawn) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, fmt.Errorf("entity manager cannot be nil")
	}
	sheets, err := rl.EnemySheets(spawn.Kind)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("failed to create enemy %s: %w", spawn.Kind, err)
	}
	idle := sheets[components.PhaseIdle]
	if idle.Len() == 0 {
		return ecs.InvalidEntity, fmt.Errorf("failed to create enemy %s: empty idle sheet", spawn.Kind)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.EnemyComponent{
		Kind:       spawn.Kind,
		Phase:      components.PhaseIdle,
		Sheets:     sheets,
		Controller: components.NewController(spawn.Kind, spawn.Facing),
	})
	em.AddComponent(id, components.NewAnimation(idle))
	em.AddComponent(id, &components.LayoutPosition{X: spawn.X, Y: spawn.Y})
	em.AddComponent(id, &components.LayoutAnchor{})
	em.AddComponent(id, &components.ColliderComponent{})
	em.AddComponent(id, components.NewHidingEffect())
	em.AddComponent(id, components.NewTransform())
	attachToSceneRoot(em, id)

	log.Printf("[EnemyFactory] Spawned enemy %s as entity %d at (%.2f, %.2f) facing %s",
		spawn.Kind, id, spawn.X, spawn.Y, spawn.Facing)
	return id, nil
}

// NewLauncherEntity 创建地面火箭发射台
//
// 左侧发射台位于 (0,0)；右侧位于 (1,0) 并水平翻转。
func NewLauncherEntity(em *ecs.EntityManager, rl ResourceLoader, side components.LauncherSide) (ecs.EntityID, error) {
	sheet := rl.LauncherSheet()
	if sheet.Len() == 0 {
		return ecs.InvalidEntity, fmt.Errorf("failed to create launcher: no launcher sheet")
	}

	transform := components.NewTransform()
	pos := &components.LayoutPosition{X: 0, Y: 0}
	if side == components.LauncherSideRight {
		pos.X = 1
		transform.ScaleX = -1
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.LauncherComponent{Side: side, Sheet: sheet})
	em.AddComponent(id, components.NewAnimation(sheet))
	em.AddComponent(id, pos)
	em.AddComponent(id, &components.LayoutAnchor{})
	em.AddComponent(id, transform)
	attachToSceneRoot(em, id)

	log.Printf("[EnemyFactory] Spawned %s launcher as entity %d", side, id)
	return id, nil
}
