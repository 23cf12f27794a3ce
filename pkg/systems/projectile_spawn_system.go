package systems

import (
	"math/rand"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
	"github.com/decker502/notagame/pkg/entities"
)

// 炸弹竖直加速度的随机区间 [min, max)
const (
	BombAccelerationMin = -1e-7
	BombAccelerationMax = -1e-8
)

// ProjectileSpawnSystem 把生成请求转换为投射物实体
//
// 子弹与敌方火箭从每个对应种类的角色处发出；地面火箭从所请求一侧的发射台发出。
type ProjectileSpawnSystem struct {
	entityManager *ecs.EntityManager
	projectiles   *ProjectileSpawner
	resources     entities.ResourceLoader
	rng           *rand.Rand
	spawned       int
}

// NewProjectileSpawnSystem 创建投射物生成系统
func NewProjectileSpawnSystem(em *ecs.EntityManager, projectiles *ProjectileSpawner, rl entities.ResourceLoader, rng *rand.Rand) *ProjectileSpawnSystem {
	return &ProjectileSpawnSystem{
		entityManager: em,
		projectiles:   projectiles,
		resources:     rl,
		rng:           rng,
	}
}

// Update 处理本 tick 的全部生成请求
func (s *ProjectileSpawnSystem) Update() {
	for _, req := range s.projectiles.Drain() {
		switch req.Kind {
		case components.RequestBomb:
			x := s.rng.Float64()
			accel := BombAccelerationMin + s.rng.Float64()*(BombAccelerationMax-BombAccelerationMin)
			entities.NewBombEntity(s.entityManager, s.resources.Projectile(entities.ProjectileRocketGood), x, accel)
			s.spawned++

		case components.RequestGroundRocket:
			img := s.resources.Projectile(entities.ProjectileRocketBad)
			for _, id := range ecs.GetEntitiesWith1[*components.LauncherComponent](s.entityManager) {
				if ecs.MustGetComponent[*components.LauncherComponent](s.entityManager, id).Side == req.Side {
					entities.NewGroundRocketEntity(s.entityManager, img, req.Side)
					s.spawned++
				}
			}

		case components.RequestEnemyRocket:
			img := s.resources.Projectile(entities.ProjectileRocketBad)
			s.forEachEnemy(components.EnemyKindThree, func(pos components.LayoutPosition, facing components.Direction) {
				entities.NewEnemyRocketEntity(s.entityManager, img, pos, facing)
			})

		case components.RequestBullet:
			img := s.resources.Projectile(entities.ProjectileBullet)
			s.forEachEnemy(components.EnemyKindTwo, func(pos components.LayoutPosition, facing components.Direction) {
				entities.NewBulletEntity(s.entityManager, img, pos, facing)
			})
		}
	}
}

// Spawned 累计生成的投射物数量
func (s *ProjectileSpawnSystem) Spawned() int {
	return s.spawned
}

func (s *ProjectileSpawnSystem) forEachEnemy(kind components.EnemyKind, spawn func(pos components.LayoutPosition, facing components.Direction)) {
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.LayoutPosition](s.entityManager) {
		enemy := ecs.MustGetComponent[*components.EnemyComponent](s.entityManager, id)
		if enemy.Kind != kind {
			continue
		}
		pos := ecs.MustGetComponent[*components.LayoutPosition](s.entityManager, id)
		spawn(*pos, enemy.Controller.Facing)
		s.spawned++
	}
}
