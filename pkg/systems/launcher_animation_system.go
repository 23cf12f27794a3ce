package systems

import (
	"log"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
)

// LauncherAnimationSystem 发射台动画，只在发射中推进，播完一轮后发射地面火箭
type LauncherAnimationSystem struct {
	entityManager *ecs.EntityManager
	projectiles   *ProjectileSpawner
}

// NewLauncherAnimationSystem 创建发射台动画系统
func NewLauncherAnimationSystem(em *ecs.EntityManager, projectiles *ProjectileSpawner) *LauncherAnimationSystem {
	return &LauncherAnimationSystem{
		entityManager: em,
		projectiles:   projectiles,
	}
}

// Update 推进 deltaTime 毫秒
func (s *LauncherAnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.LauncherComponent, *components.AnimationComponent](s.entityManager)

	for _, id := range entities {
		launcher := ecs.MustGetComponent[*components.LauncherComponent](s.entityManager, id)
		if !launcher.Launching {
			continue
		}
		anim := ecs.MustGetComponent[*components.AnimationComponent](s.entityManager, id)

		if _, wrapped := anim.Advance(deltaTime); wrapped {
			launcher.Launching = false
			s.projectiles.Push(components.ProjectileRequest{
				Kind: components.RequestGroundRocket,
				Side: launcher.Side,
			})
			log.Printf("[LauncherAnimationSystem] %s launcher fired", launcher.Side)
		}
	}
}
