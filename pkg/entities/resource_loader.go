package entities

import (
	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/game"
)

// ResourceLoader 工厂函数需要的资源接口，由 game.ResourceManager 实现
type ResourceLoader interface {
	EnemySheets(kind components.EnemyKind) (components.EnemySpriteSheets, error)
	LauncherSheet() *components.SpriteSheet
	ExplosionSheet() *components.SpriteSheet
	Projectile(name string) game.ProjectileImage
}

// 投射物贴图名称（对应 spritesheets.yaml 的 projectiles 段）
const (
	ProjectileBullet     = "bullet"
	ProjectileRocketBad  = "rocketBad"
	ProjectileRocketGood = "rocketGood"
)
