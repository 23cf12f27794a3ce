package entities

import (
	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
	"github.com/decker502/notagame/pkg/game"
)

// 投射物参数（速度单位: 归一化布局单位/毫秒，角度单位: 度）
const (
	BombInitialVelocityY = -1e-7

	RocketThrustSpeed       = 0.0005
	GroundRocketRotation    = 30.0
	GroundRocketSpin        = 0.02
	GroundRocketScaleX      = 0.4
	GroundRocketScaleY      = 0.7
	EnemyRocketRotation     = 70.0
	EnemyRocketScale        = 0.5
	BulletSpeed             = 0.001
	BulletMuzzleOffset      = 0.05
	BulletRotation          = 90.0
	BulletAnchorX           = 60.0
	BulletAnchorY           = 140.0
	ProjectileMinX          = -0.5
	ProjectileMaxX          = 1.5
	BombFloorY              = -0.5
	projectileInitialHeight = 1.0
)

// newProjectileEntity 组装投射物的公共组件
func newProjectileEntity(em *ecs.EntityManager, proj *components.ProjectileComponent, pos components.LayoutPosition, anchor components.LayoutAnchor, transform *components.TransformComponent) ecs.EntityID {
	transform.Rotation = proj.Rotation

	id := em.CreateEntity()
	em.AddComponent(id, proj)
	em.AddComponent(id, &pos)
	em.AddComponent(id, &anchor)
	em.AddComponent(id, transform)
	em.AddComponent(id, &components.ColliderComponent{})
	attachToSceneRoot(em, id)
	return id
}

// NewBombEntity 在顶部 x 处生成一颗下落的炸弹
//
// 参数:
//   - img: 炸弹贴图（rocketGood）
//   - x: 归一化水平位置
//   - accelerationY: 竖直加速度（负值向下）
func NewBombEntity(em *ecs.EntityManager, img game.ProjectileImage, x, accelerationY float64) ecs.EntityID {
	proj := &components.ProjectileComponent{
		Width:         img.Width,
		Height:        img.Height,
		Texture:       img.Texture,
		Motion:        components.MotionBomb,
		VelocityY:     BombInitialVelocityY,
		AccelerationY: accelerationY,
	}
	return newProjectileEntity(em, proj,
		components.LayoutPosition{X: x, Y: projectileInitialHeight},
		components.LayoutAnchor{X: -img.Width / 2},
		components.NewTransform())
}

// NewGroundRocketEntity 从 side 一侧的发射台发射火箭，火箭向场地中央弯曲
func NewGroundRocketEntity(em *ecs.EntityManager, img game.ProjectileImage, side components.LauncherSide) ecs.EntityID {
	proj := &components.ProjectileComponent{
		Width:       img.Width,
		Height:      img.Height,
		Texture:     img.Texture,
		Motion:      components.MotionRocket,
		ThrustSpeed: RocketThrustSpeed,
	}
	pos := components.LayoutPosition{}
	var anchor components.LayoutAnchor
	if side == components.LauncherSideLeft {
		proj.Rotation = -GroundRocketRotation
		proj.RotationSpeed = GroundRocketSpin
		anchor = components.LayoutAnchor{X: 215, Y: 235}
	} else {
		proj.Rotation = GroundRocketRotation
		proj.RotationSpeed = -GroundRocketSpin
		anchor = components.LayoutAnchor{X: -238, Y: 220}
		pos.X = 1
	}

	transform := components.NewTransform()
	transform.ScaleX = GroundRocketScaleX
	transform.ScaleY = GroundRocketScaleY
	return newProjectileEntity(em, proj, pos, anchor, transform)
}

// NewEnemyRocketEntity 三号角色发射的火箭，朝其面向的一侧斜向飞出
func NewEnemyRocketEntity(em *ecs.EntityManager, img game.ProjectileImage, from components.LayoutPosition, facing components.Direction) ecs.EntityID {
	proj := &components.ProjectileComponent{
		Width:       img.Width,
		Height:      img.Height,
		Texture:     img.Texture,
		Motion:      components.MotionRocket,
		ThrustSpeed: RocketThrustSpeed,
	}
	var anchor components.LayoutAnchor
	if facing == components.DirectionLeft {
		proj.Rotation = EnemyRocketRotation
		anchor = components.LayoutAnchor{X: -170, Y: 250}
	} else {
		proj.Rotation = -EnemyRocketRotation
		anchor = components.LayoutAnchor{X: 160, Y: 280}
	}

	transform := components.NewTransform()
	transform.ScaleX = EnemyRocketScale
	transform.ScaleY = EnemyRocketScale
	return newProjectileEntity(em, proj, from, anchor, transform)
}

// NewBulletEntity 二号角色发射的子弹，水平匀速飞行
func NewBulletEntity(em *ecs.EntityManager, img game.ProjectileImage, from components.LayoutPosition, facing components.Direction) ecs.EntityID {
	proj := &components.ProjectileComponent{
		Width:   img.Width,
		Height:  img.Height,
		Texture: img.Texture,
		Motion:  components.MotionBullet,
	}
	pos := from
	if facing == components.DirectionLeft {
		pos.X -= BulletMuzzleOffset
		proj.Rotation = BulletRotation
		proj.VelocityX = -BulletSpeed
	} else {
		pos.X += BulletMuzzleOffset
		proj.Rotation = -BulletRotation
		proj.VelocityX = BulletSpeed
	}

	anchor := components.LayoutAnchor{X: BulletAnchorX, Y: BulletAnchorY}
	if proj.Rotation > 0 {
		anchor.X = -BulletAnchorX
	}

	transform := components.NewTransform()
	transform.OriginX = img.Width / 2
	transform.OriginY = img.Height / 2
	return newProjectileEntity(em, proj, pos, anchor, transform)
}
