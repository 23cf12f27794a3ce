package components

import "github.com/hajimehoshi/ebiten/v2"

// ProjectileMotion 投射物的运动方式
type ProjectileMotion int

const (
	// MotionBullet 匀加速直线运动
	MotionBullet ProjectileMotion = iota
	// MotionRocket 沿自身朝向推进，可持续旋转
	MotionRocket
	// MotionBomb 自顶部落下
	MotionBomb
)

func (m ProjectileMotion) String() string {
	switch m {
	case MotionBullet:
		return "bullet"
	case MotionRocket:
		return "rocket"
	default:
		return "bomb"
	}
}

// ProjectileComponent 投射物
//
// 速度与加速度为归一化布局单位/毫秒，仅 Bullet 和 Bomb 使用；
// ThrustSpeed 与 RotationSpeed（度/毫秒）仅 Rocket 使用。
type ProjectileComponent struct {
	Width, Height float64
	Texture       *ebiten.Image
	Motion        ProjectileMotion

	VelocityX, VelocityY         float64
	AccelerationX, AccelerationY float64

	Rotation      float64
	ThrustSpeed   float64
	RotationSpeed float64
}

// IsBomb 是否为炸弹类投射物
func (p *ProjectileComponent) IsBomb() bool {
	return p.Motion == MotionBomb
}

// ProjectileRequestKind 投射物生成请求的种类
type ProjectileRequestKind int

const (
	RequestBomb ProjectileRequestKind = iota
	RequestBullet
	RequestEnemyRocket
	RequestGroundRocket
)

func (k ProjectileRequestKind) String() string {
	switch k {
	case RequestBomb:
		return "bomb"
	case RequestBullet:
		return "bullet"
	case RequestEnemyRocket:
		return "enemy-rocket"
	default:
		return "ground-rocket"
	}
}

// ProjectileRequest 一条待生成的投射物请求，Side 仅对地面火箭有效
type ProjectileRequest struct {
	Kind ProjectileRequestKind
	Side LauncherSide
}
