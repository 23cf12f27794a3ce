package systems

import (
	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/config"
	"github.com/decker502/notagame/pkg/game"
	"github.com/decker502/notagame/pkg/input"
)

// ControllerTuning 控制器使用的运动参数
//
// 水平与躲藏速度按毫秒计；跳跃速度与加速度按 tick 计。
type ControllerTuning struct {
	HorizontalSpeed  float64
	HidingSpeed      float64
	HideFloor        float64
	JumpVelocity     float64
	JumpAcceleration float64
}

// ControllerTuningFromConfig 从游戏配置读取运动参数
func ControllerTuningFromConfig(cfg *config.GameConfig) ControllerTuning {
	return ControllerTuning{
		HorizontalSpeed:  cfg.HorizontalSpeed,
		HidingSpeed:      cfg.HidingSpeed,
		HideFloor:        cfg.HideFloor,
		JumpVelocity:     cfg.JumpVelocity,
		JumpAcceleration: cfg.JumpAcceleration,
	}
}

// attackCues 每个种类开始攻击时播放的音效
var attackCues = map[components.EnemyKind]game.AudioEvent{
	components.EnemyKindOne:   game.AudioWeaponExplode,
	components.EnemyKindTwo:   game.AudioWeaponBullet,
	components.EnemyKindThree: game.AudioWeaponRpg,
	components.EnemyKindFour:  game.AudioWeaponLauncher,
}

// ProcessControllerInput 把一个输入事件作用到控制器上
//
// y 为角色当前的纵坐标，用作躲藏与跳跃的起点。产生的音效写入 cues（可为 nil）。
//
// 处理顺序:
//  1. 水平移动（四号角色改为选择发射台）
//  2. 躲藏（跳跃中不处理）
//  3. 跳跃与攻击（躲藏中不处理）
func ProcessControllerInput(c *components.Controller, in input.Input, y float64, tuning ControllerTuning, cues *game.AudioEventQueue) {
	if c.HasHorizontalMovement() {
		processMovement(c, in)
	} else {
		processSide(c, in)
	}

	if c.CanHide() && c.Jump == nil && c.Hiding == nil && in.IsKeyDown(input.KeyDown) {
		c.Hiding = &components.Hiding{State: components.HidingDown, StartY: y}
		pushCue(cues, game.AudioMoveDuck)
	}

	if c.Hiding != nil {
		return
	}

	if in.IsKeyDown(input.KeyUp) {
		switch {
		case c.Jump == nil:
			c.Jump = components.NewJump(y, tuning.JumpVelocity, tuning.JumpAcceleration)
			pushCue(cues, game.AudioMoveJump)
		case !c.Jump.HasDoubleJumped:
			c.Jump = c.Jump.DoubleJump(tuning.JumpVelocity, tuning.JumpAcceleration)
			pushCue(cues, game.AudioMoveJump)
		}
	}

	if in.IsKeyDown(input.KeySpace) && c.Attack == nil {
		c.Attack = &components.Attack{Kind: c.Kind}
		pushCue(cues, attackCues[c.Kind])
	}
}

// processMovement 按下设置移动方向；抬起只清除与之相同的方向
func processMovement(c *components.Controller, in input.Input) {
	switch in.Kind {
	case input.KeyDownEvent:
		switch in.Key {
		case input.KeyLeft:
			c.Movement = components.MovementLeft
		case input.KeyRight:
			c.Movement = components.MovementRight
		}
	case input.KeyUpEvent:
		if in.Key == input.KeyLeft && c.Movement == components.MovementLeft ||
			in.Key == input.KeyRight && c.Movement == components.MovementRight {
			c.Movement = components.MovementNone
		}
	}
}

func processSide(c *components.Controller, in input.Input) {
	switch {
	case in.IsKeyDown(input.KeyLeft):
		c.Side = components.LauncherSideLeft
	case in.IsKeyDown(input.KeyRight):
		c.Side = components.LauncherSideRight
	}
}

func pushCue(cues *game.AudioEventQueue, e game.AudioEvent) {
	if cues != nil {
		cues.Push(e)
	}
}
