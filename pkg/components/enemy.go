package components

import (
	"fmt"
	"strings"
)

// EnemyKind 可操控角色的种类
type EnemyKind int

const (
	EnemyKindOne EnemyKind = iota
	EnemyKindTwo
	EnemyKindThree
	EnemyKindFour
)

// AllEnemyKinds 按生成顺序列出全部角色种类
var AllEnemyKinds = []EnemyKind{EnemyKindOne, EnemyKindTwo, EnemyKindThree, EnemyKindFour}

// String 返回角色种类名称（与配置文件中的写法一致）
func (k EnemyKind) String() string {
	switch k {
	case EnemyKindOne:
		return "one"
	case EnemyKindTwo:
		return "two"
	case EnemyKindThree:
		return "three"
	case EnemyKindFour:
		return "four"
	default:
		return fmt.Sprintf("EnemyKind(%d)", int(k))
	}
}

// ParseEnemyKind 将配置中的名称（one/two/three/four 或 1-4）解析为角色种类
func ParseEnemyKind(s string) (EnemyKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "one", "1":
		return EnemyKindOne, nil
	case "two", "2":
		return EnemyKindTwo, nil
	case "three", "3":
		return EnemyKindThree, nil
	case "four", "4":
		return EnemyKindFour, nil
	}
	return EnemyKindOne, fmt.Errorf("unknown enemy kind %q", s)
}

// EnemyPhase 角色当前的动画阶段
type EnemyPhase int

const (
	PhaseIdle EnemyPhase = iota
	PhaseWalk
	PhaseHurt
	// PhaseBlast 一号角色的攻击阶段
	PhaseBlast
	// PhaseShooting 二号角色的攻击阶段
	PhaseShooting
	// PhaseShoot 三号与四号角色的攻击阶段
	PhaseShoot
)

func (p EnemyPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseWalk:
		return "walk"
	case PhaseHurt:
		return "hurt"
	case PhaseBlast:
		return "blast"
	case PhaseShooting:
		return "shooting"
	case PhaseShoot:
		return "shoot"
	default:
		return fmt.Sprintf("EnemyPhase(%d)", int(p))
	}
}

// AttackPhase 返回该种类攻击时使用的动画阶段
func AttackPhase(kind EnemyKind) EnemyPhase {
	switch kind {
	case EnemyKindOne:
		return PhaseBlast
	case EnemyKindTwo:
		return PhaseShooting
	default:
		return PhaseShoot
	}
}

// PhasesFor 返回该种类拥有精灵图的全部阶段
func PhasesFor(kind EnemyKind) []EnemyPhase {
	switch kind {
	case EnemyKindOne:
		return []EnemyPhase{PhaseIdle, PhaseWalk, PhaseBlast, PhaseHurt}
	case EnemyKindTwo:
		return []EnemyPhase{PhaseIdle, PhaseWalk, PhaseHurt, PhaseShooting}
	case EnemyKindThree:
		return []EnemyPhase{PhaseIdle, PhaseWalk, PhaseHurt, PhaseShoot}
	default:
		// 四号角色固定在发射台上，没有行走动画
		return []EnemyPhase{PhaseIdle, PhaseHurt, PhaseShoot}
	}
}

// EnemySpriteSheets 某一种类全部阶段的精灵图
type EnemySpriteSheets map[EnemyPhase]*SpriteSheet

// EnemyComponent 可操控角色
//
// 当前精灵图始终由 Phase 决定: Sheets[Phase]。
type EnemyComponent struct {
	Kind       EnemyKind
	Phase      EnemyPhase
	Sheets     EnemySpriteSheets
	Controller *Controller
}

// SpriteSheet 返回当前阶段的精灵图
func (e *EnemyComponent) SpriteSheet() *SpriteSheet {
	return e.Sheets[e.Phase]
}
