// Package input 把键盘事件转换成与平台无关的输入队列
package input

import "fmt"

// Key 游戏内的逻辑按键
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyRight
	KeyLeft
	KeyUp
	KeyDown
	KeyNumber1
	KeyNumber2
	KeyNumber3
	KeyNumber4
	KeyToggleDebugColliders
	KeyPause
	KeyStart
	KeyHelp
)

var keyNames = map[Key]string{
	KeyUnknown:              "unknown",
	KeySpace:                "space",
	KeyRight:                "right",
	KeyLeft:                 "left",
	KeyUp:                   "up",
	KeyDown:                 "down",
	KeyNumber1:              "1",
	KeyNumber2:              "2",
	KeyNumber3:              "3",
	KeyNumber4:              "4",
	KeyToggleDebugColliders: "c",
	KeyPause:                "p",
	KeyStart:                "enter",
	KeyHelp:                 "f1",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey 把名称（或等价别名）解析为逻辑按键，用于脚本化输入
func ParseKey(name string) (Key, bool) {
	switch name {
	case "space", " ":
		return KeySpace, true
	case "right", "d", "l":
		return KeyRight, true
	case "left", "a", "h":
		return KeyLeft, true
	case "up", "w", "k":
		return KeyUp, true
	case "down", "s", "j":
		return KeyDown, true
	case "1":
		return KeyNumber1, true
	case "2":
		return KeyNumber2, true
	case "3":
		return KeyNumber3, true
	case "4":
		return KeyNumber4, true
	case "c":
		return KeyToggleDebugColliders, true
	case "p", "pause":
		return KeyPause, true
	case "enter", "start":
		return KeyStart, true
	case "f1", "help":
		return KeyHelp, true
	}
	return KeyUnknown, false
}

// EventKind 输入事件类型
type EventKind int

const (
	KeyDownEvent EventKind = iota
	KeyUpEvent
	PointerDownEvent
	PointerUpEvent
	PointerHoverEvent
	PointerDragEvent
	PointerClickEvent
	// WheelEvent 滚轮，偏移量在 WheelX/WheelY
	WheelEvent
	// ResetEvent 游戏结束后的重新开始请求
	ResetEvent
)

// Input 单个输入事件
//
// Key 仅对键盘事件有效；X/Y 仅对指针事件有效。
type Input struct {
	Kind           EventKind
	Key            Key
	X, Y           int
	WheelX, WheelY float64
}

// KeyDown 构造按下事件
func KeyDown(k Key) Input {
	return Input{Kind: KeyDownEvent, Key: k}
}

// KeyUp 构造抬起事件
func KeyUp(k Key) Input {
	return Input{Kind: KeyUpEvent, Key: k}
}

// IsKeyDown 是否为指定按键的按下事件
func (in Input) IsKeyDown(k Key) bool {
	return in.Kind == KeyDownEvent && in.Key == k
}

// IsKeyUp 是否为指定按键的抬起事件
func (in Input) IsKeyUp(k Key) bool {
	return in.Kind == KeyUpEvent && in.Key == k
}

func (in Input) String() string {
	switch in.Kind {
	case KeyDownEvent:
		return "down:" + in.Key.String()
	case KeyUpEvent:
		return "up:" + in.Key.String()
	case ResetEvent:
		return "reset"
	case WheelEvent:
		return fmt.Sprintf("wheel:%.1f,%.1f", in.WheelX, in.WheelY)
	default:
		return fmt.Sprintf("pointer(%d):%d,%d", in.Kind, in.X, in.Y)
	}
}
