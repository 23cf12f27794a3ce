package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings 物理按键到逻辑按键的映射
var keyBindings = map[ebiten.Key]Key{
	ebiten.KeySpace:      KeySpace,
	ebiten.KeyD:          KeyRight,
	ebiten.KeyL:          KeyRight,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyA:          KeyLeft,
	ebiten.KeyH:          KeyLeft,
	ebiten.KeyArrowLeft:  KeyLeft,
	ebiten.KeyW:          KeyUp,
	ebiten.KeyK:          KeyUp,
	ebiten.KeyArrowUp:    KeyUp,
	ebiten.KeyS:          KeyDown,
	ebiten.KeyJ:          KeyDown,
	ebiten.KeyArrowDown:  KeyDown,
	ebiten.KeyDigit1:     KeyNumber1,
	ebiten.KeyDigit2:     KeyNumber2,
	ebiten.KeyDigit3:     KeyNumber3,
	ebiten.KeyDigit4:     KeyNumber4,
	ebiten.KeyC:          KeyToggleDebugColliders,
	ebiten.KeyP:          KeyPause,
	ebiten.KeyEnter:      KeyStart,
	ebiten.KeyF1:         KeyHelp,
}

// Translate 把物理按键映射为逻辑按键
func Translate(k ebiten.Key) Key {
	if key, ok := keyBindings[k]; ok {
		return key
	}
	return KeyUnknown
}

// Listener 每帧读取 ebiten 的键盘与指针状态并写入队列
type Listener struct {
	queue *Queue
	keys  []ebiten.Key

	pressed        bool
	pressX, pressY int
	tracked        bool
	lastX, lastY   int
}

// NewListener 创建监听器
func NewListener(queue *Queue) *Listener {
	return &Listener{queue: queue}
}

// Poll 采集本帧新按下/抬起的按键
//
// 键盘事件总是追加；指针悬停只在位置变化时写入，且只保留最新位置。
func (l *Listener) Poll() {
	l.keys = inpututil.AppendJustPressedKeys(l.keys[:0])
	for _, k := range l.keys {
		if key := Translate(k); key != KeyUnknown {
			l.queue.InsertAlways(KeyDown(key))
		}
	}

	l.keys = inpututil.AppendJustReleasedKeys(l.keys[:0])
	for _, k := range l.keys {
		if key := Translate(k); key != KeyUnknown {
			l.queue.InsertAlways(KeyUp(key))
		}
	}

	x, y := ebiten.CursorPosition()
	l.trackPointer(x, y,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		l.queue.InsertAlways(Input{Kind: WheelEvent, WheelX: wx, WheelY: wy})
	}
}

// trackPointer 根据本帧指针位置与左键边沿生成指针事件
func (l *Listener) trackPointer(x, y int, justPressed, justReleased bool) {
	moved := !l.tracked || x != l.lastX || y != l.lastY

	if justPressed {
		l.queue.InsertAlways(Input{Kind: PointerDownEvent, X: x, Y: y})
		l.pressed, l.pressX, l.pressY = true, x, y
	}
	if l.pressed && moved {
		l.queue.InsertReplace(Input{Kind: PointerDragEvent, X: x, Y: y})
	}
	if justReleased {
		l.queue.InsertAlways(Input{Kind: PointerUpEvent, X: x, Y: y})
		// 按下与抬起在同一位置视为点击
		if l.pressed && x == l.pressX && y == l.pressY {
			l.queue.InsertAlways(Input{Kind: PointerClickEvent, X: x, Y: y})
		}
		l.pressed = false
	}
	if moved {
		l.queue.InsertReplace(Input{Kind: PointerHoverEvent, X: x, Y: y})
	}
	l.tracked = true
	l.lastX, l.lastY = x, y
}
