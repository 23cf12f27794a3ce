package components

// AnimationComponent 基于精灵图的逐帧动画状态
//
// Timeout 为剩余毫秒数；HasTimeout 为 false 时下一次推进立即换帧。
type AnimationComponent struct {
	Index        int
	Timeout      float64
	HasTimeout   bool
	Len          int
	CellDuration float64
}

// NewAnimation 按精灵图创建动画
func NewAnimation(sheet *SpriteSheet) *AnimationComponent {
	a := &AnimationComponent{}
	a.Reset(sheet)
	return a
}

// Reset 回到第 0 帧，并按新精灵图重设帧数与帧时长
func (a *AnimationComponent) Reset(sheet *SpriteSheet) {
	a.Index = 0
	a.Len = sheet.Len()
	if sheet != nil {
		a.CellDuration = sheet.CellDuration
	}
	a.Timeout = a.CellDuration
	a.HasTimeout = true
}

// Advance 推进 delta 毫秒
//
// 返回值 advanced 表示本次换帧；ended 表示换帧时回绕到第 0 帧。
func (a *AnimationComponent) Advance(delta float64) (advanced, ended bool) {
	if a.HasTimeout {
		remaining := a.Timeout - delta
		if remaining > 0 {
			a.Timeout = remaining
			return false, false
		}
	}

	a.Timeout = a.CellDuration
	a.HasTimeout = true
	a.Index++
	if a.Index >= a.Len {
		a.Index = 0
		return true, true
	}
	return true, false
}
