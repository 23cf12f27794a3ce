package components

// 躲藏闪烁效果参数
const (
	HidingEffectMin  = 0.2
	HidingEffectMax  = 1.0
	HidingEffectStep = 0.1
)

// HidingEffectComponent 角色躲藏时的透明度往返动画
type HidingEffectComponent struct {
	Value      float64
	Multiplier float64
}

// NewHidingEffect 从最小值开始递增
func NewHidingEffect() *HidingEffectComponent {
	return &HidingEffectComponent{
		Value:      HidingEffectMin,
		Multiplier: 1,
	}
}

// Step 前进一步并返回新值，到达边界时反向
func (h *HidingEffectComponent) Step() float64 {
	v := h.Value + HidingEffectStep*h.Multiplier
	v = max(HidingEffectMin, min(HidingEffectMax, v))
	if v >= HidingEffectMax {
		h.Multiplier = -1
	} else if v <= HidingEffectMin {
		h.Multiplier = 1
	}
	h.Value = v
	return v
}
