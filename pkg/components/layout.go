package components

// LayoutPosition 归一化的屏幕相对位置
//
// X ∈ [0,1] 从左到右，Y 以地面为 0 向上为正。
type LayoutPosition struct {
	X, Y float64
}

// LayoutAnchor 以像素为单位的绝对偏移，在布局换算后叠加
type LayoutAnchor struct {
	X, Y float64
}
