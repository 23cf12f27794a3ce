package components

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// TransformComponent 场景图节点的局部变换
//
// 世界坐标以视口中心为原点，Y 轴向上。Rotation 以角度表示，逆时针为正。
// 旋转与缩放绕 Origin 进行。World 由变换系统每帧计算。
type TransformComponent struct {
	TranslationX, TranslationY float64
	Rotation                   float64
	ScaleX, ScaleY             float64
	OriginX, OriginY           float64

	World ebiten.GeoM
}

// NewTransform 创建单位缩放的变换
func NewTransform() *TransformComponent {
	return &TransformComponent{ScaleX: 1, ScaleY: 1}
}

// LocalGeoM 计算局部变换矩阵
func (t *TransformComponent) LocalGeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-t.OriginX, -t.OriginY)
	g.Scale(t.ScaleX, t.ScaleY)
	g.Rotate(t.Rotation * math.Pi / 180)
	g.Translate(t.OriginX, t.OriginY)
	g.Translate(t.TranslationX, t.TranslationY)
	return g
}

// SceneRootComponent 标记场景图根节点，每局只有一个
type SceneRootComponent struct{}
