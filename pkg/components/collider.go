package components

import "github.com/hajimehoshi/ebiten/v2"

// ColliderComponent 世界坐标下的矩形碰撞体
//
// Vertices 依次为 左上、左下、右上、右下 四个顶点的 x,y。
type ColliderComponent struct {
	Vertices [8]float64
	Width    float64
	Height   float64
}

// Update 用世界变换重新计算四个顶点
func (c *ColliderComponent) Update(width, height float64, world ebiten.GeoM) {
	c.Vertices[0], c.Vertices[1] = world.Apply(0, height)
	c.Vertices[2], c.Vertices[3] = world.Apply(0, 0)
	c.Vertices[4], c.Vertices[5] = world.Apply(width, height)
	c.Vertices[6], c.Vertices[7] = world.Apply(width, 0)
	c.Width = width
	c.Height = height
}

// Bounds 返回顶点的轴对齐包围盒
func (c *ColliderComponent) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = c.Vertices[0], c.Vertices[1]
	maxX, maxY = minX, minY
	for i := 1; i < 4; i++ {
		x, y := c.Vertices[i*2], c.Vertices[i*2+1]
		minX = min(minX, x)
		maxX = max(maxX, x)
		minY = min(minY, y)
		maxY = max(maxY, y)
	}
	return
}
