package components

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// CellBounds 精灵图中单帧的像素矩形
type CellBounds struct {
	X, Y          int
	Width, Height int
}

// SpriteSheet 一组按帧排列在同一张图集上的动画帧
//
// Texture 可以为 nil（无头模拟与测试），此时只使用尺寸数据。
type SpriteSheet struct {
	ID          string
	Texture     *ebiten.Image
	Cells       []CellBounds
	AtlasWidth  int
	AtlasHeight int
	// AnchorX 朝左时的水平锚点偏移（像素）
	AnchorX float64
	// MaxCellWidth/MaxCellHeight 所有帧中的最大尺寸
	MaxCellWidth  int
	MaxCellHeight int
	// CellDuration 每帧持续时间（毫秒）
	CellDuration float64
}

// Len 返回帧数
func (s *SpriteSheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Cells)
}

// Cell 返回指定帧的矩形，越界时取模
func (s *SpriteSheet) Cell(index int) CellBounds {
	if len(s.Cells) == 0 {
		return CellBounds{}
	}
	if index < 0 {
		index = 0
	}
	return s.Cells[index%len(s.Cells)]
}

// CellImage 返回指定帧的子图，Texture 为 nil 时返回 nil
func (s *SpriteSheet) CellImage(index int) *ebiten.Image {
	if s == nil || s.Texture == nil || len(s.Cells) == 0 {
		return nil
	}
	c := s.Cell(index)
	return s.Texture.SubImage(image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height)).(*ebiten.Image)
}
