package collision

import (
	"errors"
	"image"

	"github.com/decker502/notagame/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrQueryReleased 查询已被释放
	ErrQueryReleased = errors.New("collision: query already released")
	// ErrUnknownQuery 查询ID从未分配过
	ErrUnknownQuery = errors.New("collision: unknown query")
)

// QueryID 细检测查询句柄
type QueryID uint64

// Target 参与细检测的一方
//
// Vertices 为世界坐标（Y 轴向上）下的四个顶点；Source 为贴图中对应的像素区域。
// Texture 为 nil 时按实心矩形处理。
type Target struct {
	Entity   ecs.EntityID
	Vertices [8]float64
	Source   image.Rectangle
	Texture  *ebiten.Image
}

// QueryBackend 异步的逐像素碰撞确认
//
// Issue 提交查询后立即返回；结果至少要在下一次 EndFrame 之后才可能就绪。
// 每个查询必须且只能 Release 一次。
type QueryBackend interface {
	// Issue 提交一次查询
	Issue(a, b Target) (QueryID, error)
	// Poll 非阻塞地读取结果，ready 为 false 表示尚未可用（不代表未碰撞）
	Poll(id QueryID) (hit, ready bool, err error)
	// Release 释放查询
	Release(id QueryID) error
	// EndFrame 标记一帧结束
	EndFrame()
}
