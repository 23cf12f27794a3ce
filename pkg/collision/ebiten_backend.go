package collision

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// 离屏缓冲边长（像素），重叠区域会被缩放到该尺寸
	probeSize = 128
	// 判定为不透明的最小 alpha
	alphaThreshold = 0x20
)

// EbitenBackend 用离屏图像模拟遮挡查询
//
// Issue 把 a 画进 mask，把 b 画进 probe，再以 BlendDestinationIn 把 probe
// 叠到 mask 上，只留下两者都不透明的像素。结果在下一次 EndFrame 之后才读取
// (ReadPixels)，与真实 GPU 查询一样需要跨帧轮询。
//
// 只能在 ebiten 游戏循环内使用。
type EbitenBackend struct {
	frame   int
	nextID  QueryID
	queries map[QueryID]*ebitenQuery
	pool    []*probeTarget
	white   *ebiten.Image
	pixels  []byte
}

type ebitenQuery struct {
	frame  int
	target *probeTarget // nil 表示重叠区域为空，结果恒为未碰撞
	done   bool
	hit    bool
}

type probeTarget struct {
	mask  *ebiten.Image
	probe *ebiten.Image
}

// NewEbitenBackend 创建后端
func NewEbitenBackend() *EbitenBackend {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &EbitenBackend{
		nextID:  1,
		queries: make(map[QueryID]*ebitenQuery),
		white:   white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		pixels:  make([]byte, probeSize*probeSize*4),
	}
}

// Issue 绘制两方并登记查询
func (e *EbitenBackend) Issue(a, b Target) (QueryID, error) {
	q := &ebitenQuery{frame: e.frame}

	minX, minY, maxX, maxY, ok := overlapBounds(a.Vertices, b.Vertices)
	if ok {
		q.target = e.acquire()
		q.target.mask.Clear()
		q.target.probe.Clear()

		sx := probeSize / (maxX - minX)
		sy := probeSize / (maxY - minY)
		toProbe := func(x, y float64) (float32, float32) {
			return float32((x - minX) * sx), float32((maxY - y) * sy)
		}

		if err := e.drawTarget(q.target.mask, a, toProbe); err != nil {
			e.pool = append(e.pool, q.target)
			return 0, fmt.Errorf("failed to draw query mask: %w", err)
		}
		if err := e.drawTarget(q.target.probe, b, toProbe); err != nil {
			e.pool = append(e.pool, q.target)
			return 0, fmt.Errorf("failed to draw query probe: %w", err)
		}

		op := &ebiten.DrawImageOptions{}
		op.Blend = ebiten.BlendDestinationIn
		q.target.mask.DrawImage(q.target.probe, op)
	}

	id := e.nextID
	e.nextID++
	e.queries[id] = q
	return id, nil
}

// Poll 跨过帧边界后读取像素并缓存结果
func (e *EbitenBackend) Poll(id QueryID) (bool, bool, error) {
	q, err := e.lookup(id)
	if err != nil {
		return false, false, err
	}
	if q.done {
		return q.hit, true, nil
	}
	if e.frame == q.frame {
		return false, false, nil
	}

	q.done = true
	if q.target != nil {
		q.target.mask.ReadPixels(e.pixels)
		for i := 3; i < len(e.pixels); i += 4 {
			if e.pixels[i] >= alphaThreshold {
				q.hit = true
				break
			}
		}
	}
	return q.hit, true, nil
}

// Release 释放查询并回收离屏缓冲
func (e *EbitenBackend) Release(id QueryID) error {
	q, err := e.lookup(id)
	if err != nil {
		return err
	}
	if q.target != nil {
		e.pool = append(e.pool, q.target)
	}
	delete(e.queries, id)
	return nil
}

// EndFrame 标记帧边界
func (e *EbitenBackend) EndFrame() {
	e.frame++
}

func (e *EbitenBackend) lookup(id QueryID) (*ebitenQuery, error) {
	if id == 0 || id >= e.nextID {
		return nil, fmt.Errorf("query %d: %w", id, ErrUnknownQuery)
	}
	q, ok := e.queries[id]
	if !ok {
		return nil, fmt.Errorf("query %d: %w", id, ErrQueryReleased)
	}
	return q, nil
}

func (e *EbitenBackend) acquire() *probeTarget {
	if n := len(e.pool); n > 0 {
		t := e.pool[n-1]
		e.pool = e.pool[:n-1]
		return t
	}
	return &probeTarget{
		mask:  ebiten.NewImage(probeSize, probeSize),
		probe: ebiten.NewImage(probeSize, probeSize),
	}
}

// drawTarget 按顶点把贴图区域画进离屏缓冲
func (e *EbitenBackend) drawTarget(dst *ebiten.Image, t Target, toProbe func(x, y float64) (float32, float32)) error {
	src := e.white
	var u0, v0, u1, v1 float32 = 1, 1, 2, 2
	if t.Texture != nil {
		src = t.Texture
		r := t.Source
		if r.Empty() {
			r = t.Texture.Bounds()
		}
		u0, v0, u1, v1 = float32(r.Min.X), float32(r.Min.Y), float32(r.Max.X), float32(r.Max.Y)
	}

	vertices := make([]ebiten.Vertex, 4)
	// 顶点顺序: 左上、左下、右上、右下
	uv := [4][2]float32{{u0, v0}, {u0, v1}, {u1, v0}, {u1, v1}}
	for i := 0; i < 4; i++ {
		x, y := toProbe(t.Vertices[i*2], t.Vertices[i*2+1])
		if math.IsNaN(float64(x)) || math.IsNaN(float64(y)) {
			return fmt.Errorf("entity %d has invalid vertices", t.Entity)
		}
		vertices[i] = ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: uv[i][0], SrcY: uv[i][1],
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}
	dst.DrawTriangles(vertices, quadIndices, src, &ebiten.DrawTrianglesOptions{})
	return nil
}

// quadIndices 两个三角形覆盖 左上-左下-右上 与 左下-右下-右上
var quadIndices = []uint16{0, 1, 2, 1, 3, 2}

// overlapBounds 两组顶点包围盒的交集，交集为空时 ok 为 false
func overlapBounds(a, b [8]float64) (minX, minY, maxX, maxY float64, ok bool) {
	aMinX, aMinY, aMaxX, aMaxY := bounds(a)
	bMinX, bMinY, bMaxX, bMaxY := bounds(b)
	minX, minY = max(aMinX, bMinX), max(aMinY, bMinY)
	maxX, maxY = min(aMaxX, bMaxX), min(aMaxY, bMaxY)
	ok = maxX > minX && maxY > minY
	return
}

func bounds(v [8]float64) (minX, minY, maxX, maxY float64) {
	minX, minY = v[0], v[1]
	maxX, maxY = minX, minY
	for i := 2; i < 8; i += 2 {
		minX = min(minX, v[i])
		maxX = max(maxX, v[i])
		minY = min(minY, v[i+1])
		maxY = max(maxY, v[i+1])
	}
	return
}
