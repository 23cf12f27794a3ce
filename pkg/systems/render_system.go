package systems

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
	"github.com/decker502/notagame/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	skyColor      = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	cloudColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc0}
	groundColor   = color.RGBA{R: 0x4a, G: 0x7a, B: 0x3a, A: 0xff}
	colliderColor = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
)

// 云层条带（相对视口的归一化位置与尺寸）
var cloudBands = [][4]float64{
	{0.05, 0.12, 0.18, 0.05},
	{0.40, 0.20, 0.24, 0.06},
	{0.75, 0.08, 0.15, 0.04},
}

// quadIndices 左上-左下-右上 与 左下-右下-右上 两个三角形
var quadIndices = []uint16{0, 1, 2, 1, 3, 2}

// RenderSystem 把世界中的实体绘制到屏幕
//
// 世界坐标 Y 轴向上、原点在视口中心；屏幕坐标 Y 轴向下、原点在左上角。
// 躲藏中的角色按躲藏效果值着色并半透明。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	footerHeight  float64
	vertices      []ebiten.Vertex
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, gs *game.GameState, footerHeight float64) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		gameState:     gs,
		footerHeight:  footerHeight,
		vertices:      make([]ebiten.Vertex, 4),
	}
}

// Draw 绘制整个战场
func (s *RenderSystem) Draw(screen *ebiten.Image, viewportWidth, viewportHeight float64) {
	s.drawBackground(screen, viewportWidth, viewportHeight)

	for _, id := range ecs.GetEntitiesWith3[*components.LauncherComponent, *components.AnimationComponent, *components.TransformComponent](s.entityManager) {
		launcher := ecs.MustGetComponent[*components.LauncherComponent](s.entityManager, id)
		s.drawSheetCell(screen, id, launcher.Sheet, white(), viewportWidth, viewportHeight)
	}

	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.AnimationComponent, *components.TransformComponent](s.entityManager) {
		enemy := ecs.MustGetComponent[*components.EnemyComponent](s.entityManager, id)
		tint := white()
		if enemy.Controller.IsHiding() {
			if effect, ok := ecs.GetComponent[*components.HidingEffectComponent](s.entityManager, id); ok {
				tint = HidingTint(effect.Value)
			}
		}
		s.drawSheetCell(screen, id, enemy.SpriteSheet(), tint, viewportWidth, viewportHeight)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.ColliderComponent](s.entityManager) {
		proj := ecs.MustGetComponent[*components.ProjectileComponent](s.entityManager, id)
		if proj.Texture == nil {
			continue
		}
		collider := ecs.MustGetComponent[*components.ColliderComponent](s.entityManager, id)
		s.drawQuad(screen, proj.Texture, proj.Texture.Bounds(), collider.Vertices, white(), viewportWidth, viewportHeight)
	}

	for _, id := range ecs.GetEntitiesWith3[*components.ExplosionComponent, *components.AnimationComponent, *components.TransformComponent](s.entityManager) {
		explosion := ecs.MustGetComponent[*components.ExplosionComponent](s.entityManager, id)
		s.drawSheetCell(screen, id, explosion.Sheet, white(), viewportWidth, viewportHeight)
	}

	if s.gameState.DebugColliders {
		s.drawColliders(screen, viewportWidth, viewportHeight)
	}
	s.drawOverlay(screen)
}

// HidingTint 躲藏效果值对应的颜色
func HidingTint(v float64) [4]float32 {
	phase := v * 2 * math.Pi
	return [4]float32{
		float32(0.5 + 0.5*math.Sin(phase)),
		float32(0.5 + 0.5*math.Sin(phase+2)),
		float32(0.5 + 0.5*math.Sin(phase+4)),
		0.5,
	}
}

// WorldToScreen 世界坐标到屏幕坐标
func WorldToScreen(x, y, viewportWidth, viewportHeight float64) (float32, float32) {
	return float32(x + viewportWidth/2), float32(viewportHeight/2 - y)
}

func white() [4]float32 {
	return [4]float32{1, 1, 1, 1}
}

func (s *RenderSystem) drawBackground(screen *ebiten.Image, vw, vh float64) {
	screen.Fill(skyColor)

	offset := math.Mod(s.gameState.CloudOffset, 1)
	for _, band := range cloudBands {
		x := math.Mod(band[0]+offset, 1)*vw - band[2]*vw/2
		vector.DrawFilledRect(screen, float32(x), float32(band[1]*vh), float32(band[2]*vw), float32(band[3]*vh), cloudColor, true)
	}

	_, groundY := LayoutToWorld(components.LayoutPosition{}, vw, vh, s.footerHeight)
	_, top := WorldToScreen(0, groundY, vw, vh)
	vector.DrawFilledRect(screen, 0, top, float32(vw), float32(vh)-top, groundColor, false)
}

func (s *RenderSystem) drawSheetCell(screen *ebiten.Image, id ecs.EntityID, sheet *components.SpriteSheet, tint [4]float32, vw, vh float64) {
	if sheet == nil || sheet.Texture == nil || sheet.Len() == 0 {
		return
	}
	anim := ecs.MustGetComponent[*components.AnimationComponent](s.entityManager, id)
	transform := ecs.MustGetComponent[*components.TransformComponent](s.entityManager, id)

	cell := sheet.Cell(anim.Index)
	var quad components.ColliderComponent
	quad.Update(float64(cell.Width), float64(cell.Height), transform.World)

	src := image.Rect(cell.X, cell.Y, cell.X+cell.Width, cell.Y+cell.Height)
	s.drawQuad(screen, sheet.Texture, src, quad.Vertices, tint, vw, vh)
}

// drawQuad 顶点顺序: 左上、左下、右上、右下
func (s *RenderSystem) drawQuad(screen, texture *ebiten.Image, src image.Rectangle, v [8]float64, tint [4]float32, vw, vh float64) {
	u0, v0 := float32(src.Min.X), float32(src.Min.Y)
	u1, v1 := float32(src.Max.X), float32(src.Max.Y)
	uv := [4][2]float32{{u0, v0}, {u0, v1}, {u1, v0}, {u1, v1}}

	for i := range s.vertices {
		x, y := WorldToScreen(v[i*2], v[i*2+1], vw, vh)
		s.vertices[i] = ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: uv[i][0], SrcY: uv[i][1],
			ColorR: tint[0], ColorG: tint[1], ColorB: tint[2], ColorA: tint[3],
		}
	}
	screen.DrawTriangles(s.vertices, quadIndices, texture, &ebiten.DrawTrianglesOptions{})
}

func (s *RenderSystem) drawColliders(screen *ebiten.Image, vw, vh float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ColliderComponent](s.entityManager) {
		v := ecs.MustGetComponent[*components.ColliderComponent](s.entityManager, id).Vertices
		// 左上 -> 右上 -> 右下 -> 左下 -> 左上
		for _, edge := range [4][2]int{{0, 2}, {2, 3}, {3, 1}, {1, 0}} {
			x0, y0 := WorldToScreen(v[edge[0]*2], v[edge[0]*2+1], vw, vh)
			x1, y1 := WorldToScreen(v[edge[1]*2], v[edge[1]*2+1], vw, vh)
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, colliderColor, true)
		}
	}
}

func (s *RenderSystem) drawOverlay(screen *ebiten.Image) {
	for i, line := range OverlayLines(s.gameState) {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*16)
	}
}

// OverlayLines 界面叠加层的文字
func OverlayLines(gs *game.GameState) []string {
	var lines []string
	switch gs.UI.Phase {
	case game.UIPhaseWelcome:
		lines = append(lines, "Press Enter to start, F1 for help")
	case game.UIPhaseHelp:
		lines = append(lines,
			"Arrows or WASD/HJKL: move, jump, hide",
			"Space: attack   1-4: switch character",
			"P: pause   C: show colliders",
			"Press Enter to start, F1 to go back")
	case game.UIPhaseGameOver:
		lines = append(lines, "Game over! Press Enter to play again")
	default:
		if gs.UI.HasSelection {
			lines = append(lines, fmt.Sprintf("Controlling: %s", gs.UI.SelectedKind))
		}
		if destroyed := DestroyedKindNames(gs); len(destroyed) > 0 {
			lines = append(lines, "Destroyed: "+strings.Join(destroyed, ", "))
		}
		lines = append(lines, fmt.Sprintf("FPS: %.0f", gs.EndTick.FPS))
	}
	if gs.Pause.Mode == game.PauseManuallyPaused {
		lines = append(lines, "Paused (P to resume)")
	}
	return lines
}

// DestroyedKindNames 已被摧毁的角色种类名称，按种类排序
func DestroyedKindNames(gs *game.GameState) []string {
	kinds := make([]components.EnemyKind, 0, len(gs.UI.DestroyedKinds))
	for kind, destroyed := range gs.UI.DestroyedKinds {
		if destroyed {
			kinds = append(kinds, kind)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = kind.String()
	}
	return names
}
