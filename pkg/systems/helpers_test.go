package systems

import (
	"testing"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
	"github.com/decker502/notagame/pkg/entities"
	"github.com/decker502/notagame/pkg/game"
)

// 测试使用的视口尺寸与地面高度
const (
	testViewportWidth  = 1280.0
	testViewportHeight = 720.0
	testFooterHeight   = 64.0
	testDelta          = 1000.0 / 60.0
)

// testTuning 与默认配置一致的运动参数
var testTuning = ControllerTuning{
	HorizontalSpeed:  0.0005,
	HidingSpeed:      0.0005,
	HideFloor:        -0.5,
	JumpVelocity:     0.035,
	JumpAcceleration: -0.002,
}

// stubResources 只有几何信息、没有贴图的资源
type stubResources struct {
	cells          int
	explosionCells int
}

func newStubResources() *stubResources {
	return &stubResources{cells: 32, explosionCells: 16}
}

func (r *stubResources) sheet(id string, cells, w, h int) *components.SpriteSheet {
	s := &components.SpriteSheet{ID: id, CellDuration: 50, AnchorX: float64(w) / 2}
	for i := 0; i < cells; i++ {
		s.Cells = append(s.Cells, components.CellBounds{X: i * w, Width: w, Height: h})
	}
	s.MaxCellWidth, s.MaxCellHeight = w, h
	return s
}

func (r *stubResources) EnemySheets(kind components.EnemyKind) (components.EnemySpriteSheets, error) {
	sheets := make(components.EnemySpriteSheets)
	for _, phase := range components.PhasesFor(kind) {
		sheets[phase] = r.sheet(kind.String()+"_"+phase.String(), r.cells, 150, 200)
	}
	return sheets, nil
}

func (r *stubResources) LauncherSheet() *components.SpriteSheet {
	return r.sheet("launcher", r.cells, 300, 260)
}

func (r *stubResources) ExplosionSheet() *components.SpriteSheet {
	return r.sheet("explosion", r.explosionCells, 256, 256)
}

func (r *stubResources) Projectile(name string) game.ProjectileImage {
	if name == entities.ProjectileBullet {
		return game.ProjectileImage{Width: 12, Height: 40}
	}
	return game.ProjectileImage{Width: 60, Height: 160}
}

// spawnEnemy 在 (x, y) 处创建角色
func spawnEnemy(t *testing.T, em *ecs.EntityManager, rl entities.ResourceLoader, kind components.EnemyKind, x, y float64, facing components.Direction) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemyEntity(em, rl, entities.EnemySpawn{Kind: kind, X: x, Y: y, Facing: facing})
	if err != nil {
		t.Fatalf("failed to spawn enemy %s: %v", kind, err)
	}
	return id
}

func enemyOf(em *ecs.EntityManager, id ecs.EntityID) *components.EnemyComponent {
	return ecs.MustGetComponent[*components.EnemyComponent](em, id)
}

func positionOf(em *ecs.EntityManager, id ecs.EntityID) *components.LayoutPosition {
	return ecs.MustGetComponent[*components.LayoutPosition](em, id)
}
