package entities

import (
	"fmt"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/game"
)

// mockResourceLoader 提供只有几何信息的精灵图，避免文件 I/O
type mockResourceLoader struct {
	cells int
}

func newMockResourceLoader() *mockResourceLoader {
	return &mockResourceLoader{cells: 32}
}

func (m *mockResourceLoader) sheet(id string, w, h int) *components.SpriteSheet {
	s := &components.SpriteSheet{ID: id, CellDuration: 50, AnchorX: float64(w) / 2}
	for i := 0; i < m.cells; i++ {
		s.Cells = append(s.Cells, components.CellBounds{X: i * w, Width: w, Height: h})
	}
	s.MaxCellWidth, s.MaxCellHeight = w, h
	return s
}

func (m *mockResourceLoader) EnemySheets(kind components.EnemyKind) (components.EnemySpriteSheets, error) {
	if m.cells == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	sheets := make(components.EnemySpriteSheets)
	for _, phase := range components.PhasesFor(kind) {
		sheets[phase] = m.sheet(kind.String()+"_"+phase.String(), 150, 200)
	}
	return sheets, nil
}

func (m *mockResourceLoader) LauncherSheet() *components.SpriteSheet {
	if m.cells == 0 {
		return nil
	}
	return m.sheet("launcher", 300, 260)
}

func (m *mockResourceLoader) ExplosionSheet() *components.SpriteSheet {
	return m.sheet("explosion", 256, 256)
}

func (m *mockResourceLoader) Projectile(name string) game.ProjectileImage {
	if name == ProjectileBullet {
		return game.ProjectileImage{Width: 12, Height: 40}
	}
	return game.ProjectileImage{Width: 60, Height: 160}
}
