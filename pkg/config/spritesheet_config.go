package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpriteSheetConfig 全部精灵图与投射物贴图的描述
//
// 配置文件位置: data/spritesheets.yaml
type SpriteSheetConfig struct {
	// Sheets 精灵图定义，key 为精灵图ID
	Sheets map[string]SheetDef `yaml:"sheets"`

	// Enemies 每个角色种类的阶段 -> 精灵图ID
	// key: one/two/three/four，阶段 key: idle/walk/hurt/blast/shooting/shoot
	Enemies map[string]map[string]string `yaml:"enemies"`

	// Launcher 发射台精灵图ID
	Launcher string `yaml:"launcher"`

	// Explosion 爆炸精灵图ID
	Explosion string `yaml:"explosion"`

	// Projectiles 投射物贴图: bullet/rocketBad/rocketGood
	Projectiles map[string]ImageDef `yaml:"projectiles"`

	// Sounds 音效ID -> 文件路径
	Sounds map[string]string `yaml:"sounds"`
}

// SheetDef 单张精灵图
//
// 帧可以逐个列出（Cells），也可以按等宽网格生成（Grid）。
type SheetDef struct {
	Image string `yaml:"image"`

	Cells []CellDef `yaml:"cells,omitempty"`
	Grid  *GridDef  `yaml:"grid,omitempty"`

	// AnchorX 可选，未设置时取平均帧宽的一半
	AnchorX *float64 `yaml:"anchorX,omitempty"`

	// CellDuration 可选，未设置时使用 GameConfig.CellDuration
	CellDuration *float64 `yaml:"cellDuration,omitempty"`
}

// CellDef 一帧在图集中的位置
type CellDef struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridDef 等宽网格帧布局，按行优先排列
type GridDef struct {
	CellWidth  int `yaml:"cellWidth"`
	CellHeight int `yaml:"cellHeight"`
	Columns    int `yaml:"columns"`
	Count      int `yaml:"count"`
}

// ImageDef 单张贴图，Width/Height 在贴图缺失时作为占位尺寸
type ImageDef struct {
	Image  string  `yaml:"image"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LoadSpriteSheetConfig 从文件加载精灵图配置
func LoadSpriteSheetConfig(path string) (*SpriteSheetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spritesheet config: %w", err)
	}
	return ParseSpriteSheetConfig(data)
}

// ParseSpriteSheetConfig 从 YAML 数据解析精灵图配置
func ParseSpriteSheetConfig(data []byte) (*SpriteSheetConfig, error) {
	var config SpriteSheetConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse spritesheet config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid spritesheet config: %w", err)
	}

	return &config, nil
}

// Validate 检查引用的精灵图都已定义且每张至少一帧
func (c *SpriteSheetConfig) Validate() error {
	for id, def := range c.Sheets {
		if len(def.ExpandCells()) == 0 {
			return fmt.Errorf("%w: sheet %q has no cells", ErrInvalidConfig, id)
		}
	}

	for kind, phases := range c.Enemies {
		for phase, id := range phases {
			if _, ok := c.Sheets[id]; !ok {
				return fmt.Errorf("%w: enemy %s phase %s references unknown sheet %q", ErrInvalidConfig, kind, phase, id)
			}
		}
	}

	for _, id := range []string{c.Launcher, c.Explosion} {
		if _, ok := c.Sheets[id]; !ok {
			return fmt.Errorf("%w: unknown sheet %q", ErrInvalidConfig, id)
		}
	}

	for _, name := range []string{"bullet", "rocketBad", "rocketGood"} {
		def, ok := c.Projectiles[name]
		if !ok {
			return fmt.Errorf("%w: missing projectile %q", ErrInvalidConfig, name)
		}
		if def.Width <= 0 || def.Height <= 0 {
			return fmt.Errorf("%w: projectile %q needs a positive size", ErrInvalidConfig, name)
		}
	}

	return nil
}

// ExpandCells 返回全部帧，Cells 优先于 Grid
func (d SheetDef) ExpandCells() []CellDef {
	if len(d.Cells) > 0 {
		return d.Cells
	}
	if d.Grid == nil || d.Grid.Count <= 0 || d.Grid.CellWidth <= 0 || d.Grid.CellHeight <= 0 {
		return nil
	}

	columns := d.Grid.Columns
	if columns <= 0 {
		columns = d.Grid.Count
	}

	cells := make([]CellDef, 0, d.Grid.Count)
	for i := 0; i < d.Grid.Count; i++ {
		cells = append(cells, CellDef{
			X:      (i % columns) * d.Grid.CellWidth,
			Y:      (i / columns) * d.Grid.CellHeight,
			Width:  d.Grid.CellWidth,
			Height: d.Grid.CellHeight,
		})
	}
	return cells
}
