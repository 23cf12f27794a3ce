package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/decker502/notagame/pkg/components"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置值不合法
var ErrInvalidConfig = errors.New("invalid config")

// 窗口逻辑尺寸（像素）
const (
	GameWindowWidth  = 1280
	GameWindowHeight = 720
)

// GameConfig 游戏玩法配置
//
// 时间单位均为毫秒，速度为归一化布局单位/毫秒。
//
// 配置文件位置: data/game.yaml
type GameConfig struct {
	// CellDuration 精灵图未指定时的默认帧时长
	CellDuration float64 `yaml:"cellDuration"`

	// InitialDropCountdown 开局后第一颗炸弹的倒计时
	InitialDropCountdown float64 `yaml:"initialDropCountdown"`

	// DropCountdownRange 之后每颗炸弹的随机倒计时区间 [min, max)
	DropCountdownRange Range `yaml:"dropCountdownRange"`

	// SelectedEnemy 开局时选中的角色（one/two/three/four）
	SelectedEnemy string `yaml:"selectedEnemy"`

	// CanDebugColliders 是否允许用 C 键切换碰撞体调试绘制
	CanDebugColliders bool `yaml:"canDebugColliders"`

	// FooterHeight 地面相对视口底部的像素偏移
	FooterHeight float64 `yaml:"footerHeight"`

	HorizontalSpeed  float64 `yaml:"horizontalSpeed"`
	HidingSpeed      float64 `yaml:"hidingSpeed"`
	HideFloor        float64 `yaml:"hideFloor"`
	JumpVelocity     float64 `yaml:"jumpVelocity"`
	JumpAcceleration float64 `yaml:"jumpAcceleration"`

	// QueryTimeoutPolls 像素碰撞查询最多等待的轮询次数，超过即判定为未碰撞
	QueryTimeoutPolls int `yaml:"queryTimeoutPolls"`

	// InitialPhase 启动时的暂停模式（welcome/help/running）
	InitialPhase string `yaml:"initialPhase"`

	// MainLoop 固定步长主循环参数
	MainLoop MainLoopConfig `yaml:"mainLoop"`
}

// Range 半开区间 [Min, Max)
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// MainLoopConfig 主循环参数
type MainLoopConfig struct {
	// TimeStep 每次 update 的固定步长（毫秒）
	TimeStep float64 `yaml:"timeStep"`
	// MaxUpdateSteps 单次 tick 内最多执行的 update 次数，超过即放弃积压时间
	MaxUpdateSteps int `yaml:"maxUpdateSteps"`
}

// DefaultGameConfig 返回内置默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		CellDuration:         50,
		InitialDropCountdown: 100,
		DropCountdownRange:   Range{Min: 100, Max: 200},
		SelectedEnemy:        "two",
		CanDebugColliders:    false,
		FooterHeight:         64,
		HorizontalSpeed:      0.0005,
		HidingSpeed:          0.0005,
		HideFloor:            -0.5,
		JumpVelocity:         0.035,
		JumpAcceleration:     -0.002,
		QueryTimeoutPolls:    180,
		InitialPhase:         "welcome",
		MainLoop: MainLoopConfig{
			TimeStep:       1000.0 / 60.0,
			MaxUpdateSteps: 240,
		},
	}
}

// LoadGameConfig 从文件加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置，未出现的字段取默认值
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 从 YAML 数据解析游戏配置（用于嵌入资源）
func ParseGameConfig(data []byte) (*GameConfig, error) {
	config := DefaultGameConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.CellDuration <= 0 {
		return fmt.Errorf("%w: cellDuration must be > 0, got %v", ErrInvalidConfig, c.CellDuration)
	}
	if c.InitialDropCountdown < 0 {
		return fmt.Errorf("%w: initialDropCountdown must be >= 0, got %v", ErrInvalidConfig, c.InitialDropCountdown)
	}
	if c.DropCountdownRange.Min <= 0 || c.DropCountdownRange.Min >= c.DropCountdownRange.Max {
		return fmt.Errorf("%w: dropCountdownRange invalid: min(%v) max(%v)",
			ErrInvalidConfig, c.DropCountdownRange.Min, c.DropCountdownRange.Max)
	}
	if _, err := components.ParseEnemyKind(c.SelectedEnemy); err != nil {
		return fmt.Errorf("%w: selectedEnemy: %v", ErrInvalidConfig, err)
	}
	if c.HorizontalSpeed <= 0 || c.HidingSpeed <= 0 {
		return fmt.Errorf("%w: speeds must be > 0", ErrInvalidConfig)
	}
	if c.HideFloor >= 0 {
		return fmt.Errorf("%w: hideFloor must be below ground, got %v", ErrInvalidConfig, c.HideFloor)
	}
	if c.JumpVelocity <= 0 || c.JumpAcceleration >= 0 {
		return fmt.Errorf("%w: jump needs positive velocity and negative acceleration", ErrInvalidConfig)
	}
	if c.QueryTimeoutPolls <= 0 {
		return fmt.Errorf("%w: queryTimeoutPolls must be > 0, got %d", ErrInvalidConfig, c.QueryTimeoutPolls)
	}
	switch c.InitialPhase {
	case "welcome", "help", "running":
	default:
		return fmt.Errorf("%w: unknown initialPhase %q", ErrInvalidConfig, c.InitialPhase)
	}
	if c.MainLoop.TimeStep <= 0 || c.MainLoop.MaxUpdateSteps <= 0 {
		return fmt.Errorf("%w: mainLoop timeStep and maxUpdateSteps must be > 0", ErrInvalidConfig)
	}
	return nil
}

// SelectedEnemyKind 返回开局选中的角色种类
func (c *GameConfig) SelectedEnemyKind() components.EnemyKind {
	kind, err := components.ParseEnemyKind(c.SelectedEnemy)
	if err != nil {
		return components.EnemyKindOne
	}
	return kind
}
