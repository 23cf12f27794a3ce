package game

import (
	"github.com/decker502/notagame/pkg/components"
)

// BeginTick begin 阶段的时间信息（毫秒）
type BeginTick struct {
	Time  float64
	Delta float64
}

// UpdateTick update 阶段的时间与视口信息
type UpdateTick struct {
	Delta          float64
	ViewportWidth  float64
	ViewportHeight float64
}

// DrawTick draw 阶段的插值与视口信息
type DrawTick struct {
	Interpolation  float64
	ViewportWidth  float64
	ViewportHeight float64
}

// EndTick end 阶段的帧率信息
type EndTick struct {
	FPS   float64
	Abort bool
}

// UIPhase 叠加在战场上的界面
type UIPhase int

const (
	// UIPhaseFooter 仅显示底栏（运行中）
	UIPhaseFooter UIPhase = iota
	UIPhaseWelcome
	UIPhaseHelp
	UIPhaseGameOver
)

// UIState 界面相关状态
type UIState struct {
	Phase          UIPhase
	SelectedKind   components.EnemyKind
	HasSelection   bool
	DestroyedKinds map[components.EnemyKind]bool
}

// GameState 存储一局对战的全局状态
//
// 由场景持有，各系统通过构造参数获得引用。
type GameState struct {
	BeginTick  BeginTick
	UpdateTick UpdateTick
	DrawTick   DrawTick
	EndTick    EndTick

	Pause PauseState
	UI    UIState

	// DebugColliders 是否绘制碰撞体轮廓
	DebugColliders bool

	// CloudOffset 背景云层的水平偏移
	CloudOffset float64

	// Frame 已完成的 tick 次数
	Frame uint64

	settingsManager *SettingsManager
	audioManager    *AudioManager
}

// 全局单例实例，仅供 App 与工具命令共享设置
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = NewGameState(PauseWelcome)
	}
	return globalGameState
}

// NewGameState 创建独立的状态实例（测试与无头模拟使用）
func NewGameState(initial PauseMode) *GameState {
	gs := &GameState{
		Pause: NewPauseState(initial),
		UI: UIState{
			DestroyedKinds: make(map[components.EnemyKind]bool),
		},
	}
	gs.SyncUIPhase()
	return gs
}

// SyncUIPhase 让界面阶段跟随暂停模式
//
// 失去可见性与手动暂停不改变界面。
func (gs *GameState) SyncUIPhase() {
	switch gs.Pause.Mode {
	case PauseWelcome:
		gs.UI.Phase = UIPhaseWelcome
	case PauseHelp:
		gs.UI.Phase = UIPhaseHelp
	case PauseRunning:
		gs.UI.Phase = UIPhaseFooter
	case PauseGameOver:
		gs.UI.Phase = UIPhaseGameOver
	}
}

// SetSelectedKind 记录当前选中的角色种类
func (gs *GameState) SetSelectedKind(kind components.EnemyKind) {
	gs.UI.SelectedKind = kind
	gs.UI.HasSelection = true
}

// RecordDestroyed 记录被摧毁的角色种类
func (gs *GameState) RecordDestroyed(kind components.EnemyKind) {
	gs.UI.DestroyedKinds[kind] = true
}

// IsDestroyed 该种类是否已被摧毁
func (gs *GameState) IsDestroyed(kind components.EnemyKind) bool {
	return gs.UI.DestroyedKinds[kind]
}

// SetSettingsManager 设置设置管理器
func (gs *GameState) SetSettingsManager(sm *SettingsManager) {
	gs.settingsManager = sm
}

// GetSettingsManager 获取设置管理器，可能为 nil
func (gs *GameState) GetSettingsManager() *SettingsManager {
	return gs.settingsManager
}

// SetAudioManager 设置音频管理器
func (gs *GameState) SetAudioManager(am *AudioManager) {
	gs.audioManager = am
}

// GetAudioManager 获取音频管理器，可能为 nil
func (gs *GameState) GetAudioManager() *AudioManager {
	return gs.audioManager
}
