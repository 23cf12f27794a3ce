// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载配置与精灵图、创建音频与设置管理器，
// 并把 ebiten 的逐帧回调映射到固定步长主循环。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/notagame/pkg/collision"
	"github.com/decker502/notagame/pkg/config"
	"github.com/decker502/notagame/pkg/embedded"
	"github.com/decker502/notagame/pkg/game"
	"github.com/decker502/notagame/pkg/input"
	"github.com/decker502/notagame/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 嵌入的默认配置路径
const (
	gameConfigPath        = "data/game.yaml"
	spriteSheetConfigPath = "data/spritesheets.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// GameConfigPath 磁盘上的玩法配置，为空时使用嵌入的 data/game.yaml
	GameConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	loop         *game.MainLoop
	clock        game.Clock
	inputs       *input.Queue
	listener     *input.Listener
	arena        *scenes.ArenaScene
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.GameConfigPath)
	if err != nil {
		return nil, err
	}
	sheetData, err := embedded.ReadFile(spriteSheetConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprite sheets: %w", err)
	}
	sheets, err := config.ParseSpriteSheetConfig(sheetData)
	if err != nil {
		return nil, err
	}

	audioContext := audio.NewContext(48000)
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadSpriteSheets(sheets, gameConfig.CellDuration); err != nil {
		return nil, err
	}

	// 设置存储不可用时退化为内存设置
	gameState := game.GetGameState()
	gdataManager, err := gdata.Open(gdata.Config{AppName: "notagame"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings manager: %w", err)
	}
	gameState.SetSettingsManager(settingsManager)
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	gameState.SetAudioManager(audioManager)
	log.Printf("[App] AudioManager initialized")

	a := &App{
		sceneManager: game.NewSceneManager(),
		clock:        game.NewSystemClock(),
		inputs:       input.NewQueue(),
		verbose:      cfg.Verbose,
	}
	a.listener = input.NewListener(a.inputs)
	a.loop = game.NewMainLoop(a.sceneManager, gameConfig.MainLoop.TimeStep, gameConfig.MainLoop.MaxUpdateSteps)

	backend := collision.NewEbitenBackend()
	restarts := 0
	a.sceneManager.SetSceneFactory(func() (game.Scene, error) {
		// 重新开始的对局跳过欢迎界面
		var gs *game.GameState
		if restarts > 0 {
			gs = game.NewGameState(game.PauseRunning)
		}
		restarts++

		arena, err := scenes.NewArenaScene(scenes.ArenaOptions{
			Config:    gameConfig,
			Resources: resourceManager,
			Backend:   backend,
			Inputs:    a.inputs,
			GameState: gs,
			Audio:     audioManager,
			Settings:  settingsManager,
		})
		if err != nil {
			return nil, err
		}
		a.arena = arena
		return arena, nil
	})
	if err := a.sceneManager.Restart(); err != nil {
		return nil, err
	}
	return a, nil
}

// loadGameConfig 优先读取磁盘上的配置文件，否则使用嵌入的默认配置
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		cfg, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] Loaded game config from %s", path)
		return cfg, nil
	}
	data, err := embedded.ReadFile(gameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load game config: %w", err)
	}
	return config.ParseGameConfig(data)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	now := a.clock.Now()
	if !a.syncVisibility(now) {
		// 失去焦点期间主循环停止，恢复后这段时间计入暂停时长
		return nil
	}

	a.listener.Poll()
	a.sceneManager.Controller()
	a.loop.Tick(now)

	if scene := a.sceneManager.GetCurrentScene(); scene != nil && scene.Finished() {
		if err := a.sceneManager.Restart(); err != nil {
			return fmt.Errorf("failed to restart arena: %w", err)
		}
	}
	return nil
}

// syncVisibility 根据窗口焦点切换失去可见性状态，返回主循环是否应当推进
func (a *App) syncVisibility(now float64) bool {
	if a.arena == nil {
		return true
	}
	pause := &a.arena.GameState().Pause

	if !ebiten.IsFocused() {
		if pause.LoseVisibility(now) {
			log.Printf("[App] Window lost focus, pausing")
		}
		return false
	}
	if lost, ok := pause.RestoreVisibility(now); ok {
		a.loop.AddPausedTime(lost)
		log.Printf("[App] Window regained focus after %.0fms", lost)
	}
	return true
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Render(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 释放场景持有的查询并保存设置
func (a *App) Close() {
	a.sceneManager.Release()
	if sm := game.GetGameState().GetSettingsManager(); sm != nil {
		if err := sm.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
