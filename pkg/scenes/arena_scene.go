package scenes

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/notagame/pkg/collision"
	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/config"
	"github.com/decker502/notagame/pkg/ecs"
	"github.com/decker502/notagame/pkg/entities"
	"github.com/decker502/notagame/pkg/game"
	"github.com/decker502/notagame/pkg/input"
	"github.com/decker502/notagame/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// ArenaOptions 创建一局对战需要的外部依赖
type ArenaOptions struct {
	// Config 玩法配置，nil 时使用默认配置
	Config *config.GameConfig
	// Resources 精灵图与投射物贴图
	Resources entities.ResourceLoader
	// Backend 逐像素碰撞查询后端
	Backend collision.QueryBackend
	// Inputs 输入队列，由 App 的监听器或模拟脚本写入
	Inputs *input.Queue
	// GameState 本局状态，nil 时按配置的初始阶段新建
	GameState *game.GameState
	// Audio 音效播放，nil 时只统计不播放
	Audio *game.AudioManager
	// Settings 玩家偏好，提供并保存碰撞体绘制开关，可为 nil
	Settings *game.SettingsManager
	// Rand 随机源，nil 时以当前时间为种子
	Rand *rand.Rand
}

// ArenaScene 一局对战
//
// 持有实体管理器与全部系统，并按固定顺序执行主循环的各阶段:
//
//	controller: 输入 → 音效
//	begin:      背景 → 选择事件 → 角色动画 → 发射台动画 → 爆炸动画 → 躲藏效果
//	update:     游戏结束 → 销毁事件 → 控制器物理 → 角色朝向 → 轰炸 → 爆炸生成 →
//	            投射物生成 → 投射物物理 → 布局 → 变换 → 碰撞体 → 粗检测 → 细检测轮询 → 删除
//	draw:       细检测提交
//	end:        帧率记录 → 后端帧边界
//
// begin/update/draw/end 只在运行状态下执行；update/draw 还要求视口尺寸有效。
type ArenaScene struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	backend       collision.QueryBackend
	sceneRoot     ecs.EntityID

	viewportWidth  float64
	viewportHeight float64
	drawFailed     bool

	// controller
	inputSystem *systems.InputSystem
	audioSystem *systems.AudioSystem

	// begin
	backgroundSystem         *systems.BackgroundSystem
	selectEventSystem        *systems.SelectEventSystem
	enemyAnimationSystem     *systems.EnemyAnimationSystem
	launcherAnimationSystem  *systems.LauncherAnimationSystem
	explosionAnimationSystem *systems.ExplosionAnimationSystem
	hidingEffectSystem       *systems.HidingEffectSystem

	// update
	gameOverSystem          *systems.GameOverSystem
	destroyEventSystem      *systems.DestroyEventSystem
	controllerPhysicsSystem *systems.ControllerPhysicsSystem
	enemyPositionSystem     *systems.EnemyPositionSystem
	bomberSystem            *systems.BomberSystem
	explosionSpawnSystem    *systems.ExplosionSpawnSystem
	projectileSpawnSystem   *systems.ProjectileSpawnSystem
	projectilePhysicsSystem *systems.ProjectilePhysicsSystem
	layoutSystem            *systems.LayoutSystem
	transformSystem         *systems.TransformSystem
	colliderSystem          *systems.ColliderSystem
	broadPhaseSystem        *systems.BroadPhaseSystem
	narrowPhaseSystem       *systems.NarrowPhaseSystem
	deletionSystem          *systems.DeletionSystem

	renderSystem *systems.RenderSystem
}

// NewArenaScene 创建一局对战并生成开局实体
//
// 参数:
//   - opts: 外部依赖，Resources、Backend 与 Inputs 必须提供
//
// 返回:
//   - *ArenaScene: 场景实例，视口默认为窗口逻辑尺寸
//   - error: 依赖缺失或开局实体创建失败时返回错误
func NewArenaScene(opts ArenaOptions) (*ArenaScene, error) {
	if opts.Resources == nil || opts.Backend == nil || opts.Inputs == nil {
		return nil, fmt.Errorf("failed to create arena: resources, backend and inputs are required")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	gs := opts.GameState
	if gs == nil {
		mode, err := game.ParsePauseMode(cfg.InitialPhase)
		if err != nil {
			return nil, fmt.Errorf("failed to create arena: %w", err)
		}
		gs = game.NewGameState(mode)
	}
	if cfg.CanDebugColliders && opts.Settings != nil {
		gs.DebugColliders = opts.Settings.ShowColliders()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	em := ecs.NewEntityManager()
	cues := game.NewAudioEventQueue()
	projectiles := systems.NewProjectileSpawner()
	explosions := systems.NewExplosionSpawner()
	queue := collision.NewEventQueue(cfg.QueryTimeoutPolls)
	tuning := systems.ControllerTuningFromConfig(cfg)

	s := &ArenaScene{
		entityManager:  em,
		gameState:      gs,
		backend:        opts.Backend,
		viewportWidth:  config.GameWindowWidth,
		viewportHeight: config.GameWindowHeight,

		inputSystem: systems.NewInputSystem(em, gs, opts.Inputs, cues, tuning, cfg.CanDebugColliders, opts.Settings),
		audioSystem: systems.NewAudioSystem(cues, opts.Audio),

		backgroundSystem:         systems.NewBackgroundSystem(gs),
		selectEventSystem:        systems.NewSelectEventSystem(em, gs),
		enemyAnimationSystem:     systems.NewEnemyAnimationSystem(em, projectiles),
		launcherAnimationSystem:  systems.NewLauncherAnimationSystem(em, projectiles),
		explosionAnimationSystem: systems.NewExplosionAnimationSystem(em),
		hidingEffectSystem:       systems.NewHidingEffectSystem(em),

		gameOverSystem:          systems.NewGameOverSystem(em, gs),
		destroyEventSystem:      systems.NewDestroyEventSystem(em, gs, cues),
		controllerPhysicsSystem: systems.NewControllerPhysicsSystem(em, tuning),
		enemyPositionSystem:     systems.NewEnemyPositionSystem(em),
		bomberSystem:            systems.NewBomberSystem(projectiles, rng, cfg),
		explosionSpawnSystem:    systems.NewExplosionSpawnSystem(em, explosions, opts.Resources.ExplosionSheet(), cues),
		projectileSpawnSystem:   systems.NewProjectileSpawnSystem(em, projectiles, opts.Resources, rng),
		projectilePhysicsSystem: systems.NewProjectilePhysicsSystem(em),
		layoutSystem:            systems.NewLayoutSystem(em, cfg.FooterHeight),
		transformSystem:         systems.NewTransformSystem(em),
		colliderSystem:          systems.NewColliderSystem(em),
		broadPhaseSystem:        systems.NewBroadPhaseSystem(em, queue),
		narrowPhaseSystem:       systems.NewNarrowPhaseSystem(em, queue, opts.Backend, explosions),
		deletionSystem:          systems.NewDeletionSystem(em, explosions),

		renderSystem: systems.NewRenderSystem(em, gs, cfg.FooterHeight),
	}

	if opts.Audio != nil {
		opts.Audio.PreloadSounds(game.AllAudioEvents)
	}

	if err := s.spawnInitialEntities(opts.Resources, cfg.SelectedEnemyKind()); err != nil {
		return nil, err
	}
	return s, nil
}

// spawnInitialEntities 生成场景根节点、四个角色与两座发射台，并选中初始角色
func (s *ArenaScene) spawnInitialEntities(rl entities.ResourceLoader, selected components.EnemyKind) error {
	s.sceneRoot = entities.NewSceneRoot(s.entityManager)

	for _, spawn := range entities.DefaultEnemySpawns {
		if _, err := entities.NewEnemyEntity(s.entityManager, rl, spawn); err != nil {
			return fmt.Errorf("failed to create arena: %w", err)
		}
	}
	if !systems.DispatchSelect(s.entityManager, selected) {
		log.Printf("[ArenaScene] Warning: no enemy of kind %s to select", selected)
	}

	for _, side := range []components.LauncherSide{components.LauncherSideLeft, components.LauncherSideRight} {
		if _, err := entities.NewLauncherEntity(s.entityManager, rl, side); err != nil {
			return fmt.Errorf("failed to create arena: %w", err)
		}
	}
	log.Printf("[ArenaScene] Arena ready with %d entities, selected %s", s.entityManager.EntityCount(), selected)
	return nil
}

// SetViewport 设置视口尺寸（像素）
func (s *ArenaScene) SetViewport(width, height float64) {
	s.viewportWidth = width
	s.viewportHeight = height
}

// EntityManager 返回场景的实体管理器
func (s *ArenaScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// SceneRoot 返回场景图根节点
func (s *ArenaScene) SceneRoot() ecs.EntityID {
	return s.sceneRoot
}

// GameState 返回本局状态
func (s *ArenaScene) GameState() *game.GameState {
	return s.gameState
}

// Controller 处理输入与音效，不受暂停影响
func (s *ArenaScene) Controller() {
	s.inputSystem.Update()
	s.audioSystem.Update()
}

// Begin 逐帧推进动画
func (s *ArenaScene) Begin(time, delta float64) {
	if !s.gameState.Pause.IsRunning() {
		return
	}
	s.gameState.BeginTick = game.BeginTick{Time: time, Delta: delta}

	s.backgroundSystem.Update(delta)
	s.selectEventSystem.Update()
	s.enemyAnimationSystem.Update(delta)
	s.launcherAnimationSystem.Update(delta)
	s.explosionAnimationSystem.Update(delta)
	s.hidingEffectSystem.Update()
}

// Update 以固定步长推进模拟
func (s *ArenaScene) Update(delta float64) {
	if !s.gameState.Pause.IsRunning() || !s.hasViewport() {
		return
	}
	s.gameState.UpdateTick = game.UpdateTick{
		Delta:          delta,
		ViewportWidth:  s.viewportWidth,
		ViewportHeight: s.viewportHeight,
	}

	s.gameOverSystem.Update()
	s.destroyEventSystem.Update()
	s.controllerPhysicsSystem.Update(delta)
	s.enemyPositionSystem.Update()
	s.bomberSystem.Update(delta)
	s.explosionSpawnSystem.Update()
	s.projectileSpawnSystem.Update()
	s.projectilePhysicsSystem.Update(delta)
	s.layoutSystem.Update(s.viewportWidth, s.viewportHeight)
	s.transformSystem.Update()
	s.colliderSystem.Update()
	s.broadPhaseSystem.Update()
	s.narrowPhaseSystem.Poll()

	// 必须最后执行
	s.deletionSystem.Update()
}

// Draw 提交细检测查询，后端出错时放弃本帧剩余的绘制
func (s *ArenaScene) Draw(interpolation float64) {
	if !s.gameState.Pause.IsRunning() || !s.hasViewport() {
		return
	}
	s.gameState.DrawTick = game.DrawTick{
		Interpolation:  interpolation,
		ViewportWidth:  s.viewportWidth,
		ViewportHeight: s.viewportHeight,
	}
	s.drawFailed = s.narrowPhaseSystem.Issue() != nil
}

// End 记录帧率并标记后端的帧边界
func (s *ArenaScene) End(fps float64, abort bool) {
	if !s.gameState.Pause.IsRunning() {
		return
	}
	s.gameState.EndTick = game.EndTick{FPS: fps, Abort: abort}
	if abort {
		log.Printf("[ArenaScene] Warning: update backlog dropped at frame %d", s.gameState.Frame)
	}
	s.backend.EndFrame()
	s.gameState.Frame++
}

// Render 把当前状态绘制到屏幕
func (s *ArenaScene) Render(screen *ebiten.Image) {
	if s.drawFailed {
		return
	}
	s.renderSystem.Draw(screen, s.viewportWidth, s.viewportHeight)
}

// Finished 游戏结束且玩家请求了重新开始
func (s *ArenaScene) Finished() bool {
	return s.gameState.Pause.Mode == game.PauseGameOver && s.inputSystem.RestartRequested()
}

// Release 释放全部未完成的碰撞查询
func (s *ArenaScene) Release() {
	s.narrowPhaseSystem.Release()
}

func (s *ArenaScene) hasViewport() bool {
	return s.viewportWidth > 0 && s.viewportHeight > 0
}
