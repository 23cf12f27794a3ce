package systems

import (
	"log"

	"github.com/decker502/notagame/pkg/components"
	"github.com/decker502/notagame/pkg/ecs"
	"github.com/decker502/notagame/pkg/game"
	"github.com/decker502/notagame/pkg/input"
)

// numberKeyKinds 数字键对应的角色种类
var numberKeyKinds = map[input.Key]components.EnemyKind{
	input.KeyNumber1: components.EnemyKindOne,
	input.KeyNumber2: components.EnemyKindTwo,
	input.KeyNumber3: components.EnemyKindThree,
	input.KeyNumber4: components.EnemyKindFour,
}

// InputSystem controller 阶段的输入处理
//
// 每个 tick 取出输入队列中的全部事件，按到达顺序处理:
// 暂停相关按键总是生效；其余输入只在运行状态下交给受控角色。
type InputSystem struct {
	entityManager     *ecs.EntityManager
	gameState         *game.GameState
	inputs            *input.Queue
	cues              *game.AudioEventQueue
	tuning            ControllerTuning
	canDebugColliders bool
	settings          *game.SettingsManager
	restartRequested  bool
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - em: 实体管理器
//   - gs: 游戏状态（暂停模式、调试开关）
//   - inputs: 输入队列
//   - cues: 音效队列
//   - tuning: 控制器运动参数
//   - canDebugColliders: 是否允许切换碰撞体绘制
//   - settings: 保存碰撞体绘制开关，可为 nil
func NewInputSystem(em *ecs.EntityManager, gs *game.GameState, inputs *input.Queue, cues *game.AudioEventQueue, tuning ControllerTuning, canDebugColliders bool, settings *game.SettingsManager) *InputSystem {
	return &InputSystem{
		entityManager:     em,
		gameState:         gs,
		inputs:            inputs,
		cues:              cues,
		tuning:            tuning,
		canDebugColliders: canDebugColliders,
		settings:          settings,
	}
}

// Update 处理队列中的全部输入
func (s *InputSystem) Update() {
	for _, in := range s.inputs.Drain() {
		s.handle(in)
	}
}

// RestartRequested 游戏结束后是否收到了重新开始的请求
func (s *InputSystem) RestartRequested() bool {
	return s.restartRequested
}

func (s *InputSystem) handle(in input.Input) {
	pause := &s.gameState.Pause

	if pause.Mode == game.PauseGameOver {
		if in.Kind == input.ResetEvent || in.IsKeyDown(input.KeyStart) {
			s.restartRequested = true
			log.Printf("[InputSystem] Restart requested")
		}
		return
	}

	switch {
	case in.IsKeyDown(input.KeyPause):
		if pause.TogglePause() {
			log.Printf("[InputSystem] Pause mode: %s", pause.Mode)
		}
	case in.IsKeyDown(input.KeyStart):
		if pause.Start() {
			log.Printf("[InputSystem] Game started")
		}
	case in.IsKeyDown(input.KeyHelp):
		pause.ToggleHelp()
	}
	s.gameState.SyncUIPhase()

	if !pause.IsRunning() {
		return
	}

	active := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.ActiveControllerComponent, *components.LayoutPosition](s.entityManager)
	for _, id := range active {
		enemy := ecs.MustGetComponent[*components.EnemyComponent](s.entityManager, id)
		pos := ecs.MustGetComponent[*components.LayoutPosition](s.entityManager, id)
		ProcessControllerInput(enemy.Controller, in, pos.Y, s.tuning, s.cues)
	}

	if in.IsKeyDown(input.KeyToggleDebugColliders) && s.canDebugColliders {
		s.toggleDebugColliders()
	}

	if in.Kind == input.KeyDownEvent {
		if kind, ok := numberKeyKinds[in.Key]; ok {
			DispatchSelect(s.entityManager, kind)
		}
	}
}

func (s *InputSystem) toggleDebugColliders() {
	s.gameState.DebugColliders = !s.gameState.DebugColliders
	if s.settings == nil {
		return
	}
	if err := s.settings.SetShowColliders(s.gameState.DebugColliders); err != nil {
		log.Printf("[InputSystem] Warning: failed to save collider setting: %v", err)
	}
}
