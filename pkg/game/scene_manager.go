package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型，用于创建新的一局
type SceneFactory func() (Scene, error)

// SceneManager 持有当前场景，并把主循环的各阶段转发给它
//
// SceneManager 本身实现 LoopPhases，主循环只绑定一次，切换场景不需要重建主循环。
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager 创建没有活动场景的管理器
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换到指定场景，旧场景若实现 Releaser 则先释放
func (sm *SceneManager) SwitchTo(scene Scene) {
	if r, ok := sm.currentScene.(Releaser); ok && sm.currentScene != scene {
		r.Release()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，可能为 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Restart 用工厂函数创建新的一局并切换过去
func (sm *SceneManager) Restart() error {
	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}
	scene, err := sm.sceneFactory()
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}
	sm.SwitchTo(scene)
	log.Printf("[SceneManager] Started a new arena")
	return nil
}

// Release 释放当前场景持有的资源
func (sm *SceneManager) Release() {
	if r, ok := sm.currentScene.(Releaser); ok {
		r.Release()
	}
}

// Controller 转发到当前场景
func (sm *SceneManager) Controller() {
	if sm.currentScene != nil {
		sm.currentScene.Controller()
	}
}

// Begin 转发到当前场景
func (sm *SceneManager) Begin(time, delta float64) {
	if sm.currentScene != nil {
		sm.currentScene.Begin(time, delta)
	}
}

// Update 转发到当前场景
func (sm *SceneManager) Update(delta float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(delta)
	}
}

// Draw 转发到当前场景
func (sm *SceneManager) Draw(interpolation float64) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(interpolation)
	}
}

// End 转发到当前场景
func (sm *SceneManager) End(fps float64, abort bool) {
	if sm.currentScene != nil {
		sm.currentScene.End(fps, abort)
	}
}

// Render 将当前场景绘制到屏幕
func (sm *SceneManager) Render(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Render(screen)
	}
}
