package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个可运行的场景
//
// 主循环的四个阶段由 LoopPhases 提供；Controller 在每个 tick 最先调用，
// 不受暂停状态影响，以便暂停期间仍能响应按键。
type Scene interface {
	LoopPhases

	// Controller 处理输入队列与音效队列
	Controller()

	// Render 将当前状态绘制到 screen
	Render(screen *ebiten.Image)

	// Finished 场景是否已结束（例如游戏结束），结束后可由 SceneManager 重建
	Finished() bool
}

// Releaser 是可选接口，场景被替换或程序退出时释放外部资源（如未完成的查询）
type Releaser interface {
	Release()
}
