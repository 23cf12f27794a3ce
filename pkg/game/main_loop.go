package game

import "log"

// LoopPhases 主循环每个 tick 依次调用的四个阶段
type LoopPhases interface {
	// Begin 每个 tick 调用一次，delta 为距上一 tick 的毫秒数
	Begin(time, delta float64)
	// Update 以固定步长调用零到多次
	Update(delta float64)
	// Draw 每个 tick 调用一次，interpolation 为剩余累积时间占步长的比例
	Draw(interpolation float64)
	// End 每个 tick 调用一次；abort 为 true 表示积压过多，已丢弃剩余时间
	End(fps float64, abort bool)
}

// MainLoop 固定步长主循环
//
// 传入的时间戳会先减去累计的暂停时长，因此失去可见性期间的墙钟时间
// 不会在恢复后被一次性追补。
type MainLoop struct {
	phases   LoopPhases
	step     float64
	maxSteps int

	started     bool
	lastTime    float64
	accumulator float64
	pauseBank   float64

	fps           float64
	framesInCycle int
	lastFPSUpdate float64
}

// NewMainLoop 创建主循环
//
// 参数:
//   - phases: 各阶段回调
//   - step: update 固定步长（毫秒）
//   - maxSteps: 单个 tick 内最多执行的 update 次数
func NewMainLoop(phases LoopPhases, step float64, maxSteps int) *MainLoop {
	return &MainLoop{
		phases:   phases,
		step:     step,
		maxSteps: maxSteps,
		fps:      60,
	}
}

// AddPausedTime 累加一段暂停时长（毫秒）
func (m *MainLoop) AddPausedTime(ms float64) {
	if ms > 0 {
		m.pauseBank += ms
	}
}

// PausedTime 返回累计的暂停时长
func (m *MainLoop) PausedTime() float64 {
	return m.pauseBank
}

// FPS 返回平滑后的帧率
func (m *MainLoop) FPS() float64 {
	return m.fps
}

// Tick 以墙钟时间戳（毫秒）推进一次
func (m *MainLoop) Tick(timestamp float64) {
	ts := timestamp - m.pauseBank
	if !m.started {
		m.started = true
		m.lastTime = ts
		m.lastFPSUpdate = ts
	}

	delta := ts - m.lastTime
	if delta < 0 {
		delta = 0
	}
	m.lastTime = ts
	m.accumulator += delta

	if ts > m.lastFPSUpdate+1000 {
		m.fps = 0.25*float64(m.framesInCycle) + 0.75*m.fps
		m.lastFPSUpdate = ts
		m.framesInCycle = 0
	}
	m.framesInCycle++

	m.phases.Begin(ts, delta)

	steps := 0
	abort := false
	for m.accumulator >= m.step {
		m.phases.Update(m.step)
		m.accumulator -= m.step
		steps++
		if steps >= m.maxSteps {
			log.Printf("[MainLoop] Warning: %d update steps in one tick, dropping %.1fms backlog", steps, m.accumulator)
			abort = true
			m.accumulator = 0
			break
		}
	}

	m.phases.Draw(m.accumulator / m.step)
	m.phases.End(m.fps, abort)
}
