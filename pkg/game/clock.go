package game

import "time"

// Clock 提供单调递增的毫秒时间戳
type Clock interface {
	Now() float64
}

// SystemClock 基于 time.Since 的真实时钟
type SystemClock struct {
	start time.Time
}

// NewSystemClock 以当前时刻为零点
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now 返回自创建以来的毫秒数
func (c *SystemClock) Now() float64 {
	return float64(time.Since(c.start).Microseconds()) / 1000.0
}

// ManualClock 手动推进的时钟，用于无头模拟与测试
type ManualClock struct {
	now float64
}

// Now 返回当前时间
func (c *ManualClock) Now() float64 {
	return c.now
}

// Advance 推进 ms 毫秒
func (c *ManualClock) Advance(ms float64) {
	c.now += ms
}
