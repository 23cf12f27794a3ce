package systems

import (
	"github.com/decker502/notagame/pkg/game"
)

// AudioSystem 取出音效队列并交给 AudioManager 播放
//
// manager 为 nil 时（无头模拟）只做统计。
type AudioSystem struct {
	cues    *game.AudioEventQueue
	manager *game.AudioManager
	counts  map[game.AudioEvent]int
}

// NewAudioSystem 创建音效系统
func NewAudioSystem(cues *game.AudioEventQueue, manager *game.AudioManager) *AudioSystem {
	return &AudioSystem{
		cues:    cues,
		manager: manager,
		counts:  make(map[game.AudioEvent]int),
	}
}

// Update 播放本 tick 积累的全部音效
func (s *AudioSystem) Update() {
	events := s.cues.Drain()
	for _, e := range events {
		s.counts[e]++
	}
	if s.manager != nil && len(events) > 0 {
		s.manager.PlayEvents(events)
	}
}

// Count 返回某音效累计的播放请求次数
func (s *AudioSystem) Count(e game.AudioEvent) int {
	return s.counts[e]
}
