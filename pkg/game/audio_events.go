package game

import "fmt"

// AudioEvent 音效提示
type AudioEvent int

const (
	AudioCollisionDie AudioEvent = iota
	AudioCollisionImpact
	AudioMoveDuck
	AudioMoveJump
	AudioWeaponBullet
	AudioWeaponExplode
	AudioWeaponLauncher
	AudioWeaponRpg
)

// AllAudioEvents 全部音效，按声明顺序
var AllAudioEvents = []AudioEvent{
	AudioCollisionDie,
	AudioCollisionImpact,
	AudioMoveDuck,
	AudioMoveJump,
	AudioWeaponBullet,
	AudioWeaponExplode,
	AudioWeaponLauncher,
	AudioWeaponRpg,
}

// SoundID 返回配置文件 sounds 段中的键
func (e AudioEvent) SoundID() string {
	switch e {
	case AudioCollisionDie:
		return "collisionDie"
	case AudioCollisionImpact:
		return "collisionImpact"
	case AudioMoveDuck:
		return "moveDuck"
	case AudioMoveJump:
		return "moveJump"
	case AudioWeaponBullet:
		return "weaponBullet"
	case AudioWeaponExplode:
		return "weaponExplode"
	case AudioWeaponLauncher:
		return "weaponLauncher"
	case AudioWeaponRpg:
		return "weaponRpg"
	default:
		return fmt.Sprintf("AudioEvent(%d)", int(e))
	}
}

func (e AudioEvent) String() string {
	return e.SoundID()
}

// AudioEventQueue 待播放的音效队列
//
// 各系统只追加，controller 阶段末尾一次性取出播放。
type AudioEventQueue struct {
	events []AudioEvent
}

// NewAudioEventQueue 创建空队列
func NewAudioEventQueue() *AudioEventQueue {
	return &AudioEventQueue{}
}

// Push 追加一个音效
func (q *AudioEventQueue) Push(e AudioEvent) {
	q.events = append(q.events, e)
}

// Drain 取出全部音效并清空队列
func (q *AudioEventQueue) Drain() []AudioEvent {
	out := q.events
	q.events = nil
	return out
}

// Len 返回排队中的音效数量
func (q *AudioEventQueue) Len() int {
	return len(q.events)
}
