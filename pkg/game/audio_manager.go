package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 按音效ID播放一次性音效，音量读取 SettingsManager，音量为 0 时静音
//
// resourceManager 没有音频上下文时（无头模式）所有播放请求都被忽略。
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager
	soundPlayers    map[string]*audio.Player // 资源ID -> 播放器
	missing         map[string]bool          // 已确认无法加载的ID，避免每帧重试
	played          int
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		missing:         make(map[string]bool),
	}
}

// PlaySound 播放音效，返回是否真正开始播放
func (am *AudioManager) PlaySound(soundID string) bool {
	volume := am.GetSoundVolume()
	if volume <= 0 {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	am.played++
	return true
}

// PlayEvents 依次播放一批音效，返回真正开始播放的数量
func (am *AudioManager) PlayEvents(events []AudioEvent) int {
	played := 0
	for _, e := range events {
		if am.PlaySound(e.SoundID()) {
			played++
		}
	}
	return played
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.SoundVolume()
	}
	return DefaultPreferences().SoundVolume
}

// PlayedCount 返回实际播放过的音效次数
func (am *AudioManager) PlayedCount() int {
	return am.played
}

// PreloadSounds 预加载音效，避免首次播放时的延迟，返回加载成功的数量
func (am *AudioManager) PreloadSounds(events []AudioEvent) int {
	loaded := 0
	for _, e := range events {
		if am.getSoundPlayer(e.SoundID()) != nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", loaded, len(events))
	return loaded
}

func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	if am.missing[soundID] || am.resourceManager == nil {
		return nil
	}

	path, ok := am.resourceManager.SoundPath(soundID)
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		am.missing[soundID] = true
		return nil
	}

	player, err := am.resourceManager.LoadSoundEffect(path)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		am.missing[soundID] = true
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}
