package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// gdata 中偏好设置的存放位置
const (
	preferencesObject   = "settings"
	preferencesProperty = "global"
)

// Preferences 跨对局保留的玩家偏好，不包含任何对局进度
type Preferences struct {
	// ShowColliders 调试碰撞体绘制开关，C 键切换后立即保存
	ShowColliders bool `yaml:"showColliders"`
	// SoundVolume 音效音量 0.0 ~ 1.0，为 0 时不播放
	SoundVolume float64 `yaml:"soundVolume"`
}

// DefaultPreferences 返回默认偏好
func DefaultPreferences() Preferences {
	return Preferences{SoundVolume: 0.8}
}

// SettingsManager 读写玩家偏好
//
// store 为 nil 时只在内存中保存（gdata 不可用的平台或测试）。
type SettingsManager struct {
	store *gdata.Manager
	prefs Preferences
}

// NewSettingsManager 创建设置管理器并加载已保存的偏好
//
// 加载失败只记录警告并使用默认偏好，error 保留给调用方统一处理。
func NewSettingsManager(store *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{store: store, prefs: DefaultPreferences()}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm, nil
}

// Load 重新读取已保存的偏好，缺失的字段保持默认值
func (sm *SettingsManager) Load() error {
	sm.prefs = DefaultPreferences()
	if sm.store == nil || !sm.store.ObjectPropExists(preferencesObject, preferencesProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(preferencesObject, preferencesProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	loaded := DefaultPreferences()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	sm.prefs = loaded
	return nil
}

// Save 写回当前偏好
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(preferencesObject, preferencesProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	log.Printf("[SettingsManager] Saved %+v", sm.prefs)
	return nil
}

// ShowColliders 是否绘制碰撞体
func (sm *SettingsManager) ShowColliders() bool {
	return sm.prefs.ShowColliders
}

// SetShowColliders 修改碰撞体绘制开关并立即保存，值未变化时不写入
func (sm *SettingsManager) SetShowColliders(show bool) error {
	if sm.prefs.ShowColliders == show {
		return nil
	}
	sm.prefs.ShowColliders = show
	return sm.Save()
}

// SoundVolume 音效音量
func (sm *SettingsManager) SoundVolume() float64 {
	return sm.prefs.SoundVolume
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
