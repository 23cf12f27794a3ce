package game

import "fmt"

// PauseMode 全局暂停模式
type PauseMode int

const (
	PauseWelcome PauseMode = iota
	PauseHelp
	PauseRunning
	PauseManuallyPaused
	PauseLostVisibility
	PauseGameOver
)

func (m PauseMode) String() string {
	switch m {
	case PauseWelcome:
		return "welcome"
	case PauseHelp:
		return "help"
	case PauseRunning:
		return "running"
	case PauseManuallyPaused:
		return "manually-paused"
	case PauseLostVisibility:
		return "lost-visibility"
	case PauseGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("PauseMode(%d)", int(m))
	}
}

// ParsePauseMode 解析配置中的初始模式
func ParsePauseMode(s string) (PauseMode, error) {
	switch s {
	case "welcome":
		return PauseWelcome, nil
	case "help":
		return PauseHelp, nil
	case "running":
		return PauseRunning, nil
	}
	return PauseWelcome, fmt.Errorf("unknown pause mode %q", s)
}

// PauseState 暂停状态
//
// 失去可见性时记录时间戳与之前的模式，恢复时原样还原。
// Previous 只在 Mode == PauseLostVisibility 时有效，且自身永远不是 PauseLostVisibility。
type PauseState struct {
	Mode     PauseMode
	LostAt   float64
	Previous PauseMode
}

// NewPauseState 以指定模式开始
func NewPauseState(mode PauseMode) PauseState {
	return PauseState{Mode: mode}
}

// IsRunning 模拟是否推进
func (p *PauseState) IsRunning() bool {
	return p.Mode == PauseRunning
}

// TogglePause 在运行与手动暂停之间切换，其他模式下无效果
func (p *PauseState) TogglePause() bool {
	switch p.Mode {
	case PauseRunning:
		p.Mode = PauseManuallyPaused
		return true
	case PauseManuallyPaused:
		p.Mode = PauseRunning
		return true
	}
	return false
}

// Start 从欢迎或帮助界面进入运行
func (p *PauseState) Start() bool {
	if p.Mode == PauseWelcome || p.Mode == PauseHelp {
		p.Mode = PauseRunning
		return true
	}
	return false
}

// ToggleHelp 在欢迎与帮助界面之间切换
func (p *PauseState) ToggleHelp() bool {
	switch p.Mode {
	case PauseWelcome:
		p.Mode = PauseHelp
		return true
	case PauseHelp:
		p.Mode = PauseWelcome
		return true
	}
	return false
}

// SetGameOver 进入游戏结束
func (p *PauseState) SetGameOver() {
	p.Mode = PauseGameOver
}

// LoseVisibility 窗口失去可见性
//
// 已处于失去可见性状态时不再嵌套，返回 false。
func (p *PauseState) LoseVisibility(now float64) bool {
	if p.Mode == PauseLostVisibility {
		return false
	}
	p.Previous = p.Mode
	p.LostAt = now
	p.Mode = PauseLostVisibility
	return true
}

// RestoreVisibility 恢复可见性并还原之前的模式
//
// 返回失去可见性的时长（毫秒），未处于该状态时返回 false。
func (p *PauseState) RestoreVisibility(now float64) (float64, bool) {
	if p.Mode != PauseLostVisibility {
		return 0, false
	}
	p.Mode = p.Previous
	lost := now - p.LostAt
	if lost < 0 {
		lost = 0
	}
	p.LostAt = 0
	return lost, true
}
