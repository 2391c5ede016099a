package game

// Phase 会话所处的界面阶段
type Phase int

const (
	// PhaseStart 开始界面
	PhaseStart Phase = iota
	// PhasePlaying 比赛进行中
	PhasePlaying
	// PhaseGameOver 比赛结束界面
	PhaseGameOver
)

// String 返回阶段名称，用于日志
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Winner 获胜方
type Winner int

const (
	WinnerNone Winner = iota
	WinnerLeftPlayer
	WinnerRightPlayer
	WinnerComputer
)

// String 返回界面上显示的获胜方名称
func (w Winner) String() string {
	switch w {
	case WinnerLeftPlayer:
		return "Left player"
	case WinnerRightPlayer:
		return "Right player"
	case WinnerComputer:
		return "Computer"
	default:
		return ""
	}
}
