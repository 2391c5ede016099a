package game

import "github.com/gonewx/pong/pkg/components"

// EventType 会话在一次 Update 中产生的事件类型
type EventType uint8

const (
	EventPhaseChanged EventType = iota
	EventServe
	EventPaddleHit
	EventWallBounce
	EventPointScored
	EventGameOver
	EventAIToggled
	EventQuit
)

// String returns human-readable event type
func (t EventType) String() string {
	switch t {
	case EventPhaseChanged:
		return "phase_changed"
	case EventServe:
		return "serve"
	case EventPaddleHit:
		return "paddle_hit"
	case EventWallBounce:
		return "wall_bounce"
	case EventPointScored:
		return "point_scored"
	case EventGameOver:
		return "game_over"
	case EventAIToggled:
		return "ai_toggled"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event 一次事件
//
// Side 只对 EventPaddleHit（被击中的球拍）和 EventPointScored（得分方）有意义，
// 其余事件为 SideNone。
type Event struct {
	Type EventType
	Tick uint64
	Side components.Side
}
