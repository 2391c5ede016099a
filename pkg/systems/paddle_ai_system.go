package systems

import "github.com/gonewx/pong/pkg/components"

// PaddleAISystem 单轴追球 AI
//
// 比较球心与球拍中心的 y 坐标，超出死区就以固定速度追赶。
// Speed 必须小于玩家球拍速度，AI 因此可以被击败。
type PaddleAISystem struct {
	Speed    int // 追赶速度（像素/tick）
	DeadZone int // 死区半宽（像素），防止抖动
}

// NewPaddleAISystem 创建 AI 系统
func NewPaddleAISystem(speed, deadZone int) *PaddleAISystem {
	return &PaddleAISystem{
		Speed:    speed,
		DeadZone: deadZone,
	}
}

// Decide 根据球心和球拍中心决定移动方向
func (s *PaddleAISystem) Decide(ballCenterY, paddleCenterY int) components.MoveDirection {
	switch {
	case ballCenterY < paddleCenterY-s.DeadZone:
		return components.MoveUp
	case ballCenterY > paddleCenterY+s.DeadZone:
		return components.MoveDown
	default:
		return components.MoveNone
	}
}

// Update 设置球拍速度，不移动球拍
func (s *PaddleAISystem) Update(ball *components.Ball, paddle *components.Paddle) {
	paddle.Steer(s.Decide(ball.CenterY(), paddle.CenterY()), s.Speed)
}
