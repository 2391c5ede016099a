package systems

import "github.com/gonewx/pong/pkg/components"

// ScoringSystem 判定球是否从左右边界出界
type ScoringSystem struct {
	Width int // 场地宽度
}

// NewScoringSystem 创建计分系统
func NewScoringSystem(width int) *ScoringSystem {
	return &ScoringSystem{Width: width}
}

// ExitedLeft 球的左边缘到达或越过左边界，右方得分
func (s *ScoringSystem) ExitedLeft(ball *components.Ball) bool {
	return ball.Rect().Min.X <= 0
}

// ExitedRight 球的右边缘到达或越过右边界，左方得分
func (s *ScoringSystem) ExitedRight(ball *components.Ball) bool {
	return ball.Rect().Max.X >= s.Width
}
