package systems

import (
	"testing"

	"github.com/gonewx/pong/pkg/components"
)

func TestPaddleAIDecide(t *testing.T) {
	ai := NewPaddleAISystem(4, 5)

	tests := []struct {
		name    string
		ballY   int
		paddleY int
		want    components.MoveDirection
	}{
		{"above dead zone", 294, 300, components.MoveUp},
		{"dead zone upper edge", 295, 300, components.MoveNone},
		{"centered", 300, 300, components.MoveNone},
		{"dead zone lower edge", 305, 300, components.MoveNone},
		{"below dead zone", 306, 300, components.MoveDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ai.Decide(tt.ballY, tt.paddleY); got != tt.want {
				t.Errorf("Decide(%d, %d) = %v, want %v", tt.ballY, tt.paddleY, got, tt.want)
			}
		})
	}
}

func TestPaddleAIUpdateUsesAISpeed(t *testing.T) {
	ai := NewPaddleAISystem(4, 5)
	ball, _, right := newTestCourt()

	ball.Y = 100 // 球心 108，远高于球拍中心 300
	ai.Update(ball, right)
	if right.Velocity != -4 {
		t.Errorf("expected velocity -4, got %d", right.Velocity)
	}

	ball.Y = 500
	ai.Update(ball, right)
	if right.Velocity != 4 {
		t.Errorf("expected velocity 4, got %d", right.Velocity)
	}

	ball.Y = 294 // 球心 302，在死区内
	ai.Update(ball, right)
	if right.Velocity != 0 {
		t.Errorf("expected velocity 0, got %d", right.Velocity)
	}

	// Update 只设置速度，不移动球拍
	if right.Rect.Min.Y != 250 {
		t.Errorf("paddle moved during Update: %v", right.Rect)
	}
}
