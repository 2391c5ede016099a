package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/pong/pkg/game"
)

// StartScene 开始界面
type StartScene struct {
	fonts *Fonts
}

// NewStartScene 创建开始界面
func NewStartScene(fonts *Fonts) *StartScene {
	return &StartScene{fonts: fonts}
}

// Draw 绘制标题、操作说明和 AI 状态
func (s *StartScene) Draw(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(backgroundColor)
	drawLines(screen, s.fonts, game.ScreenText(snap))
}
