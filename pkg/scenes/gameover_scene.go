package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/pong/pkg/game"
)

// GameOverScene 结束界面
type GameOverScene struct {
	fonts *Fonts
}

// NewGameOverScene 创建结束界面
func NewGameOverScene(fonts *Fonts) *GameOverScene {
	return &GameOverScene{fonts: fonts}
}

func (s *GameOverScene) Draw(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(backgroundColor)
	drawLines(screen, s.fonts, game.ScreenText(snap))
}
