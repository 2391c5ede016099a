package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/pong/pkg/game"
)

// PlayScene 比赛画面：中线、球拍、球和比分
type PlayScene struct {
	fonts *Fonts
}

// NewPlayScene 创建比赛画面
func NewPlayScene(fonts *Fonts) *PlayScene {
	return &PlayScene{fonts: fonts}
}

func (s *PlayScene) Draw(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(backgroundColor)

	for _, dash := range game.CenterDashes(snap.Width, snap.Height) {
		fillRect(screen, dash)
	}
	fillRect(screen, snap.LeftPaddle)
	fillRect(screen, snap.RightPaddle)
	fillEllipse(screen, snap.Ball)

	drawLines(screen, s.fonts, game.ScreenText(snap))
}
