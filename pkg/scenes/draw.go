package scenes

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/pong/pkg/game"
)

var (
	backgroundColor = color.Black
	foregroundColor = color.White
)

func fillRect(screen *ebiten.Image, r image.Rectangle) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()), foregroundColor, false)
}

// fillEllipse 球按内切圆绘制
func fillEllipse(screen *ebiten.Image, r image.Rectangle) {
	cx := float32(r.Min.X) + float32(r.Dx())/2
	cy := float32(r.Min.Y) + float32(r.Dy())/2
	radius := float32(min(r.Dx(), r.Dy())) / 2
	vector.DrawFilledCircle(screen, cx, cy, radius, foregroundColor, true)
}

// drawLines 绘制居中文字
func drawLines(screen *ebiten.Image, fonts *Fonts, lines []game.TextLine) {
	for _, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(l.CenterX), float64(l.CenterY))
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(foregroundColor)
		text.Draw(screen, l.Text, fonts.Face(l.Size), op)
	}
}
