// Package export 把会话快照渲染成静态图片，用于无窗口环境
package export

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/gonewx/pong/pkg/game"
)

// 字号与窗口版一致
const (
	largeFontSize = 36
	smallFontSize = 20
)

// Renderer 使用 gg 绘制快照
type Renderer struct {
	large font.Face
	small font.Face
}

// NewRenderer 加载内置字体
func NewRenderer() (*Renderer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	large, err := newFace(f, largeFontSize)
	if err != nil {
		return nil, err
	}
	small, err := newFace(f, smallFontSize)
	if err != nil {
		return nil, err
	}
	return &Renderer{large: large, small: small}, nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %.0fpx font face: %w", size, err)
	}
	return face, nil
}

// Render 把快照绘制为图片，尺寸等于快照的逻辑尺寸
func (r *Renderer) Render(snap game.Snapshot) image.Image {
	return r.draw(snap).Image()
}

// WritePNG 把快照编码为 PNG 写入 w
func (r *Renderer) WritePNG(w io.Writer, snap game.Snapshot) error {
	return r.draw(snap).EncodePNG(w)
}

// SavePNG 把快照保存为 PNG 文件
func (r *Renderer) SavePNG(path string, snap game.Snapshot) error {
	if err := r.draw(snap).SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) draw(snap game.Snapshot) *gg.Context {
	dc := gg.NewContext(snap.Width, snap.Height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)

	if snap.Phase == game.PhasePlaying {
		for _, dash := range game.CenterDashes(snap.Width, snap.Height) {
			fillRect(dc, dash)
		}
		fillRect(dc, snap.LeftPaddle)
		fillRect(dc, snap.RightPaddle)

		b := snap.Ball
		dc.DrawEllipse(float64(b.Min.X)+float64(b.Dx())/2, float64(b.Min.Y)+float64(b.Dy())/2,
			float64(b.Dx())/2, float64(b.Dy())/2)
		dc.Fill()
	}

	for _, line := range game.ScreenText(snap) {
		if line.Size == game.TextLarge {
			dc.SetFontFace(r.large)
		} else {
			dc.SetFontFace(r.small)
		}
		dc.DrawStringAnchored(line.Text, float64(line.CenterX), float64(line.CenterY), 0.5, 0.5)
	}
	return dc
}

func fillRect(dc *gg.Context, rect image.Rectangle) {
	dc.DrawRectangle(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()))
	dc.Fill()
}
