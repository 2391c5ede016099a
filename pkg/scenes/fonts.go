package scenes

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gonewx/pong/pkg/game"
)

// 字号（像素）
const (
	LargeFontSize = 36
	SmallFontSize = 20
)

// Fonts 场景共用的字体
type Fonts struct {
	Large *text.GoTextFace
	Small *text.GoTextFace
}

// LoadFonts 从内置的 Go Regular 字体创建两种字号
func LoadFonts() (*Fonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Fonts{
		Large: &text.GoTextFace{Source: source, Size: LargeFontSize},
		Small: &text.GoTextFace{Source: source, Size: SmallFontSize},
	}, nil
}

// Face 返回字号档位对应的字体
func (f *Fonts) Face(size game.TextSize) *text.GoTextFace {
	if size == game.TextLarge {
		return f.Large
	}
	return f.Small
}
