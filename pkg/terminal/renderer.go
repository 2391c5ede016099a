package terminal

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/pong/pkg/game"
)

const (
	paddleRune = '█'
	ballRune   = '●'
	dashRune   = '│'
)

var (
	fieldStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	titleStyle = fieldStyle.Bold(true)
	hintStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
)

// Renderer 把逻辑坐标的快照按比例缩放到终端字符格
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer 创建渲染器
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw 绘制一帧并刷新屏幕
func (r *Renderer) Draw(snap game.Snapshot) {
	r.screen.Clear()
	r.screen.Fill(' ', fieldStyle)

	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 || snap.Width <= 0 || snap.Height <= 0 {
		r.screen.Show()
		return
	}
	sc := scaler{cols: cols, rows: rows, width: snap.Width, height: snap.Height}

	if snap.Phase == game.PhasePlaying {
		for _, dash := range game.CenterDashes(snap.Width, snap.Height) {
			r.fillRect(sc, dash, dashRune, hintStyle)
		}
		r.fillRect(sc, snap.LeftPaddle, paddleRune, fieldStyle)
		r.fillRect(sc, snap.RightPaddle, paddleRune, fieldStyle)
		r.fillRect(sc, snap.Ball, ballRune, fieldStyle)
	}

	for _, line := range game.ScreenText(snap) {
		style := hintStyle
		if line.Size == game.TextLarge {
			style = titleStyle
		}
		r.drawCentered(sc.col(line.CenterX), sc.row(line.CenterY), line.Text, style)
	}

	r.screen.Show()
}

func (r *Renderer) fillRect(sc scaler, rect image.Rectangle, ch rune, style tcell.Style) {
	c0, c1 := sc.colSpan(rect.Min.X, rect.Max.X)
	r0, r1 := sc.rowSpan(rect.Min.Y, rect.Max.Y)
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) drawCentered(cx, y int, text string, style tcell.Style) {
	runes := []rune(text)
	x := cx - len(runes)/2
	for i, ch := range runes {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// scaler 逻辑像素到字符格的换算
type scaler struct {
	cols, rows    int
	width, height int
}

func (s scaler) col(x int) int {
	return clampInt(x*s.cols/s.width, 0, s.cols-1)
}

func (s scaler) row(y int) int {
	return clampInt(y*s.rows/s.height, 0, s.rows-1)
}

// colSpan 返回覆盖 [min, max) 的字符列，至少一列
func (s scaler) colSpan(min, max int) (int, int) {
	lo := s.col(min)
	hi := s.col(max - 1)
	return lo, maxInt(lo, hi)
}

func (s scaler) rowSpan(min, max int) (int, int) {
	lo := s.row(min)
	hi := s.row(max - 1)
	return lo, maxInt(lo, hi)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
