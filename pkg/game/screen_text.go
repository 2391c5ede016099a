package game

import (
	"fmt"
	"image"
	"strconv"
)

// TextSize 文字字号档位，具体像素由各前端决定
type TextSize int

const (
	TextLarge TextSize = iota // 标题、比分
	TextSmall                 // 提示
)

// TextLine 一行居中文字
type TextLine struct {
	Text    string
	CenterX int
	CenterY int
	Size    TextSize
}

// 比分顶部距离和大号字半高，用于把比分摆在场地上方
const (
	scoreTop       = 20
	largeTextHalfH = 18
	dashHeight     = 20
	dashWidth      = 4
)

// ScreenText 返回当前阶段要显示的文字
//
// 开始界面：标题、开始提示、操作说明、胜利条件、AI 状态
// 比赛中：左右比分分别位于 W/4 和 3W/4
// 结束界面：获胜方和返回/退出提示
func ScreenText(snap Snapshot) []TextLine {
	cx, cy := snap.Width/2, snap.Height/2

	switch snap.Phase {
	case PhaseStart:
		aiState := "OFF"
		if snap.AIEnabled {
			aiState = "ON"
		}
		return []TextLine{
			{"PONG", cx, cy - 80, TextLarge},
			{"Press SPACE or ENTER to start", cx, cy - 20, TextSmall},
			{"Left: W/S   Right: Up/Down   ESC to quit", cx, cy + 20, TextSmall},
			{fmt.Sprintf("First to %d wins", snap.WinningScore), cx, cy + 60, TextSmall},
			{"Press A to toggle AI (currently: " + aiState + ")", cx, cy + 100, TextSmall},
		}
	case PhasePlaying:
		y := scoreTop + largeTextHalfH
		return []TextLine{
			{strconv.Itoa(snap.LeftScore), snap.Width / 4, y, TextLarge},
			{strconv.Itoa(snap.RightScore), 3 * snap.Width / 4, y, TextLarge},
		}
	case PhaseGameOver:
		return []TextLine{
			{snap.Winner.String() + " wins!", cx, cy - 20, TextLarge},
			{"Press SPACE to go to start", cx, cy + 30, TextSmall},
			{"Press ESC to quit", cx, cy + 60, TextSmall},
		}
	default:
		return nil
	}
}

// CenterDashes 返回中线虚线的每一段
func CenterDashes(width, height int) []image.Rectangle {
	x := width/2 - dashWidth/2
	var dashes []image.Rectangle
	for y := 0; y < height; y += dashHeight * 2 {
		dashes = append(dashes, image.Rect(x, y, x+dashWidth, y+dashHeight))
	}
	return dashes
}
