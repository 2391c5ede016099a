package components

import "image"

// MoveDirection 球拍的竖直移动意图
type MoveDirection int

const (
	// MoveNone 停止
	MoveNone MoveDirection = iota
	// MoveUp 向上移动（y 减小）
	MoveUp
	// MoveDown 向下移动（y 增大）
	MoveDown
)

// Side 场地的左右两侧
type Side int

const (
	// SideNone 与侧别无关
	SideNone Side = iota
	SideLeft
	SideRight
)

// String 返回侧别名称，用于日志
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Paddle 只能竖直移动的球拍
//
// X 坐标在创建时固定；Y 坐标为整数像素，每次移动后被限制在 [0, boundsHeight] 内。
// Velocity 是有符号的每 tick 位移量，被夹紧时保持不变，下一 tick 继续使用。
type Paddle struct {
	Rect     image.Rectangle // 球拍矩形（像素）
	Velocity int             // 当前竖直速度（像素/tick）

	boundsHeight int // 场地高度
}

// NewPaddle 创建球拍
//
// 参数：
//   - x, y: 左上角坐标
//   - width, height: 球拍尺寸
//   - boundsHeight: 场地高度，用于夹紧
func NewPaddle(x, y, width, height, boundsHeight int) *Paddle {
	return &Paddle{
		Rect:         image.Rect(x, y, x+width, y+height),
		boundsHeight: boundsHeight,
	}
}

// Steer 根据移动意图设置速度
func (p *Paddle) Steer(dir MoveDirection, speed int) {
	switch dir {
	case MoveUp:
		p.Velocity = -speed
	case MoveDown:
		p.Velocity = speed
	default:
		p.Velocity = 0
	}
}

// Move 按当前速度移动一次，并把球拍夹回场地内
func (p *Paddle) Move() {
	p.Rect = p.Rect.Add(image.Pt(0, p.Velocity))

	if p.Rect.Min.Y < 0 {
		p.SetTop(0)
	}
	if p.Rect.Max.Y > p.boundsHeight {
		p.SetTop(p.boundsHeight - p.Rect.Dy())
	}
}

// SetTop 把球拍上边缘放到 y，尺寸不变
func (p *Paddle) SetTop(y int) {
	p.Rect = p.Rect.Add(image.Pt(0, y-p.Rect.Min.Y))
}

// CenterY 返回球拍中心的 y 坐标（整数除法，与绘制矩形一致）
func (p *Paddle) CenterY() int {
	return p.Rect.Min.Y + p.Rect.Dy()/2
}

// Height 返回球拍高度
func (p *Paddle) Height() int {
	return p.Rect.Dy()
}
