package components

import (
	"image"
	"math/rand"
)

// ServeDirection 发球的水平方向
type ServeDirection int

const (
	// ServeRandom 随机选择左右
	ServeRandom ServeDirection = 0
	// ServeLeft 向左发球（VX < 0）
	ServeLeft ServeDirection = -1
	// ServeRight 向右发球（VX > 0）
	ServeRight ServeDirection = 1
)

// Ball 球
//
// X、Y 是左上角的实数坐标，是积分的唯一状态；碰撞和绘制使用的整数矩形
// 每次由 Rect() 截断得到，截断误差会在 tick 之间累积，这是有意保留的。
type Ball struct {
	X, Y   float64 // 左上角实数坐标
	VX, VY float64 // 速度（像素/tick）
	Size   int     // 正方形边长

	BaseSpeed float64 // 基础速度，|VX| 始终等于它
	ServeMin  float64 // 发球竖直速度倍率下限
	ServeMax  float64 // 发球竖直速度倍率上限

	bounds image.Point // 场地宽高
}

// NewBall 创建球，调用方随后需要 Reset 发球
func NewBall(size int, baseSpeed, serveMin, serveMax float64, width, height int) *Ball {
	return &Ball{
		Size:      size,
		BaseSpeed: baseSpeed,
		ServeMin:  serveMin,
		ServeMax:  serveMax,
		bounds:    image.Pt(width, height),
	}
}

// Rect 返回由实数坐标截断得到的整数矩形
func (b *Ball) Rect() image.Rectangle {
	x, y := int(b.X), int(b.Y)
	return image.Rect(x, y, x+b.Size, y+b.Size)
}

// CenterY 返回整数矩形中心的 y 坐标
func (b *Ball) CenterY() int {
	return int(b.Y) + b.Size/2
}

// Reset 把球放回场地中心并发球
//
// 水平速度恒为 ±BaseSpeed；竖直速度方向随机，大小为
// BaseSpeed * uniform(ServeMin, ServeMax)。
func (b *Ball) Reset(dir ServeDirection, rng *rand.Rand) {
	cx, cy := b.bounds.X/2, b.bounds.Y/2
	b.X = float64(cx - b.Size/2)
	b.Y = float64(cy - b.Size/2)

	if dir == ServeRandom {
		dir = ServeLeft
		if rng.Intn(2) == 1 {
			dir = ServeRight
		}
	}
	signY := -1.0
	if rng.Intn(2) == 1 {
		signY = 1.0
	}
	factor := b.ServeMin + (b.ServeMax-b.ServeMin)*rng.Float64()

	b.VX = b.BaseSpeed * float64(dir)
	b.VY = b.BaseSpeed * signY * factor
}

// Move 积分一次位置，处理上下边界反弹
//
// 左右边界不反弹，出界由计分系统处理。
// 返回是否发生了上下反弹。
func (b *Ball) Move() bool {
	b.X += b.VX
	b.Y += b.VY

	bounced := false
	r := b.Rect()
	if r.Min.Y <= 0 {
		b.Y = 0
		b.VY = -b.VY
		bounced = true
		r = b.Rect()
	}
	if r.Max.Y >= b.bounds.Y {
		b.Y = float64(b.bounds.Y - b.Size)
		b.VY = -b.VY
		bounced = true
	}
	return bounced
}

// SetLeft 把球的左边缘对齐到整数 x，并同步实数坐标
func (b *Ball) SetLeft(x int) {
	b.X = float64(x)
}

// SetRight 把球的右边缘对齐到整数 x，并同步实数坐标
func (b *Ball) SetRight(x int) {
	b.X = float64(x - b.Size)
}
