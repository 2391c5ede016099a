package systems

import "github.com/gonewx/pong/pkg/components"

// CollisionSystem 处理球与球拍的碰撞和反弹角度
type CollisionSystem struct {
	// DeflectionFactor 击球偏移量对竖直速度的增益
	DeflectionFactor float64
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(deflectionFactor float64) *CollisionSystem {
	return &CollisionSystem{DeflectionFactor: deflectionFactor}
}

// Resolve 检测球与指定侧球拍的碰撞，碰撞时完成反弹
//
// 碰撞处理：
//  1. 把球贴到球拍朝向场内的一侧（左拍贴右边缘，右拍贴左边缘）
//  2. 实数坐标同步为贴边后的整数坐标
//  3. 水平速度取反
//  4. 竖直速度加上 offset * DeflectionFactor，offset 为击球点相对球拍中心的归一化偏移
//
// 不检查球的运动方向：远离球拍但仍与其重叠的球同样会反弹。
//
// 返回：
//   - bool: 是否发生碰撞
func (s *CollisionSystem) Resolve(ball *components.Ball, paddle *components.Paddle, side components.Side) bool {
	if !ball.Rect().Overlaps(paddle.Rect) {
		return false
	}

	if side == components.SideLeft {
		ball.SetLeft(paddle.Rect.Max.X)
	} else {
		ball.SetRight(paddle.Rect.Min.X)
	}
	ball.VX = -ball.VX

	ball.VY += s.DeflectionOffset(ball, paddle) * s.DeflectionFactor
	return true
}

// DeflectionOffset 返回击球点偏移量，中心为 0，球拍上下边缘约为 ±1
func (s *CollisionSystem) DeflectionOffset(ball *components.Ball, paddle *components.Paddle) float64 {
	return float64(ball.CenterY()-paddle.CenterY()) / (float64(paddle.Height()) / 2)
}
