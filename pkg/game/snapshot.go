package game

import "image"

// Snapshot 渲染层每帧读取的只读状态
// 使用值类型，渲染层持有它不会影响会话
type Snapshot struct {
	Phase Phase

	Width  int
	Height int

	LeftPaddle  image.Rectangle
	RightPaddle image.Rectangle
	Ball        image.Rectangle

	LeftScore  int
	RightScore int

	AIEnabled    bool
	Winner       Winner
	WinningScore int
}
