// Package scenes 负责窗口版每个阶段的绘制
//
// 场景只读取会话快照，不修改状态；阶段切换由会话驱动，
// SceneManager 按快照中的阶段选择场景。
package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/pong/pkg/game"
)

// Scene 一个阶段的绘制逻辑
type Scene interface {
	// Draw 把快照绘制到 screen
	Draw(screen *ebiten.Image, snap game.Snapshot)
}
