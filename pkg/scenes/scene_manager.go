package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/pong/pkg/game"
)

// SceneManager 按阶段分派绘制
// 同一时刻只有当前阶段对应的场景被绘制
type SceneManager struct {
	scenes  map[game.Phase]Scene
	current game.Phase
	hasDraw bool
}

// NewSceneManager 创建空的场景管理器，使用 Register 注册场景
func NewSceneManager() *SceneManager {
	return &SceneManager{
		scenes: make(map[game.Phase]Scene),
	}
}

// NewDefaultSceneManager 创建注册了三个标准场景的管理器
func NewDefaultSceneManager(fonts *Fonts) *SceneManager {
	sm := NewSceneManager()
	sm.Register(game.PhaseStart, NewStartScene(fonts))
	sm.Register(game.PhasePlaying, NewPlayScene(fonts))
	sm.Register(game.PhaseGameOver, NewGameOverScene(fonts))
	return sm
}

// Register 为阶段注册场景，重复注册会覆盖
func (sm *SceneManager) Register(phase game.Phase, scene Scene) {
	sm.scenes[phase] = scene
}

// GetScene 返回阶段对应的场景，未注册返回 nil
func (sm *SceneManager) GetScene(phase game.Phase) Scene {
	return sm.scenes[phase]
}

// CurrentPhase 返回最近一次绘制的阶段
func (sm *SceneManager) CurrentPhase() game.Phase {
	return sm.current
}

// Draw 绘制快照所处阶段的场景
// 阶段没有注册场景时什么也不画
func (sm *SceneManager) Draw(screen *ebiten.Image, snap game.Snapshot) {
	if !sm.hasDraw || sm.current != snap.Phase {
		log.Printf("[SceneManager] Switching to scene: %s", snap.Phase)
		sm.current = snap.Phase
		sm.hasDraw = true
	}

	scene, ok := sm.scenes[snap.Phase]
	if !ok {
		return
	}
	scene.Draw(screen, snap)
}
