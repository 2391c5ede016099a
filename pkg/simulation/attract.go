// Package simulation 无窗口地驱动会话，两侧球拍都由 AI 控制
package simulation

import (
	"log"
	"time"

	"github.com/gonewx/pong/pkg/components"
	"github.com/gonewx/pong/pkg/game"
	"github.com/gonewx/pong/pkg/systems"
)

// Stats 一次模拟的统计
type Stats struct {
	Ticks       uint64
	Games       int
	PaddleHits  int
	WallBounces int
	Points      int
	LeftWins    int
	RightWins   int // 右侧由电脑控制，计入 Computer 获胜
}

// AttractMode 演示模式
//
// 右球拍使用会话自带的 AI；左球拍由同样的追球算法生成按键意图，
// 以玩家速度移动。时间按固定步长推进，结果只取决于随机种子。
type AttractMode struct {
	session *game.GameSession
	leftAI  *systems.PaddleAISystem
	restart bool

	clock time.Time
	step  time.Duration
	stats Stats
}

// NewAttractMode 创建演示模式并打开右侧 AI
//
// restart 为 true 时一局结束后自动开始下一局，否则停在结束界面。
func NewAttractMode(session *game.GameSession, restart bool) *AttractMode {
	cfg := session.Config()
	session.SetAIEnabled(true)
	return &AttractMode{
		session: session,
		leftAI:  systems.NewPaddleAISystem(cfg.Paddle.Speed, cfg.AI.DeadZone),
		restart: restart,
		clock:   time.Unix(0, 0),
		step:    cfg.TickDuration(),
	}
}

// Intents 根据当前状态生成本帧意图
func (a *AttractMode) Intents() game.Intents {
	switch a.session.Phase() {
	case game.PhaseStart:
		return game.Intents{Confirm: true}
	case game.PhaseGameOver:
		return game.Intents{Confirm: a.restart}
	}

	s := a.session
	switch a.leftAI.Decide(s.Ball.CenterY(), s.LeftPaddle.CenterY()) {
	case components.MoveUp:
		return game.Intents{LeftUp: true}
	case components.MoveDown:
		return game.Intents{LeftDown: true}
	default:
		return game.Intents{}
	}
}

// Step 推进一帧，返回演示是否应该结束
func (a *AttractMode) Step() bool {
	a.clock = a.clock.Add(a.step)
	a.session.Update(a.Intents(), a.clock)
	a.stats.Ticks = a.session.Tick()

	for _, e := range a.session.Events() {
		switch e.Type {
		case game.EventPaddleHit:
			a.stats.PaddleHits++
		case game.EventWallBounce:
			a.stats.WallBounces++
		case game.EventPointScored:
			a.stats.Points++
		case game.EventGameOver:
			a.stats.Games++
			if a.session.Winner() == game.WinnerLeftPlayer {
				a.stats.LeftWins++
			} else {
				a.stats.RightWins++
			}
			log.Printf("[Attract] Game %d over: %s wins %d-%d (tick %d)",
				a.stats.Games, a.session.Winner(), a.session.LeftScore, a.session.RightScore, e.Tick)
		}
	}

	return a.session.Phase() == game.PhaseGameOver && !a.restart
}

// Run 最多运行 maxTicks 帧
func (a *AttractMode) Run(maxTicks int) Stats {
	for i := 0; i < maxTicks; i++ {
		if a.Step() {
			break
		}
	}
	return a.stats
}

// Stats 返回当前统计
func (a *AttractMode) Stats() Stats {
	return a.stats
}
