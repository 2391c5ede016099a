package game

import (
	"log"
	"math/rand"
	"time"

	"golang.org/x/time/rate"

	"github.com/gonewx/pong/pkg/components"
	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/systems"
)

// GameSession 一局游戏的全部可变状态和状态机
//
// 会话拥有两个球拍、球、比分、阶段和 AI 开关，每帧由 Update 推进一次。
// 所有状态只在 Update 中修改，调用方只能在同一个 goroutine 里使用会话。
type GameSession struct {
	cfg *config.GameConfig
	rng *rand.Rand

	LeftPaddle  *components.Paddle
	RightPaddle *components.Paddle
	Ball        *components.Ball

	LeftScore  int
	RightScore int

	phase     Phase
	winner    Winner
	aiEnabled bool
	quit      bool

	aiSystem        *systems.PaddleAISystem
	collisionSystem *systems.CollisionSystem
	scoringSystem   *systems.ScoringSystem

	// AI 开关防抖：上次接受后 ToggleDebounce 内的开关意图被忽略
	toggleLimiter *rate.Limiter

	tick   uint64
	events []Event
}

// NewGameSession 创建会话，初始处于开始界面
//
// 参数：
//   - cfg: 已验证的游戏配置
//   - rng: 发球用的随机源，测试时可传入固定种子
func NewGameSession(cfg *config.GameConfig, rng *rand.Rand) *GameSession {
	startY := cfg.PaddleStartY()
	s := &GameSession{
		cfg: cfg,
		rng: rng,
		LeftPaddle: components.NewPaddle(cfg.LeftPaddleX(), startY,
			cfg.Paddle.Width, cfg.Paddle.Height, cfg.Screen.Height),
		RightPaddle: components.NewPaddle(cfg.RightPaddleX(), startY,
			cfg.Paddle.Width, cfg.Paddle.Height, cfg.Screen.Height),
		Ball: components.NewBall(cfg.Ball.Size, cfg.Ball.Speed, cfg.Ball.ServeMin, cfg.Ball.ServeMax,
			cfg.Screen.Width, cfg.Screen.Height),
		phase:           PhaseStart,
		aiSystem:        systems.NewPaddleAISystem(cfg.AI.Speed, cfg.AI.DeadZone),
		collisionSystem: systems.NewCollisionSystem(cfg.Rules.DeflectionFactor),
		scoringSystem:   systems.NewScoringSystem(cfg.Screen.Width),
		toggleLimiter:   rate.NewLimiter(rate.Every(cfg.ToggleDebounce()), 1),
	}
	s.Ball.Reset(components.ServeRandom, rng)
	return s
}

// Update 推进一帧
//
// 顺序：退出 → 确认 → AI 开关 → 球拍转向 → （仅比赛中）移动、碰撞、计分。
// now 用于 AI 开关防抖，应来自单调时钟。
func (s *GameSession) Update(in Intents, now time.Time) {
	s.tick++
	s.events = s.events[:0]

	if in.Quit {
		s.quit = true
		s.emit(EventQuit, components.SideNone)
		log.Printf("[GameSession] Quit requested in phase %s", s.phase)
		return
	}

	if in.Confirm {
		s.handleConfirm()
	}
	if in.ToggleAI {
		s.handleToggleAI(now)
	}

	s.LeftPaddle.Steer(moveDirection(in.LeftUp, in.LeftDown), s.cfg.Paddle.Speed)
	if !s.aiEnabled {
		s.RightPaddle.Steer(moveDirection(in.RightUp, in.RightDown), s.cfg.Paddle.Speed)
	}

	if s.phase == PhasePlaying {
		s.updatePlaying()
	}
}

func (s *GameSession) handleConfirm() {
	switch s.phase {
	case PhaseStart:
		s.LeftScore, s.RightScore = 0, 0
		s.winner = WinnerNone
		s.setPhase(PhasePlaying)
		s.serve(components.ServeRandom)
	case PhaseGameOver:
		s.setPhase(PhaseStart)
	}
}

func (s *GameSession) handleToggleAI(now time.Time) {
	if s.phase == PhasePlaying {
		return
	}
	if !s.toggleLimiter.AllowN(now, 1) {
		log.Printf("[GameSession] AI toggle ignored (debounce)")
		return
	}
	s.aiEnabled = !s.aiEnabled
	s.emit(EventAIToggled, components.SideNone)
	log.Printf("[GameSession] AI enabled: %v", s.aiEnabled)
}

func (s *GameSession) updatePlaying() {
	s.LeftPaddle.Move()
	if s.aiEnabled {
		s.aiSystem.Update(s.Ball, s.RightPaddle)
	}
	s.RightPaddle.Move()

	if s.Ball.Move() {
		s.emit(EventWallBounce, components.SideNone)
	}

	if s.collisionSystem.Resolve(s.Ball, s.LeftPaddle, components.SideLeft) {
		s.emit(EventPaddleHit, components.SideLeft)
	}
	if s.collisionSystem.Resolve(s.Ball, s.RightPaddle, components.SideRight) {
		s.emit(EventPaddleHit, components.SideRight)
	}

	if s.scoringSystem.ExitedLeft(s.Ball) {
		s.RightScore++
		s.emit(EventPointScored, components.SideRight)
		log.Printf("[GameSession] Right scores: %d-%d", s.LeftScore, s.RightScore)
		if s.RightScore >= s.cfg.Rules.WinningScore {
			winner := WinnerRightPlayer
			if s.aiEnabled {
				winner = WinnerComputer
			}
			s.finish(winner)
		}
		s.serve(components.ServeRight)
	}
	if s.scoringSystem.ExitedRight(s.Ball) {
		s.LeftScore++
		s.emit(EventPointScored, components.SideLeft)
		log.Printf("[GameSession] Left scores: %d-%d", s.LeftScore, s.RightScore)
		if s.LeftScore >= s.cfg.Rules.WinningScore {
			s.finish(WinnerLeftPlayer)
		}
		s.serve(components.ServeLeft)
	}
}

func (s *GameSession) serve(dir components.ServeDirection) {
	s.Ball.Reset(dir, s.rng)
	s.emit(EventServe, components.SideNone)
}

func (s *GameSession) finish(winner Winner) {
	s.winner = winner
	s.setPhase(PhaseGameOver)
	s.emit(EventGameOver, components.SideNone)
	log.Printf("[GameSession] %s wins %d-%d", winner, s.LeftScore, s.RightScore)
}

func (s *GameSession) setPhase(p Phase) {
	if s.phase == p {
		return
	}
	log.Printf("[GameSession] Phase %s -> %s", s.phase, p)
	s.phase = p
	s.emit(EventPhaseChanged, components.SideNone)
}

func (s *GameSession) emit(t EventType, side components.Side) {
	s.events = append(s.events, Event{Type: t, Tick: s.tick, Side: side})
}

// moveDirection 上键优先
func moveDirection(up, down bool) components.MoveDirection {
	switch {
	case up:
		return components.MoveUp
	case down:
		return components.MoveDown
	default:
		return components.MoveNone
	}
}

// Snapshot 返回当前状态的只读副本
func (s *GameSession) Snapshot() Snapshot {
	return Snapshot{
		Phase:        s.phase,
		Width:        s.cfg.Screen.Width,
		Height:       s.cfg.Screen.Height,
		LeftPaddle:   s.LeftPaddle.Rect,
		RightPaddle:  s.RightPaddle.Rect,
		Ball:         s.Ball.Rect(),
		LeftScore:    s.LeftScore,
		RightScore:   s.RightScore,
		AIEnabled:    s.aiEnabled,
		Winner:       s.winner,
		WinningScore: s.cfg.Rules.WinningScore,
	}
}

// Events 返回最近一次 Update 产生的事件，下一次 Update 时失效
func (s *GameSession) Events() []Event {
	return s.events
}

// Phase 返回当前阶段
func (s *GameSession) Phase() Phase {
	return s.phase
}

// Winner 返回获胜方，仅在 PhaseGameOver 时有意义
func (s *GameSession) Winner() Winner {
	return s.winner
}

// AIEnabled 返回 AI 是否接管右球拍
func (s *GameSession) AIEnabled() bool {
	return s.aiEnabled
}

// SetAIEnabled 在比赛外直接设置 AI 开关（启动参数使用），不受防抖限制
func (s *GameSession) SetAIEnabled(enabled bool) {
	if s.phase == PhasePlaying {
		return
	}
	s.aiEnabled = enabled
}

// Finished 返回是否收到了退出意图
func (s *GameSession) Finished() bool {
	return s.quit
}

// Tick 返回已执行的 Update 次数
func (s *GameSession) Tick() uint64 {
	return s.tick
}

// Config 返回会话使用的配置
func (s *GameSession) Config() *config.GameConfig {
	return s.cfg
}
