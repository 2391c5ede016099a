package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gonewx/pong/pkg/components"
	"github.com/gonewx/pong/pkg/config"
)

var testEpoch = time.Unix(1_700_000_000, 0)

func newTestSession(seed int64) *GameSession {
	return NewGameSession(config.DefaultGameConfig(), rand.New(rand.NewSource(seed)))
}

// startPlaying 从开始界面进入比赛
func startPlaying(t *testing.T, s *GameSession) {
	t.Helper()
	s.Update(Intents{Confirm: true}, testEpoch)
	if s.Phase() != PhasePlaying {
		t.Fatalf("expected phase playing, got %s", s.Phase())
	}
}

func countEvents(events []Event, typ EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func ballCenter(s *GameSession) (int, int) {
	r := s.Ball.Rect()
	return r.Min.X + r.Dx()/2, r.Min.Y + r.Dy()/2
}

func TestNewGameSession(t *testing.T) {
	s := newTestSession(1)

	if s.Phase() != PhaseStart {
		t.Errorf("expected phase start, got %s", s.Phase())
	}
	if s.LeftScore != 0 || s.RightScore != 0 {
		t.Errorf("expected scores 0-0, got %d-%d", s.LeftScore, s.RightScore)
	}
	if s.AIEnabled() {
		t.Error("AI should be disabled initially")
	}
	if s.LeftPaddle.Rect.Min.X != 30 || s.RightPaddle.Rect.Min.X != 858 {
		t.Errorf("unexpected paddle x: %d, %d", s.LeftPaddle.Rect.Min.X, s.RightPaddle.Rect.Min.X)
	}
	if s.LeftPaddle.Rect.Min.Y != 250 || s.RightPaddle.Rect.Min.Y != 250 {
		t.Errorf("paddles should start centered, got %d, %d", s.LeftPaddle.Rect.Min.Y, s.RightPaddle.Rect.Min.Y)
	}
}

// TestConfirmStartsGame 开始界面、AI 关闭时确认 → 比分清零并进入比赛
func TestConfirmStartsGame(t *testing.T) {
	s := newTestSession(1)
	s.LeftScore, s.RightScore = 3, 4

	s.Update(Intents{Confirm: true}, testEpoch)

	if s.Phase() != PhasePlaying {
		t.Fatalf("expected phase playing, got %s", s.Phase())
	}
	if s.LeftScore != 0 || s.RightScore != 0 {
		t.Errorf("expected scores reset to 0-0, got %d-%d", s.LeftScore, s.RightScore)
	}
	if countEvents(s.Events(), EventPhaseChanged) != 1 || countEvents(s.Events(), EventServe) != 1 {
		t.Errorf("expected phase change and serve events, got %+v", s.Events())
	}
}

// TestBallExitRightScoresLeft 球从右边界出界 → 左方得 1 分，球回中心并向左发出
func TestBallExitRightScoresLeft(t *testing.T) {
	s := newTestSession(2)
	startPlaying(t, s)

	s.Ball.X, s.Ball.Y = 901, 300
	s.Update(Intents{}, testEpoch)

	if s.LeftScore != 1 || s.RightScore != 0 {
		t.Fatalf("expected score 1-0, got %d-%d", s.LeftScore, s.RightScore)
	}
	if cx, cy := ballCenter(s); cx != 450 || cy != 300 {
		t.Errorf("expected ball centered at (450,300), got (%d,%d)", cx, cy)
	}
	if s.Ball.VX >= 0 {
		t.Errorf("expected serve toward the left (VX < 0), got %f", s.Ball.VX)
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("expected to stay in playing, got %s", s.Phase())
	}
}

func TestBallExitLeftScoresRight(t *testing.T) {
	s := newTestSession(3)
	startPlaying(t, s)

	s.Ball.X, s.Ball.Y = -1, 300
	s.Ball.VX = -5
	s.Update(Intents{}, testEpoch)

	if s.LeftScore != 0 || s.RightScore != 1 {
		t.Fatalf("expected score 0-1, got %d-%d", s.LeftScore, s.RightScore)
	}
	if s.Ball.VX <= 0 {
		t.Errorf("expected serve toward the right (VX > 0), got %f", s.Ball.VX)
	}
	if countEvents(s.Events(), EventPointScored) != 1 {
		t.Errorf("expected one point event, got %+v", s.Events())
	}
}

// TestWinDetection 达到胜利分数只触发一次结束
func TestWinDetection(t *testing.T) {
	tests := []struct {
		name       string
		aiEnabled  bool
		exitRight  bool
		wantWinner Winner
	}{
		{"left player wins", false, true, WinnerLeftPlayer},
		{"right player wins", false, false, WinnerRightPlayer},
		{"computer wins", true, false, WinnerComputer},
		{"left player beats computer", true, true, WinnerLeftPlayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(4)
			s.SetAIEnabled(tt.aiEnabled)
			startPlaying(t, s)

			s.LeftScore, s.RightScore = 6, 6
			if tt.exitRight {
				s.Ball.X, s.Ball.VX = 901, 5
			} else {
				s.Ball.X, s.Ball.VX = -1, -5
			}
			s.Ball.Y = 300
			s.Update(Intents{}, testEpoch)

			if s.Phase() != PhaseGameOver {
				t.Fatalf("expected phase gameover, got %s", s.Phase())
			}
			if s.Winner() != tt.wantWinner {
				t.Errorf("expected winner %q, got %q", tt.wantWinner, s.Winner())
			}
			if n := countEvents(s.Events(), EventGameOver); n != 1 {
				t.Errorf("expected exactly one game over event, got %d", n)
			}

			// 结束后不再有物理更新和计分
			left, right := s.LeftScore, s.RightScore
			s.Ball.X = 901
			s.Update(Intents{}, testEpoch)
			s.Ball.X = -1
			s.Update(Intents{}, testEpoch)
			if s.LeftScore != left || s.RightScore != right {
				t.Errorf("score changed after game over: %d-%d -> %d-%d", left, right, s.LeftScore, s.RightScore)
			}
			if countEvents(s.Events(), EventGameOver) != 0 {
				t.Error("game over must not fire again")
			}
		})
	}
}

func TestGameOverConfirmReturnsToStart(t *testing.T) {
	s := newTestSession(5)
	startPlaying(t, s)
	s.LeftScore = 6
	s.Ball.X, s.Ball.Y = 901, 300
	s.Update(Intents{}, testEpoch)

	s.Update(Intents{Confirm: true}, testEpoch)
	if s.Phase() != PhaseStart {
		t.Fatalf("expected phase start, got %s", s.Phase())
	}
	// 开始界面保留上一局比分，直到再次确认
	if s.LeftScore != 7 {
		t.Errorf("expected score kept until next start, got %d", s.LeftScore)
	}

	s.Update(Intents{Confirm: true}, testEpoch)
	if s.Phase() != PhasePlaying || s.LeftScore != 0 || s.Winner() != WinnerNone {
		t.Errorf("expected fresh game, got phase %s score %d winner %q", s.Phase(), s.LeftScore, s.Winner())
	}
}

func TestConfirmIgnoredWhilePlaying(t *testing.T) {
	s := newTestSession(6)
	startPlaying(t, s)
	s.LeftScore = 2

	s.Update(Intents{Confirm: true}, testEpoch)
	if s.Phase() != PhasePlaying || s.LeftScore != 2 {
		t.Errorf("confirm must be ignored while playing, got phase %s score %d", s.Phase(), s.LeftScore)
	}
}

// TestToggleAIDebounce 结束界面切换 AI 后，防抖窗口内的第二次切换被忽略
func TestToggleAIDebounce(t *testing.T) {
	s := newTestSession(7)
	startPlaying(t, s)
	s.RightScore = 6
	s.Ball.X, s.Ball.Y = -1, 300
	s.Ball.VX = -5
	s.Update(Intents{}, testEpoch)
	if s.Phase() != PhaseGameOver {
		t.Fatalf("expected phase gameover, got %s", s.Phase())
	}

	s.Update(Intents{ToggleAI: true}, testEpoch)
	if !s.AIEnabled() {
		t.Fatal("first toggle should enable AI")
	}
	if countEvents(s.Events(), EventAIToggled) != 1 {
		t.Errorf("expected toggle event, got %+v", s.Events())
	}

	s.Update(Intents{ToggleAI: true}, testEpoch.Add(100*time.Millisecond))
	if !s.AIEnabled() {
		t.Fatal("second toggle within debounce window should be ignored")
	}
	if countEvents(s.Events(), EventAIToggled) != 0 {
		t.Error("ignored toggle must not emit an event")
	}

	s.Update(Intents{ToggleAI: true}, testEpoch.Add(200*time.Millisecond))
	if s.AIEnabled() {
		t.Error("toggle after the debounce window should disable AI")
	}
}

func TestToggleAIIgnoredWhilePlaying(t *testing.T) {
	s := newTestSession(8)
	startPlaying(t, s)

	s.Update(Intents{ToggleAI: true}, testEpoch.Add(time.Second))
	if s.AIEnabled() {
		t.Error("AI toggle must be ignored while playing")
	}

	s.SetAIEnabled(true)
	if s.AIEnabled() {
		t.Error("SetAIEnabled must be ignored while playing")
	}
}

// TestConfirmAndToggleSameTick 同一帧内先处理确认，进入比赛后开关被拒绝
func TestConfirmAndToggleSameTick(t *testing.T) {
	s := newTestSession(9)
	s.Update(Intents{Confirm: true, ToggleAI: true}, testEpoch)

	if s.Phase() != PhasePlaying {
		t.Fatalf("expected phase playing, got %s", s.Phase())
	}
	if s.AIEnabled() {
		t.Error("toggle in the same tick as start must be rejected")
	}
}

func TestQuitFromAnyPhase(t *testing.T) {
	phases := []struct {
		name  string
		setup func(t *testing.T, s *GameSession)
	}{
		{"start", func(t *testing.T, s *GameSession) {}},
		{"playing", startPlaying},
	}

	for _, p := range phases {
		t.Run(p.name, func(t *testing.T) {
			s := newTestSession(10)
			p.setup(t, s)
			x := s.Ball.X

			s.Update(Intents{Quit: true, LeftUp: true}, testEpoch)

			if !s.Finished() {
				t.Fatal("expected session finished after quit")
			}
			if s.Ball.X != x {
				t.Error("no physics should run on the quit tick")
			}
			if countEvents(s.Events(), EventQuit) != 1 {
				t.Errorf("expected quit event, got %+v", s.Events())
			}
		})
	}
}

func TestPaddlesMoveOnlyWhilePlaying(t *testing.T) {
	s := newTestSession(11)

	s.Update(Intents{LeftUp: true, RightDown: true}, testEpoch)
	if s.LeftPaddle.Rect.Min.Y != 250 || s.RightPaddle.Rect.Min.Y != 250 {
		t.Fatalf("paddles moved on start screen: %d, %d", s.LeftPaddle.Rect.Min.Y, s.RightPaddle.Rect.Min.Y)
	}

	startPlaying(t, s)
	s.Update(Intents{LeftUp: true, RightDown: true}, testEpoch)
	if s.LeftPaddle.Rect.Min.Y != 244 {
		t.Errorf("expected left paddle at 244, got %d", s.LeftPaddle.Rect.Min.Y)
	}
	if s.RightPaddle.Rect.Min.Y != 256 {
		t.Errorf("expected right paddle at 256, got %d", s.RightPaddle.Rect.Min.Y)
	}

	// 上下同时按住时向上优先
	s.Update(Intents{LeftUp: true, LeftDown: true}, testEpoch)
	if s.LeftPaddle.Rect.Min.Y != 238 {
		t.Errorf("expected up to win, left paddle at %d", s.LeftPaddle.Rect.Min.Y)
	}
}

// TestAIControlsRightPaddle AI 开启时右球拍忽略按键，以 AI 速度追球
func TestAIControlsRightPaddle(t *testing.T) {
	s := newTestSession(12)
	s.SetAIEnabled(true)
	startPlaying(t, s)

	before := s.RightPaddle.Rect.Min.Y
	s.Ball.X, s.Ball.Y = 442, 50
	s.Ball.VX, s.Ball.VY = 0, 0
	s.Update(Intents{RightDown: true}, testEpoch)

	if got := s.RightPaddle.Rect.Min.Y; got != before-4 {
		t.Errorf("expected AI to move right paddle up by 4 to %d, got %d", before-4, got)
	}
}

func TestPaddleHitEvent(t *testing.T) {
	s := newTestSession(13)
	startPlaying(t, s)

	s.Ball.X, s.Ball.Y = 45, 292
	s.Ball.VX, s.Ball.VY = -5, 0
	s.Update(Intents{}, testEpoch)

	if countEvents(s.Events(), EventPaddleHit) != 1 {
		t.Fatalf("expected paddle hit event, got %+v", s.Events())
	}
	if s.Ball.VX != 5 {
		t.Errorf("expected VX flipped to 5, got %f", s.Ball.VX)
	}
	if s.Ball.Rect().Min.X != s.LeftPaddle.Rect.Max.X {
		t.Errorf("expected ball flush with paddle, got %d vs %d", s.Ball.Rect().Min.X, s.LeftPaddle.Rect.Max.X)
	}
	for _, e := range s.Events() {
		if e.Type == EventPaddleHit && e.Side != components.SideLeft {
			t.Errorf("expected left paddle hit, got %s", e.Side)
		}
	}
}

// TestEventSides 只有击球和得分事件带侧别，其余事件为 SideNone
func TestEventSides(t *testing.T) {
	s := newTestSession(15)
	s.cfg.Rules.WinningScore = 1

	s.Update(Intents{Confirm: true}, testEpoch)
	for _, e := range s.Events() {
		if e.Side != components.SideNone {
			t.Errorf("expected %s event without side, got %s", e.Type, e.Side)
		}
	}

	s.Ball.X, s.Ball.Y = 901, 300
	s.Ball.VX = 5
	s.Update(Intents{}, testEpoch)

	want := map[EventType]components.Side{
		EventPointScored:  components.SideLeft,
		EventGameOver:     components.SideNone,
		EventPhaseChanged: components.SideNone,
		EventServe:        components.SideNone,
	}
	for _, e := range s.Events() {
		side, ok := want[e.Type]
		if !ok {
			continue
		}
		if e.Side != side {
			t.Errorf("%s: expected side %s, got %s", e.Type, side, e.Side)
		}
		delete(want, e.Type)
	}
	if len(want) != 0 {
		t.Errorf("missing events: %v", want)
	}

	// 比赛外切换 AI
	s.Update(Intents{ToggleAI: true}, testEpoch)
	if n := countEvents(s.Events(), EventAIToggled); n != 1 {
		t.Fatalf("expected one AI toggle event, got %d", n)
	}
	if e := s.Events()[0]; e.Side != components.SideNone {
		t.Errorf("expected AI toggle without side, got %s", e.Side)
	}

	s.Update(Intents{Quit: true}, testEpoch)
	if e := s.Events()[0]; e.Type != EventQuit || e.Side != components.SideNone {
		t.Errorf("expected quit event without side, got %+v", e)
	}
}

func TestSnapshot(t *testing.T) {
	s := newTestSession(14)
	startPlaying(t, s)
	s.LeftScore, s.RightScore = 2, 5

	snap := s.Snapshot()
	if snap.Phase != PhasePlaying || snap.LeftScore != 2 || snap.RightScore != 5 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
	if snap.Ball != s.Ball.Rect() || snap.LeftPaddle != s.LeftPaddle.Rect {
		t.Error("snapshot rectangles do not match session state")
	}
	if snap.WinningScore != 7 {
		t.Errorf("expected winning score 7, got %d", snap.WinningScore)
	}

	// 快照是值拷贝
	s.LeftScore = 3
	if snap.LeftScore != 2 {
		t.Error("snapshot must not alias session state")
	}
}

func TestPhaseAndWinnerStrings(t *testing.T) {
	if PhaseStart.String() != "start" || PhasePlaying.String() != "playing" || PhaseGameOver.String() != "gameover" {
		t.Error("unexpected phase names")
	}
	if WinnerComputer.String() != "Computer" || WinnerLeftPlayer.String() != "Left player" ||
		WinnerRightPlayer.String() != "Right player" || WinnerNone.String() != "" {
		t.Error("unexpected winner labels")
	}
}
