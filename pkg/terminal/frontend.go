package terminal

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/pong/pkg/game"
)

// EventPlayer 播放会话事件音效
type EventPlayer interface {
	PlayEvents(events []game.Event)
	ToggleMute() bool
}

// Frontend 终端版主循环
//
// 固定频率的 ticker 推进会话，另一个 goroutine 把 tcell 事件转发到通道。
// 单次意图（确认、退出、切换 AI）在两帧之间累积，下一帧一次性交给会话。
type Frontend struct {
	screen   tcell.Screen
	session  *game.GameSession
	keys     *KeyMap
	held     *HeldKeys
	renderer *Renderer
	player   EventPlayer // 可为 nil

	tick    time.Duration
	pending game.Intents
}

// NewFrontend 创建终端前端，screen 必须已经 Init
func NewFrontend(screen tcell.Screen, session *game.GameSession, keys *KeyMap, player EventPlayer) *Frontend {
	return &Frontend{
		screen:   screen,
		session:  session,
		keys:     keys,
		held:     NewHeldKeys(DefaultFirstHold, DefaultRepeatHold),
		renderer: NewRenderer(screen),
		player:   player,
		tick:     session.Config().TickDuration(),
	}
}

// HandleEvent 处理一个 tcell 事件
func (f *Frontend) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		f.handleKey(ev, now)
	case *tcell.EventResize:
		f.screen.Sync()
	}
}

func (f *Frontend) handleKey(ev *tcell.EventKey, now time.Time) {
	switch a := f.keys.Lookup(ev); a {
	case ActionLeftUp, ActionLeftDown, ActionRightUp, ActionRightDown:
		f.held.Press(a, now)
	case ActionConfirm:
		f.pending.Confirm = true
	case ActionQuit:
		f.pending.Quit = true
	case ActionToggleAI:
		f.pending.ToggleAI = true
	case ActionToggleMute:
		if f.player != nil {
			log.Printf("[Terminal] Sound enabled: %v", f.player.ToggleMute())
		}
	}
}

// Step 推进一帧并重绘，返回会话是否已结束
func (f *Frontend) Step(now time.Time) bool {
	intents := f.held.Intents(now)
	intents.Confirm = f.pending.Confirm
	intents.Quit = f.pending.Quit
	intents.ToggleAI = f.pending.ToggleAI
	f.pending = game.Intents{}

	f.session.Update(intents, now)
	if f.player != nil {
		f.player.PlayEvents(f.session.Events())
	}
	f.renderer.Draw(f.session.Snapshot())
	return f.session.Finished()
}

// Run 运行主循环，直到会话结束或 ctx 取消
func (f *Frontend) Run(ctx context.Context) error {
	ticker := time.NewTicker(f.tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			// Fini 之后 PollEvent 返回 nil
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	f.renderer.Draw(f.session.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-eventChan:
			f.HandleEvent(ev, time.Now())
		case now := <-ticker.C:
			if f.Step(now) {
				log.Printf("[Terminal] Quit after %d ticks", f.session.Tick())
				return nil
			}
		}
	}
}
