// Package terminal 是基于 tcell 的终端前端
//
// 终端只上报按下（和自动重复），不上报松开，按住状态由 HeldKeys 根据
// 最近一次按下的时间推算。
package terminal

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/game"
)

// Action 终端按键对应的动作
type Action int

const (
	ActionNone Action = iota
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown
	ActionConfirm
	ActionQuit
	ActionToggleAI
	ActionToggleMute
)

// keyID 一个终端按键：特殊键用 Key，字符键用小写 rune
type keyID struct {
	key tcell.Key
	r   rune
}

// 与 ebiten 按键名对应的特殊键
var namedKeys = map[string]tcell.Key{
	"arrowup":    tcell.KeyUp,
	"arrowdown":  tcell.KeyDown,
	"arrowleft":  tcell.KeyLeft,
	"arrowright": tcell.KeyRight,
	"up":         tcell.KeyUp,
	"down":       tcell.KeyDown,
	"left":       tcell.KeyLeft,
	"right":      tcell.KeyRight,
	"enter":      tcell.KeyEnter,
	"escape":     tcell.KeyEscape,
	"tab":        tcell.KeyTab,
	"backspace":  tcell.KeyBackspace2,
	"home":       tcell.KeyHome,
	"end":        tcell.KeyEnd,
	"pageup":     tcell.KeyPgUp,
	"pagedown":   tcell.KeyPgDn,
}

var namedRunes = map[string]rune{
	"space":     ' ',
	"comma":     ',',
	"period":    '.',
	"slash":     '/',
	"semicolon": ';',
	"minus":     '-',
	"equal":     '=',
}

// parseKeyName 解析 ebiten 风格的按键名
func parseKeyName(name string) (keyID, error) {
	lower := strings.ToLower(name)
	if k, ok := namedKeys[lower]; ok {
		return keyID{key: k}, nil
	}
	if r, ok := namedRunes[lower]; ok {
		return keyID{key: tcell.KeyRune, r: r}, nil
	}
	lower = strings.TrimPrefix(lower, "digit")
	if runes := []rune(lower); len(runes) == 1 && (unicode.IsLetter(runes[0]) || unicode.IsDigit(runes[0])) {
		return keyID{key: tcell.KeyRune, r: runes[0]}, nil
	}
	return keyID{}, fmt.Errorf("key %q is not available in the terminal", name)
}

// KeyMap 终端按键到动作的映射
type KeyMap struct {
	actions map[keyID]Action
}

// NewKeyMap 从按键绑定创建映射，额外把 M 绑定为静音切换
func NewKeyMap(bindings config.KeyBindings) (*KeyMap, error) {
	km := &KeyMap{actions: make(map[keyID]Action)}

	groups := []struct {
		name   string
		names  []string
		action Action
	}{
		{"leftUp", bindings.LeftUp, ActionLeftUp},
		{"leftDown", bindings.LeftDown, ActionLeftDown},
		{"rightUp", bindings.RightUp, ActionRightUp},
		{"rightDown", bindings.RightDown, ActionRightDown},
		{"confirm", bindings.Confirm, ActionConfirm},
		{"quit", bindings.Quit, ActionQuit},
		{"toggleAI", bindings.ToggleAI, ActionToggleAI},
	}
	for _, g := range groups {
		for _, name := range g.names {
			id, err := parseKeyName(name)
			if err != nil {
				return nil, fmt.Errorf("key binding %s: %w", g.name, err)
			}
			km.actions[id] = g.action
		}
	}

	mute := keyID{key: tcell.KeyRune, r: 'm'}
	if _, taken := km.actions[mute]; !taken {
		km.actions[mute] = ActionToggleMute
	}
	return km, nil
}

// Lookup 返回按键事件对应的动作；Ctrl-C 总是退出
func (km *KeyMap) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyCtrlC {
		return ActionQuit
	}
	id := keyID{key: ev.Key()}
	if ev.Key() == tcell.KeyRune {
		id.r = unicode.ToLower(ev.Rune())
	}
	return km.actions[id]
}

// 按住判定窗口：首次按下后要等系统的重复延迟，之后重复事件间隔很短
const (
	DefaultFirstHold  = 550 * time.Millisecond
	DefaultRepeatHold = 120 * time.Millisecond
)

type heldKey struct {
	firstSeen time.Time
	lastSeen  time.Time
}

// HeldKeys 根据按下事件推算移动键的按住状态
type HeldKeys struct {
	firstHold  time.Duration
	repeatHold time.Duration
	keys       map[Action]*heldKey
}

// NewHeldKeys 创建按住状态跟踪器
func NewHeldKeys(firstHold, repeatHold time.Duration) *HeldKeys {
	return &HeldKeys{
		firstHold:  firstHold,
		repeatHold: repeatHold,
		keys:       make(map[Action]*heldKey),
	}
}

// opposite 同一球拍的反方向
func opposite(a Action) Action {
	switch a {
	case ActionLeftUp:
		return ActionLeftDown
	case ActionLeftDown:
		return ActionLeftUp
	case ActionRightUp:
		return ActionRightDown
	case ActionRightDown:
		return ActionRightUp
	default:
		return ActionNone
	}
}

// Press 记录一次按下（含自动重复），按下反方向会立即松开原方向
func (h *HeldKeys) Press(a Action, now time.Time) {
	delete(h.keys, opposite(a))

	if k, ok := h.keys[a]; ok && h.activeKey(k, now) {
		k.lastSeen = now
		return
	}
	h.keys[a] = &heldKey{firstSeen: now, lastSeen: now}
}

// Held 返回动作在 now 时是否仍视为按住
func (h *HeldKeys) Held(a Action, now time.Time) bool {
	k, ok := h.keys[a]
	if !ok {
		return false
	}
	if !h.activeKey(k, now) {
		delete(h.keys, a)
		return false
	}
	return true
}

// Release 松开全部按键
func (h *HeldKeys) Release() {
	clear(h.keys)
}

func (h *HeldKeys) activeKey(k *heldKey, now time.Time) bool {
	window := h.repeatHold
	// 还没有收到重复事件
	if k.lastSeen.Equal(k.firstSeen) {
		window = h.firstHold
	}
	return now.Sub(k.lastSeen) <= window
}

// Intents 合成当前帧的移动意图
func (h *HeldKeys) Intents(now time.Time) game.Intents {
	return game.Intents{
		LeftUp:    h.Held(ActionLeftUp, now),
		LeftDown:  h.Held(ActionLeftDown, now),
		RightUp:   h.Held(ActionRightUp, now),
		RightDown: h.Held(ActionRightDown, now),
	}
}
