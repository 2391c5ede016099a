// Package input 把物理按键映射为会话的语义意图
package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/game"
)

// KeyState 键盘状态查询接口，测试中可替换
type KeyState interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
}

type ebitenKeyState struct{}

func (ebitenKeyState) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (ebitenKeyState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// EbitenKeyState 返回读取 ebiten 实时键盘状态的 KeyState
func EbitenKeyState() KeyState {
	return ebitenKeyState{}
}

// KeyboardMapper 按键绑定到意图的映射
type KeyboardMapper struct {
	state KeyState

	leftUp    []ebiten.Key
	leftDown  []ebiten.Key
	rightUp   []ebiten.Key
	rightDown []ebiten.Key
	confirm   []ebiten.Key
	quit      []ebiten.Key
	toggleAI  []ebiten.Key
}

// NewKeyboardMapper 解析按键绑定
//
// 按键名使用 ebiten 的命名（"W"、"ArrowUp"、"Space" 等），未知名称返回错误。
func NewKeyboardMapper(bindings config.KeyBindings, state KeyState) (*KeyboardMapper, error) {
	m := &KeyboardMapper{state: state}

	targets := []struct {
		action string
		names  []string
		dst    *[]ebiten.Key
	}{
		{"leftUp", bindings.LeftUp, &m.leftUp},
		{"leftDown", bindings.LeftDown, &m.leftDown},
		{"rightUp", bindings.RightUp, &m.rightUp},
		{"rightDown", bindings.RightDown, &m.rightDown},
		{"confirm", bindings.Confirm, &m.confirm},
		{"quit", bindings.Quit, &m.quit},
		{"toggleAI", bindings.ToggleAI, &m.toggleAI},
	}
	for _, t := range targets {
		keys, err := ParseKeys(t.names)
		if err != nil {
			return nil, fmt.Errorf("key binding %s: %w", t.action, err)
		}
		*t.dst = keys
	}
	return m, nil
}

// ParseKeys 把按键名解析为 ebiten.Key
func ParseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("unknown key %q: %w", name, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Poll 读取当前帧的意图
// 移动意图看按住状态，其余只看本帧刚按下
func (m *KeyboardMapper) Poll() game.Intents {
	return game.Intents{
		LeftUp:    m.anyPressed(m.leftUp),
		LeftDown:  m.anyPressed(m.leftDown),
		RightUp:   m.anyPressed(m.rightUp),
		RightDown: m.anyPressed(m.rightDown),
		Confirm:   m.anyJustPressed(m.confirm),
		Quit:      m.anyJustPressed(m.quit),
		ToggleAI:  m.anyJustPressed(m.toggleAI),
	}
}

func (m *KeyboardMapper) anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if m.state.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (m *KeyboardMapper) anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if m.state.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
