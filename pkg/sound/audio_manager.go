package sound

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/gonewx/pong/pkg/game"
)

// AudioManager 窗口版音效管理器
// 职责：
//   - 把会话事件映射为音效并播放
//   - 从 SettingsManager 读取音效开关和音量
//   - 缓存每种事件的播放器，重复播放时 Rewind
type AudioManager struct {
	context         *audio.Context
	settingsManager *game.SettingsManager // 可为 nil，使用默认音量
	players         map[game.EventType]*audio.Player
}

// NewAudioManager 创建音效管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，采样率应为 SampleRate
//   - sm: 设置管理器，可为 nil
func NewAudioManager(ctx *audio.Context, sm *game.SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		players:         make(map[game.EventType]*audio.Player),
	}
}

// PlayEvents 播放一帧内所有事件的音效
func (am *AudioManager) PlayEvents(events []game.Event) {
	for _, e := range events {
		am.PlaySound(e.Type)
	}
}

// PlaySound 播放事件对应的音效
//
// 返回：
//   - bool: 是否成功播放（音效关闭或事件无音效时返回 false）
func (am *AudioManager) PlaySound(t game.EventType) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getPlayer(t)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", t, err)
	}
	player.Play()
	return true
}

// Preload 预先合成所有音效，避免首次播放时卡顿
func (am *AudioManager) Preload() {
	for t := range eventTones {
		am.getPlayer(t)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(am.players))
}

func (am *AudioManager) getPlayer(t game.EventType) *audio.Player {
	if player, ok := am.players[t]; ok {
		return player
	}

	tone, ok := ToneFor(t)
	if !ok {
		return nil
	}
	player := am.context.NewPlayerFromBytes(tone.PCM(am.context.SampleRate()))
	am.players[t] = player
	return player
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultVolume
}

// DefaultVolume 没有设置管理器时的音量
const DefaultVolume = 0.5
