// Package sound 为游戏事件合成短音效
//
// 没有音频资源文件，所有音效都由振荡器实时生成 PCM。
// 窗口版通过 ebiten/audio 播放，终端版通过 beep 播放，两者共用这里的音色表。
package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gonewx/pong/pkg/game"
)

// SampleRate 合成与播放使用的采样率
const SampleRate = 48000

// Waveform 振荡器波形
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
)

// Tone 一个单音音效
type Tone struct {
	Frequency float64       // 频率（Hz）
	Duration  time.Duration // 时长
	Wave      Waveform
	Gain      float64 // 0.0 ~ 1.0，叠加在用户音量之上
}

// 起音和释音时长，避免爆音
const (
	attack  = 3 * time.Millisecond
	release = 15 * time.Millisecond
)

var eventTones = map[game.EventType]Tone{
	game.EventPaddleHit:   {Frequency: 460, Duration: 60 * time.Millisecond, Wave: WaveSquare, Gain: 0.35},
	game.EventWallBounce:  {Frequency: 230, Duration: 50 * time.Millisecond, Wave: WaveSquare, Gain: 0.3},
	game.EventPointScored: {Frequency: 490, Duration: 260 * time.Millisecond, Wave: WaveSine, Gain: 0.5},
	game.EventGameOver:    {Frequency: 330, Duration: 600 * time.Millisecond, Wave: WaveSine, Gain: 0.5},
	game.EventAIToggled:   {Frequency: 880, Duration: 40 * time.Millisecond, Wave: WaveSine, Gain: 0.3},
}

// ToneFor 返回事件对应的音效，没有音效的事件返回 false
func ToneFor(t game.EventType) (Tone, bool) {
	tone, ok := eventTones[t]
	return tone, ok
}

// Samples 返回音效在给定采样率下的采样点数
func (t Tone) Samples(sampleRate int) int {
	return int(t.Duration.Seconds() * float64(sampleRate))
}

// At 返回第 i 个采样点的值，范围 [-Gain, Gain]
func (t Tone) At(i, sampleRate int) float64 {
	n := t.Samples(sampleRate)
	if i < 0 || i >= n {
		return 0
	}

	phase := math.Mod(t.Frequency*float64(i)/float64(sampleRate), 1)
	var v float64
	switch t.Wave {
	case WaveSquare:
		v = 1
		if phase >= 0.5 {
			v = -1
		}
	default:
		v = math.Sin(2 * math.Pi * phase)
	}
	return v * t.Gain * t.envelope(i, n, sampleRate)
}

// envelope 线性起音/释音包络
func (t Tone) envelope(i, n, sampleRate int) float64 {
	att := int(attack.Seconds() * float64(sampleRate))
	rel := int(release.Seconds() * float64(sampleRate))
	switch {
	case att > 0 && i < att:
		return float64(i) / float64(att)
	case rel > 0 && i >= n-rel:
		return float64(n-i) / float64(rel)
	default:
		return 1
	}
}

// PCM 生成 16 位有符号小端立体声数据（ebiten/audio 的默认格式）
func (t Tone) PCM(sampleRate int) []byte {
	n := t.Samples(sampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := int16(clamp(t.At(i, sampleRate), -1, 1) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
