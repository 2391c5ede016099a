package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/gonewx/pong/pkg/game"
)

// BeepPlayer 终端版音效播放器
//
// 所有音效混入同一个 Mixer，Mixer 只在 Initialize 时交给 speaker 一次。
type BeepPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	muted       bool
	initialized bool
}

// NewBeepPlayer 创建播放器，Initialize 之前的播放请求会被忽略
func NewBeepPlayer(volume float64) *BeepPlayer {
	return &BeepPlayer{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(SampleRate),
		volume: volume,
	}
}

// Initialize 打开音频设备
func (p *BeepPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup 停止所有音效
func (p *BeepPlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// SetMuted 设置静音
func (p *BeepPlayer) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// ToggleMute 切换静音，返回切换后是否有声
func (p *BeepPlayer) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return !p.muted
}

// Muted 返回是否静音
func (p *BeepPlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// PlayEvents 播放一帧内所有事件的音效
func (p *BeepPlayer) PlayEvents(events []game.Event) {
	for _, e := range events {
		p.PlaySound(e.Type)
	}
}

// PlaySound 播放事件对应的音效
func (p *BeepPlayer) PlaySound(t game.EventType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return false
	}
	tone, ok := ToneFor(t)
	if !ok {
		return false
	}

	streamer := newVolume(NewToneStreamer(tone, p.rate), p.volume)
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// toneStreamer 把 Tone 适配为 beep.Streamer
type toneStreamer struct {
	tone Tone
	rate int
	pos  int
	n    int
}

// NewToneStreamer 创建播放一次音效的 Streamer
func NewToneStreamer(t Tone, rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{tone: t, rate: int(rate), n: t.Samples(int(rate))}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.n {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.n {
			break
		}
		v := s.tone.At(s.pos, s.rate)
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *toneStreamer) Err() error { return nil }

// newVolume 线性音量转换为 effects.Volume 的对数音量，0 表示静音
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
