// Package app 提供窗口版游戏的 ebiten.Game 实现
//
// 该包把会话、输入映射、场景绘制和音效组装起来，main 包只负责解析参数。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/game"
	"github.com/gonewx/pong/pkg/input"
	"github.com/gonewx/pong/pkg/scenes"
	"github.com/gonewx/pong/pkg/sound"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Game 已验证的游戏配置
	Game *config.GameConfig
	// AIEnabled 启动时是否由 AI 控制右球拍
	AIEnabled bool
	// Seed 发球随机种子，0 表示使用当前时间
	Seed int64
	// Fullscreen 强制全屏启动，忽略已保存的设置
	Fullscreen bool
	// Storage 设置存储，为 nil 时设置只保存在内存中
	Storage *gdata.Manager
}

// App 是窗口版的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg *config.GameConfig

	session         *game.GameSession
	keyboard        *input.KeyboardMapper
	sceneManager    *scenes.SceneManager
	audioManager    *sound.AudioManager
	settingsManager *game.SettingsManager

	forceFullscreen          bool // -fullscreen，只影响本次启动
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	if cfg.Game == nil {
		return nil, fmt.Errorf("game config is required")
	}

	keyboard, err := input.NewKeyboardMapper(cfg.Game.Keys, input.EbitenKeyState())
	if err != nil {
		return nil, fmt.Errorf("invalid key bindings: %w", err)
	}

	fonts, err := scenes.LoadFonts()
	if err != nil {
		return nil, err
	}

	settingsManager := game.NewSettingsManager(cfg.Storage)

	audioContext := audio.NewContext(sound.SampleRate)
	audioManager := sound.NewAudioManager(audioContext, settingsManager)
	audioManager.Preload()
	log.Printf("[App] AudioManager initialized")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := game.NewGameSession(cfg.Game, rand.New(rand.NewSource(seed)))
	session.SetAIEnabled(cfg.AIEnabled)
	log.Printf("[App] Session created (seed=%d, ai=%v)", seed, cfg.AIEnabled)

	return &App{
		cfg:             cfg.Game,
		session:         session,
		keyboard:        keyboard,
		sceneManager:    scenes.NewDefaultSceneManager(fonts),
		audioManager:    audioManager,
		settingsManager: settingsManager,
		forceFullscreen: cfg.Fullscreen,
	}, nil
}

// startFullscreen 启动时是否全屏
// 强制全屏不写回设置，只有 F11 切换会被保存
func startFullscreen(forced bool, settings *game.GameSettings) bool {
	return forced || settings.Fullscreen
}

// ApplyWindowSettings 按配置和已保存设置设置窗口
// 必须在 ebiten.RunGame 之前调用
func (a *App) ApplyWindowSettings() {
	ebiten.SetWindowSize(a.cfg.Screen.Width, a.cfg.Screen.Height)
	ebiten.SetWindowTitle(a.cfg.Screen.Title)
	ebiten.SetTPS(a.cfg.Screen.FPS)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(startFullscreen(a.forceFullscreen, a.settingsManager.GetSettings()))
}

// Update 更新游戏逻辑
// 每个 tick 调用一次
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Screen.Width, a.cfg.Screen.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.cfg.Screen.Width, a.cfg.Screen.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// M 切换音效
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := a.settingsManager.ToggleSound()
		a.saveSettings()
		log.Printf("[App] Sound enabled: %v", enabled)
	}

	intents := a.keyboard.Poll()
	// 关闭窗口等同于退出
	if ebiten.IsWindowBeingClosed() {
		intents.Quit = true
	}

	a.session.Update(intents, time.Now())
	a.audioManager.PlayEvents(a.session.Events())

	if a.session.Finished() {
		a.saveSettings()
		log.Printf("[App] Quit after %d ticks", a.session.Tick())
		return ebiten.Termination
	}
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settingsManager.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
		a.settingsManager.SetFullscreen(true)
	}
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen, a.session.Snapshot())
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Screen.Width, a.cfg.Screen.Height
}
