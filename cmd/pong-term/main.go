// pong-term 在终端里运行 Pong
//
// 用法:
//
//	go run ./cmd/pong-term [-ai] [-mute] [-log pong.log -verbose]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/pong/data"
	"github.com/gonewx/pong/pkg/embedded"
	"github.com/gonewx/pong/pkg/game"
	"github.com/gonewx/pong/pkg/sound"
	"github.com/gonewx/pong/pkg/terminal"
)

var (
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置 data/pong.yaml）")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息（需要配合 -log）")
	aiEnabled  = flag.Bool("ai", false, "启动时由电脑控制右球拍")
	seed       = flag.Int64("seed", 0, "发球随机种子（0 表示随机）")
	mute       = flag.Bool("mute", false, "关闭音效")
	logPath    = flag.String("log", "", "日志文件路径（终端被游戏占用，日志不能写到标准输出）")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	closeLog, err := setupLogging(*verbose, *logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	embedded.Init(data.FS)

	cfg, err := embedded.LoadGameConfig(*configPath)
	if err != nil {
		return err
	}

	keys, err := terminal.NewKeyMap(cfg.Keys)
	if err != nil {
		return err
	}

	settings := loadSettings()
	player := sound.NewBeepPlayer(settings.GetSettings().SoundVolume)
	player.SetMuted(*mute || !settings.GetSettings().SoundEnabled)
	if err := player.Initialize(); err != nil {
		log.Printf("[main] Audio initialization failed: %v", err)
	}
	defer player.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	session := game.NewGameSession(cfg, rand.New(rand.NewSource(s)))
	session.SetAIEnabled(*aiEnabled)
	log.Printf("[main] Session created (seed=%d, ai=%v)", s, *aiEnabled)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = terminal.NewFrontend(screen, session, keys, player).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// setupLogging 日志只写到文件；未指定文件或未开启 verbose 时丢弃
func setupLogging(verbose bool, path string) (func(), error) {
	if !verbose || path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

// loadSettings 读取窗口版保存的音效设置，存储不可用时使用默认值
func loadSettings() *game.SettingsManager {
	storage, err := gdata.Open(gdata.Config{AppName: "pong"})
	if err != nil {
		log.Printf("[main] Warning: settings storage unavailable: %v", err)
		storage = nil
	}
	return game.NewSettingsManager(storage)
}
