package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/pong/data"
	"github.com/gonewx/pong/pkg/app"
	"github.com/gonewx/pong/pkg/embedded"
)

var (
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置配置）")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	aiEnabled  = flag.Bool("ai", false, "启动时由电脑控制右球拍")
	seed       = flag.Int64("seed", 0, "发球随机种子（0 表示随机）")
	fullscreen = flag.Bool("fullscreen", false, "全屏启动")
)

func main() {
	flag.Parse()

	embedded.Init(data.FS)

	cfg, err := embedded.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// 设置存储不可用时退化为内存设置
	storage, err := gdata.Open(gdata.Config{AppName: "pong"})
	if err != nil {
		log.Printf("[main] Warning: settings storage unavailable: %v", err)
		storage = nil
	}

	pong, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Game:       cfg,
		AIEnabled:  *aiEnabled,
		Seed:       *seed,
		Fullscreen: *fullscreen,
		Storage:    storage,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to start: %v", err)
	}
	pong.ApplyWindowSettings()

	if err := ebiten.RunGame(pong); err != nil && !errors.Is(err, ebiten.Termination) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
