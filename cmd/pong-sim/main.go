// pong-sim 无窗口运行演示模式，两侧都由电脑控制
//
// 用法:
//
//	go run ./cmd/pong-sim -ticks 20000 -seed 7 -png final.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gonewx/pong/data"
	"github.com/gonewx/pong/pkg/embedded"
	"github.com/gonewx/pong/pkg/export"
	"github.com/gonewx/pong/pkg/game"
	"github.com/gonewx/pong/pkg/simulation"
)

var (
	ticks      = flag.Int("ticks", 36000, "最多模拟的帧数")
	seed       = flag.Int64("seed", 0, "发球随机种子（0 表示随机）")
	pngPath    = flag.String("png", "", "把最后一帧保存为 PNG")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置 data/pong.yaml）")
	restart    = flag.Bool("restart", false, "一局结束后自动开始下一局")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	embedded.Init(data.FS)

	cfg, err := embedded.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	session := game.NewGameSession(cfg, rand.New(rand.NewSource(s)))
	stats := simulation.NewAttractMode(session, *restart).Run(*ticks)

	fmt.Printf("seed:         %d\n", s)
	fmt.Printf("ticks:        %d\n", stats.Ticks)
	fmt.Printf("phase:        %s\n", session.Phase())
	fmt.Printf("score:        %d - %d\n", session.LeftScore, session.RightScore)
	fmt.Printf("games:        %d (left %d, computer %d)\n", stats.Games, stats.LeftWins, stats.RightWins)
	fmt.Printf("paddle hits:  %d\n", stats.PaddleHits)
	fmt.Printf("wall bounces: %d\n", stats.WallBounces)

	if *pngPath != "" {
		renderer, err := export.NewRenderer()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := renderer.SavePNG(*pngPath, session.Snapshot()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("saved:        %s\n", *pngPath)
	}
}
