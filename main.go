package main

import (
	"flag"
	"log"

	"github.com/decker502/notagame/pkg/app"
	"github.com/decker502/notagame/pkg/config"
	"github.com/decker502/notagame/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "玩法配置文件路径（默认使用内置 data/game.yaml）")
	flag.Parse()

	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:        *verbose,
		GameConfigPath: *configPath,
	})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer game.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// 失去焦点时仍然调用 Update，由 App 切换到失去可见性状态
	ebiten.SetRunnableOnUnfocused(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
