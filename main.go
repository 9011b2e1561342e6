package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dasher/common"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and overlay")
	watch := flag.Bool("watch", true, "reload prefabs/*.yaml on change")
	fixedStep := flag.Float64("fixed", 1.0/50.0, "physics tick length in seconds")
	script := flag.String("script", "", "drive the player from prefabs/scripts/<name> instead of the keyboard")
	flag.Parse()

	logger, err := common.NewLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	game, err := NewGame(logger, *fixedStep, *script, *debug, *watch)
	if err != nil {
		logger.Fatal("start", zap.Error(err))
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("dasher")

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}
