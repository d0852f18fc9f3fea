package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mirrorhall/mirrorhall/common"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	log.SetPrefix("mirrorhall: ")

	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Mirror Hall")
	ebiten.SetTPS(common.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
