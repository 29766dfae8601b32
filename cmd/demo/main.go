package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	dir := flag.String("dir", "./saves", "directory for .state files")
	scenePath := flag.String("scene", "", "scene yaml to spawn (optional)")
	watch := flag.Bool("watch", false, "reload transforms when .state files change on disk")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("wherewasi demo")

	// The game intercepts the close request so the save pass runs before
	// the process exits.
	ebiten.SetWindowClosingHandled(true)

	game, err := NewGame(*dir, *scenePath, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
