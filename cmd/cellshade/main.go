//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cellshade/internal/app"
	"cellshade/internal/universe"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Chunks < 1 || cfg.Scale < 1 {
		log.Fatalf("chunks and scale must be at least 1")
	}

	world := universe.NewWorld()
	game := app.New(world, cfg)
	game.Reset(cfg.Seed)

	size := cfg.SurfaceSize()
	ebiten.SetWindowTitle("cellshade")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size, size)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
