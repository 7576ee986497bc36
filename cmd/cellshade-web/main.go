package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cellshade/internal/shade"
	"cellshade/internal/universe"
	"cellshade/server"
)

func main() {
	var (
		addr    = flag.String("addr", ":8080", "listen address")
		in      = flag.String("in", "", "pattern file; empty serves a seeded random world")
		scale   = flag.Int("scale", 4, "output pixels per cell")
		seed    = flag.Int64("seed", 42, "seed for the random world when -in is empty")
		size    = flag.Int("size", 128, "edge length of the random world when -in is empty")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	world, err := loadWorld(*in, *seed, *size)
	if err != nil {
		logger.Error("load world failed", "err", err)
		os.Exit(1)
	}
	logger.Info("world loaded", "population", world.Population())

	colors := shade.ColorPair{
		Alive: shade.RGBA{R: 1, G: 1, B: 1, A: 1},
		Dead:  shade.RGBA{R: 0.1, G: 0.1, B: 0.1, A: 1},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := server.New(world, colors, *scale, logger)
	if err := s.Run(ctx, *addr); err != nil {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func loadWorld(path string, seed int64, size int) (*universe.World, error) {
	if path == "" {
		world := universe.NewWorld()
		universe.FillRandom(universe.NewRNG(seed), world, size, size)
		return world, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return universe.Decode(f)
}
