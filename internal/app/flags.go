package app

import (
	"flag"

	"cellshade/internal/universe"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Chunks int
	Scale  int
	TPS    int
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Chunks: 2, Scale: 6, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Chunks, "chunks", c.Chunks, "world edge length in 64-cell chunks")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial random fill")
}

// CellsPerSide returns the world edge length in cells.
func (c *Config) CellsPerSide() int {
	return c.Chunks * universe.ChunkSize
}

// SurfaceSize returns the output surface edge length in pixels.
func (c *Config) SurfaceSize() int {
	return c.CellsPerSide() * c.Scale
}
