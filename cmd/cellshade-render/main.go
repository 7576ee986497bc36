package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"strconv"

	"cellshade/internal/render"
	"cellshade/internal/shade"
	"cellshade/internal/universe"
)

type options struct {
	in    string
	out   string
	mode  string
	scale int
	seed  int64
	size  int
	alive string
	dead  string
}

func main() {
	opts := options{
		out:   "frame.png",
		mode:  "packed",
		scale: 4,
		seed:  42,
		size:  64,
		alive: "ffffffff",
		dead:  "1a1a1aff",
	}
	flag.StringVar(&opts.in, "in", opts.in, "pattern file; empty renders a seeded random grid")
	flag.StringVar(&opts.out, "out", opts.out, "output PNG path")
	flag.StringVar(&opts.mode, "mode", opts.mode, "decoder: packed, density or binary")
	flag.IntVar(&opts.scale, "scale", opts.scale, "output pixels per cell")
	flag.Int64Var(&opts.seed, "seed", opts.seed, "seed for the random grid when -in is empty")
	flag.IntVar(&opts.size, "size", opts.size, "edge length of the random grid when -in is empty")
	flag.StringVar(&opts.alive, "alive", opts.alive, "alive color as RGBA hex")
	flag.StringVar(&opts.dead, "dead", opts.dead, "dead color as RGBA hex")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	mode, ok := shade.ParseMode(opts.mode)
	if !ok {
		return fmt.Errorf("unknown mode %q", opts.mode)
	}
	colors, err := parseColors(opts.alive, opts.dead)
	if err != nil {
		return err
	}

	var img *image.RGBA
	switch mode {
	case shade.ModePacked:
		img, err = renderPacked(opts, colors)
	default:
		img, err = renderScalar(opts, mode, colors)
	}
	if err != nil {
		return err
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("wrote %s (%dx%d)", opts.out, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

func renderPacked(opts options, colors shade.ColorPair) (*image.RGBA, error) {
	var (
		wld *universe.World
		err error
	)
	if opts.in == "" {
		wld = universe.NewWorld()
		universe.FillRandom(universe.NewRNG(opts.seed), wld, opts.size, opts.size)
	} else {
		wld, err = decodeFile(opts.in, universe.Decode)
		if err != nil {
			return nil, err
		}
	}
	return render.WorldFrame(wld, colors, opts.scale), nil
}

func renderScalar(opts options, mode shade.Mode, colors shade.ColorPair) (*image.RGBA, error) {
	var (
		tex *shade.Texture
		err error
	)
	if opts.in == "" {
		tex = shade.NewTexture(opts.size, opts.size)
		universe.FillDensity(universe.NewRNG(opts.seed), tex)
	} else {
		tex, err = decodeFile(opts.in, universe.DecodeDensity)
		if err != nil {
			return nil, err
		}
	}
	painter := render.NewPainter(tex.Width()*opts.scale, tex.Height()*opts.scale)
	painter.Frame(shade.New(mode, colors), tex)
	return painter.Image(), nil
}

func decodeFile[T any](path string, decode func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()
	out, err := decode(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// parseColors reads two colors in RRGGBBAA (or RRGGBB) hex form.
func parseColors(alive, dead string) (shade.ColorPair, error) {
	a, err := parseColor(alive)
	if err != nil {
		return shade.ColorPair{}, fmt.Errorf("alive color: %w", err)
	}
	d, err := parseColor(dead)
	if err != nil {
		return shade.ColorPair{}, fmt.Errorf("dead color: %w", err)
	}
	return shade.ColorPair{Alive: a, Dead: d}, nil
}

func parseColor(s string) (shade.RGBA, error) {
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return shade.RGBA{}, fmt.Errorf("want RRGGBB or RRGGBBAA hex, got %q", s)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return shade.RGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return shade.RGBA{
		R: float64(n>>24&0xff) / 255,
		G: float64(n>>16&0xff) / 255,
		B: float64(n>>8&0xff) / 255,
		A: float64(n&0xff) / 255,
	}, nil
}
