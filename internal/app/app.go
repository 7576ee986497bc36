//go:build ebiten

package app

import (
	"time"

	"cellshade/internal/render"
	"cellshade/internal/shade"
	"cellshade/internal/universe"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	worldColors = shade.ColorPair{
		Alive: shade.RGBA{R: 1, G: 1, B: 1, A: 1},
		Dead:  shade.RGBA{R: 0.1, G: 0.1, B: 0.1, A: 1},
	}
	drawColors = shade.ColorPair{
		Alive: shade.RGBA{G: 1, B: 1, A: 0.6},
		Dead:  shade.RGBA{},
	}
)

type cell struct {
	X, Y int
}

// Game adapts a cellshade world to the ebiten.Game interface. The world
// layer decodes each chunk's packed texture per screen pixel; pending mouse
// strokes render through the density decoder as a translucent overlay.
type Game struct {
	world *universe.World
	cfg   *Config
	seed  int64

	packed  shade.Decoder
	density shade.Decoder

	chunkTex     *shade.Texture
	chunkPainter *render.Painter
	chunkImgs    map[universe.ChunkCoord]*ebiten.Image
	worldRev     uint64
	worldDirty   bool

	overlayTex     *shade.Texture
	overlayPainter *render.Painter
	overlayImg     *ebiten.Image

	stroke  map[cell]struct{}
	lastPos cell
	hasLast bool
}

// New constructs a Game over the provided world.
func New(world *universe.World, cfg *Config) *Game {
	side := universe.ChunkSize * cfg.Scale
	cells := cfg.CellsPerSide()
	surface := cfg.SurfaceSize()
	return &Game{
		world:          world,
		cfg:            cfg,
		seed:           cfg.Seed,
		packed:         shade.New(shade.ModePacked, worldColors),
		density:        shade.New(shade.ModeDensity, drawColors),
		chunkTex:       shade.NewTexture(shade.PackedWidth, 1),
		chunkPainter:   render.NewPainter(side, side),
		chunkImgs:      make(map[universe.ChunkCoord]*ebiten.Image),
		worldDirty:     true,
		overlayTex:     shade.NewTexture(cells, cells),
		overlayPainter: render.NewPainter(surface, surface),
		overlayImg:     ebiten.NewImage(surface, surface),
		stroke:         make(map[cell]struct{}),
	}
}

// Reset refills the world from the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Clear()
	cells := g.cfg.CellsPerSide()
	universe.FillRandom(universe.NewRNG(seed), g.world, cells, cells)
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.updateStroke()

	if rev := g.world.Revision(); rev != g.worldRev {
		g.worldRev = rev
		g.worldDirty = true
	}
	return nil
}

// updateStroke accumulates cells under the cursor while the left button is
// held, connecting consecutive positions with a line so fast drags leave no
// gaps. The stroke commits to the world when the button is released.
func (g *Game) updateStroke() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if len(g.stroke) > 0 {
			for c := range g.stroke {
				g.world.SetCell(c.X, c.Y, true)
			}
			g.stroke = make(map[cell]struct{})
		}
		g.hasLast = false
		return
	}

	cur, ok := g.cursorCell()
	if !ok {
		return
	}
	prev := cur
	if g.hasLast {
		prev = g.lastPos
	}
	plotLine(prev, cur, func(c cell) {
		g.stroke[c] = struct{}{}
	})
	g.lastPos = cur
	g.hasLast = true
}

func (g *Game) cursorCell() (cell, bool) {
	mx, my := ebiten.CursorPosition()
	cells := g.cfg.CellsPerSide()
	x := mx / g.cfg.Scale
	y := my / g.cfg.Scale
	if mx < 0 || my < 0 || x >= cells || y >= cells {
		return cell{}, false
	}
	return cell{X: x, Y: y}, true
}

// plotLine rasterizes the segment from a to b with Bresenham's algorithm.
func plotLine(a, b cell, plot func(cell)) {
	x, y := a.X, a.Y
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	sx := 1
	if a.X >= b.X {
		sx = -1
	}
	sy := 1
	if a.Y >= b.Y {
		sy = -1
	}
	err := dx
	if dx <= dy {
		err = -dy
	}
	err /= 2

	for {
		plot(cell{X: x, Y: y})
		if x == b.X && y == b.Y {
			return
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x += sx
		}
		if e2 < dy {
			err += dx
			y += sy
		}
	}
}

// Draw renders the world layer and the pending-stroke overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.worldDirty {
		g.repaintChunks()
		g.worldDirty = false
	}

	side := universe.ChunkSize * g.cfg.Scale
	for cy := 0; cy < g.cfg.Chunks; cy++ {
		for cx := 0; cx < g.cfg.Chunks; cx++ {
			img, ok := g.chunkImgs[universe.ChunkCoord{X: cx, Y: cy}]
			if !ok {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(cx*side), float64(cy*side))
			screen.DrawImage(img, op)
		}
	}

	g.drawOverlay(screen)
	ebitenutil.DebugPrint(screen, "pop "+universe.FormatCount(g.world.Population()))
}

// repaintChunks re-decodes every chunk texture into its cached image.
func (g *Game) repaintChunks() {
	var dead universe.Chunk
	for cy := 0; cy < g.cfg.Chunks; cy++ {
		for cx := 0; cx < g.cfg.Chunks; cx++ {
			coord := universe.ChunkCoord{X: cx, Y: cy}
			chunk := g.world.Chunk(coord)
			if chunk == nil {
				chunk = &dead
			}
			chunk.Pack(g.chunkTex)
			g.chunkPainter.Frame(g.packed, g.chunkTex)

			img, ok := g.chunkImgs[coord]
			if !ok {
				side := universe.ChunkSize * g.cfg.Scale
				img = ebiten.NewImage(side, side)
				g.chunkImgs[coord] = img
			}
			img.WritePixels(g.chunkPainter.Pix())
		}
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	cur, hover := g.cursorCell()
	if len(g.stroke) == 0 && !hover {
		return
	}

	texels := g.overlayTex.Texels()
	for i := range texels {
		texels[i] = 0
	}
	cells := g.cfg.CellsPerSide()
	for c := range g.stroke {
		texels[c.Y*cells+c.X] = 255
	}
	if hover {
		texels[cur.Y*cells+cur.X] = 255
	}

	g.overlayPainter.Frame(g.density, g.overlayTex)
	g.overlayImg.WritePixels(g.overlayPainter.Pix())
	screen.DrawImage(g.overlayImg, nil)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.cfg.SurfaceSize()
	return s, s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
