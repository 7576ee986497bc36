package render

import (
	"image"
	"image/draw"

	"cellshade/internal/shade"
	"cellshade/internal/universe"
)

// WorldFrame renders every allocated chunk of a world through the packed
// decoder into one image, scale output pixels per cell. Chunk (0, 0) lands
// at the top-left when the world has no negative chunks; negative chunks
// shift the origin so the full extent is covered. An empty world renders a
// single dead chunk.
func WorldFrame(wld *universe.World, colors shade.ColorPair, scale int) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	min, max, ok := wld.Bounds()
	if !ok {
		min, max = universe.ChunkCoord{}, universe.ChunkCoord{}
	}

	side := universe.ChunkSize * scale
	img := image.NewRGBA(image.Rect(0, 0, (max.X-min.X+1)*side, (max.Y-min.Y+1)*side))

	dec := shade.Packed{Colors: colors}
	tex := shade.NewTexture(shade.PackedWidth, 1)
	painter := NewPainter(side, side)
	var dead universe.Chunk

	for cy := min.Y; cy <= max.Y; cy++ {
		for cx := min.X; cx <= max.X; cx++ {
			chunk := wld.Chunk(universe.ChunkCoord{X: cx, Y: cy})
			if chunk == nil {
				chunk = &dead
			}
			chunk.Pack(tex)
			painter.Frame(dec, tex)

			origin := image.Pt((cx-min.X)*side, (cy-min.Y)*side)
			draw.Draw(img, image.Rectangle{Min: origin, Max: origin.Add(image.Pt(side, side))},
				painter.Image(), image.Point{}, draw.Src)
		}
	}
	return img
}
