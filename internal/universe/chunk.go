package universe

import (
	"math/bits"

	"cellshade/internal/shade"
)

// ChunkSize is the cell edge length of one chunk.
const ChunkSize = 64

// Chunk stores a 64×64 block of cells, one uint64 per row with bit 0 as
// local x=0. Row 0 is the top of the chunk.
type Chunk struct {
	rows [ChunkSize]uint64
}

// Set writes one cell. Coordinates outside the chunk are ignored.
func (c *Chunk) Set(x, y int, alive bool) {
	if x < 0 || x >= ChunkSize || y < 0 || y >= ChunkSize {
		return
	}
	if alive {
		c.rows[y] |= 1 << uint(x)
	} else {
		c.rows[y] &^= 1 << uint(x)
	}
}

// Get reads one cell. Coordinates outside the chunk read as dead.
func (c *Chunk) Get(x, y int) bool {
	if x < 0 || x >= ChunkSize || y < 0 || y >= ChunkSize {
		return false
	}
	return c.rows[y]>>uint(x)&1 == 1
}

// Population counts the live cells in the chunk.
func (c *Chunk) Population() uint64 {
	var n int
	for _, row := range c.rows {
		n += bits.OnesCount64(row)
	}
	return uint64(n)
}

// Empty reports whether no cell in the chunk is alive.
func (c *Chunk) Empty() bool {
	for _, row := range c.rows {
		if row != 0 {
			return false
		}
	}
	return true
}

// Clear kills every cell.
func (c *Chunk) Clear() {
	c.rows = [ChunkSize]uint64{}
}

// Pack writes the chunk into a 128×1 texture: each row lands in two adjacent
// texels, the low 32 bits first. The split mirrors a little-endian view of
// the uint64 rows, so bit 0 of the even texel is column 0 and bit 0 of the
// odd texel is column 32.
func (c *Chunk) Pack(tex *shade.Texture) {
	texels := tex.Texels()
	if len(texels) != shade.PackedWidth {
		return
	}
	for y, row := range c.rows {
		texels[y*2] = uint32(row)
		texels[y*2+1] = uint32(row >> 32)
	}
}
