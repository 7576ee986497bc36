package shade

import "math"

const (
	// GridSize is the logical edge length of a bit-packed grid. The packed
	// layout is a fixed contract: exactly 64 rows of 64 cells.
	GridSize = 64

	// PackedWidth is the texel width of a packed texture: two 32-bit words
	// per row, one row of texels.
	PackedWidth = 2 * GridSize
)

// TexelIndex maps a normalized surface coordinate (u, v) in [0, 1]² to a
// texel index for a w×h target. v is flipped so that v=1 (top of the
// surface) lands on row 0. Indices are clamped into bounds, which also
// covers u or v exactly at 1.0 where the multiply-floor alone would yield
// the dimension itself.
func TexelIndex(u, v float64, w, h int) (x, y int) {
	x = clampIndex(int(math.Floor(u*float64(w))), w)
	y = clampIndex(int(math.Floor((1-v)*float64(h))), h)
	return x, y
}

// PackedAddress maps a logical cell (row, col) of a 64×64 grid to the texel
// x-coordinate and bit index inside it. Each row occupies two adjacent
// texels; bit 0 of the even texel is column 0, bit 0 of the odd texel is
// column 32.
func PackedAddress(row, col int) (texelX, bit int) {
	texelX = row * 2
	if col >= 32 {
		texelX++
		col -= 32
	}
	return texelX, col
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
