package universe

import (
	"math/rand/v2"

	"cellshade/internal/shade"
)

// NewRNG creates a deterministic RNG from the provided seed. The same seed
// always reproduces the same fills.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// FillRandom sets every cell of the w×h region anchored at the origin to a
// coin flip from r.
func FillRandom(r *rand.Rand, wld *World, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			wld.SetCell(x, y, r.IntN(2) == 1)
		}
	}
}

// FillDensity fills a scalar texture with random byte-range values, giving
// density layers plausible data when no pattern is supplied.
func FillDensity(r *rand.Rand, tex *shade.Texture) {
	texels := tex.Texels()
	for i := range texels {
		texels[i] = uint32(r.IntN(256))
	}
}
