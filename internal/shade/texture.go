package shade

// Texture is a 2D grid of uint32 texels in row-major order. Decoders only
// read it; the owner writes texels between frames.
type Texture struct {
	w, h   int
	texels []uint32
}

// NewTexture allocates a texture with the given dimensions.
func NewTexture(w, h int) *Texture {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Texture{w: w, h: h, texels: make([]uint32, w*h)}
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.w }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.h }

// Texels exposes the backing slice so the owner can write values directly.
func (t *Texture) Texels() []uint32 { return t.texels }

// Fetch reads the texel at (x, y). Callers pass indices already clamped by
// TexelIndex.
func (t *Texture) Fetch(x, y int) uint32 { return t.texels[y*t.w+x] }
