package shade

// Mode selects which decoding strategy a host configures. The choice is
// fixed per layer, never detected at runtime.
type Mode int

const (
	// ModePacked decodes a 64×64 boolean grid stored two words per row.
	ModePacked Mode = iota
	// ModeDensity decodes 8-bit density values into a color blend.
	ModeDensity
	// ModeBinary decodes zero/nonzero values into a hard two-color choice.
	ModeBinary
)

// String returns the mode name as used in flags.
func (m Mode) String() string {
	switch m {
	case ModeDensity:
		return "density"
	case ModeBinary:
		return "binary"
	default:
		return "packed"
	}
}

// ParseMode returns the Mode named by s.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "packed":
		return ModePacked, true
	case "density":
		return ModeDensity, true
	case "binary":
		return ModeBinary, true
	}
	return ModePacked, false
}

// Decoder resolves one surface coordinate to a color. Implementations hold
// no state: the result is a pure function of the coordinate, the texture
// contents and the color pair, so invocations may run in any order.
type Decoder interface {
	Shade(tex *Texture, u, v float64) RGBA
}

// New returns the decoder implementing mode with the given colors.
func New(mode Mode, colors ColorPair) Decoder {
	switch mode {
	case ModeDensity:
		return Density{Colors: colors}
	case ModeBinary:
		return Binary{Colors: colors}
	default:
		return Packed{Colors: colors}
	}
}

// Packed decodes a bit-packed 64×64 cell grid held in a 128×1 texture. Each
// logical row spans two texels: the even texel carries columns 0–31 in bits
// 0–31, the odd texel carries columns 32–63. Decoding is a hard step
// function over the grid, so magnification stays nearest-neighbor.
type Packed struct {
	Colors ColorPair
}

// Shade returns the alive color when the addressed bit is set.
func (d Packed) Shade(tex *Texture, u, v float64) RGBA {
	col, row := TexelIndex(u, v, GridSize, GridSize)
	texelX, bit := PackedAddress(row, col)
	if tex.Fetch(texelX, 0)>>uint(bit)&1 == 1 {
		return d.Colors.Alive
	}
	return d.Colors.Dead
}

// Density decodes per-cell magnitudes in [0, 255] against the texture's own
// dimensions and blends between the dead and alive colors. Values outside
// the byte range are not re-clamped and extrapolate past either color.
type Density struct {
	Colors ColorPair
}

// Shade returns the blend at the cell under (u, v).
func (d Density) Shade(tex *Texture, u, v float64) RGBA {
	x, y := TexelIndex(u, v, tex.Width(), tex.Height())
	t := float64(tex.Fetch(x, y)) / 255
	return Mix(d.Colors.Dead, d.Colors.Alive, t)
}

// Binary decodes raw per-cell state against the texture's own dimensions:
// any nonzero value is alive. No interpolation.
type Binary struct {
	Colors ColorPair
}

// Shade returns the alive color when the cell under (u, v) is nonzero.
func (d Binary) Shade(tex *Texture, u, v float64) RGBA {
	x, y := TexelIndex(u, v, tex.Width(), tex.Height())
	if tex.Fetch(x, y) > 0 {
		return d.Colors.Alive
	}
	return d.Colors.Dead
}
