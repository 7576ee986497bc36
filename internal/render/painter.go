package render

import (
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"cellshade/internal/shade"
)

// Painter evaluates a decoder once per output pixel into an RGBA buffer.
// Every pixel is an independent evaluation at the pixel center's normalized
// surface coordinate, so the frame is identical no matter how the rows are
// scheduled. Pixels are stored premultiplied, ready for display upload.
type Painter struct {
	w, h int
	pix  []byte
}

// NewPainter allocates a painter with the given output size.
func NewPainter(w, h int) *Painter {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Painter{w: w, h: h, pix: make([]byte, 4*w*h)}
}

// Size returns the output dimensions in pixels.
func (p *Painter) Size() (int, int) { return p.w, p.h }

// Pix exposes the RGBA byte buffer of the last frame.
func (p *Painter) Pix() []byte { return p.pix }

// Frame renders one full frame of dec over tex, fanning rows out across the
// available CPUs.
func (p *Painter) Frame(dec shade.Decoder, tex *shade.Texture) {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for y := 0; y < p.h; y++ {
		y := y
		g.Go(func() error {
			p.row(dec, tex, y)
			return nil
		})
	}
	// Rows return no errors; Wait only joins them.
	_ = g.Wait()
}

func (p *Painter) row(dec shade.Decoder, tex *shade.Texture, y int) {
	v := 1 - (float64(y)+0.5)/float64(p.h)
	base := y * p.w * 4
	for x := 0; x < p.w; x++ {
		u := (float64(x) + 0.5) / float64(p.w)
		c := dec.Shade(tex, u, v)
		a := clamp01(c.A)
		p.pix[base+0] = byte(clamp01(c.R)*a*255 + 0.5)
		p.pix[base+1] = byte(clamp01(c.G)*a*255 + 0.5)
		p.pix[base+2] = byte(clamp01(c.B)*a*255 + 0.5)
		p.pix[base+3] = byte(a*255 + 0.5)
		base += 4
	}
}

// Image copies the last frame into a standard image.
func (p *Painter) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.w, p.h))
	copy(img.Pix, p.pix)
	return img
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
