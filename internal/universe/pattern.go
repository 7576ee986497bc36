package universe

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"cellshade/internal/shade"
)

// Plaintext pattern format: one line per row, '.' for a dead cell, '#', 'O'
// or '*' for a live one, digits '1'–'9' for graded density. Lines starting
// with '!' are comments. Row 0 is the top of the grid.

// Decode parses a plaintext pattern into a world anchored at the origin.
// Any cell with a nonzero value is set alive.
func Decode(r io.Reader) (*World, error) {
	wld := NewWorld()
	err := scanPattern(r, func(x, y int, v uint32) {
		if v > 0 {
			wld.SetCell(x, y, true)
		}
	})
	if err != nil {
		return nil, err
	}
	return wld, nil
}

// DecodeDensity parses a plaintext pattern into a scalar texture sized to
// the pattern's extent. Digits map linearly onto the byte range, '#'/'O'/'*'
// to 255.
func DecodeDensity(r io.Reader) (*shade.Texture, error) {
	type texel struct {
		x, y int
		v    uint32
	}
	var (
		texels []texel
		w, h   int
	)
	err := scanPattern(r, func(x, y int, v uint32) {
		texels = append(texels, texel{x: x, y: y, v: v})
		if x+1 > w {
			w = x + 1
		}
		if y+1 > h {
			h = y + 1
		}
	})
	if err != nil {
		return nil, err
	}
	tex := shade.NewTexture(w, h)
	for _, t := range texels {
		tex.Texels()[t.y*tex.Width()+t.x] = t.v
	}
	return tex, nil
}

func scanPattern(r io.Reader, set func(x, y int, v uint32)) error {
	sc := bufio.NewScanner(r)
	y := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n ")
		if strings.HasPrefix(line, "!") {
			continue
		}
		for x, ch := range line {
			switch {
			case ch == '.':
				set(x, y, 0)
			case ch == '#' || ch == 'O' || ch == '*':
				set(x, y, 255)
			case ch >= '1' && ch <= '9':
				set(x, y, uint32(ch-'0')*255/9)
			case ch == ' ' || ch == '0':
				set(x, y, 0)
			default:
				return fmt.Errorf("pattern row %d: unexpected character %q", y, ch)
			}
		}
		y++
	}
	return sc.Err()
}

// Encode writes the w×h region anchored at the origin in plaintext form.
func Encode(wr io.Writer, wld *World, w, h int) error {
	bw := bufio.NewWriter(wr)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ch := byte('.')
			if wld.Cell(x, y) {
				ch = '#'
			}
			if err := bw.WriteByte(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
