package shade

import "testing"

func TestTexelIndexStaysInBounds(t *testing.T) {
	dims := [][2]int{{64, 64}, {128, 1}, {1, 1}, {7, 3}, {300, 200}}
	coords := [][2]float64{
		{0, 0}, {1, 0}, {0, 1}, {1, 1},
		{0.5, 0.5}, {0.999999, 0.000001}, {1.0, 0.5}, {0.5, 1.0},
	}
	for _, d := range dims {
		for _, c := range coords {
			x, y := TexelIndex(c[0], c[1], d[0], d[1])
			if x < 0 || x >= d[0] || y < 0 || y >= d[1] {
				t.Fatalf("TexelIndex(%v, %v, %d, %d) = (%d, %d), out of bounds",
					c[0], c[1], d[0], d[1], x, y)
			}
		}
	}
}

func TestTexelIndexVerticalFlip(t *testing.T) {
	// v near the bottom of the surface maps to the highest row.
	_, y := TexelIndex(0.5, 0.001, 64, 64)
	if y != 63 {
		t.Fatalf("v near 0 mapped to row %d, want 63", y)
	}
	// v near the top maps to row 0.
	_, y = TexelIndex(0.5, 0.999, 64, 64)
	if y != 0 {
		t.Fatalf("v near 1 mapped to row %d, want 0", y)
	}
	_, y = TexelIndex(0.5, 1.0, 64, 64)
	if y != 0 {
		t.Fatalf("v = 1 mapped to row %d, want 0", y)
	}
	_, y = TexelIndex(0.5, 0.0, 64, 64)
	if y != 63 {
		t.Fatalf("v = 0 mapped to row %d, want 63", y)
	}
}

func TestTexelIndexCellBoundaries(t *testing.T) {
	cases := []struct {
		u     float64
		wantX int
	}{
		{0.0, 0},
		{1.0 / 64, 1},
		{0.5, 32},
		{63.0 / 64, 63},
		{1.0, 63},
	}
	for _, c := range cases {
		x, _ := TexelIndex(c.u, 0.5, 64, 64)
		if x != c.wantX {
			t.Fatalf("u=%v mapped to column %d, want %d", c.u, x, c.wantX)
		}
	}
}

func TestPackedAddressWordBoundary(t *testing.T) {
	cases := []struct {
		row, col  int
		wantTexel int
		wantBit   int
	}{
		{0, 0, 0, 0},
		{0, 31, 0, 31},
		{0, 32, 1, 0},
		{0, 63, 1, 31},
		{1, 0, 2, 0},
		{63, 63, 127, 31},
	}
	for _, c := range cases {
		texelX, bit := PackedAddress(c.row, c.col)
		if texelX != c.wantTexel || bit != c.wantBit {
			t.Fatalf("PackedAddress(%d, %d) = (%d, %d), want (%d, %d)",
				c.row, c.col, texelX, bit, c.wantTexel, c.wantBit)
		}
	}
}
