package universe

import (
	"testing"

	"cellshade/internal/shade"
)

func TestChunkSetGet(t *testing.T) {
	var c Chunk
	c.Set(0, 0, true)
	c.Set(63, 63, true)
	c.Set(31, 7, true)

	if !c.Get(0, 0) || !c.Get(63, 63) || !c.Get(31, 7) {
		t.Fatal("set cells read back dead")
	}
	if c.Get(1, 0) || c.Get(0, 1) {
		t.Fatal("untouched cells read back alive")
	}

	c.Set(31, 7, false)
	if c.Get(31, 7) {
		t.Fatal("cleared cell still alive")
	}
}

func TestChunkIgnoresOutOfRange(t *testing.T) {
	var c Chunk
	c.Set(-1, 0, true)
	c.Set(0, -1, true)
	c.Set(64, 0, true)
	c.Set(0, 64, true)

	if c.Population() != 0 {
		t.Fatalf("out-of-range writes changed population: %d", c.Population())
	}
	if c.Get(-1, 0) || c.Get(64, 0) {
		t.Fatal("out-of-range reads returned alive")
	}
}

func TestChunkPackSplitsRows(t *testing.T) {
	var c Chunk
	c.Set(0, 0, true)   // bit 0 of row 0, low word
	c.Set(31, 0, true)  // bit 31 of row 0, low word
	c.Set(32, 0, true)  // bit 0 of row 0, high word
	c.Set(63, 5, true)  // bit 31 of row 5, high word

	tex := shade.NewTexture(shade.PackedWidth, 1)
	c.Pack(tex)

	if got := tex.Fetch(0, 0); got != 1|1<<31 {
		t.Fatalf("low word of row 0 = %#x, want %#x", got, uint32(1|1<<31))
	}
	if got := tex.Fetch(1, 0); got != 1 {
		t.Fatalf("high word of row 0 = %#x, want 1", got)
	}
	if got := tex.Fetch(11, 0); got != 1<<31 {
		t.Fatalf("high word of row 5 = %#x, want %#x", got, uint32(1)<<31)
	}
	if got := tex.Fetch(10, 0); got != 0 {
		t.Fatalf("low word of row 5 = %#x, want 0", got)
	}
}

func TestChunkPackRejectsWrongShape(t *testing.T) {
	var c Chunk
	c.Set(0, 0, true)
	tex := shade.NewTexture(64, 1)
	c.Pack(tex)
	for i, v := range tex.Texels() {
		if v != 0 {
			t.Fatalf("texel %d written despite wrong texture shape", i)
		}
	}
}

func TestChunkPopulationAndClear(t *testing.T) {
	var c Chunk
	for i := 0; i < 64; i++ {
		c.Set(i, i, true)
	}
	if c.Population() != 64 {
		t.Fatalf("population = %d, want 64", c.Population())
	}
	if c.Empty() {
		t.Fatal("populated chunk reported empty")
	}
	c.Clear()
	if !c.Empty() {
		t.Fatal("cleared chunk not empty")
	}
}
