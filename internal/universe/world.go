package universe

// ChunkCoord addresses one chunk in the sparse world grid.
type ChunkCoord struct {
	X, Y int
}

// World is a sparse, unbounded grid of bit-packed chunks. Cell coordinates
// are world-absolute and may be negative; chunk (0, 0) covers cells
// [0, 64)×[0, 64). The world never steps itself: state changes only through
// explicit writes.
type World struct {
	chunks map[ChunkCoord]*Chunk
	rev    uint64
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{chunks: make(map[ChunkCoord]*Chunk)}
}

// chunkShift is log2(ChunkSize).
const chunkShift = 6

// split separates a world coordinate into a chunk coordinate and a local
// offset. Arithmetic shift gives floor division, so negative coordinates
// land in the chunk below zero.
func split(n int) (chunk, local int) {
	return n >> chunkShift, n & (ChunkSize - 1)
}

// SetCell writes one cell in world coordinates, allocating its chunk on
// first use. Killing a cell in an unallocated chunk is a no-op.
func (w *World) SetCell(x, y int, alive bool) {
	cx, lx := split(x)
	cy, ly := split(y)
	coord := ChunkCoord{X: cx, Y: cy}
	chunk, ok := w.chunks[coord]
	if !ok {
		if !alive {
			return
		}
		chunk = &Chunk{}
		w.chunks[coord] = chunk
	}
	chunk.Set(lx, ly, alive)
	w.rev++
}

// Cell reads one cell in world coordinates.
func (w *World) Cell(x, y int) bool {
	cx, lx := split(x)
	cy, ly := split(y)
	chunk, ok := w.chunks[ChunkCoord{X: cx, Y: cy}]
	if !ok {
		return false
	}
	return chunk.Get(lx, ly)
}

// Chunk returns the chunk at coord, or nil when it was never written.
func (w *World) Chunk(coord ChunkCoord) *Chunk {
	return w.chunks[coord]
}

// Chunks exposes the allocated chunks for iteration.
func (w *World) Chunks() map[ChunkCoord]*Chunk {
	return w.chunks
}

// Clear removes every chunk.
func (w *World) Clear() {
	w.chunks = make(map[ChunkCoord]*Chunk)
	w.rev++
}

// Population counts live cells across all chunks.
func (w *World) Population() uint64 {
	var n uint64
	for _, chunk := range w.chunks {
		n += chunk.Population()
	}
	return n
}

// Revision increases on every write. Hosts compare revisions to skip
// re-rendering an unchanged world.
func (w *World) Revision() uint64 {
	return w.rev
}

// Bounds returns the chunk-coordinate extents of the allocated chunks as
// (min, max) inclusive. ok is false for an empty world.
func (w *World) Bounds() (min, max ChunkCoord, ok bool) {
	first := true
	for coord := range w.chunks {
		if first {
			min, max = coord, coord
			first = false
			continue
		}
		if coord.X < min.X {
			min.X = coord.X
		}
		if coord.Y < min.Y {
			min.Y = coord.Y
		}
		if coord.X > max.X {
			max.X = coord.X
		}
		if coord.Y > max.Y {
			max.Y = coord.Y
		}
	}
	return min, max, !first
}
