package world

const (
	// Chunk dimensions
	ChunkSizeX  = 16
	ChunkSizeZ  = 16
	ChunkHeight = 256
)

// Chunk owns a 16x16 footprint column of blocks and a cached mesh buffer.
// Its coordinate is fixed at creation; the World never relocates chunks.
type Chunk struct {
	X, Z   int
	blocks []BlockType
	mesh   []float32
	dirty  bool
}

// NewChunk creates a chunk at the given chunk coordinates and seeds it from
// the terrain generator. The mesh is built lazily on first access.
func NewChunk(x, z int, gen TerrainGenerator) *Chunk {
	c := &Chunk{
		X:      x,
		Z:      z,
		blocks: make([]BlockType, ChunkSizeX*ChunkHeight*ChunkSizeZ),
		dirty:  true,
	}
	gen.Populate(c)
	return c
}

func blockIndex(x, y, z int) int {
	return (x*ChunkHeight+y)*ChunkSizeZ + z
}

// BlockAt returns the block type at the given local coordinates.
// Out-of-range coordinates read as air.
func (c *Chunk) BlockAt(x, y, z int) BlockType {
	if x < 0 || x >= ChunkSizeX || y < 0 || y >= ChunkHeight || z < 0 || z >= ChunkSizeZ {
		return BlockTypeAir
	}
	return c.blocks[blockIndex(x, y, z)]
}

// SetBlock sets the block type at the given local coordinates and marks the
// chunk's mesh stale.
func (c *Chunk) SetBlock(x, y, z int, t BlockType) {
	if x < 0 || x >= ChunkSizeX || y < 0 || y >= ChunkHeight || z < 0 || z >= ChunkSizeZ {
		return
	}
	idx := blockIndex(x, y, z)
	if c.blocks[idx] != t {
		c.blocks[idx] = t
		c.dirty = true
	}
}

// IsAir reports whether the block at the given local coordinates is air.
func (c *Chunk) IsAir(x, y, z int) bool {
	return c.BlockAt(x, y, z) == BlockTypeAir
}

// HighestInColumn returns the Y of the topmost non-air block in the column,
// or 0 for an empty column.
func (c *Chunk) HighestInColumn(x, z int) int {
	return c.HighestInColumnFromY(x, ChunkHeight-1, z)
}

// HighestInColumnFromY scans downward from the given Y and returns the first
// non-air block's Y, or 0 if none is found.
func (c *Chunk) HighestInColumnFromY(x, y, z int) int {
	if y >= ChunkHeight {
		y = ChunkHeight - 1
	}
	for ; y > 0; y-- {
		if c.BlockAt(x, y, z) != BlockTypeAir {
			return y
		}
	}
	return 0
}

// Mesh returns the chunk's mesh buffer, rebuilding it first if block edits
// made it stale. Rebuilds always allocate a fresh buffer so callers holding
// a previous snapshot never observe in-place mutation.
func (c *Chunk) Mesh() []float32 {
	if c.dirty {
		c.mesh = buildChunkMesh(c)
		c.dirty = false
	}
	return c.mesh
}
