package world

import "math"

// TerrainGenerator seeds freshly created chunks with terrain.
type TerrainGenerator interface {
	// HeightAt computes the surface height (block Y) at world X,Z.
	// A negative height means the column is empty.
	HeightAt(worldX, worldZ int) int
	// Populate fills a chunk's block grid.
	Populate(c *Chunk)
}

// GenParams tunes the simplex heightmap generator.
type GenParams struct {
	Scale       float64
	BaseHeight  int
	Amplitude   float64
	Octaves     int
	Persistence float64
	Lacunarity  float64
}

// DefaultGenParams returns the stock terrain shape.
func DefaultGenParams() GenParams {
	return GenParams{
		Scale:       1.0 / 64.0,
		BaseHeight:  32,
		Amplitude:   32,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}

// Generator is the default heightmap terrain generator. It samples a shared
// simplex noise field so adjacent chunks line up seamlessly.
type Generator struct {
	noise  *Simplex
	params GenParams
}

// NewGenerator creates a generator with default parameters.
func NewGenerator(seed int64) *Generator {
	return NewGeneratorParams(seed, DefaultGenParams())
}

// NewGeneratorParams creates a generator with explicit parameters.
func NewGeneratorParams(seed int64, params GenParams) *Generator {
	return &Generator{
		noise:  NewSimplex(seed),
		params: params,
	}
}

// HeightAt computes the surface height (block Y) at world X,Z.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	p := g.params
	x := float64(worldX) * p.Scale
	z := float64(worldZ) * p.Scale
	n := g.noise.OctaveNoise2D(x, z, p.Octaves, p.Persistence, p.Lacunarity)
	height := float64(p.BaseHeight) + n*p.Amplitude
	if height < 0 {
		height = 0
	}
	return int(math.Floor(height))
}

// Populate fills a chunk using the noise heightmap: bedrock at the world
// floor, dirt body, grass cap.
func (g *Generator) Populate(c *Chunk) {
	for lx := 0; lx < ChunkSizeX; lx++ {
		for lz := 0; lz < ChunkSizeZ; lz++ {
			worldX := c.X*ChunkSizeX + lx
			worldZ := c.Z*ChunkSizeZ + lz
			top := g.HeightAt(worldX, worldZ)
			if top >= ChunkHeight {
				top = ChunkHeight - 1
			}
			for ly := 0; ly < top; ly++ {
				if ly == 0 {
					c.SetBlock(lx, ly, lz, BlockTypeBedrock)
				} else {
					c.SetBlock(lx, ly, lz, BlockTypeDirt)
				}
			}
			if top == 0 {
				c.SetBlock(lx, top, lz, BlockTypeBedrock)
			} else {
				c.SetBlock(lx, top, lz, BlockTypeGrass)
			}
		}
	}
}

// FlatGenerator produces columns of uniform height. A negative height leaves
// chunks empty, which is what the tests use for hand-built worlds.
type FlatGenerator struct {
	height int
}

// NewFlatGenerator creates a flat terrain generator.
func NewFlatGenerator(height int) *FlatGenerator {
	return &FlatGenerator{height: height}
}

// HeightAt returns the fixed surface height regardless of position.
func (g *FlatGenerator) HeightAt(worldX, worldZ int) int {
	return g.height
}

// Populate fills every column up to the fixed height.
func (g *FlatGenerator) Populate(c *Chunk) {
	top := g.height
	if top < 0 {
		return
	}
	if top >= ChunkHeight {
		top = ChunkHeight - 1
	}
	for lx := 0; lx < ChunkSizeX; lx++ {
		for lz := 0; lz < ChunkSizeZ; lz++ {
			for ly := 0; ly < top; ly++ {
				if ly == 0 {
					c.SetBlock(lx, ly, lz, BlockTypeBedrock)
				} else {
					c.SetBlock(lx, ly, lz, BlockTypeDirt)
				}
			}
			if top == 0 {
				c.SetBlock(lx, top, lz, BlockTypeBedrock)
			} else {
				c.SetBlock(lx, top, lz, BlockTypeGrass)
			}
		}
	}
}
