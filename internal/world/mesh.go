package world

// VertexStride is the number of float32 per mesh vertex (pos.xyz + normal.xyz).
const VertexStride = 6

// faceDef holds the neighbor direction that exposes a cube face and the six
// vertices (position relative to the block center, plus normal) that render it.
type faceDef struct {
	dx, dy, dz int
	verts      [36]float32
}

var cubeFaces = [6]faceDef{
	// +Z
	{0, 0, 1, [36]float32{
		-0.5, -0.5, 0.5, 0, 0, 1,
		0.5, -0.5, 0.5, 0, 0, 1,
		0.5, 0.5, 0.5, 0, 0, 1,
		0.5, 0.5, 0.5, 0, 0, 1,
		-0.5, 0.5, 0.5, 0, 0, 1,
		-0.5, -0.5, 0.5, 0, 0, 1,
	}},
	// -Z
	{0, 0, -1, [36]float32{
		0.5, -0.5, -0.5, 0, 0, -1,
		-0.5, -0.5, -0.5, 0, 0, -1,
		-0.5, 0.5, -0.5, 0, 0, -1,
		-0.5, 0.5, -0.5, 0, 0, -1,
		0.5, 0.5, -0.5, 0, 0, -1,
		0.5, -0.5, -0.5, 0, 0, -1,
	}},
	// -X
	{-1, 0, 0, [36]float32{
		-0.5, -0.5, -0.5, -1, 0, 0,
		-0.5, -0.5, 0.5, -1, 0, 0,
		-0.5, 0.5, 0.5, -1, 0, 0,
		-0.5, 0.5, 0.5, -1, 0, 0,
		-0.5, 0.5, -0.5, -1, 0, 0,
		-0.5, -0.5, -0.5, -1, 0, 0,
	}},
	// +X
	{1, 0, 0, [36]float32{
		0.5, -0.5, 0.5, 1, 0, 0,
		0.5, -0.5, -0.5, 1, 0, 0,
		0.5, 0.5, -0.5, 1, 0, 0,
		0.5, 0.5, -0.5, 1, 0, 0,
		0.5, 0.5, 0.5, 1, 0, 0,
		0.5, -0.5, 0.5, 1, 0, 0,
	}},
	// +Y
	{0, 1, 0, [36]float32{
		-0.5, 0.5, 0.5, 0, 1, 0,
		0.5, 0.5, 0.5, 0, 1, 0,
		0.5, 0.5, -0.5, 0, 1, 0,
		0.5, 0.5, -0.5, 0, 1, 0,
		-0.5, 0.5, -0.5, 0, 1, 0,
		-0.5, 0.5, 0.5, 0, 1, 0,
	}},
	// -Y
	{0, -1, 0, [36]float32{
		-0.5, -0.5, -0.5, 0, -1, 0,
		0.5, -0.5, -0.5, 0, -1, 0,
		0.5, -0.5, 0.5, 0, -1, 0,
		0.5, -0.5, 0.5, 0, -1, 0,
		-0.5, -0.5, 0.5, 0, -1, 0,
		-0.5, -0.5, -0.5, 0, -1, 0,
	}},
}

// buildChunkMesh builds a face-culled triangle list (pos+normal interleaved,
// world-space positions) for the chunk. Faces are emitted only where the
// neighboring block inside the chunk is air; neighbors outside the chunk are
// treated as exposed.
func buildChunkMesh(c *Chunk) []float32 {
	vertices := make([]float32, 0, 1024)

	baseX := float32(c.X * ChunkSizeX)
	baseZ := float32(c.Z * ChunkSizeZ)

	for lx := 0; lx < ChunkSizeX; lx++ {
		for lz := 0; lz < ChunkSizeZ; lz++ {
			for ly := 0; ly < ChunkHeight; ly++ {
				if c.BlockAt(lx, ly, lz) == BlockTypeAir {
					continue
				}
				px := baseX + float32(lx)
				py := float32(ly)
				pz := baseZ + float32(lz)
				for _, f := range cubeFaces {
					nx, ny, nz := lx+f.dx, ly+f.dy, lz+f.dz
					if inChunkBounds(nx, ny, nz) && c.BlockAt(nx, ny, nz) != BlockTypeAir {
						continue
					}
					for v := 0; v < 6; v++ {
						o := v * VertexStride
						vertices = append(vertices,
							px+f.verts[o], py+f.verts[o+1], pz+f.verts[o+2],
							f.verts[o+3], f.verts[o+4], f.verts[o+5],
						)
					}
				}
			}
		}
	}

	return vertices
}

func inChunkBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkHeight && z >= 0 && z < ChunkSizeZ
}
