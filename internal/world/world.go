package world

import (
	"voxworld/internal/logger"
	"voxworld/internal/profiling"
)

// World owns the sparse chunk grid and the viewport mesh cache. It is driven
// by a single simulation goroutine; there is no concurrent access contract.
type World struct {
	chunks         CoordMap[*Chunk]
	renderDistance int
	gen            TerrainGenerator

	// Chunk coordinate the mesh cache was last computed for.
	viewerChunkX int
	viewerChunkZ int
	meshCache    [][]float32
}

// New creates a world with the given render distance (radius of the viewport
// disc, in chunks) and shared terrain generator.
func New(renderDistance int, gen TerrainGenerator) *World {
	return &World{
		chunks:         NewCoordMap[*Chunk](),
		renderDistance: renderDistance,
		gen:            gen,
	}
}

// RenderDistance returns the configured viewport radius in chunks.
func (w *World) RenderDistance() int {
	return w.renderDistance
}

// ChunkCount returns the number of chunks generated so far.
func (w *World) ChunkCount() int {
	return w.chunks.Len()
}

// GetOrCreateChunk returns the chunk at the given chunk coordinates,
// generating and inserting it if absent. Creation is total: it succeeds for
// every coordinate pair.
func (w *World) GetOrCreateChunk(chunkX, chunkZ int) *Chunk {
	if c, ok := w.chunks.Get(chunkX, chunkZ); ok {
		return c
	}
	defer profiling.Track("world.GenerateChunk")()
	c := NewChunk(chunkX, chunkZ, w.gen)
	w.chunks.Insert(chunkX, chunkZ, c)
	logger.Sugar.Debugf("generated chunk (%d,%d), %d total", chunkX, chunkZ, w.chunks.Len())
	return c
}

// Chunk returns the chunk at the given chunk coordinates if it has been
// created. It never creates chunks as a side effect.
func (w *World) Chunk(chunkX, chunkZ int) (*Chunk, bool) {
	return w.chunks.Get(chunkX, chunkZ)
}

// ViewportMeshes returns the mesh buffers of every chunk visible from the
// given world position. The result is cached per viewer chunk: as long as the
// viewer stays inside the same chunk and force is false, the cached sequence
// is returned unchanged and no chunks are created. Crossing a chunk boundary,
// or passing force=true (after block edits), rebuilds the cache.
func (w *World) ViewportMeshes(playerX, playerZ int, force bool) [][]float32 {
	playerChunkX := floorDiv(playerX, ChunkSizeX)
	playerChunkZ := floorDiv(playerZ, ChunkSizeZ)

	if !force &&
		len(w.meshCache) > 0 &&
		w.viewerChunkX == playerChunkX &&
		w.viewerChunkZ == playerChunkZ {
		return w.meshCache
	}

	w.recomputeViewport(playerChunkX, playerChunkZ)
	w.viewerChunkX = playerChunkX
	w.viewerChunkZ = playerChunkZ

	return w.meshCache
}

// recomputeViewport rebuilds the mesh cache for the disc of chunks within
// renderDistance of the given viewer chunk. Enumeration order is fixed:
// x ascending, then z ascending, over [-R, +R) offsets on each axis.
func (w *World) recomputeViewport(playerChunkX, playerChunkZ int) {
	defer profiling.Track("world.RecomputeViewport")()

	r := w.renderDistance
	meshes := make([][]float32, 0, len(w.meshCache))
	for dx := -r; dx < r; dx++ {
		for dz := -r; dz < r; dz++ {
			// Square -> inscribed disc.
			if dx*dx+dz*dz > r*r {
				continue
			}
			c := w.GetOrCreateChunk(playerChunkX+dx, playerChunkZ+dz)
			meshes = append(meshes, c.Mesh())
		}
	}

	w.meshCache = meshes
	logger.Sugar.Debugf("viewport recomputed at chunk (%d,%d): %d meshes", playerChunkX, playerChunkZ, len(meshes))
}

// BlockAt returns the block type at the given world coordinates. The second
// result is false when the coordinate is below the world floor or its chunk
// has never been created.
func (w *World) BlockAt(worldX, worldY, worldZ int) (BlockType, bool) {
	if worldY < 0 {
		return BlockTypeAir, false
	}
	chunkX, chunkZ, localX, localZ := Localize(worldX, worldZ)
	c, ok := w.chunks.Get(chunkX, chunkZ)
	if !ok {
		return BlockTypeAir, false
	}
	return c.BlockAt(localX, worldY, localZ), true
}

// IsAir reports whether the given world coordinate is passable. Space below
// the world floor reads as solid; unloaded space reads as empty.
func (w *World) IsAir(worldX, worldY, worldZ int) bool {
	if worldY < 0 {
		return false
	}
	chunkX, chunkZ, localX, localZ := Localize(worldX, worldZ)
	c, ok := w.chunks.Get(chunkX, chunkZ)
	if !ok {
		return true
	}
	return c.BlockAt(localX, worldY, localZ) == BlockTypeAir
}

// HighestInColumn returns the Y of the topmost non-air block in the column at
// the given world coordinates. The second result is false when the owning
// chunk has never been created.
func (w *World) HighestInColumn(worldX, worldZ int) (int, bool) {
	chunkX, chunkZ, localX, localZ := Localize(worldX, worldZ)
	c, ok := w.chunks.Get(chunkX, chunkZ)
	if !ok {
		return 0, false
	}
	return c.HighestInColumn(localX, localZ), true
}

// HighestInColumnFromY is HighestInColumn with the scan bounded to start at
// the given Y.
func (w *World) HighestInColumnFromY(worldX, worldY, worldZ int) (int, bool) {
	chunkX, chunkZ, localX, localZ := Localize(worldX, worldZ)
	c, ok := w.chunks.Get(chunkX, chunkZ)
	if !ok {
		return 0, false
	}
	return c.HighestInColumnFromY(localX, worldY, localZ), true
}

// SetBlock writes the block type at the given world coordinates. The target
// chunk must already exist: callers are responsible for loading it first
// (e.g. via GetOrCreateChunk), and a write into an unloaded chunk panics.
func (w *World) SetBlock(worldX, worldY, worldZ int, t BlockType) {
	chunkX, chunkZ, localX, localZ := Localize(worldX, worldZ)
	c, ok := w.chunks.Get(chunkX, chunkZ)
	if !ok {
		logger.Sugar.Panicf("set block (%d,%d,%d): chunk (%d,%d) not loaded", worldX, worldY, worldZ, chunkX, chunkZ)
	}
	c.SetBlock(localX, worldY, localZ, t)
}
