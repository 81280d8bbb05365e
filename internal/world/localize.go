package world

// floorDiv divides a by b rounding toward negative infinity.
// Go's integer division truncates toward zero, which is wrong for
// negative world coordinates: -1/16 must be -1, not 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns a modulo b with the sign of b, so the result is
// always in [0,b) for positive b.
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((a < 0) != (b < 0)) {
		m += b
	}
	return m
}

// Localize maps world-space horizontal coordinates to the owning chunk
// coordinate and the local offset within that chunk. The local offset is
// always in [0, ChunkSizeX) regardless of sign, and
// chunkX*ChunkSizeX + localX == worldX holds for the full int range.
func Localize(worldX, worldZ int) (chunkX, chunkZ, localX, localZ int) {
	chunkX = floorDiv(worldX, ChunkSizeX)
	chunkZ = floorDiv(worldZ, ChunkSizeZ)
	localX = floorMod(worldX, ChunkSizeX)
	localZ = floorMod(worldZ, ChunkSizeZ)
	return
}
