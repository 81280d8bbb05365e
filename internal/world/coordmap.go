package world

// ChunkCoord addresses a chunk by its position in the chunk grid.
type ChunkCoord struct {
	X, Z int
}

// CoordMap is a sparse associative container keyed by chunk coordinates.
// Keys are unique and unordered.
type CoordMap[T any] struct {
	m map[ChunkCoord]T
}

// NewCoordMap creates an empty coordinate map.
func NewCoordMap[T any]() CoordMap[T] {
	return CoordMap[T]{m: make(map[ChunkCoord]T)}
}

// Contains reports whether a value exists at the given coordinates.
func (cm CoordMap[T]) Contains(x, z int) bool {
	_, ok := cm.m[ChunkCoord{X: x, Z: z}]
	return ok
}

// Get returns the value at the given coordinates, if present.
func (cm CoordMap[T]) Get(x, z int) (T, bool) {
	v, ok := cm.m[ChunkCoord{X: x, Z: z}]
	return v, ok
}

// Insert stores a value at the given coordinates, replacing any previous entry.
func (cm CoordMap[T]) Insert(x, z int, v T) {
	cm.m[ChunkCoord{X: x, Z: z}] = v
}

// Len returns the number of stored entries.
func (cm CoordMap[T]) Len() int {
	return len(cm.m)
}
