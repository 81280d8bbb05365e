package world

import "testing"

func TestLocalizeNegativeBoundaries(t *testing.T) {
	cases := []struct {
		worldX               int
		wantChunk, wantLocal int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{15, 0, 15},
		{16, 1, 0},
		{17, 1, 1},
		{-1, -1, 15},
		{-16, -1, 0},
		{-17, -2, 15},
		{-32, -2, 0},
		{-33, -3, 15},
	}

	for _, c := range cases {
		chunkX, chunkZ, localX, localZ := Localize(c.worldX, c.worldX)
		if chunkX != c.wantChunk || localX != c.wantLocal {
			t.Errorf("Localize(%d) x: got chunk %d local %d, want chunk %d local %d",
				c.worldX, chunkX, localX, c.wantChunk, c.wantLocal)
		}
		if chunkZ != c.wantChunk || localZ != c.wantLocal {
			t.Errorf("Localize(%d) z: got chunk %d local %d, want chunk %d local %d",
				c.worldX, chunkZ, localZ, c.wantChunk, c.wantLocal)
		}
	}
}

func TestLocalizeRoundTrip(t *testing.T) {
	for worldX := -1000; worldX <= 1000; worldX++ {
		chunkX, _, localX, _ := Localize(worldX, 0)
		if localX < 0 || localX >= ChunkSizeX {
			t.Fatalf("Localize(%d): local %d out of [0,%d)", worldX, localX, ChunkSizeX)
		}
		if chunkX*ChunkSizeX+localX != worldX {
			t.Fatalf("Localize(%d): chunk %d * %d + local %d != %d",
				worldX, chunkX, ChunkSizeX, localX, worldX)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{0, 16, 0},
		{15, 16, 0},
		{16, 16, 1},
		{-1, 16, -1},
		{-16, 16, -1},
		{-17, 16, -2},
	}
	for _, c := range cases {
		if got := floorDiv(c.a, c.b); got != c.want {
			t.Errorf("floorDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
