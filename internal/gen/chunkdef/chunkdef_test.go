package chunkdef

import "testing"

func TestBlockToChunk(t *testing.T) {
	cases := []struct {
		x, z   int
		cx, cz int
	}{
		{0, 0, 0, 0},
		{15, 15, 0, 0},
		{16, 0, 1, 0},
		{-1, -1, -1, -1},
		{-16, -17, -1, -2},
		{384, -384, 24, -24},
	}
	for _, c := range cases {
		cx, cz := BlockToChunk(c.x, c.z)
		if cx != c.cx || cz != c.cz {
			t.Fatalf("BlockToChunk(%d,%d)=(%d,%d) want (%d,%d)", c.x, c.z, cx, cz, c.cx, c.cz)
		}
	}
}

func TestAbsoluteToRelative(t *testing.T) {
	relX, relZ, cx, cz := AbsoluteToRelative(-1, 17)
	if relX != 15 || relZ != 1 || cx != -1 || cz != 1 {
		t.Fatalf("AbsoluteToRelative(-1,17)=(%d,%d,%d,%d)", relX, relZ, cx, cz)
	}
	// Round trip.
	for _, xz := range [][2]int{{0, 0}, {-100, 250}, {383, -129}} {
		relX, relZ, cx, cz := AbsoluteToRelative(xz[0], xz[1])
		if cx*Width+relX != xz[0] || cz*Width+relZ != xz[1] {
			t.Fatalf("round trip failed for %v", xz)
		}
		if relX < 0 || relX >= Width || relZ < 0 || relZ >= Width {
			t.Fatalf("relative out of range for %v: (%d,%d)", xz, relX, relZ)
		}
	}
}

func TestHeightMapAccess(t *testing.T) {
	var hm HeightMap
	hm.Set(3, 5, 71)
	if hm.At(3, 5) != 71 {
		t.Fatalf("heightmap round trip failed")
	}
	if hm.At(5, 3) == 71 {
		t.Fatalf("heightmap is transposed")
	}
}
