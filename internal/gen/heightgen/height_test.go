package heightgen

import (
	"testing"

	"villagegen/internal/gen/chunkdef"
)

func TestTerrainHeight_BoundedAndDeterministic(t *testing.T) {
	g := NewNoiseGen(1337, 64, 12, 32, 62)
	for x := -200; x <= 200; x += 7 {
		for z := -200; z <= 200; z += 7 {
			h := g.TerrainHeight(x, z)
			if h < 64-12 || h > 64+12 {
				t.Fatalf("height %d at (%d,%d) outside base+-amplitude", h, x, z)
			}
			if h != g.TerrainHeight(x, z) {
				t.Fatalf("height at (%d,%d) not deterministic", x, z)
			}
		}
	}
}

func TestTerrainHeight_SeamFreeAcrossChunks(t *testing.T) {
	g := NewNoiseGen(99, 64, 12, 32, 62)
	// Neighboring columns on either side of a chunk boundary must come from
	// the same interpolated surface: the step can never exceed the lattice
	// slope.
	for z := -32; z <= 32; z++ {
		a := g.TerrainHeight(chunkdef.Width-1, z)
		b := g.TerrainHeight(chunkdef.Width, z)
		diff := a - b
		if diff < 0 {
			diff = -diff
		}
		if diff > 3 {
			t.Fatalf("height step %d across chunk boundary at z=%d", diff, z)
		}
	}
}

func TestSurfaceHeight_ClampsToSeaLevel(t *testing.T) {
	g := NewNoiseGen(5, 40, 5, 16, 62)
	// base+amplitude = 45 < sea level, so every column reads the water
	// surface.
	for x := 0; x < 64; x += 3 {
		if h := g.SurfaceHeight(x, x); h != 62 {
			t.Fatalf("surface height %d at (%d,%d), want sea level 62", h, x, x)
		}
	}

	dry := NewNoiseGen(5, 100, 5, 16, 62)
	if h := dry.SurfaceHeight(10, 10); h != dry.TerrainHeight(10, 10) {
		t.Fatalf("dry surface %d differs from terrain %d", h, dry.TerrainHeight(10, 10))
	}
}

func TestGenHeightMap_MatchesColumns(t *testing.T) {
	g := NewNoiseGen(1337, 64, 12, 32, 62)
	hm := g.GenHeightMap(3, -2)
	for z := 0; z < chunkdef.Width; z++ {
		for x := 0; x < chunkdef.Width; x++ {
			want := g.SurfaceHeight(3*chunkdef.Width+x, -2*chunkdef.Width+z)
			if got := hm.At(x, z); got != want {
				t.Fatalf("heightmap (%d,%d) = %d, want %d", x, z, got, want)
			}
		}
	}
}
