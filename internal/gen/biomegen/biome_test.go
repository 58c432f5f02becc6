package biomegen

import (
	"testing"

	"villagegen/internal/gen/chunkdef"
)

func TestRegionGen_ConstantWithinRegion(t *testing.T) {
	g := NewRegionGen(1337, 96)
	want := g.BiomeAt(0, 0)
	for x := 0; x < 96; x += 13 {
		for z := 0; z < 96; z += 13 {
			if got := g.BiomeAt(x, z); got != want {
				t.Fatalf("biome at (%d,%d) = %s, want %s", x, z, got, want)
			}
		}
	}
	// Negative regions resolve with floored division, not truncation.
	if a, b := g.BiomeAt(-1, 0), g.BiomeAt(-96, 0); a != b {
		t.Fatalf("region (-1..-96, 0) split: %s vs %s", a, b)
	}
}

func TestRegionGen_Deterministic(t *testing.T) {
	a := NewRegionGen(7, 96)
	b := NewRegionGen(7, 96)
	m1 := a.GenBiomes(5, -3)
	m2 := b.GenBiomes(5, -3)
	if *m1 != *m2 {
		t.Fatalf("same seed produced different biome maps")
	}
}

func TestGenBiomes_MatchesBiomeAt(t *testing.T) {
	g := NewRegionGen(42, 96)
	m := g.GenBiomes(2, -1)
	for z := 0; z < chunkdef.Width; z++ {
		for x := 0; x < chunkdef.Width; x++ {
			want := g.BiomeAt(2*chunkdef.Width+x, -1*chunkdef.Width+z)
			if got := m.At(x, z); got != want {
				t.Fatalf("map (%d,%d) = %s, want %s", x, z, got, want)
			}
		}
	}
}
