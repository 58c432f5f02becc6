// Package biomegen assigns a biome to every block column. Biomes are picked
// per region from a hash of the region coords, so classification is seam-safe
// and needs no shared generator state.
package biomegen

import (
	"villagegen/internal/gen/chunkdef"
	"villagegen/internal/gen/mathx"
)

type Biome string

const (
	Ocean           Biome = "OCEAN"
	Plains          Biome = "PLAINS"
	Desert          Biome = "DESERT"
	DesertM         Biome = "DESERT_M"
	Forest          Biome = "FOREST"
	River           Biome = "RIVER"
	Swamp           Biome = "SWAMP"
	Savanna         Biome = "SAVANNA"
	SavannaM        Biome = "SAVANNA_M"
	SunflowerPlains Biome = "SUNFLOWER_PLAINS"
)

// Map is the per-column biome classification of one chunk.
type Map [chunkdef.Width * chunkdef.Width]Biome

func (m *Map) At(x, z int) Biome {
	return m[x+z*chunkdef.Width]
}

func (m *Map) Set(x, z int, b Biome) {
	m[x+z*chunkdef.Width] = b
}

// Source supplies the biome classification for a chunk.
type Source interface {
	GenBiomes(cx, cz int) *Map
}

// RegionGen is the default Source: one biome per regionSize-sized square
// region, chosen by a hash of the region coords.
type RegionGen struct {
	seed       int64
	regionSize int
}

func NewRegionGen(seed int64, regionSize int) *RegionGen {
	if regionSize <= 0 {
		regionSize = 1
	}
	return &RegionGen{seed: seed, regionSize: regionSize}
}

func biomeFrom(noise uint64) Biome {
	switch noise % 8 {
	case 0:
		return Plains
	case 1:
		return Desert
	case 2:
		return Forest
	case 3:
		return Savanna
	case 4:
		return Ocean
	case 5:
		return SunflowerPlains
	case 6:
		return Swamp
	default:
		return DesertM
	}
}

// BiomeAt classifies a single block column.
func (g *RegionGen) BiomeAt(x, z int) Biome {
	rx := mathx.FloorDiv(x, g.regionSize)
	rz := mathx.FloorDiv(z, g.regionSize)
	return biomeFrom(mathx.Hash2(g.seed, rx, rz))
}

func (g *RegionGen) GenBiomes(cx, cz int) *Map {
	var m Map
	for z := 0; z < chunkdef.Width; z++ {
		for x := 0; x < chunkdef.Width; x++ {
			m.Set(x, z, g.BiomeAt(cx*chunkdef.Width+x, cz*chunkdef.Width+z))
		}
	}
	return &m
}
