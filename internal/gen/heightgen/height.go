// Package heightgen produces per-chunk surface heightmaps from smoothed
// value noise of the world seed.
package heightgen

import (
	"villagegen/internal/gen/chunkdef"
	"villagegen/internal/gen/mathx"
)

// Source supplies the surface heightmap for a chunk.
type Source interface {
	GenHeightMap(cx, cz int) *chunkdef.HeightMap
}

// NoiseGen is the default Source: hash noise at lattice points every cellSize
// blocks, bilinearly interpolated between them. Columns whose terrain falls
// below sea level report the water surface instead, matching how the
// heightmap is consumed by road drawing.
type NoiseGen struct {
	seed      int64
	base      int
	amplitude int
	cellSize  int
	seaLevel  int
}

func NewNoiseGen(seed int64, base, amplitude, cellSize, seaLevel int) *NoiseGen {
	if cellSize <= 0 {
		cellSize = 1
	}
	if amplitude < 1 {
		amplitude = 1
	}
	return &NoiseGen{seed: seed, base: base, amplitude: amplitude, cellSize: cellSize, seaLevel: seaLevel}
}

func (g *NoiseGen) latticeHeight(lx, lz int) int {
	return g.base + mathx.Range(mathx.Hash2(g.seed, lx, lz), 2*g.amplitude+1) - g.amplitude
}

// TerrainHeight returns the solid terrain height at a world column, ignoring
// any water cover.
func (g *NoiseGen) TerrainHeight(x, z int) int {
	lx := mathx.FloorDiv(x, g.cellSize)
	lz := mathx.FloorDiv(z, g.cellSize)
	fx := mathx.Mod(x, g.cellSize)
	fz := mathx.Mod(z, g.cellSize)

	h00 := g.latticeHeight(lx, lz)
	h10 := g.latticeHeight(lx+1, lz)
	h01 := g.latticeHeight(lx, lz+1)
	h11 := g.latticeHeight(lx+1, lz+1)

	// Integer bilinear interpolation.
	c := g.cellSize
	top := h00*(c-fx) + h10*fx
	bot := h01*(c-fx) + h11*fx
	return (top*(c-fz) + bot*fz) / (c * c)
}

// SurfaceHeight is TerrainHeight clamped up to the water surface.
func (g *NoiseGen) SurfaceHeight(x, z int) int {
	h := g.TerrainHeight(x, z)
	if h < g.seaLevel {
		return g.seaLevel
	}
	return h
}

func (g *NoiseGen) GenHeightMap(cx, cz int) *chunkdef.HeightMap {
	var hm chunkdef.HeightMap
	for z := 0; z < chunkdef.Width; z++ {
		for x := 0; x < chunkdef.Width; x++ {
			hm.Set(x, z, g.SurfaceHeight(cx*chunkdef.Width+x, cz*chunkdef.Width+z))
		}
	}
	return &hm
}
