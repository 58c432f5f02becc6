// Package chunkdesc holds the mutable block storage one chunk is generated
// into. Generator stages write blocks here; whatever owns the chunk decides
// what to do with the result.
package chunkdesc

import (
	"villagegen/internal/gen/biomegen"
	"villagegen/internal/gen/chunkdef"
)

type ChunkDesc struct {
	CX, CZ int
	Blocks []uint16 // len = Width*Width*Height
}

func New(cx, cz int) *ChunkDesc {
	return &ChunkDesc{
		CX:     cx,
		CZ:     cz,
		Blocks: make([]uint16, chunkdef.Width*chunkdef.Width*chunkdef.Height),
	}
}

func (c *ChunkDesc) index(x, y, z int) int {
	// x fastest, then z, then y
	return x + z*chunkdef.Width + y*chunkdef.Width*chunkdef.Width
}

// GetBlock returns the block at chunk-relative (x, y, z).
func (c *ChunkDesc) GetBlock(x, y, z int) uint16 {
	return c.Blocks[c.index(x, y, z)]
}

// SetBlock stores a block at chunk-relative (x, y, z).
func (c *ChunkDesc) SetBlock(x, y, z int, b uint16) {
	c.Blocks[c.index(x, y, z)] = b
}

// SetBlockIfInside stores a block when (x, y, z) falls inside the chunk and
// is a no-op otherwise, so prefab stamping can run unclipped.
func (c *ChunkDesc) SetBlockIfInside(x, y, z int, b uint16) {
	if x < 0 || x >= chunkdef.Width || z < 0 || z >= chunkdef.Width || y < 0 || y >= chunkdef.Height {
		return
	}
	c.SetBlock(x, y, z, b)
}

// TerrainBlocks names the palette ids the base terrain is built from.
type TerrainBlocks struct {
	Stone uint16
	Dirt  uint16
	Grass uint16
	Sand  uint16
	Water uint16
}

// FillTerrain lays down the base terrain for the chunk: stone with a dirt
// cap, a biome-flavored surface block, and water up to sea level where the
// terrain dips below it. terrainHeight must report the solid ground height
// for a world column, ignoring water cover.
func (c *ChunkDesc) FillTerrain(biomes *biomegen.Map, terrainHeight func(x, z int) int, seaLevel int, tb TerrainBlocks) {
	for z := 0; z < chunkdef.Width; z++ {
		for x := 0; x < chunkdef.Width; x++ {
			wx := c.CX*chunkdef.Width + x
			wz := c.CZ*chunkdef.Width + z
			h := terrainHeight(wx, wz)
			if h >= chunkdef.Height {
				h = chunkdef.Height - 1
			}

			surface := tb.Grass
			under := tb.Dirt
			switch biomes.At(x, z) {
			case biomegen.Desert, biomegen.DesertM:
				surface = tb.Sand
				under = tb.Sand
			}

			for y := 0; y <= h; y++ {
				switch {
				case y == h:
					c.SetBlock(x, y, z, surface)
				case y >= h-2:
					c.SetBlock(x, y, z, under)
				default:
					c.SetBlock(x, y, z, tb.Stone)
				}
			}
			for y := h + 1; y <= seaLevel && y < chunkdef.Height; y++ {
				c.SetBlock(x, y, z, tb.Water)
			}
		}
	}
}
