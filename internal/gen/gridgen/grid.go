// Package gridgen partitions infinite 2-D space into a jittered grid of
// cells and asks a Source for at most one structure per cell. Finished
// structures are cached so every chunk they overlap draws the same instance.
package gridgen

import (
	"villagegen/internal/gen/chunkdef"
	"villagegen/internal/gen/chunkdesc"
	"villagegen/internal/gen/mathx"
	"villagegen/internal/gen/piece"
)

// Structure is one generated instance anchored to a grid cell.
type Structure interface {
	// DrawIntoChunk renders all overlapping geometry into the chunk.
	DrawIntoChunk(ch *chunkdesc.ChunkDesc)

	// Borders returns the cuboid no geometry of the structure exceeds.
	Borders() piece.Cuboid
}

// Source decides whether a grid cell holds a structure and builds it.
// A nil return means the cell stays empty.
type Source interface {
	CreateStructure(gridX, gridZ, originX, originZ int) Structure
}

const defaultMaxCache = 256

// Grid drives a Source over the cells overlapping each requested chunk.
// A Grid is used from a single goroutine; the per-cell cache guarantees
// at-most-one construction per cell within it.
type Grid struct {
	seed             int64
	source           Source
	gridSize         int
	maxOffset        int
	maxStructureSize int

	cache map[[2]int]Structure
	order [][2]int
}

func NewGrid(seed int64, source Source, gridSize, maxOffset, maxStructureSize int) *Grid {
	if gridSize <= 0 {
		gridSize = 1
	}
	return &Grid{
		seed:             seed,
		source:           source,
		gridSize:         gridSize,
		maxOffset:        maxOffset,
		maxStructureSize: maxStructureSize,
		cache:            map[[2]int]Structure{},
	}
}

// originForCell returns the jittered structure origin of a cell.
func (g *Grid) originForCell(gx, gz int) (ox, oz int) {
	ox = gx * g.gridSize
	oz = gz * g.gridSize
	if g.maxOffset > 0 {
		h := mathx.Hash2(g.seed+9, gx, gz)
		ox += mathx.Range(h, g.maxOffset+1)
		oz += mathx.Range(h>>20, g.maxOffset+1)
	}
	return ox, oz
}

func (g *Grid) structureForCell(gx, gz int) Structure {
	key := [2]int{gx, gz}
	if s, ok := g.cache[key]; ok {
		return s
	}
	ox, oz := g.originForCell(gx, gz)
	s := g.source.CreateStructure(gx, gz, ox, oz)
	if len(g.order) >= defaultMaxCache {
		oldest := g.order[0]
		g.order = g.order[1:]
		delete(g.cache, oldest)
	}
	g.cache[key] = s
	g.order = append(g.order, key)
	return s
}

// GenStructures draws every cached-or-created structure overlapping the
// chunk into it.
func (g *Grid) GenStructures(ch *chunkdesc.ChunkDesc) {
	minX := ch.CX*chunkdef.Width - g.maxStructureSize
	maxX := ch.CX*chunkdef.Width + chunkdef.Width - 1 + g.maxStructureSize
	minZ := ch.CZ*chunkdef.Width - g.maxStructureSize
	maxZ := ch.CZ*chunkdef.Width + chunkdef.Width - 1 + g.maxStructureSize

	chunkBox := piece.NewCuboid(
		ch.CX*chunkdef.Width, 0, ch.CZ*chunkdef.Width,
		ch.CX*chunkdef.Width+chunkdef.Width-1, chunkdef.Height-1, ch.CZ*chunkdef.Width+chunkdef.Width-1,
	)

	for gz := mathx.FloorDiv(minZ, g.gridSize); gz <= mathx.FloorDiv(maxZ, g.gridSize); gz++ {
		for gx := mathx.FloorDiv(minX, g.gridSize); gx <= mathx.FloorDiv(maxX, g.gridSize); gx++ {
			s := g.structureForCell(gx, gz)
			if s == nil {
				continue
			}
			if s.Borders().Intersects(chunkBox) {
				s.DrawIntoChunk(ch)
			}
		}
	}
}
