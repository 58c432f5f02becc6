// Package chunkdef holds the chunk dimensions and coordinate conversions
// shared by every generator stage.
package chunkdef

import "villagegen/internal/gen/mathx"

const (
	// Width is the chunk edge length in blocks, in both X and Z.
	Width = 16

	// Height is the world height in blocks.
	Height = 256
)

// HeightMap is the per-column surface height of one chunk. The height is the
// Y coordinate of the topmost non-air block (water surface over oceans).
type HeightMap [Width * Width]int

func hmIndex(x, z int) int {
	// x fastest, then z
	return x + z*Width
}

// At returns the surface height at chunk-relative column (x, z).
func (hm *HeightMap) At(x, z int) int {
	return hm[hmIndex(x, z)]
}

// Set stores the surface height at chunk-relative column (x, z).
func (hm *HeightMap) Set(x, z, h int) {
	hm[hmIndex(x, z)] = h
}

// BlockToChunk converts world block coords to the owning chunk coords.
func BlockToChunk(x, z int) (cx, cz int) {
	return mathx.FloorDiv(x, Width), mathx.FloorDiv(z, Width)
}

// AbsoluteToRelative converts world block coords to chunk-relative coords
// plus the owning chunk coords.
func AbsoluteToRelative(x, z int) (relX, relZ, cx, cz int) {
	cx, cz = BlockToChunk(x, z)
	return x - cx*Width, z - cz*Width, cx, cz
}
