package village

import (
	"villagegen/internal/gen/chunkdef"
	"villagegen/internal/gen/chunkdesc"
	"villagegen/internal/gen/heightgen"
	"villagegen/internal/gen/mathx"
	"villagegen/internal/gen/piece"
	"villagegen/internal/gen/prefab"
)

// Village is one settlement instance. It owns its placed pieces exclusively;
// the style pool it wraps is shared and read-only. Village also implements
// piece.Pool: the assembler queries it, and it injects the density check and
// per-structure instance caps before delegating to the style pool.
type Village struct {
	seed             int64
	originX, originZ int
	density          int
	borders          piece.Cuboid
	pool             *PiecePool
	heightGen        heightgen.Source
	roadBlock        uint16
	waterRoadBlock   uint16
	isLiquid         func(uint16) bool

	pieces       []*piece.PlacedPiece
	placedCounts map[piece.Piece]int
}

// newVillage assembles the settlement's piece tree and snaps the root to the
// ground, cascading the offset through connector-only descendants.
func newVillage(
	seed int64,
	originX, originZ int,
	maxRoadDepth, maxSize, density int,
	pool *PiecePool,
	heightGen heightgen.Source,
	roadBlock, waterRoadBlock uint16,
	isLiquid func(uint16) bool,
) *Village {
	v := &Village{
		seed:           seed,
		originX:        originX,
		originZ:        originZ,
		density:        density,
		borders:        piece.NewCuboid(originX-maxSize, 0, originZ-maxSize, originX+maxSize, chunkdef.Height-1, originZ+maxSize),
		pool:           pool,
		heightGen:      heightGen,
		roadBlock:      roadBlock,
		waterRoadBlock: waterRoadBlock,
		isLiquid:       isLiquid,
		placedCounts:   map[piece.Piece]int{},
	}

	v.pieces = piece.PlacePieces(v, seed, originX, 0, originZ, maxRoadDepth+1, v.borders)
	if len(v.pieces) == 0 {
		return v
	}

	root := v.pieces[0]
	if root.Piece().ShouldMoveToGround() {
		origY := root.Coords()[1]
		v.placePieceOnGround(root)
		v.moveAllDescendants(0, root.Coords()[1]-origY)
	}
	return v
}

func (v *Village) Style() string                { return v.pool.Name() }
func (v *Village) Density() int                 { return v.density }
func (v *Village) Pieces() []*piece.PlacedPiece { return v.pieces }
func (v *Village) Borders() piece.Cuboid        { return v.borders }

// DrawIntoChunk renders every piece overlapping the chunk. The chunk
// heightmap is obtained once and shared by all roads in the chunk.
func (v *Village) DrawIntoChunk(ch *chunkdesc.ChunkDesc) {
	hm := v.heightGen.GenHeightMap(ch.CX, ch.CZ)
	for _, pp := range v.pieces {
		pf, ok := pp.Piece().(*prefab.Prefab)
		if !ok {
			continue
		}
		if pf.Size()[1] == 1 {
			// Roads re-surface the terrain instead of stamping blocks.
			v.drawRoad(ch, pp, hm)
			continue
		}
		if pf.ShouldMoveToGround() && !pp.HasBeenMovedToGround() {
			v.placePieceOnGround(pp)
		}
		pf.Draw(ch, pp)
	}
}

// placePieceOnGround shifts the piece so its first connector rests one block
// above the terrain surface.
func (v *Village) placePieceOnGround(pp *piece.PlacedPiece) {
	first := pp.RotatedConnector(pp.Piece().Connectors()[0])
	relX, relZ, cx, cz := chunkdef.AbsoluteToRelative(first.Pos[0], first.Pos[2])
	hm := v.heightGen.GenHeightMap(cx, cz)
	terrainHeight := hm.At(relX, relZ)
	pp.MoveToGroundBy(terrainHeight - first.Pos[1] + 1)
}

// moveAllDescendants applies the pivot's vertical shift to every descendant
// reachable through chains of pieces that attach purely by connectors. A
// descendant with its own ground rule stops the cascade and gets snapped
// independently at draw time.
func (v *Village) moveAllDescendants(pivot, heightDifference int) {
	pivotPiece := v.pieces[pivot]
	for i := pivot + 1; i < len(v.pieces); i++ {
		if v.pieces[i].Parent() != pivotPiece {
			continue
		}
		if v.pieces[i].Piece().ShouldMoveToGround() {
			continue
		}
		v.pieces[i].MoveToGroundBy(heightDifference)
		v.moveAllDescendants(i, heightDifference)
	}
}

// drawRoad clips the road's footprint to the chunk and paves the surface
// block of every column, substituting the water-crossing block where the
// existing surface is a liquid.
func (v *Village) drawRoad(ch *chunkdesc.ChunkDesc, road *piece.PlacedPiece, hm *chunkdef.HeightMap) {
	hb := road.HitBox()
	minX := max(hb.P1[0]-ch.CX*chunkdef.Width, 0)
	maxX := min(hb.P2[0]-ch.CX*chunkdef.Width, chunkdef.Width-1)
	minZ := max(hb.P1[2]-ch.CZ*chunkdef.Width, 0)
	maxZ := min(hb.P2[2]-ch.CZ*chunkdef.Width, chunkdef.Width-1)
	for z := minZ; z <= maxZ; z++ {
		for x := minX; x <= maxX; x++ {
			y := hm.At(x, z)
			if v.isLiquid(ch.GetBlock(x, y, z)) {
				ch.SetBlock(x, y, z, v.waterRoadBlock)
			} else {
				ch.SetBlock(x, y, z, v.roadBlock)
			}
		}
	}
}

// piece.Pool implementation. All calls happen single-threaded inside this
// village's assembly.

func (v *Village) PiecesWithConnector(connType int) []piece.Piece {
	return v.pool.PiecesWithConnector(connType)
}

func (v *Village) StartingPieces() []piece.Piece {
	return v.pool.StartingPieces()
}

// PieceWeight rejects building attachments by the density check first: a
// hash of the connector's absolute position reduced to [0,100) must not
// exceed the village's density. The decision depends only on seed and
// position, never on generation order.
func (v *Village) PieceWeight(placed *piece.PlacedPiece, conn piece.Connector, candidate piece.Piece) int {
	if conn.Type == connTypeBuilding {
		rnd := mathx.Range(mathx.Hash3(v.seed, conn.Pos[0], conn.Pos[1], conn.Pos[2]), 100)
		if rnd > v.density {
			return 0
		}
	}
	if pf, ok := candidate.(*prefab.Prefab); ok && pf.MaxInstances() > 0 {
		if v.placedCounts[candidate] >= pf.MaxInstances() {
			return 0
		}
	}
	return v.pool.PieceWeight(placed, conn, candidate)
}

func (v *Village) StartingPieceWeight(p piece.Piece) int {
	return v.pool.StartingPieceWeight(p)
}

func (v *Village) PiecePlaced(p piece.Piece) {
	v.placedCounts[p]++
	v.pool.PiecePlaced(p)
}

func (v *Village) Reset() {
	v.placedCounts = map[piece.Piece]int{}
	v.pool.Reset()
}
