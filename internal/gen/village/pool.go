// Package village grows multi-piece settlements from prefab pools and
// renders them into chunks. A settlement is a tree of roads and buildings
// rooted at a well-like starting piece, assembled by the breadth-first piece
// generator under the weighting policy implemented here.
package village

import (
	"fmt"

	"villagegen/internal/catalogs"
	"villagegen/internal/gen/piece"
	"villagegen/internal/gen/prefab"
)

// Road segments are synthesized for a fixed set of lengths stepping by
// roadLenStep from roadLenMin, strictly below roadLenMax.
const (
	roadLenMin  = 27
	roadLenMax  = 60
	roadLenStep = 12
	roadWidth   = 3

	// Connector types. The starting piece exposes type 2, buildings attach
	// via type -1, roads carry -2 at the ends and 1 / 2 along the edges.
	connTypeBuilding = 1
	connTypeRoad     = 2
)

// PiecePool is one style's piece library: the prefab set's buildings and
// starting piece plus the synthesized road segments. It is immutable after
// construction and shared by every village of its style.
type PiecePool struct {
	*prefab.Pool
	name   string
	family string
}

// NewPiecePool builds the pool for one prefab set.
func NewPiecePool(set *catalogs.PrefabSet, blocks *catalogs.BlockCatalog) (*PiecePool, error) {
	pl := &PiecePool{Pool: prefab.NewPool(), name: set.ID, family: set.Family}

	start, err := prefab.FromDef(&set.Start, blocks)
	if err != nil {
		return nil, err
	}
	pl.AddStartingPiece(start)

	for i := range set.Pieces {
		p, err := prefab.FromDef(&set.Pieces[i], blocks)
		if err != nil {
			return nil, err
		}
		pl.AddPiece(p)
	}

	for length := roadLenMin; length < roadLenMax; length += roadLenStep {
		pl.AddPiece(newRoadPiece(length))
	}

	if len(pl.StartingPieces()) != 1 {
		return nil, fmt.Errorf("style %s: want exactly one starting piece", set.ID)
	}
	return pl, nil
}

func (pl *PiecePool) Name() string   { return pl.name }
func (pl *PiecePool) Family() string { return pl.family }

// PieceWeight applies the branch-limiting rule before the prefab weights:
// a road may not hang a new road off its side connectors unless it descends
// directly from the starting piece. Deeper roads still accept buildings.
func (pl *PiecePool) PieceWeight(placed *piece.PlacedPiece, conn piece.Connector, candidate piece.Piece) int {
	if conn.Type == connTypeRoad && placed.Depth() > 0 && placed.Piece().Size()[1] == 1 {
		return 0
	}
	return pl.Pool.PieceWeight(placed, conn, candidate)
}

// newRoadPiece synthesizes a road segment: a 1-tall, roadWidth-wide strip
// with end connectors of type -2, branch connectors of type 2 every
// roadLenStep blocks from x=1, and building connectors of type 1 every
// roadLenStep blocks from x=7, on both long edges. The segment carries no
// block pattern; roads are drawn by re-surfacing the terrain instead.
func newRoadPiece(length int) *prefab.Prefab {
	conns := []piece.Connector{
		{Pos: [3]int{0, 0, 1}, Dir: piece.DirXM, Type: -connTypeRoad},
		{Pos: [3]int{length - 1, 0, 1}, Dir: piece.DirXP, Type: -connTypeRoad},
	}
	for x := 1; x < length; x += roadLenStep {
		conns = append(conns,
			piece.Connector{Pos: [3]int{x, 0, 0}, Dir: piece.DirZM, Type: connTypeRoad},
			piece.Connector{Pos: [3]int{x, 0, roadWidth - 1}, Dir: piece.DirZP, Type: connTypeRoad},
		)
	}
	for x := 7; x < length; x += roadLenStep {
		conns = append(conns,
			piece.Connector{Pos: [3]int{x, 0, 0}, Dir: piece.DirZM, Type: connTypeBuilding},
			piece.Connector{Pos: [3]int{x, 0, roadWidth - 1}, Dir: piece.DirZP, Type: connTypeBuilding},
		)
	}
	name := fmt.Sprintf("road_%d", length)
	return prefab.New(name, [3]int{length, 1, roadWidth}, conns, nil, 100, 0, false)
}
