package piece

import "villagegen/internal/gen/mathx"

// freeConnector is an open attachment point of an already placed piece, in
// world space.
type freeConnector struct {
	placed *PlacedPiece
	conn   Connector
}

// candidate is one admissible placement at a free connector.
type candidate struct {
	piece   Piece
	connIdx int
	rot     int
	coords  [3]int
	weight  int
}

// rotationBetween returns the quarter-turn count that maps from onto to.
func rotationBetween(from, to Dir) int {
	for rot := 0; rot < 4; rot++ {
		if from.Rotated(rot) == to {
			return rot
		}
	}
	return 0
}

// PlacePieces grows a piece tree breadth-first from a starting piece placed
// at (ox, oy, oz). Every open connector of every placed piece is considered
// in placement order; matching candidates are supplied and weighted by the
// pool, ties broken by a hash of the connector position. Growth stops at
// maxDepth and nothing is placed outside borders.
//
// The returned slice is in placement order with the root first. It is empty
// when the pool offers no viable starting piece.
func PlacePieces(pool Pool, seed int64, ox, oy, oz, maxDepth int, borders Cuboid) []*PlacedPiece {
	pool.Reset()

	root := placeStartingPiece(pool, seed, ox, oy, oz, borders)
	if root == nil {
		return nil
	}
	pool.PiecePlaced(root.Piece())

	placed := []*PlacedPiece{root}
	var queue []freeConnector
	for _, c := range root.Piece().Connectors() {
		queue = append(queue, freeConnector{placed: root, conn: root.RotatedConnector(c)})
	}

	for i := 0; i < len(queue); i++ {
		fc := queue[i]
		if fc.placed.Depth() >= maxDepth || fc.conn.Type == 0 {
			continue
		}
		placed, queue = tryPlaceAtConnector(pool, seed, fc, placed, queue, borders)
	}
	return placed
}

func placeStartingPiece(pool Pool, seed int64, ox, oy, oz int, borders Cuboid) *PlacedPiece {
	starts := pool.StartingPieces()
	total := 0
	weights := make([]int, len(starts))
	for i, p := range starts {
		w := pool.StartingPieceWeight(p)
		if w < 0 {
			w = 0
		}
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return nil
	}

	r := mathx.Range(mathx.Hash2(seed, ox, oz), total)
	idx := 0
	for i, w := range weights {
		if r < w {
			idx = i
			break
		}
		r -= w
	}

	rot := mathx.Range(mathx.Hash3(seed+1, ox, oy, oz), 4)
	pp := NewPlacedPiece(nil, starts[idx], [3]int{ox, oy, oz}, rot, 0)
	if !pp.HitBox().ContainedIn(borders) {
		return nil
	}
	return pp
}

func tryPlaceAtConnector(
	pool Pool,
	seed int64,
	fc freeConnector,
	placed []*PlacedPiece,
	queue []freeConnector,
	borders Cuboid,
) ([]*PlacedPiece, []freeConnector) {
	wantType := -fc.conn.Type
	wantDir := fc.conn.Dir.Opposite()
	nx, nz := fc.conn.Dir.Normal()
	target := [3]int{fc.conn.Pos[0] + nx, fc.conn.Pos[1], fc.conn.Pos[2] + nz}

	var cands []candidate
	total := 0
	for _, p := range pool.PiecesWithConnector(wantType) {
		for ci, pc := range p.Connectors() {
			if pc.Type != wantType {
				continue
			}
			rot := rotationBetween(pc.Dir, wantDir)
			rx, rz := rotateLocal(pc.Pos[0], pc.Pos[2], rot, p.Size())
			coords := [3]int{target[0] - rx, target[1] - pc.Pos[1], target[2] - rz}

			pp := NewPlacedPiece(fc.placed, p, coords, rot, fc.placed.Depth()+1)
			hb := pp.HitBox()
			if !hb.ContainedIn(borders) {
				continue
			}
			if overlapsAny(hb, placed) {
				continue
			}

			w := pool.PieceWeight(fc.placed, fc.conn, p)
			if w <= 0 {
				continue
			}
			cands = append(cands, candidate{piece: p, connIdx: ci, rot: rot, coords: coords, weight: w})
			total += w
		}
	}
	if total == 0 {
		return placed, queue
	}

	r := mathx.Range(mathx.Hash3(seed, fc.conn.Pos[0], fc.conn.Pos[1], fc.conn.Pos[2]), total)
	var chosen candidate
	for _, c := range cands {
		if r < c.weight {
			chosen = c
			break
		}
		r -= c.weight
	}

	pp := NewPlacedPiece(fc.placed, chosen.piece, chosen.coords, chosen.rot, fc.placed.Depth()+1)
	placed = append(placed, pp)
	pool.PiecePlaced(chosen.piece)
	for ci, c := range chosen.piece.Connectors() {
		if ci == chosen.connIdx {
			continue
		}
		queue = append(queue, freeConnector{placed: pp, conn: pp.RotatedConnector(c)})
	}
	return placed, queue
}

func overlapsAny(hb Cuboid, placed []*PlacedPiece) bool {
	for _, pp := range placed {
		if hb.Intersects(pp.HitBox()) {
			return true
		}
	}
	return false
}
