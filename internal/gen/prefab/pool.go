package prefab

import "villagegen/internal/gen/piece"

// Pool indexes prefabs by the connector types they expose. Pools are built
// once at startup and carry no per-generation state, so one pool instance is
// safely shared by every structure built from it, concurrently.
type Pool struct {
	pieces      []piece.Piece
	starts      []piece.Piece
	byConnector map[int][]piece.Piece
}

func NewPool() *Pool {
	return &Pool{byConnector: map[int][]piece.Piece{}}
}

// AddPiece registers p under every connector type it exposes.
func (pl *Pool) AddPiece(p piece.Piece) {
	pl.pieces = append(pl.pieces, p)
	seen := map[int]bool{}
	for _, c := range p.Connectors() {
		if seen[c.Type] {
			continue
		}
		seen[c.Type] = true
		pl.byConnector[c.Type] = append(pl.byConnector[c.Type], p)
	}
}

// AddStartingPiece registers p as a root-piece candidate.
func (pl *Pool) AddStartingPiece(p piece.Piece) {
	pl.starts = append(pl.starts, p)
}

// AllPieces returns every non-starting piece in registration order.
func (pl *Pool) AllPieces() []piece.Piece { return pl.pieces }

func (pl *Pool) PiecesWithConnector(connType int) []piece.Piece {
	return pl.byConnector[connType]
}

func (pl *Pool) StartingPieces() []piece.Piece { return pl.starts }

func (pl *Pool) PieceWeight(placed *piece.PlacedPiece, conn piece.Connector, candidate piece.Piece) int {
	return weightOf(candidate)
}

func (pl *Pool) StartingPieceWeight(p piece.Piece) int {
	return weightOf(p)
}

// PiecePlaced and Reset are deliberately stateless here: per-generation
// bookkeeping lives in the per-structure wrapper so shared pools stay
// read-only.
func (pl *Pool) PiecePlaced(p piece.Piece) {}
func (pl *Pool) Reset()                    {}

func weightOf(p piece.Piece) int {
	if pf, ok := p.(*Prefab); ok {
		return pf.Weight()
	}
	return 100
}
