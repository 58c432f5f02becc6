package piece

// Pool supplies pieces and weighting policy to the generator. Implementations
// are queried single-threaded during one structure build; a zero weight
// excludes a candidate, higher weights are proportionally more likely.
type Pool interface {
	// PiecesWithConnector returns all pieces exposing a connector of the
	// given type, in a stable order.
	PiecesWithConnector(connType int) []Piece

	// StartingPieces returns the candidates for a structure's root piece.
	StartingPieces() []Piece

	// PieceWeight rates attaching candidate to conn on placed. conn is in
	// world space.
	PieceWeight(placed *PlacedPiece, conn Connector, candidate Piece) int

	// StartingPieceWeight rates p as a root piece.
	StartingPieceWeight(p Piece) int

	// PiecePlaced notifies the pool that p was placed, for per-generation
	// bookkeeping such as instance caps.
	PiecePlaced(p Piece)

	// Reset clears per-generation state before an independent build.
	Reset()
}
