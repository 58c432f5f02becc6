package piece

// Piece is an immutable placeable template. Pieces are shared, read-only,
// and referenced by every PlacedPiece instantiating them.
type Piece interface {
	// Connectors returns the piece's attachment points in local coords.
	Connectors() []Connector

	// Size returns the (x, y, z) extent of the piece's volume.
	Size() [3]int

	// ShouldMoveToGround reports whether the piece must be snapped so its
	// first connector rests on the terrain surface.
	ShouldMoveToGround() bool
}
