package piece

// PlacedPiece is one instantiation of a piece inside a structure: world
// position of the piece's minimum corner, rotation, generation depth, and a
// non-owning back-reference to the parent it attached to (nil for the root).
type PlacedPiece struct {
	piece  Piece
	parent *PlacedPiece
	coords [3]int
	rot    int
	depth  int

	movedToGround bool
}

func NewPlacedPiece(parent *PlacedPiece, p Piece, coords [3]int, rot, depth int) *PlacedPiece {
	return &PlacedPiece{piece: p, parent: parent, coords: coords, rot: rot, depth: depth}
}

func (pp *PlacedPiece) Piece() Piece         { return pp.piece }
func (pp *PlacedPiece) Parent() *PlacedPiece { return pp.parent }
func (pp *PlacedPiece) Coords() [3]int       { return pp.coords }
func (pp *PlacedPiece) Rotation() int        { return pp.rot }
func (pp *PlacedPiece) Depth() int           { return pp.depth }

// MoveToGroundBy shifts the piece vertically. The shift is the only mutation
// a placed piece ever sees after assembly.
func (pp *PlacedPiece) MoveToGroundBy(dy int) {
	pp.coords[1] += dy
	pp.movedToGround = true
}

func (pp *PlacedPiece) HasBeenMovedToGround() bool { return pp.movedToGround }

// BlockPos converts a local block offset to world coords.
func (pp *PlacedPiece) BlockPos(lx, ly, lz int) (x, y, z int) {
	rx, rz := rotateLocal(lx, lz, pp.rot, pp.piece.Size())
	return pp.coords[0] + rx, pp.coords[1] + ly, pp.coords[2] + rz
}

// HitBox returns the world-space volume the piece occupies.
func (pp *PlacedPiece) HitBox() Cuboid {
	s := rotatedSize(pp.piece.Size(), pp.rot)
	return Cuboid{
		P1: pp.coords,
		P2: [3]int{pp.coords[0] + s[0] - 1, pp.coords[1] + s[1] - 1, pp.coords[2] + s[2] - 1},
	}
}

// RotatedConnector returns a connector of the piece mapped to world space.
func (pp *PlacedPiece) RotatedConnector(c Connector) Connector {
	x, y, z := pp.BlockPos(c.Pos[0], c.Pos[1], c.Pos[2])
	return Connector{
		Pos:  [3]int{x, y, z},
		Dir:  c.Dir.Rotated(pp.rot),
		Type: c.Type,
	}
}
