// Package piece implements constraint-directed assembly of piece trees:
// typed connectors, placed-piece geometry, and a breadth-first generator
// that grows a structure from a starting piece by matching connector types.
package piece

// Dir is a horizontal facing direction of a connector.
type Dir uint8

const (
	DirXM Dir = iota // towards negative X
	DirXP            // towards positive X
	DirZM            // towards negative Z
	DirZP            // towards positive Z
)

func (d Dir) String() string {
	switch d {
	case DirXM:
		return "XM"
	case DirXP:
		return "XP"
	case DirZM:
		return "ZM"
	default:
		return "ZP"
	}
}

// Opposite returns the facing direction a mating connector must have.
func (d Dir) Opposite() Dir {
	switch d {
	case DirXM:
		return DirXP
	case DirXP:
		return DirXM
	case DirZM:
		return DirZP
	default:
		return DirZM
	}
}

// Normal returns the unit offset in the facing direction.
func (d Dir) Normal() (dx, dz int) {
	switch d {
	case DirXM:
		return -1, 0
	case DirXP:
		return 1, 0
	case DirZM:
		return 0, -1
	default:
		return 0, 1
	}
}

// Rotated returns the direction after rot quarter-turns of the owning piece.
// The turn convention matches rotateLocal: one turn maps XP to ZM.
func (d Dir) Rotated(rot int) Dir {
	cycle := [4]Dir{DirXP, DirZM, DirXM, DirZP}
	var i int
	for j, v := range cycle {
		if v == d {
			i = j
			break
		}
	}
	return cycle[(i+rot)&3]
}

// Connector is a typed, positioned, directed attachment point on a piece.
// A connector of type T accepts a connector of type -T; type 0 is invalid.
type Connector struct {
	Pos  [3]int
	Dir  Dir
	Type int
}
