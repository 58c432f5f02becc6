package piece

// Cuboid is an axis-aligned block volume with inclusive corners.
type Cuboid struct {
	P1, P2 [3]int
}

// NewCuboid returns the cuboid spanning [p1, p2], both inclusive.
func NewCuboid(x1, y1, z1, x2, y2, z2 int) Cuboid {
	return Cuboid{P1: [3]int{x1, y1, z1}, P2: [3]int{x2, y2, z2}}
}

// Intersects reports whether the two cuboids share at least one block.
func (c Cuboid) Intersects(o Cuboid) bool {
	for i := 0; i < 3; i++ {
		if c.P2[i] < o.P1[i] || c.P1[i] > o.P2[i] {
			return false
		}
	}
	return true
}

// ContainedIn reports whether c lies fully inside o.
func (c Cuboid) ContainedIn(o Cuboid) bool {
	for i := 0; i < 3; i++ {
		if c.P1[i] < o.P1[i] || c.P2[i] > o.P2[i] {
			return false
		}
	}
	return true
}
