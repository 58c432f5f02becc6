package piece

// rotateLocal maps a local block offset through rot quarter-turns, keeping
// the rotated piece anchored at its minimum corner: coordinates stay in
// [0, extent) with the X/Z extents swapped for odd turns.
func rotateLocal(x, z, rot int, size [3]int) (rx, rz int) {
	sx, sz := size[0], size[2]
	switch rot & 3 {
	case 0:
		return x, z
	case 1:
		return z, sx - 1 - x
	case 2:
		return sx - 1 - x, sz - 1 - z
	default: // 3
		return sz - 1 - z, x
	}
}

// rotatedSize returns the piece extent after rot quarter-turns.
func rotatedSize(size [3]int, rot int) [3]int {
	if rot&1 == 1 {
		return [3]int{size[2], size[1], size[0]}
	}
	return size
}
