package polygon

// TestTurningDirections walks the ring in xy (z is ignored) and compares the
// turn at every vertex. It returns 1 if every turn is to the left, -1 if every
// turn is to the right, and 0 if any turn differs from the others or is
// exactly straight. Trailing copies of the first point are ignored; a ring
// with two or fewer points left returns 0.
//
// A consistent sign means the ring is convex, unless it winds around more than
// once (a pentagram turns the same way at every vertex).
func TestTurningDirections(c Collection) int {
	n := c.Length()
	first, ok := c.PointAt(0)
	if !ok {
		return 0
	}
	last := n - 1
	for last > 1 {
		p, _ := c.PointAt(last)
		if p.X != first.X || p.Y != first.Y {
			break
		}
		n = last
		last--
	}
	if n <= 2 {
		return 0
	}

	prev, _ := c.PointAt(n - 2)
	end, _ := c.PointAt(n - 1)
	x0, y0 := end.X-prev.X, end.Y-prev.Y
	x1, y1 := first.X-end.X, first.Y-end.Y
	// In a convex ring every turn has the same sign as this one.
	baseTurn := x0*y1 - y0*x1
	previous := first
	for i := 1; i < n; i++ {
		p, _ := c.PointAt(i)
		x0, y0 = x1, y1
		x1, y1 = p.X-previous.X, p.Y-previous.Y
		if turn := x0*y1 - y0*x1; turn*baseTurn <= 0 {
			return 0
		}
		previous = p
	}
	if baseTurn > 0 {
		return 1
	}
	return -1
}

// IsConvexXY reports whether the ring turns consistently in one direction.
func IsConvexXY(c Collection) bool {
	return TestTurningDirections(c) != 0
}
