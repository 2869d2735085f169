package vmath

// Overlaps reports strict AABB intersection; touching edges do not overlap
func Overlaps(a, b Rect) bool {
	return a.X < b.Right() && b.X < a.Right() && a.Y < b.Bottom() && b.Y < a.Bottom()
}

// HorizontalOverlap returns the width of the x-axis intersection, 0 if disjoint
func HorizontalOverlap(a, b Rect) float64 {
	lo := max(a.X, b.X)
	hi := min(a.Right(), b.Right())
	if hi <= lo {
		return 0
	}
	return hi - lo
}

