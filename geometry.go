package axis

import "math"

// epsilon is the numeric tolerance used for coincidence and direction tests.
const epsilon = 1e-6

// sameDirection reports whether p and q lie in the same direction from
// origin. Component deltas smaller than epsilon are treated as zero, so a
// point on the boundary counts as lying in either direction.
//
// The layout engine uses this for two decisions: whether the line's first
// point sits inside the visible clip interval (the two clip points then lie
// in opposite directions from it), and whether the clip interval sits on the
// positive or negative side of the line's parametrization.
func sameDirection(origin, p, q Point) bool {
	dx := zeroSnap(p.X - origin.X)
	dy := zeroSnap(p.Y - origin.Y)
	sx := zeroSnap(q.X - origin.X)
	sy := zeroSnap(q.Y - origin.Y)

	if (dx >= 0 && sx >= 0) || (dx <= 0 && sx <= 0) {
		if (dy >= 0 && sy >= 0) || (dy <= 0 && sy <= 0) {
			return true
		}
	}
	return false
}

func zeroSnap(v float64) float64 {
	if math.Abs(v) < epsilon {
		return 0
	}
	return v
}

// snapToSpacing returns the largest multiple of spacing at or below the
// integer floor of v: floor(v) - (floor(v) mod spacing). This anchors the
// first generated tick on the spacing grid regardless of where the clip
// interval cuts the line.
func snapToSpacing(v, spacing float64) float64 {
	f := math.Floor(v)
	return f - math.Mod(f, spacing)
}

// tickOffset computes one component pair of the perpendicular tick stroke
// for a line of the given slope and a configured half-height h. A horizontal
// line gets a purely vertical stroke, a vertical line a purely horizontal
// one; otherwise the pair solves perpendicularity and |(dx,dy)| = h
// simultaneously.
func tickOffset(slope, h float64) (dx, dy float64) {
	switch {
	case math.IsInf(slope, 0) || math.IsNaN(slope):
		return h, 0
	case math.Abs(slope) < epsilon:
		return 0, h
	default:
		dy = h / math.Sqrt(1+slope*slope)
		dx = -slope * dy
		return dx, dy
	}
}
