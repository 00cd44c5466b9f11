package axis

import "math"

// Line is the reference segment ticks are attached to. P1 and P2 are world
// coordinates; the parametrization used by the layout engine runs from P1
// toward P2, so tick offsets are measured as world-length distances from P1,
// positive toward P2.
//
// ExtendsBefore and ExtendsAfter widen the drawable extent beyond the
// endpoints: both false is a segment, one true is a ray, both true is a full
// line. The line is owned by the host application; a TickSet only holds a
// reference to it.
type Line struct {
	P1, P2 Point

	// ExtendsBefore marks the line as unbounded in the direction before P1.
	ExtendsBefore bool

	// ExtendsAfter marks the line as unbounded in the direction after P2.
	ExtendsAfter bool
}

// IsDegenerate reports whether the endpoints coincide within epsilon.
// A degenerate line has no direction and cannot carry ticks.
func (l Line) IsDegenerate() bool {
	return l.P1.Approx(l.P2, epsilon)
}

// Length returns the world-coordinate distance between the endpoints.
func (l Line) Length() float64 {
	return l.P1.Distance(l.P2)
}

// Direction returns the unit vector from P1 toward P2.
// Returns the zero vector for a degenerate line.
func (l Line) Direction() Vec2 {
	return V2(l.P2.X-l.P1.X, l.P2.Y-l.P1.Y).Normalize()
}

// Slope returns the slope dy/dx of the line. Vertical lines return +Inf or
// -Inf depending on orientation; the offset-vector computation only inspects
// whether the magnitude is near zero or non-finite.
func (l Line) Slope() float64 {
	dx := l.P2.X - l.P1.X
	dy := l.P2.Y - l.P1.Y
	if math.Abs(dx) < epsilon {
		if dy >= 0 {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	return dy / dx
}
