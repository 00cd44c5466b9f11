package axis

// TickSpec describes how tick positions along a line are chosen. Exactly two
// implementations exist: Equidistant places ticks on a regular spacing grid
// subject to pixel-density auto-scaling, Fixed places a major tick at each of
// an explicit list of offsets.
//
// The interface is sealed; callers pick one of the two variants.
type TickSpec interface {
	tickSpec()
}

// Equidistant spaces major ticks a fixed world-length distance apart.
//
// A Spacing within epsilon of zero is substituted with the TickSet's default
// spacing at layout time. The layout engine may rescale its working copy of
// the spacing (by powers of ten, or by the alternating 5,2,5,2,… factor
// sequence) to keep the on-screen tick density inside the configured pixel
// bounds; the Equidistant value itself is never mutated.
type Equidistant struct {
	Spacing float64
}

func (Equidistant) tickSpec() {}

// Fixed places a major tick at each listed offset. Offsets are world-length
// distances from the line's P1, measured along the P1→P2 direction (negative
// values lie behind P1), and must be in ascending order. Offsets outside the
// visible clip interval are silently filtered, and no density auto-scaling
// applies.
type Fixed struct {
	Offsets []float64
}

func (Fixed) tickSpec() {}
