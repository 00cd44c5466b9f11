package axis

import "errors"

// ErrDegenerateLine is returned when the reference line's endpoints coincide.
// A zero-length segment has no direction, so no tick layout exists for it.
var ErrDegenerateLine = errors.New("axis: line endpoints coincide")

// ErrInvalidSpacing is returned when the equidistant spacing resolves to a
// zero or non-finite value after the default-distance substitution, or when
// the viewport reports a degenerate pixel scale. Failing fast here keeps the
// density-adjustment loops from diverging.
var ErrInvalidSpacing = errors.New("axis: tick spacing is zero or not finite")

// ErrLayoutOverflow is returned when the tick generation loop would exceed
// its defensive iteration bound, typically because repeated rescaling drove
// the step size toward zero.
var ErrLayoutOverflow = errors.New("axis: tick generation exceeded iteration bound")
