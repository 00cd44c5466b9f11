package axis

import (
	"fmt"
	"math"
)

// maxTicksPerLayout bounds the generation loop. The loop's natural iteration
// count is extent/step; anything past this cap indicates numerical
// degeneracy (step driven toward zero) rather than a legitimate layout.
const maxTicksPerLayout = 100000

// maxScaleIters bounds the density-adjustment loops.
const maxScaleIters = 1000

// Tick is one computed tick mark. Pos is the tick's world position. Major
// ticks may carry label text; minor ticks never do. LabelOffset is the
// screen-pixel displacement from the tick to the label anchor and is only
// meaningful when Label is non-empty.
type Tick struct {
	Pos         Point
	Major       bool
	Label       string
	LabelOffset Vec2
}

// Layout is an immutable snapshot of one tick computation: the ordered tick
// sequence plus the perpendicular offset-vector components shared by all
// major and all minor ticks. The renderer draws each tick as a stroke from
// Pos-(dx,dy) to Pos+(dx,dy) using the pair matching the tick's class.
type Layout struct {
	Ticks []Tick

	DxMajor, DyMajor float64
	DxMinor, DyMinor float64
}

// ComputeLayout computes a tick layout for the line without a TickSet.
// It is the pure entry point into the layout engine: all collaborator state
// comes in through the viewport, so tests can drive it with a fake.
func ComputeLayout(line Line, vp Viewport, spec TickSpec, opts ...TickOption) (*Layout, error) {
	cfg := defaultTickConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return computeLayout(line, vp, spec, cfg)
}

func computeLayout(line Line, vp Viewport, spec TickSpec, cfg tickConfig) (*Layout, error) {
	if line.IsDegenerate() {
		return nil, fmt.Errorf("%w: p1=(%g,%g) p2=(%g,%g)",
			ErrDegenerateLine, line.P1.X, line.P1.Y, line.P2.X, line.P2.Y)
	}

	slope := line.Slope()
	layout := &Layout{}
	layout.DxMajor, layout.DyMajor = tickOffset(slope, cfg.majorHeight)
	layout.DxMinor, layout.DyMinor = tickOffset(slope, cfg.minorHeight)

	e1, e2 := vp.ClipLine(line)

	var (
		ticks []Tick
		err   error
	)
	switch s := spec.(type) {
	case Equidistant:
		ticks, err = equidistantTicks(line, vp, e1, e2, s.Spacing, cfg)
	case Fixed:
		ticks = fixedTicks(line, e1, e2, s.Offsets, cfg)
	default:
		err = fmt.Errorf("axis: unsupported tick spec %T", spec)
	}
	if err != nil {
		return nil, err
	}

	for i := range ticks {
		t := &ticks[i]
		if t.Label == "" {
			continue
		}
		off := cfg.labelOffset
		if cfg.measurer != nil {
			w, _ := cfg.measurer.MeasureLabel(t.Label)
			off.X = -w / 2
		}
		t.LabelOffset = off
	}

	layout.Ticks = ticks
	Logger().Debug("axis: layout computed", "ticks", len(ticks))
	return layout, nil
}

// equidistantTicks generates the major/minor tick sequence for a regular
// spacing grid, clipped to the visible interval [e1,e2].
func equidistantTicks(line Line, vp Viewport, e1, e2 Point, spacing float64, cfg tickConfig) ([]Tick, error) {
	p1 := line.P1
	dir := line.Direction()

	// Pixel footprint of one world-unit step along the line.
	unitPx := vp.PixelDistance(p1, p1.Translate(dir))

	if math.Abs(spacing) < epsilon {
		spacing = cfg.defaultSpacing
	}
	if spacing <= 0 || math.IsInf(spacing, 0) || math.IsNaN(spacing) ||
		unitPx < epsilon || math.IsInf(unitPx, 0) || math.IsNaN(unitPx) {
		return nil, fmt.Errorf("%w: spacing=%g pixels-per-unit=%g",
			ErrInvalidSpacing, spacing, unitPx)
	}

	spacing, err := scaleToDensity(spacing, unitPx, cfg.minTicksDistance)
	if err != nil {
		return nil, err
	}

	// Determine the first tick offset and the extent, both measured as
	// world-length distances from P1 along the line direction.
	var begin, end float64
	if sameDirection(p1, e1, e2) {
		// P1 is off-screen or on the boundary facing away from the
		// viewport: both clip points lie on the same side of it. The
		// drawable stretch is the clipped window [e1,e2] alone.
		d1 := p1.Distance(e1)
		d2 := p1.Distance(e2)
		if d1 > d2 {
			e1, e2 = e2, e1
			d1, d2 = d2, d1
		}
		begin = snapToSpacing(d1, spacing)
		end = d2
		sign := 1.0
		// The side test runs against the farther clip point: the nearer one
		// coincides with P1 when P1 sits exactly on the window boundary,
		// which would degenerate the comparison.
		if !sameDirection(p1, line.P2, e2) {
			// The window sits behind P1 on the parametrization.
			sign = -1
			begin, end = -begin, -end
		}
		if line.ExtendsBefore {
			// Pre-generate two spacings past the entry edge so ticks
			// sliding into view during a drag are already laid out.
			begin -= sign * 2 * spacing
		}
	} else {
		// P1 is inside the visible interval. Orient the clip points so e1
		// is the one behind P1.
		if sameDirection(p1, line.P2, e1) {
			e1, e2 = e2, e1
		}
		if line.ExtendsBefore {
			begin = -snapToSpacing(p1.Distance(e1), spacing) - 2*spacing
		}
		if line.ExtendsAfter {
			end = p1.Distance(e2)
		} else {
			end = line.Length()
		}
	}

	minorSteps := cfg.minorTicks + 1
	step := spacing / float64(minorSteps)
	total := math.Abs(end - begin)
	if step < epsilon || total/step > maxTicksPerLayout {
		Logger().Warn("axis: tick generation aborted",
			"step", step, "extent", total)
		return nil, fmt.Errorf("%w: extent=%g step=%g", ErrLayoutOverflow, total, step)
	}

	dirSign := 1.0
	if end < begin {
		dirSign = -1
	}

	ticks := make([]Tick, 0, int(total/step)+2)
	cadence := 0
	for t := 0.0; t <= total+epsilon; t += step {
		at := begin + dirSign*t
		if !cfg.drawZero && math.Abs(at) < epsilon {
			// Origin suppressed: skip the position without consuming the
			// cadence slot, so the next emitted tick takes it.
			continue
		}
		tick := Tick{Pos: p1.Translate(dir.Mul(at))}
		if cadence%minorSteps == 0 {
			tick.Major = true
			if cfg.drawLabels {
				tick.Label = FormatLabel(at)
			}
		}
		cadence++
		ticks = append(ticks, tick)
	}
	return ticks, nil
}

// scaleToDensity rescales the working spacing until one spacing step's pixel
// footprint lands in [minDist, 4*minDist]. Oversized spacings shrink by
// powers of ten; undersized ones grow by the alternating 5,2,5,2,… factor
// sequence, which keeps the resulting spacings off pure powers of ten.
// The final growth step may overshoot 4*minDist; that overshoot is accepted.
func scaleToDensity(spacing, unitPx, minDist float64) (float64, error) {
	adjusted := spacing

	for i := 0; adjusted*unitPx > 4*minDist; i++ {
		if i >= maxScaleIters {
			return 0, fmt.Errorf("%w: density shrink diverged at spacing=%g",
				ErrLayoutOverflow, adjusted)
		}
		adjusted /= 10
	}

	factor := 5.0
	for i := 0; adjusted*unitPx < minDist; i++ {
		if i >= maxScaleIters {
			return 0, fmt.Errorf("%w: density growth diverged at spacing=%g",
				ErrLayoutOverflow, adjusted)
		}
		adjusted *= factor
		if factor == 5 {
			factor = 2
		} else {
			factor = 5
		}
	}

	if adjusted != spacing {
		Logger().Debug("axis: rescaled tick spacing",
			"nominal", spacing, "adjusted", adjusted, "pixelsPerUnit", unitPx)
	}
	return adjusted, nil
}

// fixedTicks places a major tick at each listed offset that falls inside the
// visible interval. Offsets are filtered, never an error, when off-screen.
func fixedTicks(line Line, e1, e2 Point, offsets []float64, cfg tickConfig) []Tick {
	p1 := line.P1
	dir := line.Direction()

	// Signed extents of the visible interval along the parametrization.
	lo := signedDistance(p1, line.P2, e1)
	hi := signedDistance(p1, line.P2, e2)
	if lo > hi {
		lo, hi = hi, lo
	}

	ticks := make([]Tick, 0, len(offsets))
	for _, f := range offsets {
		if f < lo-epsilon || f > hi+epsilon {
			continue
		}
		if !cfg.drawZero && math.Abs(f) < epsilon {
			continue
		}
		tick := Tick{Pos: p1.Translate(dir.Mul(f)), Major: true}
		if cfg.drawLabels {
			tick.Label = FormatLabel(f)
		}
		ticks = append(ticks, tick)
	}
	return ticks
}

// signedDistance returns the distance from origin to p, negated when p lies
// opposite the origin→toward direction.
func signedDistance(origin, toward, p Point) float64 {
	d := origin.Distance(p)
	if !sameDirection(origin, toward, p) {
		return -d
	}
	return d
}
