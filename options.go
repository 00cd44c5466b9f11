package axis

import "math"

// Defaults applied when the corresponding option is not given.
const (
	// DefaultMinorTicks is the number of minor ticks between two majors.
	DefaultMinorTicks = 4

	// DefaultMajorHeight and DefaultMinorHeight are the pixel half-lengths
	// of the major and minor tick strokes.
	DefaultMajorHeight = 10
	DefaultMinorHeight = 4

	// DefaultMinTicksDistance and DefaultMaxTicksDistance bound the pixel
	// distance between consecutive major ticks; density auto-scaling keeps
	// equidistant layouts inside these bounds.
	DefaultMinTicksDistance = 10
	DefaultMaxTicksDistance = 100

	// DefaultSpacing substitutes for an equidistant spacing of zero.
	DefaultSpacing = 1
)

// defaultLabelOffset anchors labels below and slightly left of their tick,
// in screen pixels (y grows downward on screen).
var defaultLabelOffset = V2(-4, 14)

// tickConfig holds the resolved configuration of a TickSet.
type tickConfig struct {
	minorTicks       int
	majorHeight      float64
	minorHeight      float64
	minTicksDistance float64
	maxTicksDistance float64
	defaultSpacing   float64
	insertTicks      bool
	drawZero         bool
	drawLabels       bool
	labelOffset      Vec2
	measurer         LabelMeasurer
	renderer         LabelRenderer
}

func defaultTickConfig() tickConfig {
	return tickConfig{
		minorTicks:       DefaultMinorTicks,
		majorHeight:      DefaultMajorHeight,
		minorHeight:      DefaultMinorHeight,
		minTicksDistance: DefaultMinTicksDistance,
		maxTicksDistance: DefaultMaxTicksDistance,
		defaultSpacing:   DefaultSpacing,
		drawZero:         false,
		drawLabels:       true,
		labelOffset:      defaultLabelOffset,
	}
}

// TickOption configures a TickSet during creation.
// Use functional options to customize layout behavior.
//
// Example:
//
//	ts := axis.NewTickSet(line, vp, axis.Equidistant{Spacing: 2},
//	    axis.WithMinorTicks(1),
//	    axis.WithDrawZero(true))
type TickOption func(*tickConfig)

// WithMinorTicks sets the number of minor ticks rendered between two
// consecutive major ticks. A negative count is normalized to its absolute
// value.
func WithMinorTicks(n int) TickOption {
	return func(c *tickConfig) {
		if n < 0 {
			n = -n
		}
		c.minorTicks = n
	}
}

// WithHeights sets the pixel half-lengths of the major and minor tick
// strokes. Negative values are normalized to their absolute values.
func WithHeights(major, minor float64) TickOption {
	return func(c *tickConfig) {
		c.majorHeight = math.Abs(major)
		c.minorHeight = math.Abs(minor)
	}
}

// WithDistanceBounds overrides the axis-wide pixel-density bounds for major
// tick spacing. Both values must be positive; zero values keep the defaults.
// Auto-scaling enforces min and 4*min as the working range; max is retained
// as part of the configuration surface.
func WithDistanceBounds(min, max float64) TickOption {
	return func(c *tickConfig) {
		if min > 0 {
			c.minTicksDistance = min
		}
		if max > 0 {
			c.maxTicksDistance = max
		}
	}
}

// WithDefaultSpacing sets the spacing substituted when an Equidistant spec
// carries a spacing of zero.
func WithDefaultSpacing(d float64) TickOption {
	return func(c *tickConfig) {
		if d > 0 {
			c.defaultSpacing = d
		}
	}
}

// WithInsertTicks sets the reserved insert-ticks flag. The flag is part of
// the configuration surface for compatibility but is not consulted by the
// current layout algorithm.
func WithInsertTicks(insert bool) TickOption {
	return func(c *tickConfig) {
		c.insertTicks = insert
	}
}

// WithDrawZero controls whether a tick coincident with the line's P1 is
// emitted. Off by default: on a full coordinate system the origin is usually
// marked by the crossing axes, not by a tick.
func WithDrawZero(draw bool) TickOption {
	return func(c *tickConfig) {
		c.drawZero = draw
	}
}

// WithDrawLabels controls whether major ticks carry label text. On by
// default.
func WithDrawLabels(draw bool) TickOption {
	return func(c *tickConfig) {
		c.drawLabels = draw
	}
}

// WithLabelOffset sets the screen-pixel displacement from a major tick to
// its label anchor.
func WithLabelOffset(dx, dy float64) TickOption {
	return func(c *tickConfig) {
		c.labelOffset = V2(dx, dy)
	}
}

// WithLabelMeasurer provides a measurer used to center labels horizontally
// on their ticks. Without one, the constant label offset applies unchanged.
func WithLabelMeasurer(m LabelMeasurer) TickOption {
	return func(c *tickConfig) {
		c.measurer = m
	}
}

// WithLabelRenderer provides the backend that materializes label
// sub-elements for major ticks. Without one, the layout still carries label
// text but no elements are created.
func WithLabelRenderer(r LabelRenderer) TickOption {
	return func(c *tickConfig) {
		c.renderer = r
	}
}
