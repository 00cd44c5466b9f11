package axis

// Viewport is the narrow view of the host board the layout engine depends
// on. The host owns pan/zoom state, the world-to-screen transform, and the
// clipping of unbounded lines against the drawing area; the engine only
// consumes the two capabilities below, which keeps it testable with a fake.
type Viewport interface {
	// ClipLine returns the two world-coordinate points where the (possibly
	// unbounded) line enters and exits the visible drawing area. For a line
	// entirely inside the viewport these are the clipped endpoints of its
	// drawable extent. The order of the two points is not significant; the
	// layout engine orients them itself.
	ClipLine(l Line) (Point, Point)

	// PixelDistance returns the screen distance in pixels between two world
	// coordinate points under the current transform.
	PixelDistance(p, q Point) float64
}

// LabelElement is a rendered tick label owned by a TickSet. The rendering
// backend creates one per major tick; the TickSet releases it when the
// layout it belongs to is replaced or the TickSet is destroyed.
type LabelElement interface {
	// Visible reports whether the element is currently attached to the
	// display. Only visible elements are released on recompute; elements the
	// backend never attached must not be double-released.
	Visible() bool

	// Release detaches the element from the rendering backend and frees its
	// resources.
	Release()
}

// LabelRenderer creates label sub-elements for major ticks. pos is the
// tick's world position and offset the screen-space displacement, in pixels,
// from the tick to the label anchor.
type LabelRenderer interface {
	CreateLabel(pos Point, offset Vec2, text string) LabelElement
}

// LabelMeasurer reports the rendered size of a label string in pixels.
// When a TickSet has one configured, label offsets are horizontally centered
// on the tick using the measured width. The text subpackage provides an
// implementation backed by go-text/typesetting.
type LabelMeasurer interface {
	MeasureLabel(s string) (width, height float64)
}
