// Package axis computes tick-mark geometry and labels for axis lines in
// interactive 2D plotting surfaces.
//
// # Overview
//
// Given a reference line in world coordinates, a viewport that clips the
// line to the visible area and converts world spans to pixels, and a tick
// specification, axis produces an ordered sequence of major and minor tick
// positions, the perpendicular offset vectors used to stroke them, and the
// label text attached to major ticks. Equidistant layouts auto-scale their
// spacing to the current pixel density so ticks stay readable across zoom
// levels; fixed layouts place a major tick at each caller-supplied offset.
//
// # Quick Start
//
//	import "github.com/gogpu/axis"
//
//	line := &axis.Line{P1: axis.Pt(0, 0), P2: axis.Pt(10, 0)}
//	ts := axis.NewTickSet(line, viewport, axis.Equidistant{Spacing: 1},
//	    axis.WithMinorTicks(1))
//
//	// Per render pass:
//	layout, err := ts.Layout()
//	for _, tick := range layout.Ticks {
//	    // stroke from tick.Pos-(dx,dy) to tick.Pos+(dx,dy), draw tick.Label
//	}
//
//	// On endpoint drag, pan or zoom:
//	ts.Invalidate()
//
// # Collaborators
//
// axis does not render and does not own the coordinate transform. The host
// board supplies both through the Viewport interface; label sub-elements are
// materialized through LabelRenderer. The text subpackage provides label
// measurement (for centering labels on their ticks) backed by
// go-text/typesetting.
//
// # Coordinate System
//
// Tick positions are world coordinates. Offset vectors and label offsets are
// screen-space pixels, with y growing downward as in standard computer
// graphics coordinates.
package axis
