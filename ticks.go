package axis

// tickState tracks where a TickSet sits in its lifecycle.
type tickState int

const (
	// stateUninitialized: constructed, no layout computed yet.
	stateUninitialized tickState = iota
	// stateValid: the stored layout matches line, viewport and config.
	stateValid
	// stateStale: an external change invalidated the stored layout.
	stateStale
)

// TickSet is the persistent tick decoration attached to a line: it holds the
// tick configuration, the reference to the externally owned line and
// viewport, the label sub-elements created for the current layout, and the
// last successfully computed layout snapshot.
//
// Recomputation is lazy. Endpoint drags, pans and zooms only mark the set
// stale via Invalidate or the configuration setters; the layout is rebuilt
// at most once per render pass, when Layout is called. A TickSet is
// exclusively owned by its axis/line within one logical thread of control
// and needs no locking.
type TickSet struct {
	line *Line
	vp   Viewport
	spec TickSpec
	cfg  tickConfig

	state  tickState
	layout *Layout
	labels []LabelElement
}

// NewTickSet creates a tick decoration for line. The line and viewport are
// borrowed, not owned; the caller keeps them alive for the TickSet's
// lifetime and calls Invalidate when either changes.
func NewTickSet(line *Line, vp Viewport, spec TickSpec, opts ...TickOption) *TickSet {
	cfg := defaultTickConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &TickSet{
		line: line,
		vp:   vp,
		spec: spec,
		cfg:  cfg,
	}
}

// Invalidate marks the stored layout stale. Call it whenever the line's
// endpoints move or the viewport pans/zooms. The layout is not rebuilt until
// the next Layout call, so high-frequency drag events stay cheap.
func (ts *TickSet) Invalidate() {
	if ts.state == stateValid {
		ts.state = stateStale
	}
}

// SetSpec replaces the tick specification and marks the set stale.
func (ts *TickSet) SetSpec(spec TickSpec) {
	ts.spec = spec
	ts.Invalidate()
}

// SetMinorTicks changes the minor-ticks-per-major count and marks the set
// stale. A negative count is normalized to its absolute value.
func (ts *TickSet) SetMinorTicks(n int) {
	if n < 0 {
		n = -n
	}
	ts.cfg.minorTicks = n
	ts.Invalidate()
}

// SetDrawZero changes the draw-zero flag and marks the set stale.
func (ts *TickSet) SetDrawZero(draw bool) {
	ts.cfg.drawZero = draw
	ts.Invalidate()
}

// SetDrawLabels changes the draw-labels flag and marks the set stale.
func (ts *TickSet) SetDrawLabels(draw bool) {
	ts.cfg.drawLabels = draw
	ts.Invalidate()
}

// Layout returns the current tick layout, recomputing it first if the set is
// uninitialized or stale.
//
// On a recompute failure the previous layout, if any, remains installed and
// is returned together with the error: a transient degeneracy in the middle
// of an interactive drag must not blank the axis or corrupt state. The
// caller decides whether to log or surface the error; the next Layout call
// retries.
func (ts *TickSet) Layout() (*Layout, error) {
	if ts.state == stateValid {
		return ts.layout, nil
	}
	if err := ts.recompute(); err != nil {
		return ts.layout, err
	}
	return ts.layout, nil
}

// recompute builds a fresh layout snapshot and swaps it in, replacing the
// label sub-elements of the previous one.
func (ts *TickSet) recompute() error {
	layout, err := computeLayout(*ts.line, ts.vp, ts.spec, ts.cfg)
	if err != nil {
		// Last-good snapshot and its labels stay installed.
		return err
	}

	ts.releaseLabels()
	if ts.cfg.renderer != nil && ts.cfg.drawLabels {
		for _, tick := range layout.Ticks {
			if tick.Label == "" {
				continue
			}
			el := ts.cfg.renderer.CreateLabel(tick.Pos, tick.LabelOffset, tick.Label)
			if el != nil {
				ts.labels = append(ts.labels, el)
			}
		}
	}

	ts.layout = layout
	ts.state = stateValid
	return nil
}

// releaseLabels detaches the label elements of the installed layout from the
// rendering backend. Only elements the backend actually attached (Visible)
// are released; never-attached elements are simply dropped.
func (ts *TickSet) releaseLabels() {
	for _, el := range ts.labels {
		if el.Visible() {
			el.Release()
		}
	}
	ts.labels = ts.labels[:0]
}

// Release drops the computed layout and releases all label sub-elements.
// Call it when the owning line or axis is removed from the board. The
// TickSet is reusable afterwards: the next Layout call recomputes.
func (ts *TickSet) Release() {
	ts.releaseLabels()
	ts.layout = nil
	ts.state = stateUninitialized
}
