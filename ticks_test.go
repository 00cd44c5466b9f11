package axis

import (
	"errors"
	"testing"
)

// fakeLabel records its lifecycle for release accounting.
type fakeLabel struct {
	visible  bool
	released bool
}

func (l *fakeLabel) Visible() bool { return l.visible }
func (l *fakeLabel) Release()      { l.released = true }

// fakeRenderer creates fakeLabels and keeps every one it handed out.
type fakeRenderer struct {
	created []*fakeLabel
	attach  bool
}

func (r *fakeRenderer) CreateLabel(pos Point, offset Vec2, text string) LabelElement {
	l := &fakeLabel{visible: r.attach}
	r.created = append(r.created, l)
	return l
}

func TestTickSetLazyRecompute(t *testing.T) {
	line := &Line{P1: Pt(0, 0), P2: Pt(10, 0)}
	ts := NewTickSet(line, wideView(), Equidistant{Spacing: 1},
		WithMinorTicks(0), WithDrawZero(true))

	first, err := ts.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(first.Ticks) != 11 {
		t.Fatalf("got %d ticks, want 11", len(first.Ticks))
	}

	// Without invalidation the snapshot is reused, not recomputed.
	again, err := ts.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if again != first {
		t.Error("valid layout should be returned without recomputation")
	}

	// Endpoint drag: invalidate, next Layout builds a fresh snapshot.
	line.P2 = Pt(5, 0)
	ts.Invalidate()
	fresh, err := ts.Layout()
	if err != nil {
		t.Fatalf("Layout after invalidate: %v", err)
	}
	if fresh == first {
		t.Error("stale layout was not recomputed")
	}
	if len(fresh.Ticks) != 6 {
		t.Fatalf("got %d ticks after shrink, want 6", len(fresh.Ticks))
	}
}

func TestTickSetKeepsLastGoodOnError(t *testing.T) {
	line := &Line{P1: Pt(0, 0), P2: Pt(10, 0)}
	ts := NewTickSet(line, wideView(), Equidistant{Spacing: 1},
		WithMinorTicks(0), WithDrawZero(true))

	good, err := ts.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	// Mid-drag degeneracy: the endpoints momentarily coincide.
	line.P2 = line.P1
	ts.Invalidate()
	got, err := ts.Layout()
	if !errors.Is(err, ErrDegenerateLine) {
		t.Fatalf("got %v, want ErrDegenerateLine", err)
	}
	if got != good {
		t.Error("failed recompute must keep the last-good snapshot installed")
	}

	// The drag continues past the degeneracy; the next Layout recovers.
	line.P2 = Pt(4, 0)
	recovered, err := ts.Layout()
	if err != nil {
		t.Fatalf("Layout after recovery: %v", err)
	}
	if len(recovered.Ticks) != 5 {
		t.Fatalf("got %d ticks after recovery, want 5", len(recovered.Ticks))
	}
}

func TestTickSetLabelLifecycle(t *testing.T) {
	line := &Line{P1: Pt(0, 0), P2: Pt(3, 0)}
	r := &fakeRenderer{attach: true}
	ts := NewTickSet(line, wideView(), Equidistant{Spacing: 1},
		WithMinorTicks(0), WithDrawZero(true), WithLabelRenderer(r))

	if _, err := ts.Layout(); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(r.created) != 4 {
		t.Fatalf("created %d labels, want 4", len(r.created))
	}

	// Recompute replaces the label set: the old elements are released.
	ts.Invalidate()
	if _, err := ts.Layout(); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(r.created) != 8 {
		t.Fatalf("created %d labels total, want 8", len(r.created))
	}
	for i, l := range r.created[:4] {
		if !l.released {
			t.Errorf("label %d of the replaced layout was not released", i)
		}
	}
	for i, l := range r.created[4:] {
		if l.released {
			t.Errorf("label %d of the current layout was released", i)
		}
	}

	// Destroying the tick set releases the current labels too.
	ts.Release()
	for i, l := range r.created[4:] {
		if !l.released {
			t.Errorf("label %d not released on TickSet release", i)
		}
	}
}

func TestTickSetSkipsNeverAttachedLabels(t *testing.T) {
	line := &Line{P1: Pt(0, 0), P2: Pt(3, 0)}
	r := &fakeRenderer{attach: false}
	ts := NewTickSet(line, wideView(), Equidistant{Spacing: 1},
		WithMinorTicks(0), WithDrawZero(true), WithLabelRenderer(r))

	if _, err := ts.Layout(); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	ts.Release()
	for i, l := range r.created {
		if l.released {
			t.Errorf("never-attached label %d must not be released", i)
		}
	}
}

func TestTickSetLabelsSurviveFailedRecompute(t *testing.T) {
	line := &Line{P1: Pt(0, 0), P2: Pt(3, 0)}
	r := &fakeRenderer{attach: true}
	ts := NewTickSet(line, wideView(), Equidistant{Spacing: 1},
		WithMinorTicks(0), WithDrawZero(true), WithLabelRenderer(r))

	if _, err := ts.Layout(); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	line.P2 = line.P1
	ts.Invalidate()
	if _, err := ts.Layout(); err == nil {
		t.Fatal("expected recompute failure")
	}
	for i, l := range r.created {
		if l.released {
			t.Errorf("label %d released although the old layout is still installed", i)
		}
	}
}

func TestTickSetConfigSettersInvalidate(t *testing.T) {
	line := &Line{P1: Pt(0, 0), P2: Pt(10, 0)}
	ts := NewTickSet(line, wideView(), Equidistant{Spacing: 2},
		WithMinorTicks(0), WithDrawZero(true))

	first, err := ts.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	ts.SetMinorTicks(1)
	second, err := ts.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if second == first {
		t.Fatal("SetMinorTicks did not invalidate the layout")
	}
	minors := 0
	for _, tick := range second.Ticks {
		if !tick.Major {
			minors++
		}
	}
	if minors == 0 {
		t.Error("expected minor ticks after SetMinorTicks(1)")
	}

	ts.SetSpec(Fixed{Offsets: []float64{1, 2}})
	third, err := ts.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(third.Ticks) != 2 {
		t.Fatalf("got %d ticks after SetSpec, want 2", len(third.Ticks))
	}

	ts.SetDrawLabels(false)
	fourth, err := ts.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	for _, tick := range fourth.Ticks {
		if tick.Label != "" {
			t.Error("labels still present after SetDrawLabels(false)")
		}
	}

	ts.SetDrawZero(false)
	if _, err := ts.Layout(); err != nil {
		t.Fatalf("Layout: %v", err)
	}
}

func TestTickSetReleaseThenReuse(t *testing.T) {
	line := &Line{P1: Pt(0, 0), P2: Pt(4, 0)}
	ts := NewTickSet(line, wideView(), Equidistant{Spacing: 1},
		WithMinorTicks(0), WithDrawZero(true))

	if _, err := ts.Layout(); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	ts.Release()

	layout, err := ts.Layout()
	if err != nil {
		t.Fatalf("Layout after release: %v", err)
	}
	if len(layout.Ticks) != 5 {
		t.Fatalf("got %d ticks after reuse, want 5", len(layout.Ticks))
	}
}
