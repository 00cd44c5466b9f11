package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func newTestMeasurer(t *testing.T) *Measurer {
	t.Helper()
	m, err := NewMeasurer(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("NewMeasurer: %v", err)
	}
	return m
}

func TestNewMeasurerEmptyData(t *testing.T) {
	if _, err := NewMeasurer(nil, 16); !errors.Is(err, ErrEmptyFontData) {
		t.Fatalf("got %v, want ErrEmptyFontData", err)
	}
}

func TestNewMeasurerInvalidData(t *testing.T) {
	if _, err := NewMeasurer([]byte("not a font"), 16); err == nil {
		t.Fatal("expected a parse error for garbage data")
	}
}

func TestMeasureLabel(t *testing.T) {
	m := newTestMeasurer(t)

	w, h := m.MeasureLabel("10")
	if w <= 0 {
		t.Errorf("width = %v, want > 0", w)
	}
	if h <= 0 {
		t.Errorf("height = %v, want > 0", h)
	}

	// More digits, more advance.
	w3, _ := m.MeasureLabel("100")
	if w3 <= w {
		t.Errorf("width(%q) = %v not greater than width(%q) = %v", "100", w3, "10", w)
	}

	// Height is a line metric, independent of the string.
	_, h3 := m.MeasureLabel("100")
	if h3 != h {
		t.Errorf("height changed with content: %v vs %v", h3, h)
	}
}

func TestMeasureLabelEmpty(t *testing.T) {
	m := newTestMeasurer(t)
	if w, h := m.MeasureLabel(""); w != 0 || h != 0 {
		t.Errorf("empty string measured (%v,%v), want (0,0)", w, h)
	}
}

func TestMeasureLabelScalesWithSize(t *testing.T) {
	small, err := NewMeasurer(goregular.TTF, 8)
	if err != nil {
		t.Fatalf("NewMeasurer: %v", err)
	}
	large, err := NewMeasurer(goregular.TTF, 32)
	if err != nil {
		t.Fatalf("NewMeasurer: %v", err)
	}
	ws, _ := small.MeasureLabel("3.14")
	wl, _ := large.MeasureLabel("3.14")
	if wl <= ws {
		t.Errorf("size 32 width %v not greater than size 8 width %v", wl, ws)
	}
	if small.Size() != 8 || large.Size() != 32 {
		t.Errorf("Size() = %v, %v, want 8, 32", small.Size(), large.Size())
	}
}

func TestMeasureLabelConcurrent(t *testing.T) {
	m := newTestMeasurer(t)
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				if w, _ := m.MeasureLabel("-2.5"); w <= 0 {
					t.Error("concurrent measure returned non-positive width")
					return
				}
			}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}
