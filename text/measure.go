package text

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ErrEmptyFontData is returned when a Measurer is created from no bytes.
var ErrEmptyFontData = errors.New("text: empty font data")

// Measurer shapes label strings at a fixed size and reports their pixel
// extents. It implements axis.LabelMeasurer.
//
// The parsed font.Font is read-only and shared; font.Face and
// shaping.HarfbuzzShaper carry mutable state, so a mutex serializes Measure
// calls. One Measurer per font/size pair is expected to be shared across all
// tick sets of a board.
type Measurer struct {
	mu     sync.Mutex
	face   *font.Face
	shaper shaping.HarfbuzzShaper
	size   float64
}

// NewMeasurer parses TTF or OTF font data and returns a Measurer for labels
// rendered at the given pixel size. The data slice is not retained.
func NewMeasurer(data []byte, size float64) (*Measurer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parsing font: %w", err)
	}
	return &Measurer{face: face, size: size}, nil
}

// NewMeasurerFromFile loads a font file and returns a Measurer for labels
// rendered at the given pixel size.
func NewMeasurerFromFile(path string, size float64) (*Measurer, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: reading font file: %w", err)
	}
	return NewMeasurer(data, size)
}

// Size returns the pixel size labels are measured at.
func (m *Measurer) Size() float64 {
	return m.size
}

// MeasureLabel shapes s and returns its advance width and line height in
// pixels. The empty string measures as zero width.
//
// MeasureLabel is safe for concurrent use.
func (m *Measurer) MeasureLabel(s string) (width, height float64) {
	if s == "" {
		return 0, 0
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      m.face,
		Size:      floatToFixed(m.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	m.mu.Lock()
	output := m.shaper.Shape(input)
	m.mu.Unlock()

	width = fixedToFloat(output.Advance)
	height = fixedToFloat(output.LineBounds.Ascent - output.LineBounds.Descent)
	return width, height
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Labels are usually plain decimal numbers, which
// resolve to Latin.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 pixel size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so multiply by 64.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
