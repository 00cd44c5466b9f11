// Package text measures axis label strings.
//
// A Measurer parses a TTF/OTF font once and shapes label strings with
// go-text/typesetting's HarfBuzz implementation, reporting pixel advance and
// line height. The root package consumes it through the axis.LabelMeasurer
// interface to center tick labels; rendering of the shaped text stays with
// the host backend.
package text
