// Package chart renders time-series line charts. The aggregation code
// never imports this package; commands hand it ready-made series and a
// writer, so everything upstream stays testable without a renderer.
package chart

import "io"

// Series is one line on a chart.
type Series struct {
	Name   string
	Values []float64
}

// LineChart is a categorized time series: one X label per position,
// one Series per category.
type LineChart struct {
	Title    string
	Subtitle string
	XLabel   string
	YLabel   string
	XValues  []string
	Series   []Series
}

// Renderer writes a chart as a self-contained document.
type Renderer interface {
	RenderLine(w io.Writer, c LineChart) error
}
