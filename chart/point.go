// Package chart turns a time series into drawable geometry: screen-space
// projection, smoothed curves, trend coloring, timeframe slicing and the
// drag-to-select state machine. Nothing in this package draws; the Scene it
// produces is painted by whichever host consumes it.
package chart

import "time"

// Point is a single observation in a history. Histories are ordered by
// non-decreasing Timestamp.
type Point struct {
	Value     float64
	Timestamp time.Time
}

// Viewport is the pixel area a chart is laid out into.
type Viewport struct {
	Width, Height float64
}

// Empty reports whether the viewport has no drawable area. Empty viewports
// produce empty scenes instead of errors.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

type ScreenPoint struct {
	X, Y float64
}

func Pt(x, y float64) ScreenPoint {
	return ScreenPoint{X: x, Y: y}
}

func (p ScreenPoint) Add(q ScreenPoint) ScreenPoint {
	return ScreenPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p ScreenPoint) Sub(q ScreenPoint) ScreenPoint {
	return ScreenPoint{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p ScreenPoint) Mul(s float64) ScreenPoint {
	return ScreenPoint{X: p.X * s, Y: p.Y * s}
}
