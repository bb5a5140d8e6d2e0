package chart

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Projection is the screen-space layout of one series in one viewport. It is
// computed once per render pass so that the curve and the selection overlay
// are derived from the same range and step.
type Projection struct {
	Viewport Viewport
	Points   []ScreenPoint
	// Min and Max are the extrema of the projected values.
	Min, Max float64
	// StepX is the horizontal distance between consecutive points. It is zero
	// for series with fewer than two points.
	StepX float64
}

// Project maps points into vp. Point i lands at x = i*StepX, and values are
// normalized into [0, vp.Height] with larger values nearer the top. A flat
// series is drawn along the bottom edge, and a single point sits on the left
// edge.
func Project(points []Point, vp Viewport) Projection {
	p := Projection{Viewport: vp}
	if len(points) == 0 {
		return p
	}
	p.Min, p.Max = points[0].Value, points[0].Value
	for _, pt := range points[1:] {
		p.Min = min(p.Min, pt.Value)
		p.Max = max(p.Max, pt.Value)
	}
	if len(points) > 1 {
		p.StepX = vp.Width / float64(len(points)-1)
	}
	valueRange := p.Max - p.Min
	p.Points = make([]ScreenPoint, len(points))
	for i, pt := range points {
		normalized := 0.0
		if valueRange > 0 {
			normalized = (pt.Value - p.Min) / valueRange
		}
		p.Points[i] = ScreenPoint{
			X: float64(i) * p.StepX,
			Y: vp.Height - normalized*vp.Height,
		}
	}
	return p
}

// Map returns only the screen points of Project(points, vp).
func Map(points []Point, vp Viewport) []ScreenPoint {
	return Project(points, vp).Points
}

// Len returns the number of projected points.
func (p Projection) Len() int {
	return len(p.Points)
}

// IndexAt returns the index of the point nearest to the horizontal position
// x, clamped into the valid range. It returns false when there is nothing to
// select. Pointer selection snaps through this so that the selected index
// always matches the drawn geometry.
func (p Projection) IndexAt(x float64) (int, bool) {
	n := p.Len()
	if n == 0 || p.Viewport.Empty() {
		return 0, false
	}
	if n == 1 || p.StepX <= 0 {
		return 0, true
	}
	idx := math.Round(x / p.StepX)
	if math.IsNaN(idx) {
		return 0, true
	}
	return int(clamp(idx, 0, float64(n-1))), true
}

func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
