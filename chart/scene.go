package chart

import (
	"time"

	"git.sr.ht/~whereswaldon/folio/format"
)

// LabelFormatter produces the text of the selection label.
type LabelFormatter interface {
	FormatValue(v float64, mode format.CurrencyMode) string
	FormatDate(t time.Time) string
}

// Input is everything a render pass depends on.
type Input struct {
	Points    []Point
	Viewport  Viewport
	Selection Selection
	Currency  format.CurrencyMode
	// Format defaults to format.Default() when nil.
	Format LabelFormatter
}

type Line struct {
	From, To ScreenPoint
	Color    Color
	Width    float64
}

type Stroke struct {
	Path  Path
	Color Color
	Width float64
}

// Fill is a closed path painted with a vertical gradient from Top at y=0 to
// Bottom at the bottom of the viewport.
type Fill struct {
	Path        Path
	Top, Bottom Color
}

// Circle is filled when Width is zero and stroked otherwise.
type Circle struct {
	Center ScreenPoint
	Radius float64
	Color  Color
	Width  float64
}

type Align uint8

const (
	// AlignStart places the text to the right of its anchor.
	AlignStart Align = iota
	// AlignEnd places the text to the left of its anchor.
	AlignEnd
)

// Text is a single line positioned by the left or right end of its baseline.
type Text struct {
	Text   string
	Anchor ScreenPoint
	Align  Align
	Size   float64
	Color  Color
}

// Overlay annotates the selected point.
type Overlay struct {
	Index  int
	Point  Point
	Guide  Line
	Marker Circle
	Ring   Circle
	Date   Text
	Value  Text
}

// Scene is a complete, toolkit-neutral description of one chart frame. Paint
// order is Grid, Area, Line, then Overlay.
type Scene struct {
	Viewport Viewport
	Grid     []Line
	Area     *Fill
	Line     []Stroke
	Overlay  *Overlay
	// Projection is the geometry every layer was derived from.
	Projection Projection
}

// Empty reports whether the scene draws nothing at all.
func (s Scene) Empty() bool {
	return len(s.Grid) == 0 && s.Area == nil && len(s.Line) == 0 && s.Overlay == nil
}

// Render builds the scene for in. It keeps no state between calls.
func Render(in Input, style Style) Scene {
	s := Scene{Viewport: in.Viewport}
	if in.Viewport.Empty() {
		return s
	}
	s.Grid = grid(in.Viewport, style)
	proj := Project(in.Points, in.Viewport)
	s.Projection = proj
	switch proj.Len() {
	case 0:
		return s
	case 1:
		s.Line = []Stroke{{
			Path:  BuildLine(proj.Points),
			Color: style.Rising,
			Width: style.LineWidth,
		}}
	default:
		tint := style.TrendColor(OverallTrend(in.Points))
		area := BuildArea(proj.Points, in.Viewport)
		s.Area = &Fill{
			Path:   area,
			Top:    tint.WithAlpha(style.AreaAlpha),
			Bottom: tint.WithAlpha(0),
		}
		for i, seg := range Segments(proj.Points) {
			var p Path
			p.MoveTo(seg.From)
			p.CubeTo(seg.Ctrl1, seg.Ctrl2, seg.To)
			trend := SegmentTrend(in.Points[i].Value, in.Points[i+1].Value)
			s.Line = append(s.Line, Stroke{
				Path:  p,
				Color: style.TrendColor(trend),
				Width: style.LineWidth,
			})
		}
	}
	if idx, ok := in.Selection.Get(); ok && idx >= 0 && idx < proj.Len() {
		f := in.Format
		if f == nil {
			f = format.Default()
		}
		s.Overlay = overlay(idx, in.Points[idx], proj, in.Currency, f, style)
	}
	return s
}

func grid(vp Viewport, style Style) []Line {
	rows, cols := max(0, style.GridRows), max(0, style.GridColumns)
	lines := make([]Line, 0, rows+cols)
	for i := 0; i < rows; i++ {
		y := float64(i) * vp.Height / float64(rows)
		lines = append(lines, Line{
			From:  Pt(0, y),
			To:    Pt(vp.Width, y),
			Color: style.GridColor,
			Width: style.GridWidth,
		})
	}
	for i := 0; i < cols; i++ {
		x := float64(i) * vp.Width / float64(cols)
		lines = append(lines, Line{
			From:  Pt(x, 0),
			To:    Pt(x, vp.Height),
			Color: style.GridColor,
			Width: style.GridWidth,
		})
	}
	return lines
}

func overlay(idx int, pt Point, proj Projection, mode format.CurrencyMode, f LabelFormatter, style Style) *Overlay {
	vp := proj.Viewport
	at := proj.Points[idx]
	o := &Overlay{
		Index: idx,
		Point: pt,
		Guide: Line{
			From:  Pt(at.X, 0),
			To:    Pt(at.X, vp.Height),
			Color: style.Marker,
			Width: style.GuideWidth,
		},
		Marker: Circle{Center: at, Radius: style.MarkerRadius, Color: style.Marker},
		Ring:   Circle{Center: at, Radius: style.RingRadius, Color: style.Marker, Width: 2},
	}
	// Labels go on whichever side of the guide has more room.
	x, align := at.X+style.LabelGap, AlignStart
	if at.X > vp.Width/2 {
		x, align = at.X-style.LabelGap, AlignEnd
	}
	dateY := style.DateSize
	o.Date = Text{
		Text:   f.FormatDate(pt.Timestamp),
		Anchor: Pt(x, dateY),
		Align:  align,
		Size:   style.DateSize,
		Color:  style.LabelDate,
	}
	o.Value = Text{
		Text:   f.FormatValue(pt.Value, mode),
		Anchor: Pt(x, dateY+4+style.ValueSize),
		Align:  align,
		Size:   style.ValueSize,
		Color:  style.LabelValue,
	}
	return o
}
