package main

import (
	"image"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"git.sr.ht/~whereswaldon/folio/chart"
	"git.sr.ht/~whereswaldon/folio/model"
)

// ChartWidget draws the visible window of a portfolio and turns pointer
// drags into selections. Scene coordinates are in Dp.
type ChartWidget struct {
	portfolio *model.Portfolio
	// viewport and scale are those of the last layout, used to interpret
	// pointer positions.
	viewport chart.Viewport
	scale    float32
}

func NewChartWidget(p *model.Portfolio) *ChartWidget {
	return &ChartWidget{portfolio: p, scale: 1}
}

func rec(gtx C, w layout.Widget) (D, op.CallOp) {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	return dims, call
}

func (c *ChartWidget) Update(gtx C) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: c,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		x := float64(e.Position.X / c.scale)
		switch e.Kind {
		case pointer.Press:
			c.portfolio.Press(x, c.viewport)
		case pointer.Drag:
			c.portfolio.Drag(x, c.viewport)
		case pointer.Release, pointer.Cancel:
			c.portfolio.Release()
		}
	}
}

// Layout fills the maximum constraints with the chart.
func (c *ChartWidget) Layout(gtx C, th *material.Theme, style chart.Style) D {
	c.Update(gtx)
	size := gtx.Constraints.Max
	c.scale = gtx.Metric.PxPerDp
	c.viewport = chart.Viewport{
		Width:  float64(float32(size.X) / c.scale),
		Height: float64(float32(size.Y) / c.scale),
	}
	scene := c.portfolio.Scene(c.viewport, style)

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, c)
	pointer.CursorCrosshair.Add(gtx.Ops)
	c.paint(gtx, th, scene)
	return D{Size: size}
}

func (c *ChartWidget) pt(p chart.ScreenPoint) f32.Point {
	return f32.Pt(float32(p.X)*c.scale, float32(p.Y)*c.scale)
}

func (c *ChartWidget) px(v float64) float32 {
	return float32(v) * c.scale
}

func (c *ChartWidget) path(ops *op.Ops, p chart.Path) clip.PathSpec {
	var path clip.Path
	path.Begin(ops)
	for _, o := range p.Ops {
		switch o.Kind {
		case chart.MoveTo:
			path.MoveTo(c.pt(o.To))
		case chart.LineTo:
			path.LineTo(c.pt(o.To))
		case chart.CubeTo:
			path.CubeTo(c.pt(o.Ctrl1), c.pt(o.Ctrl2), c.pt(o.To))
		case chart.Close:
			path.Close()
		}
	}
	return path.End()
}

func (c *ChartWidget) paint(gtx C, th *material.Theme, s chart.Scene) {
	for _, l := range s.Grid {
		c.paintLine(gtx, l)
	}
	if s.Area != nil {
		stack := clip.Outline{Path: c.path(gtx.Ops, s.Area.Path)}.Op().Push(gtx.Ops)
		paint.LinearGradientOp{
			Stop1:  f32.Pt(0, 0),
			Color1: s.Area.Top.NRGBA(),
			Stop2:  f32.Pt(0, c.px(s.Viewport.Height)),
			Color2: s.Area.Bottom.NRGBA(),
		}.Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
		stack.Pop()
	}
	for _, st := range s.Line {
		if st.Path.Empty() {
			continue
		}
		paint.FillShape(gtx.Ops, st.Color.NRGBA(), clip.Stroke{
			Path:  c.path(gtx.Ops, st.Path),
			Width: c.px(st.Width),
		}.Op())
	}
	if o := s.Overlay; o != nil {
		c.paintLine(gtx, o.Guide)
		c.paintCircle(gtx, o.Ring)
		c.paintCircle(gtx, o.Marker)
		c.paintText(gtx, th, o.Date)
		c.paintText(gtx, th, o.Value)
	}
}

func (c *ChartWidget) paintLine(gtx C, l chart.Line) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(c.pt(l.From))
	path.LineTo(c.pt(l.To))
	paint.FillShape(gtx.Ops, l.Color.NRGBA(), clip.Stroke{
		Path:  path.End(),
		Width: c.px(l.Width),
	}.Op())
}

func (c *ChartWidget) paintCircle(gtx C, circle chart.Circle) {
	center, r := c.pt(circle.Center), c.px(circle.Radius)
	bounds := clip.Ellipse{
		Min: image.Pt(int(center.X-r), int(center.Y-r)),
		Max: image.Pt(int(center.X+r+0.5), int(center.Y+r+0.5)),
	}
	if circle.Width == 0 {
		paint.FillShape(gtx.Ops, circle.Color.NRGBA(), bounds.Op(gtx.Ops))
		return
	}
	paint.FillShape(gtx.Ops, circle.Color.NRGBA(), clip.Stroke{
		Path:  bounds.Path(gtx.Ops),
		Width: c.px(circle.Width),
	}.Op())
}

func (c *ChartWidget) paintText(gtx C, th *material.Theme, t chart.Text) {
	l := material.Label(th, unit.Sp(float32(t.Size)), t.Text)
	l.Color = t.Color.NRGBA()
	l.MaxLines = 1
	gtx.Constraints.Min = image.Point{}
	dims, call := rec(gtx, l.Layout)
	anchor := c.pt(t.Anchor)
	x := int(anchor.X)
	if t.Align == chart.AlignEnd {
		x -= dims.Size.X
	}
	// Anchors are baselines.
	y := int(anchor.Y) - (dims.Size.Y - dims.Baseline)
	defer op.Offset(image.Pt(x, y)).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}
