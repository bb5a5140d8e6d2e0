package chart

type OpKind uint8

const (
	MoveTo OpKind = iota
	LineTo
	CubeTo
	Close
)

func (k OpKind) String() string {
	switch k {
	case MoveTo:
		return "move"
	case LineTo:
		return "line"
	case CubeTo:
		return "cube"
	case Close:
		return "close"
	default:
		return "unknown"
	}
}

// PathOp is one drawing instruction. Ctrl1 and Ctrl2 are only meaningful for
// CubeTo, and To is unused by Close.
type PathOp struct {
	Kind         OpKind
	Ctrl1, Ctrl2 ScreenPoint
	To           ScreenPoint
}

// Path is a toolkit-neutral vector path.
type Path struct {
	Ops []PathOp
}

func (p *Path) MoveTo(to ScreenPoint) {
	p.Ops = append(p.Ops, PathOp{Kind: MoveTo, To: to})
}

func (p *Path) LineTo(to ScreenPoint) {
	p.Ops = append(p.Ops, PathOp{Kind: LineTo, To: to})
}

func (p *Path) CubeTo(ctrl1, ctrl2, to ScreenPoint) {
	p.Ops = append(p.Ops, PathOp{Kind: CubeTo, Ctrl1: ctrl1, Ctrl2: ctrl2, To: to})
}

func (p *Path) Close() {
	p.Ops = append(p.Ops, PathOp{Kind: Close})
}

// Empty reports whether the path encloses or strokes nothing.
func (p Path) Empty() bool {
	return len(p.Ops) < 2
}

// Segment is the cubic Bézier joining two consecutive screen points.
type Segment struct {
	From, Ctrl1, Ctrl2, To ScreenPoint
}

const (
	// edgeTension is the fraction of the horizontal gap used for the
	// horizontal-only handles of the first and last segments.
	edgeTension = 0.3
	// innerTension scales the neighbor-to-neighbor vectors that orient the
	// handles of interior segments.
	innerTension = 0.15
)

// Segments returns one cubic per consecutive pair of points. The curve passes
// through every point exactly; only the handles are smoothed.
func Segments(pts []ScreenPoint) []Segment {
	if len(pts) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		prev, cur := pts[i-1], pts[i]
		var c1, c2 ScreenPoint
		if i == 1 || i == len(pts)-1 {
			dx := cur.X - prev.X
			c1 = Pt(prev.X+dx*edgeTension, prev.Y)
			c2 = Pt(cur.X-dx*edgeTension, cur.Y)
		} else {
			prevPrev, next := pts[i-2], pts[i+1]
			c1 = prev.Add(cur.Sub(prevPrev).Mul(innerTension))
			c2 = cur.Sub(next.Sub(prev).Mul(innerTension))
		}
		segs = append(segs, Segment{From: prev, Ctrl1: c1, Ctrl2: c2, To: cur})
	}
	return segs
}

// BuildLine returns the smoothed line through pts. A single point yields a
// path holding only its MoveTo, and no points yield an empty path.
func BuildLine(pts []ScreenPoint) Path {
	var p Path
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0])
	for _, s := range Segments(pts) {
		p.CubeTo(s.Ctrl1, s.Ctrl2, s.To)
	}
	return p
}

// BuildArea returns the closed region between the smoothed line and the
// bottom edge of vp.
func BuildArea(pts []ScreenPoint, vp Viewport) Path {
	var p Path
	if len(pts) < 2 {
		return p
	}
	p.MoveTo(Pt(0, vp.Height))
	p.LineTo(pts[0])
	for _, s := range Segments(pts) {
		p.CubeTo(s.Ctrl1, s.Ctrl2, s.To)
	}
	p.LineTo(Pt(vp.Width, vp.Height))
	p.Close()
	return p
}
