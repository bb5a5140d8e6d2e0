package chart

import "testing"

func TestSegmentsInterpolate(t *testing.T) {
	pts := Map(makeTestSeries(3, 8, 1, 9, 4, 4, 7), Viewport{Width: 600, Height: 300})
	segs := Segments(pts)
	if len(segs) != len(pts)-1 {
		t.Fatalf("expected %d segments, got %d", len(pts)-1, len(segs))
	}
	for i, s := range segs {
		if s.From != pts[i] || s.To != pts[i+1] {
			t.Errorf("segment %d: expected %v -> %v, got %v -> %v", i, pts[i], pts[i+1], s.From, s.To)
		}
	}
}

func TestSegmentsEdgeHandles(t *testing.T) {
	pts := []ScreenPoint{Pt(0, 10), Pt(100, 50), Pt(200, 20), Pt(300, 80)}
	segs := Segments(pts)

	first := segs[0]
	expectPoint(t, "first ctrl1", Pt(30, 10), first.Ctrl1)
	expectPoint(t, "first ctrl2", Pt(70, 50), first.Ctrl2)

	last := segs[len(segs)-1]
	expectPoint(t, "last ctrl1", Pt(230, 20), last.Ctrl1)
	expectPoint(t, "last ctrl2", Pt(270, 80), last.Ctrl2)
}

func TestSegmentsInteriorHandles(t *testing.T) {
	pts := []ScreenPoint{Pt(0, 10), Pt(100, 50), Pt(200, 20), Pt(300, 80)}
	mid := Segments(pts)[1]
	// ctrl1 = p1 + (p2 - p0) * 0.15, ctrl2 = p2 - (p3 - p1) * 0.15
	expectPoint(t, "interior ctrl1", Pt(100+200*0.15, 50+10*0.15), mid.Ctrl1)
	expectPoint(t, "interior ctrl2", Pt(200-200*0.15, 20-30*0.15), mid.Ctrl2)
}

func TestSegmentsTwoPoints(t *testing.T) {
	segs := Segments([]ScreenPoint{Pt(0, 0), Pt(50, 40)})
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	expectPoint(t, "ctrl1", Pt(15, 0), segs[0].Ctrl1)
	expectPoint(t, "ctrl2", Pt(35, 40), segs[0].Ctrl2)
}

func TestBuildLine(t *testing.T) {
	for _, tc := range []struct {
		name  string
		pts   []ScreenPoint
		kinds []OpKind
	}{
		{name: "empty"},
		{name: "single", pts: []ScreenPoint{Pt(0, 10)}, kinds: []OpKind{MoveTo}},
		{name: "pair", pts: []ScreenPoint{Pt(0, 10), Pt(10, 0)}, kinds: []OpKind{MoveTo, CubeTo}},
		{name: "triple", pts: []ScreenPoint{Pt(0, 10), Pt(10, 0), Pt(20, 5)}, kinds: []OpKind{MoveTo, CubeTo, CubeTo}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildLine(tc.pts)
			if len(p.Ops) != len(tc.kinds) {
				t.Fatalf("expected %d ops, got %d", len(tc.kinds), len(p.Ops))
			}
			for i, k := range tc.kinds {
				if p.Ops[i].Kind != k {
					t.Errorf("op %d: expected %v, got %v", i, k, p.Ops[i].Kind)
				}
			}
			if len(tc.pts) > 0 && p.Ops[0].To != tc.pts[0] {
				t.Errorf("expected path to start at %v, got %v", tc.pts[0], p.Ops[0].To)
			}
		})
	}
}

func TestBuildArea(t *testing.T) {
	vp := Viewport{Width: 300, Height: 200}
	pts := Map(makeTestSeries(100, 90, 120), vp)
	area := BuildArea(pts, vp)
	kinds := []OpKind{MoveTo, LineTo, CubeTo, CubeTo, LineTo, Close}
	if len(area.Ops) != len(kinds) {
		t.Fatalf("expected %d ops, got %d", len(kinds), len(area.Ops))
	}
	for i, k := range kinds {
		if area.Ops[i].Kind != k {
			t.Errorf("op %d: expected %v, got %v", i, k, area.Ops[i].Kind)
		}
	}
	expectPoint(t, "bottom left", Pt(0, 200), area.Ops[0].To)
	expectPoint(t, "first point", pts[0], area.Ops[1].To)
	expectPoint(t, "last point", pts[2], area.Ops[3].To)
	expectPoint(t, "bottom right", Pt(300, 200), area.Ops[4].To)

	if !BuildArea(pts[:1], vp).Empty() {
		t.Errorf("expected no area for a single point")
	}
}
