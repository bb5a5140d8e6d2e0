package chart

type Trend uint8

const (
	Rising Trend = iota
	Falling
)

func (t Trend) String() string {
	switch t {
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	default:
		return "unknown"
	}
}

// SegmentTrend classifies the move from start to end. Unchanged values count
// as rising.
func SegmentTrend(start, end float64) Trend {
	if end >= start {
		return Rising
	}
	return Falling
}

// OverallTrend compares the first and last points of a window. Windows with
// fewer than two points are rising.
func OverallTrend(points []Point) Trend {
	if len(points) < 2 {
		return Rising
	}
	return SegmentTrend(points[0].Value, points[len(points)-1].Value)
}
