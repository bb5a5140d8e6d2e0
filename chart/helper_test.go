package chart

import (
	"math"
	"testing"
	"time"
)

var testEpoch = time.Date(2025, time.August, 22, 0, 0, 0, 0, time.UTC)

func makeTestSeries(values ...float64) []Point {
	pts := make([]Point, len(values))
	for i, v := range values {
		pts[i] = Point{
			Value:     v,
			Timestamp: testEpoch.AddDate(0, 0, i),
		}
	}
	return pts
}

func rampSeries(n int) []Point {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i)
	}
	return makeTestSeries(values...)
}

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func expectPoint(t *testing.T, label string, expected, actual ScreenPoint) {
	t.Helper()
	if !near(expected.X, actual.X) || !near(expected.Y, actual.Y) {
		t.Errorf("%s: expected %v, got %v", label, expected, actual)
	}
}
