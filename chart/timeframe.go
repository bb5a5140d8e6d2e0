package chart

import (
	"errors"
	"fmt"
)

// Timeframe selects how much of a history is visible.
type Timeframe uint8

const (
	OneHour Timeframe = iota
	EightHours
	OneDay
	OneWeek
	OneMonth
	SixMonths
	OneYear
)

const DefaultTimeframe = SixMonths

var ErrUnknownTimeframe = errors.New("unknown timeframe")

var timeframeNames = [...]string{
	OneHour:    "1h",
	EightHours: "8h",
	OneDay:     "1d",
	OneWeek:    "1w",
	OneMonth:   "1m",
	SixMonths:  "6m",
	OneYear:    "1y",
}

// Timeframes returns every timeframe in display order.
func Timeframes() []Timeframe {
	return []Timeframe{OneHour, EightHours, OneDay, OneWeek, OneMonth, SixMonths, OneYear}
}

func (t Timeframe) String() string {
	if int(t) < len(timeframeNames) {
		return timeframeNames[t]
	}
	return "?"
}

func ParseTimeframe(s string) (Timeframe, error) {
	for i, name := range timeframeNames {
		if name == s {
			return Timeframe(i), nil
		}
	}
	return DefaultTimeframe, fmt.Errorf("%w: %q", ErrUnknownTimeframe, s)
}

// Count returns how many trailing points t shows, or -1 for the whole
// history.
//
// These are point counts over a daily series rather than wall-clock windows.
func (t Timeframe) Count() int {
	switch t {
	case OneHour:
		return 3
	case EightHours:
		return 8
	case OneDay:
		return 24
	case OneWeek:
		return 7
	case OneMonth:
		return 30
	case SixMonths:
		return 15
	default:
		return -1
	}
}

// Slice returns the visible suffix of all for t. The result aliases all but
// has its capacity clipped, so appending to it never writes into all.
func Slice(all []Point, t Timeframe) []Point {
	n := t.Count()
	if n < 0 || n > len(all) {
		n = len(all)
	}
	start := len(all) - n
	return all[start:len(all):len(all)]
}
