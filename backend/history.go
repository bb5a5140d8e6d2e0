package backend

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"git.sr.ht/~whereswaldon/folio/chart"
)

var historyHeadings = []string{"timestamp (ns)", "value"}

// ErrEmptyHistory is returned when a history source holds no points.
var ErrEmptyHistory = errors.New("history contains no points")

// ReadHistoryCSV parses a history written by WriteHistoryCSV. The heading row
// is optional. Timestamps must not decrease.
func ReadHistoryCSV(r io.Reader) ([]chart.Point, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = len(historyHeadings)
	csvReader.ReuseRecord = true
	var pts []chart.Point
	for line := 1; ; line++ {
		rec, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed reading history: %w", err)
		}
		ts := strings.TrimSpace(rec[0])
		if line == 1 && strings.EqualFold(ts, historyHeadings[0]) {
			continue
		}
		ns, err := strconv.ParseInt(ts, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: failed parsing timestamp: %w", line, err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: failed parsing value: %w", line, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("line %d: value %v is not finite", line, v)
		}
		pt := chart.Point{Value: v, Timestamp: time.Unix(0, ns)}
		if n := len(pts); n > 0 && pt.Timestamp.Before(pts[n-1].Timestamp) {
			return nil, fmt.Errorf("line %d: timestamp %d is before %d", line, ns, pts[n-1].Timestamp.UnixNano())
		}
		pts = append(pts, pt)
	}
	if len(pts) == 0 {
		return nil, ErrEmptyHistory
	}
	return pts, nil
}

// WriteHistoryCSV writes pts with a heading row.
func WriteHistoryCSV(w io.Writer, pts []chart.Point) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(historyHeadings); err != nil {
		return err
	}
	record := make([]string, len(historyHeadings))
	for _, pt := range pts {
		record[0] = strconv.FormatInt(pt.Timestamp.UnixNano(), 10)
		record[1] = strconv.FormatFloat(pt.Value, 'f', -1, 64)
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
