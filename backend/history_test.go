package backend

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCSVRoundTrip(t *testing.T) {
	now := time.Date(2025, time.August, 22, 9, 30, 0, 0, time.UTC)
	pts := Mock{}.History(now)

	var buf bytes.Buffer
	require.NoError(t, WriteHistoryCSV(&buf, pts))
	assert.True(t, strings.HasPrefix(buf.String(), "timestamp (ns),value\n"))

	got, err := ReadHistoryCSV(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(pts))
	for i := range pts {
		assert.Equal(t, pts[i].Value, got[i].Value)
		assert.True(t, pts[i].Timestamp.Equal(got[i].Timestamp), "timestamp %d", i)
	}
}

func TestReadHistoryCSVWithoutHeading(t *testing.T) {
	got, err := ReadHistoryCSV(strings.NewReader("1000, 5.5\n2000, 6\n"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 5.5, got[0].Value)
	assert.Equal(t, int64(2000), got[1].Timestamp.UnixNano())
}

func TestReadHistoryCSVRepeatedTimestamp(t *testing.T) {
	pts, err := ReadHistoryCSV(strings.NewReader("timestamp (ns),value\n1000,5\n1000,6\n2000,7\n"))
	require.NoError(t, err)
	require.Len(t, pts, 3)
	assert.Equal(t, pts[0].Timestamp, pts[1].Timestamp)
	assert.Equal(t, []float64{5, 6, 7}, []float64{pts[0].Value, pts[1].Value, pts[2].Value})
}

func TestReadHistoryCSVErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		empty bool
	}{
		{name: "empty", input: "", empty: true},
		{name: "heading only", input: "timestamp (ns),value\n", empty: true},
		{name: "bad timestamp", input: "yesterday,5\n"},
		{name: "bad value", input: "1000,lots\n"},
		{name: "not finite", input: "1000,NaN\n"},
		{name: "out of order", input: "2000,1\n1000,2\n"},
		{name: "wrong field count", input: "1000,1,2\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadHistoryCSV(strings.NewReader(tc.input))
			require.Error(t, err)
			if tc.empty {
				assert.ErrorIs(t, err, ErrEmptyHistory)
			} else {
				assert.NotErrorIs(t, err, ErrEmptyHistory)
			}
		})
	}
}
