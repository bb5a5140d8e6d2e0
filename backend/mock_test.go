package backend

import (
	"testing"
	"time"

	"git.sr.ht/~whereswaldon/folio/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockHistory(t *testing.T) {
	now := time.Date(2025, time.August, 22, 12, 0, 0, 0, time.UTC)
	pts := Mock{}.History(now)
	require.Len(t, pts, 30)
	assert.True(t, pts[len(pts)-1].Timestamp.Equal(now))
	assert.True(t, pts[0].Timestamp.Equal(now.AddDate(0, 0, -29)))
	assert.Equal(t, 125340.0, pts[0].Value)
	assert.Equal(t, 157342.0, pts[29].Value)
	for i := 1; i < len(pts); i++ {
		assert.True(t, pts[i].Timestamp.After(pts[i-1].Timestamp))
	}
	assert.Len(t, chart.Slice(pts, chart.OneWeek), 7)
	assert.Len(t, chart.Slice(pts, chart.DefaultTimeframe), 15)
}

func TestMockWallet(t *testing.T) {
	var m Mock
	p := m.Portfolio()
	assert.Equal(t, 157342.05, p.TotalValue)
	assert.True(t, p.IsPositiveChange())

	assets := m.Assets()
	require.Len(t, assets, 2)
	assert.Equal(t, "BTC", assets[0].Symbol)
	assert.Equal(t, "Ether (ETH)", assets[1].Name)

	now := time.Date(2025, time.August, 22, 12, 0, 0, 0, time.UTC)
	txs := m.Transactions(now)
	require.Len(t, txs, 3)
	for _, tx := range txs {
		assert.Equal(t, Receive, tx.Type)
		assert.True(t, tx.Type.Credit())
		assert.Equal(t, now.AddDate(0, 0, -1), tx.Date)
	}
	assert.False(t, Send.Credit())
	assert.Equal(t, "Exchange", Exchange.String())
}
