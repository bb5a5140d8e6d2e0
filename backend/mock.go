package backend

import (
	"time"

	"git.sr.ht/~whereswaldon/folio/chart"
)

// Portfolio is the headline summary of a wallet. Values are in rupees.
type Portfolio struct {
	TotalValue         float64
	TotalChange        float64
	TotalChangePercent float64
}

func (p Portfolio) IsPositiveChange() bool {
	return p.TotalChange >= 0
}

type Asset struct {
	Symbol             string
	Name               string
	Price              float64
	PriceChange        float64
	PriceChangePercent float64
}

func (a Asset) IsPositiveChange() bool {
	return a.PriceChange >= 0
}

type TxType uint8

const (
	Receive TxType = iota
	Send
	Exchange
)

func (t TxType) String() string {
	switch t {
	case Receive:
		return "Receive"
	case Send:
		return "Send"
	case Exchange:
		return "Exchange"
	default:
		return "Unknown"
	}
}

// Credit reports whether the transaction adds to the wallet.
func (t TxType) Credit() bool {
	return t != Send
}

type Transaction struct {
	Type   TxType
	Symbol string
	Amount float64
	Date   time.Time
}

// Mock serves a fixed demonstration wallet.
type Mock struct{}

var mockHistory = [...]float64{
	125340, 128200, 131900, 129500, 133200, 130800, 135600, 132400, 138900, 141200,
	139800, 143500, 137200, 140600, 145800, 142300, 148200, 151600, 149800, 153400,
	147900, 150200, 146800, 142340, 145200, 138900, 151200, 148500, 155800, 157342,
}

func (Mock) Portfolio() Portfolio {
	return Portfolio{
		TotalValue:         157342.05,
		TotalChange:        5234.12,
		TotalChangePercent: 3.4,
	}
}

func (Mock) Assets() []Asset {
	return []Asset{
		{
			Symbol:             "BTC",
			Name:               "Bitcoin (BTC)",
			Price:              7562502.14,
			PriceChange:        23456.78,
			PriceChangePercent: 3.2,
		},
		{
			Symbol:             "ETH",
			Name:               "Ether (ETH)",
			Price:              179102.50,
			PriceChange:        5567.89,
			PriceChangePercent: 3.2,
		},
	}
}

// Transactions returns the recent activity as of now.
func (Mock) Transactions(now time.Time) []Transaction {
	yesterday := now.AddDate(0, 0, -1)
	txs := make([]Transaction, 3)
	for i := range txs {
		txs[i] = Transaction{
			Type:   Receive,
			Symbol: "BTC",
			Amount: 0.002126,
			Date:   yesterday,
		}
	}
	return txs
}

// History returns thirty daily values, the last of which is at now.
func (Mock) History(now time.Time) []chart.Point {
	pts := make([]chart.Point, len(mockHistory))
	for i, v := range mockHistory {
		pts[i] = chart.Point{
			Value:     v,
			Timestamp: now.AddDate(0, 0, i-(len(mockHistory)-1)),
		}
	}
	return pts
}
