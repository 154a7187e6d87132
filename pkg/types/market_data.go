package types

import "time"

// PriceRecord is a single daily price bar for the backtested asset.
// Volume and MarketCap are carried through from the data source but are not
// consulted by any strategy.
type PriceRecord struct {
	Date      time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
	MarketCap float64
}

// Purchase records one executed buy during a backtest run.
type Purchase struct {
	Date        time.Time
	Price       float64
	AmountSpent float64
	BTCAcquired float64
	Reason      string
}
