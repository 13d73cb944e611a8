package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeDoneEntity is one completed sale of a product, newest first.
type TradeDoneEntity struct {
	Size     int             `json:"size"`
	Price    decimal.Decimal `json:"price"`
	TradedAt time.Time       `json:"traded_at"`
}

// TradeTransactionEntity is one (price, size) level of the open bids or
// asks for a product, with the number of outstanding trades at it.
type TradeTransactionEntity struct {
	Size  int             `json:"size"`
	Price decimal.Decimal `json:"price"`
	Count int64           `json:"count"`
}

// TradeEntity is a member's own bid or ask as shown in their history.
type TradeEntity struct {
	ID      uint64          `json:"id"`
	KorName string          `json:"kor_name"`
	Size    int             `json:"size"`
	Price   decimal.Decimal `json:"price"`
	Image   string          `json:"image"`
}
