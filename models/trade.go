package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/soletrade/soletrade/types"
)

type Trade struct {
	ID            uint64           `json:"id" gorm:"primaryKey"`
	Price         decimal.Decimal  `json:"price" gorm:"not null"`
	State         types.TradeState `json:"state" gorm:"index;not null"`
	ProductSizeID uint64           `json:"product_size_id" gorm:"index;not null"`
	MemberID      uint64           `json:"member_id" gorm:"index;not null"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// Open reports whether the trade is still an outstanding bid or ask.
func (t *Trade) Open() bool {
	return t.State == types.StateBuy || t.State == types.StateSell
}

// InfluxPoint flattens the trade into the tag/field sets written to the
// trades measurement for price history charts.
func (t *Trade) InfluxPoint(size int, product_id uint64) (map[string]string, map[string]interface{}) {
	price, _ := t.Price.Float64()

	tags := map[string]string{"product_id": FormatID(product_id)}
	fields := map[string]interface{}{
		"id":    int64(t.ID),
		"size":  size,
		"price": price,
		"state": t.State,
	}

	return tags, fields
}
