package queries

import (
	"github.com/shopspring/decimal"

	"github.com/soletrade/soletrade/types"
)

type TradeSavePayload struct {
	Price         decimal.Decimal  `json:"price" form:"price" validate:"ValidatePrice"`
	State         types.TradeState `json:"state" form:"state" validate:"required|ValidateState"`
	ProductSizeID uint64           `json:"product_size_id" form:"product_size_id" validate:"required"`
}

func (p TradeSavePayload) ValidatePrice(price decimal.Decimal) bool {
	return price.IsPositive()
}

// ValidateState only accepts an open side; DONE is reached through a
// completed sale, never submitted directly.
func (p TradeSavePayload) ValidateState(state types.TradeState) bool {
	return state == types.StateBuy || state == types.StateSell
}

func (p TradeSavePayload) Messages() map[string]string {
	return map[string]string{
		"required":      "trade.save.missing_{field}",
		"ValidatePrice": "trade.save.non_positive_price",
		"ValidateState": "trade.save.invalid_state",
	}
}

type TradePricePayload struct {
	Price decimal.Decimal `json:"price" form:"price" validate:"ValidatePrice"`
}

func (p TradePricePayload) ValidatePrice(price decimal.Decimal) bool {
	return price.IsPositive()
}

func (p TradePricePayload) Messages() map[string]string {
	return map[string]string{
		"ValidatePrice": "trade.update.non_positive_price",
	}
}

type TradeFilters struct {
	State types.TradeState `query:"state" validate:"ValidateState"`
	Page  int              `query:"page" validate:"uint"`
	Limit int              `query:"limit" validate:"uint"`
}

func (p TradeFilters) ValidateState(state types.TradeState) bool {
	if len(state) == 0 {
		return true
	}

	return state == types.StateBuy || state == types.StateSell || state == types.StateDone
}

func (p TradeFilters) Messages() map[string]string {
	return map[string]string{
		"uint":          "trade.filter.invalid_{field}",
		"ValidateState": "trade.filter.invalid_state",
	}
}
