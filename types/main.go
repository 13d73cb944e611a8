package types

type TradeState = string

var (
	StateBuy  TradeState = "BUY"
	StateSell TradeState = "SELL"
	StateDone TradeState = "DONE"
)

type MemberRole = string

var (
	RoleUser  MemberRole = "USER"
	RoleAdmin MemberRole = "ADMIN"
)

type OrderBy = string

var (
	OrderByAsc  OrderBy = "asc"
	OrderByDesc OrderBy = "desc"
)

// MarketSnapshot is the cached per-product market view built by the
// snapshot cron and served from Redis.
type MarketSnapshot struct {
	ProductID   uint64  `json:"product_id"`
	HighestBid  *string `json:"highest_bid"`
	LowestAsk   *string `json:"lowest_ask"`
	LastSale    *string `json:"last_sale"`
	GeneratedAt int64   `json:"generated_at"`
}
