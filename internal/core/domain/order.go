package domain

import "github.com/shopspring/decimal"

// OrderSide is the direction of a venue order.
type OrderSide string

const (
	OrderBuy  OrderSide = "buy"
	OrderSell OrderSide = "sell"
)

// SpotOrder is a create-order instruction for the spot venue. Sender and
// SubaccountID are the vault's own trading identity.
type SpotOrder struct {
	MarketID     string          `json:"market_id"`
	SubaccountID string          `json:"subaccount_id"`
	FeeRecipient string          `json:"fee_recipient"`
	Side         OrderSide       `json:"side"`
	Price        decimal.Decimal `json:"price"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// DerivativeOrder is a create-order instruction for the derivative venue.
type DerivativeOrder struct {
	MarketID     string          `json:"market_id"`
	SubaccountID string          `json:"subaccount_id"`
	FeeRecipient string          `json:"fee_recipient"`
	Side         OrderSide       `json:"side"`
	Price        decimal.Decimal `json:"price"`
	Quantity     decimal.Decimal `json:"quantity"`
	Margin       decimal.Decimal `json:"margin"`
}

// OrderCancellation references a resting order by its opaque hash. The
// vault keeps no local order state; the venue is the source of truth.
type OrderCancellation struct {
	MarketID     string `json:"market_id"`
	SubaccountID string `json:"subaccount_id"`
	OrderHash    string `json:"order_hash"`
}
