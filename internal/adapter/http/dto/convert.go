package dto

import (
	"fmt"

	"pooled-trading-vault/internal/core/domain"
	"pooled-trading-vault/pkg/apperror"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a raw-unit amount string. Negative amounts are
// rejected at the boundary; zero passes through for the engines to judge.
func ParseAmount(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperror.Validation(fmt.Sprintf("%s: invalid amount %q", field, raw))
	}
	if d.IsNegative() {
		return decimal.Zero, apperror.Validation(fmt.Sprintf("%s: amount must not be negative", field))
	}
	return d, nil
}

// ToCoins converts wire coins into domain coins, preserving order.
func ToCoins(field string, coins []Coin) (domain.Coins, error) {
	out := make(domain.Coins, 0, len(coins))
	for _, c := range coins {
		amount, err := ParseAmount(field, c.Amount)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Coin{Denom: c.Denom, Amount: amount})
	}
	return out, nil
}

// FromCoins converts domain coins into their wire form.
func FromCoins(coins domain.Coins) []Coin {
	out := make([]Coin, 0, len(coins))
	for _, c := range coins {
		out = append(out, Coin{Denom: c.Denom, Amount: c.Amount.String()})
	}
	return out
}

// FromCoin converts a single optional domain coin.
func FromCoin(c *domain.Coin) *Coin {
	if c == nil {
		return nil
	}
	return &Coin{Denom: c.Denom, Amount: c.Amount.String()}
}
