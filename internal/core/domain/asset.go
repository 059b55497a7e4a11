package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Coin is an amount of a native asset in raw integer units (no decimal
// point); the configured decimal precision of the denom gives its scale.
type Coin struct {
	Denom  string          `json:"denom"`
	Amount decimal.Decimal `json:"amount"`
}

// NewCoin builds a Coin from an int64 amount, mostly for tests.
func NewCoin(amount int64, denom string) Coin {
	return Coin{Denom: denom, Amount: decimal.NewFromInt(amount)}
}

func (c Coin) String() string {
	return fmt.Sprintf("%s%s", c.Amount.String(), c.Denom)
}

// IsZero reports whether the coin amount is zero.
func (c Coin) IsZero() bool {
	return c.Amount.IsZero()
}

// Coins is an ordered list of coins. Order is significant: engines emit
// refunds base before quote.
type Coins []Coin

func (cs Coins) String() string {
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, ",")
}

// AmountOf returns the amount for denom, zero if absent.
func (cs Coins) AmountOf(denom string) decimal.Decimal {
	for _, c := range cs {
		if c.Denom == denom {
			return c.Amount
		}
	}
	return decimal.Zero
}

// Has reports whether a coin with denom is present.
func (cs Coins) Has(denom string) bool {
	for _, c := range cs {
		if c.Denom == denom {
			return true
		}
	}
	return false
}

// NonZero returns only the coins with a nonzero amount, preserving order.
func (cs Coins) NonZero() Coins {
	out := make(Coins, 0, len(cs))
	for _, c := range cs {
		if !c.Amount.IsZero() {
			out = append(out, c)
		}
	}
	return out
}

// Scale converts raw integer units into a decimal-scaled amount.
func Scale(amount decimal.Decimal, decimals int32) decimal.Decimal {
	return amount.Shift(-decimals)
}

// Unscale converts a decimal-scaled amount back into raw integer units,
// truncating any fraction below one unit.
func Unscale(amount decimal.Decimal, decimals int32) decimal.Decimal {
	return amount.Shift(decimals).Truncate(0)
}
