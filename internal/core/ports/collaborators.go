package ports

import (
	"context"

	"pooled-trading-vault/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ShareToken is the external fungible-share sub-ledger. Total supply and
// per-holder balances live entirely on the token side; the vault only
// issues instructions and queries.
type ShareToken interface {
	// Instantiate dispatches the asynchronous token-creation instruction.
	// The created contract address arrives later as a token-init reply;
	// a failed instruction aborts the whole invocation.
	Instantiate(ctx context.Context, name, symbol string, decimals int32, minter string) error
	Mint(ctx context.Context, recipient string, amount decimal.Decimal) error
	Burn(ctx context.Context, amount decimal.Decimal) error
	TotalSupply(ctx context.Context) (decimal.Decimal, error)
	BalanceOf(ctx context.Context, addr string) (decimal.Decimal, error)
}

// ExchangeVenue is the external order book. Order creation is
// asynchronous: the confirmation arrives later as an order reply.
// Cancellation is fire-and-forget.
type ExchangeVenue interface {
	// Market looks a market up on the given side of the venue.
	// Returns nil when the market does not exist.
	Market(ctx context.Context, kind domain.VenueKind, marketID string) (*domain.Market, error)
	// SubaccountFor derives the vault's deterministic trading identity.
	SubaccountFor(addr string) string
	CreateSpotOrder(ctx context.Context, sender string, order domain.SpotOrder) error
	CreateDerivativeOrder(ctx context.Context, sender string, order domain.DerivativeOrder) error
	CancelSpotOrder(ctx context.Context, sender string, cancel domain.OrderCancellation) error
	CancelDerivativeOrder(ctx context.Context, sender string, cancel domain.OrderCancellation) error
}

// BankLedger is the host's native-asset ledger holding the vault's
// balances. Incoming deposit funds are credited before an invocation runs.
type BankLedger interface {
	Balance(ctx context.Context, addr, denom string) (decimal.Decimal, error)
	// Send transfers coins from the vault to a recipient as one batched
	// instruction.
	Send(ctx context.Context, to string, coins domain.Coins) error
}

// PriceState is one oracle sample: price plus its unix sample timestamp.
type PriceState struct {
	Price     decimal.Decimal
	Timestamp int64
}

// PriceOracle fetches current prices for configured feed ids. Queried
// fresh on every use; staleness is enforced by the caller.
type PriceOracle interface {
	Price(ctx context.Context, feedID string) (*PriceState, error)
}
