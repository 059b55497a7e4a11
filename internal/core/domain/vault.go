package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// VenueKind selects which side of the exchange venue the vault trades on.
type VenueKind string

const (
	// VenueSpot trades a base/quote pair on the spot order book.
	VenueSpot VenueKind = "spot"
	// VenueDerivative trades a quote-collateralised derivative market.
	VenueDerivative VenueKind = "derivative"
)

// ShareDecimals is the fixed precision of the fungible ownership share.
const ShareDecimals = 12

// TradeDecimals is the venue's fixed internal precision for trade results
// reported in order confirmations.
const TradeDecimals = 18

// PriceValidDuration is the maximum allowed age of an oracle price sample.
const PriceValidDuration = 60 * time.Second

// Correlation ids for asynchronous reply deliveries. Exactly two exist:
// both flows reuse a single fixed id each, so at most one order submission
// is safely in flight at a time.
const (
	ReplyIDTokenInit uint64 = 1
	ReplyIDOrder     uint64 = 2
)

// VaultConfig is the vault's singleton persisted configuration.
// ShareTokenAddr transitions exactly once from "" to the address reported
// in the token-creation reply.
type VaultConfig struct {
	Owner          string          `json:"owner"`
	MarketID       string          `json:"market_id"`
	Venue          VenueKind       `json:"venue"`
	BaseDenom      string          `json:"base_denom"` // empty on the derivative venue
	QuoteDenom     string          `json:"quote_denom"`
	BaseDecimal    int32           `json:"base_decimal"`
	QuoteDecimal   int32           `json:"quote_decimal"`
	BasePriceID    string          `json:"base_price_id"`
	QuotePriceID   string          `json:"quote_price_id"`
	Hardcap        decimal.Decimal `json:"hardcap"`
	ShareTokenAddr string          `json:"share_token_addr"`
	VaultAddr      string          `json:"vault_addr"`
	SubaccountID   string          `json:"subaccount_id"`
}

// DualAsset reports whether the vault pools two assets.
func (c *VaultConfig) DualAsset() bool {
	return c.Venue == VenueSpot
}

// Denoms returns the configured asset denoms in fixed declared order,
// base before quote.
func (c *VaultConfig) Denoms() []string {
	if c.DualAsset() {
		return []string{c.BaseDenom, c.QuoteDenom}
	}
	return []string{c.QuoteDenom}
}

// DecimalFor returns the configured precision for denom.
func (c *VaultConfig) DecimalFor(denom string) int32 {
	if denom == c.BaseDenom {
		return c.BaseDecimal
	}
	return c.QuoteDecimal
}

// ShareTokenBound reports whether the share-token address has been bound.
func (c *VaultConfig) ShareTokenBound() bool {
	return c.ShareTokenAddr != ""
}

// FormatShareTokenName derives the share token display name from the
// pooled denoms.
func FormatShareTokenName(denoms []string) string {
	return strings.ToUpper(strings.Join(denoms, "-")) + " vault LP token"
}

// MarketStatus is the venue-reported lifecycle state of a market.
type MarketStatus string

const (
	MarketActive    MarketStatus = "active"
	MarketPaused    MarketStatus = "paused"
	MarketDemolished MarketStatus = "demolished"
)

// Market is the venue's description of a tradable market.
type Market struct {
	ID         string       `json:"id"`
	BaseDenom  string       `json:"base_denom"` // empty for derivative markets
	QuoteDenom string       `json:"quote_denom"`
	Status     MarketStatus `json:"status"`
}

// FeeCounter is one segregated accrued-fee counter.
type FeeCounter struct {
	Denom     string
	Collected decimal.Decimal
}
