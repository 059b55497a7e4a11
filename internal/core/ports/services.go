package ports

import (
	"context"
	"time"

	"pooled-trading-vault/internal/core/domain"

	"github.com/shopspring/decimal"
)

// VaultService covers vault setup and ownership.
type VaultService interface {
	// Instantiate binds the market and persists the vault configuration.
	// Fails when the referenced market is absent or inactive.
	Instantiate(ctx context.Context, req InstantiateRequest) error
	// TransferOwnership hands the vault to a new owner. Owner-gated.
	TransferOwnership(ctx context.Context, sender, newOwner string) error
	// Ownership returns the configured owner.
	Ownership(ctx context.Context) (string, error)
}

// InstantiateRequest holds validated vault setup input.
type InstantiateRequest struct {
	Owner        string
	MarketID     string
	Venue        domain.VenueKind
	BaseDecimal  int32 // spot venue only
	QuoteDecimal int32
	BasePriceID  string // spot venue only
	QuotePriceID string // spot venue only
	Hardcap      decimal.Decimal
	VaultAddr    string
}

// DepositService converts incoming assets into minted shares.
type DepositService interface {
	Deposit(ctx context.Context, req DepositRequest) (*DepositResult, error)
}

// DepositRequest holds validated deposit input. Assets is the declared
// deposit; Funds is what the bank ledger actually credited alongside the
// call. The two must match exactly.
type DepositRequest struct {
	Sender   string
	Assets   domain.Coins
	Funds    domain.Coins
	Receiver *string // nil = mint to sender
}

// DepositResult reports the consumed assets, minted share and refunds.
type DepositResult struct {
	Sender   string
	Receiver string
	Assets   domain.Coins
	Share    decimal.Decimal
	Refunds  domain.Coins
}

// WithdrawalService redeems burned shares for proportional asset refunds.
// Entered only through the share token's received-tokens callback.
type WithdrawalService interface {
	Receive(ctx context.Context, req ReceiveRequest) (*WithdrawResult, error)
}

// ReceiveRequest is the share token's "received tokens with payload"
// notification. Caller must be the bound share-token address.
type ReceiveRequest struct {
	Caller string
	Sender string
	Amount decimal.Decimal
	Hook   string
}

// HookWithdraw is the only payload the vault accepts on Receive.
const HookWithdraw = "withdraw"

// WithdrawResult reports the burn and the per-asset refunds in fixed
// declared order. NetworkFee is computed for observability only and is
// never transferred.
type WithdrawResult struct {
	Sender     string
	Share      decimal.Decimal
	Refunds    domain.Coins
	NetworkFee *domain.Coin
}

// OrderService is the owner-gated order controller.
type OrderService interface {
	// Swap submits one order from the vault's trading identity. The
	// confirmation arrives later as an order reply; because the order
	// correlation id is fixed, callers must serialize submissions.
	Swap(ctx context.Context, req SwapRequest) error
	// CancelOrder cancels a resting order by hash. Fire-and-forget.
	CancelOrder(ctx context.Context, sender, orderHash string) error
}

// SwapRequest holds validated order input. Margin applies to the
// derivative venue only. Funds must be empty.
type SwapRequest struct {
	Sender   string
	Side     domain.OrderSide
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Margin   decimal.Decimal
	Funds    domain.Coins
}

// FeeService manages the segregated accrued-fee counters.
type FeeService interface {
	AddFee(ctx context.Context, req FeeRequest) error
	WithdrawFee(ctx context.Context, req FeeRequest) (*FeeWithdrawal, error)
}

// FeeRequest names an amount per configured asset.
type FeeRequest struct {
	Sender  string
	Amounts domain.Coins
}

// FeeWithdrawal reports what was paid out to the owner.
type FeeWithdrawal struct {
	Paid domain.Coins
}

// ReplyService routes asynchronous confirmations by correlation id.
type ReplyService interface {
	Handle(ctx context.Context, reply domain.Reply) (*ReplyOutcome, error)
}

// ReplyOutcome surfaces decoded reply attributes for observability.
type ReplyOutcome struct {
	Action     string
	Attributes map[string]string
}

// QueryService exposes the read-only vault views.
type QueryService interface {
	TokensForShares(ctx context.Context, share decimal.Decimal) (domain.Coins, error)
	TotalLiquidity(ctx context.Context) (domain.Coins, error)
	UserLiquidity(ctx context.Context, user string) (domain.Coins, error)
	// Prices returns the oracle prices scaled to 8 decimals. Spot only.
	Prices(ctx context.Context) ([]decimal.Decimal, error)
	Tokens(ctx context.Context) ([]string, error)
}

// AuthService authenticates the vault operator.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(address string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Address string
}

// SignatureService handles HMAC-SHA256 signing and verification of
// venue callback deliveries.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	// BuildCanonicalString constructs the signed payload: TIMESTAMP|NONCE|BODY.
	BuildCanonicalString(timestamp int64, nonce string, body string) string
}

// NonceStore manages delivery-nonce uniqueness for replay protection on
// the reply webhook.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error)
}
