package dto

import "encoding/json"

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// Coin is the wire form of an asset amount: raw integer units as a
// decimal string.
type Coin struct {
	Denom  string `json:"denom" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// InstantiateRequest is the request body for vault setup.
type InstantiateRequest struct {
	MarketID     string `json:"market_id" binding:"required"`
	Venue        string `json:"venue" binding:"required,oneof=spot derivative"`
	BaseDecimal  int32  `json:"base_decimal"`
	QuoteDecimal int32  `json:"quote_decimal" binding:"required"`
	BasePriceID  string `json:"base_price_id"`
	QuotePriceID string `json:"quote_price_id"`
	Hardcap      string `json:"hardcap" binding:"required"`
	VaultAddr    string `json:"vault_addr" binding:"required"`
}

// TransferOwnershipRequest is the request body for an ownership handover.
type TransferOwnershipRequest struct {
	NewOwner string `json:"new_owner" binding:"required"`
}

// DepositRequest is the request body relayed for a user deposit. The
// relay attests that Funds were credited to the vault before delivery.
type DepositRequest struct {
	Sender   string  `json:"sender" binding:"required"`
	Assets   []Coin  `json:"assets" binding:"required"`
	Funds    []Coin  `json:"funds"`
	Receiver *string `json:"receiver,omitempty"`
}

// ReceiveRequest is the share-token transfer hook: a user sent shares to
// the vault with an action payload attached. Caller is the delivering
// token contract.
type ReceiveRequest struct {
	Caller string `json:"caller" binding:"required"`
	Sender string `json:"sender" binding:"required"`
	Amount string `json:"amount" binding:"required"`
	Hook   string `json:"hook" binding:"required"`
}

// SwapRequest is the request body for a market order.
type SwapRequest struct {
	Side     string `json:"side" binding:"required,oneof=buy sell"`
	Quantity string `json:"quantity" binding:"required"`
	Price    string `json:"price" binding:"required"`
	Margin   string `json:"margin,omitempty"`
	Funds    []Coin `json:"funds,omitempty"`
}

// CancelOrderRequest is the request body for cancelling a resting order.
type CancelOrderRequest struct {
	OrderHash string `json:"order_hash" binding:"required"`
}

// FeeRequest is the request body for fee accrual and withdrawal.
type FeeRequest struct {
	Amounts []Coin `json:"amounts" binding:"required"`
}

// ReplyRequest is an asynchronous confirmation delivered by the venue
// relay for a previously dispatched instruction.
type ReplyRequest struct {
	ID    uint64          `json:"id" binding:"required"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

// DepositResponse reports the outcome of a deposit.
type DepositResponse struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Assets   []Coin `json:"assets"`
	Share    string `json:"share"`
	Refunds  []Coin `json:"refunds"`
}

// WithdrawResponse reports the outcome of a share redemption.
type WithdrawResponse struct {
	Sender     string `json:"sender"`
	Share      string `json:"share"`
	Refunds    []Coin `json:"refunds"`
	NetworkFee *Coin  `json:"network_fee,omitempty"`
}

// FeeWithdrawalResponse reports the assets paid out of the fee ledger.
type FeeWithdrawalResponse struct {
	Paid []Coin `json:"paid"`
}

// ReplyOutcomeResponse reports how a confirmation was applied.
type ReplyOutcomeResponse struct {
	Action     string            `json:"action"`
	Attributes map[string]string `json:"attributes"`
}

// OwnershipResponse reports the current vault owner.
type OwnershipResponse struct {
	Owner string `json:"owner"`
}

// LiquidityResponse reports asset amounts per pooled denom.
type LiquidityResponse struct {
	Assets []Coin `json:"assets"`
}

// PricesResponse reports current oracle prices, base before quote.
type PricesResponse struct {
	Prices []string `json:"prices"`
}

// TokensResponse reports the pooled denoms in declared order.
type TokensResponse struct {
	Denoms []string `json:"denoms"`
}

// FeesResponse reports the accrued fee counters in declared order.
type FeesResponse struct {
	Collected []Coin `json:"collected"`
}
