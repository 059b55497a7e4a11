package collab

import (
	"context"
	"fmt"

	"pooled-trading-vault/config"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ShareTokenClient implements ports.ShareToken against the token module's
// HTTP API. Amounts travel as strings to keep raw integer precision.
type ShareTokenClient struct {
	baseClient
}

// NewShareTokenClient creates a new share-token client.
func NewShareTokenClient(cfg config.CollabConfig, httpClient HTTPClient, log zerolog.Logger) *ShareTokenClient {
	return &ShareTokenClient{baseClient{
		http:    httpClient,
		baseURL: cfg.ShareTokenURL,
		log:     log,
	}}
}

type instantiateTokenRequest struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int32  `json:"decimals"`
	Minter   string `json:"minter"`
}

type mintRequest struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

type burnRequest struct {
	Amount string `json:"amount"`
}

type supplyResponse struct {
	TotalSupply string `json:"total_supply"`
}

type balanceOfResponse struct {
	Balance string `json:"balance"`
}

// Instantiate dispatches the asynchronous token-creation instruction.
func (c *ShareTokenClient) Instantiate(ctx context.Context, name, symbol string, decimals int32, minter string) error {
	req := instantiateTokenRequest{Name: name, Symbol: symbol, Decimals: decimals, Minter: minter}
	if err := c.postJSON(ctx, "/v1/token/instantiate", req, nil); err != nil {
		return fmt.Errorf("instantiate share token: %w", err)
	}
	c.log.Info().Str("name", name).Str("symbol", symbol).Msg("share token creation dispatched")
	return nil
}

// Mint credits newly created shares to recipient.
func (c *ShareTokenClient) Mint(ctx context.Context, recipient string, amount decimal.Decimal) error {
	req := mintRequest{Recipient: recipient, Amount: amount.String()}
	if err := c.postJSON(ctx, "/v1/token/mint", req, nil); err != nil {
		return fmt.Errorf("mint shares: %w", err)
	}
	return nil
}

// Burn destroys shares already transferred to the vault.
func (c *ShareTokenClient) Burn(ctx context.Context, amount decimal.Decimal) error {
	req := burnRequest{Amount: amount.String()}
	if err := c.postJSON(ctx, "/v1/token/burn", req, nil); err != nil {
		return fmt.Errorf("burn shares: %w", err)
	}
	return nil
}

// TotalSupply returns the current share supply in raw units.
func (c *ShareTokenClient) TotalSupply(ctx context.Context) (decimal.Decimal, error) {
	var resp supplyResponse
	if err := c.getJSON(ctx, "/v1/token/supply", &resp); err != nil {
		return decimal.Zero, fmt.Errorf("query share supply: %w", err)
	}
	supply, err := decimal.NewFromString(resp.TotalSupply)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse share supply %q: %w", resp.TotalSupply, err)
	}
	return supply, nil
}

// BalanceOf returns addr's share balance in raw units.
func (c *ShareTokenClient) BalanceOf(ctx context.Context, addr string) (decimal.Decimal, error) {
	var resp balanceOfResponse
	if err := c.getJSON(ctx, "/v1/token/balance/"+addr, &resp); err != nil {
		return decimal.Zero, fmt.Errorf("query share balance: %w", err)
	}
	balance, err := decimal.NewFromString(resp.Balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse share balance %q: %w", resp.Balance, err)
	}
	return balance, nil
}
