package collab

import (
	"context"
	"fmt"

	"pooled-trading-vault/config"
	"pooled-trading-vault/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// BankClient implements ports.BankLedger against the bank module's HTTP
// API.
type BankClient struct {
	baseClient
}

// NewBankClient creates a new bank ledger client.
func NewBankClient(cfg config.CollabConfig, httpClient HTTPClient, log zerolog.Logger) *BankClient {
	return &BankClient{baseClient{
		http:    httpClient,
		baseURL: cfg.BankURL,
		log:     log,
	}}
}

type bankBalanceResponse struct {
	Amount string `json:"amount"`
}

type transferCoin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

type transferRequest struct {
	To    string         `json:"to"`
	Coins []transferCoin `json:"coins"`
}

// Balance returns addr's balance of denom in raw units.
func (c *BankClient) Balance(ctx context.Context, addr, denom string) (decimal.Decimal, error) {
	var resp bankBalanceResponse
	if err := c.getJSON(ctx, "/v1/balances/"+addr+"/"+denom, &resp); err != nil {
		return decimal.Zero, fmt.Errorf("query %s balance: %w", denom, err)
	}
	amount, err := decimal.NewFromString(resp.Amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s balance %q: %w", denom, resp.Amount, err)
	}
	return amount, nil
}

// Send transfers coins from the vault to a recipient as one batched
// instruction.
func (c *BankClient) Send(ctx context.Context, to string, coins domain.Coins) error {
	req := transferRequest{To: to, Coins: make([]transferCoin, 0, len(coins))}
	for _, coin := range coins {
		req.Coins = append(req.Coins, transferCoin{Denom: coin.Denom, Amount: coin.Amount.String()})
	}
	if err := c.postJSON(ctx, "/v1/transfers", req, nil); err != nil {
		return fmt.Errorf("send coins: %w", err)
	}
	c.log.Debug().Str("to", to).Stringer("coins", coins).Msg("coins sent")
	return nil
}
