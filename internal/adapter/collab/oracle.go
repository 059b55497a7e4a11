package collab

import (
	"context"
	"fmt"

	"pooled-trading-vault/config"
	"pooled-trading-vault/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// OracleClient implements ports.PriceOracle against the oracle module's
// HTTP API. Every call fetches a fresh sample; staleness is enforced by
// the caller.
type OracleClient struct {
	baseClient
}

// NewOracleClient creates a new price oracle client.
func NewOracleClient(cfg config.CollabConfig, httpClient HTTPClient, log zerolog.Logger) *OracleClient {
	return &OracleClient{baseClient{
		http:    httpClient,
		baseURL: cfg.OracleURL,
		log:     log,
	}}
}

type priceResponse struct {
	Price     string `json:"price"`
	Timestamp int64  `json:"timestamp"`
}

// Price fetches the current sample for feedID. A feed the oracle does
// not carry yields an error, not a nil sample.
func (c *OracleClient) Price(ctx context.Context, feedID string) (*ports.PriceState, error) {
	var resp priceResponse
	if err := c.getJSON(ctx, "/v1/prices/"+feedID, &resp); err != nil {
		return nil, fmt.Errorf("query price feed %s: %w", feedID, err)
	}
	price, err := decimal.NewFromString(resp.Price)
	if err != nil {
		return nil, fmt.Errorf("parse price %q for feed %s: %w", resp.Price, feedID, err)
	}
	return &ports.PriceState{Price: price, Timestamp: resp.Timestamp}, nil
}
