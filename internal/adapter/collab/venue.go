package collab

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"pooled-trading-vault/config"
	"pooled-trading-vault/internal/core/domain"

	"github.com/rs/zerolog"
)

// VenueClient implements ports.ExchangeVenue against the venue gateway's
// HTTP API. Order creation is acknowledged immediately; the fill
// confirmation arrives later through the signed reply callback.
type VenueClient struct {
	baseClient
}

// NewVenueClient creates a new exchange venue client.
func NewVenueClient(cfg config.VenueConfig, httpClient HTTPClient, log zerolog.Logger) *VenueClient {
	return &VenueClient{baseClient{
		http:    httpClient,
		baseURL: cfg.BaseURL,
		log:     log,
	}}
}

type createSpotOrderRequest struct {
	Sender string           `json:"sender"`
	Order  domain.SpotOrder `json:"order"`
}

type createDerivativeOrderRequest struct {
	Sender string                 `json:"sender"`
	Order  domain.DerivativeOrder `json:"order"`
}

type cancelOrderRequest struct {
	Sender string                   `json:"sender"`
	Cancel domain.OrderCancellation `json:"cancel"`
}

// Market looks a market up on the given side of the venue. Returns nil
// when the market does not exist.
func (c *VenueClient) Market(ctx context.Context, kind domain.VenueKind, marketID string) (*domain.Market, error) {
	var market domain.Market
	err := c.getJSON(ctx, "/v1/"+string(kind)+"/markets/"+marketID, &market)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query %s market %s: %w", kind, marketID, err)
	}
	return &market, nil
}

// SubaccountFor derives the vault's deterministic trading identity: the
// first 20 address-hash bytes padded with a zero nonce, matching the
// venue's default-subaccount convention.
func (c *VenueClient) SubaccountFor(addr string) string {
	sum := sha256.Sum256([]byte(addr))
	return "0x" + hex.EncodeToString(sum[:20]) + "000000000000000000000000"
}

// CreateSpotOrder submits a spot market order.
func (c *VenueClient) CreateSpotOrder(ctx context.Context, sender string, order domain.SpotOrder) error {
	req := createSpotOrderRequest{Sender: sender, Order: order}
	if err := c.postJSON(ctx, "/v1/spot/orders", req, nil); err != nil {
		return fmt.Errorf("create spot order: %w", err)
	}
	c.log.Info().Str("market_id", order.MarketID).Str("side", string(order.Side)).Msg("spot order submitted")
	return nil
}

// CreateDerivativeOrder submits a derivative market order.
func (c *VenueClient) CreateDerivativeOrder(ctx context.Context, sender string, order domain.DerivativeOrder) error {
	req := createDerivativeOrderRequest{Sender: sender, Order: order}
	if err := c.postJSON(ctx, "/v1/derivative/orders", req, nil); err != nil {
		return fmt.Errorf("create derivative order: %w", err)
	}
	c.log.Info().Str("market_id", order.MarketID).Str("side", string(order.Side)).Msg("derivative order submitted")
	return nil
}

// CancelSpotOrder cancels a resting spot order by hash.
func (c *VenueClient) CancelSpotOrder(ctx context.Context, sender string, cancel domain.OrderCancellation) error {
	req := cancelOrderRequest{Sender: sender, Cancel: cancel}
	if err := c.postJSON(ctx, "/v1/spot/orders/cancel", req, nil); err != nil {
		return fmt.Errorf("cancel spot order: %w", err)
	}
	return nil
}

// CancelDerivativeOrder cancels a resting derivative order by hash.
func (c *VenueClient) CancelDerivativeOrder(ctx context.Context, sender string, cancel domain.OrderCancellation) error {
	req := cancelOrderRequest{Sender: sender, Cancel: cancel}
	if err := c.postJSON(ctx, "/v1/derivative/orders/cancel", req, nil); err != nil {
		return fmt.Errorf("cancel derivative order: %w", err)
	}
	return nil
}
