package service

import (
	"context"
	"fmt"
	"time"

	"pooled-trading-vault/internal/core/domain"
	"pooled-trading-vault/internal/core/ports"
	"pooled-trading-vault/pkg/apperror"

	"github.com/shopspring/decimal"
)

// fetchPrices queries the base and quote oracle feeds and enforces the
// staleness window. Prices are never cached; every caller pays for a
// fresh sample.
func fetchPrices(ctx context.Context, oracle ports.PriceOracle, cfg *domain.VaultConfig, now time.Time) ([2]decimal.Decimal, error) {
	var prices [2]decimal.Decimal

	feedIDs := [2]string{cfg.BasePriceID, cfg.QuotePriceID}
	cutoff := now.Add(-domain.PriceValidDuration).Unix()
	for i, feedID := range feedIDs {
		state, err := oracle.Price(ctx, feedID)
		if err != nil {
			return prices, apperror.InternalError(fmt.Errorf("query price feed %s: %w", feedID, err))
		}
		if state.Timestamp < cutoff {
			return prices, apperror.ErrPriceTooOld()
		}
		prices[i] = state.Price
	}

	return prices, nil
}
