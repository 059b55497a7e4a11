package service

import (
	"context"
	"fmt"

	"pooled-trading-vault/internal/core/domain"
	"pooled-trading-vault/internal/core/ports"
	"pooled-trading-vault/pkg/apperror"

	"github.com/shopspring/decimal"
)

// loadConfig fetches the singleton vault configuration.
func loadConfig(ctx context.Context, repo ports.VaultRepository) (*domain.VaultConfig, error) {
	cfg, err := repo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load vault config: %w", err))
	}
	if cfg == nil {
		return nil, apperror.ErrVaultNotInitialized()
	}
	return cfg, nil
}

// tradableBalance returns the vault's raw bank balance for denom minus the
// accrued fee counter. All share math runs on this fee-exclusive figure.
func tradableBalance(
	ctx context.Context,
	bank ports.BankLedger,
	feeRepo ports.FeeLedgerRepository,
	cfg *domain.VaultConfig,
	denom string,
) (decimal.Decimal, error) {
	balance, err := bank.Balance(ctx, cfg.VaultAddr, denom)
	if err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("query %s balance: %w", denom, err))
	}
	collected, err := feeRepo.Get(ctx, denom)
	if err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("load %s fee counter: %w", denom, err))
	}
	return balance.Sub(collected), nil
}

// validateFunds enforces the exact-match rule between the declared assets
// and the funds actually attached: exactly len(denoms) declared entries,
// every entry part of the pool, every declared amount equal to the sent
// amount, and nothing extra attached.
func validateFunds(denoms []string, assets, funds domain.Coins) error {
	if len(assets) != len(denoms) {
		return apperror.ErrWrongAssetCount(len(denoms))
	}
	pooled := func(denom string) bool {
		for _, d := range denoms {
			if d == denom {
				return true
			}
		}
		return false
	}
	for _, a := range assets {
		if !pooled(a.Denom) {
			return apperror.ErrAssetNotInPool(a.Denom)
		}
	}
	for _, f := range funds {
		if !assets.Has(f.Denom) {
			return apperror.ErrUnexpectedFunds(f.Denom)
		}
	}
	for _, a := range assets {
		if !funds.AmountOf(a.Denom).Equal(a.Amount) {
			return apperror.ErrAmountMismatch(a.Denom)
		}
	}
	return nil
}
