package service

import (
	"context"
	"fmt"
	"time"

	"pooled-trading-vault/internal/core/domain"
	"pooled-trading-vault/internal/core/ports"
	"pooled-trading-vault/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// QueryServiceImpl implements ports.QueryService. All views are computed
// from freshly queried collaborator state; nothing is cached.
type QueryServiceImpl struct {
	vaultRepo  ports.VaultRepository
	feeRepo    ports.FeeLedgerRepository
	shareToken ports.ShareToken
	bank       ports.BankLedger
	oracle     ports.PriceOracle
	log        zerolog.Logger
	now        func() time.Time
}

// NewQueryService creates a new QueryServiceImpl.
func NewQueryService(
	vaultRepo ports.VaultRepository,
	feeRepo ports.FeeLedgerRepository,
	shareToken ports.ShareToken,
	bank ports.BankLedger,
	oracle ports.PriceOracle,
	log zerolog.Logger,
) *QueryServiceImpl {
	return &QueryServiceImpl{
		vaultRepo:  vaultRepo,
		feeRepo:    feeRepo,
		shareToken: shareToken,
		bank:       bank,
		oracle:     oracle,
		log:        log,
		now:        time.Now,
	}
}

// TokensForShares values a hypothetical share amount in pool assets.
func (s *QueryServiceImpl) TokensForShares(ctx context.Context, share decimal.Decimal) (domain.Coins, error) {
	cfg, err := loadConfig(ctx, s.vaultRepo)
	if err != nil {
		return nil, err
	}
	return s.shareValue(ctx, cfg, share)
}

// TotalLiquidity returns the tradable balance per configured asset.
func (s *QueryServiceImpl) TotalLiquidity(ctx context.Context) (domain.Coins, error) {
	cfg, err := loadConfig(ctx, s.vaultRepo)
	if err != nil {
		return nil, err
	}

	out := make(domain.Coins, 0, 2)
	for _, denom := range cfg.Denoms() {
		balance, err := tradableBalance(ctx, s.bank, s.feeRepo, cfg, denom)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Coin{Denom: denom, Amount: balance})
	}
	return out, nil
}

// UserLiquidity values a holder's current share balance in pool assets.
func (s *QueryServiceImpl) UserLiquidity(ctx context.Context, user string) (domain.Coins, error) {
	cfg, err := loadConfig(ctx, s.vaultRepo)
	if err != nil {
		return nil, err
	}
	share, err := s.shareToken.BalanceOf(ctx, user)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("query share balance: %w", err))
	}
	return s.shareValue(ctx, cfg, share)
}

// Prices returns the current oracle prices, staleness-checked. Only the
// dual-asset vault carries price feeds.
func (s *QueryServiceImpl) Prices(ctx context.Context) ([]decimal.Decimal, error) {
	cfg, err := loadConfig(ctx, s.vaultRepo)
	if err != nil {
		return nil, err
	}
	if !cfg.DualAsset() {
		return nil, apperror.ErrQueryUnsupported("prices")
	}
	prices, err := fetchPrices(ctx, s.oracle, cfg, s.now())
	if err != nil {
		return nil, err
	}
	return prices[:], nil
}

// Tokens returns the configured denoms in declared order.
func (s *QueryServiceImpl) Tokens(ctx context.Context) ([]string, error) {
	cfg, err := loadConfig(ctx, s.vaultRepo)
	if err != nil {
		return nil, err
	}
	return cfg.Denoms(), nil
}

func (s *QueryServiceImpl) shareValue(ctx context.Context, cfg *domain.VaultConfig, share decimal.Decimal) (domain.Coins, error) {
	totalSupply, err := s.shareToken.TotalSupply(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("query share supply: %w", err))
	}

	out := make(domain.Coins, 0, 2)
	for _, denom := range cfg.Denoms() {
		balance, err := tradableBalance(ctx, s.bank, s.feeRepo, cfg, denom)
		if err != nil {
			return nil, err
		}
		amount := decimal.Zero
		if !totalSupply.IsZero() {
			amount = balance.Mul(share).Div(totalSupply).Truncate(0)
		}
		out = append(out, domain.Coin{Denom: denom, Amount: amount})
	}
	return out, nil
}
