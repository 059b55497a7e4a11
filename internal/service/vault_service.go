package service

import (
	"context"
	"fmt"

	"pooled-trading-vault/internal/core/domain"
	"pooled-trading-vault/internal/core/ports"
	"pooled-trading-vault/pkg/apperror"

	"github.com/rs/zerolog"
)

// ShareTokenSymbol is the fixed symbol of the vault's fungible share.
const ShareTokenSymbol = "uLP"

// VaultServiceImpl implements ports.VaultService.
type VaultServiceImpl struct {
	vaultRepo  ports.VaultRepository
	feeRepo    ports.FeeLedgerRepository
	venue      ports.ExchangeVenue
	shareToken ports.ShareToken
	log        zerolog.Logger
}

// NewVaultService creates a new VaultServiceImpl.
func NewVaultService(
	vaultRepo ports.VaultRepository,
	feeRepo ports.FeeLedgerRepository,
	venue ports.ExchangeVenue,
	shareToken ports.ShareToken,
	log zerolog.Logger,
) *VaultServiceImpl {
	return &VaultServiceImpl{
		vaultRepo:  vaultRepo,
		feeRepo:    feeRepo,
		venue:      venue,
		shareToken: shareToken,
		log:        log,
	}
}

// Instantiate binds the market, persists the configuration with zeroed fee
// counters, and dispatches the share-token creation instruction. The token
// address arrives later through the token-init reply.
func (s *VaultServiceImpl) Instantiate(ctx context.Context, req ports.InstantiateRequest) error {
	market, err := s.venue.Market(ctx, req.Venue, req.MarketID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("query market: %w", err))
	}
	if market == nil {
		return apperror.ErrMarketNotFound(req.MarketID)
	}
	if market.Status != domain.MarketActive {
		return apperror.ErrMarketNotActive(req.MarketID)
	}

	cfg := &domain.VaultConfig{
		Owner:        req.Owner,
		MarketID:     req.MarketID,
		Venue:        req.Venue,
		QuoteDenom:   market.QuoteDenom,
		QuoteDecimal: req.QuoteDecimal,
		Hardcap:      req.Hardcap,
		VaultAddr:    req.VaultAddr,
		SubaccountID: s.venue.SubaccountFor(req.VaultAddr),
	}
	if req.Venue == domain.VenueSpot {
		cfg.BaseDenom = market.BaseDenom
		cfg.BaseDecimal = req.BaseDecimal
		cfg.BasePriceID = req.BasePriceID
		cfg.QuotePriceID = req.QuotePriceID
	}

	if err := s.vaultRepo.Save(ctx, cfg); err != nil {
		return apperror.InternalError(fmt.Errorf("save vault config: %w", err))
	}
	if err := s.feeRepo.Init(ctx, cfg.Denoms()); err != nil {
		return apperror.InternalError(fmt.Errorf("init fee ledger: %w", err))
	}

	tokenName := domain.FormatShareTokenName(cfg.Denoms())
	if err := s.shareToken.Instantiate(ctx, tokenName, ShareTokenSymbol, domain.ShareDecimals, cfg.VaultAddr); err != nil {
		return apperror.ErrSubCallFailure(err.Error())
	}

	s.log.Info().
		Str("market_id", cfg.MarketID).
		Str("venue", string(cfg.Venue)).
		Str("subaccount_id", cfg.SubaccountID).
		Msg("vault instantiated, awaiting share token address")

	return nil
}

// TransferOwnership hands the vault to a new owner.
func (s *VaultServiceImpl) TransferOwnership(ctx context.Context, sender, newOwner string) error {
	cfg, err := loadConfig(ctx, s.vaultRepo)
	if err != nil {
		return err
	}
	if sender != cfg.Owner {
		return apperror.ErrUnauthorized()
	}

	if err := s.vaultRepo.UpdateOwner(ctx, newOwner); err != nil {
		return apperror.InternalError(fmt.Errorf("update owner: %w", err))
	}

	s.log.Info().Str("old_owner", cfg.Owner).Str("new_owner", newOwner).Msg("ownership transferred")
	return nil
}

// Ownership returns the configured owner.
func (s *VaultServiceImpl) Ownership(ctx context.Context) (string, error) {
	cfg, err := loadConfig(ctx, s.vaultRepo)
	if err != nil {
		return "", err
	}
	return cfg.Owner, nil
}
