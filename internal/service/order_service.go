package service

import (
	"context"

	"pooled-trading-vault/internal/core/domain"
	"pooled-trading-vault/internal/core/ports"
	"pooled-trading-vault/pkg/apperror"

	"github.com/rs/zerolog"
)

// OrderServiceImpl implements ports.OrderService.
type OrderServiceImpl struct {
	vaultRepo ports.VaultRepository
	feeRepo   ports.FeeLedgerRepository
	bank      ports.BankLedger
	venue     ports.ExchangeVenue
	log       zerolog.Logger
}

// NewOrderService creates a new OrderServiceImpl.
func NewOrderService(
	vaultRepo ports.VaultRepository,
	feeRepo ports.FeeLedgerRepository,
	bank ports.BankLedger,
	venue ports.ExchangeVenue,
	log zerolog.Logger,
) *OrderServiceImpl {
	return &OrderServiceImpl{
		vaultRepo: vaultRepo,
		feeRepo:   feeRepo,
		bank:      bank,
		venue:     venue,
		log:       log,
	}
}

// Swap submits one order from the vault's trading identity. The order
// notional must fit inside the tradable balance of the asset the order
// spends: quote for a buy, base for a sell on the spot venue, and always
// quote-denominated collateral on the derivative venue.
func (s *OrderServiceImpl) Swap(ctx context.Context, req ports.SwapRequest) error {
	cfg, err := loadConfig(ctx, s.vaultRepo)
	if err != nil {
		return err
	}
	if req.Sender != cfg.Owner {
		return apperror.ErrUnauthorized()
	}
	if len(req.Funds) > 0 {
		return apperror.ErrNoFundsExpected()
	}

	sourceDenom := cfg.QuoteDenom
	if cfg.Venue == domain.VenueSpot && req.Side == domain.OrderSell {
		sourceDenom = cfg.BaseDenom
	}
	balance, err := tradableBalance(ctx, s.bank, s.feeRepo, cfg, sourceDenom)
	if err != nil {
		return err
	}
	notional := req.Price.Mul(req.Quantity)
	if balance.LessThan(notional) {
		return apperror.ErrInsufficientBalance(balance.String(), notional.String())
	}

	switch cfg.Venue {
	case domain.VenueSpot:
		order := domain.SpotOrder{
			MarketID:     cfg.MarketID,
			SubaccountID: cfg.SubaccountID,
			Side:         req.Side,
			Price:        req.Price,
			Quantity:     req.Quantity,
			FeeRecipient: cfg.VaultAddr,
		}
		if err := s.venue.CreateSpotOrder(ctx, cfg.VaultAddr, order); err != nil {
			return apperror.ErrSubCallFailure(err.Error())
		}
	default:
		order := domain.DerivativeOrder{
			MarketID:     cfg.MarketID,
			SubaccountID: cfg.SubaccountID,
			Side:         req.Side,
			Price:        req.Price,
			Quantity:     req.Quantity,
			Margin:       req.Margin,
			FeeRecipient: cfg.VaultAddr,
		}
		if err := s.venue.CreateDerivativeOrder(ctx, cfg.VaultAddr, order); err != nil {
			return apperror.ErrSubCallFailure(err.Error())
		}
	}

	s.log.Info().
		Str("market_id", cfg.MarketID).
		Str("side", string(req.Side)).
		Str("quantity", req.Quantity.String()).
		Str("price", req.Price.String()).
		Msg("order submitted, awaiting confirmation")

	return nil
}

// CancelOrder cancels a resting order by hash. Fire-and-forget: no reply
// is expected and no local state is touched.
func (s *OrderServiceImpl) CancelOrder(ctx context.Context, sender, orderHash string) error {
	cfg, err := loadConfig(ctx, s.vaultRepo)
	if err != nil {
		return err
	}
	if sender != cfg.Owner {
		return apperror.ErrUnauthorized()
	}

	cancel := domain.OrderCancellation{
		MarketID:     cfg.MarketID,
		SubaccountID: cfg.SubaccountID,
		OrderHash:    orderHash,
	}
	if cfg.Venue == domain.VenueSpot {
		err = s.venue.CancelSpotOrder(ctx, cfg.VaultAddr, cancel)
	} else {
		err = s.venue.CancelDerivativeOrder(ctx, cfg.VaultAddr, cancel)
	}
	if err != nil {
		return apperror.ErrSubCallFailure(err.Error())
	}

	s.log.Info().Str("order_hash", orderHash).Msg("order cancellation submitted")
	return nil
}
