package service

import (
	"context"
	"encoding/json"
	"errors"

	"pooled-trading-vault/internal/core/domain"
	"pooled-trading-vault/internal/core/ports"
	"pooled-trading-vault/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ReplyServiceImpl implements ports.ReplyService. Exactly two correlation
// ids are recognised; anything else is rejected outright.
type ReplyServiceImpl struct {
	vaultRepo ports.VaultRepository
	log       zerolog.Logger
}

// NewReplyService creates a new ReplyServiceImpl.
func NewReplyService(vaultRepo ports.VaultRepository, log zerolog.Logger) *ReplyServiceImpl {
	return &ReplyServiceImpl{vaultRepo: vaultRepo, log: log}
}

// Handle routes an asynchronous confirmation by correlation id.
func (s *ReplyServiceImpl) Handle(ctx context.Context, reply domain.Reply) (*ports.ReplyOutcome, error) {
	switch reply.ID {
	case domain.ReplyIDTokenInit:
		return s.handleTokenInit(ctx, reply)
	case domain.ReplyIDOrder:
		return s.handleOrder(ctx, reply)
	default:
		return nil, apperror.ErrUnrecognizedReply(reply.ID)
	}
}

// handleTokenInit binds the created share-token address into the vault
// configuration, exactly once.
func (s *ReplyServiceImpl) handleTokenInit(ctx context.Context, reply domain.Reply) (*ports.ReplyOutcome, error) {
	cfg, err := loadConfig(ctx, s.vaultRepo)
	if err != nil {
		return nil, err
	}
	if cfg.ShareTokenBound() {
		return nil, apperror.ErrShareTokenBound()
	}
	if reply.Error != "" {
		return nil, apperror.ErrSubCallFailure(reply.Error)
	}
	if len(reply.Data) == 0 {
		return nil, apperror.ErrReplyParseFailure(reply.ID, errors.New("missing reply data"))
	}

	var result domain.TokenInstantiateResult
	if err := json.Unmarshal(reply.Data, &result); err != nil {
		return nil, apperror.ErrReplyParseFailure(reply.ID, err)
	}
	if result.ContractAddress == "" {
		return nil, apperror.ErrReplyParseFailure(reply.ID, errors.New("empty contract address"))
	}

	bound, err := s.vaultRepo.BindShareToken(ctx, result.ContractAddress)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if !bound {
		return nil, apperror.ErrShareTokenBound()
	}

	s.log.Info().Str("share_token_addr", result.ContractAddress).Msg("share token bound")
	return &ports.ReplyOutcome{
		Action:     "instantiate_token",
		Attributes: map[string]string{"liquidity_token_addr": result.ContractAddress},
	}, nil
}

// handleOrder decodes the order confirmation. Observability only: trade
// results never mutate persisted accounting, and realized trade fees are
// not auto-credited to the fee ledger.
func (s *ReplyServiceImpl) handleOrder(ctx context.Context, reply domain.Reply) (*ports.ReplyOutcome, error) {
	cfg, err := loadConfig(ctx, s.vaultRepo)
	if err != nil {
		return nil, err
	}
	if reply.Error != "" {
		return nil, apperror.ErrSubCallFailure(reply.Error)
	}
	if len(reply.Data) == 0 {
		return nil, apperror.ErrReplyParseFailure(reply.ID, errors.New("missing reply data"))
	}

	if cfg.Venue == domain.VenueSpot {
		var result domain.SpotOrderResult
		if err := json.Unmarshal(reply.Data, &result); err != nil {
			return nil, apperror.ErrReplyParseFailure(reply.ID, err)
		}
		if len(result.OrderHashes) == 0 {
			return nil, apperror.ErrReplyParseFailure(reply.ID, errors.New("no order hash in order response"))
		}
		hash := result.OrderHashes[0]

		s.log.Info().Str("order_hash", hash).Msg("order confirmed")
		return &ports.ReplyOutcome{
			Action:     "swap",
			Attributes: map[string]string{"order_hash": hash},
		}, nil
	}

	var result domain.DerivativeOrderResult
	if err := json.Unmarshal(reply.Data, &result); err != nil {
		return nil, apperror.ErrReplyParseFailure(reply.ID, err)
	}
	if result.Results == nil {
		return nil, apperror.ErrReplyParseFailure(reply.ID, errors.New("no trade data in order response"))
	}

	quantity, err := descaleTradeValue(result.Results.Quantity)
	if err != nil {
		return nil, apperror.ErrReplyParseFailure(reply.ID, err)
	}
	price, err := descaleTradeValue(result.Results.Price)
	if err != nil {
		return nil, apperror.ErrReplyParseFailure(reply.ID, err)
	}
	fee, err := descaleTradeValue(result.Results.Fee)
	if err != nil {
		return nil, apperror.ErrReplyParseFailure(reply.ID, err)
	}

	s.log.Info().
		Str("order_hash", result.OrderHash).
		Str("quantity", quantity.String()).
		Str("price", price.String()).
		Str("fee", fee.String()).
		Msg("order confirmed")

	return &ports.ReplyOutcome{
		Action: "swap",
		Attributes: map[string]string{
			"order_hash": result.OrderHash,
			"quantity":   quantity.String(),
			"price":      price.String(),
			"fee":        fee.String(),
		},
	}, nil
}

// descaleTradeValue parses a venue trade figure and strips its fixed
// 18-decimal internal scaling.
func descaleTradeValue(raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.Scale(v, domain.TradeDecimals).Truncate(0), nil
}
