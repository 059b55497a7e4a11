package service

import (
	"context"
	"fmt"

	"pooled-trading-vault/internal/core/domain"
	"pooled-trading-vault/internal/core/ports"
	"pooled-trading-vault/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// networkFeeDenom is the host network's gas denom. A dual-asset vault that
// pools neither side in it reports a proportional slice of that balance
// alongside withdrawals, purely for observability.
const networkFeeDenom = "inj"

// WithdrawalServiceImpl implements ports.WithdrawalService.
type WithdrawalServiceImpl struct {
	vaultRepo  ports.VaultRepository
	feeRepo    ports.FeeLedgerRepository
	shareToken ports.ShareToken
	bank       ports.BankLedger
	log        zerolog.Logger
}

// NewWithdrawalService creates a new WithdrawalServiceImpl.
func NewWithdrawalService(
	vaultRepo ports.VaultRepository,
	feeRepo ports.FeeLedgerRepository,
	shareToken ports.ShareToken,
	bank ports.BankLedger,
	log zerolog.Logger,
) *WithdrawalServiceImpl {
	return &WithdrawalServiceImpl{
		vaultRepo:  vaultRepo,
		feeRepo:    feeRepo,
		shareToken: shareToken,
		bank:       bank,
		log:        log,
	}
}

// Receive redeems burned shares for proportional, fee-exclusive refunds.
// Only the bound share-token address may deliver the notification.
func (s *WithdrawalServiceImpl) Receive(ctx context.Context, req ports.ReceiveRequest) (*ports.WithdrawResult, error) {
	cfg, err := loadConfig(ctx, s.vaultRepo)
	if err != nil {
		return nil, err
	}
	if req.Caller != cfg.ShareTokenAddr || !cfg.ShareTokenBound() {
		return nil, apperror.ErrUnauthorized()
	}
	if req.Hook != ports.HookWithdraw {
		return nil, apperror.ErrUnknownHook(req.Hook)
	}
	if req.Amount.IsZero() {
		return nil, apperror.ErrInvalidZeroAmount()
	}

	totalSupply, err := s.shareToken.TotalSupply(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("query share supply: %w", err))
	}
	if totalSupply.IsZero() {
		return nil, apperror.ErrInvalidZeroAmount()
	}

	// Compute every refund before issuing any instruction.
	refunds := make(domain.Coins, 0, 2)
	for _, denom := range cfg.Denoms() {
		balance, err := tradableBalance(ctx, s.bank, s.feeRepo, cfg, denom)
		if err != nil {
			return nil, err
		}
		refund := balance.Mul(req.Amount).Div(totalSupply).Truncate(0)
		refunds = append(refunds, domain.Coin{Denom: denom, Amount: refund})
	}

	networkFee, err := s.networkFeeShare(ctx, cfg, req.Amount, totalSupply)
	if err != nil {
		return nil, err
	}

	if err := s.shareToken.Burn(ctx, req.Amount); err != nil {
		return nil, apperror.ErrSubCallFailure(err.Error())
	}
	payout := refunds.NonZero()
	if len(payout) > 0 {
		if err := s.bank.Send(ctx, req.Sender, payout); err != nil {
			return nil, apperror.ErrSubCallFailure(err.Error())
		}
	}

	s.log.Info().
		Str("sender", req.Sender).
		Str("share", req.Amount.String()).
		Stringer("refunds", refunds).
		Msg("withdrawal processed")

	return &ports.WithdrawResult{
		Sender:     req.Sender,
		Share:      req.Amount,
		Refunds:    refunds,
		NetworkFee: networkFee,
	}, nil
}

// networkFeeShare computes the withdrawer's proportional slice of the gas
// denom balance when the pool holds that denom outside its configured
// assets. The amount is reported but never transferred.
func (s *WithdrawalServiceImpl) networkFeeShare(ctx context.Context, cfg *domain.VaultConfig, share, totalSupply decimal.Decimal) (*domain.Coin, error) {
	if !cfg.DualAsset() {
		return nil, nil
	}
	for _, denom := range cfg.Denoms() {
		if denom == networkFeeDenom {
			return nil, nil
		}
	}
	balance, err := s.bank.Balance(ctx, cfg.VaultAddr, networkFeeDenom)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("query %s balance: %w", networkFeeDenom, err))
	}
	fee := balance.Mul(share).Div(totalSupply).Truncate(0)
	return &domain.Coin{Denom: networkFeeDenom, Amount: fee}, nil
}
