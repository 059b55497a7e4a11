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

// FeeServiceImpl implements ports.FeeService.
type FeeServiceImpl struct {
	vaultRepo  ports.VaultRepository
	feeRepo    ports.FeeLedgerRepository
	bank       ports.BankLedger
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewFeeService creates a new FeeServiceImpl.
func NewFeeService(
	vaultRepo ports.VaultRepository,
	feeRepo ports.FeeLedgerRepository,
	bank ports.BankLedger,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *FeeServiceImpl {
	return &FeeServiceImpl{
		vaultRepo:  vaultRepo,
		feeRepo:    feeRepo,
		bank:       bank,
		transactor: transactor,
		log:        log,
	}
}

// AddFee increments the accrued-fee counters. Pure increment: the operator
// is trusted not to accrue beyond the actual balance.
func (s *FeeServiceImpl) AddFee(ctx context.Context, req ports.FeeRequest) error {
	cfg, err := loadConfig(ctx, s.vaultRepo)
	if err != nil {
		return err
	}
	if req.Sender != cfg.Owner {
		return apperror.ErrUnauthorized()
	}
	if err := checkPooled(cfg, req.Amounts); err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	for _, amount := range req.Amounts.NonZero() {
		collected, err := s.feeRepo.GetForUpdate(ctx, dbTx, amount.Denom)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock %s fee counter: %w", amount.Denom, err))
		}
		if err := s.feeRepo.Update(ctx, dbTx, amount.Denom, collected.Add(amount.Amount)); err != nil {
			return apperror.InternalError(fmt.Errorf("update %s fee counter: %w", amount.Denom, err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Stringer("amounts", req.Amounts).Msg("fees accrued")
	return nil
}

// WithdrawFee decrements the counters and pays every requested asset to
// the owner in one batched transfer. Counters never go negative; each
// requested amount is checked independently against its counter.
func (s *FeeServiceImpl) WithdrawFee(ctx context.Context, req ports.FeeRequest) (*ports.FeeWithdrawal, error) {
	cfg, err := loadConfig(ctx, s.vaultRepo)
	if err != nil {
		return nil, err
	}
	if req.Sender != cfg.Owner {
		return nil, apperror.ErrUnauthorized()
	}
	if err := checkPooled(cfg, req.Amounts); err != nil {
		return nil, err
	}
	paid := req.Amounts.NonZero()
	if len(paid) == 0 {
		return nil, apperror.ErrZeroFeeWithdrawal()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock and check every counter before decrementing any of them.
	collected := make(map[string]decimal.Decimal, len(paid))
	for _, amount := range paid {
		c, err := s.feeRepo.GetForUpdate(ctx, dbTx, amount.Denom)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lock %s fee counter: %w", amount.Denom, err))
		}
		if c.LessThan(amount.Amount) {
			return nil, apperror.ErrInsufficientFeeAccrued(amount.Denom)
		}
		collected[amount.Denom] = c
	}
	for _, amount := range paid {
		remaining := collected[amount.Denom].Sub(amount.Amount)
		if err := s.feeRepo.Update(ctx, dbTx, amount.Denom, remaining); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("update %s fee counter: %w", amount.Denom, err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if err := s.bank.Send(ctx, req.Sender, paid); err != nil {
		return nil, apperror.ErrSubCallFailure(err.Error())
	}

	s.log.Info().Stringer("amounts", paid).Msg("fees withdrawn")
	return &ports.FeeWithdrawal{Paid: paid}, nil
}

func checkPooled(cfg *domain.VaultConfig, amounts domain.Coins) error {
	for _, c := range amounts {
		found := false
		for _, denom := range cfg.Denoms() {
			if denom == c.Denom {
				found = true
				break
			}
		}
		if !found {
			return apperror.ErrAssetNotInPool(c.Denom)
		}
	}
	return nil
}
