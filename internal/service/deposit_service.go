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

// DepositServiceImpl implements ports.DepositService.
type DepositServiceImpl struct {
	vaultRepo  ports.VaultRepository
	feeRepo    ports.FeeLedgerRepository
	shareToken ports.ShareToken
	bank       ports.BankLedger
	oracle     ports.PriceOracle
	log        zerolog.Logger
	now        func() time.Time
}

// NewDepositService creates a new DepositServiceImpl.
func NewDepositService(
	vaultRepo ports.VaultRepository,
	feeRepo ports.FeeLedgerRepository,
	shareToken ports.ShareToken,
	bank ports.BankLedger,
	oracle ports.PriceOracle,
	log zerolog.Logger,
) *DepositServiceImpl {
	return &DepositServiceImpl{
		vaultRepo:  vaultRepo,
		feeRepo:    feeRepo,
		shareToken: shareToken,
		bank:       bank,
		oracle:     oracle,
		log:        log,
		now:        time.Now,
	}
}

// Deposit converts incoming assets into minted shares. Every check and
// every amount is computed before the first outbound instruction so a
// failure leaves nothing half-done.
func (s *DepositServiceImpl) Deposit(ctx context.Context, req ports.DepositRequest) (*ports.DepositResult, error) {
	cfg, err := loadConfig(ctx, s.vaultRepo)
	if err != nil {
		return nil, err
	}
	if err := validateFunds(cfg.Denoms(), req.Assets, req.Funds); err != nil {
		return nil, err
	}

	if cfg.DualAsset() {
		return s.depositDual(ctx, cfg, req)
	}
	return s.depositSingle(ctx, cfg, req)
}

// depositSingle mints shares for a quote-only deposit: 1:1 against the
// deposited value while supply is zero, supply-proportional afterwards.
func (s *DepositServiceImpl) depositSingle(ctx context.Context, cfg *domain.VaultConfig, req ports.DepositRequest) (*ports.DepositResult, error) {
	amount := req.Assets.AmountOf(cfg.QuoteDenom)
	scaledAmount := domain.Scale(amount, cfg.QuoteDecimal)
	if scaledAmount.IsZero() {
		return nil, apperror.ErrInvalidZeroAmount()
	}

	totalSupply, err := s.shareToken.TotalSupply(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("query share supply: %w", err))
	}

	totalShare := domain.Scale(totalSupply, domain.ShareDecimals)
	var scaledShare decimal.Decimal
	if totalShare.IsZero() {
		scaledShare = scaledAmount
	} else {
		balance, err := tradableBalance(ctx, s.bank, s.feeRepo, cfg, cfg.QuoteDenom)
		if err != nil {
			return nil, err
		}
		scaledBalance := domain.Scale(balance, cfg.QuoteDecimal)
		scaledShare = totalShare.Mul(scaledAmount).Div(scaledBalance)
	}

	share := domain.Unscale(scaledShare, domain.ShareDecimals)
	if share.IsZero() {
		return nil, apperror.ErrZeroShare()
	}
	if totalSupply.Add(share).GreaterThan(cfg.Hardcap) {
		return nil, apperror.ErrExceedHardcap()
	}

	receiver := req.Sender
	if req.Receiver != nil {
		receiver = *req.Receiver
	}

	if err := s.shareToken.Mint(ctx, receiver, share); err != nil {
		return nil, apperror.ErrSubCallFailure(err.Error())
	}

	s.log.Info().
		Str("sender", req.Sender).
		Str("receiver", receiver).
		Str("amount", amount.String()).
		Str("share", share.String()).
		Msg("deposit processed")

	return &ports.DepositResult{
		Sender:   req.Sender,
		Receiver: receiver,
		Assets:   domain.Coins{{Denom: cfg.QuoteDenom, Amount: amount}},
		Share:    share,
		Refunds:  domain.Coins{},
	}, nil
}

// depositDual consumes equal value from both sides of the pool. The more
// abundant asset is only partially consumed and the surplus is refunded to
// the sender in one batched transfer.
func (s *DepositServiceImpl) depositDual(ctx context.Context, cfg *domain.VaultConfig, req ports.DepositRequest) (*ports.DepositResult, error) {
	prices, err := fetchPrices(ctx, s.oracle, cfg, s.now())
	if err != nil {
		return nil, err
	}

	denoms := cfg.Denoms()
	amounts := [2]decimal.Decimal{
		req.Assets.AmountOf(denoms[0]),
		req.Assets.AmountOf(denoms[1]),
	}
	decimals := [2]int32{cfg.BaseDecimal, cfg.QuoteDecimal}

	scaled := [2]decimal.Decimal{
		domain.Scale(amounts[0], decimals[0]),
		domain.Scale(amounts[1], decimals[1]),
	}
	values := [2]decimal.Decimal{
		scaled[0].Mul(prices[0]),
		scaled[1].Mul(prices[1]),
	}
	depositValue := decimal.Min(values[0], values[1])

	actual := [2]decimal.Decimal{
		depositValue.Div(prices[0]),
		depositValue.Div(prices[1]),
	}
	if actual[0].IsZero() || actual[1].IsZero() {
		return nil, apperror.ErrInvalidZeroAmount()
	}

	var consumed, refunds domain.Coins
	for i, denom := range denoms {
		unscaled := domain.Unscale(actual[i], decimals[i])
		consumed = append(consumed, domain.Coin{Denom: denom, Amount: unscaled})
		refund := amounts[i].Sub(unscaled)
		if !refund.IsZero() {
			refunds = append(refunds, domain.Coin{Denom: denom, Amount: refund})
		}
	}

	totalSupply, err := s.shareToken.TotalSupply(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("query share supply: %w", err))
	}
	scaledShare, err := s.dualShares(ctx, cfg, totalSupply, prices, actual, decimals)
	if err != nil {
		return nil, err
	}
	share := domain.Unscale(scaledShare, domain.ShareDecimals)
	if share.IsZero() {
		return nil, apperror.ErrZeroShare()
	}
	if totalSupply.Add(share).GreaterThan(cfg.Hardcap) {
		return nil, apperror.ErrExceedHardcap()
	}

	receiver := req.Sender
	if req.Receiver != nil {
		receiver = *req.Receiver
	}

	if err := s.shareToken.Mint(ctx, receiver, share); err != nil {
		return nil, apperror.ErrSubCallFailure(err.Error())
	}
	if len(refunds) > 0 {
		if err := s.bank.Send(ctx, req.Sender, refunds); err != nil {
			return nil, apperror.ErrSubCallFailure(err.Error())
		}
	}

	s.log.Info().
		Str("sender", req.Sender).
		Str("receiver", receiver).
		Str("share", share.String()).
		Str("deposit_value", depositValue.String()).
		Msg("deposit processed")

	return &ports.DepositResult{
		Sender:   req.Sender,
		Receiver: receiver,
		Assets:   consumed,
		Share:    share,
		Refunds:  refunds,
	}, nil
}

// dualShares converts the actually consumed amounts into a scaled share
// figure: the full contributed value while supply is zero, otherwise
// proportional to the pool's total value at current prices.
func (s *DepositServiceImpl) dualShares(
	ctx context.Context,
	cfg *domain.VaultConfig,
	totalSupply decimal.Decimal,
	prices [2]decimal.Decimal,
	actual [2]decimal.Decimal,
	decimals [2]int32,
) (decimal.Decimal, error) {
	totalShare := domain.Scale(totalSupply, domain.ShareDecimals)

	depositValue := actual[0].Mul(prices[0]).Add(actual[1].Mul(prices[1]))
	if totalShare.IsZero() {
		return depositValue, nil
	}

	denoms := cfg.Denoms()
	totalValue := decimal.Zero
	for i, denom := range denoms {
		balance, err := tradableBalance(ctx, s.bank, s.feeRepo, cfg, denom)
		if err != nil {
			return decimal.Zero, err
		}
		totalValue = totalValue.Add(domain.Scale(balance, decimals[i]).Mul(prices[i]))
	}

	return totalShare.Mul(depositValue).Div(totalValue), nil
}
