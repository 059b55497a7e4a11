package service

import (
	"context"
	"errors"
	"testing"

	"pooled-trading-vault/internal/core/domain"
	"pooled-trading-vault/internal/core/ports"
	"pooled-trading-vault/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type orderTestDeps struct {
	svc       *OrderServiceImpl
	vaultRepo *mocks.MockVaultRepository
	feeRepo   *mocks.MockFeeLedgerRepository
	bank      *mocks.MockBankLedger
	venue     *mocks.MockExchangeVenue
	ctrl      *gomock.Controller
}

func setupOrderService(t *testing.T) *orderTestDeps {
	ctrl := gomock.NewController(t)
	d := &orderTestDeps{
		vaultRepo: mocks.NewMockVaultRepository(ctrl),
		feeRepo:   mocks.NewMockFeeLedgerRepository(ctrl),
		bank:      mocks.NewMockBankLedger(ctrl),
		venue:     mocks.NewMockExchangeVenue(ctrl),
		ctrl:      ctrl,
	}
	d.svc = NewOrderService(d.vaultRepo, d.feeRepo, d.bank, d.venue, zerolog.Nop())
	return d
}

func TestOrderService_Swap_DerivativeBuy(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.vaultRepo.EXPECT().Get(ctx).Return(perpConfig(), nil)
	d.bank.EXPECT().Balance(ctx, "inj1vault", "usdt").Return(dec("1000000"), nil)
	d.feeRepo.EXPECT().Get(ctx, "usdt").Return(decimal.Zero, nil)
	d.venue.EXPECT().CreateDerivativeOrder(ctx, "inj1vault", domain.DerivativeOrder{
		MarketID:     "0xmarket",
		SubaccountID: "0xsub",
		FeeRecipient: "inj1vault",
		Side:         domain.OrderBuy,
		Price:        dec("100"),
		Quantity:     dec("5"),
		Margin:       dec("250"),
	}).Return(nil)

	err := d.svc.Swap(ctx, ports.SwapRequest{
		Sender:   "inj1owner",
		Side:     domain.OrderBuy,
		Quantity: dec("5"),
		Price:    dec("100"),
		Margin:   dec("250"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderService_Swap_SpotSellUsesBaseBalance(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.vaultRepo.EXPECT().Get(ctx).Return(spotConfig(), nil)
	// A sell spends base, so the base tradable balance is checked.
	d.bank.EXPECT().Balance(ctx, "inj1vault", "inj").Return(dec("10000"), nil)
	d.feeRepo.EXPECT().Get(ctx, "inj").Return(decimal.Zero, nil)
	d.venue.EXPECT().CreateSpotOrder(ctx, "inj1vault", domain.SpotOrder{
		MarketID:     "0xspotmarket",
		SubaccountID: "0xsub",
		FeeRecipient: "inj1vault",
		Side:         domain.OrderSell,
		Price:        dec("100"),
		Quantity:     dec("5"),
	}).Return(nil)

	err := d.svc.Swap(ctx, ports.SwapRequest{
		Sender:   "inj1owner",
		Side:     domain.OrderSell,
		Quantity: dec("5"),
		Price:    dec("100"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderService_Swap_NonOwner(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.vaultRepo.EXPECT().Get(ctx).Return(perpConfig(), nil)

	err := d.svc.Swap(ctx, ports.SwapRequest{
		Sender:   "inj1impostor",
		Side:     domain.OrderBuy,
		Quantity: dec("5"),
		Price:    dec("100"),
	})
	assertAppError(t, err, "AUTH_001")
}

func TestOrderService_Swap_FundsAttached(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.vaultRepo.EXPECT().Get(ctx).Return(perpConfig(), nil)

	err := d.svc.Swap(ctx, ports.SwapRequest{
		Sender:   "inj1owner",
		Side:     domain.OrderBuy,
		Quantity: dec("5"),
		Price:    dec("100"),
		Funds:    domain.Coins{domain.NewCoin(1, "usdt")},
	})
	assertAppError(t, err, "VAL_014")
}

func TestOrderService_Swap_NotionalExceedsTradableBalance(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.vaultRepo.EXPECT().Get(ctx).Return(perpConfig(), nil)
	d.bank.EXPECT().Balance(ctx, "inj1vault", "usdt").Return(dec("600"), nil)
	// Accrued fee shrinks the tradable balance below the notional.
	d.feeRepo.EXPECT().Get(ctx, "usdt").Return(dec("200"), nil)

	err := d.svc.Swap(ctx, ports.SwapRequest{
		Sender:   "inj1owner",
		Side:     domain.OrderBuy,
		Quantity: dec("5"),
		Price:    dec("100"),
	})
	assertAppError(t, err, "VAL_011")
}

func TestOrderService_Swap_VenueRejects(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.vaultRepo.EXPECT().Get(ctx).Return(perpConfig(), nil)
	d.bank.EXPECT().Balance(ctx, "inj1vault", "usdt").Return(dec("1000000"), nil)
	d.feeRepo.EXPECT().Get(ctx, "usdt").Return(decimal.Zero, nil)
	d.venue.EXPECT().CreateDerivativeOrder(ctx, "inj1vault", gomock.Any()).Return(errors.New("market halted"))

	err := d.svc.Swap(ctx, ports.SwapRequest{
		Sender:   "inj1owner",
		Side:     domain.OrderBuy,
		Quantity: dec("5"),
		Price:    dec("100"),
	})
	assertAppError(t, err, "RPL_003")
}

func TestOrderService_CancelOrder(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.vaultRepo.EXPECT().Get(ctx).Return(spotConfig(), nil)
	d.venue.EXPECT().CancelSpotOrder(ctx, "inj1vault", domain.OrderCancellation{
		MarketID:     "0xspotmarket",
		SubaccountID: "0xsub",
		OrderHash:    "0xdeadbeef",
	}).Return(nil)

	err := d.svc.CancelOrder(ctx, "inj1owner", "0xdeadbeef")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderService_CancelOrder_NonOwner(t *testing.T) {
	d := setupOrderService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.vaultRepo.EXPECT().Get(ctx).Return(spotConfig(), nil)

	err := d.svc.CancelOrder(ctx, "inj1impostor", "0xdeadbeef")
	assertAppError(t, err, "AUTH_001")
}
