package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pooled-trading-vault/internal/adapter/http/dto"
	"pooled-trading-vault/internal/adapter/http/middleware"
	"pooled-trading-vault/internal/core/domain"
	"pooled-trading-vault/internal/core/ports"
	"pooled-trading-vault/internal/core/ports/mocks"
	"pooled-trading-vault/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, body any) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

// --- Auth Handler Tests ---

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	expiry := time.Now().Add(24 * time.Hour)
	mockAuth.EXPECT().Login(gomock.Any(), "operator", "password123").Return("jwt-token-123", expiry, nil)

	w, c := postJSON(t, dto.LoginRequest{Username: "operator", Password: "password123"})
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, "jwt-token-123", data["token"])
	assert.Equal(t, float64(expiry.Unix()), data["expiry"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Login(gomock.Any(), "bad", "bad").Return("", time.Time{}, apperror.ErrInvalidCredentials())

	w, c := postJSON(t, dto.LoginRequest{Username: "bad", Password: "bad"})
	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	w, c := postJSON(t, map[string]string{"username": "operator"})
	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Vault Handler Tests ---

func newVaultHandler(ctrl *gomock.Controller) (*VaultHandler, *mocks.MockVaultService, *mocks.MockDepositService, *mocks.MockWithdrawalService, *mocks.MockOrderService, *mocks.MockFeeService) {
	vaultSvc := mocks.NewMockVaultService(ctrl)
	depositSvc := mocks.NewMockDepositService(ctrl)
	withdrawalSvc := mocks.NewMockWithdrawalService(ctrl)
	orderSvc := mocks.NewMockOrderService(ctrl)
	feeSvc := mocks.NewMockFeeService(ctrl)
	h := NewVaultHandler(vaultSvc, depositSvc, withdrawalSvc, orderSvc, feeSvc)
	return h, vaultSvc, depositSvc, withdrawalSvc, orderSvc, feeSvc
}

func TestInstantiate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, vaultSvc, _, _, _, _ := newVaultHandler(ctrl)

	vaultSvc.EXPECT().Instantiate(gomock.Any(), ports.InstantiateRequest{
		Owner:        "inj1owner",
		MarketID:     "0xmarket",
		Venue:        domain.VenueSpot,
		BaseDecimal:  18,
		QuoteDecimal: 6,
		BasePriceID:  "inj-usd",
		QuotePriceID: "usdt-usd",
		Hardcap:      decimal.RequireFromString("1000000000000000"),
		VaultAddr:    "inj1vault",
	}).Return(nil)

	w, c := postJSON(t, dto.InstantiateRequest{
		MarketID:     "0xmarket",
		Venue:        "spot",
		BaseDecimal:  18,
		QuoteDecimal: 6,
		BasePriceID:  "inj-usd",
		QuotePriceID: "usdt-usd",
		Hardcap:      "1000000000000000",
		VaultAddr:    "inj1vault",
	})
	c.Set(middleware.CtxOperatorAddress, "inj1owner")

	h.Instantiate(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, "awaiting_share_token", data["status"])
}

func TestInstantiate_MissingOperator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _, _ := newVaultHandler(ctrl)

	w, c := postJSON(t, dto.InstantiateRequest{})
	h.Instantiate(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInstantiate_NegativeHardcap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _, _ := newVaultHandler(ctrl)

	w, c := postJSON(t, dto.InstantiateRequest{
		MarketID:     "0xmarket",
		Venue:        "derivative",
		QuoteDecimal: 6,
		Hardcap:      "-5",
		VaultAddr:    "inj1vault",
	})
	c.Set(middleware.CtxOperatorAddress, "inj1owner")

	h.Instantiate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransferOwnership_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, vaultSvc, _, _, _, _ := newVaultHandler(ctrl)

	vaultSvc.EXPECT().TransferOwnership(gomock.Any(), "inj1owner", "inj1next").Return(nil)

	w, c := postJSON(t, dto.TransferOwnershipRequest{NewOwner: "inj1next"})
	c.Set(middleware.CtxOperatorAddress, "inj1owner")

	h.TransferOwnership(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, "inj1next", data["owner"])
}

func TestTransferOwnership_NonOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, vaultSvc, _, _, _, _ := newVaultHandler(ctrl)

	vaultSvc.EXPECT().TransferOwnership(gomock.Any(), "inj1mallory", "inj1next").Return(apperror.ErrUnauthorized())

	w, c := postJSON(t, dto.TransferOwnershipRequest{NewOwner: "inj1next"})
	c.Set(middleware.CtxOperatorAddress, "inj1mallory")

	h.TransferOwnership(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeposit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, depositSvc, _, _, _ := newVaultHandler(ctrl)

	depositSvc.EXPECT().Deposit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req ports.DepositRequest) (*ports.DepositResult, error) {
			assert.Equal(t, "inj1user", req.Sender)
			require.Len(t, req.Assets, 1)
			assert.Equal(t, "usdt", req.Assets[0].Denom)
			assert.True(t, req.Assets[0].Amount.Equal(decimal.RequireFromString("100000000")))
			return &ports.DepositResult{
				Sender:   "inj1user",
				Receiver: "inj1user",
				Assets:   req.Assets,
				Share:    decimal.RequireFromString("100000000000000"),
				Refunds:  domain.Coins{},
			}, nil
		})

	w, c := postJSON(t, dto.DepositRequest{
		Sender: "inj1user",
		Assets: []dto.Coin{{Denom: "usdt", Amount: "100000000"}},
		Funds:  []dto.Coin{{Denom: "usdt", Amount: "100000000"}},
	})

	h.Deposit(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, "100000000000000", data["share"])
	assert.Equal(t, "inj1user", data["receiver"])
}

func TestDeposit_AmountMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, depositSvc, _, _, _ := newVaultHandler(ctrl)

	depositSvc.EXPECT().Deposit(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrAmountMismatch("usdt"))

	w, c := postJSON(t, dto.DepositRequest{
		Sender: "inj1user",
		Assets: []dto.Coin{{Denom: "usdt", Amount: "100000000"}},
		Funds:  []dto.Coin{{Denom: "usdt", Amount: "90000000"}},
	})

	h.Deposit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReceive_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, withdrawalSvc, _, _ := newVaultHandler(ctrl)

	withdrawalSvc.EXPECT().Receive(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req ports.ReceiveRequest) (*ports.WithdrawResult, error) {
			assert.Equal(t, "inj1sharetoken", req.Caller)
			assert.Equal(t, ports.HookWithdraw, req.Hook)
			return &ports.WithdrawResult{
				Sender:  "inj1user",
				Share:   req.Amount,
				Refunds: domain.Coins{{Denom: "usdt", Amount: decimal.RequireFromString("95000000")}},
				NetworkFee: &domain.Coin{
					Denom:  "inj",
					Amount: decimal.RequireFromString("2000000000000000"),
				},
			}, nil
		})

	w, c := postJSON(t, dto.ReceiveRequest{
		Caller: "inj1sharetoken",
		Sender: "inj1user",
		Amount: "100000000000000",
		Hook:   "withdraw",
	})

	h.Receive(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	refunds := data["refunds"].([]interface{})
	require.Len(t, refunds, 1)
	fee := data["network_fee"].(map[string]interface{})
	assert.Equal(t, "inj", fee["denom"])
	assert.Equal(t, "2000000000000000", fee["amount"])
}

func TestReceive_UnknownHook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, withdrawalSvc, _, _ := newVaultHandler(ctrl)

	withdrawalSvc.EXPECT().Receive(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrUnknownHook("stake"))

	w, c := postJSON(t, dto.ReceiveRequest{
		Caller: "inj1sharetoken",
		Sender: "inj1user",
		Amount: "100000000000000",
		Hook:   "stake",
	})

	h.Receive(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSwap_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, orderSvc, _ := newVaultHandler(ctrl)

	orderSvc.EXPECT().Swap(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req ports.SwapRequest) error {
			assert.Equal(t, "inj1owner", req.Sender)
			assert.Equal(t, domain.OrderBuy, req.Side)
			assert.True(t, req.Quantity.Equal(decimal.RequireFromString("5")))
			assert.True(t, req.Margin.IsZero())
			return nil
		})

	w, c := postJSON(t, dto.SwapRequest{
		Side:     "buy",
		Quantity: "5",
		Price:    "20",
	})
	c.Set(middleware.CtxOperatorAddress, "inj1owner")

	h.Swap(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, "order_submitted", data["status"])
}

func TestSwap_WithMargin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, orderSvc, _ := newVaultHandler(ctrl)

	orderSvc.EXPECT().Swap(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req ports.SwapRequest) error {
			assert.True(t, req.Margin.Equal(decimal.RequireFromString("50")))
			return nil
		})

	w, c := postJSON(t, dto.SwapRequest{
		Side:     "sell",
		Quantity: "2",
		Price:    "21.5",
		Margin:   "50",
	})
	c.Set(middleware.CtxOperatorAddress, "inj1owner")

	h.Swap(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestSwap_InvalidSide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _, _ := newVaultHandler(ctrl)

	w, c := postJSON(t, dto.SwapRequest{
		Side:     "short",
		Quantity: "5",
		Price:    "20",
	})
	c.Set(middleware.CtxOperatorAddress, "inj1owner")

	h.Swap(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, orderSvc, _ := newVaultHandler(ctrl)

	orderSvc.EXPECT().CancelOrder(gomock.Any(), "inj1owner", "0xorderhash").Return(nil)

	w, c := postJSON(t, dto.CancelOrderRequest{OrderHash: "0xorderhash"})
	c.Set(middleware.CtxOperatorAddress, "inj1owner")

	h.CancelOrder(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, "cancellation_submitted", data["status"])
}

func TestAddFee_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _, feeSvc := newVaultHandler(ctrl)

	feeSvc.EXPECT().AddFee(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req ports.FeeRequest) error {
			assert.Equal(t, "inj1owner", req.Sender)
			require.Len(t, req.Amounts, 2)
			return nil
		})

	w, c := postJSON(t, dto.FeeRequest{Amounts: []dto.Coin{
		{Denom: "inj", Amount: "1000000"},
		{Denom: "usdt", Amount: "2000000"},
	}})
	c.Set(middleware.CtxOperatorAddress, "inj1owner")

	h.AddFee(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWithdrawFee_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _, feeSvc := newVaultHandler(ctrl)

	feeSvc.EXPECT().WithdrawFee(gomock.Any(), gomock.Any()).Return(&ports.FeeWithdrawal{
		Paid: domain.Coins{{Denom: "usdt", Amount: decimal.RequireFromString("2000000")}},
	}, nil)

	w, c := postJSON(t, dto.FeeRequest{Amounts: []dto.Coin{{Denom: "usdt", Amount: "2000000"}}})
	c.Set(middleware.CtxOperatorAddress, "inj1owner")

	h.WithdrawFee(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	paid := data["paid"].([]interface{})
	require.Len(t, paid, 1)
	first := paid[0].(map[string]interface{})
	assert.Equal(t, "usdt", first["denom"])
	assert.Equal(t, "2000000", first["amount"])
}

func TestWithdrawFee_InsufficientAccrued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _, feeSvc := newVaultHandler(ctrl)

	feeSvc.EXPECT().WithdrawFee(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInsufficientFeeAccrued("usdt"))

	w, c := postJSON(t, dto.FeeRequest{Amounts: []dto.Coin{{Denom: "usdt", Amount: "999999999"}}})
	c.Set(middleware.CtxOperatorAddress, "inj1owner")

	h.WithdrawFee(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// --- Reply Handler Tests ---

func TestHandleReply_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReply := mocks.NewMockReplyService(ctrl)
	h := NewReplyHandler(mockReply)

	mockReply.EXPECT().Handle(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, reply domain.Reply) (*ports.ReplyOutcome, error) {
			assert.Equal(t, uint64(1), reply.ID)
			return &ports.ReplyOutcome{
				Action:     "instantiate_token",
				Attributes: map[string]string{"liquidity_token_addr": "inj1sharetoken"},
			}, nil
		})

	w, c := postJSON(t, dto.ReplyRequest{
		ID:   1,
		Data: json.RawMessage(`{"contract_address":"inj1sharetoken"}`),
	})

	h.HandleReply(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, "instantiate_token", data["action"])
	attrs := data["attributes"].(map[string]interface{})
	assert.Equal(t, "inj1sharetoken", attrs["liquidity_token_addr"])
}

func TestHandleReply_UnrecognizedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReply := mocks.NewMockReplyService(ctrl)
	h := NewReplyHandler(mockReply)

	mockReply.EXPECT().Handle(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrUnrecognizedReply(99))

	w, c := postJSON(t, dto.ReplyRequest{ID: 99})
	h.HandleReply(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleReply_MissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReply := mocks.NewMockReplyService(ctrl)
	h := NewReplyHandler(mockReply)

	w, c := postJSON(t, map[string]string{"error": "oops"})
	h.HandleReply(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Query Handler Tests ---

func newQueryHandler(ctrl *gomock.Controller) (*QueryHandler, *mocks.MockQueryService, *mocks.MockVaultService, *mocks.MockFeeLedgerRepository) {
	querySvc := mocks.NewMockQueryService(ctrl)
	vaultSvc := mocks.NewMockVaultService(ctrl)
	feeRepo := mocks.NewMockFeeLedgerRepository(ctrl)
	h := NewQueryHandler(querySvc, vaultSvc, feeRepo)
	return h, querySvc, vaultSvc, feeRepo
}

func getRequest(path string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	return w, c
}

func TestTokensForShares_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, querySvc, _, _ := newQueryHandler(ctrl)

	querySvc.EXPECT().TokensForShares(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, share decimal.Decimal) (domain.Coins, error) {
			assert.True(t, share.Equal(decimal.RequireFromString("100000000000000")))
			return domain.Coins{{Denom: "usdt", Amount: decimal.RequireFromString("95000000")}}, nil
		})

	w, c := getRequest("/?share=100000000000000")
	h.TokensForShares(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assets := data["assets"].([]interface{})
	require.Len(t, assets, 1)
	first := assets[0].(map[string]interface{})
	assert.Equal(t, "95000000", first["amount"])
}

func TestTokensForShares_MissingParam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newQueryHandler(ctrl)

	w, c := getRequest("/")
	h.TokensForShares(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTotalLiquidity_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, querySvc, _, _ := newQueryHandler(ctrl)

	querySvc.EXPECT().TotalLiquidity(gomock.Any()).Return(domain.Coins{
		{Denom: "inj", Amount: decimal.RequireFromString("9000000")},
		{Denom: "usdt", Amount: decimal.RequireFromString("50000000")},
	}, nil)

	w, c := getRequest("/")
	h.TotalLiquidity(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assets := data["assets"].([]interface{})
	require.Len(t, assets, 2)
	first := assets[0].(map[string]interface{})
	assert.Equal(t, "inj", first["denom"])
}

func TestUserLiquidity_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, querySvc, _, _ := newQueryHandler(ctrl)

	querySvc.EXPECT().UserLiquidity(gomock.Any(), "inj1user").Return(domain.Coins{
		{Denom: "usdt", Amount: decimal.RequireFromString("50000000")},
	}, nil)

	w, c := getRequest("/")
	c.Params = gin.Params{{Key: "address", Value: "inj1user"}}
	h.UserLiquidity(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPrices_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, querySvc, _, _ := newQueryHandler(ctrl)

	querySvc.EXPECT().Prices(gomock.Any()).Return([]decimal.Decimal{
		decimal.RequireFromString("2150000000"),
		decimal.RequireFromString("100000000"),
	}, nil)

	w, c := getRequest("/")
	h.Prices(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	prices := data["prices"].([]interface{})
	require.Len(t, prices, 2)
	assert.Equal(t, "2150000000", prices[0])
}

func TestPrices_Unsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, querySvc, _, _ := newQueryHandler(ctrl)

	querySvc.EXPECT().Prices(gomock.Any()).Return(nil, apperror.ErrQueryUnsupported("prices"))

	w, c := getRequest("/")
	h.Prices(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTokens_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, querySvc, _, _ := newQueryHandler(ctrl)

	querySvc.EXPECT().Tokens(gomock.Any()).Return([]string{"inj", "usdt"}, nil)

	w, c := getRequest("/")
	h.Tokens(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	denoms := data["denoms"].([]interface{})
	assert.Equal(t, []interface{}{"inj", "usdt"}, denoms)
}

func TestOwnership_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, vaultSvc, _ := newQueryHandler(ctrl)

	vaultSvc.EXPECT().Ownership(gomock.Any()).Return("inj1owner", nil)

	w, c := getRequest("/")
	h.Ownership(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, "inj1owner", data["owner"])
}

func TestOwnership_NotInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, vaultSvc, _ := newQueryHandler(ctrl)

	vaultSvc.EXPECT().Ownership(gomock.Any()).Return("", apperror.ErrVaultNotInitialized())

	w, c := getRequest("/")
	h.Ownership(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestFees_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, feeRepo := newQueryHandler(ctrl)

	feeRepo.EXPECT().All(gomock.Any()).Return([]domain.FeeCounter{
		{Denom: "inj", Collected: decimal.RequireFromString("1000000")},
		{Denom: "usdt", Collected: decimal.RequireFromString("2000000")},
	}, nil)

	w, c := getRequest("/")
	h.Fees(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	collected := data["collected"].([]interface{})
	require.Len(t, collected, 2)
	first := collected[0].(map[string]interface{})
	assert.Equal(t, "inj", first["denom"])
	assert.Equal(t, "1000000", first["amount"])
}

// --- Health Check Test ---

func TestHealthCheck(t *testing.T) {
	w, c := getRequest("/health")

	HealthCheck()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}
