package handler

import (
	"pooled-trading-vault/internal/adapter/http/dto"
	"pooled-trading-vault/internal/adapter/http/middleware"
	"pooled-trading-vault/internal/core/domain"
	"pooled-trading-vault/internal/core/ports"
	"pooled-trading-vault/pkg/apperror"
	"pooled-trading-vault/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// VaultHandler handles vault execute endpoints.
type VaultHandler struct {
	vaultSvc      ports.VaultService
	depositSvc    ports.DepositService
	withdrawalSvc ports.WithdrawalService
	orderSvc      ports.OrderService
	feeSvc        ports.FeeService
}

// NewVaultHandler creates a new VaultHandler.
func NewVaultHandler(
	vaultSvc ports.VaultService,
	depositSvc ports.DepositService,
	withdrawalSvc ports.WithdrawalService,
	orderSvc ports.OrderService,
	feeSvc ports.FeeService,
) *VaultHandler {
	return &VaultHandler{
		vaultSvc:      vaultSvc,
		depositSvc:    depositSvc,
		withdrawalSvc: withdrawalSvc,
		orderSvc:      orderSvc,
		feeSvc:        feeSvc,
	}
}

// operatorAddress extracts the authenticated operator's address.
func operatorAddress(c *gin.Context) (string, bool) {
	addr, ok := c.Get(middleware.CtxOperatorAddress)
	if !ok {
		return "", false
	}
	s, ok := addr.(string)
	return s, ok
}

// Instantiate handles POST /api/v1/vault. The share-token address
// arrives later through the token-creation reply, so the setup is only
// accepted, not complete.
func (h *VaultHandler) Instantiate(c *gin.Context) {
	owner, ok := operatorAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.InstantiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	hardcap, err := dto.ParseAmount("hardcap", req.Hardcap)
	if err != nil {
		response.Error(c, err)
		return
	}

	err = h.vaultSvc.Instantiate(c.Request.Context(), ports.InstantiateRequest{
		Owner:        owner,
		MarketID:     req.MarketID,
		Venue:        domain.VenueKind(req.Venue),
		BaseDecimal:  req.BaseDecimal,
		QuoteDecimal: req.QuoteDecimal,
		BasePriceID:  req.BasePriceID,
		QuotePriceID: req.QuotePriceID,
		Hardcap:      hardcap,
		VaultAddr:    req.VaultAddr,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, gin.H{"status": "awaiting_share_token"})
}

// TransferOwnership handles POST /api/v1/vault/ownership.
func (h *VaultHandler) TransferOwnership(c *gin.Context) {
	sender, ok := operatorAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.vaultSvc.TransferOwnership(c.Request.Context(), sender, req.NewOwner); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.OwnershipResponse{Owner: req.NewOwner})
}

// Deposit handles POST /api/v1/vault/deposits, delivered over the signed
// callback channel by the host relay.
func (h *VaultHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	assets, err := dto.ToCoins("assets", req.Assets)
	if err != nil {
		response.Error(c, err)
		return
	}
	funds, err := dto.ToCoins("funds", req.Funds)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.depositSvc.Deposit(c.Request.Context(), ports.DepositRequest{
		Sender:   req.Sender,
		Assets:   assets,
		Funds:    funds,
		Receiver: req.Receiver,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DepositResponse{
		Sender:   result.Sender,
		Receiver: result.Receiver,
		Assets:   dto.FromCoins(result.Assets),
		Share:    result.Share.String(),
		Refunds:  dto.FromCoins(result.Refunds),
	})
}

// Receive handles POST /api/v1/vault/receive: the share-token transfer
// hook that redeems shares for pool assets.
func (h *VaultHandler) Receive(c *gin.Context) {
	var req dto.ReceiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := dto.ParseAmount("amount", req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.withdrawalSvc.Receive(c.Request.Context(), ports.ReceiveRequest{
		Caller: req.Caller,
		Sender: req.Sender,
		Amount: amount,
		Hook:   req.Hook,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WithdrawResponse{
		Sender:     result.Sender,
		Share:      result.Share.String(),
		Refunds:    dto.FromCoins(result.Refunds),
		NetworkFee: dto.FromCoin(result.NetworkFee),
	})
}

// Swap handles POST /api/v1/vault/orders. The fill confirmation arrives
// as a later reply delivery, so the order is only accepted here.
func (h *VaultHandler) Swap(c *gin.Context) {
	sender, ok := operatorAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	quantity, err := dto.ParseAmount("quantity", req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	price, err := dto.ParseAmount("price", req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}
	margin := decimal.Zero
	if req.Margin != "" {
		margin, err = dto.ParseAmount("margin", req.Margin)
		if err != nil {
			response.Error(c, err)
			return
		}
	}
	funds, err := dto.ToCoins("funds", req.Funds)
	if err != nil {
		response.Error(c, err)
		return
	}

	err = h.orderSvc.Swap(c.Request.Context(), ports.SwapRequest{
		Sender:   sender,
		Side:     domain.OrderSide(req.Side),
		Quantity: quantity,
		Price:    price,
		Margin:   margin,
		Funds:    funds,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, gin.H{"status": "order_submitted"})
}

// CancelOrder handles POST /api/v1/vault/orders/cancel.
func (h *VaultHandler) CancelOrder(c *gin.Context) {
	sender, ok := operatorAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.orderSvc.CancelOrder(c.Request.Context(), sender, req.OrderHash); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"status": "cancellation_submitted"})
}

// AddFee handles POST /api/v1/vault/fees.
func (h *VaultHandler) AddFee(c *gin.Context) {
	sender, ok := operatorAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.FeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amounts, err := dto.ToCoins("amounts", req.Amounts)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.feeSvc.AddFee(c.Request.Context(), ports.FeeRequest{Sender: sender, Amounts: amounts}); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"status": "fees_accrued"})
}

// WithdrawFee handles POST /api/v1/vault/fees/withdraw.
func (h *VaultHandler) WithdrawFee(c *gin.Context) {
	sender, ok := operatorAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.FeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amounts, err := dto.ToCoins("amounts", req.Amounts)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.feeSvc.WithdrawFee(c.Request.Context(), ports.FeeRequest{Sender: sender, Amounts: amounts})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FeeWithdrawalResponse{Paid: dto.FromCoins(result.Paid)})
}
