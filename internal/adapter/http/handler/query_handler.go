package handler

import (
	"pooled-trading-vault/internal/adapter/http/dto"
	"pooled-trading-vault/internal/core/domain"
	"pooled-trading-vault/internal/core/ports"
	"pooled-trading-vault/pkg/apperror"
	"pooled-trading-vault/pkg/response"

	"github.com/gin-gonic/gin"
)

// QueryHandler handles read-only vault views.
type QueryHandler struct {
	querySvc ports.QueryService
	vaultSvc ports.VaultService
	feeRepo  ports.FeeLedgerRepository
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(querySvc ports.QueryService, vaultSvc ports.VaultService, feeRepo ports.FeeLedgerRepository) *QueryHandler {
	return &QueryHandler{querySvc: querySvc, vaultSvc: vaultSvc, feeRepo: feeRepo}
}

// TokensForShares handles GET /api/v1/vault/tokens-for-shares?share=N.
func (h *QueryHandler) TokensForShares(c *gin.Context) {
	share, err := dto.ParseAmount("share", c.Query("share"))
	if err != nil {
		response.Error(c, err)
		return
	}

	coins, err := h.querySvc.TokensForShares(c.Request.Context(), share)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.LiquidityResponse{Assets: dto.FromCoins(coins)})
}

// TotalLiquidity handles GET /api/v1/vault/liquidity.
func (h *QueryHandler) TotalLiquidity(c *gin.Context) {
	coins, err := h.querySvc.TotalLiquidity(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.LiquidityResponse{Assets: dto.FromCoins(coins)})
}

// UserLiquidity handles GET /api/v1/vault/liquidity/:address.
func (h *QueryHandler) UserLiquidity(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		response.Error(c, apperror.Validation("address is required"))
		return
	}

	coins, err := h.querySvc.UserLiquidity(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.LiquidityResponse{Assets: dto.FromCoins(coins)})
}

// Prices handles GET /api/v1/vault/prices.
func (h *QueryHandler) Prices(c *gin.Context) {
	prices, err := h.querySvc.Prices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]string, 0, len(prices))
	for _, p := range prices {
		out = append(out, p.String())
	}
	response.OK(c, dto.PricesResponse{Prices: out})
}

// Tokens handles GET /api/v1/vault/tokens.
func (h *QueryHandler) Tokens(c *gin.Context) {
	denoms, err := h.querySvc.Tokens(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.TokensResponse{Denoms: denoms})
}

// Ownership handles GET /api/v1/vault/ownership.
func (h *QueryHandler) Ownership(c *gin.Context) {
	owner, err := h.vaultSvc.Ownership(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.OwnershipResponse{Owner: owner})
}

// Fees handles GET /api/v1/vault/fees.
func (h *QueryHandler) Fees(c *gin.Context) {
	counters, err := h.feeRepo.All(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	coins := make(domain.Coins, 0, len(counters))
	for _, counter := range counters {
		coins = append(coins, domain.Coin{Denom: counter.Denom, Amount: counter.Collected})
	}
	response.OK(c, dto.FeesResponse{Collected: dto.FromCoins(coins)})
}
