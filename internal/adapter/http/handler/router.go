package handler

import (
	"pooled-trading-vault/internal/adapter/http/middleware"
	redisStore "pooled-trading-vault/internal/adapter/storage/redis"
	"pooled-trading-vault/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	VaultSvc       ports.VaultService
	DepositSvc     ports.DepositService
	WithdrawalSvc  ports.WithdrawalService
	OrderSvc       ports.OrderService
	FeeSvc         ports.FeeService
	ReplySvc       ports.ReplyService
	QuerySvc       ports.QueryService
	FeeLedger      ports.FeeLedgerRepository
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	TokenSvc       ports.TokenService
	CallbackSecret string
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes (operator) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	vaultHandler := NewVaultHandler(deps.VaultSvc, deps.DepositSvc, deps.WithdrawalSvc, deps.OrderSvc, deps.FeeSvc)

	vault := v1.Group("/vault", jwtAuth)
	{
		vault.POST("", rl("execute"), vaultHandler.Instantiate)
		vault.POST("/ownership", rl("execute"), vaultHandler.TransferOwnership)
		vault.POST("/orders", rl("execute"), vaultHandler.Swap)
		vault.POST("/orders/cancel", rl("execute"), vaultHandler.CancelOrder)
		vault.POST("/fees", rl("execute"), vaultHandler.AddFee)
		vault.POST("/fees/withdraw", rl("execute"), vaultHandler.WithdrawFee)
	}

	// --- Signed callback channel (host relay) ---
	callbackAuth := middleware.CallbackAuth(deps.CallbackSecret, deps.SigSvc, deps.NonceStore, deps.Logger)
	replyHandler := NewReplyHandler(deps.ReplySvc)

	callbacks := v1.Group("/callbacks", callbackAuth)
	{
		callbacks.POST("/deposits", rl("callback"), vaultHandler.Deposit)
		callbacks.POST("/receive", rl("callback"), vaultHandler.Receive)
		callbacks.POST("/reply", rl("callback"), replyHandler.HandleReply)
	}

	// --- Public query routes ---
	queryHandler := NewQueryHandler(deps.QuerySvc, deps.VaultSvc, deps.FeeLedger)
	query := v1.Group("/vault")
	{
		query.GET("/tokens", rl("query"), queryHandler.Tokens)
		query.GET("/tokens-for-shares", rl("query"), queryHandler.TokensForShares)
		query.GET("/liquidity", rl("query"), queryHandler.TotalLiquidity)
		query.GET("/liquidity/:address", rl("query"), queryHandler.UserLiquidity)
		query.GET("/prices", rl("query"), queryHandler.Prices)
		query.GET("/ownership", rl("query"), queryHandler.Ownership)
		query.GET("/fees", rl("query"), queryHandler.Fees)
	}

	return r
}
