package ports

import (
	"context"

	"pooled-trading-vault/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// VaultRepository persists the singleton vault configuration.
type VaultRepository interface {
	// Save stores the configuration at setup time. Fails if one exists.
	Save(ctx context.Context, cfg *domain.VaultConfig) error
	// Get returns the configuration, or nil if the vault is not set up.
	Get(ctx context.Context) (*domain.VaultConfig, error)
	// BindShareToken binds the share-token address exactly once.
	// Returns false when the address was already bound.
	BindShareToken(ctx context.Context, addr string) (bool, error)
	// UpdateOwner rewrites the owner field.
	UpdateOwner(ctx context.Context, owner string) error
}

// FeeLedgerRepository persists one accrued-fee counter per configured
// asset. GetForUpdate/Update run inside transaction blocks for pessimistic
// locking; a counter must never be driven negative.
type FeeLedgerRepository interface {
	// Init zero-initialises a counter per denom at setup time.
	Init(ctx context.Context, denoms []string) error
	Get(ctx context.Context, denom string) (decimal.Decimal, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, denom string) (decimal.Decimal, error)
	Update(ctx context.Context, tx pgx.Tx, denom string, collected decimal.Decimal) error
	// All returns every counter in fixed declared order.
	All(ctx context.Context) ([]domain.FeeCounter, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
