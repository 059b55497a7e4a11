package postgres

import (
	"context"
	"errors"
	"fmt"

	"pooled-trading-vault/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// VaultRepo implements ports.VaultRepository. The configuration is a
// singleton row with a fixed primary key; decimals travel as text to
// avoid float round-trips.
type VaultRepo struct {
	pool Pool
}

// NewVaultRepo creates a new VaultRepo.
func NewVaultRepo(pool Pool) *VaultRepo {
	return &VaultRepo{pool: pool}
}

// Save inserts the singleton configuration row. The fixed primary key
// makes a second setup attempt fail on the unique constraint.
func (r *VaultRepo) Save(ctx context.Context, cfg *domain.VaultConfig) error {
	query := `INSERT INTO vault_config (id, owner, market_id, venue, base_denom, quote_denom,
		base_decimal, quote_decimal, base_price_id, quote_price_id, hardcap,
		share_token_addr, vault_addr, subaccount_id, created_at, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())`

	_, err := r.pool.Exec(ctx, query,
		cfg.Owner, cfg.MarketID, string(cfg.Venue), cfg.BaseDenom, cfg.QuoteDenom,
		cfg.BaseDecimal, cfg.QuoteDecimal, cfg.BasePriceID, cfg.QuotePriceID,
		cfg.Hardcap.String(), cfg.ShareTokenAddr, cfg.VaultAddr, cfg.SubaccountID,
	)
	if err != nil {
		return fmt.Errorf("insert vault config: %w", err)
	}
	return nil
}

// Get returns the configuration, or nil when the vault is not set up.
func (r *VaultRepo) Get(ctx context.Context) (*domain.VaultConfig, error) {
	query := `SELECT owner, market_id, venue, base_denom, quote_denom,
		base_decimal, quote_decimal, base_price_id, quote_price_id, hardcap,
		share_token_addr, vault_addr, subaccount_id
		FROM vault_config WHERE id = 1`

	cfg := &domain.VaultConfig{}
	var venue, hardcap string
	err := r.pool.QueryRow(ctx, query).Scan(
		&cfg.Owner, &cfg.MarketID, &venue, &cfg.BaseDenom, &cfg.QuoteDenom,
		&cfg.BaseDecimal, &cfg.QuoteDecimal, &cfg.BasePriceID, &cfg.QuotePriceID, &hardcap,
		&cfg.ShareTokenAddr, &cfg.VaultAddr, &cfg.SubaccountID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vault config: %w", err)
	}

	cfg.Venue = domain.VenueKind(venue)
	cfg.Hardcap, err = decimal.NewFromString(hardcap)
	if err != nil {
		return nil, fmt.Errorf("parse hardcap %q: %w", hardcap, err)
	}
	return cfg, nil
}

// BindShareToken binds the share-token address exactly once. The empty
// address guard in the predicate makes concurrent binds race-safe: only
// one update can match.
func (r *VaultRepo) BindShareToken(ctx context.Context, addr string) (bool, error) {
	query := `UPDATE vault_config SET share_token_addr = $1, updated_at = NOW()
		WHERE id = 1 AND share_token_addr = ''`

	tag, err := r.pool.Exec(ctx, query, addr)
	if err != nil {
		return false, fmt.Errorf("bind share token: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateOwner rewrites the owner field.
func (r *VaultRepo) UpdateOwner(ctx context.Context, owner string) error {
	query := `UPDATE vault_config SET owner = $1, updated_at = NOW() WHERE id = 1`

	tag, err := r.pool.Exec(ctx, query, owner)
	if err != nil {
		return fmt.Errorf("update owner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vault config not found")
	}
	return nil
}
