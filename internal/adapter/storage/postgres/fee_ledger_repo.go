package postgres

import (
	"context"
	"fmt"

	"pooled-trading-vault/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// FeeLedgerRepo implements ports.FeeLedgerRepository. One row per pooled
// asset; position preserves the declared denom order.
type FeeLedgerRepo struct {
	pool Pool
}

// NewFeeLedgerRepo creates a new FeeLedgerRepo.
func NewFeeLedgerRepo(pool Pool) *FeeLedgerRepo {
	return &FeeLedgerRepo{pool: pool}
}

// Init zero-initialises one counter per denom at setup time.
func (r *FeeLedgerRepo) Init(ctx context.Context, denoms []string) error {
	query := `INSERT INTO fee_ledger (denom, collected, position, created_at, updated_at)
		VALUES ($1, '0', $2, NOW(), NOW())`

	for i, denom := range denoms {
		if _, err := r.pool.Exec(ctx, query, denom, i); err != nil {
			return fmt.Errorf("init %s fee counter: %w", denom, err)
		}
	}
	return nil
}

// Get returns the accrued amount for denom (non-locking read).
func (r *FeeLedgerRepo) Get(ctx context.Context, denom string) (decimal.Decimal, error) {
	query := `SELECT collected FROM fee_ledger WHERE denom = $1`

	var collected string
	if err := r.pool.QueryRow(ctx, query, denom).Scan(&collected); err != nil {
		return decimal.Zero, fmt.Errorf("get %s fee counter: %w", denom, err)
	}
	return parseCollected(denom, collected)
}

// GetForUpdate returns the accrued amount with pessimistic locking.
// This MUST be called within a transaction.
func (r *FeeLedgerRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, denom string) (decimal.Decimal, error) {
	query := `SELECT collected FROM fee_ledger WHERE denom = $1 FOR UPDATE`

	var collected string
	if err := tx.QueryRow(ctx, query, denom).Scan(&collected); err != nil {
		return decimal.Zero, fmt.Errorf("lock %s fee counter: %w", denom, err)
	}
	return parseCollected(denom, collected)
}

// Update overwrites the accrued amount within a transaction.
func (r *FeeLedgerRepo) Update(ctx context.Context, tx pgx.Tx, denom string, collected decimal.Decimal) error {
	query := `UPDATE fee_ledger SET collected = $1, updated_at = NOW() WHERE denom = $2`

	tag, err := tx.Exec(ctx, query, collected.String(), denom)
	if err != nil {
		return fmt.Errorf("update %s fee counter: %w", denom, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("fee counter not found: %s", denom)
	}
	return nil
}

// All returns every counter in declared order.
func (r *FeeLedgerRepo) All(ctx context.Context) ([]domain.FeeCounter, error) {
	query := `SELECT denom, collected FROM fee_ledger ORDER BY position`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list fee counters: %w", err)
	}
	defer rows.Close()

	var counters []domain.FeeCounter
	for rows.Next() {
		var denom, collected string
		if err := rows.Scan(&denom, &collected); err != nil {
			return nil, fmt.Errorf("scan fee counter: %w", err)
		}
		amount, err := parseCollected(denom, collected)
		if err != nil {
			return nil, err
		}
		counters = append(counters, domain.FeeCounter{Denom: denom, Collected: amount})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fee counters: %w", err)
	}
	return counters, nil
}

func parseCollected(denom, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s fee counter %q: %w", denom, raw, err)
	}
	return d, nil
}
