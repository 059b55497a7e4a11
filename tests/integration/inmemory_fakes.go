package integration

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"pooled-trading-vault/internal/core/domain"
	"pooled-trading-vault/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory Vault Repo ---

type inMemoryVaultRepo struct {
	mu  sync.RWMutex
	cfg *domain.VaultConfig
}

func newInMemoryVaultRepo() *inMemoryVaultRepo {
	return &inMemoryVaultRepo{}
}

func (r *inMemoryVaultRepo) Save(ctx context.Context, cfg *domain.VaultConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cfg != nil {
		return fmt.Errorf("vault config already exists")
	}
	clone := *cfg
	r.cfg = &clone
	return nil
}

func (r *inMemoryVaultRepo) Get(ctx context.Context) (*domain.VaultConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.cfg == nil {
		return nil, nil
	}
	clone := *r.cfg
	return &clone, nil
}

func (r *inMemoryVaultRepo) BindShareToken(ctx context.Context, addr string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cfg == nil {
		return false, fmt.Errorf("vault config not found")
	}
	if r.cfg.ShareTokenAddr != "" {
		return false, nil
	}
	r.cfg.ShareTokenAddr = addr
	return true, nil
}

func (r *inMemoryVaultRepo) UpdateOwner(ctx context.Context, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cfg == nil {
		return fmt.Errorf("vault config not found")
	}
	r.cfg.Owner = owner
	return nil
}

// --- In-Memory Fee Ledger Repo ---

type inMemoryFeeLedgerRepo struct {
	mu        sync.RWMutex
	denoms    []string
	collected map[string]decimal.Decimal
}

func newInMemoryFeeLedgerRepo() *inMemoryFeeLedgerRepo {
	return &inMemoryFeeLedgerRepo{collected: make(map[string]decimal.Decimal)}
}

func (r *inMemoryFeeLedgerRepo) Init(ctx context.Context, denoms []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.denoms = append([]string(nil), denoms...)
	for _, d := range denoms {
		r.collected[d] = decimal.Zero
	}
	return nil
}

func (r *inMemoryFeeLedgerRepo) Get(ctx context.Context, denom string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.collected[denom]
	if !ok {
		return decimal.Zero, fmt.Errorf("fee counter for %s not found", denom)
	}
	return c, nil
}

func (r *inMemoryFeeLedgerRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, denom string) (decimal.Decimal, error) {
	return r.Get(ctx, denom)
}

func (r *inMemoryFeeLedgerRepo) Update(ctx context.Context, tx pgx.Tx, denom string, collected decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.collected[denom]; !ok {
		return fmt.Errorf("fee counter for %s not found", denom)
	}
	r.collected[denom] = collected
	return nil
}

func (r *inMemoryFeeLedgerRepo) All(ctx context.Context) ([]domain.FeeCounter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.FeeCounter, 0, len(r.denoms))
	for _, d := range r.denoms {
		out = append(out, domain.FeeCounter{Denom: d, Collected: r.collected[d]})
	}
	return out, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }

// --- Fake Share Token ---

type fakeShareToken struct {
	mu           sync.RWMutex
	instantiated bool
	supply       decimal.Decimal
	balances     map[string]decimal.Decimal
}

func newFakeShareToken() *fakeShareToken {
	return &fakeShareToken{balances: make(map[string]decimal.Decimal)}
}

func (f *fakeShareToken) Instantiate(ctx context.Context, name, symbol string, decimals int32, minter string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.instantiated = true
	return nil
}

func (f *fakeShareToken) Mint(ctx context.Context, recipient string, amount decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.supply = f.supply.Add(amount)
	f.balances[recipient] = f.balances[recipient].Add(amount)
	return nil
}

func (f *fakeShareToken) Burn(ctx context.Context, amount decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.supply.LessThan(amount) {
		return fmt.Errorf("burn exceeds supply")
	}
	f.supply = f.supply.Sub(amount)
	return nil
}

func (f *fakeShareToken) TotalSupply(ctx context.Context) (decimal.Decimal, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.supply, nil
}

func (f *fakeShareToken) BalanceOf(ctx context.Context, addr string) (decimal.Decimal, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.balances[addr], nil
}

// --- Fake Exchange Venue ---

type fakeVenue struct {
	mu      sync.RWMutex
	markets map[string]*domain.Market
	orders  []any
	cancels []domain.OrderCancellation
}

func newFakeVenue() *fakeVenue {
	return &fakeVenue{markets: make(map[string]*domain.Market)}
}

func (f *fakeVenue) addMarket(kind domain.VenueKind, m *domain.Market) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markets[string(kind)+"/"+m.ID] = m
}

func (f *fakeVenue) Market(ctx context.Context, kind domain.VenueKind, marketID string) (*domain.Market, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	m, ok := f.markets[string(kind)+"/"+marketID]
	if !ok {
		return nil, nil
	}
	return m, nil
}

func (f *fakeVenue) SubaccountFor(addr string) string {
	sum := sha256.Sum256([]byte(addr))
	return "0x" + hex.EncodeToString(sum[:20]) + "000000000000000000000000"
}

func (f *fakeVenue) CreateSpotOrder(ctx context.Context, sender string, order domain.SpotOrder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeVenue) CreateDerivativeOrder(ctx context.Context, sender string, order domain.DerivativeOrder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeVenue) CancelSpotOrder(ctx context.Context, sender string, cancel domain.OrderCancellation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels = append(f.cancels, cancel)
	return nil
}

func (f *fakeVenue) CancelDerivativeOrder(ctx context.Context, sender string, cancel domain.OrderCancellation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels = append(f.cancels, cancel)
	return nil
}

func (f *fakeVenue) orderCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.orders)
}

// --- Fake Bank Ledger ---

type fakeBank struct {
	mu        sync.RWMutex
	vaultAddr string
	balances  map[string]map[string]decimal.Decimal
}

func newFakeBank(vaultAddr string) *fakeBank {
	return &fakeBank{
		vaultAddr: vaultAddr,
		balances:  make(map[string]map[string]decimal.Decimal),
	}
}

func (f *fakeBank) credit(addr, denom string, amount decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.balances[addr] == nil {
		f.balances[addr] = make(map[string]decimal.Decimal)
	}
	f.balances[addr][denom] = f.balances[addr][denom].Add(amount)
}

func (f *fakeBank) setBalance(addr, denom string, amount decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.balances[addr] == nil {
		f.balances[addr] = make(map[string]decimal.Decimal)
	}
	f.balances[addr][denom] = amount
}

func (f *fakeBank) Balance(ctx context.Context, addr, denom string) (decimal.Decimal, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.balances[addr][denom], nil
}

func (f *fakeBank) Send(ctx context.Context, to string, coins domain.Coins) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range coins {
		held := f.balances[f.vaultAddr][c.Denom]
		if held.LessThan(c.Amount) {
			return fmt.Errorf("insufficient %s balance", c.Denom)
		}
		f.balances[f.vaultAddr][c.Denom] = held.Sub(c.Amount)
		if f.balances[to] == nil {
			f.balances[to] = make(map[string]decimal.Decimal)
		}
		f.balances[to][c.Denom] = f.balances[to][c.Denom].Add(c.Amount)
	}
	return nil
}

// --- Fake Price Oracle ---

type fakeOracle struct {
	mu      sync.RWMutex
	samples map[string]*ports.PriceState
}

func newFakeOracle() *fakeOracle {
	return &fakeOracle{samples: make(map[string]*ports.PriceState)}
}

func (f *fakeOracle) setPrice(feedID string, price decimal.Decimal, timestamp int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.samples[feedID] = &ports.PriceState{Price: price, Timestamp: timestamp}
}

func (f *fakeOracle) Price(ctx context.Context, feedID string) (*ports.PriceState, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	s, ok := f.samples[feedID]
	if !ok {
		return nil, fmt.Errorf("no price feed %s", feedID)
	}
	return s, nil
}
