package collab

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pooled-trading-vault/config"
	"pooled-trading-vault/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collabConfig(url string) config.CollabConfig {
	return config.CollabConfig{ShareTokenURL: url, BankURL: url, OracleURL: url}
}

func TestShareTokenClient_TotalSupply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/token/supply", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"total_supply": "180000000000000"})
	}))
	defer srv.Close()

	client := NewShareTokenClient(collabConfig(srv.URL), srv.Client(), zerolog.Nop())
	supply, err := client.TotalSupply(context.Background())
	require.NoError(t, err)
	assert.True(t, supply.Equal(decimal.RequireFromString("180000000000000")))
}

func TestShareTokenClient_Mint(t *testing.T) {
	var got mintRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/token/mint", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewShareTokenClient(collabConfig(srv.URL), srv.Client(), zerolog.Nop())
	err := client.Mint(context.Background(), "inj1alice", decimal.RequireFromString("100000000000000"))
	require.NoError(t, err)
	assert.Equal(t, "inj1alice", got.Recipient)
	assert.Equal(t, "100000000000000", got.Amount)
}

func TestShareTokenClient_BurnRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "supply underflow", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewShareTokenClient(collabConfig(srv.URL), srv.Client(), zerolog.Nop())
	err := client.Burn(context.Background(), decimal.New(1, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 422")
}

func TestBankClient_Balance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/balances/inj1vault/usdt", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"amount": "200000000"})
	}))
	defer srv.Close()

	client := NewBankClient(collabConfig(srv.URL), srv.Client(), zerolog.Nop())
	balance, err := client.Balance(context.Background(), "inj1vault", "usdt")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("200000000")))
}

func TestBankClient_Send(t *testing.T) {
	var got transferRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/transfers", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewBankClient(collabConfig(srv.URL), srv.Client(), zerolog.Nop())
	err := client.Send(context.Background(), "inj1alice", domain.Coins{
		domain.NewCoin(95000000, "usdt"),
	})
	require.NoError(t, err)
	assert.Equal(t, "inj1alice", got.To)
	require.Len(t, got.Coins, 1)
	assert.Equal(t, "usdt", got.Coins[0].Denom)
	assert.Equal(t, "95000000", got.Coins[0].Amount)
}

func TestOracleClient_Price(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/prices/base-feed", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"price": "10.5", "timestamp": 1700000000})
	}))
	defer srv.Close()

	client := NewOracleClient(collabConfig(srv.URL), srv.Client(), zerolog.Nop())
	state, err := client.Price(context.Background(), "base-feed")
	require.NoError(t, err)
	assert.True(t, state.Price.Equal(decimal.RequireFromString("10.5")))
	assert.Equal(t, int64(1700000000), state.Timestamp)
}

func TestVenueClient_Market_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewVenueClient(config.VenueConfig{BaseURL: srv.URL}, srv.Client(), zerolog.Nop())
	market, err := client.Market(context.Background(), domain.VenueSpot, "0xmissing")
	require.NoError(t, err)
	assert.Nil(t, market)
}

func TestVenueClient_Market(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/derivative/markets/0xmarket", r.URL.Path)
		json.NewEncoder(w).Encode(domain.Market{
			ID: "0xmarket", QuoteDenom: "usdt", Status: domain.MarketActive,
		})
	}))
	defer srv.Close()

	client := NewVenueClient(config.VenueConfig{BaseURL: srv.URL}, srv.Client(), zerolog.Nop())
	market, err := client.Market(context.Background(), domain.VenueDerivative, "0xmarket")
	require.NoError(t, err)
	require.NotNil(t, market)
	assert.Equal(t, domain.MarketActive, market.Status)
}

func TestVenueClient_SubaccountFor_Deterministic(t *testing.T) {
	client := NewVenueClient(config.VenueConfig{}, http.DefaultClient, zerolog.Nop())

	sub1 := client.SubaccountFor("inj1vault")
	sub2 := client.SubaccountFor("inj1vault")
	other := client.SubaccountFor("inj1other")

	assert.Equal(t, sub1, sub2)
	assert.NotEqual(t, sub1, other)
	assert.Regexp(t, `^0x[0-9a-f]{40}0{24}$`, sub1)
}

func TestVenueClient_CreateSpotOrder(t *testing.T) {
	var got createSpotOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/spot/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewVenueClient(config.VenueConfig{BaseURL: srv.URL}, srv.Client(), zerolog.Nop())
	err := client.CreateSpotOrder(context.Background(), "inj1vault", domain.SpotOrder{
		MarketID:     "0xspotmarket",
		SubaccountID: "0xsub",
		FeeRecipient: "inj1vault",
		Side:         domain.OrderSell,
		Price:        decimal.RequireFromString("100"),
		Quantity:     decimal.RequireFromString("5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "inj1vault", got.Sender)
	assert.Equal(t, "0xspotmarket", got.Order.MarketID)
	assert.True(t, got.Order.Quantity.Equal(decimal.RequireFromString("5")))
}
