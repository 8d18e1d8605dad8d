package main

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	orderv1 "github.com/muhammadchandra19/orderbook/internal/domain/order/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrders(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	orders := generateOrders(rng, 500, 100, 20, 0.5)

	require.Len(t, orders, 500)

	seen := map[string]bool{}
	for _, o := range orders {
		require.NoError(t, o.Validate())
		assert.False(t, seen[o.OrderID], "duplicate id %s", o.OrderID)
		seen[o.OrderID] = true

		assert.GreaterOrEqual(t, o.Quantity, int64(1))
		assert.LessOrEqual(t, o.Quantity, int64(100))

		switch o.Type {
		case orderv1.KindMarket:
			assert.Equal(t, orderv1.MarketPrice, o.Price)
		case orderv1.KindLimit:
			if o.Bid {
				assert.LessOrEqual(t, o.Price, 100.0)
			} else {
				assert.GreaterOrEqual(t, o.Price, 100.0)
			}
		}
	}

	stats := summarize(orders)
	assert.Equal(t, 500, stats.market+stats.limit)
	assert.Equal(t, 500, stats.buy+stats.sell)
	assert.Positive(t, stats.market)
	assert.Positive(t, stats.limit)
}

func TestGenerateOrders_BidRatio(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	stats := summarize(generateOrders(rng, 50, 100, 20, 1))
	assert.Equal(t, 50, stats.buy)

	stats = summarize(generateOrders(rng, 50, 100, 20, 0))
	assert.Equal(t, 50, stats.sell)
}

func TestLoadOrders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"orderID":"001","type":"market","bid":true,"quantity":1,"time":"2024-03-01T08:00:00Z"},
		{"orderID":"005","type":"limit","bid":false,"quantity":5,"price":5.0}
	]`), 0o600))

	orders, err := loadOrders(path)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "2024-03-01T08:00:00Z", orders[0].Time)
	assert.Equal(t, orderv1.KindLimit, orders[1].Type)

	_, err = loadOrders(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
