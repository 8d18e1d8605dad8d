package orderv1

import (
	"testing"
	"time"

	"github.com/muhammadchandra19/orderbook/pkg/errors"
	"github.com/muhammadchandra19/orderbook/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func TestNewOrders(t *testing.T) {
	market := NewMarketOrder("001", 3, at)
	assert.Equal(t, "001", market.ID())
	assert.Equal(t, int64(3), market.Quantity())
	assert.Equal(t, MarketPrice, market.Price())
	assert.Equal(t, at, market.Time())
	assert.Equal(t, KindMarket, market.Kind())

	limit := NewLimitOrder("005", 7, 10.5, at)
	assert.Equal(t, 10.5, limit.Price())
	assert.Equal(t, KindLimit, limit.Kind())
}

func TestOrder_String(t *testing.T) {
	testCases := []struct {
		name     string
		order    Order
		expected string
	}{
		{
			name:     "market",
			order:    NewMarketOrder("001", 1, at),
			expected: "MarketOrder | ID: 001 | Quantity: 1 | Price: 0 | Time: 2024-03-01T08:00:00Z",
		},
		{
			name:     "limit",
			order:    NewLimitOrder("007", 4, 15.25, at),
			expected: "LimitOrder | ID: 007 | Quantity: 4 | Price: 15.25 | Time: 2024-03-01T08:00:00Z",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.order.String())
		})
	}
}

func TestOrder_PermissiveValues(t *testing.T) {
	limit := NewLimitOrder("x", -5, -1.5, at)
	assert.Equal(t, int64(-5), limit.Quantity())
	assert.Equal(t, -1.5, limit.Price())

	market := NewMarketOrder("y", 0, at)
	assert.Equal(t, int64(0), market.Quantity())
}

func TestFactory(t *testing.T) {
	factory := NewFactory(util.FixedClock{At: at})

	t.Run("stamps clock reading", func(t *testing.T) {
		assert.Equal(t, at, factory.Market("001", 1).Time())
		assert.Equal(t, at, factory.Limit("002", 1, 5).Time())
	})

	t.Run("explicit time wins", func(t *testing.T) {
		later := at.Add(time.Hour)
		o, err := factory.Build(KindLimit, "003", 2, 9.5, &later)
		require.NoError(t, err)
		assert.Equal(t, later, o.Time())
		assert.Equal(t, 9.5, o.Price())
	})

	t.Run("market ignores price", func(t *testing.T) {
		o, err := factory.Build(KindMarket, "004", 2, 9.5, nil)
		require.NoError(t, err)
		assert.Equal(t, MarketPrice, o.Price())
		assert.IsType(t, &MarketOrder{}, o)
	})

	t.Run("unknown kind", func(t *testing.T) {
		o, err := factory.Build("stop", "005", 1, 1, nil)
		assert.ErrorIs(t, err, ErrUnknownOrderType)
		assert.Nil(t, o)
	})

	t.Run("nil clock", func(t *testing.T) {
		before := time.Now()
		o := NewFactory(nil).Market("006", 1)
		assert.False(t, o.Time().Before(before))
	})
}

func TestPlaceOrderRequest_ToOrder(t *testing.T) {
	factory := NewFactory(util.FixedClock{At: at})

	testCases := []struct {
		name      string
		request   PlaceOrderRequest
		wantCodes []errors.ErrorCode
		assertFn  func(t *testing.T, o Order)
	}{
		{
			name:    "limit with time",
			request: PlaceOrderRequest{OrderID: "005", Type: KindLimit, Quantity: 1, Price: 5, Time: "2024-03-01T07:30:00Z"},
			assertFn: func(t *testing.T, o Order) {
				assert.Equal(t, KindLimit, o.Kind())
				assert.Equal(t, at.Add(-30*time.Minute), o.Time().UTC())
			},
		},
		{
			name:    "market without time",
			request: PlaceOrderRequest{OrderID: "001", Type: KindMarket, Quantity: 1},
			assertFn: func(t *testing.T, o Order) {
				assert.Equal(t, KindMarket, o.Kind())
				assert.Equal(t, at, o.Time())
			},
		},
		{
			name:    "negative values accepted",
			request: PlaceOrderRequest{OrderID: "009", Type: KindLimit, Quantity: -1, Price: -2},
			assertFn: func(t *testing.T, o Order) {
				assert.Equal(t, int64(-1), o.Quantity())
				assert.Equal(t, -2.0, o.Price())
			},
		},
		{
			name:      "missing id and unknown type",
			request:   PlaceOrderRequest{Type: "cancel"},
			wantCodes: []errors.ErrorCode{errors.OrderPayloadMissingID, errors.OrderPayloadUnknownType},
		},
		{
			name:      "invalid time",
			request:   PlaceOrderRequest{OrderID: "010", Type: KindMarket, Time: "yesterday"},
			wantCodes: []errors.ErrorCode{errors.OrderPayloadInvalidTime},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := tc.request.ToOrder(factory)

			if len(tc.wantCodes) > 0 {
				require.Error(t, err)
				baseErr, ok := err.(*errors.BaseError)
				require.True(t, ok)
				assert.Len(t, baseErr.GetDetails(), len(tc.wantCodes))
				for _, code := range tc.wantCodes {
					assert.True(t, baseErr.IsAnyCodeEqual(string(code)))
				}
				assert.Nil(t, o)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.request.OrderID, o.ID())
			tc.assertFn(t, o)
		})
	}
}
